package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagDecoding(t *testing.T) {

	t.Run("decodes a known tag type", func(t *testing.T) {
		var tag Tag
		require.NoError(t, json.Unmarshal([]byte(`{"name": "food", "type": "SYSTEM_TAG"}`), &tag))
		assert.Equal(t, SystemTag, tag.Type.Unwrap())
		assert.Equal(t, "food", tag.Name.Unwrap())
	})

	t.Run("an unknown tag type decodes to an absent value", func(t *testing.T) {
		var tag Tag
		require.NoError(t, json.Unmarshal([]byte(`{"type": "ROBOT_TAG"}`), &tag))
		assert.True(t, tag.Type.IsNone())
	})
}

func TestTaggableTag(t *testing.T) {

	t.Run("partitions tokens by the TAG prefix", func(t *testing.T) {
		var taggable Taggable
		taggable.Tag("TAG-0001", "ramen", "TAG-0002", "sushi")
		params := taggable.TagParameters()
		require.NotNil(t, params)
		assert.Equal(t, "TAG-0001,TAG-0002", params["tag_ids"])
		assert.Equal(t, "ramen,sushi", params["tag_names"])
	})

	t.Run("returns nil parameters without pending tags", func(t *testing.T) {
		var taggable Taggable
		assert.Nil(t, taggable.TagParameters())
	})

	t.Run("only IDs yields only tag_ids", func(t *testing.T) {
		var taggable Taggable
		taggable.Tag("TAG-0001")
		params := taggable.TagParameters()
		require.NotNil(t, params)
		assert.Equal(t, "TAG-0001", params["tag_ids"])
		assert.NotContains(t, params, "tag_names")
	})

	t.Run("fetched tags replace pending tag state", func(t *testing.T) {
		var taggable Taggable
		taggable.Tag("TAG-0001", "ramen")
		input := []byte(`{"name": "some place", "tags": [{"name": "sushi", "type": "USER_TAG"}]}`)
		require.NoError(t, json.Unmarshal(input, &taggable))
		require.Len(t, taggable.Tags, 1)
		assert.Equal(t, "sushi", taggable.Tags[0].Name.Unwrap())
		assert.Nil(t, taggable.TagParameters())
	})
}
