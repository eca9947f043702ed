package geocore

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/jatiwn/geocore-tutorial-1/model"
	"github.com/jatiwn/geocore-tutorial-1/optional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingHTTPClient counts the requests flowing through the real
// [http.DefaultClient].
type countingHTTPClient struct {
	calls atomic.Int64
}

var _ model.HTTPClient = &countingHTTPClient{}

func (c *countingHTTPClient) Do(req *http.Request) (*http.Response, error) {
	c.calls.Add(1)
	return http.DefaultClient.Do(req)
}

// mustLogin performs the default-user login and fails the test on error.
func mustLogin(t *testing.T, client *Client) {
	_, err := client.LoginWithDefaultUser(context.Background())
	require.NoError(t, err)
}

func TestClientPlaces(t *testing.T) {

	t.Run("saving a new place assigns a server ID", func(t *testing.T) {
		_, client := newBackendAndClient(t, "PRO-TEST-1")
		mustLogin(t, client)
		place := &model.Place{}
		place.Name = optional.Some("Jakarta Ramen")
		place.Point.Latitude = optional.Some(-6.2088)
		place.Point.Longitude = optional.Some(106.8456)

		saved, err := client.SavePlace(context.Background(), place)

		require.NoError(t, err)
		sid, ok := saved.ServerID()
		assert.True(t, ok)
		assert.Greater(t, sid, int64(0))
		assert.Equal(t, "Jakarta Ramen", saved.Name.Unwrap())
	})

	t.Run("saving with pending tags surfaces them in the response", func(t *testing.T) {
		_, client := newBackendAndClient(t, "PRO-TEST-1")
		mustLogin(t, client)
		place := &model.Place{}
		place.Name = optional.Some("Ramen Shop")
		place.Tag("ramen")

		saved, err := client.SavePlace(context.Background(), place)

		require.NoError(t, err)
		require.Len(t, saved.Tags, 1)
		assert.Equal(t, "ramen", saved.Tags[0].Name.Unwrap())
	})

	t.Run("saving a persisted place keeps its server ID", func(t *testing.T) {
		backend, client := newBackendAndClient(t, "PRO-TEST-1")
		mustLogin(t, client)
		sid := backend.AddPlace(map[string]any{"name": "Old Name"})
		place := &model.Place{}
		place.SID = optional.Some(sid)
		place.Name = optional.Some("New Name")

		saved, err := client.SavePlace(context.Background(), place)

		require.NoError(t, err)
		got, ok := saved.ServerID()
		assert.True(t, ok)
		assert.Equal(t, sid, got)
		assert.Equal(t, "New Name", saved.Name.Unwrap())
	})

	t.Run("listing returns the stored places", func(t *testing.T) {
		backend, client := newBackendAndClient(t, "PRO-TEST-1")
		mustLogin(t, client)
		backend.AddPlace(map[string]any{"name": "First"})
		backend.AddPlace(map[string]any{"name": "Second"})

		places, err := client.GetPlaces(context.Background())

		require.NoError(t, err)
		assert.Len(t, places, 2)
	})

	t.Run("fetching a stored place by server ID", func(t *testing.T) {
		backend, client := newBackendAndClient(t, "PRO-TEST-1")
		mustLogin(t, client)
		sid := backend.AddPlace(map[string]any{
			"name": "Shibuya Crossing",
			"point": map[string]any{
				"latitude":  35.659486,
				"longitude": 139.700555,
			},
		})

		place, err := client.GetPlace(context.Background(), fmt.Sprintf("%d", sid))

		require.NoError(t, err)
		got, ok := place.ServerID()
		assert.True(t, ok)
		assert.Equal(t, sid, got)
		assert.Equal(t, 35.659486, place.Point.Latitude.Unwrap())
	})

	t.Run("geographical searches return lists", func(t *testing.T) {
		backend, client := newBackendAndClient(t, "PRO-TEST-1")
		mustLogin(t, client)
		backend.AddPlace(map[string]any{"name": "Tokyo Tower"})

		within, err := client.PlacesWithinRect(context.Background(), 35.0, 139.0, 36.0, 140.0)
		require.NoError(t, err)
		assert.Len(t, within, 1)

		nearest, err := client.PlacesNearest(context.Background(), 35.65858, 139.745433)
		require.NoError(t, err)
		assert.Len(t, nearest, 1)
	})

	t.Run("searching without a token is unauthorized", func(t *testing.T) {
		_, client := newBackendAndClient(t, "PRO-TEST-1")

		_, err := client.GetPlaces(context.Background())

		var apiErr *model.Error
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, model.UnauthorizedAccess, apiErr.Kind)
	})

	t.Run("deleting a persisted place removes it", func(t *testing.T) {
		backend, client := newBackendAndClient(t, "PRO-TEST-1")
		mustLogin(t, client)
		sid := backend.AddPlace(map[string]any{"name": "Ephemeral"})
		place := &model.Place{}
		place.SID = optional.Some(sid)

		deleted, err := client.DeletePlace(context.Background(), place)

		require.NoError(t, err)
		assert.Equal(t, "Ephemeral", deleted.Name.Unwrap())
		remaining, err := client.GetPlaces(context.Background())
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("deleting an unsaved place fails without any network call", func(t *testing.T) {
		transport := &countingHTTPClient{}
		client := NewClient(&Config{
			BaseURL:    "https://api.example.com",
			ProjectID:  "PRO-TEST-1",
			HTTPClient: transport,
		})

		_, err := client.DeletePlace(context.Background(), &model.Place{})

		var apiErr *model.Error
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, model.InvalidParameter, apiErr.Kind)
		assert.EqualValues(t, 0, transport.calls.Load())
	})
}
