package geocore

//
// object.go - generic objects and their binary attachments.
//

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jatiwn/geocore-tutorial-1/httpx"
	"github.com/jatiwn/geocore-tutorial-1/model"
)

// GetObject fetches a generic object by its textual ID.
func (c *Client) GetObject(ctx context.Context, id string) (*model.Object, error) {
	obj, err := httpx.Call[model.Object](ctx, c.httpxConfig(), &httpx.Request{
		Method: http.MethodGet,
		Path:   "/objs/" + id,
	})
	if err != nil {
		return nil, err
	}
	return &obj, nil
}

// Binaries lists the binary data attached to the given entity. The
// entity must have been persisted.
func (c *Client) Binaries(ctx context.Context, entity model.Entity) ([]model.BinaryDataInfo, error) {
	sid, err := requireServerID(entity, "unsaved object cannot have binary data")
	if err != nil {
		return nil, err
	}
	return httpx.CallList[model.BinaryDataInfo](ctx, c.httpxConfig(), &httpx.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/objs/%d/bins", sid),
	})
}

// Binary fetches the download URL and metadata of a single binary
// datum attached to the given entity.
func (c *Client) Binary(ctx context.Context, entity model.Entity, key string) (*model.BinaryDataInfo, error) {
	sid, err := requireServerID(entity, "unsaved object cannot have binary data")
	if err != nil {
		return nil, err
	}
	info, err := httpx.Call[model.BinaryDataInfo](ctx, c.httpxConfig(), &httpx.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/objs/%d/bins/%s/url", sid, key),
	})
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// UploadBinary uploads binary data under the given key for the given
// entity using a multipart POST request.
func (c *Client) UploadBinary(ctx context.Context, entity model.Entity,
	key string, data []byte, mimeType string) (*model.BinaryDataInfo, error) {
	sid, err := requireServerID(entity, "unsaved object cannot have binary data")
	if err != nil {
		return nil, err
	}
	info, err := httpx.Call[model.BinaryDataInfo](ctx, c.httpxConfig(), &httpx.Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/objs/%d/bins/%s", sid, key),
		File: &httpx.FileSpec{
			FieldName: "data",
			FileName:  "data",
			MIMEType:  mimeType,
			Contents:  data,
		},
	})
	if err != nil {
		return nil, err
	}
	return &info, nil
}
