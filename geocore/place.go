package geocore

//
// place.go - places and geographical searches.
//

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jatiwn/geocore-tutorial-1/httpx"
	"github.com/jatiwn/geocore-tutorial-1/model"
)

// GetPlace fetches a place by its textual ID.
func (c *Client) GetPlace(ctx context.Context, id string) (*model.Place, error) {
	place, err := httpx.Call[model.Place](ctx, c.httpxConfig(), &httpx.Request{
		Method: http.MethodGet,
		Path:   "/places/" + id,
	})
	if err != nil {
		return nil, err
	}
	return &place, nil
}

// GetPlaces fetches all places visible to the current session.
func (c *Client) GetPlaces(ctx context.Context) ([]model.Place, error) {
	return httpx.CallList[model.Place](ctx, c.httpxConfig(), &httpx.Request{
		Method: http.MethodGet,
		Path:   "/places",
	})
}

// PlacesWithinRect searches for places within the given bounding box.
func (c *Client) PlacesWithinRect(ctx context.Context,
	minLat, minLon, maxLat, maxLon float64) ([]model.Place, error) {
	return httpx.CallList[model.Place](ctx, c.httpxConfig(), &httpx.Request{
		Method: http.MethodGet,
		Path:   "/places/search/within/rect",
		Query: map[string]any{
			"min_lat": minLat,
			"min_lon": minLon,
			"max_lat": maxLat,
			"max_lon": maxLon,
		},
	})
}

// PlacesNearest searches for the places nearest to the given center.
func (c *Client) PlacesNearest(ctx context.Context, lat, lon float64) ([]model.Place, error) {
	return httpx.CallList[model.Place](ctx, c.httpxConfig(), &httpx.Request{
		Method: http.MethodGet,
		Path:   "/places/search/nearest",
		Query: map[string]any{
			"lat": lat,
			"lon": lon,
		},
	})
}

// SavePlace creates or updates the given place. Places with a server
// ID save to /places/{sid}, unsaved places to /places.
func (c *Client) SavePlace(ctx context.Context, place *model.Place) (*model.Place, error) {
	return save[model.Place](ctx, c, "places", &place.Taggable, place.WireMap())
}

// DeletePlace deletes a persisted place. A place without a server ID
// fails immediately with [model.InvalidParameter] and performs no
// network call.
func (c *Client) DeletePlace(ctx context.Context, place *model.Place) (*model.Place, error) {
	sid, err := requireServerID(place, "unsaved object cannot be deleted")
	if err != nil {
		return nil, err
	}
	deleted, err := httpx.Call[model.Place](ctx, c.httpxConfig(), &httpx.Request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/places/%d", sid),
	})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}
