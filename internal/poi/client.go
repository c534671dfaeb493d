package poi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
)

// amenityPattern filters at the query level so the response stays bounded to
// the categories this application renders.
const amenityPattern = "^(restaurant|cafe|fast_food|pub|bar)$"

// Client executes radius-bounded spatial queries against Overpass.
type Client struct {
	httpClient *http.Client
	url        string
	userAgent  string
	group      singleflight.Group
}

func NewClient(overpassURL, userAgent string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		url:        overpassURL,
		userAgent:  userAgent,
	}
}

// Search posts one Overpass QL query covering both node and way features
// inside the circle. Identical in-flight queries are collapsed through
// singleflight; the reads are idempotent so sharing a result is safe.
func (c *Client) Search(ctx context.Context, lat, lng float64, radiusMeters int) ([]overpassElement, error) {
	query := buildQuery(lat, lng, radiusMeters)

	result, err, _ := c.group.Do(query, func() (interface{}, error) {
		return c.execute(ctx, query)
	})
	if err != nil {
		return nil, err
	}

	return result.([]overpassElement), nil
}

func (c *Client) execute(ctx context.Context, query string) ([]overpassElement, error) {
	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream api error: %d", resp.StatusCode)
	}

	var payload overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	return payload.Elements, nil
}

func buildQuery(lat, lng float64, radiusMeters int) string {
	return fmt.Sprintf(`[out:json][timeout:25];
(
  node["amenity"~"%[1]s"](around:%[2]d,%[3]f,%[4]f);
  way["amenity"~"%[1]s"](around:%[2]d,%[3]f,%[4]f);
);
out center meta;`, amenityPattern, radiusMeters, lat, lng)
}
