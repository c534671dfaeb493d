package culturalevents

// SearchRequest locates cultural events around a coordinate, optionally
// narrowed to a comma-separated category list. The coordinates are pointers
// so that an omitted parameter fails validation instead of silently reading
// as (0, 0).
type SearchRequest struct {
	Lat        *float64 `form:"lat" validate:"required,min=-90,max=90"`
	Lon        *float64 `form:"lon" validate:"required,min=-180,max=180"`
	Categories string   `form:"category"`
}

// Event is a ranked cultural event near the requested coordinate.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Start       string    `json:"start"`
	Description string    `json:"description,omitempty"`
	Location    []float64 `json:"location"`
	Icon        string    `json:"icon"`
}

type predictHQEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Start       string    `json:"start"`
	Description string    `json:"description"`
	Location    []float64 `json:"location"`
}

type predictHQResponse struct {
	Results []predictHQEvent `json:"results"`
}
