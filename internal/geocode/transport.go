package geocode

// SearchRequest represents the query parameters for place search.
// A blank query is not an error: it short-circuits to an empty candidate list.
type SearchRequest struct {
	Query string `form:"q"`
}

// ReverseRequest represents the query parameters for reverse geocoding.
// The coordinates are pointers so that an omitted parameter fails binding
// instead of silently reading as (0, 0).
type ReverseRequest struct {
	Lat *float64 `form:"lat" binding:"required,min=-90,max=90"`
	Lon *float64 `form:"lon" binding:"required,min=-180,max=180"`
}

// PlaceCandidate is one geocoding match offered for user disambiguation.
// It lives only as long as one search-results dropdown.
type PlaceCandidate struct {
	PlaceID string  `json:"placeId"`
	Label   string  `json:"label"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// ReverseResponse carries the formatted place label for a coordinate pair.
type ReverseResponse struct {
	Label string `json:"label"`
}

// nominatimPlace mirrors the relevant parts of the OSM search payload.
// Coordinates arrive string-encoded and are parsed at this boundary.
type nominatimPlace struct {
	PlaceID     int64  `json:"place_id"`
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// nominatimReverse mirrors the relevant parts of the OSM reverse payload.
type nominatimReverse struct {
	DisplayName string `json:"display_name"`
}
