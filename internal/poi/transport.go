package poi

// Category is the fixed amenity enumeration used for typing and markers.
// Anything the provider reports outside this set maps to CategoryRestaurant.
type Category string

const (
	CategoryRestaurant Category = "restaurant"
	CategoryCafe       Category = "cafe"
	CategoryFastFood   Category = "fast_food"
	CategoryPub        Category = "pub"
	CategoryBar        Category = "bar"
)

// ParseCategory maps a raw amenity tag onto the fixed enumeration.
func ParseCategory(raw string) Category {
	switch Category(raw) {
	case CategoryCafe:
		return CategoryCafe
	case CategoryFastFood:
		return CategoryFastFood
	case CategoryPub:
		return CategoryPub
	case CategoryBar:
		return CategoryBar
	default:
		return CategoryRestaurant
	}
}

// SearchRequest represents the query parameters for a stateless POI read.
// The coordinates are pointers so that an omitted parameter fails binding
// instead of silently reading as (0, 0).
type SearchRequest struct {
	Lat    *float64 `form:"lat" binding:"required,min=-90,max=90"`
	Lon    *float64 `form:"lon" binding:"required,min=-180,max=180"`
	Radius int      `form:"radius"`
}

// PointOfInterest is a normalized eatery. The raw tag mapping is preserved for
// forward-compatible display of attributes this shape does not model.
type PointOfInterest struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Category     Category          `json:"category"`
	Lat          float64           `json:"lat"`
	Lng          float64           `json:"lng"`
	Address      string            `json:"address,omitempty"`
	Cuisine      string            `json:"cuisine,omitempty"`
	Phone        string            `json:"phone,omitempty"`
	Website      string            `json:"website,omitempty"`
	OpeningHours string            `json:"openingHours,omitempty"`
	Tags         map[string]string `json:"tags"`
}

// overpassResponse mirrors the Overpass API JSON payload.
type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

// overpassElement is either a node (native lat/lon) or a way (centroid under
// the "center" field, requested with `out center`).
type overpassElement struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    float64           `json:"lat"`
	Lon    float64           `json:"lon"`
	Center *overpassCenter   `json:"center"`
	Tags   map[string]string `json:"tags"`
}

type overpassCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
