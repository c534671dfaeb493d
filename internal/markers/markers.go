// Package markers maps POI categories to visual marker treatments and builds
// the renderable detail summary for a POI. Everything here is a deterministic
// pure mapping; no shared defaults are mutated.
package markers

import "sabores_backend/internal/poi"

// Icon describes one of the fixed visual marker treatments.
type Icon struct {
	Kind  string `json:"kind"`
	Color string `json:"color"`
}

var (
	restaurantIcon = Icon{Kind: "restaurant", Color: "red"}
	cafeIcon       = Icon{Kind: "cafe", Color: "orange"}
	fastFoodIcon   = Icon{Kind: "fast_food", Color: "yellow"}
)

// IconFor returns the marker treatment for a category. Pub and bar share the
// cafe treatment; anything else renders as a restaurant.
func IconFor(category poi.Category) Icon {
	switch category {
	case poi.CategoryCafe, poi.CategoryPub, poi.CategoryBar:
		return cafeIcon
	case poi.CategoryFastFood:
		return fastFoodIcon
	default:
		return restaurantIcon
	}
}

// categoryLabels is the fixed localized enumeration for category display.
var categoryLabels = map[poi.Category]string{
	poi.CategoryRestaurant: "Restaurante",
	poi.CategoryCafe:       "Café",
	poi.CategoryFastFood:   "Comida rápida",
	poi.CategoryPub:        "Pub",
	poi.CategoryBar:        "Bar",
}

// TranslateCategory returns the localized label for a category. Unknown input
// is returned verbatim.
func TranslateCategory(category poi.Category) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return string(category)
}

// SummaryRow is one labeled line of the detail block.
type SummaryRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Summary is the renderable detail block for one POI.
type Summary struct {
	Title    string       `json:"title"`
	Category string       `json:"category"`
	Rows     []SummaryRow `json:"rows"`
}

// SummaryOf builds the detail block. Absent optional fields produce no row.
func SummaryOf(p poi.PointOfInterest) Summary {
	summary := Summary{
		Title:    p.Name,
		Category: TranslateCategory(p.Category),
		Rows:     []SummaryRow{},
	}

	optional := []SummaryRow{
		{Label: "Cocina", Value: p.Cuisine},
		{Label: "Dirección", Value: p.Address},
		{Label: "Teléfono", Value: p.Phone},
		{Label: "Horario", Value: p.OpeningHours},
		{Label: "Sitio web", Value: p.Website},
	}
	for _, row := range optional {
		if row.Value != "" {
			summary.Rows = append(summary.Rows, row)
		}
	}

	return summary
}
