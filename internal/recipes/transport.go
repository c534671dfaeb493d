package recipes

// SearchRequest asks for recipes tied to a location.
type SearchRequest struct {
	Location string `json:"location"`
}

// Ingredient is one line of a recipe's ingredient list.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// Recipe mirrors the recipe provider's response shape.
type Recipe struct {
	ID           string       `json:"id,omitempty"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions []string     `json:"instructions"`
	ImageURL     string       `json:"imageUrl,omitempty"`
}

type searchResponse struct {
	Recipes []Recipe `json:"recipes"`
}
