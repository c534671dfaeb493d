package markers

import (
	"testing"

	"sabores_backend/internal/poi"
)

func TestIconFor(t *testing.T) {
	tests := []struct {
		category poi.Category
		want     Icon
	}{
		{poi.CategoryRestaurant, restaurantIcon},
		{poi.CategoryCafe, cafeIcon},
		{poi.CategoryFastFood, fastFoodIcon},
		{poi.CategoryPub, cafeIcon},
		{poi.CategoryBar, cafeIcon},
		{poi.Category("biergarten"), restaurantIcon},
	}

	for _, tc := range tests {
		if got := IconFor(tc.category); got != tc.want {
			t.Errorf("IconFor(%q) = %+v, want %+v", tc.category, got, tc.want)
		}
	}
}

func TestSummaryOfOmitsAbsentFields(t *testing.T) {
	p := poi.PointOfInterest{
		Name:     "Café Central",
		Category: poi.CategoryCafe,
		Cuisine:  "coffee_shop",
		Website:  "https://cafecentral.example",
	}

	summary := SummaryOf(p)

	if summary.Title != "Café Central" {
		t.Errorf("title = %q", summary.Title)
	}
	if summary.Category != "Café" {
		t.Errorf("category label = %q, want Café", summary.Category)
	}
	if len(summary.Rows) != 2 {
		t.Fatalf("got %d rows, want 2 (absent fields must produce no row)", len(summary.Rows))
	}
	if summary.Rows[0].Label != "Cocina" || summary.Rows[0].Value != "coffee_shop" {
		t.Errorf("row 0 = %+v", summary.Rows[0])
	}
	if summary.Rows[1].Label != "Sitio web" || summary.Rows[1].Value != "https://cafecentral.example" {
		t.Errorf("row 1 = %+v", summary.Rows[1])
	}
}

func TestSummaryOfFullRecordRowOrder(t *testing.T) {
	p := poi.PointOfInterest{
		Name:         "El Fogón",
		Category:     poi.CategoryRestaurant,
		Cuisine:      "mexican",
		Address:      "Av. Central 45",
		Phone:        "+529611234567",
		OpeningHours: "Mo-Su 09:00-22:00",
		Website:      "https://elfogon.example",
	}

	summary := SummaryOf(p)

	wantLabels := []string{"Cocina", "Dirección", "Teléfono", "Horario", "Sitio web"}
	if len(summary.Rows) != len(wantLabels) {
		t.Fatalf("got %d rows, want %d", len(summary.Rows), len(wantLabels))
	}
	for i, want := range wantLabels {
		if summary.Rows[i].Label != want {
			t.Errorf("row %d label = %q, want %q", i, summary.Rows[i].Label, want)
		}
	}
}

func TestTranslateCategory(t *testing.T) {
	tests := []struct {
		category poi.Category
		want     string
	}{
		{poi.CategoryRestaurant, "Restaurante"},
		{poi.CategoryCafe, "Café"},
		{poi.CategoryFastFood, "Comida rápida"},
		{poi.CategoryPub, "Pub"},
		{poi.CategoryBar, "Bar"},
		{poi.Category("salsa"), "salsa"},
	}

	for _, tc := range tests {
		if got := TranslateCategory(tc.category); got != tc.want {
			t.Errorf("TranslateCategory(%q) = %q, want %q", tc.category, got, tc.want)
		}
	}
}
