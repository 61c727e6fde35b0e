package service

import (
	"testing"

	"assistente/internal/model"
)

func testListings() []model.Listing {
	return []model.Listing{
		{
			Code:        "AP0001",
			Title:       "Apartamento no Centro",
			Price:       "R$ 850.000,00",
			Address:     "Rua José Bonifácio, Centro, Torres",
			Description: "Apartamento amplo com sacada e churrasqueira.",
			Characteristics: map[string]string{
				"Dormitórios": "3",
				"Banheiros":   "2",
				"Tipo":        "Apartamento",
			},
		},
		{
			Code:        "AP0002",
			Title:       "Apartamento na Praia Grande",
			Price:       "R$ 600.000,00",
			Address:     "Av. Beira Mar, Praia Grande, Torres",
			Description: "Vista para o mar, piscina no condomínio.",
			Characteristics: map[string]string{
				"Dormitórios": "2",
				"Banheiros":   "1",
				"Tipo":        "Apartamento",
			},
		},
		{
			Code:        "CA0003",
			Title:       "Casa sob consulta",
			Price:       "Preço a consultar",
			Address:     "Rua das Flores, Jardim, Torres",
			Description: "Casa espaçosa com piscina e área de lazer.",
			Characteristics: map[string]string{
				"Dormitórios": "3",
				"Tipo":        "Casa",
			},
		},
	}
}

func TestFilterByMaxPrice(t *testing.T) {
	listings := testListings()
	results := Filter(listings, &model.Criteria{PriceMax: float64Ptr(900000)}, 10)

	// The unparseable price resolves to +Inf and fails the upper bound.
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, l := range results {
		if l.Code == "CA0003" {
			t.Error("listing with unparseable price must fail any max-price bound")
		}
	}
}

func TestFilterByMinPrice(t *testing.T) {
	listings := testListings()
	results := Filter(listings, &model.Criteria{PriceMin: float64Ptr(700000)}, 10)

	// +Inf passes any lower bound, so the unparseable listing stays in.
	codes := resultCodes(results)
	if !codes["AP0001"] || !codes["CA0003"] || codes["AP0002"] {
		t.Errorf("unexpected results: %v", codes)
	}
}

func TestFilterByBedrooms(t *testing.T) {
	listings := testListings()
	results := Filter(listings, &model.Criteria{Bedrooms: intPtr(3)}, 10)

	codes := resultCodes(results)
	if len(results) != 2 || !codes["AP0001"] || !codes["CA0003"] {
		t.Errorf("expected exactly the 3-bedroom listings, got %v", codes)
	}
}

func TestFilterByNeighborhood(t *testing.T) {
	listings := testListings()
	results := Filter(listings, &model.Criteria{Neighborhood: strPtr("praia")}, 10)

	if len(results) != 1 || results[0].Code != "AP0002" {
		t.Errorf("expected only the Praia Grande listing, got %v", resultCodes(results))
	}
}

func TestFilterByPropertyType(t *testing.T) {
	listings := testListings()
	results := Filter(listings, &model.Criteria{PropertyType: strPtr("casa")}, 10)

	if len(results) != 1 || results[0].Code != "CA0003" {
		t.Errorf("expected only the house, got %v", resultCodes(results))
	}
}

func TestFilterFeaturesAreProgressive(t *testing.T) {
	listings := testListings()

	// One feature: two listings mention a pool.
	results := Filter(listings, &model.Criteria{Features: []string{"piscina"}}, 10)
	if len(results) != 2 {
		t.Fatalf("expected 2 pool listings, got %d", len(results))
	}

	// Adding a second feature narrows further (logical AND).
	results = Filter(listings, &model.Criteria{Features: []string{"piscina", "área de lazer"}}, 10)
	if len(results) != 1 || results[0].Code != "CA0003" {
		t.Errorf("expected only CA0003, got %v", resultCodes(results))
	}
}

func TestFilterFeatureMatchesCharacteristics(t *testing.T) {
	listings := []model.Listing{
		{
			Code:            "AP0009",
			Price:           "R$ 300.000,00",
			Characteristics: map[string]string{"Vagas na garagem": "2"},
		},
	}
	results := Filter(listings, &model.Criteria{Features: []string{"garagem"}}, 10)
	if len(results) != 1 {
		t.Error("feature must match against characteristics keys as well")
	}
}

func TestFilterCapsResults(t *testing.T) {
	var listings []model.Listing
	for i := 0; i < 25; i++ {
		listings = append(listings, model.Listing{Code: "X", Price: "R$ 100.000,00"})
	}
	results := Filter(listings, &model.Criteria{}, 10)
	if len(results) != 10 {
		t.Errorf("expected the cap of 10, got %d", len(results))
	}
}

func TestFilterQuestionScenario(t *testing.T) {
	// "Quais imóveis tem 3 quartos?" must yield the 3-bedroom subset.
	criteria := ExtractSearch("Quais imóveis tem 3 quartos?")
	if criteria.Bedrooms == nil || *criteria.Bedrooms != 3 {
		t.Fatalf("expected bedroom criterion 3, got %+v", criteria)
	}

	catalog := []model.Listing{
		{Code: "A", Price: "R$ 1,00", Characteristics: map[string]string{"Dormitórios": "3"}},
		{Code: "B", Price: "R$ 1,00", Characteristics: map[string]string{"Dormitórios": "2"}},
	}
	results := Filter(catalog, criteria, 10)
	if len(results) != 1 || results[0].Code != "A" {
		t.Errorf("expected only the 3-bedroom listing, got %v", resultCodes(results))
	}
}

func resultCodes(listings []model.Listing) map[string]bool {
	codes := make(map[string]bool, len(listings))
	for _, l := range listings {
		codes[l.Code] = true
	}
	return codes
}
