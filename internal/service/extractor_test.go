package service

import (
	"reflect"
	"testing"
)

func TestExtractSearch(t *testing.T) {
	tests := []struct {
		name             string
		text             string
		wantPriceMin     *float64
		wantPriceMax     *float64
		wantBedrooms     *int
		wantNeighborhood *string
		wantType         *string
		wantFeatures     []string
	}{
		{
			name:         "Bedroom count from digits",
			text:         "Quais imóveis tem 3 quartos?",
			wantBedrooms: intPtr(3),
		},
		{
			name:         "Price mention becomes a 20 percent band",
			text:         "procuro algo por 500 mil",
			wantPriceMin: float64Ptr(400000),
			wantPriceMax: float64Ptr(600000),
		},
		{
			name:         "Millions unit",
			text:         "tenho 2 milhões para investir",
			wantPriceMin: float64Ptr(1600000),
			wantPriceMax: float64Ptr(2400000),
		},
		{
			name:             "Neighborhood from closed list",
			text:             "Tem algum apartamento na Praia?",
			wantNeighborhood: strPtr("praia"),
			wantType:         strPtr("apartamento"),
		},
		{
			name:         "Features accumulate",
			text:         "quero casa com piscina e churrasqueira",
			wantType:     strPtr("casa"),
			wantFeatures: []string{"piscina", "churrasqueira"},
		},
		{
			name:         "Spelled-out bedroom words are ignored in search variant",
			text:         "imóvel com três quartos",
			wantBedrooms: nil,
		},
		{
			name: "No criteria",
			text: "oi, tudo bem?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSearch(tt.text)

			assertFloatPtr(t, "PriceMin", got.PriceMin, tt.wantPriceMin)
			assertFloatPtr(t, "PriceMax", got.PriceMax, tt.wantPriceMax)
			assertIntPtr(t, "Bedrooms", got.Bedrooms, tt.wantBedrooms)
			assertStrPtr(t, "Neighborhood", got.Neighborhood, tt.wantNeighborhood)
			assertStrPtr(t, "PropertyType", got.PropertyType, tt.wantType)
			if !reflect.DeepEqual(got.Features, tt.wantFeatures) {
				t.Errorf("Features = %v, want %v", got.Features, tt.wantFeatures)
			}
		})
	}
}

func TestExtractSearchDeterministic(t *testing.T) {
	text := "apartamento no centro com 2 quartos até 800 mil com piscina"
	first := ExtractSearch(text)
	second := ExtractSearch(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("extraction is not idempotent: %+v vs %+v", first, second)
	}
}

func TestExtractPreferences(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantPriceMax *float64
		wantBedrooms *int
	}{
		{
			name:         "Exact max price with qualifier",
			text:         "posso pagar até 500 mil",
			wantPriceMax: float64Ptr(500000),
		},
		{
			name:         "Exact max price in millions",
			text:         "no máximo 1 milhão",
			wantPriceMax: float64Ptr(1000000),
		},
		{
			name:         "Spelled-out bedroom count",
			text:         "preciso de três dormitórios",
			wantBedrooms: intPtr(3),
		},
		{
			name:         "Digit bedroom count",
			text:         "quero 2 quartos",
			wantBedrooms: intPtr(2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractPreferences(tt.text)
			assertFloatPtr(t, "PriceMax", got.PriceMax, tt.wantPriceMax)
			if got.PriceMin != nil {
				t.Errorf("PriceMin = %v, want nil (preference variant has no band)", *got.PriceMin)
			}
			assertIntPtr(t, "Bedrooms", got.Bedrooms, tt.wantBedrooms)
		})
	}
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "Meu nome é", text: "Olá, meu nome é Carolina", want: "Carolina"},
		{name: "Me chamo", text: "me chamo Pedro e procuro um apartamento", want: "Pedro"},
		{name: "Pode me chamar de", text: "pode me chamar de Fernanda", want: "Fernanda"},
		{name: "Eu sou", text: "eu sou o Ricardo", want: "Ricardo"},
		{name: "Short token rejected", text: "eu sou o Zé", want: ""},
		{name: "No name", text: "quero um apartamento no centro", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractName(tt.text); got != tt.want {
				t.Errorf("ExtractName(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// Helper functions

func float64Ptr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func assertFloatPtr(t *testing.T, field string, got, want *float64) {
	t.Helper()
	switch {
	case want == nil && got != nil:
		t.Errorf("%s = %v, want nil", field, *got)
	case want != nil && got == nil:
		t.Errorf("%s = nil, want %v", field, *want)
	case want != nil && *got != *want:
		t.Errorf("%s = %v, want %v", field, *got, *want)
	}
}

func assertIntPtr(t *testing.T, field string, got, want *int) {
	t.Helper()
	switch {
	case want == nil && got != nil:
		t.Errorf("%s = %d, want nil", field, *got)
	case want != nil && got == nil:
		t.Errorf("%s = nil, want %d", field, *want)
	case want != nil && *got != *want:
		t.Errorf("%s = %d, want %d", field, *got, *want)
	}
}

func assertStrPtr(t *testing.T, field string, got, want *string) {
	t.Helper()
	switch {
	case want == nil && got != nil:
		t.Errorf("%s = %q, want nil", field, *got)
	case want != nil && got == nil:
		t.Errorf("%s = nil, want %q", field, *want)
	case want != nil && *got != *want:
		t.Errorf("%s = %q, want %q", field, *got, *want)
	}
}
