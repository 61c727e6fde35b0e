package model

import "sort"

// Listing represents a property listing as produced by the scraping pipeline.
// Listings are immutable after catalog load.
type Listing struct {
	Code            string            `json:"codigo"`
	Title           string            `json:"titulo"`
	Price           string            `json:"preco"`
	Address         string            `json:"endereco"`
	Description     string            `json:"descricao"`
	Characteristics map[string]string `json:"caracteristicas"`
	Link            string            `json:"link"`
	ImageLinks      []string          `json:"links_imagens,omitempty"`
	MainImage       string            `json:"imagem_principal,omitempty"`
	LocalImages     []string          `json:"imagens_locais,omitempty"`
}

// Characteristic keys used by the scraper output.
const (
	CharBedrooms  = "Dormitórios"
	CharBathrooms = "Banheiros"
	CharGarage    = "Vagas na garagem"
	CharArea      = "Área total"
	CharType      = "Tipo"
)

// ListingSummary is the compact listing view attached to assistant answers.
type ListingSummary struct {
	Code      string   `json:"codigo"`
	Title     string   `json:"titulo"`
	Price     string   `json:"preco"`
	Link      string   `json:"link"`
	Bedrooms  string   `json:"dormitorios,omitempty"`
	Bathrooms string   `json:"banheiros,omitempty"`
	Garage    string   `json:"garagem,omitempty"`
	Area      string   `json:"area,omitempty"`
	Type      string   `json:"tipo,omitempty"`
	Features  []string `json:"features,omitempty"`
}

// Summary builds the compact view of a listing. Features carry every
// characteristic as a "key: value" string, sorted for determinism.
func (l *Listing) Summary() ListingSummary {
	s := ListingSummary{
		Code:      l.Code,
		Title:     l.Title,
		Price:     l.Price,
		Link:      l.Link,
		Bedrooms:  l.Characteristics[CharBedrooms],
		Bathrooms: l.Characteristics[CharBathrooms],
		Garage:    l.Characteristics[CharGarage],
		Area:      l.Characteristics[CharArea],
		Type:      l.Characteristics[CharType],
	}
	keys := make([]string, 0, len(l.Characteristics))
	for k := range l.Characteristics {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		s.Features = append(s.Features, k+": "+l.Characteristics[k])
	}
	return s
}
