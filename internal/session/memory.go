package session

import (
	"time"

	"assistente/internal/model"
)

// Preferences accumulates what the client has told us across the
// conversation. Scalar fields are overwritten by newer mentions; features
// only accumulate.
type Preferences struct {
	MaxPrice     *float64 `json:"preco_max,omitempty"`
	Bedrooms     *int     `json:"dormitorios,omitempty"`
	Neighborhood *string  `json:"bairro,omitempty"`
	PropertyType *string  `json:"tipo,omitempty"`
	Features     []string `json:"caracteristicas,omitempty"`
}

// Criteria converts the remembered preferences into filter criteria.
func (p *Preferences) Criteria() *model.Criteria {
	return &model.Criteria{
		PriceMax:     p.MaxPrice,
		Bedrooms:     p.Bedrooms,
		Neighborhood: p.Neighborhood,
		PropertyType: p.PropertyType,
		Features:     p.Features,
	}
}

// Memory is the per-session client profile: identity, preferences and
// interaction history. Not safe for concurrent use; callers hold the
// session lock.
type Memory struct {
	Name            string            `json:"nome,omitempty"`
	Preferences     Preferences       `json:"preferencias"`
	LastInteraction time.Time         `json:"ultima_interacao"`
	Interactions    int               `json:"total_interacoes"`
	Visited         map[string]bool   `json:"imoveis_visitados"`
	Feedback        map[string]string `json:"feedback"`
}

// NewMemory creates an empty client memory.
func NewMemory() *Memory {
	return &Memory{
		Visited:  make(map[string]bool),
		Feedback: make(map[string]string),
	}
}

// Touch registers one interaction, unconditionally, even when no
// preference was extracted from the message.
func (m *Memory) Touch() {
	m.Interactions++
	m.LastInteraction = time.Now()
}

// SetName records the client's name once; later mentions never overwrite.
func (m *Memory) SetName(name string) {
	if m.Name == "" && name != "" {
		m.Name = name
	}
}

// Absorb folds freshly extracted preference criteria into the memory.
// Scalar fields overwrite, features are added with deduplication.
func (m *Memory) Absorb(c *model.Criteria) {
	if c == nil {
		return
	}
	if c.PriceMax != nil {
		m.Preferences.MaxPrice = c.PriceMax
	}
	if c.Bedrooms != nil {
		m.Preferences.Bedrooms = c.Bedrooms
	}
	if c.Neighborhood != nil {
		m.Preferences.Neighborhood = c.Neighborhood
	}
	if c.PropertyType != nil {
		m.Preferences.PropertyType = c.PropertyType
	}
	for _, f := range c.Features {
		m.AddFeature(f)
	}
}

// AddFeature adds a feature preference if not already present.
func (m *Memory) AddFeature(feature string) {
	for _, f := range m.Preferences.Features {
		if f == feature {
			return
		}
	}
	m.Preferences.Features = append(m.Preferences.Features, feature)
}

// RecordVisit marks listing codes shown to the client.
func (m *Memory) RecordVisit(codes ...string) {
	for _, code := range codes {
		m.Visited[code] = true
	}
}

// RecordFeedback stores free-text feedback about a listing; the latest
// write wins.
func (m *Memory) RecordFeedback(code, text string) {
	m.Feedback[code] = text
}
