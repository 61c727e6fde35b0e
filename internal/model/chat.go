package model

// AskRequest is the payload for a conversational question.
type AskRequest struct {
	Question  string `json:"pergunta" binding:"required"`
	SessionID string `json:"session_id,omitempty"`
}

// Answer is the assistant's response payload for one question.
type Answer struct {
	Text            string           `json:"resposta"`
	RelatedListings []ListingSummary `json:"imoveis_relacionados"`
	RelatedImages   []string         `json:"imagens_relacionadas"`
	SessionID       string           `json:"session_id"`
}

// SearchRequest is the payload for the direct criteria search surface,
// bypassing sessions and history.
type SearchRequest struct {
	Bedrooms     *int     `json:"dormitorios,omitempty"`
	Neighborhood *string  `json:"bairro,omitempty"`
	PriceMax     *float64 `json:"preco_max,omitempty"`
	PriceMin     *float64 `json:"preco_min,omitempty"`
	PropertyType *string  `json:"tipo,omitempty"`
	Features     []string `json:"caracteristicas,omitempty"`
}

// Criteria converts the request into filter criteria.
func (r *SearchRequest) Criteria() *Criteria {
	return &Criteria{
		PriceMin:     r.PriceMin,
		PriceMax:     r.PriceMax,
		Bedrooms:     r.Bedrooms,
		Neighborhood: r.Neighborhood,
		PropertyType: r.PropertyType,
		Features:     r.Features,
	}
}

// SessionRequest addresses an existing conversation session.
type SessionRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// FeedbackRequest records client feedback about one listing.
type FeedbackRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Code      string `json:"codigo" binding:"required"`
	Comment   string `json:"comentario" binding:"required"`
}
