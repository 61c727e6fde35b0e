package model

// Document types as tagged in the retrieval corpus. Values match the
// metadata written by the data-preparation pipeline.
const (
	DocTypeListing         = "imovel"
	DocTypeCharacteristics = "caracteristicas"
	DocTypeImages          = "imagens"
	DocTypeContext         = "contexto"
)

// Document is one retrieval unit derived from a listing or from the
// general-context material.
type Document struct {
	ID       string           `json:"id"`
	Text     string           `json:"text"`
	Metadata DocumentMetadata `json:"metadata"`
}

// DocumentMetadata tags a document with its type and owning listing.
type DocumentMetadata struct {
	Type  string `json:"tipo"`
	Code  string `json:"codigo,omitempty"`
	Title string `json:"titulo,omitempty"`
	Price string `json:"preco,omitempty"`
	Link  string `json:"link,omitempty"`
}

// IsComplementary reports whether the document is a satellite of a listing
// document (characteristics or images sharing its code).
func (d *Document) IsComplementary() bool {
	return d.Metadata.Type == DocTypeCharacteristics || d.Metadata.Type == DocTypeImages
}
