package catalog

import (
	"fmt"
	"log"
	"os"
	"strings"

	"assistente/internal/model"
)

const contextChunkSize = 1000

// buildDocuments derives the retrieval corpus from the listings: one main
// document per listing plus satellite characteristics and images documents
// sharing its code.
func buildDocuments(listings []model.Listing) []model.Document {
	var docs []model.Document
	for i := range listings {
		l := &listings[i]

		var sb strings.Builder
		fmt.Fprintf(&sb, "Imóvel: %s\n", l.Title)
		fmt.Fprintf(&sb, "Código: %s\n", l.Code)
		fmt.Fprintf(&sb, "Preço: %s\n", l.Price)
		fmt.Fprintf(&sb, "Endereço: %s\n", l.Address)
		fmt.Fprintf(&sb, "Descrição: %s\n", l.Description)
		fmt.Fprintf(&sb, "Link: %s", l.Link)
		docs = append(docs, model.Document{
			ID:   "imovel-" + l.Code,
			Text: sb.String(),
			Metadata: model.DocumentMetadata{
				Type:  model.DocTypeListing,
				Code:  l.Code,
				Title: l.Title,
				Price: l.Price,
				Link:  l.Link,
			},
		})

		if len(l.Characteristics) > 0 {
			var lines []string
			for _, f := range l.Summary().Features {
				lines = append(lines, f)
			}
			docs = append(docs, model.Document{
				ID:   "caracteristicas-" + l.Code,
				Text: fmt.Sprintf("Características do imóvel %s:\n%s", l.Code, strings.Join(lines, "\n")),
				Metadata: model.DocumentMetadata{
					Type:  model.DocTypeCharacteristics,
					Code:  l.Code,
					Title: l.Title,
				},
			})
		}

		if images := l.ImageLinks; len(images) > 0 || len(l.LocalImages) > 0 {
			if len(images) == 0 {
				images = l.LocalImages
			}
			var lines []string
			for i, img := range images {
				lines = append(lines, fmt.Sprintf("Imagem %d: %s", i+1, img))
			}
			docs = append(docs, model.Document{
				ID:   "imagens-" + l.Code,
				Text: fmt.Sprintf("Imagens do imóvel %s:\n%s", l.Code, strings.Join(lines, "\n")),
				Metadata: model.DocumentMetadata{
					Type:  model.DocTypeImages,
					Code:  l.Code,
					Title: l.Title,
				},
			})
		}
	}
	return docs
}

// loadContext reads the optional general-context markdown and splits it
// into paragraph-aligned chunks of roughly contextChunkSize characters.
func loadContext(path string) []model.Document {
	if path == "" {
		return nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: failed to read context file %s: %v", path, err)
		}
		return nil
	}

	chunks := splitContext(string(raw), contextChunkSize)
	docs := make([]model.Document, 0, len(chunks))
	for i, chunk := range chunks {
		docs = append(docs, model.Document{
			ID:       fmt.Sprintf("contexto-%d", i),
			Text:     chunk,
			Metadata: model.DocumentMetadata{Type: model.DocTypeContext},
		})
	}
	return docs
}

// splitContext accumulates paragraphs into chunks no longer than size,
// except when a single paragraph alone exceeds it.
func splitContext(text string, size int) []string {
	var chunks []string
	var current strings.Builder
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		if current.Len() > 0 && current.Len()+len(para)+2 > size {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(para)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}
