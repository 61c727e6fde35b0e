package service

import (
	"fmt"
	"strings"

	"assistente/internal/model"
)

const assistantPersona = `Você é Torres Virtual, assistente especializado em imóveis da Nova Torres Imobiliária, com personalidade calorosa e entusiasmada. Converse como um corretor amigável e experiente, nunca como um robô, e NÃO mencione que você é uma IA.`

// buildDetailPrompt hands the generator the structured facts of one listing
// for a single-property answer.
func buildDetailPrompt(l *model.Listing, clientName string) string {
	var sb strings.Builder
	sb.WriteString(assistantPersona)
	sb.WriteString("\n\nForneça informações sobre o seguinte imóvel:\n\n")
	fmt.Fprintf(&sb, "Código: %s\n", l.Code)
	fmt.Fprintf(&sb, "Título: %s\n", l.Title)
	fmt.Fprintf(&sb, "Preço: %s\n", l.Price)
	fmt.Fprintf(&sb, "Endereço: %s\n", l.Address)
	fmt.Fprintf(&sb, "Dormitórios: %s\n", charOr(l, model.CharBedrooms, "não informado"))
	fmt.Fprintf(&sb, "Banheiros: %s\n", charOr(l, model.CharBathrooms, "não informado"))
	fmt.Fprintf(&sb, "Área total: %s\n", charOr(l, model.CharArea, "não informado"))
	fmt.Fprintf(&sb, "Link do imóvel: %s\n", l.Link)

	if len(l.Characteristics) > 0 {
		sb.WriteString("\nCaracterísticas adicionais:\n")
		sb.WriteString(strings.Join(l.Summary().Features, ", "))
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "\nDescrição:\n%s\n", l.Description)

	if clientName != "" {
		fmt.Fprintf(&sb, "\nO cliente se chama %s; use o nome dele na resposta.\n", clientName)
	}

	sb.WriteString(`
DIRETRIZES:
1. Seja entusiasmado e descreva vividamente pelo menos 3 vantagens do imóvel
2. Mencione que há fotos disponíveis ao lado que o cliente deve ver
3. Mencione o link para mais detalhes
4. Termine com um convite para agendar uma visita
5. Formate com título em negrito, seções com marcadores (•) e emojis relevantes`)
	return sb.String()
}

// buildSelectionPrompt hands the generator the question, the conversation so
// far, the matched listings and extra retrieved context.
func buildSelectionPrompt(question string, listings []model.Listing, transcript string, docs []model.Document) string {
	var sb strings.Builder
	sb.WriteString(assistantPersona)
	fmt.Fprintf(&sb, "\n\nO usuário perguntou: %q\n", question)

	if transcript != "" {
		fmt.Fprintf(&sb, "\nHistórico da conversa:\n%s\n", transcript)
	}

	sb.WriteString("\nCom base nesta pergunta, encontrei os seguintes imóveis que podem ser relevantes:\n")
	for i := range listings {
		l := &listings[i]
		fmt.Fprintf(&sb, "\nImóvel %d:\n", i+1)
		fmt.Fprintf(&sb, "Código: %s\n", l.Code)
		fmt.Fprintf(&sb, "Título: %s\n", l.Title)
		fmt.Fprintf(&sb, "Preço: %s\n", l.Price)
		fmt.Fprintf(&sb, "Endereço: %s\n", l.Address)
		fmt.Fprintf(&sb, "Dormitórios: %s\n", charOr(l, model.CharBedrooms, "Não informado"))
		fmt.Fprintf(&sb, "Banheiros: %s\n", charOr(l, model.CharBathrooms, "Não informado"))
		fmt.Fprintf(&sb, "Área: %s\n", charOr(l, model.CharArea, "Não informada"))
	}

	if context := contextExcerpt(docs, 3); context != "" {
		fmt.Fprintf(&sb, "\nContexto adicional:\n%s\n", context)
	}

	sb.WriteString(`
DIRETRIZES:
1. Fale com entusiasmo sobre os imóveis, citando características positivas de cada um
2. Diga explicitamente "confira as fotos ao lado" e que o cliente pode clicar no link de cada imóvel
3. Numere cada imóvel em uma seção separada (**IMÓVEL 1**, **IMÓVEL 2**) com marcadores (•)
4. Termine com um convite para agendar uma visita`)
	return sb.String()
}

// contextExcerpt joins the text of up to n retrieved documents.
func contextExcerpt(docs []model.Document, n int) string {
	var parts []string
	for _, doc := range docs {
		if len(parts) >= n {
			break
		}
		parts = append(parts, doc.Text)
	}
	return strings.Join(parts, "\n---\n")
}

func charOr(l *model.Listing, key, fallback string) string {
	if v := l.Characteristics[key]; v != "" {
		return v
	}
	return fallback
}
