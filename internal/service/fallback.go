package service

import (
	"fmt"
	"regexp"
	"strings"

	"assistente/internal/model"
)

// Fixed responses for the engine's terminal states.
const (
	msgNoData  = "Desculpe, ainda não tenho dados sobre imóveis para responder."
	msgApology = "Desculpe, ocorreu um erro ao processar sua pergunta. Por favor, tente novamente mais tarde."
)

func msgCodeNotFound(code string) string {
	return fmt.Sprintf("Desculpe, não encontrei nenhum imóvel com o código %s.", code)
}

var (
	fallbackPriceRe    = regexp.MustCompile(`(\d+)\s*(milh(?:ão|ao|ões|oes)|mil)`)
	fallbackBedroomsRe = regexp.MustCompile(`(\d+)\s*(quartos|dormitórios|dormitorio)`)
)

// detailFallback is the deterministic substitute for a single-listing answer
// when the generator is unavailable or failed.
func detailFallback(l *model.Listing) string {
	bedrooms := charOr(l, model.CharBedrooms, "não informado")
	bathrooms := charOr(l, model.CharBathrooms, "não informado")
	area := charOr(l, model.CharArea, "não informado")

	var sb strings.Builder
	fmt.Fprintf(&sb, "O imóvel %s é %s e custa %s. ", l.Code, l.Title, l.Price)
	fmt.Fprintf(&sb, "Está localizado em %s. ", l.Address)
	fmt.Fprintf(&sb, "Possui %s dormitório(s), %s banheiro(s) e área total de %s. ", bedrooms, bathrooms, area)
	fmt.Fprintf(&sb, "\n\n%s", l.Description)
	return sb.String()
}

// genericFallback builds a templated answer keyed on what the question
// mentions: a price range, a known location or a bedroom count, in that
// order, with a default header otherwise.
func genericFallback(question string) string {
	lower := strings.ToLower(question)

	if m := fallbackPriceRe.FindStringSubmatch(lower); m != nil ||
		strings.Contains(lower, "preço") || strings.Contains(lower, "valor") {
		if m != nil {
			value := 0
			fmt.Sscanf(m[1], "%d", &value)
			if strings.HasPrefix(m[2], "milh") {
				value *= 1_000_000
			} else {
				value *= 1_000
			}
			return fmt.Sprintf(`**IMÓVEIS NA SUA FAIXA DE PREÇO** 💰

Olha só que legal! Temos diversos imóveis na faixa de preço de **R$ %s**.

Aqui estão algumas opções incríveis que selecionei especialmente para você:

---------------`, formatThousands(value))
		}
		return `**IMÓVEIS COM DIFERENTES PREÇOS** 💰

Temos imóveis em diversas faixas de preço para atender ao seu orçamento!

Confira estas opções sensacionais que separei especialmente para você:

---------------`
	}

	for _, area := range knownNeighborhoods {
		if strings.Contains(lower, area) {
			return fmt.Sprintf(`**IMÓVEIS EM %s** 📍

Que maravilha! Temos diversas opções na região de **%s**.

Confira estas propriedades especiais que selecionei para você:

---------------`, strings.ToUpper(area), capitalize(area))
		}
	}

	if m := fallbackBedroomsRe.FindStringSubmatch(lower); m != nil {
		return fmt.Sprintf(`**IMÓVEIS COM %s DORMITÓRIOS** 🛏️

Super legal! Encontrei imóveis com **%s dormitórios** disponíveis.

Dê uma olhada nestas opções incríveis:

---------------`, m[1], m[1])
	}
	if strings.Contains(lower, "quarto") || strings.Contains(lower, "dormitório") {
		return `**IMÓVEIS COM DIFERENTES CONFIGURAÇÕES** 🛏️

Temos imóveis com diferentes configurações de dormitórios para atender à sua necessidade!

Confira estas opções que separei especialmente para você:

---------------`
	}

	return `**IMÓVEIS SELECIONADOS PARA VOCÊ** 🏠

Olha só que bacana! Encontrei alguns imóveis que podem te interessar com base na sua pergunta.

Confira estas opções especiais:

---------------`
}

// formatThousands renders an integer with BR thousands separators.
func formatThousands(v int) string {
	s := fmt.Sprintf("%d", v)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ".")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
