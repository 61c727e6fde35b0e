package service

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"assistente/internal/model"
)

// Extraction is rule-table driven: one ordered table per field, matched
// case-insensitively and independently against the message. Scalar fields
// are first-match-wins; features accumulate.

// knownNeighborhoods is the closed list of area names the site covers.
var knownNeighborhoods = []string{
	"centro", "praia", "cal", "grande", "torres", "jardim", "predial",
}

// featureRule maps a canonical feature name to the phrases that imply it.
type featureRule struct {
	Name     string
	Patterns []string
}

var featureRules = []featureRule{
	{"piscina", []string{"piscina"}},
	{"churrasqueira", []string{"churrasqueira", "churrasco"}},
	{"mobiliado", []string{"mobiliado", "mobiliada"}},
	{"garagem", []string{"garagem", "vaga de garagem", "vagas"}},
	{"suíte", []string{"suíte", "suite"}},
	{"sacada", []string{"sacada", "varanda"}},
	{"área de lazer", []string{"área de lazer", "area de lazer", "espaço gourmet", "espaco gourmet"}},
}

// typeRule maps a canonical property type to its mention keywords.
type typeRule struct {
	Name     string
	Keywords []string
}

var propertyTypeRules = []typeRule{
	{"apartamento", []string{"apartamento", "apto"}},
	{"casa", []string{"casa", "sobrado"}},
	{"terreno", []string{"terreno", "lote"}},
	{"cobertura", []string{"cobertura"}},
	{"sala comercial", []string{"sala comercial", "loja comercial", "sala para loja"}},
}

var (
	// Qualified mentions ("até 500 mil") are preferred over bare ones. The
	// "milh" alternatives come first so "milhão" is not consumed as "mil".
	pricePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:até|ate|no máximo|no maximo|máximo de|maximo de)\s*(?:de\s*)?(?:r\$\s*)?(\d+)\s*(milh(?:ão|ao|ões|oes)|mil)`),
		regexp.MustCompile(`(\d+)\s*(milh(?:ão|ao|ões|oes)|mil)`),
	}

	bedroomsDigitRe = regexp.MustCompile(`(\d+)\s*(?:quartos?|dormit[óo]rios?)`)
	bedroomsWordRe  = regexp.MustCompile(`(um|uma|dois|duas|três|tres|quatro|cinco)\s+(?:quartos?|dormit[óo]rios?)`)

	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)meu nome [ée]\s+([\p{L}]+)`),
		regexp.MustCompile(`(?i)me chamo\s+([\p{L}]+)`),
		regexp.MustCompile(`(?i)pode me chamar de\s+([\p{L}]+)`),
		regexp.MustCompile(`(?i)\beu sou (?:o |a )?([\p{L}]+)`),
	}
)

var bedroomWords = map[string]int{
	"um": 1, "uma": 1,
	"dois": 2, "duas": 2,
	"três": 3, "tres": 3,
	"quatro": 4,
	"cinco": 5,
}

// searchPriceMargin widens a literal price mention into a ±20% band, so a
// mentioned value retrieves nearby-priced listings instead of exact matches.
const searchPriceMargin = 0.2

// ExtractName pulls a self-introduced name out of a message. First matching
// pattern wins; single-token articles (length <= 2) are rejected.
func ExtractName(text string) string {
	for _, re := range namePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			name := strings.TrimSpace(m[1])
			if utf8.RuneCountInString(name) > 2 {
				return name
			}
		}
	}
	return ""
}

// ExtractPreferences is the preference variant of criteria extraction, used
// to update client memory. Price is exact (PriceMax only, no margin) and
// bedroom counts accept spelled-out numbers.
func ExtractPreferences(text string) *model.Criteria {
	lower := strings.ToLower(strings.TrimSpace(text))
	c := &model.Criteria{}

	if value, ok := extractPriceValue(lower); ok {
		c.PriceMax = &value
	}
	if m := bedroomsDigitRe.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			c.Bedrooms = &n
		}
	} else if m := bedroomsWordRe.FindStringSubmatch(lower); m != nil {
		if n, ok := bedroomWords[m[1]]; ok {
			c.Bedrooms = &n
		}
	}
	extractCommon(lower, c)
	return c
}

// ExtractSearch is the per-question variant of criteria extraction. A price
// mention yields a ±20% band and bedroom counts are digits only.
func ExtractSearch(text string) *model.Criteria {
	lower := strings.ToLower(strings.TrimSpace(text))
	c := &model.Criteria{}

	if value, ok := extractPriceValue(lower); ok {
		min := value * (1 - searchPriceMargin)
		max := value * (1 + searchPriceMargin)
		c.PriceMin = &min
		c.PriceMax = &max
	}
	if m := bedroomsDigitRe.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			c.Bedrooms = &n
		}
	}
	extractCommon(lower, c)
	return c
}

// extractCommon fills the fields shared by both variants: neighborhood
// (first match in the closed area list), property type (first rule whose
// keyword appears) and the accumulated feature set.
func extractCommon(lower string, c *model.Criteria) {
	for _, area := range knownNeighborhoods {
		if strings.Contains(lower, area) {
			area := area
			c.Neighborhood = &area
			break
		}
	}
	for _, rule := range propertyTypeRules {
		if containsAny(lower, rule.Keywords) {
			name := rule.Name
			c.PropertyType = &name
			break
		}
	}
	for _, rule := range featureRules {
		if containsAny(lower, rule.Patterns) {
			c.Features = append(c.Features, rule.Name)
		}
	}
}

// extractPriceValue finds the first price mention and converts its unit:
// "mil" multiplies by a thousand, "milhão"/"milhões" by a million.
func extractPriceValue(lower string) (float64, bool) {
	for _, re := range pricePatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if strings.HasPrefix(m[2], "milh") {
			value *= 1_000_000
		} else {
			value *= 1_000
		}
		return value, true
	}
	return 0, false
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
