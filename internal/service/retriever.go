package service

import (
	"math/rand"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"assistente/internal/model"
)

// domainTerms are property vocabulary added to the keyword set whenever they
// literally appear in the question, covering compound phrases the generic
// tokenizer misses.
var domainTerms = []string{
	"quarto", "quartos", "dormitório", "dormitórios", "apartamento", "casa",
	"praia", "garagem", "suite", "suíte", "banheiro", "preço", "centro", "área",
}

// stopWords are removed from the keyword set before scoring.
var stopWords = map[string]bool{
	"com": true, "que": true, "para": true, "por": true, "dos": true,
	"das": true, "tem": true, "mais": true, "são": true, "não": true,
	"sim": true,
}

// keywordRe matches maximal word runs of at least three runes. \w would be
// ASCII-only and shred accented words into fragments, so the class is spelled
// out with unicode properties.
var keywordRe = regexp.MustCompile(`[\p{L}\p{N}_]{3,}`)

// Scoring weights: keyword occurrences count 1.0 each, with bonuses when
// the keyword also hits the title or code metadata, then a per-type
// multiplier favoring primary listing documents.
const (
	titleBonus = 2.0
	codeBonus  = 3.0

	listingMultiplier        = 1.5
	characteristicMultiplier = 1.2
)

// Retriever ranks corpus documents against a free-text question. The random
// source drives the short-question fallback and is injected so tests can
// seed it; the mutex keeps it safe across concurrent sessions.
type Retriever struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRetriever creates a retriever. A nil source falls back to a
// time-seeded one.
func NewRetriever(rnd *rand.Rand) *Retriever {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Retriever{rnd: rnd}
}

// Retrieve returns at most k*3 documents relevant to the question. Too-short
// questions (< 2 keywords) produce uninformative scores, so those fall back
// to a random listing sample with their complementary documents attached.
func (r *Retriever) Retrieve(question string, docs []model.Document, k int) []model.Document {
	keywords := extractKeywords(question)
	if len(keywords) < 2 {
		return r.sampleWithComplements(docs, k)
	}

	type scored struct {
		doc   model.Document
		score float64
	}
	var ranked []scored
	for _, doc := range docs {
		text := strings.ToLower(doc.Text)
		title := strings.ToLower(doc.Metadata.Title)
		code := strings.ToLower(doc.Metadata.Code)

		score := 0.0
		for _, kw := range keywords {
			if !strings.Contains(text, kw) {
				continue
			}
			score += float64(countOccurrences(text, kw))
			if title != "" && strings.Contains(title, kw) {
				score += titleBonus
			}
			if code != "" && strings.Contains(code, kw) {
				score += codeBonus
			}
		}
		switch doc.Metadata.Type {
		case model.DocTypeListing:
			score *= listingMultiplier
		case model.DocTypeCharacteristics:
			score *= characteristicMultiplier
		}
		if score > 0 {
			ranked = append(ranked, scored{doc: doc, score: score})
		}
	}

	if len(ranked) == 0 {
		// Nothing scored; return a plain random listing sample.
		return r.sampleListings(docs, k)
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if len(ranked) > k*3 {
		ranked = ranked[:k*3]
	}

	result := make([]model.Document, 0, k*3)
	present := make(map[string]bool)
	codes := make(map[string]bool)
	for _, s := range ranked {
		result = append(result, s.doc)
		present[s.doc.ID] = true
		if s.doc.Metadata.Type == model.DocTypeListing && s.doc.Metadata.Code != "" {
			codes[s.doc.Metadata.Code] = true
		}
	}
	for _, doc := range docs {
		if doc.IsComplementary() && codes[doc.Metadata.Code] && !present[doc.ID] {
			result = append(result, doc)
			present[doc.ID] = true
		}
	}
	if len(result) > k*3 {
		result = result[:k*3]
	}
	return result
}

// countOccurrences counts boundary-delimited occurrences of kw in text, so
// "quarto" does not score against every "quartos".
func countOccurrences(text, kw string) int {
	count := 0
	for start := 0; ; {
		idx := strings.Index(text[start:], kw)
		if idx < 0 {
			return count
		}
		idx += start
		end := idx + len(kw)

		before, _ := utf8.DecodeLastRuneInString(text[:idx])
		after, _ := utf8.DecodeRuneInString(text[end:])
		if (idx == 0 || !isWordRune(before)) && (end == len(text) || !isWordRune(after)) {
			count++
		}
		start = end
	}
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// extractKeywords tokenizes the normalized question, unions in domain terms
// that literally appear and drops stop words.
func extractKeywords(question string) []string {
	normalized := strings.ToLower(strings.TrimSpace(question))
	keywords := keywordRe.FindAllString(normalized, -1)

	have := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		have[kw] = true
	}
	for _, term := range domainTerms {
		if !have[term] && strings.Contains(normalized, term) {
			keywords = append(keywords, term)
			have[term] = true
		}
	}

	filtered := keywords[:0]
	for _, kw := range keywords {
		if !stopWords[kw] {
			filtered = append(filtered, kw)
		}
	}
	return filtered
}

// sampleWithComplements picks up to k random listing documents (all of them
// when the corpus holds no more than k) and appends the characteristics and
// images documents for each sampled code, stopping at k*3 documents.
func (r *Retriever) sampleWithComplements(docs []model.Document, k int) []model.Document {
	listings := listingDocs(docs)
	if len(listings) <= k {
		return listings
	}

	sampled := r.sample(listings, k)
	result := make([]model.Document, 0, k*3)
	processed := make(map[string]bool)
	for _, doc := range sampled {
		code := doc.Metadata.Code
		if code == "" || processed[code] {
			continue
		}
		result = append(result, doc)
		for _, comp := range docs {
			if comp.IsComplementary() && comp.Metadata.Code == code {
				result = append(result, comp)
			}
		}
		processed[code] = true
		if len(result) >= k*3 {
			break
		}
	}
	if len(result) > k*3 {
		result = result[:k*3]
	}
	return result
}

// sampleListings returns up to k random listing documents without
// complementary augmentation.
func (r *Retriever) sampleListings(docs []model.Document, k int) []model.Document {
	listings := listingDocs(docs)
	if len(listings) <= k {
		return listings
	}
	return r.sample(listings, k)
}

// sample draws n documents uniformly without replacement.
func (r *Retriever) sample(docs []model.Document, n int) []model.Document {
	r.mu.Lock()
	perm := r.rnd.Perm(len(docs))
	r.mu.Unlock()
	out := make([]model.Document, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, docs[idx])
	}
	return out
}

func listingDocs(docs []model.Document) []model.Document {
	var out []model.Document
	for _, doc := range docs {
		if doc.Metadata.Type == model.DocTypeListing {
			out = append(out, doc)
		}
	}
	return out
}
