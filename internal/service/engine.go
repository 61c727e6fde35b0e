package service

import (
	"context"
	"log"
	"regexp"

	"assistente/internal/catalog"
	"assistente/internal/config"
	"assistente/internal/model"
	"assistente/internal/session"
)

// promptListingCap is how many listings are handed to the generator and
// attached to a selection answer.
const promptListingCap = 3

var listingCodeRe = regexp.MustCompile(`(?i)(?:código|codigo|cód|cod)[\s:]*([a-zA-Z0-9-]+)`)

// Engine orchestrates one conversational turn: session state, criteria
// extraction, catalog filtering, document retrieval and prose generation
// with a deterministic fallback.
type Engine struct {
	catalog   *catalog.Catalog
	sessions  *session.Store
	retriever *Retriever
	generator Generator

	retrievalK int
	maxResults int
	maxImages  int
}

// NewEngine wires the conversation engine. generator may be nil or
// disabled; the deterministic templates take over in that case.
func NewEngine(cat *catalog.Catalog, sessions *session.Store, retriever *Retriever, generator Generator, cfg *config.ChatConfig) *Engine {
	return &Engine{
		catalog:    cat,
		sessions:   sessions,
		retriever:  retriever,
		generator:  generator,
		retrievalK: cfg.RetrievalK,
		maxResults: cfg.MaxResults,
		maxImages:  cfg.MaxImages,
	}
}

// Respond answers one question within a session. It never returns an error:
// failures degrade to fixed messages. The session is locked for the whole
// read-modify-write sequence, so concurrent requests on one session id are
// serialized while other sessions proceed unhindered.
func (e *Engine) Respond(ctx context.Context, question, sessionID string) *model.Answer {
	sess := e.sessions.GetOrCreate(sessionID)
	sess.Lock()
	defer sess.Unlock()

	// The user message is appended before processing, so it survives even
	// when answering fails.
	sess.History.Append(session.SenderUser, question)
	sess.Memory.SetName(ExtractName(question))
	sess.Memory.Absorb(ExtractPreferences(question))
	sess.Memory.Touch()

	answer := e.answer(ctx, question, sess)
	answer.SessionID = sess.ID
	sess.History.Append(session.SenderAssistant, answer.Text)
	return answer
}

// Search runs the direct criteria query, bypassing sessions and history.
func (e *Engine) Search(criteria *model.Criteria) []model.Listing {
	results := Filter(e.catalog.Listings(), criteria, e.maxResults)
	if results == nil {
		results = []model.Listing{}
	}
	return results
}

// ClearSession abandons the session and returns a fresh session id.
func (e *Engine) ClearSession(sessionID string) string {
	return e.sessions.Clear(sessionID)
}

// RegisterFeedback stores client feedback about a listing in the session
// memory; the latest comment per code wins.
func (e *Engine) RegisterFeedback(sessionID, code, comment string) string {
	sess := e.sessions.GetOrCreate(sessionID)
	sess.Lock()
	defer sess.Unlock()
	sess.Memory.RecordFeedback(code, comment)
	return sess.ID
}

// answer assembles the response body. Unexpected failures are converted to
// the apology message here, never propagated.
func (e *Engine) answer(ctx context.Context, question string, sess *session.Session) (ans *model.Answer) {
	ans = emptyAnswer()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Error: recovered while answering question: %v", r)
			ans = emptyAnswer()
			ans.Text = msgApology
		}
	}()

	if e.catalog.Empty() {
		ans.Text = msgNoData
		return ans
	}

	if m := listingCodeRe.FindStringSubmatch(question); m != nil {
		code := m[1]
		listing := e.catalog.ByCode(code)
		if listing == nil {
			ans.Text = msgCodeNotFound(code)
			return ans
		}
		e.detailAnswer(ctx, listing, sess, ans)
		return ans
	}

	e.selectionAnswer(ctx, question, sess, ans)
	return ans
}

// detailAnswer builds the single-listing response for an explicit code.
func (e *Engine) detailAnswer(ctx context.Context, l *model.Listing, sess *session.Session, ans *model.Answer) {
	ans.Text = e.generate(ctx, buildDetailPrompt(l, sess.Memory.Name), func() string {
		return detailFallback(l)
	})
	ans.RelatedListings = append(ans.RelatedListings, l.Summary())
	ans.RelatedImages = e.imageURLs(l)
	sess.Memory.RecordVisit(l.Code)
}

// selectionAnswer builds the response for a free-text question: criteria
// from the question merged with remembered preferences drive the catalog
// filter, while document retrieval supplies extra generation context.
func (e *Engine) selectionAnswer(ctx context.Context, question string, sess *session.Session, ans *model.Answer) {
	criteria := ExtractSearch(question).Merge(sess.Memory.Preferences.Criteria())
	listings := Filter(e.catalog.Listings(), criteria, e.maxResults)
	docs := e.retriever.Retrieve(question, e.catalog.Documents(), e.retrievalK)

	shown := listings
	if len(shown) > promptListingCap {
		shown = shown[:promptListingCap]
	}

	if len(shown) > 0 {
		ans.Text = e.generate(ctx, buildSelectionPrompt(question, shown, sess.History.Formatted(), docs), func() string {
			return genericFallback(question)
		})
	} else {
		ans.Text = genericFallback(question)
	}

	for i := range shown {
		ans.RelatedListings = append(ans.RelatedListings, shown[i].Summary())
		sess.Memory.RecordVisit(shown[i].Code)
	}
	if len(shown) > 0 {
		ans.RelatedImages = e.imageURLs(&shown[0])
	}
}

// generate calls the text-generation collaborator, substituting the
// deterministic fallback when it is disabled or fails. No retries here;
// retries, if any, belong to the collaborator.
func (e *Engine) generate(ctx context.Context, prompt string, fallback func() string) string {
	if e.generator == nil || !e.generator.IsEnabled() {
		return fallback()
	}
	text, err := e.generator.Generate(ctx, prompt)
	if err != nil {
		log.Printf("Warning: text generation failed, using fallback: %v", err)
		return fallback()
	}
	return text
}

// imageURLs resolves and caps the images attached to an answer. Every URL
// is absolute.
func (e *Engine) imageURLs(l *model.Listing) []string {
	images := e.catalog.ImageURLs(l)
	if len(images) > e.maxImages {
		images = images[:e.maxImages]
	}
	if images == nil {
		images = []string{}
	}
	return images
}

func emptyAnswer() *model.Answer {
	return &model.Answer{
		RelatedListings: []model.ListingSummary{},
		RelatedImages:   []string{},
	}
}
