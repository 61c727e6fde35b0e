package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"assistente/internal/config"
	"assistente/internal/model"
)

// Catalog is the in-memory set of listings plus the retrieval documents
// derived from them. It is read-only after Load.
type Catalog struct {
	listings []model.Listing
	byCode   map[string]*model.Listing
	docs     []model.Document
	baseURL  string
}

// Candidate files produced by the scraping pipeline, in preference order.
// The richer files carry direct image links.
var sourceFiles = []string{
	"imoveis_com_links.json",
	"imoveis_com_imagens.json",
	"imoveis.json",
}

// New builds a catalog from a ready-made sequence of listing records, as
// handed over by the ingestion pipeline.
func New(listings []model.Listing, baseURL string) *Catalog {
	c := &Catalog{
		listings: listings,
		byCode:   make(map[string]*model.Listing, len(listings)),
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
	for i := range c.listings {
		c.byCode[c.listings[i].Code] = &c.listings[i]
	}
	c.docs = buildDocuments(c.listings)
	return c
}

// Load reads the scraper output and builds the document corpus. A missing
// data directory yields an empty catalog, not an error; the engine answers
// with its no-data message in that case.
func Load(cfg *config.CatalogConfig) (*Catalog, error) {
	var path string
	for _, name := range sourceFiles {
		candidate := filepath.Join(cfg.DataDir, name)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
			break
		}
	}
	if path == "" {
		log.Printf("Warning: no listing file found under %s, starting with an empty catalog", cfg.DataDir)
		return New(nil, cfg.SiteBaseURL), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read listings from %s: %w", path, err)
	}
	var listings []model.Listing
	if err := json.Unmarshal(raw, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode listings from %s: %w", path, err)
	}

	c := New(listings, cfg.SiteBaseURL)
	if context := loadContext(cfg.ContextFile); len(context) > 0 {
		c.docs = append(c.docs, context...)
	}

	log.Printf("Catalog loaded: %d listings, %d documents (%s)", len(c.listings), len(c.docs), path)
	return c, nil
}

// Listings returns all listings in catalog order.
func (c *Catalog) Listings() []model.Listing { return c.listings }

// Documents returns the retrieval corpus.
func (c *Catalog) Documents() []model.Document { return c.docs }

// ByCode looks a listing up by its code. Returns nil when unknown.
func (c *Catalog) ByCode(code string) *model.Listing { return c.byCode[code] }

// Empty reports whether no listings were loaded.
func (c *Catalog) Empty() bool { return len(c.listings) == 0 }

// ImageURLs resolves the images for a listing, preferring direct links over
// the main image over locally downloaded paths. Every returned URL is
// absolute; relative paths are prefixed with the site base URL.
func (c *Catalog) ImageURLs(l *model.Listing) []string {
	var images []string
	switch {
	case len(l.ImageLinks) > 0:
		for _, link := range l.ImageLinks {
			if link == "" || strings.HasSuffix(link, "/") {
				continue
			}
			images = append(images, link)
		}
	case l.MainImage != "":
		images = append(images, l.MainImage)
	case len(l.LocalImages) > 0:
		for _, img := range l.LocalImages {
			images = append(images, c.baseURL+"/images/"+strings.ReplaceAll(img, `\`, "/"))
		}
	}

	for i, img := range images {
		if !strings.HasPrefix(img, "http") {
			images[i] = c.baseURL + "/" + strings.TrimLeft(img, "/")
		}
	}
	return images
}

// Absolutize rewrites a single possibly-relative image path into an
// absolute URL on the listing site.
func (c *Catalog) Absolutize(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}
