package service

import (
	"strings"

	"assistente/internal/model"
	"assistente/internal/utils"
)

// Filter selects the listings matching the criteria, preserving catalog
// order and capping the result at limit. It never re-ranks.
//
// Price bounds rely on utils.ParsePrice: an unparseable price resolves to
// +Inf, so it fails any upper bound but passes any lower bound. The
// asymmetry is kept for compatibility with the historical behavior.
func Filter(listings []model.Listing, c *model.Criteria, limit int) []model.Listing {
	if c == nil {
		c = &model.Criteria{}
	}
	var results []model.Listing
	for i := range listings {
		l := &listings[i]
		if !matches(l, c) {
			continue
		}
		results = append(results, *l)
		if len(results) >= limit {
			break
		}
	}
	return results
}

func matches(l *model.Listing, c *model.Criteria) bool {
	if c.PriceMin != nil || c.PriceMax != nil {
		price := utils.ParsePrice(l.Price)
		if c.PriceMin != nil && price < *c.PriceMin {
			return false
		}
		if c.PriceMax != nil && price > *c.PriceMax {
			return false
		}
	}

	if c.Bedrooms != nil {
		bedrooms, ok := utils.ExtractInt(l.Characteristics[model.CharBedrooms])
		if !ok || bedrooms != *c.Bedrooms {
			return false
		}
	}

	if c.Neighborhood != nil {
		area := strings.ToLower(*c.Neighborhood)
		if !strings.Contains(strings.ToLower(l.Address), area) &&
			!strings.Contains(strings.ToLower(l.Title), area) &&
			!strings.Contains(strings.ToLower(l.Description), area) {
			return false
		}
	}

	if c.PropertyType != nil {
		pt := strings.ToLower(*c.PropertyType)
		if !strings.Contains(strings.ToLower(l.Title), pt) &&
			!strings.Contains(strings.ToLower(l.Description), pt) &&
			!strings.EqualFold(l.Characteristics[model.CharType], *c.PropertyType) {
			return false
		}
	}

	// Each requested feature narrows the set further (logical AND).
	for _, feature := range c.Features {
		if !hasFeature(l, feature) {
			return false
		}
	}

	return true
}

// hasFeature reports whether the feature appears in the description or in
// any characteristics key or value.
func hasFeature(l *model.Listing, feature string) bool {
	f := strings.ToLower(feature)
	if strings.Contains(strings.ToLower(l.Description), f) {
		return true
	}
	for k, v := range l.Characteristics {
		if strings.Contains(strings.ToLower(k), f) || strings.Contains(strings.ToLower(v), f) {
			return true
		}
	}
	return false
}
