package model

// Criteria is a structured listing filter. A nil field means the criterion
// was not mentioned and must not constrain the search.
type Criteria struct {
	PriceMin     *float64 `json:"preco_min,omitempty"`
	PriceMax     *float64 `json:"preco_max,omitempty"`
	Bedrooms     *int     `json:"dormitorios,omitempty"`
	Neighborhood *string  `json:"bairro,omitempty"`
	PropertyType *string  `json:"tipo,omitempty"`
	Features     []string `json:"caracteristicas,omitempty"`
}

// IsEmpty reports whether no criterion is set.
func (c *Criteria) IsEmpty() bool {
	return c == nil || (c.PriceMin == nil && c.PriceMax == nil && c.Bedrooms == nil &&
		c.Neighborhood == nil && c.PropertyType == nil && len(c.Features) == 0)
}

// Merge fills criteria the question did not mention from remembered
// preferences. Question-derived values always win; features accumulate.
func (c *Criteria) Merge(other *Criteria) *Criteria {
	if other == nil {
		return c
	}
	merged := &Criteria{}
	*merged = *c
	if merged.PriceMin == nil && other.PriceMin != nil {
		merged.PriceMin = other.PriceMin
	}
	if merged.PriceMax == nil && other.PriceMax != nil {
		merged.PriceMax = other.PriceMax
	}
	if merged.Bedrooms == nil && other.Bedrooms != nil {
		merged.Bedrooms = other.Bedrooms
	}
	if merged.Neighborhood == nil && other.Neighborhood != nil {
		merged.Neighborhood = other.Neighborhood
	}
	if merged.PropertyType == nil && other.PropertyType != nil {
		merged.PropertyType = other.PropertyType
	}
	seen := make(map[string]bool, len(merged.Features))
	for _, f := range merged.Features {
		seen[f] = true
	}
	for _, f := range other.Features {
		if !seen[f] {
			merged.Features = append(merged.Features, f)
			seen[f] = true
		}
	}
	return merged
}
