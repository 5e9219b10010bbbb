package domain

const (
	FieldTitle       = "title"
	FieldDescription = "description"

	DefaultLang = "EN"
)

// ResolveConfig names the translatable fields of an entity and the ordered
// list of languages to fall back to when the requested one has no row.
// Passing it in (rather than hard-coding "title"/"EN") lets the same resolver
// serve other entity kinds and locales.
type ResolveConfig struct {
	Fields    []string
	Fallbacks []string
}

// DefaultResolveConfig covers the Property schema: title and description,
// falling back to English.
func DefaultResolveConfig() ResolveConfig {
	return ResolveConfig{
		Fields:    []string{FieldTitle, FieldDescription},
		Fallbacks: []string{DefaultLang},
	}
}

// Resolve projects a property and its translation rows into a view for lang.
// Pure and total: no I/O, deterministic, never fails. Per field, an exact
// language match wins, then the fallback chain in order, else empty string.
// If duplicate rows exist for the same (field, lang) — a state the store
// should prevent — the row with the lowest id wins, regardless of slice order.
func Resolve(p Property, ts []Translation, lang string, cfg ResolveConfig) PropertyView {
	v := PropertyView{
		ID:       p.ID,
		Slug:     p.Slug,
		Price:    p.Price,
		Lat:      p.Lat,
		Lng:      p.Lng,
		Type:     p.Type,
		Status:   p.Status,
		AgentID:  p.AgentID,
		Language: lang,
	}

	content := func(field string) string {
		if t, ok := pick(ts, field, lang); ok {
			return t.Content
		}
		for _, fb := range cfg.Fallbacks {
			if fb == lang {
				continue
			}
			if t, ok := pick(ts, field, fb); ok {
				return t.Content
			}
		}
		return ""
	}

	for _, f := range cfg.Fields {
		switch f {
		case FieldTitle:
			v.Title = content(f)
		case FieldDescription:
			v.Description = content(f)
		}
	}
	return v
}

// pick returns the (field, lang) row with the lowest id.
func pick(ts []Translation, field, lang string) (Translation, bool) {
	var best Translation
	found := false
	for _, t := range ts {
		if t.Field != field || t.Lang != lang {
			continue
		}
		if !found || t.ID < best.ID {
			best = t
			found = true
		}
	}
	return best, found
}
