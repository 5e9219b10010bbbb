package domain

import "time"

// EntityTypeProperty discriminates Property rows in the shared translations table.
const EntityTypeProperty = "Property"

type Property struct {
	ID      string
	Slug    string // unique public lookup key
	Price   int64  // THB
	Lat     float64
	Lng     float64
	Type    string // VILLA | CONDO | ...
	Status  string // AVAILABLE | SOLD | ...
	AgentID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Translation is one localized value for one field of one entity.
// At most one row may exist per (EntityID, EntityType, Field, Lang);
// the storage layer enforces this with a unique key.
type Translation struct {
	ID         int64
	EntityID   string
	EntityType string // e.g. EntityTypeProperty
	Field      string // "title", "description"
	Lang       string // "EN", "RU", "TH"
	Content    string
}

type Agent struct {
	ID    string
	Name  string
	Email string
}

// PropertyWithTranslations is the raw shape returned by the repository:
// the base record plus every translation row, unresolved.
type PropertyWithTranslations struct {
	Property
	Translations []Translation
}

// PropertyView is the language-resolved, read-only projection served to clients.
// It is derived via Resolve and never persisted.
type PropertyView struct {
	ID          string  `json:"id"`
	Slug        string  `json:"slug"`
	Price       int64   `json:"price"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Type        string  `json:"type"`
	Status      string  `json:"status"`
	AgentID     *string `json:"agentId,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Language    string  `json:"language"`
}

// UpdatePatch is a partial admin update. Nil means "leave unchanged".
// Title and Description apply to exactly one language per call.
type UpdatePatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
}

// HasBaseFields reports whether the patch touches any language-invariant column.
func (p UpdatePatch) HasBaseFields() bool { return p.Price != nil }

// TranslatedFields returns the translatable field updates present in the patch.
func (p UpdatePatch) TranslatedFields() map[string]string {
	out := make(map[string]string, 2)
	if p.Title != nil {
		out[FieldTitle] = *p.Title
	}
	if p.Description != nil {
		out[FieldDescription] = *p.Description
	}
	return out
}
