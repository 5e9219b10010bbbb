package domain

import "context"

type PropertyRepository interface {
	// Write paths
	UpsertProperty(ctx context.Context, p Property) error
	UpsertTranslation(ctx context.Context, t Translation) error
	UpsertAgent(ctx context.Context, a Agent) error
	// UpdateProperty applies a validated partial update inside one
	// transaction: base columns first, then one translation upsert per
	// translatable field present in the patch, keyed by
	// (entity_id, entity_type, field, lang). Returns the re-read property
	// with its raw translations, or ErrNotFound if id does not exist.
	UpdateProperty(ctx context.Context, id string, patch UpdatePatch, lang string) (PropertyWithTranslations, error)

	// Read paths
	ListProperties(ctx context.Context) ([]PropertyWithTranslations, error)
	GetBySlug(ctx context.Context, slug string) (PropertyWithTranslations, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Revalidator pings the portal so it drops its cached pages for a tag.
// Implementations must be best-effort: bounded by a short timeout and
// safe to fail without affecting the caller.
type Revalidator interface {
	Revalidate(ctx context.Context, tag string) error
}
