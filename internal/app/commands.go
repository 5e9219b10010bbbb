package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"phuket_estate/internal/domain"
)

// RevalidateTag is the portal cache tag covering all property pages.
const RevalidateTag = "properties"

type AdminService struct {
	repo        domain.PropertyRepository
	cache       domain.Cache
	revalidator domain.Revalidator
	langs       []string
}

func NewAdminService(r domain.PropertyRepository, c domain.Cache, rev domain.Revalidator, langs []string) *AdminService {
	return &AdminService{repo: r, cache: c, revalidator: rev, langs: langs}
}

// UpdateProperty validates the patch, applies it in a single repository
// transaction, drops the affected cache entries, and pings the portal.
// The ping is best-effort: any failure is logged and swallowed, never
// surfaced to the caller and never rolling back the write. The returned
// property carries raw translations; resolution is the caller's concern.
func (s *AdminService) UpdateProperty(ctx context.Context, id string, patch domain.UpdatePatch, lang string) (domain.PropertyWithTranslations, error) {
	lang = normalizeLang(lang)
	if err := domain.ValidatePatch(patch); err != nil {
		return domain.PropertyWithTranslations{}, err
	}

	p, err := s.repo.UpdateProperty(ctx, id, patch, lang)
	if err != nil {
		return domain.PropertyWithTranslations{}, err
	}

	if s.cache != nil {
		s.invalidateProperty(ctx, p.Slug)
	}
	if s.revalidator != nil {
		if err := s.revalidator.Revalidate(ctx, RevalidateTag); err != nil {
			log.Warn().Err(err).Str("id", id).Msg("portal revalidation failed")
		}
	}
	return p, nil
}

// A base-field change affects every language's view, so all of the slug's
// entries go, along with the per-language list keys.
func (s *AdminService) invalidateProperty(ctx context.Context, slug string) {
	for _, l := range s.langs {
		_ = s.cache.Del(ctx, fmt.Sprintf("property:%s:%s", slug, l))
		_ = s.cache.Del(ctx, fmt.Sprintf("properties:%s", l))
	}
}
