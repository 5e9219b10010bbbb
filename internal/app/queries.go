package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"phuket_estate/internal/domain"
)

type QueryService struct {
	repo     domain.PropertyRepository
	cache    domain.Cache
	cfg      domain.ResolveConfig
	cacheTTL time.Duration
}

func NewQueryService(r domain.PropertyRepository, c domain.Cache, cfg domain.ResolveConfig, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cfg: cfg, cacheTTL: ttl}
}

// GetBySlug returns the language-resolved view for one property, or
// domain.ErrNotFound. Reads through the cache when one is configured.
func (s *QueryService) GetBySlug(ctx context.Context, slug, lang string) (domain.PropertyView, error) {
	lang = normalizeLang(lang)
	key := fmt.Sprintf("property:%s:%s", slug, lang)
	var pv domain.PropertyView
	if ok, _ := s.cache.Get(ctx, key, &pv); ok {
		return pv, nil
	}
	p, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return domain.PropertyView{}, err
	}
	pv = domain.Resolve(p.Property, p.Translations, lang, s.cfg)
	_ = s.cache.Set(ctx, key, pv, int(s.cacheTTL.Seconds()))
	return pv, nil
}

// ListProperties resolves every property independently under the same
// language. No cross-entity ordering contract beyond what the store returns.
func (s *QueryService) ListProperties(ctx context.Context, lang string) ([]domain.PropertyView, error) {
	lang = normalizeLang(lang)
	key := fmt.Sprintf("properties:%s", lang)
	var views []domain.PropertyView
	if ok, _ := s.cache.Get(ctx, key, &views); ok {
		return views, nil
	}
	ps, err := s.repo.ListProperties(ctx)
	if err != nil {
		return nil, err
	}
	views = make([]domain.PropertyView, 0, len(ps))
	for _, p := range ps {
		views = append(views, domain.Resolve(p.Property, p.Translations, lang, s.cfg))
	}
	_ = s.cache.Set(ctx, key, views, int(s.cacheTTL.Seconds()))
	return views, nil
}

func normalizeLang(lang string) string {
	lang = strings.ToUpper(strings.TrimSpace(lang))
	if lang == "" {
		return domain.DefaultLang
	}
	return lang
}
