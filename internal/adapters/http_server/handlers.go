package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"phuket_estate/internal/app"
	"phuket_estate/internal/domain"
)

type Handlers struct {
	Q   *app.QueryService
	Adm *app.AdminService
}

type problem struct {
	Type   string            `json:"type"`
	Title  string            `json:"title"`
	Status int               `json:"status"`
	Detail string            `json:"detail,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/properties", h.listProperties)
	s.mux.Get("/v1/properties/{slug}", h.getProperty)
	s.mux.Patch("/v1/properties/{id}", h.updateProperty)
}

func selectLang(al string) string {
	s := strings.ToLower(al)
	if strings.HasPrefix(s, "ru") {
		return "RU"
	}
	if strings.HasPrefix(s, "th") {
		return "TH"
	}
	return "EN"
}

func requestLang(r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return strings.ToUpper(lang)
	}
	return selectLang(r.Header.Get("Accept-Language"))
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	writeProblemFields(w, status, title, detail, nil)
}

func writeProblemFields(w http.ResponseWriter, status int, title, detail string, fields map[string]string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	p := problem{Type: "about:blank", Title: title, Status: status, Detail: detail, Errors: fields}
	if err := json.NewEncoder(w).Encode(p); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeJSONWithETag(w http.ResponseWriter, r *http.Request, v any, lang string) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	if lang != "" {
		w.Header().Set("Content-Language", lang)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

func (h *Handlers) listProperties(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	views, err := h.Q.ListProperties(r.Context(), lang)
	if err != nil {
		log.Error().Err(err).Msg("list properties failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "could not list properties")
		return
	}
	if views == nil {
		views = []domain.PropertyView{}
	}
	writeJSONWithETag(w, r, views, lang)
}

func (h *Handlers) getProperty(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	lang := requestLang(r)
	pv, err := h.Q.GetBySlug(r.Context(), slug, lang)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", "property not found")
			return
		}
		log.Error().Err(err).Str("slug", slug).Msg("get property failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "could not load property")
		return
	}
	writeJSONWithETag(w, r, pv, lang)
}

// rawProperty is the admin-facing shape: base record plus unresolved
// translation rows, mirroring what the repository returns.
type rawProperty struct {
	ID           string           `json:"id"`
	Slug         string           `json:"slug"`
	Price        int64            `json:"price"`
	Lat          float64          `json:"lat"`
	Lng          float64          `json:"lng"`
	Type         string           `json:"type"`
	Status       string           `json:"status"`
	AgentID      *string          `json:"agentId,omitempty"`
	Translations []rawTranslation `json:"translations"`
}

type rawTranslation struct {
	ID         int64  `json:"id"`
	EntityID   string `json:"entityId"`
	EntityType string `json:"entityType"`
	Field      string `json:"field"`
	Lang       string `json:"lang"`
	Content    string `json:"content"`
}

func toRawProperty(p domain.PropertyWithTranslations) rawProperty {
	out := rawProperty{
		ID:           p.ID,
		Slug:         p.Slug,
		Price:        p.Price,
		Lat:          p.Lat,
		Lng:          p.Lng,
		Type:         p.Type,
		Status:       p.Status,
		AgentID:      p.AgentID,
		Translations: make([]rawTranslation, 0, len(p.Translations)),
	}
	for _, t := range p.Translations {
		out.Translations = append(out.Translations, rawTranslation{
			ID: t.ID, EntityID: t.EntityID, EntityType: t.EntityType,
			Field: t.Field, Lang: t.Lang, Content: t.Content,
		})
	}
	return out
}

func (h *Handlers) updateProperty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	lang := requestLang(r)

	var patch domain.UpdatePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "body must be a JSON object with optional title, description, price")
		return
	}

	p, err := h.Adm.UpdateProperty(r.Context(), id, patch, lang)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			writeProblemFields(w, http.StatusUnprocessableEntity, "Validation Failed", "one or more fields are invalid", verr.Fields)
		case errors.Is(err, domain.ErrNotFound):
			writeProblem(w, http.StatusNotFound, "Not Found", "property not found")
		default:
			log.Error().Err(err).Str("id", id).Msg("update property failed")
			writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "could not update property")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toRawProperty(p)); err != nil {
		log.Error().Err(err).Msg("failed to write updateProperty body")
	}
}
