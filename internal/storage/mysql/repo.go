package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"phuket_estate/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertAgent(ctx context.Context, a domain.Agent) error {
	_, err := r.db.ExecContext(ctx, upsertAgentSQL, a.ID, a.Name, a.Email)
	return err
}

func (r *Repo) UpsertProperty(ctx context.Context, p domain.Property) error {
	_, err := r.db.ExecContext(ctx, upsertPropertySQL,
		p.ID, p.Slug, p.Price, p.Lat, p.Lng, p.Type, p.Status, valStr(p.AgentID))
	return err
}

func (r *Repo) UpsertTranslation(ctx context.Context, t domain.Translation) error {
	_, err := r.db.ExecContext(ctx, upsertTranslationSQL,
		t.EntityID, t.EntityType, t.Field, t.Lang, t.Content)
	return err
}

// UpdateProperty applies the patch in one transaction: both the base-column
// update and the translation upserts commit together or not at all. The
// returned property carries its full raw translation set, unresolved.
func (r *Repo) UpdateProperty(ctx context.Context, id string, patch domain.UpdatePatch, lang string) (domain.PropertyWithTranslations, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.PropertyWithTranslations{}, err
	}
	defer tx.Rollback()

	var lockedID string
	if err := tx.QueryRowContext(ctx, lockPropertySQL, id).Scan(&lockedID); err != nil {
		if err == sql.ErrNoRows {
			return domain.PropertyWithTranslations{}, domain.ErrNotFound
		}
		return domain.PropertyWithTranslations{}, err
	}

	if patch.Price != nil {
		if _, err := tx.ExecContext(ctx, updatePriceSQL, *patch.Price, id); err != nil {
			return domain.PropertyWithTranslations{}, fmt.Errorf("update property %s: %w", id, err)
		}
	}

	for field, content := range patch.TranslatedFields() {
		if _, err := tx.ExecContext(ctx, upsertTranslationSQL,
			id, domain.EntityTypeProperty, field, lang, content); err != nil {
			return domain.PropertyWithTranslations{}, fmt.Errorf("upsert translation %s/%s: %w", field, lang, err)
		}
	}

	out, err := loadProperty(ctx, tx, selectPropertyByIDSQL, id)
	if err != nil {
		return domain.PropertyWithTranslations{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.PropertyWithTranslations{}, err
	}
	return out, nil
}

func (r *Repo) GetBySlug(ctx context.Context, slug string) (domain.PropertyWithTranslations, error) {
	return loadProperty(ctx, r.db, selectPropertyBySlugSQL, slug)
}

func (r *Repo) ListProperties(ctx context.Context) ([]domain.PropertyWithTranslations, error) {
	rows, err := r.db.QueryContext(ctx, selectAllPropertiesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PropertyWithTranslations
	index := map[string]int{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		index[p.ID] = len(out)
		out = append(out, domain.PropertyWithTranslations{Property: p})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	trows, err := r.db.QueryContext(ctx, selectTranslationsForTypeSQL, domain.EntityTypeProperty)
	if err != nil {
		return nil, err
	}
	defer trows.Close()
	for trows.Next() {
		t, err := scanTranslation(trows)
		if err != nil {
			return nil, err
		}
		if i, ok := index[t.EntityID]; ok {
			out[i].Translations = append(out[i].Translations, t)
		}
	}
	if err := trows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func loadProperty(ctx context.Context, q querier, query string, arg any) (domain.PropertyWithTranslations, error) {
	p, err := scanProperty(q.QueryRowContext(ctx, query, arg))
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.PropertyWithTranslations{}, domain.ErrNotFound
		}
		return domain.PropertyWithTranslations{}, err
	}

	rows, err := q.QueryContext(ctx, selectTranslationsForEntitySQL, p.ID, domain.EntityTypeProperty)
	if err != nil {
		return domain.PropertyWithTranslations{}, err
	}
	defer rows.Close()

	out := domain.PropertyWithTranslations{Property: p}
	for rows.Next() {
		t, err := scanTranslation(rows)
		if err != nil {
			return domain.PropertyWithTranslations{}, err
		}
		out.Translations = append(out.Translations, t)
	}
	if err := rows.Err(); err != nil {
		return domain.PropertyWithTranslations{}, err
	}
	return out, nil
}

type rowScanner interface{ Scan(dest ...any) error }

func scanProperty(row rowScanner) (domain.Property, error) {
	var p domain.Property
	var agentID sql.NullString
	if err := row.Scan(
		&p.ID, &p.Slug, &p.Price, &p.Lat, &p.Lng, &p.Type, &p.Status,
		&agentID, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return domain.Property{}, err
	}
	if agentID.Valid {
		s := agentID.String
		p.AgentID = &s
	}
	return p, nil
}

func scanTranslation(row rowScanner) (domain.Translation, error) {
	var t domain.Translation
	if err := row.Scan(&t.ID, &t.EntityID, &t.EntityType, &t.Field, &t.Lang, &t.Content); err != nil {
		return domain.Translation{}, err
	}
	return t, nil
}
