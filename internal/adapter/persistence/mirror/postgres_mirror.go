// Package mirror implements the secondary, best-effort order store.
// Accepted orders are copied into a Postgres table keyed by the
// primary-assigned order id, so the legacy reporting side keeps
// working. Writes are fire-and-forget from the caller's perspective:
// a failed mirror write is logged and never fails the submission.
package mirror

import (
	"context"
	"database/sql"
	"log"

	"webatelier/internal/domain/entities"
	"webatelier/internal/usecase/interfaces"

	"github.com/lib/pq"
)

type PostgresMirror struct {
	db *sql.DB
}

var _ interfaces.IOrderMirror = (*PostgresMirror)(nil)

func NewPostgresMirror(db *sql.DB) *PostgresMirror {
	return &PostgresMirror{db: db}
}

// EnsureSchema creates the mirror table if it does not exist yet.
// Called once at startup; errors are returned so main can log them,
// but the service starts regardless since the mirror is non-authoritative.
func (m *PostgresMirror) EnsureSchema(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS order_mirror (
			id                  TEXT PRIMARY KEY,
			customer_name       TEXT NOT NULL,
			customer_surname    TEXT NOT NULL,
			customer_email      TEXT NOT NULL,
			profession          TEXT NOT NULL,
			website_name        TEXT NOT NULL,
			website_type        TEXT NOT NULL,
			target_audience     TEXT NOT NULL,
			purpose             TEXT NOT NULL,
			color_palette       TEXT NOT NULL,
			knowledge_text      TEXT NOT NULL,
			additional_features TEXT[] NOT NULL DEFAULT '{}',
			selected_pages      TEXT[] NOT NULL DEFAULT '{}',
			total_price         NUMERIC(12,2) NOT NULL,
			status              TEXT NOT NULL,
			created_at          TIMESTAMPTZ NOT NULL,
			updated_at          TIMESTAMPTZ NOT NULL
		)`)
	return err
}

// Write upserts the order snapshot. A replay of the same order id
// overwrites the row, which keeps the mirror convergent with the
// primary on retries.
func (m *PostgresMirror) Write(ctx context.Context, o entities.Order) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO order_mirror (
			id, customer_name, customer_surname, customer_email, profession,
			website_name, website_type, target_audience, purpose, color_palette,
			knowledge_text, additional_features, selected_pages, total_price,
			status, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			total_price = EXCLUDED.total_price,
			updated_at = EXCLUDED.updated_at`,
		o.ID, o.CustomerName, o.CustomerSurname, o.CustomerEmail, o.Profession,
		o.WebsiteName, string(o.WebsiteType), o.TargetAudience, o.Purpose, o.ColorPalette,
		o.KnowledgeText, pq.Array(o.AdditionalFeatures), pq.Array(o.SelectedPages), o.TotalPrice,
		string(o.Status), o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		log.Printf("[mirror][postgres] write failed order_id=%s err=%v", o.ID, err)
	}
	return err
}
