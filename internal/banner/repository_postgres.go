package banner

import (
	"database/sql"
)

// PostgresRepository implements Repository using Postgres.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns promo rows from the `banner` table ordered by `ord` then id.
func (r *PostgresRepository) List(limit int) ([]Promo, error) {
	rows, err := r.db.Query(`SELECT banner_id, banner_img, headline, cta, banner_link FROM banner ORDER BY COALESCE(ord, 0) DESC, banner_id LIMIT $1`, limit)
	if err != nil {
		// table may not exist or be empty — return empty slice to keep API resilient
		return []Promo{}, nil
	}
	defer rows.Close()

	out := make([]Promo, 0)
	for rows.Next() {
		var (
			id       int
			img      sql.NullString
			headline sql.NullString
			cta      sql.NullString
			link     sql.NullString
		)
		if err := rows.Scan(&id, &img, &headline, &cta, &link); err != nil {
			continue
		}
		p := Promo{PromoID: id}
		if img.Valid {
			p.ImageURL = &img.String
		}
		if headline.Valid {
			p.Headline = &headline.String
		}
		if cta.Valid {
			p.CTA = &cta.String
		}
		if link.Valid {
			p.Link = &link.String
		}
		out = append(out, p)
	}
	return out, nil
}
