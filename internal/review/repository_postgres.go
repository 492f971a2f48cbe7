package review

import (
	"database/sql"
)

// PostgresRepository implements Repository using Postgres.
// Table layout expected:
//   review_id serial primary key,
//   restaurant_slug text not null,
//   user_id int not null,
//   author text,
//   rating int,
//   comment text,
//   created_at text

type PostgresRepository struct {
	db *sql.DB
}

const (
	listReviewsQuery = `
		SELECT review_id, restaurant_slug, user_id, author, rating, comment, created_at
		FROM reviews
		WHERE restaurant_slug = $1
		ORDER BY review_id DESC
	`
	insertReviewQuery = `
		INSERT INTO reviews (restaurant_slug, user_id, author, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING review_id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListBySlug(slug string) ([]Review, error) {
	rows, err := r.db.Query(listReviewsQuery, slug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Review, 0)
	for rows.Next() {
		var rev Review
		if err := rows.Scan(&rev.ReviewID, &rev.RestaurantSlug, &rev.UserID, &rev.Author, &rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rev)
	}
	return out, nil
}

func (r *PostgresRepository) Create(rev Review) (Review, error) {
	err := r.db.QueryRow(
		insertReviewQuery,
		rev.RestaurantSlug, rev.UserID, rev.Author, rev.Rating, rev.Comment, rev.CreatedAt,
	).Scan(&rev.ReviewID)
	if err != nil {
		return Review{}, err
	}
	return rev, nil
}
