package featured

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

func (r *PostgresRepository) List(limit int, offset int) ([]FeaturedItem, error) {
	rows, err := r.db.Query(`SELECT slug, restaurant_name, image_url, cuisine, rating, delivery_time FROM restaurants ORDER BY rating DESC, slug LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return []FeaturedItem{}, nil
	}
	defer rows.Close()

	out := make([]FeaturedItem, 0)
	for rows.Next() {
		var (
			slug     string
			name     string
			img      sql.NullString
			cuisine  sql.NullString
			rating   sql.NullFloat64
			delivery sql.NullInt64
		)
		if err := rows.Scan(&slug, &name, &img, &cuisine, &rating, &delivery); err != nil {
			continue
		}
		item := FeaturedItem{Slug: slug, Name: name}
		if img.Valid {
			item.ImageURL = &img.String
		}
		if cuisine.Valid {
			item.Cuisine = &cuisine.String
		}
		if rating.Valid {
			v := rating.Float64
			item.Rating = &v
		}
		if delivery.Valid {
			v := int(delivery.Int64)
			item.DeliveryTime = &v
		}
		out = append(out, item)
	}
	return out, nil
}
