package restaurant

import (
	"database/sql"
)

// PostgresRepository implements Repository using Postgres.
// Table layout expected:
//   slug text primary key,
//   restaurant_name text not null,
//   image_url text,
//   cuisine text,
//   rating numeric not null default 0,
//   review_count int not null default 0,
//   delivery_time int not null default 0,
//   address text
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Restaurant {
	rows, err := r.db.Query(`SELECT slug, restaurant_name, image_url, cuisine, rating, review_count, delivery_time, address FROM restaurants ORDER BY slug`)
	if err != nil {
		return []Restaurant{}
	}
	defer rows.Close()

	out := make([]Restaurant, 0)
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			continue
		}
		out = append(out, rest)
	}
	return out
}

func (r *PostgresRepository) GetBySlug(slug string) (Restaurant, error) {
	row := r.db.QueryRow(`SELECT slug, restaurant_name, image_url, cuisine, rating, review_count, delivery_time, address FROM restaurants WHERE slug = $1`, slug)
	rest, err := scanRestaurant(row)
	if err == sql.ErrNoRows {
		return Restaurant{}, ErrNotFound
	}
	return rest, err
}

func (r *PostgresRepository) Create(rest Restaurant) (Restaurant, error) {
	_, err := r.db.Exec(`INSERT INTO restaurants (slug, restaurant_name, image_url, cuisine, rating, review_count, delivery_time, address)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		rest.Slug, rest.Name, rest.ImageURL, rest.Cuisine, rest.Rating, rest.ReviewCount, rest.DeliveryTime, rest.Address)
	if err != nil {
		return Restaurant{}, err
	}
	return rest, nil
}

func (r *PostgresRepository) Update(slug string, rest Restaurant) (Restaurant, error) {
	rest.Slug = slug
	res, err := r.db.Exec(`UPDATE restaurants SET restaurant_name=$2, image_url=$3, cuisine=$4, rating=$5, review_count=$6, delivery_time=$7, address=$8 WHERE slug=$1`,
		slug, rest.Name, rest.ImageURL, rest.Cuisine, rest.Rating, rest.ReviewCount, rest.DeliveryTime, rest.Address)
	if err != nil {
		return Restaurant{}, err
	}
	cnt, _ := res.RowsAffected()
	if cnt == 0 {
		return Restaurant{}, ErrNotFound
	}
	return rest, nil
}

func (r *PostgresRepository) Delete(slug string) error {
	res, err := r.db.Exec(`DELETE FROM restaurants WHERE slug = $1`, slug)
	if err != nil {
		return err
	}
	cnt, _ := res.RowsAffected()
	if cnt == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRestaurant(row rowScanner) (Restaurant, error) {
	var rest Restaurant
	var img, address sql.NullString
	if err := row.Scan(&rest.Slug, &rest.Name, &img, &rest.Cuisine, &rest.Rating, &rest.ReviewCount, &rest.DeliveryTime, &address); err != nil {
		return Restaurant{}, err
	}
	if img.Valid {
		rest.ImageURL = img.String
	}
	if address.Valid {
		rest.Address = address.String
	}
	return rest, nil
}
