package menu

import (
	"database/sql"

	"github.com/lib/pq"
)

// PostgresRepository implements Repository using Postgres.
// Table layout expected:
//   item_id serial primary key,
//   restaurant_slug text not null,
//   category text,
//   item_name text,
//   item_desc text,
//   price numeric not null default 0,
//   image_url text
type PostgresRepository struct {
	db *sql.DB
}

const (
	listByIDsQuery = `
        SELECT item_id, restaurant_slug, category, item_name, item_desc, price, image_url
        FROM menu_items
        WHERE item_id = ANY($1::int[])
        ORDER BY array_position($1::int[], item_id)
    `
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByRestaurant(slug string) ([]Item, error) {
	rows, err := r.db.Query(`SELECT item_id, restaurant_slug, category, item_name, item_desc, price, image_url FROM menu_items WHERE restaurant_slug = $1 ORDER BY item_id`, slug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *PostgresRepository) GetByID(id int) (Item, error) {
	var item Item
	var img sql.NullString
	err := r.db.QueryRow(`SELECT item_id, restaurant_slug, category, item_name, item_desc, price, image_url FROM menu_items WHERE item_id = $1`, id).
		Scan(&item.ID, &item.RestaurantSlug, &item.Category, &item.Name, &item.Description, &item.Price, &img)
	if err != nil {
		if err == sql.ErrNoRows {
			return Item{}, ErrNotFound
		}
		return Item{}, err
	}
	if img.Valid {
		item.ImageURL = img.String
	}
	return item, nil
}

func (r *PostgresRepository) ListByIDs(ids []int) ([]Item, error) {
	if len(ids) == 0 {
		return []Item{}, nil
	}

	rows, err := r.db.Query(listByIDsQuery, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *PostgresRepository) Create(item Item) (Item, error) {
	err := r.db.QueryRow(`INSERT INTO menu_items (restaurant_slug, category, item_name, item_desc, price, image_url)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING item_id`,
		item.RestaurantSlug, item.Category, item.Name, item.Description, item.Price, item.ImageURL).Scan(&item.ID)
	if err != nil {
		return Item{}, err
	}
	return item, nil
}

func scanItems(rows *sql.Rows) ([]Item, error) {
	out := make([]Item, 0)
	for rows.Next() {
		var item Item
		var img sql.NullString
		if err := rows.Scan(&item.ID, &item.RestaurantSlug, &item.Category, &item.Name, &item.Description, &item.Price, &img); err != nil {
			return nil, err
		}
		if img.Valid {
			item.ImageURL = img.String
		}
		out = append(out, item)
	}
	return out, nil
}
