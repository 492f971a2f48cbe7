package cart

import (
	"database/sql"
	"encoding/json"
)

// PostgresRepository stores one cart row per user. The line items are kept as
// a jsonb array so insertion order survives round trips.
// Table layout expected:
//   user_id int primary key,
//   items jsonb not null default '[]'
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetCart(userID int) (Cart, error) {
	return r.load(userID)
}

func (r *PostgresRepository) AddItem(userID int, item LineItem) (Cart, error) {
	return r.mutate(userID, func(c *Cart) { c.AddItem(item) })
}

func (r *PostgresRepository) SetQuantity(userID int, itemID int, quantity int) (Cart, error) {
	return r.mutate(userID, func(c *Cart) { c.SetQuantity(itemID, quantity) })
}

func (r *PostgresRepository) RemoveItem(userID int, itemID int) (Cart, error) {
	return r.mutate(userID, func(c *Cart) { c.Remove(itemID) })
}

func (r *PostgresRepository) ClearCart(userID int) error {
	res, err := r.db.Exec(`UPDATE carts SET items = '[]' WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}
	cnt, _ := res.RowsAffected()
	if cnt == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) load(userID int) (Cart, error) {
	var raw []byte
	if err := r.db.QueryRow(`SELECT items FROM carts WHERE user_id = $1`, userID).Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return Cart{}, ErrNotFound
		}
		return Cart{}, err
	}

	var c Cart
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &c.Items); err != nil {
			return Cart{}, err
		}
	}
	return c, nil
}

// mutate performs a read-modify-write on the stored items.
func (r *PostgresRepository) mutate(userID int, fn func(*Cart)) (Cart, error) {
	c, err := r.load(userID)
	if err != nil {
		return Cart{}, err
	}

	fn(&c)

	items := c.Items
	if items == nil {
		items = []LineItem{}
	}
	updated, err := json.Marshal(items)
	if err != nil {
		return Cart{}, err
	}
	if _, err := r.db.Exec(`UPDATE carts SET items = $1 WHERE user_id = $2`, updated, userID); err != nil {
		return Cart{}, err
	}
	return c, nil
}
