package order

import (
	"database/sql"
	"encoding/json"
)

// PostgresRepository stores orders with the line-item snapshot as jsonb.
// Table layout expected:
//   order_id serial primary key,
//   order_number text not null,
//   user_id int not null,
//   items jsonb not null default '[]',
//   subtotal numeric not null default 0,
//   delivery_fee numeric not null default 0,
//   taxes numeric not null default 0,
//   total numeric not null default 0,
//   status text not null,
//   created_at text,
//   updated_at text
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ord Order) (Order, error) {
	itemsJSON, err := json.Marshal(ord.Items)
	if err != nil {
		return Order{}, err
	}

	err = r.db.QueryRow(`INSERT INTO orders (order_number, user_id, items, subtotal, delivery_fee, taxes, total, status, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING order_id`,
		ord.Number, ord.UserID, itemsJSON, ord.Subtotal, ord.DeliveryFee, ord.Taxes, ord.Total, ord.Status.String(), ord.CreatedAt, ord.UpdatedAt).Scan(&ord.OrderID)
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) GetByID(orderID int) (Order, error) {
	row := r.db.QueryRow(`SELECT order_id, order_number, user_id, items, subtotal, delivery_fee, taxes, total, status, created_at, updated_at
        FROM orders WHERE order_id = $1`, orderID)
	ord, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	return ord, err
}

func (r *PostgresRepository) ListByUser(userID int) ([]Order, error) {
	rows, err := r.db.Query(`SELECT order_id, order_number, user_id, items, subtotal, delivery_fee, taxes, total, status, created_at, updated_at
        FROM orders WHERE user_id = $1 ORDER BY order_id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, ord)
	}
	return orders, nil
}

func (r *PostgresRepository) UpdateStatus(orderID int, status Status, updatedAt string) (Order, error) {
	res, err := r.db.Exec(`UPDATE orders SET status = $1, updated_at = $2 WHERE order_id = $3`, status.String(), updatedAt, orderID)
	if err != nil {
		return Order{}, err
	}
	cnt, _ := res.RowsAffected()
	if cnt == 0 {
		return Order{}, ErrNotFound
	}
	return r.GetByID(orderID)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (Order, error) {
	var ord Order
	var itemsJSON []byte
	var status string
	if err := row.Scan(&ord.OrderID, &ord.Number, &ord.UserID, &itemsJSON, &ord.Subtotal, &ord.DeliveryFee, &ord.Taxes, &ord.Total, &status, &ord.CreatedAt, &ord.UpdatedAt); err != nil {
		return Order{}, err
	}
	ord.Status = Status(status)
	json.Unmarshal(itemsJSON, &ord.Items)
	return ord, nil
}
