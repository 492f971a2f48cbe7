package payment

import (
	"database/sql"
)

// Postgres repository stores payment methods in a dedicated table.
// Table layout expected:
//   method_id serial primary key,
//   user_id int not null,
//   brand text,
//   last4 text,
//   expiry text,
//   created_at text

type PostgresRepository struct {
	db *sql.DB
}

const (
	getMethodsQuery = `
		SELECT method_id, user_id, brand, last4, expiry, created_at
		FROM payment_methods
		WHERE user_id = $1
		ORDER BY method_id
	`
	insertMethodQuery = `
		INSERT INTO payment_methods (user_id, brand, last4, expiry, created_at)
		SELECT $1, $2, $3, $4, $5
		WHERE NOT EXISTS (
			SELECT 1 FROM payment_methods WHERE user_id = $1 AND brand = $2 AND last4 = $3
		)
		RETURNING method_id
	`
	deleteMethodQuery = `
		DELETE FROM payment_methods WHERE user_id = $1 AND method_id = $2
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetMethods(userID int) ([]Method, error) {
	rows, err := r.db.Query(getMethodsQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Method, 0)
	for rows.Next() {
		var m Method
		if err := rows.Scan(&m.MethodID, &m.UserID, &m.Brand, &m.Last4, &m.Expiry, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, nil
}

func (r *PostgresRepository) AddMethod(m Method) (Method, error) {
	err := r.db.QueryRow(insertMethodQuery, m.UserID, m.Brand, m.Last4, m.Expiry, m.CreatedAt).Scan(&m.MethodID)
	if err != nil {
		if err == sql.ErrNoRows {
			// the guarded insert matched an existing card
			return Method{}, ErrExists
		}
		return Method{}, err
	}
	return m, nil
}

func (r *PostgresRepository) RemoveMethod(userID int, methodID int) error {
	res, err := r.db.Exec(deleteMethodQuery, userID, methodID)
	if err != nil {
		return err
	}
	cnt, _ := res.RowsAffected()
	if cnt == 0 {
		return ErrNotFound
	}
	return nil
}
