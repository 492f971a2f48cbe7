package address

import (
	"database/sql"
)

// Postgres repository stores addresses in a dedicated table with a foreign
// key to users.
// Table layout expected:
//   address_id serial primary key,
//   user_id int not null,
//   label text,
//   line text,
//   city text,
//   zip text,
//   is_default boolean,
//   created_at text,
//   updated_at text

type PostgresRepository struct {
	db *sql.DB
}

const (
	selectAddressColumns = `address_id, user_id, label, line, city, zip, is_default, created_at, updated_at`

	insertAddressQuery = `
		INSERT INTO address (user_id, label, line, city, zip, is_default, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING address_id, user_id, label, line, city, zip, is_default, created_at, updated_at
	`
	updateAddressQuery = `
		UPDATE address
		SET label=$3, line=$4, city=$5, zip=$6, updated_at=$7
		WHERE user_id=$1 AND address_id=$2
		RETURNING address_id, user_id, label, line, city, zip, is_default, created_at, updated_at
	`
	deleteAddressQuery = `
		DELETE FROM address WHERE user_id=$1 AND address_id=$2
	`
	clearDefaultQuery = `
		UPDATE address SET is_default=false WHERE user_id=$1
	`
	setDefaultQuery = `
		UPDATE address SET is_default=true
		WHERE user_id=$1 AND address_id=$2
		RETURNING address_id, user_id, label, line, city, zip, is_default, created_at, updated_at
	`
	countAddressesQuery = `
		SELECT COUNT(*) FROM address WHERE user_id=$1
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetAddresses(userID int) ([]Address, error) {
	if userID <= 0 {
		return nil, ErrNotFound
	}
	rows, err := r.db.Query(`SELECT `+selectAddressColumns+` FROM address WHERE user_id = $1 ORDER BY address_id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Address, 0)
	for rows.Next() {
		var a Address
		if err := rows.Scan(&a.AddressID, &a.UserID, &a.Label, &a.Line, &a.City, &a.Zip, &a.IsDefault, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, nil
}

func (r *PostgresRepository) AddAddress(addr Address) (Address, error) {
	var count int
	if err := r.db.QueryRow(countAddressesQuery, addr.UserID).Scan(&count); err != nil {
		return Address{}, err
	}
	if count == 0 {
		// first address becomes the default
		addr.IsDefault = true
	}

	var a Address
	err := r.db.QueryRow(
		insertAddressQuery,
		addr.UserID, addr.Label, addr.Line, addr.City, addr.Zip, addr.IsDefault, addr.CreatedAt, addr.UpdatedAt,
	).Scan(&a.AddressID, &a.UserID, &a.Label, &a.Line, &a.City, &a.Zip, &a.IsDefault, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return a, ErrNotFound
		}
		return a, err
	}
	return a, nil
}

func (r *PostgresRepository) UpdateAddress(addr Address) (Address, error) {
	var a Address
	err := r.db.QueryRow(
		updateAddressQuery,
		addr.UserID, addr.AddressID, addr.Label, addr.Line, addr.City, addr.Zip, addr.UpdatedAt,
	).Scan(&a.AddressID, &a.UserID, &a.Label, &a.Line, &a.City, &a.Zip, &a.IsDefault, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return a, ErrNotFound
		}
		return a, err
	}
	return a, nil
}

func (r *PostgresRepository) DeleteAddress(userID int, addressID int) error {
	res, err := r.db.Exec(deleteAddressQuery, userID, addressID)
	if err != nil {
		return err
	}
	cnt, _ := res.RowsAffected()
	if cnt == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) SetDefault(userID int, addressID int) (Address, error) {
	if _, err := r.db.Exec(clearDefaultQuery, userID); err != nil {
		return Address{}, err
	}
	var a Address
	err := r.db.QueryRow(setDefaultQuery, userID, addressID).
		Scan(&a.AddressID, &a.UserID, &a.Label, &a.Line, &a.City, &a.Zip, &a.IsDefault, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return a, ErrNotFound
		}
		return a, err
	}
	return a, nil
}
