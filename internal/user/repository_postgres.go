package user

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	listUsersQuery = `
		SELECT user_id, email, password, user_name, phone, created_at, updated_at
		FROM users
		ORDER BY user_id
	`
	getUserByIDQuery = `
		SELECT user_id, email, password, user_name, phone, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`
	getUserByEmailQuery = `
		SELECT user_id, email, password, user_name, phone, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	insertUserQuery = `
		INSERT INTO users (email, password, user_name, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING user_id
	`
	updateUserQuery = `
		UPDATE users
		SET email = $1,
			user_name = $2,
			phone = $3,
			updated_at = $4
		WHERE user_id = $5
	`
	deleteUserQuery = `DELETE FROM users WHERE user_id = $1`

	insertEmptyCartQuery = `
		INSERT INTO carts (user_id, items)
		VALUES ($1, '[]')
		ON CONFLICT (user_id) DO NOTHING
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []User {
	rows, err := r.db.Query(listUsersQuery)
	if err != nil {
		return []User{}
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			continue
		}
		users = append(users, user)
	}

	return users
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	row := r.db.QueryRow(getUserByIDQuery, id)
	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(email string) (User, error) {
	row := r.db.QueryRow(getUserByEmailQuery, email)
	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}

	return user, nil
}

func (r *PostgresRepository) Create(user User) (User, error) {
	var id int
	err := r.db.QueryRow(
		insertUserQuery,
		user.Email,
		user.Password,
		user.Name,
		user.Phone,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return User{}, err
	}

	user.ID = id

	// every account starts with an empty cart row
	if _, err := r.db.Exec(insertEmptyCartQuery, user.ID); err != nil {
		return User{}, err
	}

	return user, nil
}

func (r *PostgresRepository) Update(id int, userUpdate User) (User, error) {
	existing, err := r.GetByID(id)
	if err != nil {
		return User{}, err
	}

	if userUpdate.Email != "" {
		existing.Email = userUpdate.Email
	}
	if userUpdate.Name != "" {
		existing.Name = userUpdate.Name
	}
	if userUpdate.Phone != "" {
		existing.Phone = userUpdate.Phone
	}
	if userUpdate.UpdatedAt != "" {
		existing.UpdatedAt = userUpdate.UpdatedAt
	}

	_, err = r.db.Exec(
		updateUserQuery,
		existing.Email,
		existing.Name,
		existing.Phone,
		existing.UpdatedAt,
		id,
	)
	if err != nil {
		return User{}, err
	}

	return existing, nil
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteUserQuery, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func scanUser(row rowScanner) (User, error) {
	var user User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Name,
		&user.Phone,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return User{}, err
	}

	return user, nil
}
