package user

// SeedUsers returns the demo account used when the server runs without a
// database. The stored value is a bcrypt hash of "password", so the demo
// account can sign in through the normal flow.
func SeedUsers() []User {
	return []User{
		{
			ID:        1,
			Email:     "alex.doe@example.com",
			Password:  "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
			Name:      "Alex Doe",
			Phone:     "123-456-7890",
			CreatedAt: "2026-01-15T09:30:00Z",
			UpdatedAt: "2026-01-15T09:30:00Z",
		},
	}
}
