package entity

import "time"

// Restaurant represents a core domain entity without infrastructure concerns.
type Restaurant struct {
	ID           int64
	Slug         string
	Name         string
	Cuisine      string
	ImageURL     string
	Rating       float64
	DeliveryTime int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
