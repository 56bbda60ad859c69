package model

import "time"

type Product struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Price     float64   `db:"price" json:"price"`
	Stock     int64     `db:"stock" json:"stock"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
