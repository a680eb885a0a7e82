package models

import "github.com/google/uuid"

// Customer defines the customer model based on the 'customers' table
type Customer struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Name     string    `json:"name" db:"name" example:"Evil Rabbit"`
	Email    string    `json:"email" db:"email" example:"evil@rabbit.com"`
	ImageURL string    `json:"imageUrl" db:"image_url" example:"/customers/evil-rabbit.png"`
}

// Revenue is one month of the 'revenue' table
type Revenue struct {
	Month   string `json:"month" db:"month" example:"Jan"`
	Revenue int    `json:"revenue" db:"revenue" example:"2000"`
}
