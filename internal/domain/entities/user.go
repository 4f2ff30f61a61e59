package entities

import "time"

// User is a customer as seen by the admin dashboard. Records are
// upserted (keyed by email) when an order is submitted, so the user
// list reflects everyone who has ever completed the wizard.
//
// Storage model (DynamoDB):
//   - PK: email

type User struct {
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Surname    string    `json:"surname"`
	Profession string    `json:"profession"`
	OrderCount int       `json:"order_count"`
	TotalSpent float64   `json:"total_spent"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Identity is the authenticated-customer view supplied by the external
// session collaborator. The core only reads it, to prefill a draft.
type Identity struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
}
