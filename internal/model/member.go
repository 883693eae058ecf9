package model

import "github.com/google/uuid"

// Member is a registered credential record.
type Member struct {
	ObjectID uuid.UUID `json:"_id" db:"object_id"`
	Username string    `json:"username" db:"username"`
	Password string    `json:"-" db:"password"`
}

// Credentials is the payload accepted by register and login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
