package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Employee is the voting principal. Accounts are provisioned by the identity
// provider; this service only reads them.
type Employee struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}
