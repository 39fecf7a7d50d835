package domain

import "time"

// Role is the access class of a user account.
type Role string

const (
	RoleClient        Role = "Client"
	RoleAdministrator Role = "Administrator"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleClient || r == RoleAdministrator
}

// User models an account of the catalog backoffice. Email is unique.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"nombre"`
	LastName     string    `json:"apellido"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Country      string    `json:"pais"`
	City         string    `json:"ciudad"`
	Address      string    `json:"direccion"`
	Phone        string    `json:"telefono"`
	Role         Role      `json:"rol"`
	IsActive     bool      `json:"is_active"`
	Image        string    `json:"imagen,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
