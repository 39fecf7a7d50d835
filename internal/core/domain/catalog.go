package domain

import "time"

// Category groups products. Name is unique.
type Category struct {
	ID          string `json:"id" bson:"_id"`
	Name        string `json:"nombre" bson:"name"`
	Description string `json:"descripcion" bson:"description"`
}

// Product is a sellable catalog item. Category references Category.Name.
type Product struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"nombre" bson:"name"`
	Description string    `json:"descripcion" bson:"description"`
	Price       float64   `json:"precio" bson:"price"`
	Stock       int       `json:"stock" bson:"stock"`
	Category    string    `json:"categoria" bson:"category"`
	IsActive    bool      `json:"is_active" bson:"is_active"`
	Image       string    `json:"imagen,omitempty" bson:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// DispatchStatus tracks whether a sale has been shipped.
type DispatchStatus string

const (
	Dispatched    DispatchStatus = "Despachado"
	NotDispatched DispatchStatus = "No Despachado"
)

// Valid reports whether s is a known dispatch status.
func (s DispatchStatus) Valid() bool {
	return s == Dispatched || s == NotDispatched
}

// Sale records a purchase of Quantity units of a product by a user.
type Sale struct {
	ID             string         `json:"id" bson:"_id"`
	UserID         string         `json:"id_usuario" bson:"user_id"`
	ProductID      string         `json:"id_producto" bson:"product_id"`
	Quantity       int            `json:"cantidad" bson:"quantity"`
	Date           time.Time      `json:"fecha" bson:"date"`
	Status         DispatchStatus `json:"despachado" bson:"status"`
	IdempotencyKey string         `json:"-" bson:"idempotency_key,omitempty"`
}
