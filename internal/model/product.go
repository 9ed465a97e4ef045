package model

// Product represents a listing owned by exactly one user.
// OwnerID is set at creation and never changes afterwards.
type Product struct {
	ID          int64
	Name        string
	Price       float64
	Description string
	OwnerID     int64
}

// ProductRequest represents the mutable fields of a product, used for
// both creation and full replacement on update.
type ProductRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	OwnerID     int64   `json:"owner_id"`
}

// ProductFilter holds the optional predicates of a product listing.
// Nil pointer fields mean the predicate is absent. Limit and Skip are
// passed through unclamped.
type ProductFilter struct {
	Search   string
	MinPrice *float64
	MaxPrice *float64
	OwnerID  *int64
	OrderBy  string
	OrderDir string
	Skip     int
	Limit    int
}

// ToResponse converts a product to its API representation.
func (p *Product) ToResponse() ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		OwnerID:     p.OwnerID,
	}
}
