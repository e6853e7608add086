package material

import "context"

// Repository defines the interface for material master persistence
type Repository interface {
	// FindByID finds a material by its identifier
	FindByID(ctx context.Context, materialID string) (*Material, error)

	// Exists reports whether a material is defined
	Exists(ctx context.Context, materialID string) (bool, error)

	// Insert stores a new material; it fails if the identifier is taken
	Insert(ctx context.Context, m *Material) error

	// List returns all materials in definition order
	List(ctx context.Context) ([]*Material, error)
}
