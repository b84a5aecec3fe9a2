package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/ressKim-io/text-haptics/api-service/internal/domain/entity"
)

// ClassificationRepository defines the interface for classification history operations
type ClassificationRepository interface {
	// Create stores a classification record
	Create(ctx context.Context, classification *entity.Classification) error

	// GetByID retrieves a classification by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Classification, error)

	// List retrieves classifications with pagination, newest first
	List(ctx context.Context, limit, offset int) ([]*entity.Classification, int64, error)
}

// ResultCache defines the interface for the classification result cache keyed by raw input text
type ResultCache interface {
	// Get returns the cached result for text; the bool is false on a miss
	Get(ctx context.Context, text string) (*entity.HapticResult, bool, error)

	// Set stores the result for text
	Set(ctx context.Context, text string, result *entity.HapticResult) error

	// Len reports the number of live entries, or -1 if the backend cannot tell
	Len(ctx context.Context) int
}
