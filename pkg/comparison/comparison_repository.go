package comparison

import (
	"context"

	"github.com/YasserDalali/compaire/entities"
	"gorm.io/gorm"
)

// Comparisons are only ever written by the seed utility; no handler computes
// or serves them.
type (
	ComparisonRepository interface {
		CreateComparison(ctx context.Context, comparison *entities.Comparison) error
	}

	comparisonRepository struct {
		db *gorm.DB
	}
)

func NewComparisonRepository(db *gorm.DB) ComparisonRepository {
	return &comparisonRepository{db: db}
}

func (r *comparisonRepository) CreateComparison(ctx context.Context, comparison *entities.Comparison) error {
	return r.db.WithContext(ctx).Create(comparison).Error
}
