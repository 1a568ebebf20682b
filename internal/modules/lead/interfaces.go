package lead

import (
	"context"

	"tyltyhub/internal/domain"
)

// LeadRepository defines the store operations the service depends on.
type LeadRepository interface {
	Create(ctx context.Context, l *domain.Lead) error
	List(ctx context.Context) ([]domain.Lead, error)
	Count(ctx context.Context) (int64, error)
}
