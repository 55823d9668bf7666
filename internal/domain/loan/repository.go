package loan

import (
	"context"
	"time"
)

// ListFilter bounds and filters a loan listing. Page/PageSize of zero
// mean "no slicing" (used by exports); callers that paginate normalize
// them first.
type ListFilter struct {
	ApplicantName string
	StartDate     *time.Time
	EndDate       *time.Time
	Page          int
	PageSize      int
}

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByID(ctx context.Context, id uint64) (*Loan, error)
	// GetByIDForUpdate locks the row until the surrounding tx ends.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Loan, error)
	Save(ctx context.Context, l *Loan) error
	// List returns the matching slice ordered by created_at DESC plus
	// the total match count before slicing.
	List(ctx context.Context, f ListFilter) ([]Loan, int64, error)
}
