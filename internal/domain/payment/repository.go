package payment

import "context"

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	// ListByLoanID returns one page ordered by created_at DESC and the
	// total payment count for the loan.
	ListByLoanID(ctx context.Context, loanID uint64, page, pageSize int) ([]Payment, int64, error)
}
