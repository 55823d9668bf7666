package loan

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Domain failures carry the exact messages clients were built against;
// keep the wording stable (including the grammar of ErrNotFound).
var (
	ErrInvalidAmount     = errors.New("Amount must be greater than 0")
	ErrApplicantRequired = errors.New("Applicant name is required")
	ErrApplicantTooLong  = errors.New("Applicant name must be at most 100 characters")
	ErrNotFound          = errors.New("Loan doesn't exists. Check the information")
	ErrAlreadyPaid       = errors.New("This loan has already been paid in full")

	// ErrStorage is the single error surfaced for any backing-store
	// failure; the real cause is logged, never sent to the client.
	ErrStorage = errors.New("An unexpected error occurred while accessing loan records")
)

// OverpaymentError names the attempted amount and the balance it exceeded.
type OverpaymentError struct {
	Amount  decimal.Decimal
	Balance decimal.Decimal
}

func (e *OverpaymentError) Error() string {
	return fmt.Sprintf("Payment amount %s exceeds current balance %s", e.Amount, e.Balance)
}

// IsDomain reports whether err is one of the enumerable validation
// failures (as opposed to an infrastructure fault).
func IsDomain(err error) bool {
	var op *OverpaymentError
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrApplicantRequired) ||
		errors.Is(err, ErrApplicantTooLong) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAlreadyPaid) ||
		errors.As(err, &op)
}
