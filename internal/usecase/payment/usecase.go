package payment

import (
	"context"
	"errors"
	"log"
	"time"

	domainLoan "fundo-loans/internal/domain/loan"
	domainPayment "fundo-loans/internal/domain/payment"
	"fundo-loans/internal/domain/uow"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// Create applies a payment to a loan. The whole mutation runs inside
// one transaction with the loan row locked, so the balance/status
// checks always see committed state and concurrent payments serialize.
func (u *Usecase) Create(ctx context.Context, loanID uint64, in CreatePaymentInput) (*PaymentDTO, error) {
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainLoan.ErrInvalidAmount
	}

	var dto *PaymentDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if l.Status == domainLoan.StatusPaid {
			return domainLoan.ErrAlreadyPaid
		}
		if in.Amount.GreaterThan(l.CurrentBalance) {
			return &domainLoan.OverpaymentError{Amount: in.Amount, Balance: l.CurrentBalance}
		}

		p := &domainPayment.Payment{
			LoanID:    l.ID,
			Amount:    in.Amount,
			CreatedAt: time.Now().UTC(),
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}

		l.CurrentBalance = l.CurrentBalance.Sub(in.Amount)
		if l.CurrentBalance.IsZero() {
			l.Status = domainLoan.StatusPaid
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		dto = &PaymentDTO{LoanPaymentID: p.ID, Amount: p.Amount, CreatedAt: p.CreatedAt}
		return nil
	})
	switch {
	case err == nil:
		return dto, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, domainLoan.ErrNotFound
	case domainLoan.IsDomain(err):
		return nil, err
	default:
		log.Printf("create payment for loan %d: %v", loanID, err)
		return nil, domainLoan.ErrStorage
	}
}
