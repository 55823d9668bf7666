package loan

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	domainLoan "fundo-loans/internal/domain/loan"
	domainPayment "fundo-loans/internal/domain/payment"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Usecase struct {
	loans    domainLoan.Repository
	payments domainPayment.Repository
}

func NewUsecase(loans domainLoan.Repository, payments domainPayment.Repository) *Usecase {
	return &Usecase{loans: loans, payments: payments}
}

// normalizePage falls back to defaults rather than rejecting; the old
// API never errored on page params.
func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if size < 1 {
		size = DefaultPageSize
	}
	return page, size
}

func (u *Usecase) List(ctx context.Context, in ListLoansInput) (*ListLoansResult, error) {
	page, size := normalizePage(in.Page, in.PageSize)

	loans, total, err := u.loans.List(ctx, domainLoan.ListFilter{
		ApplicantName: strings.TrimSpace(in.ApplicantName),
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		Page:          page,
		PageSize:      size,
	})
	if err != nil {
		log.Printf("list loans: %v", err)
		return nil, domainLoan.ErrStorage
	}

	out := &ListLoansResult{
		Loans:      make([]LoanDTO, 0, len(loans)),
		TotalItems: total,
		Message:    MsgLoansRetrieved,
	}
	if total == 0 {
		out.Message = MsgNoLoans
	}
	for i := range loans {
		out.Loans = append(out.Loans, toLoanDTO(&loans[i]))
	}
	return out, nil
}

func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	// validation order matters: amount first, then name
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainLoan.ErrInvalidAmount
	}
	name := strings.TrimSpace(in.ApplicantName)
	if name == "" {
		return nil, domainLoan.ErrApplicantRequired
	}
	if len(name) > 100 {
		return nil, domainLoan.ErrApplicantTooLong
	}

	l := &domainLoan.Loan{
		ApplicantName:  name,
		Amount:         in.Amount,
		CurrentBalance: in.Amount, // initial balance equals the principal
		Status:         domainLoan.StatusActive,
		CreatedAt:      time.Now().UTC(),
	}
	if err := u.loans.Create(ctx, l); err != nil {
		log.Printf("create loan: %v", err)
		return nil, domainLoan.ErrStorage
	}

	dto := toLoanDTO(l)
	return &dto, nil
}

func (u *Usecase) Details(ctx context.Context, loanID uint64, page, size int) (*LoanDetailsResult, error) {
	page, size = normalizePage(page, size)

	if _, err := u.loans.GetByID(ctx, loanID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		log.Printf("get loan %d: %v", loanID, err)
		return nil, domainLoan.ErrStorage
	}

	pays, total, err := u.payments.ListByLoanID(ctx, loanID, page, size)
	if err != nil {
		log.Printf("list payments for loan %d: %v", loanID, err)
		return nil, domainLoan.ErrStorage
	}

	out := &LoanDetailsResult{
		Details:    make([]PaymentDTO, 0, len(pays)),
		TotalItems: total,
		Message:    MsgPaymentsRetrieved,
	}
	if total == 0 {
		out.Message = MsgNoPayments
	}
	for i := range pays {
		out.Details = append(out.Details, PaymentDTO{
			LoanPaymentID: pays[i].ID,
			Amount:        pays[i].Amount,
			CreatedAt:     pays[i].CreatedAt,
		})
	}
	return out, nil
}

func toLoanDTO(l *domainLoan.Loan) LoanDTO {
	return LoanDTO{
		LoanID:         l.ID,
		ApplicantName:  l.ApplicantName,
		Amount:         l.Amount,
		CurrentBalance: l.CurrentBalance,
		Status:         string(l.Status),
		CreatedAt:      l.CreatedAt,
	}
}
