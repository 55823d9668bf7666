package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stable result messages; the frontend matches on some of these.
const (
	MsgNoLoans           = "There are no records of loans"
	MsgLoansRetrieved    = "Loans retrieved successfully"
	MsgLoanCreated       = "Loan created successfully"
	MsgNoPayments        = "No loan payments have been recorded yet"
	MsgPaymentsRetrieved = "Loan payments retrieved successfully"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

type ListLoansInput struct {
	Page          int
	PageSize      int
	ApplicantName string
	StartDate     *time.Time
	EndDate       *time.Time
}

type CreateLoanInput struct {
	ApplicantName string          `json:"applicantName"`
	Amount        decimal.Decimal `json:"amount"`
}

type LoanDTO struct {
	LoanID         uint64          `json:"loanId"`
	ApplicantName  string          `json:"applicantName"`
	Amount         decimal.Decimal `json:"amount"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type PaymentDTO struct {
	LoanPaymentID uint64          `json:"loanPaymentId"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type ListLoansResult struct {
	Message    string
	Loans      []LoanDTO
	TotalItems int64
}

type LoanDetailsResult struct {
	Message    string
	Details    []PaymentDTO
	TotalItems int64
}
