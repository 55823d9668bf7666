package http

import (
	loanUC "fundo-loans/internal/usecase/loan"
	paymentUC "fundo-loans/internal/usecase/payment"
)

// Every body carries success+message; the flag always agrees with the
// status code (failure is never a 2xx).
type ListLoansResponse struct {
	Success    bool             `json:"success"`
	Message    string           `json:"message"`
	Loans      []loanUC.LoanDTO `json:"loans"`
	TotalItems int64            `json:"totalItems"`
}

type CreateLoanResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Loan    *loanUC.LoanDTO `json:"loan"`
}

type LoanDetailsResponse struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	Details    []loanUC.PaymentDTO `json:"details"`
	TotalItems int64               `json:"totalItems"`
}

type CreatePaymentResponse struct {
	Success     bool                  `json:"success"`
	Message     string                `json:"message"`
	LoanPayment *paymentUC.PaymentDTO `json:"loanPayment"`
}

type FailureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
