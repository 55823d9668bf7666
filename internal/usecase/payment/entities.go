package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

const MsgPaymentCreated = "Loan payment created successfully"

type CreatePaymentInput struct {
	Amount decimal.Decimal `json:"amount"`
}

type PaymentDTO struct {
	LoanPaymentID uint64          `json:"loanPaymentId"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     time.Time       `json:"createdAt"`
}
