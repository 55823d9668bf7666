package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is immutable once written; only a cascading loan delete (not
// exposed by this service) removes one.
type Payment struct {
	ID        uint64          `gorm:"primaryKey;column:id"`
	LoanID    uint64          `gorm:"column:loan_id;not null;index:idx_loan_payments_loan"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,2);column:amount"`
	CreatedAt time.Time       `gorm:"column:created_at"`
}

func (Payment) TableName() string { return "loan_payments" }
