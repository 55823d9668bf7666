package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive Status = "Active"
	StatusPaid   Status = "Paid"
)

type Loan struct {
	ID             uint64          `gorm:"primaryKey;column:id"`
	ApplicantName  string          `gorm:"size:100;column:applicant_name;index:idx_loans_applicant"`
	Amount         decimal.Decimal `gorm:"type:decimal(18,2);column:amount"`
	CurrentBalance decimal.Decimal `gorm:"type:decimal(18,2);column:current_balance"`
	Status         Status          `gorm:"size:16;column:status;default:'Active'"`
	CreatedAt      time.Time       `gorm:"column:created_at;index:idx_loans_created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Loan) TableName() string { return "loans" }
