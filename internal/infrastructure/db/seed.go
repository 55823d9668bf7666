package db

import (
	"context"
	"time"

	"fundo-loans/internal/domain/loan"
	"fundo-loans/internal/domain/payment"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Seed loads the development fixture: five loans in mixed states plus
// their payment history. It is a no-op when any loan already exists
// and only runs when explicitly invoked (cmd/api -seed).
func Seed(ctx context.Context, gdb *gorm.DB) error {
	var count int64
	if err := gdb.WithContext(ctx).Model(&loan.Loan{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	days := func(n int) time.Time { return now.AddDate(0, 0, -n) }

	loans := []loan.Loan{
		{ApplicantName: "Juan Pérez", Amount: dec("50000.00"), CurrentBalance: dec("35000.00"), Status: loan.StatusActive, CreatedAt: days(90)},
		{ApplicantName: "María García", Amount: dec("100000.00"), CurrentBalance: dec("0.00"), Status: loan.StatusPaid, CreatedAt: days(180)},
		{ApplicantName: "Carlos Rodríguez", Amount: dec("75000.00"), CurrentBalance: dec("60000.00"), Status: loan.StatusActive, CreatedAt: days(60)},
		{ApplicantName: "Ana Martínez", Amount: dec("30000.00"), CurrentBalance: dec("15000.00"), Status: loan.StatusActive, CreatedAt: days(120)},
		{ApplicantName: "Luis González", Amount: dec("80000.00"), CurrentBalance: dec("0.00"), Status: loan.StatusPaid, CreatedAt: days(200)},
	}

	return gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&loans).Error; err != nil {
			return err
		}
		payments := []payment.Payment{
			{LoanID: loans[0].ID, Amount: dec("10000.00"), CreatedAt: days(85)},
			{LoanID: loans[0].ID, Amount: dec("5000.00"), CreatedAt: days(60)},
			{LoanID: loans[1].ID, Amount: dec("50000.00"), CreatedAt: days(150)},
			{LoanID: loans[1].ID, Amount: dec("30000.00"), CreatedAt: days(120)},
			{LoanID: loans[1].ID, Amount: dec("20000.00"), CreatedAt: days(90)},
			{LoanID: loans[2].ID, Amount: dec("15000.00"), CreatedAt: days(45)},
			{LoanID: loans[3].ID, Amount: dec("7500.00"), CreatedAt: days(100)},
			{LoanID: loans[3].ID, Amount: dec("7500.00"), CreatedAt: days(70)},
			{LoanID: loans[4].ID, Amount: dec("40000.00"), CreatedAt: days(170)},
			{LoanID: loans[4].ID, Amount: dec("40000.00"), CreatedAt: days(140)},
		}
		return tx.Create(&payments).Error
	})
}
