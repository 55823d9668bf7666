package payment

import (
	"context"
	"errors"
	"strings"
	"testing"

	domainLoan "fundo-loans/internal/domain/loan"
	domainPayment "fundo-loans/internal/domain/payment"
	"fundo-loans/internal/domain/uow"
	"fundo-loans/internal/testutil/loanmock"
	"fundo-loans/internal/testutil/paymentmock"
	"fundo-loans/internal/testutil/uowmock"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// lockedLoanUoW simulates WithinLoanTx: hands fn the given loan plus
// repos, mirroring what the gorm implementation does after locking.
func lockedLoanUoW(l *domainLoan.Loan, loans *loanmock.Repo, pays *paymentmock.Repo) *uowmock.UoW {
	return &uowmock.UoW{
		WithinLoanTxFn: func(ctx context.Context, loanID uint64, fn func(r uow.Repos, l *domainLoan.Loan) error) error {
			return fn(uow.Repos{Loans: loans, Payments: pays}, l)
		},
	}
}

func TestCreate_PartialPayment(t *testing.T) {
	l := &domainLoan.Loan{
		ID:             7,
		ApplicantName:  "Ann",
		Amount:         dec("100.00"),
		CurrentBalance: dec("100.00"),
		Status:         domainLoan.StatusActive,
	}
	var saved *domainLoan.Loan
	loans := &loanmock.Repo{
		SaveFn: func(ctx context.Context, got *domainLoan.Loan) error { saved = got; return nil },
	}
	pays := &paymentmock.Repo{
		CreateFn: func(ctx context.Context, p *domainPayment.Payment) error { p.ID = 42; return nil },
	}

	uc := NewUsecase(lockedLoanUoW(l, loans, pays))
	dto, err := uc.Create(context.Background(), 7, CreatePaymentInput{Amount: dec("40.00")})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if dto.LoanPaymentID != 42 || !dto.Amount.Equal(dec("40.00")) {
		t.Fatalf("unexpected dto: %+v", dto)
	}
	if saved == nil {
		t.Fatalf("loan was not saved")
	}
	if !saved.CurrentBalance.Equal(dec("60.00")) {
		t.Fatalf("balance = %s, want 60.00", saved.CurrentBalance)
	}
	if saved.Status != domainLoan.StatusActive {
		t.Fatalf("status = %s, want Active", saved.Status)
	}
}

func TestCreate_FinalPaymentFlipsToPaid(t *testing.T) {
	l := &domainLoan.Loan{ID: 7, Amount: dec("100.00"), CurrentBalance: dec("60.00"), Status: domainLoan.StatusActive}
	var saved *domainLoan.Loan
	loans := &loanmock.Repo{SaveFn: func(ctx context.Context, got *domainLoan.Loan) error { saved = got; return nil }}
	pays := &paymentmock.Repo{}

	uc := NewUsecase(lockedLoanUoW(l, loans, pays))
	if _, err := uc.Create(context.Background(), 7, CreatePaymentInput{Amount: dec("60.00")}); err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if !saved.CurrentBalance.IsZero() {
		t.Fatalf("balance = %s, want 0", saved.CurrentBalance)
	}
	if saved.Status != domainLoan.StatusPaid {
		t.Fatalf("status = %s, want Paid", saved.Status)
	}
}

func TestCreate_Overpayment(t *testing.T) {
	l := &domainLoan.Loan{ID: 7, Amount: dec("100.00"), CurrentBalance: dec("0.50"), Status: domainLoan.StatusActive}
	loans := &loanmock.Repo{
		SaveFn: func(ctx context.Context, got *domainLoan.Loan) error {
			t.Fatalf("Save must not run on overpayment")
			return nil
		},
	}
	pays := &paymentmock.Repo{
		CreateFn: func(ctx context.Context, p *domainPayment.Payment) error {
			t.Fatalf("payment must not be persisted on overpayment")
			return nil
		},
	}

	uc := NewUsecase(lockedLoanUoW(l, loans, pays))
	_, err := uc.Create(context.Background(), 7, CreatePaymentInput{Amount: dec("1.00")})

	var op *domainLoan.OverpaymentError
	if !errors.As(err, &op) {
		t.Fatalf("err = %v, want OverpaymentError", err)
	}
	// Message names both the attempted amount and the balance
	if !strings.Contains(err.Error(), "1") || !strings.Contains(err.Error(), "0.5") {
		t.Fatalf("message misses amounts: %q", err.Error())
	}
	if !l.CurrentBalance.Equal(dec("0.50")) || l.Status != domainLoan.StatusActive {
		t.Fatalf("loan state changed on failed payment: %+v", l)
	}
}

func TestCreate_AlreadyPaid(t *testing.T) {
	l := &domainLoan.Loan{ID: 7, Amount: dec("100.00"), CurrentBalance: dec("0.00"), Status: domainLoan.StatusPaid}
	uc := NewUsecase(lockedLoanUoW(l, &loanmock.Repo{}, &paymentmock.Repo{}))

	_, err := uc.Create(context.Background(), 7, CreatePaymentInput{Amount: dec("1.00")})
	if !errors.Is(err, domainLoan.ErrAlreadyPaid) {
		t.Fatalf("err = %v, want ErrAlreadyPaid", err)
	}
}

func TestCreate_InvalidAmount(t *testing.T) {
	tx := &uowmock.UoW{
		WithinLoanTxFn: func(ctx context.Context, loanID uint64, fn func(r uow.Repos, l *domainLoan.Loan) error) error {
			t.Fatalf("no transaction should start for an invalid amount")
			return nil
		},
	}
	uc := NewUsecase(tx)

	for _, amt := range []string{"0", "-10"} {
		if _, err := uc.Create(context.Background(), 7, CreatePaymentInput{Amount: dec(amt)}); !errors.Is(err, domainLoan.ErrInvalidAmount) {
			t.Fatalf("amount %s: err = %v, want ErrInvalidAmount", amt, err)
		}
	}
}

func TestCreate_LoanMissing(t *testing.T) {
	tx := &uowmock.UoW{
		WithinLoanTxFn: func(ctx context.Context, loanID uint64, fn func(r uow.Repos, l *domainLoan.Loan) error) error {
			return gorm.ErrRecordNotFound // lock lookup missed
		},
	}
	uc := NewUsecase(tx)

	_, err := uc.Create(context.Background(), 99, CreatePaymentInput{Amount: dec("1.00")})
	if !errors.Is(err, domainLoan.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCreate_StorageFailureIsGeneric(t *testing.T) {
	l := &domainLoan.Loan{ID: 7, Amount: dec("100.00"), CurrentBalance: dec("100.00"), Status: domainLoan.StatusActive}
	pays := &paymentmock.Repo{
		CreateFn: func(ctx context.Context, p *domainPayment.Payment) error {
			return errors.New("Error 1213: deadlock found")
		},
	}
	uc := NewUsecase(lockedLoanUoW(l, &loanmock.Repo{}, pays))

	_, err := uc.Create(context.Background(), 7, CreatePaymentInput{Amount: dec("1.00")})
	if !errors.Is(err, domainLoan.ErrStorage) {
		t.Fatalf("err = %v, want ErrStorage", err)
	}
	if strings.Contains(err.Error(), "deadlock") {
		t.Fatalf("driver detail leaked: %v", err)
	}
}
