package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainLoan "fundo-loans/internal/domain/loan"
	domainPayment "fundo-loans/internal/domain/payment"
	"fundo-loans/internal/domain/uow"
	"fundo-loans/internal/testutil/loanmock"
	"fundo-loans/internal/testutil/paymentmock"
	"fundo-loans/internal/testutil/uowmock"
	paymentUC "fundo-loans/internal/usecase/payment"

	"github.com/labstack/echo/v4"
)

func paymentHandlerOver(l *domainLoan.Loan) *PaymentHandler {
	tx := &uowmock.UoW{
		WithinLoanTxFn: func(ctx context.Context, loanID uint64, fn func(r uow.Repos, l *domainLoan.Loan) error) error {
			return fn(uow.Repos{
				Loans: &loanmock.Repo{},
				Payments: &paymentmock.Repo{
					CreateFn: func(ctx context.Context, p *domainPayment.Payment) error { p.ID = 21; return nil },
				},
			}, l)
		},
	}
	return NewPaymentHandler(paymentUC.NewUsecase(tx))
}

func postPayment(e *echo.Echo, body string, id string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(stdhttp.MethodPost, "/loans/"+id+"/payment", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/loans/:id/payment")
	c.SetParamNames("id")
	c.SetParamValues(id)
	return rec, c
}

func TestCreatePayment_Success(t *testing.T) {
	e := newEchoWithValidator()
	l := &domainLoan.Loan{ID: 7, Amount: dec("100.00"), CurrentBalance: dec("100.00"), Status: domainLoan.StatusActive}
	h := paymentHandlerOver(l)

	rec, c := postPayment(e, `{"amount": 40.00}`, "7")
	if err := h.CreatePayment(c); err != nil {
		t.Fatalf("CreatePayment error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/loans/7" {
		t.Fatalf("Location = %q, want /loans/7", loc)
	}
	var got CreatePaymentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if !got.Success || got.Message != paymentUC.MsgPaymentCreated {
		t.Fatalf("unexpected envelope: %+v", got)
	}
	if got.LoanPayment == nil || got.LoanPayment.LoanPaymentID != 21 || !got.LoanPayment.Amount.Equal(dec("40.00")) {
		t.Fatalf("unexpected payment: %+v", got.LoanPayment)
	}
}

func TestCreatePayment_Overpayment400(t *testing.T) {
	e := newEchoWithValidator()
	l := &domainLoan.Loan{ID: 7, Amount: dec("100.00"), CurrentBalance: dec("0.00"), Status: domainLoan.StatusActive}
	h := paymentHandlerOver(l)

	rec, c := postPayment(e, `{"amount": 1.00}`, "7")
	if err := h.CreatePayment(c); err != nil {
		t.Fatalf("CreatePayment error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	fr := decodeFailure(t, rec)
	if fr.Success || !strings.Contains(fr.Message, "exceeds current balance") {
		t.Fatalf("unexpected failure body: %+v", fr)
	}
}

func TestCreatePayment_AlreadyPaid400(t *testing.T) {
	e := newEchoWithValidator()
	l := &domainLoan.Loan{ID: 7, Amount: dec("100.00"), CurrentBalance: dec("0.00"), Status: domainLoan.StatusPaid}
	h := paymentHandlerOver(l)

	rec, c := postPayment(e, `{"amount": 1.00}`, "7")
	if err := h.CreatePayment(c); err != nil {
		t.Fatalf("CreatePayment error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if fr := decodeFailure(t, rec); fr.Message != domainLoan.ErrAlreadyPaid.Error() {
		t.Fatalf("message = %q", fr.Message)
	}
}

func TestCreatePayment_BadID(t *testing.T) {
	e := newEchoWithValidator()
	h := NewPaymentHandler(paymentUC.NewUsecase(uowmock.New()))

	rec, c := postPayment(e, `{"amount": 1.00}`, "not-a-number")
	if err := h.CreatePayment(c); err != nil {
		t.Fatalf("CreatePayment error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if fr := decodeFailure(t, rec); fr.Message != msgInvalidLoanID {
		t.Fatalf("message = %q", fr.Message)
	}
}

func TestCreatePayment_BindError(t *testing.T) {
	e := newEchoWithValidator()
	h := NewPaymentHandler(paymentUC.NewUsecase(uowmock.New()))

	rec, c := postPayment(e, `{"amount":`, "7")
	if err := h.CreatePayment(c); err != nil {
		t.Fatalf("CreatePayment error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
