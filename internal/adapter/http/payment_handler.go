package http

import (
	"net/http"

	paymentUC "fundo-loans/internal/usecase/payment"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct{ uc *paymentUC.Usecase }

func NewPaymentHandler(uc *paymentUC.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	id, ok := loanIDParam(c)
	if !ok {
		return failMsg(c, msgInvalidLoanID)
	}
	var req paymentUC.CreatePaymentInput
	if err := c.Bind(&req); err != nil {
		return failMsg(c, msgInvalidBody)
	}

	dto, err := h.uc.Create(c.Request().Context(), id, req)
	if err != nil {
		return fail(c, err)
	}
	c.Response().Header().Set(echo.HeaderLocation, "/loans/"+c.Param("id"))
	return c.JSON(http.StatusCreated, CreatePaymentResponse{
		Success:     true,
		Message:     paymentUC.MsgPaymentCreated,
		LoanPayment: dto,
	})
}
