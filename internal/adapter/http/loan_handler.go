package http

import (
	"net/http"
	"strconv"
	"time"

	loanUC "fundo-loans/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loanUC.Usecase }

func NewLoanHandler(uc *loanUC.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type listLoansQuery struct {
	PageNumber    int    `query:"pageNumber"`
	PageSize      int    `query:"pageSize"`
	ApplicantName string `query:"applicantName"`
	StartDate     string `query:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate       string `query:"endDate"   validate:"omitempty,datetime=2006-01-02"`
}

func parseDay(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return nil
	}
	return &t
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	var q listLoansQuery
	if err := c.Bind(&q); err != nil {
		return failMsg(c, msgInvalidQuery)
	}
	if err := c.Validate(&q); err != nil {
		return failMsg(c, msgInvalidDateFilter)
	}

	res, err := h.uc.List(c.Request().Context(), loanUC.ListLoansInput{
		Page:          q.PageNumber,
		PageSize:      q.PageSize,
		ApplicantName: q.ApplicantName,
		StartDate:     parseDay(q.StartDate),
		EndDate:       parseDay(q.EndDate),
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, ListLoansResponse{
		Success:    true,
		Message:    res.Message,
		Loans:      res.Loans,
		TotalItems: res.TotalItems,
	})
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req loanUC.CreateLoanInput
	if err := c.Bind(&req); err != nil {
		return failMsg(c, msgInvalidBody)
	}
	dto, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return fail(c, err)
	}
	c.Response().Header().Set(echo.HeaderLocation, "/loans")
	return c.JSON(http.StatusCreated, CreateLoanResponse{
		Success: true,
		Message: loanUC.MsgLoanCreated,
		Loan:    dto,
	})
}

type detailsQuery struct {
	PageNumber int `query:"pageNumber"`
	PageSize   int `query:"pageSize"`
}

func loanIDParam(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return id, err == nil && id > 0
}

func (h *LoanHandler) GetLoanDetails(c echo.Context) error {
	id, ok := loanIDParam(c)
	if !ok {
		return failMsg(c, msgInvalidLoanID)
	}
	var q detailsQuery
	if err := c.Bind(&q); err != nil {
		return failMsg(c, msgInvalidQuery)
	}

	res, err := h.uc.Details(c.Request().Context(), id, q.PageNumber, q.PageSize)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, LoanDetailsResponse{
		Success:    true,
		Message:    res.Message,
		Details:    res.Details,
		TotalItems: res.TotalItems,
	})
}
