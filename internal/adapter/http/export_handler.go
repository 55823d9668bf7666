package http

import (
	"bytes"
	"net/http"
	"time"

	exportUC "fundo-loans/internal/usecase/export"

	"github.com/labstack/echo/v4"
)

type ExportHandler struct{ exp *exportUC.Exporter }

func NewExportHandler(exp *exportUC.Exporter) *ExportHandler { return &ExportHandler{exp: exp} }

type exportQuery struct {
	ApplicantName string `query:"applicantName"`
	StartDate     string `query:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate       string `query:"endDate"   validate:"omitempty,datetime=2006-01-02"`
}

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *ExportHandler) ExportLoans(c echo.Context) error {
	var q exportQuery
	if err := c.Bind(&q); err != nil {
		return failMsg(c, msgInvalidQuery)
	}
	if err := c.Validate(&q); err != nil {
		return failMsg(c, msgInvalidDateFilter)
	}

	var buf bytes.Buffer
	_, err := h.exp.WriteXLSX(c.Request().Context(), exportUC.Filter{
		ApplicantName: q.ApplicantName,
		StartDate:     parseDay(q.StartDate),
		EndDate:       parseDay(q.EndDate),
	}, &buf)
	if err != nil {
		return fail(c, err)
	}

	name := exportUC.Filename(time.Now())
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}
