package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	request "reforma_xpto/internal/adapter/http/dto/request"
	response "reforma_xpto/internal/adapter/http/dto/response"
	"reforma_xpto/internal/domain/entities"
	"reforma_xpto/internal/infrastructure/export"
	"reforma_xpto/internal/infrastructure/logging"
	"reforma_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

const areaLedger = "ledger"

type FinancialEntryHandler struct {
	usecase usecase.IFinancialEntryUseCase
}

func NewFinancialEntryHandler(uc usecase.IFinancialEntryUseCase) *FinancialEntryHandler {
	return &FinancialEntryHandler{usecase: uc}
}

// CreateFinancialEntry godoc
// @Summary      Create a manual receivable or payable
// @Tags         financial-entries
// @Accept       json
// @Produce      json
// @Param        payload body request.CreateFinancialEntryRequest true "Entry"
// @Success      201 {object} response.FinancialEntryResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /financial-entries [post]
func (h *FinancialEntryHandler) CreateFinancialEntry(c *gin.Context) {
	var payload request.CreateFinancialEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, areaLedger, err)
		return
	}
	entry, err := h.usecase.CreateFinancialEntry(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, areaLedger, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromFinancialEntry(entry))
}

// PayFinancialEntry godoc
// @Summary      Settle a pending or overdue entry
// @Description  Income entries are charged through Mercado Pago; the body is the payment request,
// @Description  optionally wrapped in mp_payload. Expense entries are recorded as paid manually.
// @Tags         financial-entries
// @Accept       json
// @Produce      json
// @Param        id path string true "Entry ID"
// @Param        payload body request.PayFinancialEntryRequest false "Mercado Pago payment request"
// @Success      200 {object} response.FinancialEntryResponse
// @Failure      402 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /financial-entries/{id}/pay [post]
func (h *FinancialEntryHandler) PayFinancialEntry(c *gin.Context) {
	id := c.Param("id")
	logging.Default().Infof("[ledger][handler] pay start financial_entry_id=%s", id)

	mpPayload, err := readMPPayload(c)
	if err != nil {
		writeBindError(c, areaLedger, err)
		return
	}

	entry, err := h.usecase.PayFinancialEntry(c.Request.Context(), id, mpPayload)
	if err != nil {
		writeError(c, areaLedger, err)
		return
	}
	logging.Default().Infof("[ledger][handler] pay success financial_entry_id=%s payment_reference=%s", entry.ID, entry.PaymentReference)
	c.JSON(http.StatusOK, response.FromFinancialEntry(entry))
}

// MarkOverdue godoc
// @Summary      Mark pending entries past their due date as overdue
// @Tags         financial-entries
// @Accept       json
// @Produce      json
// @Param        payload body request.MarkOverdueRequest false "Reference time"
// @Success      200 {array} response.FinancialEntryResponse
// @Router       /financial-entries/overdue [post]
func (h *FinancialEntryHandler) MarkOverdue(c *gin.Context) {
	var payload request.MarkOverdueRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		writeBindError(c, areaLedger, err)
		return
	}
	var now time.Time
	if payload.Now != nil {
		now = *payload.Now
	}
	marked, err := h.usecase.MarkOverdue(c.Request.Context(), now)
	if err != nil {
		writeError(c, areaLedger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromFinancialEntries(marked))
}

// GetFinancialEntry godoc
// @Summary      Get a financial entry
// @Tags         financial-entries
// @Produce      json
// @Param        id path string true "Entry ID"
// @Success      200 {object} response.FinancialEntryResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /financial-entries/{id} [get]
func (h *FinancialEntryHandler) GetFinancialEntry(c *gin.Context) {
	entry, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, areaLedger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromFinancialEntry(entry))
}

// ListFinancialEntries godoc
// @Summary      List financial entries, optionally by related document number
// @Tags         financial-entries
// @Produce      json
// @Param        related_number query string false "Document number, e.g. OS-0007-25"
// @Success      200 {array} response.FinancialEntryResponse
// @Router       /financial-entries [get]
func (h *FinancialEntryHandler) ListFinancialEntries(c *gin.Context) {
	entries, err := h.list(c)
	if err != nil {
		writeError(c, areaLedger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromFinancialEntries(entries))
}

// ExportFinancialEntries godoc
// @Summary      Export the ledger as an XLSX spreadsheet
// @Tags         financial-entries
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        related_number query string false "Document number"
// @Success      200 {file} file
// @Router       /financial-entries/export [get]
func (h *FinancialEntryHandler) ExportFinancialEntries(c *gin.Context) {
	entries, err := h.list(c)
	if err != nil {
		writeError(c, areaLedger, err)
		return
	}
	c.Header("Content-Type", export.XLSXContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=lancamentos-%s.xlsx", time.Now().UTC().Format("20060102")))
	c.Status(http.StatusOK)
	if err := export.WriteLedger(c.Writer, entries); err != nil {
		logging.LogError(logging.Default(), areaLedger, "ExportFinancialEntries", len(entries), err)
	}
}

func (h *FinancialEntryHandler) list(c *gin.Context) ([]entities.FinancialEntry, error) {
	if number := strings.TrimSpace(c.Query("related_number")); number != "" {
		return h.usecase.ListByRelatedNumber(c.Request.Context(), number)
	}
	return h.usecase.List(c.Request.Context())
}

// readMPPayload accepts either a bare payment request or one wrapped in mp_payload.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}
