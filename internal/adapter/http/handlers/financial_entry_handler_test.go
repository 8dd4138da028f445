package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"reforma_xpto/internal/adapter/http/handlers/mocks"
	"reforma_xpto/internal/domain/entities"
	"reforma_xpto/internal/infrastructure/export"
	"reforma_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestFinancialEntryHandler(t *testing.T) {
	setup := func(t *testing.T) (*gin.Engine, *mocks.MockIFinancialEntryUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIFinancialEntryUseCase(ctrl)
		h := NewFinancialEntryHandler(uc)
		r := gin.New()
		r.POST("/v1/financial-entries", h.CreateFinancialEntry)
		r.POST("/v1/financial-entries/overdue", h.MarkOverdue)
		r.GET("/v1/financial-entries/export", h.ExportFinancialEntries)
		r.POST("/v1/financial-entries/:id/pay", h.PayFinancialEntry)
		r.GET("/v1/financial-entries/:id", h.GetFinancialEntry)
		r.GET("/v1/financial-entries", h.ListFinancialEntries)
		return r, uc
	}

	t.Run("create", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().CreateFinancialEntry(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.CreateFinancialEntryInput) (entities.FinancialEntry, error) {
			if in.Type != entities.FinancialEntryTypeExpense || !in.Value.Equal(decimal.NewFromInt(80)) {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.FinancialEntry{ID: "fe-2", Type: in.Type, Status: entities.FinancialEntryStatusPending, Value: in.Value}, nil
		})

		w := perform(r, http.MethodPost, "/v1/financial-entries", `{"description":"Cimento","value":"80","type":"expense","due_date":"2025-03-20T00:00:00Z","category_id":"materials"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("pay invalid json", func(t *testing.T) {
		r, _ := setup(t)
		w := perform(r, http.MethodPost, "/v1/financial-entries/fe-1/pay", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("pay empty mp_payload", func(t *testing.T) {
		r, _ := setup(t)
		w := perform(r, http.MethodPost, "/v1/financial-entries/fe-1/pay", `{"mp_payload":null}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("pay unwraps mp_payload", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().PayFinancialEntry(gomock.Any(), "fe-1", gomock.Any()).DoAndReturn(func(_ any, _ string, payload json.RawMessage) (entities.FinancialEntry, error) {
			if string(payload) != `{"payment_method_id":"pix"}` {
				t.Fatalf("unexpected payload: %s", payload)
			}
			return entities.FinancialEntry{ID: "fe-1", Status: entities.FinancialEntryStatusPaid, PaymentReference: "42"}, nil
		})

		w := perform(r, http.MethodPost, "/v1/financial-entries/fe-1/pay", `{"mp_payload":{"payment_method_id":"pix"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["payment_reference"] != "42" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("pay empty body", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().PayFinancialEntry(gomock.Any(), "fe-2", json.RawMessage("{}")).
			Return(entities.FinancialEntry{ID: "fe-2", Status: entities.FinancialEntryStatusPaid, PaymentReference: "manual"}, nil)

		if w := perform(r, http.MethodPost, "/v1/financial-entries/fe-2/pay", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("pay not approved", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().PayFinancialEntry(gomock.Any(), "fe-1", gomock.Any()).
			Return(entities.FinancialEntry{}, fmt.Errorf("%w: status=rejected", usecase.ErrPaymentNotApproved))

		w := perform(r, http.MethodPost, "/v1/financial-entries/fe-1/pay", `{"payment_method_id":"pix"}`)
		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
	})

	t.Run("mark overdue with reference time", func(t *testing.T) {
		r, uc := setup(t)
		now := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().MarkOverdue(gomock.Any(), now).Return([]entities.FinancialEntry{{ID: "fe-1", Status: entities.FinancialEntryStatusOverdue}}, nil)

		w := perform(r, http.MethodPost, "/v1/financial-entries/overdue", `{"now":"2025-04-01T00:00:00Z"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("mark overdue defaults to clock", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().MarkOverdue(gomock.Any(), time.Time{}).Return(nil, nil)

		if w := perform(r, http.MethodPost, "/v1/financial-entries/overdue", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("list by related number", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().ListByRelatedNumber(gomock.Any(), "OS-0007-25").Return([]entities.FinancialEntry{{ID: "fe-1"}}, nil)

		if w := perform(r, http.MethodGet, "/v1/financial-entries?related_number=OS-0007-25", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().GetByID(gomock.Any(), "fe-1").Return(entities.FinancialEntry{ID: "fe-1", Status: entities.FinancialEntryStatusPending}, nil)

		w := perform(r, http.MethodGet, "/v1/financial-entries/fe-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("export", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().List(gomock.Any()).Return([]entities.FinancialEntry{{ID: "fe-1", Value: decimal.NewFromInt(10)}}, nil)

		w := perform(r, http.MethodGet, "/v1/financial-entries/export", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != export.XLSXContentType {
			t.Fatalf("unexpected content type: %s", ct)
		}
		if w.Body.Len() == 0 {
			t.Fatalf("expected spreadsheet bytes")
		}
	})
}
