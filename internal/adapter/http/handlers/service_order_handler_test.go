package handlers

import (
	"net/http"
	"testing"
	"time"

	"reforma_xpto/internal/adapter/http/handlers/mocks"
	"reforma_xpto/internal/domain/entities"
	"reforma_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestServiceOrderHandler(t *testing.T) {
	setup := func(t *testing.T) (*gin.Engine, *mocks.MockIServiceOrderUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)
		r := gin.New()
		r.POST("/v1/service-orders", h.CreateServiceOrder)
		r.POST("/v1/service-orders/from-budget", h.IssueServiceOrder)
		r.PATCH("/v1/service-orders/:id/schedule", h.ScheduleServiceOrder)
		r.PATCH("/v1/service-orders/:id/start", h.StartServiceOrder)
		r.PATCH("/v1/service-orders/:id/pause", h.PauseServiceOrder)
		r.PATCH("/v1/service-orders/:id/finish", h.FinishServiceOrder)
		r.PATCH("/v1/service-orders/:id/status", h.SetServiceOrderStatus)
		r.GET("/v1/service-orders/:id", h.GetServiceOrder)
		r.GET("/v1/service-orders", h.ListServiceOrders)
		return r, uc
	}

	t.Run("create", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().CreateServiceOrder(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.CreateServiceOrderInput) (entities.ServiceOrder, error) {
			if in.ClientID != "c-1" || !in.Value.Equal(decimal.NewFromInt(500)) {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.ServiceOrder{ID: "so-1", ServiceOrderNumber: "OS-0001-25", Status: entities.ServiceOrderStatusIssued}, nil
		})

		w := perform(r, http.MethodPost, "/v1/service-orders", `{"client_id":"c-1","value":"500"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("issue from budget requires budget id", func(t *testing.T) {
		r, _ := setup(t)
		w := perform(r, http.MethodPost, "/v1/service-orders/from-budget", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("issue from budget", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().IssueFromBudget(gomock.Any(), "b-1", usecase.IssueServiceOrderInput{TechnicianID: "t-1"}).
			Return(entities.ServiceOrder{ID: "so-1", ServiceOrderNumber: "OS-0007-25"}, nil)

		w := perform(r, http.MethodPost, "/v1/service-orders/from-budget", `{"budget_id":"b-1","technician_id":"t-1"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("schedule start pause", func(t *testing.T) {
		r, uc := setup(t)
		at := time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC)
		uc.EXPECT().Schedule(gomock.Any(), "so-1", usecase.ScheduleServiceOrderInput{ScheduledAt: at}).Return(entities.ServiceOrder{ID: "so-1", Status: entities.ServiceOrderStatusScheduled}, nil)
		uc.EXPECT().Start(gomock.Any(), "so-1").Return(entities.ServiceOrder{ID: "so-1", Status: entities.ServiceOrderStatusInProgress}, nil)
		uc.EXPECT().Pause(gomock.Any(), "so-1").Return(entities.ServiceOrder{ID: "so-1", Status: entities.ServiceOrderStatusScheduled}, nil)

		if w := perform(r, http.MethodPatch, "/v1/service-orders/so-1/schedule", `{"scheduled_at":"2025-03-15T08:00:00Z"}`); w.Code != http.StatusOK {
			t.Fatalf("schedule: expected 200, got %d", w.Code)
		}
		if w := perform(r, http.MethodPatch, "/v1/service-orders/so-1/start", ""); w.Code != http.StatusOK {
			t.Fatalf("start: expected 200, got %d", w.Code)
		}
		w := perform(r, http.MethodPatch, "/v1/service-orders/so-1/pause", "")
		if w.Code != http.StatusOK {
			t.Fatalf("pause: expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["status"] != "scheduled" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("finish returns receivable", func(t *testing.T) {
		r, uc := setup(t)
		due := time.Date(2025, 3, 17, 12, 0, 0, 0, time.UTC)
		uc.EXPECT().Finish(gomock.Any(), "so-1", usecase.FinishServiceOrderInput{Notes: "ok"}).Return(
			entities.ServiceOrder{ID: "so-1", ServiceOrderNumber: "OS-0007-25", Status: entities.ServiceOrderStatusFinished, FinancialEntryID: "fe-1"},
			entities.FinancialEntry{ID: "fe-1", Type: entities.FinancialEntryTypeIncome, Status: entities.FinancialEntryStatusPending, DueDate: due, RelatedNumber: "OS-0007-25", Value: decimal.RequireFromString("761.50")},
			nil,
		)

		w := perform(r, http.MethodPatch, "/v1/service-orders/so-1/finish", `{"notes":"ok"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		entry, _ := decodeBody(t, w)["financial_entry"].(map[string]any)
		if entry["related_number"] != "OS-0007-25" || entry["value"] != "761.5" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("finish failure", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Finish(gomock.Any(), "so-1", gomock.Any()).
			Return(entities.ServiceOrder{}, entities.FinancialEntry{}, &usecase.RuleError{Kind: usecase.ErrPreconditionFailed, Entity: "service_order", ID: "so-1"})

		w := perform(r, http.MethodPatch, "/v1/service-orders/so-1/finish", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("set status", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().SetStatus(gomock.Any(), "so-1", entities.ServiceOrderStatusPaid).Return(entities.ServiceOrder{ID: "so-1", Status: entities.ServiceOrderStatusPaid}, nil)

		w := perform(r, http.MethodPatch, "/v1/service-orders/so-1/status", `{"status":"paid"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get and list", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().GetByID(gomock.Any(), "so-1").Return(entities.ServiceOrder{ID: "so-1"}, nil)
		uc.EXPECT().List(gomock.Any()).Return(nil, nil)

		if w := perform(r, http.MethodGet, "/v1/service-orders/so-1", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w := perform(r, http.MethodGet, "/v1/service-orders", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
