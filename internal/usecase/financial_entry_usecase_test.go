package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"reforma_xpto/internal/domain/entities"
	mock_interfaces "reforma_xpto/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func createEntry(t *testing.T, l *lifecycle, typ entities.FinancialEntryType, due time.Time) entities.FinancialEntry {
	t.Helper()
	e, err := l.entries.CreateFinancialEntry(context.Background(), CreateFinancialEntryInput{
		Description:   "Entrada",
		Value:         decimal.RequireFromString("250.50"),
		Type:          typ,
		DueDate:       due,
		RelatedNumber: "OS-0002-25",
		CategoryID:    entities.ServiceRevenueCategoryID,
	})
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}
	return e
}

func TestFinancialEntryUseCase_Create(t *testing.T) {
	ctx := context.Background()
	l := newLifecycle(t, memoryStore(), nil, nil)

	t.Run("invalid input", func(t *testing.T) {
		_, err := l.entries.CreateFinancialEntry(ctx, CreateFinancialEntryInput{Description: "x", Value: decimal.NewFromInt(-1), Type: "gift", CategoryID: "c"})
		var rule *RuleError
		if !errors.As(err, &rule) {
			t.Fatalf("expected RuleError, got %v", err)
		}
		if rule.Fields["value"] == "" || rule.Fields["type"] == "" || rule.Fields["duedate"] == "" {
			t.Fatalf("unexpected fields %+v", rule.Fields)
		}
	})

	t.Run("created pending", func(t *testing.T) {
		e := createEntry(t, l, entities.FinancialEntryTypeExpense, fixedNow)
		if e.Status != entities.FinancialEntryStatusPending {
			t.Fatalf("expected pending, got %s", e.Status)
		}
		byNumber, err := l.entries.ListByRelatedNumber(ctx, "OS-0002-25")
		if err != nil || len(byNumber) != 1 {
			t.Fatalf("list by number: %d %v", len(byNumber), err)
		}
	})
}

func TestFinancialEntryUseCase_PayIncomeThroughGateway(t *testing.T) {
	ctx := context.Background()

	t.Run("approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		l := newLifecycle(t, memoryStore(), nil, gateway)
		e := createEntry(t, l, entities.FinancialEntryTypeIncome, fixedNow)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			var req map[string]any
			if err := json.Unmarshal(payload, &req); err != nil {
				t.Fatalf("payload: %v", err)
			}
			if req["transaction_amount"] != 250.5 || req["external_reference"] != "OS-0002-25" || req["payment_method_id"] != "pix" {
				t.Errorf("unexpected payload %v", req)
			}
			return "mp-123", "approved", json.RawMessage(`{"id":"mp-123"}`), nil
		})

		paid, err := l.entries.PayFinancialEntry(ctx, e.ID, json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`))
		if err != nil {
			t.Fatalf("pay: %v", err)
		}
		if paid.Status != entities.FinancialEntryStatusPaid || paid.PaidAt == nil || paid.PaymentReference != "mp-123" {
			t.Fatalf("unexpected entry %+v", paid)
		}

		_, err = l.entries.PayFinancialEntry(ctx, e.ID, nil)
		expectKind(t, err, ErrPreconditionFailed)
	})

	t.Run("not approved keeps entry pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		l := newLifecycle(t, memoryStore(), nil, gateway)
		e := createEntry(t, l, entities.FinancialEntryTypeIncome, fixedNow)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-9", "rejected", nil, nil)

		_, err := l.entries.PayFinancialEntry(ctx, e.ID, nil)
		expectKind(t, err, ErrPaymentNotApproved)
		if got, _ := l.entries.GetByID(ctx, e.ID); got.Status != entities.FinancialEntryStatusPending {
			t.Fatalf("expected pending, got %s", got.Status)
		}
	})

	t.Run("gateway errors are classified", func(t *testing.T) {
		cases := []struct {
			msg  string
			want error
		}{
			{`{"status":401,"error":"unauthorized"}`, ErrPaymentGatewayUnauthorized},
			{`{"status":400,"error":"bad_request"}`, ErrPaymentGatewayBadRequest},
			{`customer not found`, ErrPaymentGatewayCustomerNotFound},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			l := newLifecycle(t, memoryStore(), nil, gateway)
			e := createEntry(t, l, entities.FinancialEntryTypeIncome, fixedNow)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(tc.msg))

			_, err := l.entries.PayFinancialEntry(ctx, e.ID, nil)
			expectKind(t, err, tc.want)
			ctrl.Finish()
		}
	})

	t.Run("no gateway", func(t *testing.T) {
		l := newLifecycle(t, memoryStore(), nil, nil)
		e := createEntry(t, l, entities.FinancialEntryTypeIncome, fixedNow)
		_, err := l.entries.PayFinancialEntry(ctx, e.ID, nil)
		expectKind(t, err, ErrPaymentGatewayNotConfigured)
	})

	t.Run("provider call does not hold the lifecycle lock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		l := newLifecycle(t, memoryStore(), nil, gateway)
		e := createEntry(t, l, entities.FinancialEntryTypeIncome, fixedNow)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, json.RawMessage) (string, string, json.RawMessage, error) {
			done := make(chan error, 1)
			go func() {
				_, err := l.clients.CreateClient(ctx, CreateClientInput{Name: "Bruno"})
				done <- err
			}()
			select {
			case err := <-done:
				if err != nil {
					t.Errorf("create client during payment: %v", err)
				}
			case <-time.After(2 * time.Second):
				t.Errorf("lifecycle blocked while the provider was called")
			}

			_, err := l.entries.PayFinancialEntry(ctx, e.ID, nil)
			if !errors.Is(err, ErrPreconditionFailed) {
				t.Errorf("second payment in flight: expected precondition failure, got %v", err)
			}
			return "mp-1", "approved", nil, nil
		})

		if _, err := l.entries.PayFinancialEntry(ctx, e.ID, nil); err != nil {
			t.Fatalf("pay: %v", err)
		}
	})

	t.Run("status is checked again before recording", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		l := newLifecycle(t, memoryStore(), nil, gateway)
		e := createEntry(t, l, entities.FinancialEntryTypeIncome, fixedNow)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, json.RawMessage) (string, string, json.RawMessage, error) {
			settled := e
			settled.Status = entities.FinancialEntryStatusPaid
			settled.PaymentReference = "elsewhere"
			if _, err := l.core.store.Entries.Update(ctx, settled); err != nil {
				t.Errorf("update: %v", err)
			}
			return "mp-2", "approved", nil, nil
		})

		_, err := l.entries.PayFinancialEntry(ctx, e.ID, nil)
		expectKind(t, err, ErrPreconditionFailed)
		if got, _ := l.entries.GetByID(ctx, e.ID); got.PaymentReference != "elsewhere" {
			t.Fatalf("entry must keep the reference recorded first, got %q", got.PaymentReference)
		}
	})

	t.Run("payload must be an object", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		l := newLifecycle(t, memoryStore(), nil, mock_interfaces.NewMockIPaymentGateway(ctrl))
		e := createEntry(t, l, entities.FinancialEntryTypeIncome, fixedNow)
		_, err := l.entries.PayFinancialEntry(ctx, e.ID, json.RawMessage(`[1,2]`))
		expectKind(t, err, ErrValidationFailed)
	})
}

func TestFinancialEntryUseCase_MarkOverdueAndPayExpense(t *testing.T) {
	ctx := context.Background()
	l := newLifecycle(t, memoryStore(), nil, nil)

	late := createEntry(t, l, entities.FinancialEntryTypeExpense, fixedNow.Add(-24*time.Hour))
	onTime := createEntry(t, l, entities.FinancialEntryTypeExpense, fixedNow.Add(24*time.Hour))

	marked, err := l.entries.MarkOverdue(ctx, fixedNow)
	if err != nil {
		t.Fatalf("mark overdue: %v", err)
	}
	if len(marked) != 1 || marked[0].ID != late.ID || marked[0].Status != entities.FinancialEntryStatusOverdue {
		t.Fatalf("unexpected marked entries %+v", marked)
	}
	if got, _ := l.entries.GetByID(ctx, onTime.ID); got.Status != entities.FinancialEntryStatusPending {
		t.Fatalf("entry due later must stay pending, got %s", got.Status)
	}

	paid, err := l.entries.PayFinancialEntry(ctx, late.ID, nil)
	if err != nil {
		t.Fatalf("pay overdue expense: %v", err)
	}
	if paid.Status != entities.FinancialEntryStatusPaid || paid.PaymentReference != "manual" {
		t.Fatalf("unexpected entry %+v", paid)
	}

	if again, _ := l.entries.MarkOverdue(ctx, fixedNow.Add(48*time.Hour)); len(again) != 1 || again[0].ID != onTime.ID {
		t.Fatalf("expected only the pending entry to become overdue, got %+v", again)
	}
}
