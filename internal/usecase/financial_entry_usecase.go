package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"reforma_xpto/internal/domain/entities"
	"reforma_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
	ErrPaymentNotApproved             = errors.New("payment not approved by provider")
)

type CreateFinancialEntryInput struct {
	Description   string                      `validate:"required"`
	Value         decimal.Decimal             `validate:"gt=0"`
	Type          entities.FinancialEntryType `validate:"required,oneof=income expense"`
	DueDate       time.Time                   `validate:"required"`
	RelatedNumber string                      `validate:"omitempty"`
	CategoryID    string                      `validate:"required"`
}

// IFinancialEntryUseCase manages the receivables and payables ledger.
type IFinancialEntryUseCase interface {
	CreateFinancialEntry(ctx context.Context, in CreateFinancialEntryInput) (entities.FinancialEntry, error)
	PayFinancialEntry(ctx context.Context, id string, payload json.RawMessage) (entities.FinancialEntry, error)
	MarkOverdue(ctx context.Context, now time.Time) ([]entities.FinancialEntry, error)
	GetByID(ctx context.Context, id string) (entities.FinancialEntry, error)
	List(ctx context.Context) ([]entities.FinancialEntry, error)
	ListByRelatedNumber(ctx context.Context, number string) ([]entities.FinancialEntry, error)
}

type FinancialEntryUseCase struct {
	core    *Core
	gateway interfaces.IPaymentGateway

	payingMu sync.Mutex
	paying   map[string]struct{}
}

var _ IFinancialEntryUseCase = (*FinancialEntryUseCase)(nil)

// NewFinancialEntryUseCase builds the ledger use case. gateway may be nil, in which case income
// entries cannot be settled.
func NewFinancialEntryUseCase(core *Core, gateway interfaces.IPaymentGateway) *FinancialEntryUseCase {
	return &FinancialEntryUseCase{core: core, gateway: gateway, paying: make(map[string]struct{})}
}

func (u *FinancialEntryUseCase) CreateFinancialEntry(ctx context.Context, in CreateFinancialEntryInput) (entities.FinancialEntry, error) {
	in.Description = strings.TrimSpace(in.Description)
	in.CategoryID = strings.TrimSpace(in.CategoryID)
	if err := u.core.validateInput("financial_entry", in); err != nil {
		return entities.FinancialEntry{}, err
	}

	var created entities.FinancialEntry
	err := u.core.run(ctx, "CreateFinancialEntry", func(uw *unitOfWork) error {
		var err error
		created, err = u.core.createFinancialEntry(ctx, uw, entities.FinancialEntry{
			ID:            uuid.NewString(),
			Description:   in.Description,
			Value:         in.Value,
			Type:          in.Type,
			Status:        entities.FinancialEntryStatusPending,
			DueDate:       in.DueDate.UTC(),
			RelatedNumber: strings.TrimSpace(in.RelatedNumber),
			CategoryID:    in.CategoryID,
		})
		return err
	})
	return created, err
}

// PayFinancialEntry settles a pending or overdue entry. Income goes through the payment gateway
// with the entry value as the amount; expenses are recorded as paid directly.
//
// The provider is called outside the lifecycle lock. The status is re-checked when the payment is
// recorded, and only one payment per entry may be in flight.
func (u *FinancialEntryUseCase) PayFinancialEntry(ctx context.Context, id string, payload json.RawMessage) (entities.FinancialEntry, error) {
	id = strings.TrimSpace(id)
	log := u.core.log.WithField("financial_entry_id", id)
	log.Infof("[ledger][usecase] pay start payload_len=%d", len(payload))

	if !u.startPayment(id) {
		err := preconditionFailed("financial_entry", id, "a payment for this entry is already in progress")
		log.Warnf("[ledger][usecase] pay failed err=%v", err)
		return entities.FinancialEntry{}, err
	}
	defer u.finishPayment(id)

	current, err := u.payable(ctx, id)
	if err != nil {
		log.Warnf("[ledger][usecase] pay failed err=%v", err)
		return entities.FinancialEntry{}, err
	}

	reference := "manual"
	if current.Type == entities.FinancialEntryTypeIncome {
		if reference, err = u.charge(ctx, log, current, payload); err != nil {
			log.Warnf("[ledger][usecase] pay failed err=%v", err)
			return entities.FinancialEntry{}, err
		}
	}

	var entry entities.FinancialEntry
	err = u.core.run(ctx, "PayFinancialEntry", func(uw *unitOfWork) error {
		prev, err := u.load(ctx, id)
		if err != nil {
			return err
		}
		if !prev.Status.CanTransitionTo(entities.FinancialEntryStatusPaid) {
			return preconditionFailed("financial_entry", id, "cannot pay a %s entry", prev.Status)
		}

		now := u.core.timestamp()
		entry = prev
		entry.Status = entities.FinancialEntryStatusPaid
		entry.PaidAt = &now
		entry.PaymentReference = reference
		entry.UpdatedAt = now
		if entry, err = u.update(ctx, uw, prev, entry); err != nil {
			return err
		}
		uw.emit(u.core.event(entities.DocumentEventTransitioned, "financial_entry", entry.ID, entry.RelatedNumber, string(entry.Status)))
		return nil
	})
	if err != nil {
		if current.Type == entities.FinancialEntryTypeIncome {
			log.WithField("provider_payment_id", reference).Errorf("[ledger][usecase] payment charged but not recorded err=%v", err)
		} else {
			log.Warnf("[ledger][usecase] pay failed err=%v", err)
		}
		return entities.FinancialEntry{}, err
	}
	log.WithField("payment_reference", entry.PaymentReference).Info("[ledger][usecase] pay success")
	return entry, nil
}

// payable loads an entry that can still be paid.
func (u *FinancialEntryUseCase) payable(ctx context.Context, id string) (entities.FinancialEntry, error) {
	var e entities.FinancialEntry
	err := u.core.view(func() error {
		var err error
		if e, err = u.load(ctx, id); err != nil {
			return err
		}
		if !e.Status.CanTransitionTo(entities.FinancialEntryStatusPaid) {
			return preconditionFailed("financial_entry", id, "cannot pay a %s entry", e.Status)
		}
		return nil
	})
	return e, err
}

func (u *FinancialEntryUseCase) startPayment(id string) bool {
	u.payingMu.Lock()
	defer u.payingMu.Unlock()
	if _, busy := u.paying[id]; busy {
		return false
	}
	u.paying[id] = struct{}{}
	return true
}

func (u *FinancialEntryUseCase) finishPayment(id string) {
	u.payingMu.Lock()
	delete(u.paying, id)
	u.payingMu.Unlock()
}

// charge sends the payment request and returns the provider payment id.
func (u *FinancialEntryUseCase) charge(ctx context.Context, log *logrus.Entry, e entities.FinancialEntry, payload json.RawMessage) (string, error) {
	if u.gateway == nil {
		return "", ErrPaymentGatewayNotConfigured
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	req := map[string]any{}
	if err := json.Unmarshal(payload, &req); err != nil {
		return "", validationFailed("financial_entry", "payment payload is not a JSON object", map[string]string{"payload": "json"})
	}
	if _, ok := req["external_reference"]; !ok {
		ref := e.RelatedNumber
		if ref == "" {
			ref = e.ID
		}
		req["external_reference"] = ref
	}
	if _, ok := req["description"]; !ok {
		req["description"] = e.Description
	}
	// The stored value is the source of truth for the amount.
	req["transaction_amount"] = e.Value.InexactFloat64()
	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	log.Infof("[ledger][usecase] calling payment gateway payload_len=%d", len(body))
	paymentID, status, _, err := u.gateway.CreatePayment(ctx, body)
	if err != nil {
		return "", classifyGatewayError(err)
	}
	log.Infof("[ledger][usecase] payment gateway answered provider_payment_id=%s provider_status=%s", paymentID, status)
	if status != "approved" {
		return "", fmt.Errorf("%w: status=%s", ErrPaymentNotApproved, status)
	}
	return paymentID, nil
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayCustomerNotFound, err)
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayUnauthorized, err)
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayBadRequest, err)
	}
	return err
}

// MarkOverdue flags every pending entry whose due date is before now. A zero now uses the clock.
func (u *FinancialEntryUseCase) MarkOverdue(ctx context.Context, now time.Time) ([]entities.FinancialEntry, error) {
	var marked []entities.FinancialEntry
	err := u.core.run(ctx, "MarkOverdue", func(uw *unitOfWork) error {
		if now.IsZero() {
			now = u.core.timestamp()
		}
		all, err := u.core.store.Entries.List(ctx)
		if err != nil {
			return err
		}
		for _, prev := range all {
			if prev.Status != entities.FinancialEntryStatusPending || !prev.DueDate.Before(now) {
				continue
			}
			next := prev
			next.Status = entities.FinancialEntryStatusOverdue
			next.UpdatedAt = u.core.timestamp()
			updated, err := u.update(ctx, uw, prev, next)
			if err != nil {
				return err
			}
			uw.emit(u.core.event(entities.DocumentEventTransitioned, "financial_entry", updated.ID, updated.RelatedNumber, string(updated.Status)))
			marked = append(marked, updated)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return marked, nil
}

func (u *FinancialEntryUseCase) GetByID(ctx context.Context, id string) (entities.FinancialEntry, error) {
	id = strings.TrimSpace(id)
	var e entities.FinancialEntry
	err := u.core.view(func() error {
		var err error
		e, err = u.load(ctx, id)
		return err
	})
	return e, err
}

func (u *FinancialEntryUseCase) List(ctx context.Context) ([]entities.FinancialEntry, error) {
	var out []entities.FinancialEntry
	err := u.core.view(func() error {
		var err error
		out, err = u.core.store.Entries.List(ctx)
		return err
	})
	return out, err
}

func (u *FinancialEntryUseCase) ListByRelatedNumber(ctx context.Context, number string) ([]entities.FinancialEntry, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, validationFailed("financial_entry", "related number is required", map[string]string{"related_number": "required"})
	}
	var out []entities.FinancialEntry
	err := u.core.view(func() error {
		var err error
		out, err = u.core.store.Entries.ListByRelatedNumber(ctx, number)
		return err
	})
	return out, err
}

func (u *FinancialEntryUseCase) load(ctx context.Context, id string) (entities.FinancialEntry, error) {
	e, err := u.core.store.Entries.GetByID(ctx, id)
	if err != nil {
		return entities.FinancialEntry{}, err
	}
	if e.ID == "" {
		return entities.FinancialEntry{}, notFound("financial_entry", id)
	}
	return e, nil
}

func (u *FinancialEntryUseCase) update(ctx context.Context, uw *unitOfWork, prev, next entities.FinancialEntry) (entities.FinancialEntry, error) {
	updated, err := u.core.store.Entries.Update(ctx, next)
	if err != nil {
		return entities.FinancialEntry{}, err
	}
	if updated.ID == "" {
		return entities.FinancialEntry{}, notFound("financial_entry", next.ID)
	}
	uw.onRollback(func(ctx context.Context) error {
		_, err := u.core.store.Entries.Update(ctx, prev)
		return err
	})
	return updated, nil
}

// createFinancialEntry stores a new pending entry. The value must be positive.
func (c *Core) createFinancialEntry(ctx context.Context, uw *unitOfWork, e entities.FinancialEntry) (entities.FinancialEntry, error) {
	if !e.Value.IsPositive() {
		return entities.FinancialEntry{}, validationFailed("financial_entry", "value must be greater than zero", map[string]string{"value": "gt"})
	}
	if !e.Type.Valid() {
		return entities.FinancialEntry{}, validationFailed("financial_entry", "unknown type", map[string]string{"type": "oneof"})
	}
	now := c.timestamp()
	e.CreatedAt = now
	e.UpdatedAt = now

	created, err := c.store.Entries.Create(ctx, e)
	if err != nil {
		return entities.FinancialEntry{}, err
	}
	uw.onRollback(func(ctx context.Context) error {
		return c.store.Entries.Delete(ctx, created.ID)
	})
	uw.emit(c.event(entities.DocumentEventCreated, "financial_entry", created.ID, created.RelatedNumber, string(created.Status)))
	return created, nil
}
