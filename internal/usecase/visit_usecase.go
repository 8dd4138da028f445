package usecase

import (
	"context"
	"strings"
	"time"

	"reforma_xpto/internal/domain/entities"

	"github.com/google/uuid"
)

type ScheduleVisitInput struct {
	LeadID       string    `validate:"required"`
	ScheduledAt  time.Time `validate:"required"`
	TechnicianID string    `validate:"required"`
}

type CompleteVisitInput struct {
	Findings        []string
	Recommendations []string
	Photos          []string
	Videos          []string
}

// IVisitUseCase drives on-site assessments.
type IVisitUseCase interface {
	ScheduleVisit(ctx context.Context, in ScheduleVisitInput) (entities.Visit, error)
	CompleteVisit(ctx context.Context, id string, in CompleteVisitInput) (entities.Visit, error)
	CancelVisit(ctx context.Context, id string) (entities.Visit, error)
	GetByID(ctx context.Context, id string) (entities.Visit, error)
	List(ctx context.Context) ([]entities.Visit, error)
	ListByLeadID(ctx context.Context, leadID string) ([]entities.Visit, error)
}

type VisitUseCase struct {
	core *Core
}

var _ IVisitUseCase = (*VisitUseCase)(nil)

func NewVisitUseCase(core *Core) *VisitUseCase {
	return &VisitUseCase{core: core}
}

// ScheduleVisit books a visit for a lead and draws a fresh VIS number.
func (u *VisitUseCase) ScheduleVisit(ctx context.Context, in ScheduleVisitInput) (entities.Visit, error) {
	in.LeadID = strings.TrimSpace(in.LeadID)
	in.TechnicianID = strings.TrimSpace(in.TechnicianID)
	if err := u.core.validateInput("visit", in); err != nil {
		return entities.Visit{}, err
	}

	var created entities.Visit
	err := u.core.run(ctx, "ScheduleVisit", func(uw *unitOfWork) error {
		lead, err := u.core.store.Leads.GetByID(ctx, in.LeadID)
		if err != nil {
			return err
		}
		if lead.ID == "" {
			return notFound("lead", in.LeadID)
		}
		if lead.Status == entities.LeadStatusLost {
			return preconditionFailed("lead", lead.ID, "lead is lost")
		}

		number, err := u.core.registry.Number(ctx, entities.DocumentKindVisit)
		if err != nil {
			return err
		}
		now := u.core.timestamp()
		created, err = u.core.store.Visits.Create(ctx, entities.Visit{
			ID:              uuid.NewString(),
			VisitNumber:     number,
			LeadID:          lead.ID,
			ScheduledAt:     in.ScheduledAt.UTC(),
			TechnicianID:    in.TechnicianID,
			Status:          entities.VisitStatusScheduled,
			Findings:        []string{},
			Recommendations: []string{},
			Photos:          []string{},
			Videos:          []string{},
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if err != nil {
			return err
		}
		id := created.ID
		uw.onRollback(func(ctx context.Context) error {
			return u.core.store.Visits.Delete(ctx, id)
		})
		uw.emit(u.core.event(entities.DocumentEventCreated, "visit", created.ID, created.VisitNumber, string(created.Status)))

		return u.core.advanceLead(ctx, uw, lead.ID, entities.LeadStatusScheduled)
	})
	return created, err
}

// CompleteVisit attaches the assessment results. Only a scheduled visit can be completed.
func (u *VisitUseCase) CompleteVisit(ctx context.Context, id string, in CompleteVisitInput) (entities.Visit, error) {
	id = strings.TrimSpace(id)

	var visit entities.Visit
	err := u.core.run(ctx, "CompleteVisit", func(uw *unitOfWork) error {
		prev, err := u.load(ctx, id)
		if err != nil {
			return err
		}
		if !prev.Status.CanTransitionTo(entities.VisitStatusCompleted) {
			return preconditionFailed("visit", id, "cannot complete a %s visit", prev.Status)
		}

		now := u.core.timestamp()
		visit = prev
		visit.Status = entities.VisitStatusCompleted
		visit.Findings = nonNil(in.Findings)
		visit.Recommendations = nonNil(in.Recommendations)
		visit.Photos = nonNil(in.Photos)
		visit.Videos = nonNil(in.Videos)
		visit.CompletedAt = &now
		visit.UpdatedAt = now
		if visit, err = u.update(ctx, uw, prev, visit); err != nil {
			return err
		}
		uw.emit(u.core.event(entities.DocumentEventTransitioned, "visit", visit.ID, visit.VisitNumber, string(visit.Status)))

		return u.core.advanceLead(ctx, uw, visit.LeadID, entities.LeadStatusVisited)
	})
	return visit, err
}

func (u *VisitUseCase) CancelVisit(ctx context.Context, id string) (entities.Visit, error) {
	id = strings.TrimSpace(id)

	var visit entities.Visit
	err := u.core.run(ctx, "CancelVisit", func(uw *unitOfWork) error {
		prev, err := u.load(ctx, id)
		if err != nil {
			return err
		}
		if !prev.Status.CanTransitionTo(entities.VisitStatusCancelled) {
			return preconditionFailed("visit", id, "cannot cancel a %s visit", prev.Status)
		}

		now := u.core.timestamp()
		visit = prev
		visit.Status = entities.VisitStatusCancelled
		visit.CancelledAt = &now
		visit.UpdatedAt = now
		if visit, err = u.update(ctx, uw, prev, visit); err != nil {
			return err
		}
		uw.emit(u.core.event(entities.DocumentEventTransitioned, "visit", visit.ID, visit.VisitNumber, string(visit.Status)))
		return nil
	})
	return visit, err
}

func (u *VisitUseCase) GetByID(ctx context.Context, id string) (entities.Visit, error) {
	id = strings.TrimSpace(id)
	var v entities.Visit
	err := u.core.view(func() error {
		var err error
		v, err = u.load(ctx, id)
		return err
	})
	return v, err
}

func (u *VisitUseCase) List(ctx context.Context) ([]entities.Visit, error) {
	var out []entities.Visit
	err := u.core.view(func() error {
		var err error
		out, err = u.core.store.Visits.List(ctx)
		return err
	})
	return out, err
}

func (u *VisitUseCase) ListByLeadID(ctx context.Context, leadID string) ([]entities.Visit, error) {
	leadID = strings.TrimSpace(leadID)
	var out []entities.Visit
	err := u.core.view(func() error {
		var err error
		out, err = u.core.store.Visits.ListByLeadID(ctx, leadID)
		return err
	})
	return out, err
}

func (u *VisitUseCase) load(ctx context.Context, id string) (entities.Visit, error) {
	return loadVisit(ctx, u.core, id)
}

func (u *VisitUseCase) update(ctx context.Context, uw *unitOfWork, prev, next entities.Visit) (entities.Visit, error) {
	return updateVisit(ctx, u.core, uw, prev, next)
}

func loadVisit(ctx context.Context, c *Core, id string) (entities.Visit, error) {
	v, err := c.store.Visits.GetByID(ctx, id)
	if err != nil {
		return entities.Visit{}, err
	}
	if v.ID == "" {
		return entities.Visit{}, notFound("visit", id)
	}
	return v, nil
}

// updateVisit stores next and registers the restore of prev.
func updateVisit(ctx context.Context, c *Core, uw *unitOfWork, prev, next entities.Visit) (entities.Visit, error) {
	updated, err := c.store.Visits.Update(ctx, next)
	if err != nil {
		return entities.Visit{}, err
	}
	if updated.ID == "" {
		return entities.Visit{}, notFound("visit", next.ID)
	}
	uw.onRollback(func(ctx context.Context) error {
		_, err := c.store.Visits.Update(ctx, prev)
		return err
	})
	return updated, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	out := make([]string, 0, len(s))
	for _, v := range s {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
