package usecase

import (
	"context"

	"reforma_xpto/internal/domain/entities"
)

// unitOfWork records how to undo each stored change of one operation and the events to
// publish once the whole operation succeeded.
type unitOfWork struct {
	undo   []func(ctx context.Context) error
	events []entities.DocumentEvent
}

func (u *unitOfWork) onRollback(step func(ctx context.Context) error) {
	u.undo = append(u.undo, step)
}

func (u *unitOfWork) emit(evt entities.DocumentEvent) {
	u.events = append(u.events, evt)
}
