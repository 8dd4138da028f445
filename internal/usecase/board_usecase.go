package usecase

import (
	"context"
	"strings"

	"reforma_xpto/internal/domain/board"
	"reforma_xpto/internal/domain/entities"
)

// IBoardUseCase serves the pipeline board and its per-session card ordering.
type IBoardUseCase interface {
	Board(ctx context.Context, session, search string) ([]board.Column, error)
	Move(ctx context.Context, session string, status entities.LeadStatus, leadID string, toIndex int) ([]board.Column, error)
	ResetOrder(ctx context.Context, session string)
}

type BoardUseCase struct {
	core     *Core
	sessions *board.Sessions
}

var _ IBoardUseCase = (*BoardUseCase)(nil)

func NewBoardUseCase(core *Core, sessions *board.Sessions) *BoardUseCase {
	if sessions == nil {
		sessions = board.NewSessions()
	}
	return &BoardUseCase{core: core, sessions: sessions}
}

func (u *BoardUseCase) Board(ctx context.Context, session, search string) ([]board.Column, error) {
	leads, clients, err := u.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return board.Project(leads, clients, search, u.sessions.Ordering(strings.TrimSpace(session))), nil
}

// Move repositions a card inside its column for this session only. Lead status is untouched.
func (u *BoardUseCase) Move(ctx context.Context, session string, status entities.LeadStatus, leadID string, toIndex int) ([]board.Column, error) {
	session = strings.TrimSpace(session)
	leadID = strings.TrimSpace(leadID)
	if !status.Valid() {
		return nil, validationFailed("board", "unknown status", map[string]string{"status": "oneof"})
	}

	leads, clients, err := u.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if !containsLead(leads, leadID) {
		return nil, notFound("lead", leadID)
	}
	ids := board.ColumnIDs(leads, status, u.sessions.Ordering(session))
	if _, err := u.sessions.Move(session, status, ids, leadID, toIndex); err != nil {
		return nil, preconditionFailed("lead", leadID, "%v (%s)", err, status)
	}
	return board.Project(leads, clients, "", u.sessions.Ordering(session)), nil
}

func (u *BoardUseCase) ResetOrder(_ context.Context, session string) {
	u.sessions.Reset(strings.TrimSpace(session))
}

func (u *BoardUseCase) snapshot(ctx context.Context) ([]entities.Lead, map[string]entities.Client, error) {
	var (
		leads   []entities.Lead
		clients []entities.Client
	)
	err := u.core.view(func() error {
		var err error
		if leads, err = u.core.store.Leads.List(ctx); err != nil {
			return err
		}
		clients, err = u.core.store.Clients.List(ctx)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	sortByInsertion(leads)

	byID := make(map[string]entities.Client, len(clients))
	for _, c := range clients {
		byID[c.ID] = c
	}
	return leads, byID, nil
}

func containsLead(leads []entities.Lead, id string) bool {
	for _, l := range leads {
		if l.ID == id {
			return true
		}
	}
	return false
}
