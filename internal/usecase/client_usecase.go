package usecase

import (
	"context"
	"strings"

	"reforma_xpto/internal/domain/entities"

	"github.com/google/uuid"
)

type CreateClientInput struct {
	Name    string              `validate:"required"`
	Email   string              `validate:"omitempty,email"`
	Phone   string              `validate:"omitempty,max=32"`
	Address string              `validate:"omitempty,max=255"`
	Kind    entities.ClientKind `validate:"omitempty,oneof=individual real_estate"`
}

func (in CreateClientInput) normalized() CreateClientInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	if in.Kind == "" {
		in.Kind = entities.ClientKindIndividual
	}
	return in
}

// IClientUseCase manages the customers leads are opened for.
//
// FindOrCreateClient is the explicit first half of opening a lead for a new customer; the lead
// itself is created afterwards with the returned client id.
type IClientUseCase interface {
	CreateClient(ctx context.Context, in CreateClientInput) (entities.Client, error)
	FindOrCreateClient(ctx context.Context, in CreateClientInput) (client entities.Client, created bool, err error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
}

type ClientUseCase struct {
	core *Core
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(core *Core) *ClientUseCase {
	return &ClientUseCase{core: core}
}

func (u *ClientUseCase) CreateClient(ctx context.Context, in CreateClientInput) (entities.Client, error) {
	in = in.normalized()
	if err := u.core.validateInput("client", in); err != nil {
		return entities.Client{}, err
	}

	var created entities.Client
	err := u.core.run(ctx, "CreateClient", func(uw *unitOfWork) error {
		var err error
		created, err = u.create(ctx, uw, in)
		return err
	})
	return created, err
}

func (u *ClientUseCase) FindOrCreateClient(ctx context.Context, in CreateClientInput) (entities.Client, bool, error) {
	in = in.normalized()
	if err := u.core.validateInput("client", in); err != nil {
		return entities.Client{}, false, err
	}

	var (
		client  entities.Client
		created bool
	)
	err := u.core.run(ctx, "FindOrCreateClient", func(uw *unitOfWork) error {
		existing, err := u.find(ctx, in)
		if err != nil {
			return err
		}
		if existing.ID != "" {
			client = existing
			return nil
		}
		client, err = u.create(ctx, uw, in)
		created = err == nil
		return err
	})
	return client, created, err
}

// find matches by email when one is given, otherwise by name and phone.
func (u *ClientUseCase) find(ctx context.Context, in CreateClientInput) (entities.Client, error) {
	if in.Email != "" {
		return u.core.store.Clients.FindByEmail(ctx, in.Email)
	}
	if in.Phone == "" {
		return entities.Client{}, nil
	}
	all, err := u.core.store.Clients.List(ctx)
	if err != nil {
		return entities.Client{}, err
	}
	for _, c := range all {
		if strings.EqualFold(c.Name, in.Name) && digits(c.Phone) == digits(in.Phone) {
			return c, nil
		}
	}
	return entities.Client{}, nil
}

func (u *ClientUseCase) create(ctx context.Context, uw *unitOfWork, in CreateClientInput) (entities.Client, error) {
	now := u.core.timestamp()
	c := entities.Client{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		Kind:      in.Kind,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.core.store.Clients.Create(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}
	uw.emit(u.core.event(entities.DocumentEventCreated, "client", created.ID, "", string(created.Kind)))
	return created, nil
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	var c entities.Client
	err := u.core.view(func() error {
		var err error
		c, err = u.core.store.Clients.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if c.ID == "" {
			return notFound("client", id)
		}
		return nil
	})
	return c, err
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	var out []entities.Client
	err := u.core.view(func() error {
		var err error
		out, err = u.core.store.Clients.List(ctx)
		return err
	})
	return out, err
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
