package usecase

import (
	"context"
	"strings"

	"reforma_xpto/internal/domain/sequence"
)

// SequenceSettings is the editable numbering configuration.
type SequenceSettings struct {
	Prefix string `json:"prefix"`
}

// ISequenceUseCase exposes the numbering settings. The prefix is kept for display only and
// does not change how document numbers are formatted.
type ISequenceUseCase interface {
	Settings(ctx context.Context) SequenceSettings
	UpdatePrefix(ctx context.Context, prefix string) (SequenceSettings, error)
}

type SequenceUseCase struct {
	registry *sequence.Registry
}

var _ ISequenceUseCase = (*SequenceUseCase)(nil)

func NewSequenceUseCase(registry *sequence.Registry) *SequenceUseCase {
	return &SequenceUseCase{registry: registry}
}

func (u *SequenceUseCase) Settings(_ context.Context) SequenceSettings {
	return SequenceSettings{Prefix: u.registry.Prefix()}
}

func (u *SequenceUseCase) UpdatePrefix(_ context.Context, prefix string) (SequenceSettings, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" || len(prefix) > 16 {
		return SequenceSettings{}, validationFailed("sequence", "prefix must have 1 to 16 characters", map[string]string{"prefix": "len"})
	}
	u.registry.SetPrefix(prefix)
	return SequenceSettings{Prefix: prefix}, nil
}
