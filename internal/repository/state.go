package repository

import (
	"context"
	"fmt"

	"github.com/roguecreek/quartermaster/internal/domain"
	"github.com/roguecreek/quartermaster/internal/repository/dao"
)

var ErrHandleNotFound = dao.ErrStateNotFound

type StateDAO interface {
	Save(ctx context.Context, key, value string) error
	Load(ctx context.Context, key string) (string, error)
}

// StateRepository persists per-domain display handles. The handle value
// is opaque; only the bot layer knows how to resolve it.
type StateRepository struct {
	dao StateDAO
}

func NewStateRepository(dao StateDAO) *StateRepository {
	return &StateRepository{
		dao: dao,
	}
}

func (r *StateRepository) SaveHandle(ctx context.Context, dom domain.Domain, handle domain.DisplayHandle) error {
	if err := r.dao.Save(ctx, dom.HandleKey(), string(handle)); err != nil {
		return fmt.Errorf("r.dao.Save -> %w", err)
	}

	return nil
}

func (r *StateRepository) LoadHandle(ctx context.Context, dom domain.Domain) (domain.DisplayHandle, error) {
	value, err := r.dao.Load(ctx, dom.HandleKey())
	if err != nil {
		return "", fmt.Errorf("r.dao.Load -> %w", err)
	}

	return domain.DisplayHandle(value), nil
}
