package unitofwork

import (
	"context"

	"mentorlink-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ContentRepository() contract.ContentRepository
}
