package repository

import (
	"context"
	"errors"

	"advocate-directory/internal/domain/entity"
)

// ErrReadOnlyStore is returned by stores that cannot accept new advocates.
var ErrReadOnlyStore = errors.New("advocate store is read-only")

// AdvocateRepository supplies the whole directory as an unsorted, unfiltered
// snapshot. Callers may not modify the returned slice's elements.
type AdvocateRepository interface {
	FindAll(ctx context.Context) ([]entity.Advocate, error)
	Create(ctx context.Context, advocate *entity.Advocate) error
}
