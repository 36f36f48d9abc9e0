package repository

import (
	"context"
	"slices"

	"advocate-directory/internal/domain/entity"
	domainRepo "advocate-directory/internal/domain/repository"
	"advocate-directory/internal/repository/seed"
)

type seedAdvocateRepository struct {
	advocates []entity.Advocate
}

// NewSeedAdvocateRepository serves the built-in directory from memory.
func NewSeedAdvocateRepository() domainRepo.AdvocateRepository {
	return NewStaticAdvocateRepository(seed.Advocates())
}

// NewStaticAdvocateRepository serves a fixed list of advocates from memory.
func NewStaticAdvocateRepository(advocates []entity.Advocate) domainRepo.AdvocateRepository {
	return &seedAdvocateRepository{advocates: slices.Clone(advocates)}
}

func (r *seedAdvocateRepository) FindAll(ctx context.Context) ([]entity.Advocate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.advocates), nil
}

func (r *seedAdvocateRepository) Create(ctx context.Context, advocate *entity.Advocate) error {
	return domainRepo.ErrReadOnlyStore
}
