package repository

import (
	"context"

	"advocate-directory/internal/domain/entity"
	domainRepo "advocate-directory/internal/domain/repository"

	"gorm.io/gorm"
)

type advocateRepository struct {
	db *gorm.DB
}

func NewAdvocateRepository(db *gorm.DB) domainRepo.AdvocateRepository {
	return &advocateRepository{db: db}
}

// FindAll returns every advocate in insertion order so the unsorted directory is stable.
func (r *advocateRepository) FindAll(ctx context.Context) ([]entity.Advocate, error) {
	var advocates []entity.Advocate
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&advocates).Error; err != nil {
		return nil, err
	}
	return advocates, nil
}

func (r *advocateRepository) Create(ctx context.Context, advocate *entity.Advocate) error {
	return r.db.WithContext(ctx).Create(advocate).Error
}
