package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"advocate-directory/internal/converter"
	"advocate-directory/internal/delivery/dto"
	"advocate-directory/internal/domain/entity"
	"advocate-directory/internal/domain/repository"
	"advocate-directory/internal/query"
	"advocate-directory/pkg/validator"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

var (
	ErrAdvocateStoreUnavailable = errors.New("advocate store unavailable")
	ErrInvalidAdvocate          = errors.New("invalid advocate")
)

type AdvocateUsecase interface {
	Search(ctx context.Context, params entity.AdvocateQuery) (*dto.AdvocatePageResponse, error)
	Seed(ctx context.Context, reqs []dto.SeedAdvocateRequest) (*dto.SeedResultResponse, error)
}

type advocateUsecase struct {
	log          *logrus.Logger
	advocateRepo repository.AdvocateRepository
	validator    *validator.CustomValidator
}

func NewAdvocateUsecase(
	log *logrus.Logger,
	advocateRepo repository.AdvocateRepository,
	validator *validator.CustomValidator,
) AdvocateUsecase {
	return &advocateUsecase{
		log:          log,
		advocateRepo: advocateRepo,
		validator:    validator,
	}
}

func (u *advocateUsecase) Search(ctx context.Context, params entity.AdvocateQuery) (*dto.AdvocatePageResponse, error) {
	advocates, err := u.advocateRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load advocates: %+v", err)
		return nil, fmt.Errorf("%w: %w", ErrAdvocateStoreUnavailable, err)
	}

	if params.Sorted() && !params.SortField.Known() {
		u.log.WithField("sort_by", params.SortField).Debug("Unknown sort field, keeping store order")
	}

	page := query.Run(advocates, params)

	u.log.WithFields(logrus.Fields{
		"search":      params.SearchTerm,
		"sort_by":     params.SortField,
		"sort_order":  params.SortOrder,
		"page":        page.CurrentPage,
		"page_size":   page.PageSize,
		"total_items": page.TotalItems,
	}).Debug("Advocate query executed")

	return converter.PageToResponse(page), nil
}

// Seed validates and stores advocates. Records already present, by phone
// number and last name, are skipped rather than treated as failures.
func (u *advocateUsecase) Seed(ctx context.Context, reqs []dto.SeedAdvocateRequest) (*dto.SeedResultResponse, error) {
	for i := range reqs {
		if err := u.validator.Validate(&reqs[i]); err != nil {
			u.log.Warnf("Rejected advocate #%d: %v", i, u.validator.FormatValidationErrors(err))
			return nil, fmt.Errorf("%w: record %d: %w", ErrInvalidAdvocate, i, err)
		}
	}

	result := &dto.SeedResultResponse{}
	for i := range reqs {
		advocate := converter.SeedRequestToAdvocate(&reqs[i])
		if err := u.advocateRepo.Create(ctx, advocate); err != nil {
			if isDuplicateKeyError(err, "phone_last_name") {
				u.log.Debugf("Skipping existing advocate %s", advocate.Key())
				result.Skipped++
				continue
			}
			u.log.Warnf("Failed to create advocate %s: %+v", advocate.Key(), err)
			return result, err
		}
		result.Inserted++
	}

	u.log.Infof("Seeded advocates: inserted=%d skipped=%d", result.Inserted, result.Skipped)
	return result, nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
