package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"roam/infras/otel"
	"roam/infras/postgres"
	"roam/internal/domains/story/model"
	"roam/shared/constant"
	gDto "roam/shared/dto"
	"roam/shared/logger"
	gRepo "roam/shared/repository"
)

// haversineKm is the great-circle distance in kilometres between the bound
// origin ($1 lat, $2 lon) and the story row's coordinates.
const haversineKm = `(6371 * acos(LEAST(1.0,
	cos(radians($1)) * cos(radians(latitude)) * cos(radians(longitude) - radians($2)) +
	sin(radians($1)) * sin(radians(latitude)))))`

type Story interface {
	Insert(ctx context.Context, model model.Story) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Story, error)
	GetTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Story, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Story, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	FindNearby(ctx context.Context, lat, lon, radiusKm float64, availabilityType string, limit int) ([]model.Story, error)
	FindByAdminHints(ctx context.Context, hints []string, availabilityType string, excludeIDs []string, limit int) ([]model.Story, error)
	FindByState(ctx context.Context, state, availabilityType string, excludeIDs []string, limit int) ([]model.Story, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Story]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Story {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Story](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetTx loads a story through the given transaction so the booking flow
// validates against the transaction's view of the row.
func (repo *repositoryImpl) GetTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Story, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".story.GetTx")
	defer scope.End()

	query := fmt.Sprintf("SELECT * FROM %s WHERE %s = $1", model.TableName, model.FieldID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var story model.Story

	err := tx.GetContext(ctx, &story, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return story, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return story, fmt.Errorf("failed to get story in transaction: %w", err)
	}

	return story, nil
}

// FindNearby runs the proximity stage: approved stories with coordinates
// within radiusKm of the origin, nearest first.
func (repo *repositoryImpl) FindNearby(ctx context.Context, lat, lon, radiusKm float64, availabilityType string, limit int) (res []model.Story, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".story.FindNearby")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`SELECT * FROM %s
		WHERE status = $5
		  AND latitude IS NOT NULL AND longitude IS NOT NULL
		  AND ($4 = '' OR availability_type = $4)
		  AND %s <= $3
		ORDER BY %s ASC
		LIMIT $6`, model.TableName, haversineKm, haversineKm)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.SelectContext(ctx, &res, query, lat, lon, radiusKm, availabilityType, model.StatusApproved, limit)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to find nearby stories: %w", err)
	}

	return res, nil
}

// FindByAdminHints runs the administrative fallback stage: approved stories
// whose district, state, locality or town matches any hint as a
// case-insensitive substring, excluding already-found ids.
func (repo *repositoryImpl) FindByAdminHints(ctx context.Context, hints []string, availabilityType string, excludeIDs []string, limit int) (res []model.Story, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".story.FindByAdminHints")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(hints) == 0 {
		return nil, nil
	}

	patterns := make([]string, 0, len(hints))
	for _, hint := range hints {
		if hint == constant.Empty {
			continue
		}

		patterns = append(patterns, "%"+hint+"%")
	}

	if len(patterns) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT * FROM %s
		WHERE status = $1
		  AND ($2 = '' OR availability_type = $2)
		  AND NOT (id = ANY($3))
		  AND (district ILIKE ANY($4) OR state ILIKE ANY($4) OR locality ILIKE ANY($4) OR town ILIKE ANY($4))
		LIMIT $5`, model.TableName)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.SelectContext(ctx, &res, query,
		model.StatusApproved, availabilityType, pq.Array(excludeIDs), pq.Array(patterns), limit)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to find stories by admin hints: %w", err)
	}

	return res, nil
}

// FindByState runs the same-state fallback stage.
func (repo *repositoryImpl) FindByState(ctx context.Context, state, availabilityType string, excludeIDs []string, limit int) (res []model.Story, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".story.FindByState")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`SELECT * FROM %s
		WHERE status = $1
		  AND ($2 = '' OR availability_type = $2)
		  AND NOT (id = ANY($3))
		  AND LOWER(state) = LOWER($4)
		LIMIT $5`, model.TableName)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.SelectContext(ctx, &res, query,
		model.StatusApproved, availabilityType, pq.Array(excludeIDs), state, limit)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to find stories by state: %w", err)
	}

	return res, nil
}
