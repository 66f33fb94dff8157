package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"roam/infras/otel"
	"roam/infras/postgres"
	"roam/internal/domains/booking/model"
	"roam/shared/constant"
	gDto "roam/shared/dto"
	"roam/shared/logger"
	gRepo "roam/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error

	InsertTravellersTx(ctx context.Context, tx *sqlx.Tx, travellers []model.Traveller) error
	GetTravellers(ctx context.Context, bookingID string) ([]model.Traveller, error)

	BeginSerializableTx(ctx context.Context) (*sqlx.Tx, error)
	OverlappingSpans(ctx context.Context, tx *sqlx.Tx, storyID string, from, to time.Time, policy model.CountingPolicy) ([]model.CapacitySpan, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	travellers gRepo.Repository[model.Traveller]
	db         *postgres.Connection
	otel       otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		travellers: gRepo.NewRepository[model.Traveller](model.TravellerEntityName, model.TravellerTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) InsertTravellersTx(ctx context.Context, tx *sqlx.Tx, travellers []model.Traveller) error {
	return repo.travellers.InsertBulkTx(ctx, tx, travellers) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetTravellers(ctx context.Context, bookingID string) (res []model.Traveller, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".traveller.GetTravellers")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT * FROM %s WHERE %s = $1", model.TravellerTableName, model.FieldBookingID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.SelectContext(ctx, &res, query, bookingID)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get travellers: %w", err)
	}

	return res, nil
}

// BeginSerializableTx opens the write transaction every booking runs in.
// SERIALIZABLE makes concurrent bookings against the same story conflict
// instead of both reading stale occupancy and both committing.
func (repo *repositoryImpl) BeginSerializableTx(ctx context.Context) (*sqlx.Tx, error) {
	tx, err := repo.db.Write.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to begin serializable transaction: %w", err)
	}

	return tx, nil
}

// OverlappingSpans fetches, in one range query, every booking that holds
// capacity under the given counting policy and overlaps [from, to]. The
// per-date breakdown is folded in memory by the caller. When tx is nil the
// read replica is used; inside a booking transaction the spans must come from
// the transaction's own snapshot.
func (repo *repositoryImpl) OverlappingSpans(ctx context.Context, tx *sqlx.Tx, storyID string, from, to time.Time, policy model.CountingPolicy) (res []model.CapacitySpan, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.OverlappingSpans")
	defer scope.End()
	defer scope.TraceIfError(err)

	paymentPredicate := fmt.Sprintf("%s != $4", model.FieldPaymentState)
	paymentArg := model.PaymentRejected

	if policy == model.CountPaid {
		paymentPredicate = fmt.Sprintf("%s = $4", model.FieldPaymentState)
		paymentArg = model.PaymentSuccess
	}

	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s
		WHERE %s = $1
		  AND %s = $5
		  AND %s <= $3
		  AND %s >= $2
		  AND %s`,
		model.FieldStartDate, model.FieldEndDate, model.FieldPartySize, model.TableName,
		model.FieldStoryID,
		model.FieldConfirmationState,
		model.FieldStartDate,
		model.FieldEndDate,
		paymentPredicate)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := []any{storyID, from, to, paymentArg, model.ConfirmationConfirmed}

	if tx != nil {
		err = tx.SelectContext(ctx, &res, query, args...)
	} else {
		err = repo.db.Read.SelectContext(ctx, &res, query, args...)
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get overlapping bookings: %w", err)
	}

	return res, nil
}
