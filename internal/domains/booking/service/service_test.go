package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"roam/config"
	kafkaMocks "roam/infras/kafka/mocks"
	"roam/infras/otel/mocks"
	bookingMocks "roam/internal/domains/booking/mocks"
	"roam/internal/domains/booking/model"
	"roam/internal/domains/booking/model/dto"
	"roam/internal/domains/booking/service"
	storyMocks "roam/internal/domains/story/mocks"
	storyModel "roam/internal/domains/story/model"
	cacheMocks "roam/shared/cache/mocks"
	"roam/shared/constant"
	gDto "roam/shared/dto"
	gModel "roam/shared/model"
	"roam/shared/timezone"
)

type bookingServiceFixture struct {
	repo      *bookingMocks.MockBooking
	storyRepo *storyMocks.MockStory
	cache     *cacheMocks.MockRedisCache
	kafka     *kafkaMocks.MockClient
	svc       service.Booking
}

func newBookingServiceFixture(ctrl *gomock.Controller) bookingServiceFixture {
	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockStoryRepo := storyMocks.NewMockStory(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Fee.ServicePercent = 10
	cfg.Fee.Flat = 5

	svc := service.New(mockRepo, mockStoryRepo, service.NewFeePolicy(cfg), cfg, mockCache, mockKafka, mockOtel)

	return bookingServiceFixture{
		repo:      mockRepo,
		storyRepo: mockStoryRepo,
		cache:     mockCache,
		kafka:     mockKafka,
		svc:       svc,
	}
}

// newMockTx hands out a real sqlx transaction over a sqlmock connection so
// the commit and rollback paths run for real.
func newMockTx(t *testing.T) (*sqlx.Tx, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectBegin()

	tx, err := sqlx.NewDb(db, "sqlmock").Beginx()
	assert.NoError(t, err)

	return tx, mock
}

func approvedYearRoundStory() storyModel.Story {
	return storyModel.Story{
		ID:               "story-1",
		Status:           storyModel.StatusApproved,
		AvailabilityType: storyModel.AvailabilityYearRound,
		LengthDays:       sql.NullInt64{Int64: 3, Valid: true},
		DailyCapacity:    sql.NullInt64{Int64: 10, Valid: true},
		PricingMode:      storyModel.PricingPerPerson,
		UnitAmount:       100,
	}
}

func validCreateRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		StoryID:   "story-1",
		StartDate: "2026-01-10",
		EndDate:   "2026-01-12",
		PartySize: 2,
		Travellers: []dto.TravellerRequest{
			{FullName: "Asha Rao"},
			{FullName: "Vikram Rao"},
		},
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newBookingServiceFixture(ctrl)

	tests := []struct {
		name      string
		req       func() dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "traveller manifest does not match party size",
			req: func() dto.CreateBookingRequest {
				req := validCreateRequest()
				req.Travellers = req.Travellers[:1]

				return req
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "unparseable start date",
			req: func() dto.CreateBookingRequest {
				req := validCreateRequest()
				req.StartDate = "10-01-2026"

				return req
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "end date before start date",
			req: func() dto.CreateBookingRequest {
				req := validCreateRequest()
				req.StartDate = "2026-01-12"
				req.EndDate = "2026-01-10"

				return req
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "transaction cannot be opened",
			req:  validCreateRequest,
			setupMock: func() {
				fixture.repo.EXPECT().
					BeginSerializableTx(gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
			_, err := fixture.svc.Create(ctx, tt.req(), service.FlowTravellerPayFirst)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Create_CommitsAndPublishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newBookingServiceFixture(ctrl)

	tx, mock := newMockTx(t)
	mock.ExpectCommit()

	fixture.repo.EXPECT().
		BeginSerializableTx(gomock.Any()).
		Return(tx, nil)

	fixture.storyRepo.EXPECT().
		GetTx(gomock.Any(), tx, "story-1").
		Return(approvedYearRoundStory(), nil)

	fixture.repo.EXPECT().
		OverlappingSpans(gomock.Any(), tx, "story-1", gomock.Any(), gomock.Any(), model.CountPaid).
		Return(nil, nil)

	fixture.repo.EXPECT().
		InsertTx(gomock.Any(), tx, gomock.Any()).
		Return(nil)

	fixture.repo.EXPECT().
		InsertTravellersTx(gomock.Any(), tx, gomock.Any()).
		Return(nil)

	// The event and cache invalidation run on their own goroutine after commit.
	fixture.kafka.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	fixture.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
	res, err := fixture.svc.Create(ctx, validCreateRequest(), service.FlowTravellerPayFirst)

	assert.NoError(t, err)
	assert.Equal(t, "story-1", res.StoryID)
	assert.Equal(t, model.PaymentPending, res.PaymentState)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingService_Create_RetriesSerializationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newBookingServiceFixture(ctrl)

	conflictTx, conflictMock := newMockTx(t)
	conflictMock.ExpectRollback()

	commitTx, commitMock := newMockTx(t)
	commitMock.ExpectCommit()

	gomock.InOrder(
		fixture.repo.EXPECT().BeginSerializableTx(gomock.Any()).Return(conflictTx, nil),
		fixture.repo.EXPECT().BeginSerializableTx(gomock.Any()).Return(commitTx, nil),
	)

	fixture.storyRepo.EXPECT().
		GetTx(gomock.Any(), gomock.Any(), "story-1").
		Return(approvedYearRoundStory(), nil).
		Times(2)

	fixture.repo.EXPECT().
		OverlappingSpans(gomock.Any(), gomock.Any(), "story-1", gomock.Any(), gomock.Any(), model.CountPaid).
		Return(nil, nil).
		Times(2)

	// The first insert loses a serialization conflict; the retry commits.
	fixture.repo.EXPECT().
		InsertTx(gomock.Any(), conflictTx, gomock.Any()).
		Return(&pq.Error{Code: constant.PqErrorCodeSerializationFailure})

	fixture.repo.EXPECT().
		InsertTx(gomock.Any(), commitTx, gomock.Any()).
		Return(nil)

	fixture.repo.EXPECT().
		InsertTravellersTx(gomock.Any(), commitTx, gomock.Any()).
		Return(nil)

	fixture.kafka.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	fixture.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
	res, err := fixture.svc.Create(ctx, validCreateRequest(), service.FlowTravellerPayFirst)

	assert.NoError(t, err)
	assert.Equal(t, "story-1", res.StoryID)
	assert.NoError(t, conflictMock.ExpectationsWereMet())
	assert.NoError(t, commitMock.ExpectationsWereMet())
}

func TestBookingService_Create_GivesUpAfterRepeatedConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newBookingServiceFixture(ctrl)

	txMocks := make([]sqlmock.Sqlmock, 0, 3)

	for range 3 {
		tx, mock := newMockTx(t)
		mock.ExpectRollback()
		txMocks = append(txMocks, mock)

		fixture.repo.EXPECT().
			BeginSerializableTx(gomock.Any()).
			Return(tx, nil)
	}

	fixture.storyRepo.EXPECT().
		GetTx(gomock.Any(), gomock.Any(), "story-1").
		Return(approvedYearRoundStory(), nil).
		Times(3)

	fixture.repo.EXPECT().
		OverlappingSpans(gomock.Any(), gomock.Any(), "story-1", gomock.Any(), gomock.Any(), model.CountPaid).
		Return(nil, nil).
		Times(3)

	fixture.repo.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&pq.Error{Code: constant.PqErrorCodeSerializationFailure}).
		Times(3)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
	_, err := fixture.svc.Create(ctx, validCreateRequest(), service.FlowTravellerPayFirst)

	assert.Error(t, err)

	for _, mock := range txMocks {
		assert.NoError(t, mock.ExpectationsWereMet())
	}
}

func TestBookingService_Create_ScheduledPoolCountsDisjointBookings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newBookingServiceFixture(ctrl)

	tx, mock := newMockTx(t)
	mock.ExpectRollback()

	windowStart := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)

	story := storyModel.Story{
		ID:                "story-1",
		Status:            storyModel.StatusApproved,
		AvailabilityType:  storyModel.AvailabilityScheduled,
		WindowStart:       sql.NullTime{Time: windowStart, Valid: true},
		WindowEnd:         sql.NullTime{Time: windowEnd, Valid: true},
		ScheduledCapacity: sql.NullInt64{Int64: 6, Valid: true},
		PricingMode:       storyModel.PricingPerPerson,
		UnitAmount:        100,
	}

	fixture.repo.EXPECT().
		BeginSerializableTx(gomock.Any()).
		Return(tx, nil)

	fixture.storyRepo.EXPECT().
		GetTx(gomock.Any(), tx, "story-1").
		Return(story, nil)

	// Occupancy is read over the whole departure window, so a booking
	// disjoint from the requested dates still consumes from the pool.
	fixture.repo.EXPECT().
		OverlappingSpans(gomock.Any(), tx, "story-1", windowStart, windowEnd, model.CountPaid).
		Return([]model.CapacitySpan{
			{StartDate: windowStart, EndDate: windowStart.AddDate(0, 0, 2), PartySize: 5},
		}, nil)

	req := validCreateRequest()
	req.StartDate = "2026-01-15"
	req.EndDate = "2026-01-18"
	req.PartySize = 3
	req.Travellers = append(req.Travellers, dto.TravellerRequest{FullName: "Meera Rao"})

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
	_, err := fixture.svc.Create(ctx, req, service.FlowTravellerPayFirst)

	var capErr *model.CapacityExceededError
	assert.ErrorAs(t, err, &capErr)
	assert.Equal(t, 6, capErr.Ceiling)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newBookingServiceFixture(ctrl)

	bookings := []model.Booking{
		{
			ID:                "booking-1",
			StoryID:           "story-1",
			RequesterID:       "user-1",
			StartDate:         time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
			EndDate:           time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
			PartySize:         2,
			ConfirmationState: model.ConfirmationConfirmed,
			PaymentState:      model.PaymentPending,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  "user-1",
				ModifiedBy: "user-1",
			},
		},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantData  int
	}{
		{
			name: "cache hit",
			setupMock: func() {
				fixture.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "cache miss, successful get from db",
			setupMock: func() {
				fixture.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				fixture.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				fixture.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookings, nil)

				fixture.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantData: 1,
		},
		{
			name: "count error",
			setupMock: func() {
				fixture.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				fixture.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
		{
			name: "get all error",
			setupMock: func() {
				fixture.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				fixture.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				fixture.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("get all error"))

				fixture.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := fixture.svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantData, result.TotalData)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newBookingServiceFixture(ctrl)

	booking := model.Booking{
		ID:                "booking-1",
		StoryID:           "story-1",
		RequesterID:       "user-1",
		StartDate:         time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:           time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
		PartySize:         2,
		ConfirmationState: model.ConfirmationConfirmed,
		PaymentState:      model.PaymentPending,
	}

	tests := []struct {
		name      string
		user      string
		role      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "requester reads own booking",
			user: "user-1",
			role: "user",
			setupMock: func() {
				fixture.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				fixture.repo.EXPECT().
					GetTravellers(gomock.Any(), "booking-1").
					Return([]model.Traveller{{FullName: "Asha Rao"}}, nil)
			},
		},
		{
			name: "admin reads any booking",
			user: "admin-1",
			role: constant.RoleAdmin,
			setupMock: func() {
				fixture.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				fixture.repo.EXPECT().
					GetTravellers(gomock.Any(), "booking-1").
					Return(nil, nil)
			},
		},
		{
			name: "stranger is rejected",
			user: "user-2",
			role: "user",
			setupMock: func() {
				fixture.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
			wantErr: true,
		},
		{
			name: "booking not found",
			user: "user-1",
			role: "user",
			setupMock: func() {
				fixture.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, tt.user)
			ctx = context.WithValue(ctx, constant.ContextKeyUserRole, tt.role)

			result, err := fixture.svc.Get(ctx, "booking-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, booking.ID, result.ID)
			}
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newBookingServiceFixture(ctrl)

	fixture.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	confirmed := model.Booking{ID: "booking-1", RequesterID: "user-1", ConfirmationState: model.ConfirmationConfirmed}
	cancelled := model.Booking{ID: "booking-1", RequesterID: "user-1", ConfirmationState: model.ConfirmationCancelled}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful cancellation",
			setupMock: func() {
				fixture.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmed, nil)

				fixture.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "already cancelled",
			setupMock: func() {
				fixture.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr: true,
		},
		{
			name: "booking not found",
			setupMock: func() {
				fixture.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "update error",
			setupMock: func() {
				fixture.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmed, nil)

				fixture.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
			err := fixture.svc.Cancel(ctx, "booking-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_UpdatePayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newBookingServiceFixture(ctrl)

	fixture.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	pending := model.Booking{ID: "booking-1", RequesterID: "user-1", PaymentState: model.PaymentPending}
	settled := model.Booking{ID: "booking-1", RequesterID: "user-1", PaymentState: model.PaymentSuccess}

	tests := []struct {
		name      string
		req       dto.UpdatePaymentRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "pending payment settles successfully",
			req:  dto.UpdatePaymentRequest{PaymentState: model.PaymentSuccess},
			setupMock: func() {
				fixture.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)

				fixture.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "pending payment is rejected",
			req:  dto.UpdatePaymentRequest{PaymentState: model.PaymentRejected},
			setupMock: func() {
				fixture.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)

				fixture.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "already settled payment cannot move",
			req:  dto.UpdatePaymentRequest{PaymentState: model.PaymentRejected},
			setupMock: func() {
				fixture.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(settled, nil)
			},
			wantErr: true,
		},
		{
			name: "booking not found",
			req:  dto.UpdatePaymentRequest{PaymentState: model.PaymentSuccess},
			setupMock: func() {
				fixture.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			err := fixture.svc.UpdatePayment(ctx, tt.req, "booking-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
