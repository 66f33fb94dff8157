package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"roam/config"
	"roam/infras/kafka"
	"roam/infras/otel"
	"roam/internal/domains/booking/model"
	"roam/internal/domains/booking/model/dto"
	"roam/internal/domains/booking/repository"
	storyModel "roam/internal/domains/story/model"
	storyRepository "roam/internal/domains/story/repository"
	"roam/shared"
	"roam/shared/cache"
	"roam/shared/constant"
	gDto "roam/shared/dto"
	"roam/shared/failure"
)

const (
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	// maxTxAttempts bounds the serialization-failure retry loop. A conflict
	// means another booking committed against the same story; re-running the
	// validation against the fresh state is safe because nothing was written.
	maxTxAttempts = 3
)

// Flow selects how a booking holds and settles capacity. The two flows share
// one code path; they differ only in which bookings count as occupancy and
// which payment state a fresh booking starts in.
type Flow struct {
	Name                string
	Policy              model.CountingPolicy
	InitialPaymentState string
}

var (
	// FlowTravellerPayFirst holds capacity before payment settles, so only
	// already-paid bookings count against it.
	FlowTravellerPayFirst = Flow{
		Name:                "traveller_pay_first",
		Policy:              model.CountPaid,
		InitialPaymentState: model.PaymentPending,
	}

	// FlowHostDirect is a host recording a booking it already settled off
	// platform; every confirmed booking counts against it.
	FlowHostDirect = Flow{
		Name:                "host_direct",
		Policy:              model.CountConfirmed,
		InitialPaymentState: model.PaymentSuccess,
	}
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest, flow Flow) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	GetMine(ctx context.Context, req gDto.QueryParams) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) error
	UpdatePayment(ctx context.Context, req dto.UpdatePaymentRequest, id string) error
}

type serviceImpl struct {
	repo      repository.Booking
	storyRepo storyRepository.Story
	fees      FeePolicy
	cfg       *config.Config
	cache     cache.RedisCache
	kafka     kafka.Client
	otel      otel.Otel
}

func New(
	repo repository.Booking,
	storyRepo storyRepository.Story,
	fees FeePolicy,
	cfg *config.Config,
	cache cache.RedisCache,
	kafkaClient kafka.Client,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		storyRepo: storyRepo,
		fees:      fees,
		cfg:       cfg,
		cache:     cache,
		kafka:     kafkaClient,
		otel:      otel,
	}
}

// Create books a story for the requester. The whole attempt runs in one
// serializable transaction: load the story, validate capacity against the
// transaction's view of existing bookings, verify pricing, insert. Two
// concurrent attempts against the same story cannot both pass validation and
// both commit; the loser aborts with a serialization failure and is retried
// against the fresh state.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest, flow Flow) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(req.Travellers) != req.PartySize {
		return res, model.ErrTravellerCountMismatch
	}

	start, end, err := req.ParseRange()
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if end.Before(start) {
		return res, &model.DurationMismatchError{Reason: "end date must not be before start date"}
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var booking model.Booking

	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		booking, err = s.createOnce(ctx, req, flow, user, start, end)
		if err == nil {
			break
		}

		if !isSerializationFailure(err) {
			return res, err
		}

		if attempt < maxTxAttempts {
			log.Warn().
				Str("storyID", req.StoryID).
				Int("attempt", attempt).
				Msg("booking transaction aborted by concurrent write, retrying")
		}
	}

	if err != nil {
		log.Error().Err(err).Str("storyID", req.StoryID).Msg("booking transaction kept conflicting")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.afterCommit(ctx, booking, flow)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) createOnce(ctx context.Context, req dto.CreateBookingRequest, flow Flow, user string, start, end time.Time) (booking model.Booking, err error) {
	tx, err := s.repo.BeginSerializableTx(ctx)
	if err != nil {
		return booking, fmt.Errorf("failed to begin booking transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to roll back booking transaction")
			}
		}
	}()

	story, err := s.storyRepo.GetTx(ctx, tx, req.StoryID)
	if err != nil {
		return booking, fmt.Errorf("failed to load story: %w", err)
	}

	if story.ID == constant.Empty {
		return booking, model.ErrStoryNotFound
	}

	if !story.Bookable() {
		return booking, model.ErrStoryNotBookable
	}

	availability, err := story.Availability()
	if err != nil {
		log.Error().Err(err).Str("storyID", story.ID).Msg("story availability is malformed")

		return booking, failure.InternalError(err) // nolint:wrapcheck
	}

	// Scheduled capacity is one pool for the whole window, so occupancy must
	// count every booking in the window, including those disjoint from the
	// requested range.
	occupancyStart, occupancyEnd := start, end
	if scheduled, ok := availability.(storyModel.Scheduled); ok {
		occupancyStart, occupancyEnd = scheduled.WindowStart, scheduled.WindowEnd
	}

	spans, err := s.repo.OverlappingSpans(ctx, tx, story.ID, occupancyStart, occupancyEnd, flow.Policy)
	if err != nil {
		return booking, fmt.Errorf("failed to load occupancy: %w", err)
	}

	if err = ValidateCapacity(availability, spans, start, end, req.PartySize); err != nil {
		return booking, err
	}

	base, fee, total, err := Quote(story, req.PartySize, s.fees)
	if err != nil {
		log.Error().Err(err).Str("storyID", story.ID).Msg("story pricing is malformed")

		return booking, failure.InternalError(err) // nolint:wrapcheck
	}

	if err = VerifyClientTotal(req.ClientPricing, total); err != nil {
		return booking, err
	}

	booking = req.ToModel(user, start, end, base, fee, total, flow.InitialPaymentState)

	if err = s.repo.InsertTx(ctx, tx, booking); err != nil {
		return booking, fmt.Errorf("failed to insert booking: %w", err)
	}

	if err = s.repo.InsertTravellersTx(ctx, tx, req.ToTravellerModels(booking.ID)); err != nil {
		return booking, fmt.Errorf("failed to insert travellers: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return booking, fmt.Errorf("failed to commit booking transaction: %w", err)
	}

	return booking, nil
}

// afterCommit publishes the created event and drops stale caches. Both run
// outside the transaction: the booking is already durable, so failures here
// are logged, never surfaced.
func (s *serviceImpl) afterCommit(ctx context.Context, booking model.Booking, flow Flow) {
	go func() {
		c := context.WithoutCancel(ctx)

		event := dto.BookingCreatedEvent{
			BookingID:   booking.ID,
			StoryID:     booking.StoryID,
			RequesterID: booking.RequesterID,
			StartDate:   booking.StartDate.Format(constant.DateOnlyFormat),
			EndDate:     booking.EndDate.Format(constant.DateOnlyFormat),
			PartySize:   booking.PartySize,
			TotalAmount: booking.TotalAmount,
			Flow:        flow.Name,
		}

		err := s.kafka.SendMessages(c, s.cfg.Kafka.Topic.BookingCreated, kafka.Message{
			Key:   booking.ID,
			Value: event,
		})
		if err != nil {
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish booking created event")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeSerializationFailure
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

// GetMine narrows the listing to the authenticated requester's own bookings.
func (s *serviceImpl) GetMine(ctx context.Context, req gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return s.GetAll(ctx, req, shared.FilterByID(user, model.FieldRequesterID, model.TableName))
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err = s.authorize(ctx, booking); err != nil {
		return res, err
	}

	travellers, err := s.repo.GetTravellers(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get travellers")

		return res, fmt.Errorf("failed to get travellers: %w", err)
	}

	res.FromModel(booking)
	res.WithTravellers(travellers)

	return res, nil
}

// Cancel releases the booking's capacity hold. Cancelled bookings stop
// counting toward occupancy immediately.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err = s.authorize(ctx, booking); err != nil {
		return err
	}

	if booking.ConfirmationState == model.ConfirmationCancelled {
		return failure.BadRequestFromString("booking is already cancelled") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	updatedFields := map[string]any{
		model.FieldConfirmationState: model.ConfirmationCancelled,
		constant.FieldModifiedBy:     user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

// UpdatePayment records the outcome of an external payment workflow. A
// rejected payment releases capacity under both counting policies.
func (s *serviceImpl) UpdatePayment(ctx context.Context, req dto.UpdatePaymentRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.UpdatePayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.PaymentState != model.PaymentPending {
		return failure.BadRequestFromString("payment state is already settled") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	updatedFields := map[string]any{
		model.FieldPaymentState:  req.PaymentState,
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update payment state")

		return fmt.Errorf("failed to update payment state: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) authorize(ctx context.Context, booking model.Booking) error {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if booking.RequesterID != user && role != constant.RoleAdmin && role != constant.RoleSuperAdmin {
		return failure.ResourceRestrictedError // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
