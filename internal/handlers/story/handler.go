package story

import (
	"net/http"
	"roam/infras/otel"
	"roam/internal/domains/story/model"
	"roam/internal/domains/story/model/dto"
	"roam/internal/domains/story/service"
	"roam/shared/constant"
	gDto "roam/shared/dto"
	"roam/shared/validator"
	"roam/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Story
	otel    otel.Otel
}

func New(service service.Story, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/stories", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateStory)
		routerGroup.Get("/", handler.GetStories)
		routerGroup.Get("/{id}", handler.GetStoryByID)
		routerGroup.Patch("/{id}", handler.UpdateStory)
		routerGroup.Patch("/{id}/status", handler.UpdateStoryStatus)
		routerGroup.Delete("/{id}", handler.DeleteStory)
	})
}

// CreateStory handles the creation of a new travel story listing.
// @Summary Create a new story
// @Description Create a new travel story listing. The story starts in pending review and must be approved before it can be booked or searched.
// @Tags Story
// @Accept json
// @Produce json
// @Param request body dto.CreateStoryRequest true "Create Story Request"
// @Success 201 {object} response.Message "Story created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stories [post]
// @Security BearerAuth
func (handler *Handler) CreateStory(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateStory")
	defer scope.End()

	req := dto.CreateStoryRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create story")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Story created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Story created successfully")
}

// GetStories retrieves all stories based on query parameters.
// @Summary Get all stories
// @Description Retrieve all stories with optional filtering and pagination.
// @Tags Story
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param title query string false "Filter by title"
// @Param status query string false "Filter by status (draft, pending_review, approved, rejected)"
// @Param availability_type query string false "Filter by availability type (year_round, scheduled)"
// @Param state query string false "Filter by state"
// @Success 200 {object} response.Data[dto.GetStoriesResponse] "List of stories"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stories [get]
func (handler *Handler) GetStories(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStories")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if title := r.URL.Query().Get(model.FieldTitle); title != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldTitle,
			Operator: gDto.FilterOperatorLike,
			Value:    title,
			Table:    model.TableName,
		})
	}

	for _, field := range []string{model.FieldStatus, model.FieldAvailabilityType, model.FieldState} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	stories, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stories")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stories retrieved successfully")

	response.WithJSON(w, http.StatusOK, stories)
}

// GetStoryByID retrieves a story by its ID.
// @Summary Get a story by ID
// @Description Retrieve a story by its unique identifier.
// @Tags Story
// @Accept json
// @Produce json
// @Param id path string true "Story ID"
// @Success 200 {object} response.Data[dto.StoryResponse] "Story details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stories/{id} [get]
func (handler *Handler) GetStoryByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStoryByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	story, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get story by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Story retrieved successfully")

	response.WithJSON(w, http.StatusOK, story)
}

// UpdateStory updates an existing story by its ID.
// @Summary Update a story by ID
// @Description Update the details of an existing story. Only the host or an admin may update it.
// @Tags Story
// @Accept json
// @Produce json
// @Param id path string true "Story ID"
// @Param request body dto.UpdateStoryRequest true "Update Story Request"
// @Success 200 {object} response.Message "Story updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stories/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStory")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStoryRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update story")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Story updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Story updated successfully")
}

// UpdateStoryStatus moves a story through its review lifecycle.
// @Summary Update a story's review status
// @Description Approve, reject, or send a story back to review. Admin only.
// @Tags Story
// @Accept json
// @Produce json
// @Param id path string true "Story ID"
// @Param request body dto.UpdateStoryStatusRequest true "Update Story Status Request"
// @Success 200 {object} response.Message "Story status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stories/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStoryStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStoryStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStoryStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update story status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Story status updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Story status updated successfully")
}

// DeleteStory deletes a story by its ID.
// @Summary Delete a story by ID
// @Description Delete a story using its unique identifier.
// @Tags Story
// @Accept json
// @Produce json
// @Param id path string true "Story ID"
// @Success 200 {object} response.Message "Story deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stories/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteStory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteStory")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete story")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Story deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Story deleted successfully")
}
