package search

import (
	"net/http"
	"roam/infras/otel"
	"roam/internal/domains/search/model/dto"
	"roam/internal/domains/search/service"
	"roam/shared/constant"
	"roam/shared/validator"
	"roam/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Search
	otel    otel.Otel
}

func New(service service.Search, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/search", func(routerGroup chi.Router) {
		routerGroup.Post("/stories", handler.SearchStories)
	})
}

// SearchStories ranks approved stories around an origin point.
// @Summary Search stories
// @Description Find and rank approved stories near an origin, falling back to administrative hints when coordinates are missing or sparse.
// @Tags Search
// @Accept json
// @Produce json
// @Param request body dto.SearchStoriesRequest true "Search Stories Request"
// @Success 200 {object} response.Data[dto.SearchStoriesResponse] "Ranked search results"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/search/stories [post]
func (handler *Handler) SearchStories(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchStories")
	defer scope.End()

	req := dto.SearchStoriesRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	results, err := handler.service.SearchStories(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search stories")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Stories searched successfully")

	response.WithJSON(writer, http.StatusOK, results)
}
