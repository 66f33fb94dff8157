package router

import (
	"roam/internal/handlers/booking"
	"roam/internal/handlers/search"
	"roam/internal/handlers/story"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Story   story.Handler
	Booking booking.Handler
	Search  search.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Story.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Search.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
