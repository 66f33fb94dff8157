//go:build wireinject
// +build wireinject

package di

import (
	"roam/config"
	"roam/infras/jwt"
	"roam/infras/kafka"
	"roam/infras/otel"
	"roam/infras/postgres"
	"roam/infras/redis"
	"roam/permissions"
	"roam/shared/cache"
	"roam/transport/http"
	"roam/transport/http/middleware"
	"roam/transport/http/router"

	bookingRepository "roam/internal/domains/booking/repository"
	bookingService "roam/internal/domains/booking/service"
	searchService "roam/internal/domains/search/service"
	storyRepository "roam/internal/domains/story/repository"
	storyService "roam/internal/domains/story/service"

	bookingHandler "roam/internal/handlers/booking"
	searchHandler "roam/internal/handlers/search"
	storyHandler "roam/internal/handlers/story"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
	permissions.Get,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var storyDomain = wire.NewSet(
	storyRepository.New,
	storyService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.NewFeePolicy,
	bookingService.New,
)

var searchDomain = wire.NewSet(
	searchService.NewPlanner,
	searchService.New,
)

var domains = wire.NewSet(
	storyDomain,
	bookingDomain,
	searchDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	storyHandler.New,
	bookingHandler.New,
	searchHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
