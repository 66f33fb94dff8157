// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"github.com/google/wire"
	"roam/config"
	"roam/infras/jwt"
	"roam/infras/kafka"
	"roam/infras/otel"
	"roam/infras/postgres"
	"roam/infras/redis"
	repository2 "roam/internal/domains/booking/repository"
	service2 "roam/internal/domains/booking/service"
	service3 "roam/internal/domains/search/service"
	"roam/internal/domains/story/repository"
	"roam/internal/domains/story/service"
	"roam/internal/handlers/booking"
	"roam/internal/handlers/search"
	"roam/internal/handlers/story"
	"roam/permissions"
	"roam/shared/cache"
	"roam/transport/http"
	"roam/transport/http/middleware"
	"roam/transport/http/router"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryStory := repository.New(connection, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	serviceStory := service.New(repositoryStory, configConfig, redisCache, otelOtel)
	handler := story.New(serviceStory, otelOtel)
	repositoryBooking := repository2.New(connection, otelOtel)
	feePolicy := service2.NewFeePolicy(configConfig)
	kafkaClient := kafka.New(configConfig)
	serviceBooking := service2.New(repositoryBooking, repositoryStory, feePolicy, configConfig, redisCache, kafkaClient, otelOtel)
	bookingHandler := booking.New(serviceBooking, otelOtel)
	planner := service3.NewPlanner(repositoryStory)
	serviceSearch := service3.New(planner, repositoryBooking, otelOtel)
	searchHandler := search.New(serviceSearch, otelOtel)
	domainHandlers := router.DomainHandlers{
		Story:   handler,
		Booking: bookingHandler,
		Search:  searchHandler,
	}
	routerRouter := router.New(domainHandlers)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	jwtJWT := jwt.New(configConfig)
	permissionData := permissions.Get()
	authRole := middleware.NewAuthRoleMiddleware(jwtJWT, otelOtel, permissionData, configConfig)
	httpHTTP := http.New(configConfig, routerRouter, appMiddleware, authRole)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, jwt.New, kafka.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAuthRoleMiddleware, permissions.Get)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var storyDomain = wire.NewSet(repository.New, service.New)

var bookingDomain = wire.NewSet(repository2.New, service2.NewFeePolicy, service2.New)

var searchDomain = wire.NewSet(service3.NewPlanner, service3.New)

var domains = wire.NewSet(
	storyDomain,
	bookingDomain,
	searchDomain,
)

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), story.New, booking.New, search.New, router.New)
