package api

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	addressAPI "gomarket/internal/app/server/api/http/address"
	"gomarket/internal/app/server/api/http/apierror"
	healthAPI "gomarket/internal/app/server/api/http/health"
	"gomarket/internal/app/server/api/http/middleware/auth"
	"gomarket/internal/app/server/api/http/middleware/logger"
	"gomarket/internal/app/server/api/http/middleware/ratelimit"
	orderAPI "gomarket/internal/app/server/api/http/order"
	productAPI "gomarket/internal/app/server/api/http/product"
	userAPI "gomarket/internal/app/server/api/http/user"
	"gomarket/internal/domain/address"
	"gomarket/internal/domain/order"
	"gomarket/internal/domain/product"
	"gomarket/internal/domain/session"
	"gomarket/internal/domain/user"
	"gomarket/internal/infrastructure/storage/postgres"
)

// Лимит ленты: агрессивный скролл не должен класть витрину.
const (
	feedRateLimit  = 60
	feedRateWindow = time.Minute
)

type Handlers struct {
	Health  *healthAPI.Handler
	User    *userAPI.Handler
	Product *productAPI.Handler
	Address *addressAPI.Handler
	Order   *orderAPI.Handler
}

// New создает *chi.Mux со всеми операциями через huma.Register.
func New(storage *postgres.Storage, secret string, log *slog.Logger) *chi.Mux {
	apierror.Install()

	mux := chi.NewMux()

	config := huma.DefaultConfig("Gomarket API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, config)

	h := handlers(storage, secret, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Product.SetupRoutes(API)
	h.Address.SetupRoutes(API)
	h.Order.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, secret string, log *slog.Logger) *Handlers {
	sessionRepo := postgres.NewSessionRepository(storage, log)
	sessionService := session.NewService(sessionRepo, secret, log)

	loggerMW := logger.New(log).Middleware()
	authMW := auth.New(sessionService, log).Middleware()
	feedLimitMW := ratelimit.New(feedRateLimit, feedRateWindow, log).Middleware()

	public := huma.Middlewares{loggerMW}
	protected := huma.Middlewares{loggerMW, authMW}

	healthHandler := healthAPI.NewHandler(log, public)

	userRepo := postgres.NewUserRepository(storage, log)
	userService := user.NewService(userRepo, user.NewFormValidator(), log)
	userHandler := userAPI.NewHandler(userService, sessionService, log, public, protected)

	productRepo := postgres.NewProductRepository(storage, log)
	productService := product.NewService(productRepo, log)
	productHandler := productAPI.NewHandler(productService, log,
		huma.Middlewares{loggerMW, feedLimitMW}, protected)

	addressRepo := postgres.NewAddressRepository(storage, log)
	addressService := address.NewService(addressRepo, log)
	addressHandler := addressAPI.NewHandler(addressService, log, protected)

	orderRepo := postgres.NewOrderRepository(storage, log)
	orderService := order.NewService(orderRepo, productRepo, log)
	orderHandler := orderAPI.NewHandler(orderService, log, protected)

	return &Handlers{
		Health:  healthHandler,
		User:    userHandler,
		Product: productHandler,
		Address: addressHandler,
		Order:   orderHandler,
	}
}
