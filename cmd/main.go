package main

import (
	"bookstore-server/config"
	_ "bookstore-server/docs"
	"bookstore-server/internal/handler"
	"bookstore-server/internal/model"
	"bookstore-server/internal/repository"
	"bookstore-server/internal/security"
	"bookstore-server/internal/service"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Bookstore-server
// @version 1.0
// @description REST API книжного магазина: каталог, корзина, заказы и JWT сессии

// @host localhost:8080

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка при закрытии БД: %v", err)
		}
	}()

	if err := config.RunMigrations(db, cfg.Migrations.Path); err != nil {
		log.Fatalf("Ошибка применения миграций: %v", err)
	}

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		log.Fatalf("Ошибка подключения к Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Ошибка при закрытии Redis: %v", err)
		}
	}()

	srv, router := config.SetupServer(cfg.ServerAddr)

	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	bookRepo := repository.NewBookRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, time.Duration(cfg.TTL.BookCache)*time.Second)

	jwtService, err := security.NewJWTService(&cfg.JWT)
	if err != nil {
		log.Fatalf("Ошибка создания JWT сервиса: %v", err)
	}

	authService := service.NewAuthenticationService(tokenRepo, cacheRepo, jwtService, userRepo)
	userService := service.NewUserService(userRepo, tokenRepo)
	bookService := service.NewBookService(bookRepo, cacheRepo)
	cartService := service.NewCartService(cartRepo, bookRepo)
	orderService := service.NewOrderService(orderRepo, bookRepo)
	reviewService := service.NewReviewService(reviewRepo, bookRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo, bookRepo)
	statsService := service.NewStatsService(statsRepo)

	authHandler := handler.NewAuthenticationHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	bookHandler := handler.NewBookHandler(bookService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	statsHandler := handler.NewStatsHandler(statsService)

	authenticated := security.JWTMiddleware(jwtService, userRepo)
	adminOnly := security.RequireRoles(model.RoleAdmin)

	router.Get("/swagger/*", httpSwagger.WrapHandler)
	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	setupAuthRoutes(router, authHandler)
	setupUserRoutes(router, userHandler, authenticated, adminOnly)
	setupStatsRoutes(router, statsHandler, authenticated, adminOnly)
	setupBookRoutes(router, bookHandler, reviewHandler, authenticated, adminOnly)
	setupCartRoutes(router, cartHandler, authenticated)
	setupOrderRoutes(router, orderHandler, authenticated, adminOnly)
	setupFavoriteRoutes(router, favoriteHandler, authenticated)

	runServer(ctx, srv)
}

type middleware = func(next http.Handler) http.Handler

func setupAuthRoutes(r chi.Router, h *handler.AuthenticationHandler) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/reissue", h.Reissue)
		r.Post("/logout", h.Logout)
	})
}

func setupUserRoutes(r chi.Router, h *handler.UserHandler, authenticated, adminOnly middleware) {
	r.Route("/api/users", func(r chi.Router) {
		r.Post("/register", h.Register)

		r.Group(func(r chi.Router) {
			r.Use(authenticated)
			r.Get("/me", h.GetMe)
			r.Patch("/me", h.UpdateMe)
			r.Delete("/me", h.DeactivateMe)
		})
	})

	r.Route("/api/admin/users", func(r chi.Router) {
		r.Use(authenticated, adminOnly)
		r.Get("/", h.ListUsers)
		r.Patch("/{uuid}/deactivate", h.DeactivateUser)
		r.Delete("/{uuid}", h.DeleteUser)
	})
}

func setupStatsRoutes(r chi.Router, h *handler.StatsHandler, authenticated, adminOnly middleware) {
	r.Route("/api/admin/stats", func(r chi.Router) {
		r.Use(authenticated, adminOnly)
		r.Get("/summary", h.Summary)
	})
}

func setupBookRoutes(r chi.Router, books *handler.BookHandler, reviews *handler.ReviewHandler, authenticated, adminOnly middleware) {
	r.Route("/api/public/books", func(r chi.Router) {
		r.Get("/", books.ListBooks)
		r.Get("/{uuid}", books.GetBook)
		r.Get("/{uuid}/reviews", reviews.ListByBook)
	})

	r.Group(func(r chi.Router) {
		r.Use(authenticated)
		r.Post("/api/books/{uuid}/reviews", reviews.CreateReview)
		r.Patch("/api/reviews/{uuid}", reviews.UpdateReview)
		r.Delete("/api/reviews/{uuid}", reviews.DeleteReview)
	})

	r.Route("/api/admin/books", func(r chi.Router) {
		r.Use(authenticated, adminOnly)
		r.Post("/", books.CreateBook)
		r.Patch("/{uuid}", books.UpdateBook)
		r.Delete("/{uuid}", books.DeleteBook)
	})
}

func setupCartRoutes(r chi.Router, h *handler.CartHandler, authenticated middleware) {
	r.Route("/api/carts", func(r chi.Router) {
		r.Use(authenticated)
		r.Get("/items", h.ListItems)
		r.Post("/items", h.AddItem)
		r.Patch("/items/{uuid}", h.UpdateItem)
		r.Delete("/items/{uuid}", h.RemoveItem)
		r.Delete("/", h.Clear)
	})
}

func setupOrderRoutes(r chi.Router, h *handler.OrderHandler, authenticated, adminOnly middleware) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Use(authenticated)
		r.Get("/", h.ListOrders)
		r.Post("/", h.CreateOrder)
		r.Get("/{uuid}", h.GetOrder)
	})

	r.Route("/api/admin/orders", func(r chi.Router) {
		r.Use(authenticated, adminOnly)
		r.Patch("/{uuid}/status", h.UpdateStatus)
	})
}

func setupFavoriteRoutes(r chi.Router, h *handler.FavoriteHandler, authenticated middleware) {
	r.Route("/api/favorites", func(r chi.Router) {
		r.Use(authenticated)
		r.Get("/", h.ListMine)
		r.Post("/", h.AddFavorite)
		r.Delete("/{bookUUID}", h.RemoveFavorite)
	})
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("сервер запущен на " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("получен сигнал %v остановки работы сервера ", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("ошибка при остановке сервера: %v", err)
	} else {
		log.Println("Сервер успешно остановлен")
	}
}
