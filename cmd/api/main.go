package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/fiberzerolog"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	_ "github.com/jhoicas/raash-api/docs"
	"github.com/jhoicas/raash-api/internal/application/auth"
	"github.com/jhoicas/raash-api/internal/application/checkout"
	"github.com/jhoicas/raash-api/internal/application/session"
	"github.com/jhoicas/raash-api/internal/application/usecase"
	infraMail "github.com/jhoicas/raash-api/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/raash-api/internal/infrastructure/pdf"
	"github.com/jhoicas/raash-api/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/raash-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/raash-api/internal/interfaces/http"
	"github.com/jhoicas/raash-api/pkg/config"
	"github.com/jhoicas/raash-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   os.Getenv("LOG_LEVEL"),
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Importes como números JSON, igual que los devuelve el frontend.
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	sessionTTL := time.Duration(cfg.Session.MaxAgeHours) * time.Hour
	sessions := session.NewService(sessionRepo, session.Config{
		Secret: cfg.Session.Secret,
		Issuer: cfg.App.Name,
		TTL:    sessionTTL,
	})
	go sessions.RunCleanup(ctx, time.Duration(cfg.Session.CleanupMinutes)*time.Minute, log.Component("sessions"))

	// Recibo: texto plano y, si se habilita, copia PDF adjunta.
	var receiptPDF checkout.ReceiptRenderer
	if cfg.Mail.AttachPDF {
		receiptPDF = infrapdf.NewReceiptRenderer("RAASH")
	}
	var notifier checkout.Notifier
	if cfg.Mail.User != "" {
		notifier = infraMail.NewSMTPSender(cfg.Mail)
	} else {
		log.Warn().Msg("EMAIL_USER vacío: los recibos no se enviarán")
	}
	checkoutSvc := checkout.NewService(
		txRunner, cartRepo, notifier, receiptPDF,
		cfg.Checkout.ShippingFee, log.Component("checkout"),
	)

	authUC := auth.NewAuthUseCase(userRepo)
	productUC := usecase.NewProductUseCase(productRepo, infraxlsx.NewCatalogExporter())
	cartUC := usecase.NewCartUseCase(cartRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	httpLog := log.Component("http")
	app.Use(fiberzerolog.New(fiberzerolog.Config{
		Logger:   &httpLog,
		SkipURIs: []string{"/health"},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.Origin,
		AllowCredentials: true,
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "RAASH API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		Sessions:  sessions,
		ProductUC: productUC,
		CartUC:    cartUC,
		OrderUC:   orderUC,
		Checkout:  checkoutSvc,
		Cookie: httpRouter.CookieConfig{
			Name:   cfg.Session.Name,
			Domain: cfg.Session.Domain,
			Secure: cfg.Session.Secure,
		},
	})

	// Frontend estático; "/" sirve la página de inicio.
	app.Static("/", cfg.App.StaticDir, fiber.Static{Index: "homepage.html"})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
