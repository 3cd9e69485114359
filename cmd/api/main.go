package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/medimarket-api/internal/application/auth"
	"github.com/tu-usuario/medimarket-api/internal/application/usecase"
	"github.com/tu-usuario/medimarket-api/internal/infrastructure/media"
	infrapdf "github.com/tu-usuario/medimarket-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/medimarket-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/medimarket-api/internal/interfaces/http"
	"github.com/tu-usuario/medimarket-api/pkg/config"
	"github.com/tu-usuario/medimarket-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	if err := postgres.RunMigrations(ctx, cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewVendorProfileRepository(pool)
	bucketRepo := postgres.NewBucketRepository(pool)
	medicineRepo := postgres.NewMedicineRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	mediaStorage, err := media.NewS3Storage(ctx, cfg.Media)
	if err != nil {
		log.Fatal().Err(err).Msg("host de medios")
	}
	catalogPDF := infrapdf.NewMarotoCatalogGenerator()

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	accountUC := usecase.NewAccountUseCase(userRepo, txRunner)
	profileUC := usecase.NewVendorProfileUseCase(userRepo, profileRepo)
	medicineUC := usecase.NewMedicineUseCase(bucketRepo, medicineRepo, mediaStorage, catalogPDF)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigin,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "MediMarket API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		AccountUC:  accountUC,
		ProfileUC:  profileUC,
		MedicineUC: medicineUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
