// @title                       Gramin Udyami API
// @version                     1.0
// @description                 Backend del portal para emprendedores rurales: cuentas, perfil, directorio de negocios, esquemas del gobierno, recomendaciones, asistente de voz y traductor de PDF.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jhoicas/gramin-udyami-api/docs"
	"github.com/jhoicas/gramin-udyami-api/internal/application/auth"
	"github.com/jhoicas/gramin-udyami-api/internal/application/ports"
	"github.com/jhoicas/gramin-udyami-api/internal/application/usecase"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/repository"
	infraai "github.com/jhoicas/gramin-udyami-api/internal/infrastructure/ai"
	"github.com/jhoicas/gramin-udyami-api/internal/infrastructure/content"
	"github.com/jhoicas/gramin-udyami-api/internal/infrastructure/export"
	"github.com/jhoicas/gramin-udyami-api/internal/infrastructure/feed"
	inframongo "github.com/jhoicas/gramin-udyami-api/internal/infrastructure/mongo"
	infrapdf "github.com/jhoicas/gramin-udyami-api/internal/infrastructure/pdf"
	"github.com/jhoicas/gramin-udyami-api/internal/infrastructure/postgres"
	"github.com/jhoicas/gramin-udyami-api/internal/infrastructure/sanitize"
	httpRouter "github.com/jhoicas/gramin-udyami-api/internal/interfaces/http"
	"github.com/jhoicas/gramin-udyami-api/pkg/config"
	"github.com/jhoicas/gramin-udyami-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("business_store", cfg.Storage.BusinessStore).
		Str("translator", cfg.Translator.Provider).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.RunMigrations {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		for _, v := range applied {
			log.Info().Str("version", v).Msg("migración aplicada")
		}
	}

	healthChecks := []httpRouter.HealthCheck{{
		Name: "postgres",
		Ping: func(ctx context.Context) error { return postgres.Ping(ctx, pool) },
	}}

	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	kvRepo := postgres.NewKVRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	var businessRepo repository.BusinessRepository = postgres.NewBusinessRepository(pool)
	if cfg.Storage.BusinessStore == config.BusinessStoreMongo {
		client, err := inframongo.Connect(ctx, cfg.Mongo)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a MongoDB")
		}
		defer func() {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(dctx)
		}()
		mongoRepo := inframongo.NewBusinessRepository(client.Database(cfg.Mongo.Database))
		if err := mongoRepo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("índices de MongoDB")
		}
		businessRepo = mongoRepo
		healthChecks = append(healthChecks, httpRouter.HealthCheck{
			Name: "mongo",
			Ping: func(ctx context.Context) error { return client.Ping(ctx, readpref.Primary()) },
		})
	}

	catalog, err := content.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("catálogo de contenido")
	}

	sanitizer := sanitize.NewStrictSanitizer()
	renderer, err := infrapdf.NewMarotoRendererWithFonts(infrapdf.Fonts{Regular: cfg.PDF.FontRegular, Bold: cfg.PDF.FontBold})
	if err != nil {
		log.Warn().Err(err).Str("font", cfg.PDF.FontRegular).Msg("fuentes PDF no disponibles, se usa helvetica")
		renderer = infrapdf.NewMarotoRenderer()
	}

	translator, closeTranslator, err := newTranslator(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("traductor de documentos")
	}
	defer closeTranslator()

	authUC := auth.NewAuthUseCase(userRepo, profileRepo, txRunner, sanitizer, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	recommendationUC := usecase.NewRecommendationUseCase(profileRepo, catalog, renderer)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.Translator.Timeout + time.Second*10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    cfg.HTTP.BodyLimitMB * 1024 * 1024,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(httpRouter.RequestLogger(log.Component("http")))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Accept-Language, Authorization",
		AllowMethods: strings.Join([]string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete, fiber.MethodOptions}, ","),
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "docs",
		Title:       "Gramin Udyami API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		ProfileUC:        usecase.NewProfileUseCase(profileRepo, sanitizer),
		OnboardingUC:     usecase.NewOnboardingUseCase(profileRepo),
		BusinessUC:       usecase.NewBusinessUseCase(businessRepo, profileRepo, sanitizer, export.NewXLSXExporter()),
		ContentUC:        usecase.NewContentUseCase(catalog, feed.NewRSSBuilder()),
		RecommendationUC: recommendationUC,
		NotificationUC:   usecase.NewNotificationUseCase(profileRepo, businessRepo, recommendationUC),
		VoiceUC:          usecase.NewVoiceUseCase(),
		TranslatorUC: usecase.NewTranslatorUseCase(
			translator, renderer, cfg.Translator.Timeout, int64(cfg.Translator.MaxFileMB)*1024*1024,
		),
		KVUC:         usecase.NewKVUseCase(kvRepo),
		JWTSecret:    cfg.JWT.Secret,
		Version:      cfg.App.Version,
		HealthChecks: healthChecks,
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

// newTranslator elige el adaptador según TRANSLATOR_PROVIDER. La función devuelta libera
// los recursos del cliente (solo Gemini mantiene uno abierto).
func newTranslator(ctx context.Context, cfg *config.Config) (ports.DocumentTranslator, func(), error) {
	noop := func() {}
	switch cfg.Translator.Provider {
	case config.TranslatorAnthropic:
		return infraai.NewAnthropicTranslator(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel), noop, nil
	case config.TranslatorGemini:
		g, err := infraai.NewGeminiTranslator(ctx, cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
		if err != nil {
			return nil, noop, err
		}
		return g, func() { _ = g.Close() }, nil
	}
	return infraai.NewMockTranslator(cfg.Translator.MockDelay), noop, nil
}
