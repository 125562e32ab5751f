package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gramin-udyami-api/internal/application/auth"
	"github.com/jhoicas/gramin-udyami-api/internal/application/usecase"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	ProfileUC        *usecase.ProfileUseCase
	OnboardingUC     *usecase.OnboardingUseCase
	BusinessUC       *usecase.BusinessUseCase
	ContentUC        *usecase.ContentUseCase
	RecommendationUC *usecase.RecommendationUseCase
	NotificationUC   *usecase.NotificationUseCase
	VoiceUC          *usecase.VoiceUseCase
	TranslatorUC     *usecase.TranslatorUseCase
	KVUC             *usecase.KVUseCase
	JWTSecret        string
	Version          string
	HealthChecks     []HealthCheck
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	requireAuth := AuthMiddleware(deps.JWTSecret)
	requireActive := RequireActiveAccount(deps.AuthUC)
	optionalAuth := OptionalAuth(deps.JWTSecret)

	systemHandler := NewSystemHandler(deps.Version, deps.HealthChecks...)
	app.Get("/", systemHandler.Root)
	app.Get("/health", systemHandler.Liveness)

	api := app.Group("/api")
	api.Get("/health", systemHandler.Health)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/password-strength", authHandler.PasswordStrength)
	authGroup.Get("/me", requireAuth, authHandler.Me)

	// Perfil
	profile := api.Group("/profile")
	profileHandler := NewProfileHandler(deps.ProfileUC)
	profile.Get("/options", profileHandler.Options)
	profile.Get("/", requireAuth, profileHandler.Get)
	profile.Put("/", requireAuth, requireActive, profileHandler.Save)
	profile.Patch("/", requireAuth, requireActive, profileHandler.Patch)
	profile.Put("/language", requireAuth, profileHandler.SetLanguage)

	// Onboarding
	onboarding := api.Group("/onboarding")
	onboardingHandler := NewOnboardingHandler(deps.OnboardingUC)
	onboarding.Post("/resolve", onboardingHandler.Resolve)
	onboarding.Get("/", requireAuth, onboardingHandler.State)
	onboarding.Post("/complete", requireAuth, onboardingHandler.Complete)

	// Negocios: las rutas fijas van antes de /:id.
	businesses := api.Group("/businesses")
	businessHandler := NewBusinessHandler(deps.BusinessUC)
	businesses.Get("/", businessHandler.List)
	businesses.Get("/my-businesses", requireAuth, businessHandler.ListMine)
	businesses.Get("/stats", businessHandler.Stats)
	businesses.Get("/export", requireAuth, requireActive, RequireRole(entity.RoleAdmin), businessHandler.Export)
	businesses.Get("/:id", businessHandler.Get)
	businesses.Post("/", requireAuth, requireActive, businessHandler.Create)
	businesses.Put("/:id", requireAuth, requireActive, businessHandler.Update)
	businesses.Delete("/:id", requireAuth, requireActive, businessHandler.Delete)

	// Catálogo (público)
	contentHandler := NewContentHandler(deps.ContentUC)
	schemes := api.Group("/schemes")
	schemes.Get("/", contentHandler.ListSchemes)
	schemes.Get("/feed.xml", contentHandler.SchemesFeed)
	schemes.Get("/:id", contentHandler.GetScheme)
	tools := api.Group("/tools")
	tools.Get("/", contentHandler.ListTools)
	tools.Get("/:id", contentHandler.GetTool)
	api.Get("/stories", contentHandler.ListStories)
	api.Get("/videos", contentHandler.ListVideos)
	api.Get("/contact", contentHandler.Contact)
	api.Get("/search", contentHandler.Search)

	// Recomendaciones y avisos
	recommendationHandler := NewRecommendationHandler(deps.RecommendationUC, deps.NotificationUC, deps.ProfileUC)
	recs := api.Group("/recommendations")
	recs.Get("/", requireAuth, recommendationHandler.List)
	recs.Post("/preview", optionalAuth, recommendationHandler.Preview)
	recs.Get("/report.pdf", requireAuth, recommendationHandler.Report)
	api.Get("/notifications", requireAuth, recommendationHandler.Notifications)

	// Voz
	voiceHandler := NewVoiceHandler(deps.VoiceUC, deps.ProfileUC)
	api.Post("/voice/interpret", optionalAuth, voiceHandler.Interpret)

	// Traductor
	translatorHandler := NewTranslatorHandler(deps.TranslatorUC)
	api.Post("/translator/translate", requireAuth, translatorHandler.Translate)

	// KV
	kv := api.Group("/kv")
	kvHandler := NewKVHandler(deps.KVUC)
	kv.Get("/:key", requireAuth, kvHandler.Get)
	kv.Post("/:key", requireAuth, kvHandler.Set)
	kv.Delete("/:key", requireAuth, kvHandler.Delete)
}
