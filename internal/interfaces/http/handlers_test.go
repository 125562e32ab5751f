package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gramin-udyami-api/internal/application/auth"
	"github.com/jhoicas/gramin-udyami-api/internal/application/dto"
	"github.com/jhoicas/gramin-udyami-api/internal/application/usecase"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/account"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/entity"
	"github.com/jhoicas/gramin-udyami-api/internal/infrastructure/ai"
	"github.com/jhoicas/gramin-udyami-api/internal/infrastructure/content"
	"github.com/jhoicas/gramin-udyami-api/internal/infrastructure/export"
	"github.com/jhoicas/gramin-udyami-api/internal/infrastructure/feed"
	"github.com/jhoicas/gramin-udyami-api/internal/infrastructure/memory"
	"github.com/jhoicas/gramin-udyami-api/internal/infrastructure/pdf"
	"github.com/jhoicas/gramin-udyami-api/internal/infrastructure/sanitize"
	apphttp "github.com/jhoicas/gramin-udyami-api/internal/interfaces/http"
	"github.com/jhoicas/gramin-udyami-api/pkg/i18n"
	pkgjwt "github.com/jhoicas/gramin-udyami-api/pkg/jwt"
	"github.com/jhoicas/gramin-udyami-api/pkg/logger"
)

const testPassword = "kisan2024"

type testEnv struct {
	app    *fiber.App
	store  *memory.Store
	authUC *auth.AuthUseCase
}

type envOptions struct {
	translatorDelay   time.Duration
	translatorTimeout time.Duration
	healthChecks      []apphttp.HealthCheck
}

// newTestEnv arma la app completa sobre el almacén en memoria y el catálogo embebido.
func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWith(t, envOptions{translatorTimeout: 5 * time.Second})
}

func newTestEnvWith(t *testing.T, opts envOptions) *testEnv {
	t.Helper()
	store := memory.NewStore()
	catalog, err := content.Load()
	require.NoError(t, err)
	sanitizer := sanitize.NewStrictSanitizer()
	renderer := pdf.NewMarotoRenderer()

	authUC := auth.NewAuthUseCase(store.Users(), store.Profiles(), store, sanitizer, auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
	})
	recUC := usecase.NewRecommendationUseCase(store.Profiles(), catalog, renderer)

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(logger.Nop())})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:           authUC,
		ProfileUC:        usecase.NewProfileUseCase(store.Profiles(), sanitizer),
		OnboardingUC:     usecase.NewOnboardingUseCase(store.Profiles()),
		BusinessUC:       usecase.NewBusinessUseCase(store.Businesses(), store.Profiles(), sanitizer, export.NewXLSXExporter()),
		ContentUC:        usecase.NewContentUseCase(catalog, feed.NewRSSBuilder()),
		RecommendationUC: recUC,
		NotificationUC:   usecase.NewNotificationUseCase(store.Profiles(), store.Businesses(), recUC),
		VoiceUC:          usecase.NewVoiceUseCase(),
		TranslatorUC:     usecase.NewTranslatorUseCase(ai.NewMockTranslator(opts.translatorDelay), renderer, opts.translatorTimeout, 1<<20),
		KVUC:             usecase.NewKVUseCase(store.KV()),
		JWTSecret:        testJWTSecret,
		Version:          "test",
		HealthChecks:     opts.healthChecks,
	})
	return &testEnv{app: app, store: store, authUC: authUC}
}

// login registra la cuenta (admin si role lo pide) y devuelve el header Authorization.
func (e *testEnv) login(t *testing.T, userID, role string) string {
	t.Helper()
	ctx := context.Background()
	_, err := e.authUC.Register(ctx, "en", dto.RegisterRequest{UserID: userID, Password: testPassword, ConfirmPassword: testPassword})
	require.NoError(t, err)
	if role == entity.RoleAdmin {
		_, err = e.authUC.EnsureAdmin(ctx, userID, "")
		require.NoError(t, err)
	}
	tok, err := pkgjwt.Generate(testJWTSecret, userID, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(data, &out), string(data))
	return out
}

func newBusinessBody() map[string]any {
	return map[string]any{
		"businessName": "Asha Dairy",
		"category":     entity.CategoryDairy,
		"description":  "Fresh milk from Satara",
		"location":     map[string]any{"district": "Satara", "state": "Maharashtra", "pincode": "415001"},
		"investment":   map[string]any{"required": "50000", "raised": "10000"},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Negocios
// ──────────────────────────────────────────────────────────────────────────────

func TestBusinessCRUD(t *testing.T) {
	env := newTestEnv(t)
	owner := env.login(t, "asha_patil", entity.RoleUser)
	other := env.login(t, "ravi_kumar", entity.RoleUser)
	admin := env.login(t, "portal_admin", entity.RoleAdmin)

	resp, _ := env.do(t, http.MethodPost, "/api/businesses", "", newBusinessBody())
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "alta anónima")

	resp, data := env.do(t, http.MethodPost, "/api/businesses", owner, newBusinessBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))
	created := decode[dto.BusinessEnvelope](t, data)
	assert.Equal(t, "Business created successfully", created.Message)
	require.NotNil(t, created.Data)
	id := created.Data.ID
	assert.Equal(t, "asha_patil", created.Data.Owner.UserID)
	assert.Equal(t, entity.BusinessStatusPlanning, created.Data.Status)
	assert.Equal(t, 1, created.Data.Employees)

	resp, data = env.do(t, http.MethodGet, "/api/businesses/"+id, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[dto.BusinessEnvelope](t, data)
	assert.Equal(t, "Asha Dairy", got.Data.BusinessName)
	assert.Equal(t, "415001", got.Data.Location.Pincode)

	resp, data = env.do(t, http.MethodGet, "/api/businesses/no-existe", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(data), "Business not found")

	update := map[string]any{"status": entity.BusinessStatusActive}
	resp, data = env.do(t, http.MethodPut, "/api/businesses/"+id, other, update)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, string(data), "Not authorized to update this business")

	resp, data = env.do(t, http.MethodPut, "/api/businesses/"+id, admin, update)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))
	assert.Equal(t, entity.BusinessStatusActive, decode[dto.BusinessEnvelope](t, data).Data.Status)

	resp, _ = env.do(t, http.MethodPut, "/api/businesses/no-existe", owner, update)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, data = env.do(t, http.MethodGet, "/api/businesses?status=active", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.BusinessListResponse](t, data)
	assert.True(t, list.Success)
	assert.Equal(t, 1, list.Count)

	resp, data = env.do(t, http.MethodDelete, "/api/businesses/"+id, other, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, string(data), "Not authorized to delete this business")

	resp, data = env.do(t, http.MethodDelete, "/api/businesses/"+id, owner, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"success":true,"message":"Business deleted successfully","data":{}}`, string(data))

	resp, _ = env.do(t, http.MethodGet, "/api/businesses/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBusinessCreate_Validacion(t *testing.T) {
	env := newTestEnv(t)
	owner := env.login(t, "asha_patil", entity.RoleUser)

	body := newBusinessBody()
	body["category"] = "Mining"
	body["contactInfo"] = map[string]any{"email": "no-es-email"}
	resp, data := env.do(t, http.MethodPost, "/api/businesses", owner, body)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, data)
	assert.Equal(t, "VALIDATION", out.Code)
	assert.Contains(t, out.Fields, "category")
	assert.Contains(t, out.Fields, "contactInfo.email")
}

func TestBusinessCreate_SanitizaTexto(t *testing.T) {
	env := newTestEnv(t)
	owner := env.login(t, "asha_patil", entity.RoleUser)

	body := newBusinessBody()
	body["description"] = `<script>alert(1)</script>Fresh <b>milk</b>`
	resp, data := env.do(t, http.MethodPost, "/api/businesses", owner, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))
	assert.Equal(t, "Fresh milk", decode[dto.BusinessEnvelope](t, data).Data.Description)

	body["description"] = "&lt;img src=x onerror=alert(1)&gt;Fresh milk"
	resp, data = env.do(t, http.MethodPost, "/api/businesses", owner, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))
	assert.Equal(t, "Fresh milk", decode[dto.BusinessEnvelope](t, data).Data.Description)
}

func TestBusinessMyBusinessesYExport(t *testing.T) {
	env := newTestEnv(t)
	owner := env.login(t, "asha_patil", entity.RoleUser)
	admin := env.login(t, "portal_admin", entity.RoleAdmin)

	resp, _ := env.do(t, http.MethodPost, "/api/businesses", owner, newBusinessBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, data := env.do(t, http.MethodGet, "/api/businesses/my-businesses", owner, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, decode[dto.BusinessListResponse](t, data).Count)

	resp, _ = env.do(t, http.MethodGet, "/api/businesses/my-businesses", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = env.do(t, http.MethodGet, "/api/businesses/export", owner, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, data = env.do(t, http.MethodGet, "/api/businesses/export", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".xlsx")
	assert.True(t, bytes.HasPrefix(data, []byte("PK")), "xlsx es un zip")
}

func TestBusiness_AdminDegradadoPierdePermisos(t *testing.T) {
	env := newTestEnv(t)
	owner := env.login(t, "asha_patil", entity.RoleUser)
	admin := env.login(t, "portal_admin", entity.RoleAdmin)

	resp, data := env.do(t, http.MethodPost, "/api/businesses", owner, newBusinessBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decode[dto.BusinessEnvelope](t, data).Data.ID

	ctx := context.Background()
	u, err := env.store.Users().GetByUserID(ctx, "portal_admin")
	require.NoError(t, err)
	u.Role = entity.RoleUser
	require.NoError(t, env.store.Users().Update(ctx, u))

	// el token sigue diciendo admin
	resp, data = env.do(t, http.MethodPut, "/api/businesses/"+id, admin, map[string]any{"businessName": "Otro nombre"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode, string(data))
	assert.Equal(t, "NOT_AUTHORIZED", decode[dto.ErrorResponse](t, data).Code)

	resp, data = env.do(t, http.MethodDelete, "/api/businesses/"+id, admin, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "NOT_AUTHORIZED", decode[dto.ErrorResponse](t, data).Code)

	resp, _ = env.do(t, http.MethodGet, "/api/businesses/export", admin, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = env.do(t, http.MethodGet, "/api/businesses/"+id, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestBusiness_CuentaSuspendidaNoPuedeCrear(t *testing.T) {
	env := newTestEnv(t)
	owner := env.login(t, "asha_patil", entity.RoleUser)

	ctx := context.Background()
	u, err := env.store.Users().GetByUserID(ctx, "asha_patil")
	require.NoError(t, err)
	u.Status = entity.UserStatusSuspended
	require.NoError(t, env.store.Users().Update(ctx, u))

	resp, data := env.do(t, http.MethodPost, "/api/businesses", owner, newBusinessBody())
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, string(data), "ACCOUNT_SUSPENDED")
}

func TestBusinessList_PaginacionInvalida(t *testing.T) {
	env := newTestEnv(t)

	for _, tc := range []struct{ query, field, msg string }{
		{"limit=101", "limit", "Must be at most 100"},
		{"offset=-1", "offset", "Must be at least 0"},
	} {
		resp, data := env.do(t, http.MethodGet, "/api/businesses?"+tc.query, "", nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, tc.query)
		out := decode[dto.ErrorResponse](t, data)
		assert.Equal(t, "VALIDATION", out.Code)
		assert.Equal(t, map[string]string{tc.field: tc.msg}, out.Fields)
	}

	resp, data := env.do(t, http.MethodGet, "/api/businesses?limit=100&offset=5", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 100, decode[dto.BusinessListResponse](t, data).Page.Limit)
}

func TestBusinessCreate_MontosQueNoCabenEnLaColumna(t *testing.T) {
	env := newTestEnv(t)
	owner := env.login(t, "asha_patil", entity.RoleUser)

	for _, inv := range []map[string]any{
		{"required": "100.005", "raised": "0"},
		{"required": "1000000000000", "raised": "0"},
	} {
		body := newBusinessBody()
		body["investment"] = inv
		resp, data := env.do(t, http.MethodPost, "/api/businesses", owner, body)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, string(data))
		assert.Contains(t, decode[dto.ErrorResponse](t, data).Fields, "investment")
	}
}

func TestBusinessStats(t *testing.T) {
	env := newTestEnv(t)
	owner := env.login(t, "asha_patil", entity.RoleUser)

	resp, _ := env.do(t, http.MethodPost, "/api/businesses", owner, newBusinessBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := newBusinessBody()
	body["category"] = entity.CategoryTextile
	body["status"] = entity.BusinessStatusSeekingInvestment
	body["investment"] = map[string]any{"required": "30000", "raised": "0"}
	resp, _ = env.do(t, http.MethodPost, "/api/businesses", owner, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, data := env.do(t, http.MethodGet, "/api/businesses/stats", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))
	out := decode[dto.BusinessStatsResponse](t, data)
	assert.True(t, out.Success)
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, []dto.GroupCountDTO{{Key: "Satara", Count: 2}}, out.ByDistrict)
	assert.Len(t, out.ByCategory, 2)
	assert.Equal(t, "80000", out.Investment.Required.String())
	assert.Equal(t, "10000", out.Investment.Raised.String())
	assert.Equal(t, "12.5", out.Investment.FundedPercent.String())

	resp, data = env.do(t, http.MethodGet, "/api/businesses/stats?status=seeking-investment", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	filtered := decode[dto.BusinessStatsResponse](t, data)
	assert.Equal(t, 1, filtered.Total)
	assert.Equal(t, []dto.GroupCountDTO{{Key: entity.CategoryTextile, Count: 1}}, filtered.ByCategory)
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthRegisterLoginMe(t *testing.T) {
	env := newTestEnv(t)
	reg := map[string]any{"user_id": "asha_patil", "password": testPassword, "confirm_password": testPassword, "language": "mr"}

	resp, data := env.do(t, http.MethodPost, "/api/auth/register", "", reg)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))
	assert.Equal(t, "asha_patil", decode[dto.UserResponse](t, data).UserID)

	resp, data = env.do(t, http.MethodPost, "/api/auth/register", "", reg)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "USER_ID_TAKEN", decode[dto.ErrorResponse](t, data).Code)

	for _, creds := range []map[string]any{
		{"user_id": "asha_patil", "password": "otra2024"},
		{"user_id": "nadie", "password": testPassword},
	} {
		resp, data = env.do(t, http.MethodPost, "/api/auth/login", "", creds)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		out := decode[dto.ErrorResponse](t, data)
		assert.Equal(t, "INVALID_CREDENTIALS", out.Code)
		assert.Equal(t, "Invalid user ID or password", out.Message)
	}

	resp, data = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{"user_id": "asha_patil", "password": testPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	login := decode[dto.LoginResponse](t, data)
	require.NotEmpty(t, login.Token)
	require.NotNil(t, login.Profile)
	assert.Equal(t, "mr", login.Profile.Language)

	resp, data = env.do(t, http.MethodGet, "/api/auth/me", "Bearer "+login.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, entity.RoleUser, decode[dto.MeResponse](t, data).User.Role)
}

func TestAuthRegister_ContrasenaDebil(t *testing.T) {
	env := newTestEnv(t)
	resp, data := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"user_id": "asha_patil", "password": "abcdefgh", "confirm_password": "abcdefgh",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, data)
	assert.Equal(t, "VALIDATION", out.Code)
	assert.Contains(t, out.Fields, "password")
}

func TestAuthRegister_MensajesEnIdiomaDeLaPeticion(t *testing.T) {
	env := newTestEnv(t)
	resp, data := env.do(t, http.MethodPost, "/api/auth/register?lang=hi", "", map[string]any{
		"user_id": "", "password": "abc", "confirm_password": "xyz",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, data)
	assert.Equal(t, "VALIDATION", out.Code)
	assert.Equal(t, map[string]string{
		"user_id":          account.Message(i18n.Hindi, account.MsgUserIDInvalid),
		"password":         account.Message(i18n.Hindi, account.MsgWeakPassword),
		"confirm_password": account.Message(i18n.Hindi, account.MsgPasswordMismatch),
	}, out.Fields)
}

func TestPasswordStrength(t *testing.T) {
	env := newTestEnv(t)
	resp, data := env.do(t, http.MethodPost, "/api/auth/password-strength", "", map[string]any{"password": "kisan2024"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.PasswordStrengthResponse](t, data)
	assert.Equal(t, 100, out.Score)
	assert.True(t, out.Valid)
}

// ──────────────────────────────────────────────────────────────────────────────
// Perfil, onboarding, recomendaciones y avisos
// ──────────────────────────────────────────────────────────────────────────────

func TestProfileYRecomendaciones(t *testing.T) {
	env := newTestEnv(t)
	tok := env.login(t, "asha_patil", entity.RoleUser)

	resp, data := env.do(t, http.MethodPut, "/api/profile", tok, map[string]any{"name": "Asha"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decode[dto.ErrorResponse](t, data).Fields, "district")

	profile := map[string]any{
		"name": "Asha Patil", "age": 32, "address": "Main road", "district": "Satara",
		"occupation": "Dairy Farmer", "business_type": "Dairy", "monthly_income": entity.IncomeRanges[1],
		"business_experience": entity.ExperienceNone,
	}
	resp, data = env.do(t, http.MethodPut, "/api/profile", tok, profile)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))
	assert.True(t, decode[dto.ProfileResponse](t, data).Complete)

	resp, data = env.do(t, http.MethodGet, "/api/onboarding", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "schemes", decode[dto.OnboardingStateResponse](t, data).Step)

	resp, data = env.do(t, http.MethodGet, "/api/recommendations", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	recs := decode[dto.RecommendationListResponse](t, data)
	require.Equal(t, 3, recs.Count)
	assert.Equal(t, "pm-kisan-samman-nidhi", recs.Data[0].Key)

	resp, data = env.do(t, http.MethodGet, "/api/notifications", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	notes := decode[dto.NotificationListResponse](t, data)
	// Dos coincidencias altas y el recordatorio de onboarding.
	require.Equal(t, 3, notes.Count)
	assert.Equal(t, entity.NotificationScheme, notes.Data[0].Type)
	assert.Equal(t, entity.NotificationReminder, notes.Data[2].Type)

	resp, _ = env.do(t, http.MethodPost, "/api/onboarding/complete", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, data = env.do(t, http.MethodGet, "/api/recommendations/report.pdf", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestProfileLanguageYOptions(t *testing.T) {
	env := newTestEnv(t)
	tok := env.login(t, "asha_patil", entity.RoleUser)

	resp, _ := env.do(t, http.MethodPut, "/api/profile/language", tok, map[string]any{"language": "fr"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = env.do(t, http.MethodPut, "/api/profile/language", tok, map[string]any{"language": "hi"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, data := env.do(t, http.MethodGet, "/api/profile", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hi", decode[dto.ProfileResponse](t, data).Language)

	resp, data = env.do(t, http.MethodGet, "/api/profile/options", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"en", "hi", "mr"}, decode[dto.ProfileOptionsResponse](t, data).Languages)
}

func TestOnboardingResolve(t *testing.T) {
	env := newTestEnv(t)
	cases := []struct {
		body map[string]any
		want string
	}{
		{map[string]any{}, "language"},
		{map[string]any{"userLanguage": "hi"}, "registration"},
		{map[string]any{"userLanguage": "hi", "userData": "{}"}, "profile"},
		{map[string]any{"userLanguage": "hi", "userData": "{}", "profileData": "{}"}, "complete"},
	}
	for _, tc := range cases {
		resp, data := env.do(t, http.MethodPost, "/api/onboarding/resolve", "", tc.body)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, tc.want, decode[dto.OnboardingStateResponse](t, data).Step)
	}
}

func TestRecommendationPreview(t *testing.T) {
	env := newTestEnv(t)
	resp, data := env.do(t, http.MethodPost, "/api/recommendations/preview?lang=hi", "", map[string]any{
		"occupation": "Tailor", "business_type": "Textiles", "business_experience": entity.ExperienceNone,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.RecommendationListResponse](t, data)
	assert.Equal(t, "hi", out.Language)
	require.Equal(t, 2, out.Count)
	assert.Equal(t, "medium", out.Data[0].Match)
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestSchemes_IdiomaPorQueryYHeader(t *testing.T) {
	env := newTestEnv(t)

	resp, data := env.do(t, http.MethodGet, "/api/schemes?lang=hi", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.SchemeListResponse](t, data)
	assert.Equal(t, "hi", list.Language)
	assert.Equal(t, 12, list.Count)

	req := httptest.NewRequest(http.MethodGet, "/api/schemes", nil)
	req.Header.Set("Accept-Language", "mr-IN,mr;q=0.9,en;q=0.5")
	r, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer r.Body.Close()
	var viaHeader dto.SchemeListResponse
	require.NoError(t, json.NewDecoder(r.Body).Decode(&viaHeader))
	assert.Equal(t, "mr", viaHeader.Language)

	resp, _ = env.do(t, http.MethodGet, "/api/schemes/999", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, data = env.do(t, http.MethodGet, "/api/schemes/1", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, decode[dto.SchemeResponse](t, data).ID)
}

func TestSchemesFeed(t *testing.T) {
	env := newTestEnv(t)
	resp, data := env.do(t, http.MethodGet, "/api/schemes/feed.xml", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/rss+xml")
	assert.Contains(t, string(data), `<rss version="2.0"`)
}

func TestToolsStoriesYSearch(t *testing.T) {
	env := newTestEnv(t)

	resp, data := env.do(t, http.MethodGet, "/api/tools", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 5, decode[dto.ToolListResponse](t, data).Count)

	resp, _ = env.do(t, http.MethodGet, "/api/tools/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp, _ = env.do(t, http.MethodGet, "/api/tools/99", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, data = env.do(t, http.MethodGet, "/api/stories", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, decode[dto.StoryListResponse](t, data).Count)

	resp, _ = env.do(t, http.MethodGet, "/api/search?q=a", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, data = env.do(t, http.MethodGet, "/api/search?q=MUDRA", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotZero(t, decode[dto.SearchResponse](t, data).Count)
}

func TestVideosYContacto(t *testing.T) {
	env := newTestEnv(t)

	resp, data := env.do(t, http.MethodGet, "/api/videos?lang=mr", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	videos := decode[dto.VideoListResponse](t, data)
	assert.Equal(t, "mr", videos.Language)
	assert.Equal(t, 8, videos.Count)
	assert.Len(t, videos.Categories, 4)
	assert.Equal(t, "अर्ज प्रक्रिया", videos.Data[0].CategoryLabel)
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", videos.Data[0].WatchURL)

	resp, data = env.do(t, http.MethodGet, "/api/videos?category=digital", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	digital := decode[dto.VideoListResponse](t, data)
	assert.Equal(t, 3, digital.Count)
	for _, v := range digital.Data {
		assert.Equal(t, "digital", v.Category)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	req.Header.Set("Accept-Language", "hi")
	r, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer r.Body.Close()
	var contact dto.ContactResponse
	require.NoError(t, json.NewDecoder(r.Body).Decode(&contact))
	assert.Equal(t, "hi", contact.Language)
	assert.Equal(t, "24/7 हेल्पलाइन", contact.HelplineTitle)
	assert.Equal(t, "1800-XXX-XXXX", contact.Phone)
	assert.Len(t, contact.FAQs, 3)
}

// ──────────────────────────────────────────────────────────────────────────────
// Voz y KV
// ──────────────────────────────────────────────────────────────────────────────

func TestVoiceInterpret(t *testing.T) {
	env := newTestEnv(t)

	resp, data := env.do(t, http.MethodPost, "/api/voice/interpret", "", map[string]any{"transcript": "show digital tools"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.VoiceInterpretResponse](t, data)
	assert.True(t, out.Matched)
	assert.Equal(t, "tools", out.Action)
	assert.Equal(t, "en-US", out.Locale)

	assert.Equal(t, []string{"schemes", "tools", "success", "home", "contact"}, out.Actions)
	assert.Contains(t, out.Hint, "Listening")

	resp, _ = env.do(t, http.MethodPost, "/api/voice/interpret", "", map[string]any{"transcript": "  "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestVoiceInterpret_EtiquetasDelCuerpo(t *testing.T) {
	env := newTestEnv(t)

	resp, data := env.do(t, http.MethodPost, "/api/voice/interpret", "", map[string]any{"transcript": "schemes", "language": "fr"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decode[dto.ErrorResponse](t, data).Fields, "language")

	resp, data = env.do(t, http.MethodPost, "/api/voice/interpret", "", map[string]any{"transcript": strings.Repeat("a", 501)})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, map[string]string{"transcript": "Must be at most 500 characters"}, decode[dto.ErrorResponse](t, data).Fields)
}

func TestAuthOpcional_IdiomaDelPerfil(t *testing.T) {
	env := newTestEnv(t)
	tok := env.login(t, "asha_patil", entity.RoleUser)
	resp, _ := env.do(t, http.MethodPut, "/api/profile/language", tok, map[string]any{"language": "mr"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	preview := map[string]any{"occupation": "Farmer", "business_type": "Agriculture", "business_experience": "5+ years"}

	resp, data := env.do(t, http.MethodPost, "/api/recommendations/preview", tok, preview)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))
	assert.Equal(t, "mr", decode[dto.RecommendationListResponse](t, data).Language)

	_, data = env.do(t, http.MethodPost, "/api/recommendations/preview?lang=hi", tok, preview)
	assert.Equal(t, "hi", decode[dto.RecommendationListResponse](t, data).Language)

	_, data = env.do(t, http.MethodPost, "/api/recommendations/preview", "", preview)
	assert.Equal(t, "en", decode[dto.RecommendationListResponse](t, data).Language)

	// token inválido: sigue como anónimo
	resp, data = env.do(t, http.MethodPost, "/api/recommendations/preview", "Bearer basura", preview)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "en", decode[dto.RecommendationListResponse](t, data).Language)

	resp, data = env.do(t, http.MethodPost, "/api/voice/interpret", tok, map[string]any{"transcript": "योजना"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	voiceOut := decode[dto.VoiceInterpretResponse](t, data)
	assert.Equal(t, "mr-IN", voiceOut.Locale)
	assert.Equal(t, "schemes", voiceOut.Action)
}

func TestKV(t *testing.T) {
	env := newTestEnv(t)
	tok := env.login(t, "asha_patil", entity.RoleUser)

	resp, _ := env.do(t, http.MethodGet, "/api/kv/onboarding", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, data := env.do(t, http.MethodGet, "/api/kv/onboarding", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"value":null}`, string(data))

	resp, data = env.do(t, http.MethodPost, "/api/kv/onboarding", tok, map[string]any{"value": map[string]any{"step": "profile"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"ok":true}`, string(data))

	_, data = env.do(t, http.MethodGet, "/api/kv/onboarding", tok, nil)
	assert.JSONEq(t, `{"value":{"step":"profile"}}`, string(data))

	resp, _ = env.do(t, http.MethodDelete, "/api/kv/onboarding", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_, data = env.do(t, http.MethodGet, "/api/kv/onboarding", tok, nil)
	assert.JSONEq(t, `{"value":null}`, string(data))
}

func TestKV_AisladoEntreUsuarios(t *testing.T) {
	env := newTestEnv(t)
	asha := env.login(t, "asha_patil", entity.RoleUser)
	ravi := env.login(t, "ravi_kumar", entity.RoleUser)

	resp, _ := env.do(t, http.MethodPost, "/api/kv/onboarding", asha, map[string]any{"value": map[string]any{"step": "profile"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, data := env.do(t, http.MethodGet, "/api/kv/onboarding", ravi, nil)
	assert.JSONEq(t, `{"value":null}`, string(data))

	resp, _ = env.do(t, http.MethodPost, "/api/kv/onboarding", ravi, map[string]any{"value": "otro"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = env.do(t, http.MethodDelete, "/api/kv/onboarding", ravi, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, data = env.do(t, http.MethodGet, "/api/kv/onboarding", asha, nil)
	assert.JSONEq(t, `{"value":{"step":"profile"}}`, string(data))
}

// ──────────────────────────────────────────────────────────────────────────────
// Traductor
// ──────────────────────────────────────────────────────────────────────────────

func uploadRequest(t *testing.T, path, token, fileName, contentType string, content []byte, lang string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	if lang != "" {
		require.NoError(t, w.WriteField("target_language", lang))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", token)
	return req
}

var samplePDF = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\ntrailer\n<<>>\n%%EOF")

func TestTranslator(t *testing.T) {
	env := newTestEnv(t)
	tok := env.login(t, "asha_patil", entity.RoleUser)

	resp, err := env.app.Test(uploadRequest(t, "/api/translator/translate", tok, "notice.txt", "text/plain", []byte("hola"), "hi"), -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)

	resp, err = env.app.Test(uploadRequest(t, "/api/translator/translate", tok, "notice.pdf", "application/pdf", samplePDF, "hi"), -1)
	require.NoError(t, err)
	var out dto.TranslationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "mock", out.Provider)
	assert.Equal(t, "hi", out.TargetLanguage)
	assert.Equal(t, "translated_notice.txt", out.DownloadName)
	assert.Contains(t, out.Text, "notice.pdf")

	resp, err = env.app.Test(uploadRequest(t, "/api/translator/translate?format=txt", tok, "notice.pdf", "application/pdf", samplePDF, "mr"), -1)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "translated_notice.txt")

	resp, err = env.app.Test(uploadRequest(t, "/api/translator/translate?format=docx", tok, "notice.pdf", "application/pdf", samplePDF, ""), -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTranslator_Timeout(t *testing.T) {
	env := newTestEnvWith(t, envOptions{translatorDelay: time.Second, translatorTimeout: 20 * time.Millisecond})
	tok := env.login(t, "asha_patil", entity.RoleUser)

	resp, err := env.app.Test(uploadRequest(t, "/api/translator/translate", tok, "notice.pdf", "application/pdf", samplePDF, "en"), -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusRequestTimeout, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sistema
// ──────────────────────────────────────────────────────────────────────────────

func TestSystemEndpoints(t *testing.T) {
	env := newTestEnvWith(t, envOptions{healthChecks: []apphttp.HealthCheck{
		{Name: "postgres", Ping: func(context.Context) error { return nil }},
		{Name: "mongo", Ping: func(context.Context) error { return errors.New("sin conexión") }},
	}})

	resp, data := env.do(t, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	root := decode[dto.RootResponse](t, data)
	assert.Equal(t, "Rural Entrepreneur Backend API", root.Message)
	assert.Equal(t, "/api/businesses", root.Endpoints["businesses"])

	resp, data = env.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Server is running", decode[dto.HealthResponse](t, data).Message)

	resp, data = env.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	health := decode[dto.HealthResponse](t, data)
	assert.Equal(t, map[string]string{"postgres": "up", "mongo": "down"}, health.Checks)

	resp, data = env.do(t, http.MethodGet, "/api/no-existe", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, data).Code)
}
