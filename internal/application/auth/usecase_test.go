package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gramin-udyami-api/internal/application/auth"
	"github.com/jhoicas/gramin-udyami-api/internal/application/dto"
	"github.com/jhoicas/gramin-udyami-api/internal/domain"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/entity"
	"github.com/jhoicas/gramin-udyami-api/internal/infrastructure/memory"
	"github.com/jhoicas/gramin-udyami-api/pkg/jwt"
)

const testSecret = "secreto-de-prueba"

func newUseCase(t *testing.T) (*auth.AuthUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	uc := auth.NewAuthUseCase(store.Users(), store.Profiles(), store, nil, auth.JWTConfig{
		Secret: testSecret, ExpMinutes: 60, Issuer: "test",
	})
	return uc, store
}

func validRegister(userID string) dto.RegisterRequest {
	return dto.RegisterRequest{UserID: userID, Password: "kisan2024", ConfirmPassword: "kisan2024"}
}

func TestRegister_CreaUsuarioYPerfil(t *testing.T) {
	ctx := context.Background()
	uc, store := newUseCase(t)

	out, err := uc.Register(ctx, "mr-IN", validRegister("  asha_p "))
	require.NoError(t, err)
	assert.Equal(t, "asha_p", out.UserID)
	assert.Equal(t, entity.RoleUser, out.Role)

	u, err := store.Users().GetByUserID(ctx, "asha_p")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.NotEqual(t, "kisan2024", u.PasswordHash)

	p, err := store.Profiles().GetByUserID(ctx, "asha_p")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "mr", p.Language)
}

func TestRegister_Validaciones(t *testing.T) {
	uc, _ := newUseCase(t)
	cases := []struct {
		name  string
		in    dto.RegisterRequest
		field string
		msg   string
	}{
		{"user_id corto", dto.RegisterRequest{UserID: "ab", Password: "kisan2024", ConfirmPassword: "kisan2024"}, "user_id", "User ID must be at least 3 characters long"},
		{"reservado", dto.RegisterRequest{UserID: "Admin", Password: "kisan2024", ConfirmPassword: "kisan2024"}, "user_id", "This User ID is already taken"},
		{"sin dígitos", dto.RegisterRequest{UserID: "asha", Password: "kisanonly", ConfirmPassword: "kisanonly"}, "password", "Password must be at least 8 characters with letters and numbers"},
		{"sin letras", dto.RegisterRequest{UserID: "asha", Password: "12345678", ConfirmPassword: "12345678"}, "password", "Password must be at least 8 characters with letters and numbers"},
		{"corta", dto.RegisterRequest{UserID: "asha", Password: "ab12", ConfirmPassword: "ab12"}, "password", "Password must be at least 8 characters with letters and numbers"},
		{"no coincide", dto.RegisterRequest{UserID: "asha", Password: "kisan2024", ConfirmPassword: "kisan2025"}, "confirm_password", "Passwords do not match"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := uc.Register(context.Background(), "en", c.in)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, c.msg, verr.Fields[c.field])
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestRegister_MensajesEnHindi(t *testing.T) {
	uc, _ := newUseCase(t)
	in := validRegister("asha")
	in.ConfirmPassword = "otra1234"
	in.Language = "hi"
	_, err := uc.Register(context.Background(), "en", in)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "पासवर्ड मेल नहीं खाते", verr.Fields["confirm_password"])
}

func TestRegister_Duplicado(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t)
	_, err := uc.Register(ctx, "en", validRegister("asha"))
	require.NoError(t, err)
	_, err = uc.Register(ctx, "en", validRegister("asha"))
	assert.ErrorIs(t, err, domain.ErrUserIDTaken)
}

func TestRegister_PerfilInvalidoNoCreaCuenta(t *testing.T) {
	ctx := context.Background()
	uc, store := newUseCase(t)
	in := validRegister("asha")
	in.Profile = &dto.ProfileRequest{Name: "Asha", Age: 15}
	_, err := uc.Register(ctx, "en", in)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Age must be between 18 and 100", verr.Fields["age"])

	u, err := store.Users().GetByUserID(ctx, "asha")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t)
	_, err := uc.Register(ctx, "en", validRegister("asha"))
	require.NoError(t, err)

	out, err := uc.Login(ctx, dto.LoginRequest{UserID: "asha", Password: "kisan2024"})
	require.NoError(t, err)
	userID, role, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "asha", userID)
	assert.Equal(t, entity.RoleUser, role)
	require.NotNil(t, out.Profile)
	assert.False(t, out.Profile.Complete)

	_, err = uc.Login(ctx, dto.LoginRequest{UserID: "asha", Password: "incorrecta1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(ctx, dto.LoginRequest{UserID: "nadie", Password: "kisan2024"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CuentaSuspendida(t *testing.T) {
	ctx := context.Background()
	uc, store := newUseCase(t)
	_, err := uc.Register(ctx, "en", validRegister("asha"))
	require.NoError(t, err)
	u, _ := store.Users().GetByUserID(ctx, "asha")
	u.Status = entity.UserStatusSuspended
	require.NoError(t, store.Users().Update(ctx, u))

	_, err = uc.Login(ctx, dto.LoginRequest{UserID: "asha", Password: "kisan2024"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	role, active, err := uc.CurrentAccount(ctx, "asha")
	require.NoError(t, err)
	assert.False(t, active)
	assert.Equal(t, entity.RoleUser, role)
	role, active, err = uc.CurrentAccount(ctx, "nadie")
	require.NoError(t, err)
	assert.False(t, active)
	assert.Empty(t, role)
}

func TestCurrentAccount_RolGuardado(t *testing.T) {
	ctx := context.Background()
	uc, store := newUseCase(t)
	_, err := uc.EnsureAdmin(ctx, "portal_admin", "kisan2024")
	require.NoError(t, err)

	role, active, err := uc.CurrentAccount(ctx, "portal_admin")
	require.NoError(t, err)
	assert.True(t, active)
	assert.Equal(t, entity.RoleAdmin, role)

	u, _ := store.Users().GetByUserID(ctx, "portal_admin")
	u.Role = entity.RoleUser
	require.NoError(t, store.Users().Update(ctx, u))
	role, _, err = uc.CurrentAccount(ctx, "portal_admin")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, role)
}

func TestMe(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t)
	_, err := uc.Me(ctx, "nadie")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Register(ctx, "en", validRegister("asha"))
	require.NoError(t, err)
	me, err := uc.Me(ctx, "asha")
	require.NoError(t, err)
	assert.Equal(t, "asha", me.User.UserID)
	require.NotNil(t, me.Profile)
}

func TestPasswordStrength(t *testing.T) {
	uc, _ := newUseCase(t)
	assert.Equal(t, dto.PasswordStrengthResponse{Score: 0, Level: "weak"}, uc.PasswordStrength(""))
	assert.Equal(t, 50, uc.PasswordStrength("abc12").Score)
	assert.Equal(t, 75, uc.PasswordStrength("abcdefgh").Score)
	assert.Equal(t, dto.PasswordStrengthResponse{Score: 100, Level: "strong", Valid: true}, uc.PasswordStrength("abcdefg1"))
}

func TestEnsureAdmin_CreaYPromueve(t *testing.T) {
	ctx := context.Background()
	uc, store := newUseCase(t)

	created, err := uc.EnsureAdmin(ctx, "admin", "raja2024x")
	require.NoError(t, err)
	assert.True(t, created)
	u, _ := store.Users().GetByUserID(ctx, "admin")
	assert.Equal(t, entity.RoleAdmin, u.Role)

	_, err = uc.Register(ctx, "en", validRegister("asha"))
	require.NoError(t, err)
	created, err = uc.EnsureAdmin(ctx, "asha", "")
	require.NoError(t, err)
	assert.False(t, created)
	u, _ = store.Users().GetByUserID(ctx, "asha")
	assert.Equal(t, entity.RoleAdmin, u.Role)

	_, err = uc.EnsureAdmin(ctx, "nuevo", "debil")
	assert.Error(t, err)
}
