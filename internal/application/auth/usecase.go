package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/gramin-udyami-api/internal/application/dto"
	"github.com/jhoicas/gramin-udyami-api/internal/application/ports"
	"github.com/jhoicas/gramin-udyami-api/internal/application/usecase"
	"github.com/jhoicas/gramin-udyami-api/internal/domain"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/account"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/entity"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/repository"
	"github.com/jhoicas/gramin-udyami-api/pkg/i18n"
	"github.com/jhoicas/gramin-udyami-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AccountTxRunner ejecuta fn con repositorios atados a una misma transacción.
type AccountTxRunner interface {
	RunAccount(ctx context.Context, fn func(users repository.UserRepository, profiles repository.ProfileRepository) error) error
}

// AuthUseCase casos de uso de autenticación: registro, login y sesión.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	tx          AccountTxRunner
	sanitizer   ports.TextSanitizer
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	tx AccountTxRunner,
	sanitizer ports.TextSanitizer,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, profileRepo: profileRepo, tx: tx, sanitizer: sanitizer, jwtCfg: jwtCfg}
}

// Register crea la cuenta y su perfil en una sola transacción. lang es el idioma de la petición
// (se usa si el cuerpo no trae uno). Devuelve domain.ErrUserIDTaken si el user_id ya existe.
func (uc *AuthUseCase) Register(ctx context.Context, lang string, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Language != "" {
		lang = in.Language
	}
	lang = i18n.Normalize(lang)

	userID := account.NormalizeUserID(in.UserID)
	if err := account.ValidateRegistration(lang, account.Registration{
		UserID:          userID,
		Password:        in.Password,
		ConfirmPassword: in.ConfirmPassword,
	}); err != nil {
		return nil, err
	}

	profile := &entity.Profile{UserID: userID}
	if in.Profile != nil {
		profile = usecase.ProfileFromRequest(userID, *in.Profile, uc.sanitizer)
		if err := account.ValidateProfile(lang, profile); err != nil {
			return nil, err
		}
	}
	profile.Language = lang

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		UserID:       userID,
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	profile.CreatedAt, profile.UpdatedAt = now, now

	err = uc.tx.RunAccount(ctx, func(users repository.UserRepository, profiles repository.ProfileRepository) error {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		return profiles.Upsert(ctx, profile)
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica user_id/password, genera JWT y retorna token, usuario y perfil.
// Usuario inexistente y contraseña incorrecta devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUserID(ctx, account.NormalizeUserID(in.UserID))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.UserStatusActive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.UserID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	profile, err := uc.profileRepo.GetByUserID(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		User:    *toUserResponse(user),
		Profile: usecase.ToProfileResponse(profile),
	}, nil
}

// Me devuelve el usuario autenticado con su perfil.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.MeResponse, error) {
	user, err := uc.userRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.MeResponse{User: *toUserResponse(user), Profile: usecase.ToProfileResponse(profile)}, nil
}

// CurrentAccount devuelve el rol guardado y si la cuenta existe y no está suspendida.
// Una cuenta inexistente devuelve ("", false, nil).
func (uc *AuthUseCase) CurrentAccount(ctx context.Context, userID string) (string, bool, error) {
	user, err := uc.userRepo.GetByUserID(ctx, userID)
	if err != nil {
		return "", false, err
	}
	if user == nil {
		return "", false, nil
	}
	return user.Role, user.Status == entity.UserStatusActive, nil
}

// PasswordStrength evalúa la contraseña con el medidor del formulario de registro.
func (uc *AuthUseCase) PasswordStrength(password string) dto.PasswordStrengthResponse {
	score, level := account.PasswordStrength(password)
	return dto.PasswordStrengthResponse{Score: score, Level: level, Valid: account.IsStrongPassword(password)}
}

// EnsureAdmin crea una cuenta admin o promueve una existente. Si la cuenta existe y password
// no está vacío, también reemplaza la contraseña. Devuelve true si la cuenta fue creada.
func (uc *AuthUseCase) EnsureAdmin(ctx context.Context, userID, password string) (bool, error) {
	userID = account.NormalizeUserID(userID)
	if key := account.ValidateUserID(userID); key == account.MsgUserIDInvalid {
		return false, errors.New(account.Message(i18n.Default, key))
	}
	user, err := uc.userRepo.GetByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	now := time.Now()
	if user != nil {
		user.Role = entity.RoleAdmin
		user.Status = entity.UserStatusActive
		user.UpdatedAt = now
		if password != "" {
			if !account.IsStrongPassword(password) {
				return false, errors.New(account.Message(i18n.Default, account.MsgWeakPassword))
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return false, err
			}
			user.PasswordHash = string(hash)
		}
		return false, uc.userRepo.Update(ctx, user)
	}

	if !account.IsStrongPassword(password) {
		return false, errors.New(account.Message(i18n.Default, account.MsgWeakPassword))
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	user = &entity.User{
		UserID:       userID,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = uc.tx.RunAccount(ctx, func(users repository.UserRepository, profiles repository.ProfileRepository) error {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		return profiles.Upsert(ctx, &entity.Profile{UserID: userID, Language: i18n.Default, CreatedAt: now, UpdatedAt: now})
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		UserID:    u.UserID,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
