// seed_admin crea o promueve una cuenta de administrador (necesaria para /api/businesses/export).
//
// Uso: go run ./cmd/seed_admin [user_id]
// Pide la contraseña por terminal. Si la cuenta ya existe y la contraseña se deja vacía,
// solo se cambia el rol y se reactiva la cuenta.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/AlecAivazis/survey/v2"

	"github.com/jhoicas/gramin-udyami-api/internal/application/auth"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/account"
	"github.com/jhoicas/gramin-udyami-api/internal/infrastructure/postgres"
	"github.com/jhoicas/gramin-udyami-api/internal/infrastructure/sanitize"
	"github.com/jhoicas/gramin-udyami-api/pkg/config"
	"github.com/jhoicas/gramin-udyami-api/pkg/i18n"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	var userID string
	if len(os.Args) > 1 {
		userID = os.Args[1]
	} else if err := survey.AskOne(&survey.Input{
		Message: "User ID del administrador:",
		Help:    "Mínimo 3 caracteres, sin espacios.",
	}, &userID, survey.WithValidator(survey.Required), survey.WithValidator(validUserID)); err != nil {
		fmt.Fprintf(os.Stderr, "Leer user_id: %v\n", err)
		os.Exit(1)
	}

	var password string
	if err := survey.AskOne(&survey.Password{
		Message: "Contraseña (vacía para conservar la actual):",
	}, &password, survey.WithValidator(optionalStrongPassword)); err != nil {
		fmt.Fprintf(os.Stderr, "Leer contraseña: %v\n", err)
		os.Exit(1)
	}
	if password != "" {
		var confirm string
		if err := survey.AskOne(&survey.Password{Message: "Repite la contraseña:"}, &confirm); err != nil {
			fmt.Fprintf(os.Stderr, "Leer confirmación: %v\n", err)
			os.Exit(1)
		}
		if confirm != password {
			fmt.Fprintln(os.Stderr, account.Message(i18n.Default, account.MsgPasswordMismatch))
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	authUC := auth.NewAuthUseCase(
		postgres.NewUserRepository(pool),
		postgres.NewProfileRepository(pool),
		postgres.NewTxRunner(pool),
		sanitize.NewStrictSanitizer(),
		auth.JWTConfig{Secret: cfg.JWT.Secret, ExpMinutes: cfg.JWT.Expiration, Issuer: cfg.JWT.Issuer},
	)
	created, err := authUC.EnsureAdmin(ctx, userID, password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear administrador: %v\n", err)
		os.Exit(1)
	}
	if created {
		fmt.Printf("Administrador %s creado\n", account.NormalizeUserID(userID))
		return
	}
	fmt.Printf("Cuenta %s promovida a administrador\n", account.NormalizeUserID(userID))
}

func validUserID(ans interface{}) error {
	s, _ := ans.(string)
	if account.ValidateUserID(account.NormalizeUserID(s)) == account.MsgUserIDInvalid {
		return errors.New(account.Message(i18n.Default, account.MsgUserIDInvalid))
	}
	return nil
}

func optionalStrongPassword(ans interface{}) error {
	s, _ := ans.(string)
	if s != "" && !account.IsStrongPassword(s) {
		return errors.New(account.Message(i18n.Default, account.MsgWeakPassword))
	}
	return nil
}
