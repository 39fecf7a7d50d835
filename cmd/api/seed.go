package main

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/tiendadmin/catalog-admin/internal/core/domain"
	"github.com/tiendadmin/catalog-admin/internal/core/ports"
	"github.com/tiendadmin/catalog-admin/internal/infrastructure/config"
)

// seedAdministrator creates the bootstrap administrator when both seed
// settings are present. An existing account with that email is left as is.
func seedAdministrator(ctx context.Context, users ports.UserService, seed config.SeedConfig, log zerolog.Logger) error {
	if seed.AdminEmail == "" || seed.AdminPassword == "" {
		return nil
	}

	_, err := users.Create(ctx, ports.UserInput{
		FirstName: "Admin",
		LastName:  "Admin",
		Email:     seed.AdminEmail,
		Password:  seed.AdminPassword,
		Role:      string(domain.RoleAdministrator),
		IsActive:  true,
	})
	switch {
	case errors.Is(err, domain.ErrUserExists):
		log.Debug().Str("email", seed.AdminEmail).Msg("seed administrator already present")
		return nil
	case err != nil:
		return err
	}

	log.Info().Str("email", seed.AdminEmail).Msg("seed administrator created")
	return nil
}
