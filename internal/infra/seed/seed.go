// Package seed creates the bootstrap data the API expects on an empty database.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hubmanager/backend/config"
	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
	"github.com/hubmanager/backend/internal/domain/valueobject"
)

// DefaultHub is a hub created at startup when no hub with the same name exists.
type DefaultHub struct {
	Name        string
	Description string
	Location    string
}

// DefaultHubs lists the hubs every installation starts with.
var DefaultHubs = []DefaultHub{
	{Name: "Hub Puerta Toledo", Description: "Hub principal Madrid", Location: "Madrid"},
	{Name: "Dibecesa", Description: "Centro de distribución", Location: "Madrid"},
	{Name: "Hub Caceres", Description: "Hub Extremadura", Location: "Cáceres"},
	{Name: "Hub Cordoba", Description: "Hub Andalucía Este", Location: "Córdoba"},
	{Name: "Hub Cartagena", Description: "Hub Murcia", Location: "Cartagena"},
	{Name: "Hub Cadiz", Description: "Hub Andalucía Oeste", Location: "Cádiz"},
}

// Seeder creates the admin account, the default hubs and the Madrid Central restriction.
// Every step is idempotent.
type Seeder struct {
	users        adapter.UserRepository
	hubs         adapter.HubRepository
	restrictions adapter.TimeRestrictionRepository
	passwords    adapter.PasswordHasher
}

// NewSeeder creates a new Seeder.
func NewSeeder(
	users adapter.UserRepository,
	hubs adapter.HubRepository,
	restrictions adapter.TimeRestrictionRepository,
	passwords adapter.PasswordHasher,
) *Seeder {
	return &Seeder{users: users, hubs: hubs, restrictions: restrictions, passwords: passwords}
}

// Run applies every seed step.
func (s *Seeder) Run(ctx context.Context, cfg config.SeedConfig) error {
	if err := s.seedAdmin(ctx, cfg); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := s.seedHubs(ctx); err != nil {
		return fmt.Errorf("seed hubs: %w", err)
	}
	if err := s.seedMadridRestrictions(ctx); err != nil {
		return fmt.Errorf("seed restrictions: %w", err)
	}
	return nil
}

func (s *Seeder) seedAdmin(ctx context.Context, cfg config.SeedConfig) error {
	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domainerror.ErrUserNotFound) {
		return err
	}

	hash, err := s.passwords.Hash(cfg.AdminPassword)
	if err != nil {
		return err
	}
	if err := s.users.Create(ctx, entity.NewAdminUser(email, cfg.AdminName, hash)); err != nil {
		return err
	}
	slog.Info("Admin user created", "email", email)
	return nil
}

func (s *Seeder) seedHubs(ctx context.Context) error {
	created := 0
	for _, def := range DefaultHubs {
		_, err := s.hubs.FindByName(ctx, def.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, domainerror.ErrHubNotFound) {
			return err
		}
		if err := s.hubs.Create(ctx, entity.NewHub(def.Name, def.Description, def.Location)); err != nil {
			return err
		}
		created++
	}
	if created > 0 {
		slog.Info("Default hubs created", "count", created)
	}
	return nil
}

// seedMadridRestrictions adds the Madrid Central window to Madrid hubs that have none yet.
func (s *Seeder) seedMadridRestrictions(ctx context.Context) error {
	hubs, err := s.hubs.List(ctx)
	if err != nil {
		return err
	}
	for _, hub := range hubs {
		if !strings.Contains(valueobject.FoldText(hub.Location), "madrid") {
			continue
		}
		count, err := s.restrictions.CountByHub(ctx, hub.ID)
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		restriction := entity.NewTimeRestriction(
			hub.ID,
			"Madrid Central",
			"7:00 - 22:00",
			"L-V",
			entity.AplicaVehiculosCombustible,
			"Zona de bajas emisiones",
		)
		if err := s.restrictions.Create(ctx, restriction); err != nil {
			return err
		}
		slog.Info("Madrid Central restriction created", "hub", hub.Name)
	}
	return nil
}
