package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/avdeev21/retro-market/internal/logger"
	"github.com/avdeev21/retro-market/internal/models"
)

// ErrInvalidConsoleName is returned when an admin add carries an empty name.
var ErrInvalidConsoleName = errors.New("console name is required")

// ConsoleLister returns the full console reference list.
type ConsoleLister interface {
	GetAll(ctx context.Context) ([]models.Console, error)
}

// ConsoleCache caches the console reference list.
type ConsoleCache interface {
	GetAll(ctx context.Context) ([]models.Console, error)
	SetAll(ctx context.Context, consoles []models.Console) error
}

// ConsoleAdder creates console reference data.
type ConsoleAdder interface {
	Save(ctx context.Context, name string) (uuid.UUID, error)
}

// ConsoleService serves console reference data through a cache-aside layer.
type ConsoleService struct {
	reader ConsoleLister
	cache  ConsoleCache
	writer ConsoleAdder
}

// NewConsoleService creates a new ConsoleService.
func NewConsoleService(reader ConsoleLister, cache ConsoleCache, writer ConsoleAdder) *ConsoleService {
	return &ConsoleService{
		reader: reader,
		cache:  cache,
		writer: writer,
	}
}

// List returns every console sorted by name, from cache when possible.
// Cache failures fall through to the store and are never surfaced.
func (s *ConsoleService) List(ctx context.Context) ([]models.Console, error) {
	if s.cache != nil {
		cached, err := s.cache.GetAll(ctx)
		if err == nil && cached != nil {
			return cached, nil
		}
		if err != nil {
			logger.Log.Warnw("console cache unavailable", "error", err)
		}
	}

	consoles, err := s.reader.GetAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list consoles", "error", err)
		return nil, err
	}
	if consoles == nil {
		consoles = []models.Console{}
	}

	if s.cache != nil {
		if err := s.cache.SetAll(ctx, consoles); err != nil {
			logger.Log.Warnw("failed to cache consoles", "error", err)
		}
	}
	return consoles, nil
}

// Add creates a new console and returns its id.
func (s *ConsoleService) Add(ctx context.Context, name string) (uuid.UUID, error) {
	if name == "" {
		return uuid.Nil, ErrInvalidConsoleName
	}
	consoleID, err := s.writer.Save(ctx, name)
	if err != nil {
		logger.Log.Errorw("failed to add console", "name", name, "error", err)
		return uuid.Nil, err
	}
	return consoleID, nil
}
