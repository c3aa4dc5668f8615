package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/atinyakov/go-url-redirector/internal/storage"
)

// MaxURLLength is the longest destination accepted.
const MaxURLLength = 255

// ErrValidation wraps every rejected input.
var ErrValidation = errors.New("validation error")

// URLService validates input and manages URL records.
type URLService struct {
	repository URLStorage
	pinger     storage.Pinger
	logger     *zap.Logger
}

// NewURL returns a URLService over repo. pinger answers the health checks.
func NewURL(repo URLStorage, pinger storage.Pinger, logger *zap.Logger) *URLService {
	return &URLService{
		repository: repo,
		pinger:     pinger,
		logger:     logger,
	}
}

func validateURL(url string) error {
	if strings.TrimSpace(url) == "" {
		return fmt.Errorf("%w: url must not be empty", ErrValidation)
	}
	if utf8.RuneCountInString(url) > MaxURLLength {
		return fmt.Errorf("%w: url must be at most %d characters", ErrValidation, MaxURLLength)
	}
	return nil
}

// ValidatePage rejects negative offsets and limits.
func ValidatePage(p storage.Page) error {
	if p.Skip < 0 || p.Limit < 0 {
		return fmt.Errorf("%w: skip and limit must not be negative", ErrValidation)
	}
	return nil
}

func (s *URLService) PingContext(ctx context.Context) error {
	return s.pinger.PingContext(ctx)
}

func (s *URLService) Version(ctx context.Context) (string, error) {
	return s.pinger.Version(ctx)
}

func (s *URLService) CreateURL(ctx context.Context, url string, createdBy *string) (storage.URLRecord, error) {
	if err := validateURL(url); err != nil {
		return storage.URLRecord{}, err
	}

	r, err := s.repository.Create(ctx, storage.URLCreate{URL: url, CreatedBy: createdBy})
	if err != nil {
		return storage.URLRecord{}, err
	}

	s.logger.Info("url registered", zap.String("id", r.ID.String()))
	return r, nil
}

func (s *URLService) CreateURLs(ctx context.Context, in []storage.URLCreate) ([]storage.URLRecord, error) {
	if len(in) == 0 {
		return []storage.URLRecord{}, nil
	}
	for i, c := range in {
		if err := validateURL(c.URL); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}

	return s.repository.CreateMany(ctx, in)
}

func (s *URLService) GetURL(ctx context.Context, id uuid.UUID) (storage.URLRecord, error) {
	return s.repository.FindActiveByID(ctx, id)
}

func (s *URLService) ListURLs(ctx context.Context, page storage.Page) ([]storage.URLRecord, error) {
	if err := ValidatePage(page); err != nil {
		return nil, err
	}
	return s.repository.List(ctx, page)
}

func (s *URLService) UpdateURL(ctx context.Context, id uuid.UUID, in storage.URLUpdate) (storage.URLRecord, error) {
	if err := validateURL(in.URL); err != nil {
		return storage.URLRecord{}, err
	}
	return s.repository.Update(ctx, id, in)
}

// DeleteURL soft-deletes id. A record that is already deleted is not found.
func (s *URLService) DeleteURL(ctx context.Context, id uuid.UUID) (storage.URLRecord, error) {
	r, err := s.repository.SoftDelete(ctx, id)
	if err != nil {
		return storage.URLRecord{}, err
	}

	s.logger.Info("url deleted", zap.String("id", id.String()))
	return r, nil
}
