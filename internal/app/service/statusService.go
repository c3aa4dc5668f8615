package service

import (
	"context"

	"github.com/atinyakov/go-url-redirector/internal/storage"
)

// StatusService lists audit entries. Entries are written only by the Resolver.
type StatusService struct {
	repository StatusStorage
}

// NewStatus returns a StatusService over repo.
func NewStatus(repo StatusStorage) *StatusService {
	return &StatusService{repository: repo}
}

func (s *StatusService) ListStatuses(ctx context.Context, filter storage.StatusFilter, page storage.Page) ([]storage.StatusRecord, error) {
	if err := ValidatePage(page); err != nil {
		return nil, err
	}
	return s.repository.ListStatuses(ctx, filter, page)
}
