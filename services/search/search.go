package search

import (
	"context"
	"fmt"

	eventRepo "eventconnect/database/repository/event"
	"eventconnect/models"
)

// SearchService runs faceted discovery queries over the event catalog.
type SearchService interface {
	Search(ctx context.Context, filters models.SearchFilters, limit int) (*models.SearchResult, error)
}

// DefaultSearchService loads the catalog and hands it to the pure pipeline.
type DefaultSearchService struct {
	Repo eventRepo.EventRepository
}

func NewDefaultSearchService(repo eventRepo.EventRepository) *DefaultSearchService {
	return &DefaultSearchService{Repo: repo}
}

// Search filters, scores and orders events. A limit of zero or below returns
// everything; Total always reports the full match count.
func (s *DefaultSearchService) Search(ctx context.Context, filters models.SearchFilters, limit int) (*models.SearchResult, error) {
	events, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	result := Run(events, filters)
	if limit > 0 && limit < len(result.Items) {
		result.Items = result.Items[:limit]
		result.Limit = limit
	}
	return &result, nil
}
