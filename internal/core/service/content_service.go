package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/monsterwith/monstermedia/internal/core/domain"
	"github.com/monsterwith/monstermedia/internal/core/ports"
)

const defaultListLimit = 6

// ContentService serves catalog reads plus per-user favorites and downloads.
type ContentService struct {
	catalog      ports.ContentRepository
	interactions ports.InteractionRepository
	log          zerolog.Logger
}

func NewContentService(catalog ports.ContentRepository, interactions ports.InteractionRepository, log zerolog.Logger) *ContentService {
	return &ContentService{catalog: catalog, interactions: interactions, log: log}
}

func (s *ContentService) Featured(ctx context.Context) (*domain.Content, error) {
	return s.catalog.Featured(ctx)
}

func (s *ContentService) ByID(ctx context.Context, id string, viewer *domain.User) (*domain.Content, error) {
	c, err := s.catalog.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.RequiresVip && (viewer == nil || !(viewer.IsVip || viewer.IsAdmin)) {
		return nil, domain.ErrForbidden
	}
	return c, nil
}

func (s *ContentService) ByType(ctx context.Context, contentType string, limit int) ([]domain.Content, error) {
	if !domain.ValidContentType(contentType) {
		return nil, domain.NewValidationError("type", "must be one of: anime, music, movie, manga, tv")
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.catalog.ListByType(ctx, domain.ContentType(contentType), limit)
}

func (s *ContentService) ListVip(ctx context.Context, limit int) ([]domain.Content, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.catalog.ListVip(ctx, limit)
}

func (s *ContentService) Search(ctx context.Context, query, contentType string) ([]domain.Content, error) {
	if query == "" {
		return nil, domain.NewValidationError("query", "is required")
	}
	var typeFilter *domain.ContentType
	if contentType != "" {
		if !domain.ValidContentType(contentType) {
			return nil, domain.NewValidationError("type", "must be one of: anime, music, movie, manga, tv")
		}
		t := domain.ContentType(contentType)
		typeFilter = &t
	}
	return s.catalog.Search(ctx, query, typeFilter)
}

func (s *ContentService) AddFavorite(ctx context.Context, userID int64, contentID string) (*domain.Favorite, error) {
	if _, err := s.catalog.FindByID(ctx, contentID); err != nil {
		return nil, err
	}
	return s.interactions.AddFavorite(ctx, userID, contentID)
}

func (s *ContentService) RemoveFavorite(ctx context.Context, userID int64, contentID string) error {
	return s.interactions.RemoveFavorite(ctx, userID, contentID)
}

func (s *ContentService) ListFavorites(ctx context.Context, userID int64) ([]domain.Content, error) {
	ids, err := s.interactions.FavoriteContentIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, ids)
}

func (s *ContentService) RecordDownload(ctx context.Context, userID int64, contentID string) (*domain.Download, error) {
	if _, err := s.catalog.FindByID(ctx, contentID); err != nil {
		return nil, err
	}
	d, err := s.interactions.RecordDownload(ctx, userID, contentID)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Int64("user_id", userID).Str("content_id", contentID).Msg("download recorded")
	return d, nil
}

func (s *ContentService) ListDownloads(ctx context.Context, userID int64) ([]domain.Content, error) {
	ids, err := s.interactions.DownloadContentIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, ids)
}

func (s *ContentService) resolve(ctx context.Context, ids []string) ([]domain.Content, error) {
	if len(ids) == 0 {
		return []domain.Content{}, nil
	}
	return s.catalog.FindByIDs(ctx, ids)
}
