package memory

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/monsterwith/monstermedia/internal/core/domain"
)

type ContentRepository struct {
	s *Store
}

func (r *ContentRepository) Create(_ context.Context, c *domain.Content) (*domain.Content, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextContentID++
	created := *c
	if created.ID == "" {
		created.ID = strconv.FormatInt(r.s.nextContentID, 10)
	}
	r.s.content[created.ID] = created
	return &created, nil
}

func (r *ContentRepository) FindByID(_ context.Context, id string) (*domain.Content, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.content[id]
	if !ok {
		return nil, domain.ErrContentNotFound
	}
	return &c, nil
}

func (r *ContentRepository) FindByIDs(_ context.Context, ids []string) ([]domain.Content, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]domain.Content, 0, len(ids))
	for _, id := range ids {
		if c, ok := r.s.content[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *ContentRepository) ListByType(_ context.Context, contentType domain.ContentType, limit int) ([]domain.Content, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := r.s.sortedContentLocked(func(c domain.Content) bool { return c.Type == contentType })
	return capList(out, limit), nil
}

func (r *ContentRepository) ListVip(_ context.Context, limit int) ([]domain.Content, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := r.s.sortedContentLocked(func(c domain.Content) bool { return c.RequiresVip })
	return capList(out, limit), nil
}

func (r *ContentRepository) Featured(_ context.Context) (*domain.Content, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := r.s.sortedContentLocked(func(c domain.Content) bool { return c.Type == domain.TypeAnime })
	if len(out) == 0 {
		return nil, domain.ErrContentNotFound
	}
	return &out[0], nil
}

func (r *ContentRepository) Search(_ context.Context, query string, contentType *domain.ContentType) ([]domain.Content, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	q := strings.ToLower(query)
	isURL := strings.HasPrefix(q, "http://") || strings.HasPrefix(q, "https://")

	out := r.s.sortedContentLocked(func(c domain.Content) bool {
		if contentType != nil && c.Type != *contentType {
			return false
		}
		if isURL {
			return strings.Contains(strings.ToLower(c.SourceURL), q)
		}
		if strings.Contains(strings.ToLower(c.Title), q) ||
			strings.Contains(strings.ToLower(c.Description), q) {
			return true
		}
		for _, tag := range c.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				return true
			}
		}
		return false
	})
	return out, nil
}

func (s *Store) sortedContentLocked(keep func(domain.Content) bool) []domain.Content {
	out := make([]domain.Content, 0)
	for _, c := range s.content {
		if keep(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func capList(list []domain.Content, limit int) []domain.Content {
	if limit > 0 && len(list) > limit {
		return list[:limit]
	}
	return list
}
