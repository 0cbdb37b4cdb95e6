package memory

import (
	"context"
	"sort"
	"time"

	"github.com/monsterwith/monstermedia/internal/core/domain"
)

type InteractionRepository struct {
	s *Store
}

func (r *InteractionRepository) AddFavorite(_ context.Context, userID int64, contentID string) (*domain.Favorite, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, f := range r.s.favorites {
		if f.UserID == userID && f.ContentID == contentID {
			f := f
			return &f, nil
		}
	}

	r.s.nextFavoriteID++
	fav := domain.Favorite{
		ID:        r.s.nextFavoriteID,
		UserID:    userID,
		ContentID: contentID,
		CreatedAt: time.Now().UTC(),
	}
	r.s.favorites[fav.ID] = fav
	return &fav, nil
}

func (r *InteractionRepository) RemoveFavorite(_ context.Context, userID int64, contentID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, f := range r.s.favorites {
		if f.UserID == userID && f.ContentID == contentID {
			delete(r.s.favorites, id)
			return nil
		}
	}
	return nil
}

func (r *InteractionRepository) FavoriteContentIDs(_ context.Context, userID int64) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ids := make([]int64, 0)
	byID := make(map[int64]string)
	for _, f := range r.s.favorites {
		if f.UserID == userID {
			ids = append(ids, f.ID)
			byID[f.ID] = f.ContentID
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, byID[id])
	}
	return out, nil
}

func (r *InteractionRepository) RecordDownload(_ context.Context, userID int64, contentID string) (*domain.Download, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextDownloadID++
	d := domain.Download{
		ID:        r.s.nextDownloadID,
		UserID:    userID,
		ContentID: contentID,
		CreatedAt: time.Now().UTC(),
	}
	r.s.downloads[d.ID] = d
	return &d, nil
}

func (r *InteractionRepository) DownloadContentIDs(_ context.Context, userID int64) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ids := make([]int64, 0)
	byID := make(map[int64]string)
	for _, d := range r.s.downloads {
		if d.UserID == userID {
			ids = append(ids, d.ID)
			byID[d.ID] = d.ContentID
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		cid := byID[id]
		if _, dup := seen[cid]; dup {
			continue
		}
		seen[cid] = struct{}{}
		out = append(out, cid)
	}
	return out, nil
}
