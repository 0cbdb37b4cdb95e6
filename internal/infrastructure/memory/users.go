package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/monsterwith/monstermedia/internal/core/domain"
	"github.com/monsterwith/monstermedia/internal/core/ports"
)

type UserRepository struct {
	s *Store
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if strings.EqualFold(u.Username, user.Username) {
			return nil, domain.ErrUsernameTaken
		}
		if strings.EqualFold(u.Email, user.Email) {
			return nil, domain.ErrEmailTaken
		}
	}

	r.s.nextUserID++
	created := *user
	created.ID = r.s.nextUserID
	r.s.users[created.ID] = created
	return &created, nil
}

func (r *UserRepository) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if strings.EqualFold(u.Username, username) {
			u := u
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			u := u
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) List(_ context.Context) ([]domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]domain.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *UserRepository) Update(_ context.Context, id int64, patch ports.UserPatch) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if patch.Username != nil {
		u.Username = *patch.Username
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.IsVip != nil {
		u.IsVip = *patch.IsVip
	}
	if patch.IsAdmin != nil {
		u.IsAdmin = *patch.IsAdmin
	}
	r.s.users[id] = u
	return &u, nil
}

func (r *UserRepository) GrantVip(_ context.Context, id int64) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.grantVipLocked(id)
}

// grantVipLocked flips the VIP flag; callers hold s.mu.
func (s *Store) grantVipLocked(id int64) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.IsVip = true
	s.users[id] = u
	return &u, nil
}
