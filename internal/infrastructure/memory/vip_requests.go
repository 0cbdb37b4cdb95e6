package memory

import (
	"context"
	"sort"

	"github.com/monsterwith/monstermedia/internal/core/domain"
)

type VipRequestRepository struct {
	s *Store
}

func (r *VipRequestRepository) Create(_ context.Context, req *domain.VipRequest) (*domain.VipRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextRequestID++
	created := *req
	created.ID = r.s.nextRequestID
	if created.Status == "" {
		created.Status = domain.StatusPending
	}
	r.s.requests[created.ID] = created
	return &created, nil
}

func (r *VipRequestRepository) FindByID(_ context.Context, id int64) (*domain.VipRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	req, ok := r.s.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	return &req, nil
}

func (r *VipRequestRepository) ListByStatus(_ context.Context, status domain.RequestStatus) ([]domain.VipRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]domain.VipRequest, 0)
	for _, req := range r.s.requests {
		if req.Status == status {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// Decide transitions the request and, on approval of a user-linked request,
// flips the user's VIP flag. The store mutex makes the pair atomic:
// concurrent deciders serialize, and only the first sees pending.
func (r *VipRequestRepository) Decide(_ context.Context, id int64, status domain.RequestStatus) (*domain.VipRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	req, ok := r.s.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	if !req.Status.CanTransitionTo(status) {
		return nil, domain.ErrAlreadyDecided
	}

	// Entitlement write first: a failed grant leaves the request pending.
	if status == domain.StatusApproved && req.UserID != nil {
		if _, err := r.s.grantVipLocked(*req.UserID); err != nil {
			return nil, err
		}
	}

	req.Status = status
	r.s.requests[id] = req
	return &req, nil
}
