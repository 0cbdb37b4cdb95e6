package service

import (
	"context"
	"net/mail"
	"time"

	"github.com/rs/zerolog"

	"github.com/monsterwith/monstermedia/internal/core/domain"
	"github.com/monsterwith/monstermedia/internal/core/ports"
)

// VipService owns the VIP request ledger: submission, review listing, and the
// pending -> terminal decision that may grant the requester VIP access.
type VipService struct {
	requests ports.VipRequestRepository
	notifier ports.Notifier
	log      zerolog.Logger
}

func NewVipService(requests ports.VipRequestRepository, notifier ports.Notifier, log zerolog.Logger) *VipService {
	return &VipService{requests: requests, notifier: notifier, log: log}
}

func (s *VipService) Submit(ctx context.Context, in ports.SubmitVipRequestInput) (*domain.VipRequest, error) {
	if in.Email == "" {
		return nil, domain.NewValidationError("email", "is required")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, domain.NewValidationError("email", "must be a valid email")
	}
	// A caller may only file a request for itself.
	if in.UserID != nil {
		if in.CallerID == nil || *in.CallerID != *in.UserID {
			return nil, domain.ErrForbidden
		}
	}

	req, err := s.requests.Create(ctx, &domain.VipRequest{
		UserID:    in.UserID,
		Email:     in.Email,
		Reason:    in.Reason,
		Status:    domain.StatusPending,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("request_id", req.ID).Str("email", req.Email).Msg("vip request submitted")

	s.notifier.Notify(ctx, ports.Notification{
		Kind:      ports.NotifyVipRequestReceived,
		Email:     req.Email,
		RequestID: req.ID,
	})

	return req, nil
}

func (s *VipService) ListByStatus(ctx context.Context, status string) ([]domain.VipRequest, error) {
	if !domain.ValidStatus(status) {
		return nil, domain.NewValidationError("status", "must be one of: pending, approved, rejected")
	}
	return s.requests.ListByStatus(ctx, domain.RequestStatus(status))
}

func (s *VipService) Decide(ctx context.Context, id int64, decision string) (*domain.VipRequest, error) {
	status := domain.RequestStatus(decision)
	if !status.IsTerminal() {
		return nil, domain.NewValidationError("status", "must be one of: approved, rejected")
	}

	// The repository applies the status write and, on approval of a
	// user-linked request, the VIP flag write as one atomic unit.
	req, err := s.requests.Decide(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("request_id", req.ID).
		Str("decision", string(status)).
		Msg("vip request decided")

	kind := ports.NotifyVipRequestRejected
	if status == domain.StatusApproved {
		kind = ports.NotifyVipRequestApproved
	}
	s.notifier.Notify(ctx, ports.Notification{Kind: kind, Email: req.Email, RequestID: req.ID})

	return req, nil
}
