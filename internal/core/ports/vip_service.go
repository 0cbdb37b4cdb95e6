package ports

import (
	"context"

	"github.com/monsterwith/monstermedia/internal/core/domain"
)

// SubmitVipRequestInput carries a new ledger entry. UserID is nil for guest
// submissions; CallerID is the authenticated caller, if any, and must match
// UserID when both are present.
type SubmitVipRequestInput struct {
	Email    string
	Reason   string
	UserID   *int64
	CallerID *int64
}

// VipService owns the lifecycle of VIP requests.
type VipService interface {
	Submit(ctx context.Context, in SubmitVipRequestInput) (*domain.VipRequest, error)
	ListByStatus(ctx context.Context, status string) ([]domain.VipRequest, error)
	Decide(ctx context.Context, id int64, decision string) (*domain.VipRequest, error)
}

// EntitlementService is the single mutation path from "request approved" to
// "user holds VIP access".
type EntitlementService interface {
	// GrantVip sets the VIP flag on the user. Idempotent.
	GrantVip(ctx context.Context, userID int64) (*domain.User, error)
}
