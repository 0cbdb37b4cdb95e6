package ports

import (
	"context"

	"github.com/monsterwith/monstermedia/internal/core/domain"
)

// VipRequestRepository owns persistence of the VIP request ledger.
type VipRequestRepository interface {
	Create(ctx context.Context, req *domain.VipRequest) (*domain.VipRequest, error)
	FindByID(ctx context.Context, id int64) (*domain.VipRequest, error)

	// ListByStatus returns requests with the given status ordered by
	// creation time ascending, oldest first.
	ListByStatus(ctx context.Context, status domain.RequestStatus) ([]domain.VipRequest, error)

	// Decide transitions request id from pending to status. When the decision
	// is an approval and the request references a user, the user's VIP flag is
	// set within the same atomic unit: a reader never observes an approved
	// request whose user is still non-VIP. Returns domain.ErrRequestNotFound
	// for an unknown id and domain.ErrAlreadyDecided when the request is
	// already terminal; concurrent calls on one id let exactly one win.
	Decide(ctx context.Context, id int64, status domain.RequestStatus) (*domain.VipRequest, error)
}
