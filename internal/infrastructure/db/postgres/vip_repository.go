package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/monsterwith/monstermedia/internal/core/domain"
)

const vipRequestColumns = "id, user_id, email, reason, status, created_at"

type VipRequestRepository struct {
	db *sql.DB
}

func NewVipRequestRepository(db *sql.DB) *VipRequestRepository {
	return &VipRequestRepository{db: db}
}

// Create inserts a new pending request.
func (r *VipRequestRepository) Create(ctx context.Context, req *domain.VipRequest) (*domain.VipRequest, error) {
	query := `INSERT INTO vip_requests (user_id, email, reason, status)
	          VALUES ($1, $2, $3, $4)
	          RETURNING ` + vipRequestColumns

	out, err := scanVipRequest(r.db.QueryRowContext(ctx, query,
		req.UserID, req.Email, req.Reason, req.Status))
	if err != nil {
		return nil, fmt.Errorf("create vip request: %w", err)
	}
	return out, nil
}

func (r *VipRequestRepository) FindByID(ctx context.Context, id int64) (*domain.VipRequest, error) {
	return findVipRequest(ctx, r.db, id)
}

// ListByStatus returns requests with the given status, oldest first.
func (r *VipRequestRepository) ListByStatus(ctx context.Context, status domain.RequestStatus) ([]domain.VipRequest, error) {
	query := "SELECT " + vipRequestColumns + ` FROM vip_requests
	          WHERE status = $1 ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("list vip requests: %w", err)
	}
	defer rows.Close()

	out := []domain.VipRequest{}
	for rows.Next() {
		var req domain.VipRequest
		if err := rows.Scan(&req.ID, &req.UserID, &req.Email, &req.Reason, &req.Status, &req.CreatedAt); err != nil {
			return nil, fmt.Errorf("list vip requests: %w", err)
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list vip requests: %w", err)
	}
	return out, nil
}

// Decide transitions a pending request to the given terminal status, granting
// the referenced user's VIP flag in the same transaction on approval. The
// status UPDATE is guarded on status = 'pending', so of any number of
// concurrent deciders exactly one sees an affected row; the rest observe the
// terminal state and get domain.ErrAlreadyDecided.
func (r *VipRequestRepository) Decide(ctx context.Context, id int64, status domain.RequestStatus) (*domain.VipRequest, error) {
	var decided *domain.VipRequest

	err := WithTx(ctx, r.db, nil, func(ctx context.Context, tx DBTX) error {
		req, err := findVipRequest(ctx, tx, id)
		if err != nil {
			return err
		}

		// Entitlement write first: a failed grant leaves the request pending.
		if status == domain.StatusApproved && req.UserID != nil {
			users := NewUserRepository(tx)
			if _, err := users.GrantVip(ctx, *req.UserID); err != nil {
				return err
			}
		}

		query := `UPDATE vip_requests SET status = $1
		          WHERE id = $2 AND status = 'pending'
		          RETURNING ` + vipRequestColumns

		decided, err = scanVipRequest(tx.QueryRowContext(ctx, query, string(status), id))
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrAlreadyDecided
		}
		if err != nil {
			return fmt.Errorf("decide vip request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return decided, nil
}

func findVipRequest(ctx context.Context, db DBTX, id int64) (*domain.VipRequest, error) {
	query := "SELECT " + vipRequestColumns + " FROM vip_requests WHERE id = $1"

	out, err := scanVipRequest(db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("find vip request: %w", err)
	}
	return out, nil
}

func scanVipRequest(row *sql.Row) (*domain.VipRequest, error) {
	var req domain.VipRequest
	err := row.Scan(&req.ID, &req.UserID, &req.Email, &req.Reason, &req.Status, &req.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &req, nil
}
