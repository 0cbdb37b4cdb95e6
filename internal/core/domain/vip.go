package domain

import (
	"errors"
	"time"
)

// RequestStatus represents the lifecycle state of a VIP request.
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

var ErrRequestNotFound = errors.New("vip request not found")
var ErrAlreadyDecided = errors.New("vip request already decided")
var ErrInvalidStatus = errors.New("invalid vip request status")

// IsTerminal reports whether no further transition is defined from s.
func (s RequestStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransitionTo reports whether a transition from s to next is valid.
// The only legal transitions are pending -> approved and pending -> rejected.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	return s == StatusPending && next.IsTerminal()
}

// ValidStatus reports whether raw names a known request status.
func ValidStatus(raw string) bool {
	switch RequestStatus(raw) {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// VipRequest is a single entry in the VIP request ledger. UserID is nil for
// requests submitted by logged-out visitors.
type VipRequest struct {
	ID        int64         `json:"id"`
	UserID    *int64        `json:"user_id,omitempty"`
	Email     string        `json:"email"`
	Reason    string        `json:"reason,omitempty"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}
