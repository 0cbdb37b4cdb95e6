package ports

import "context"

// NotificationKind names the events the surrounding system may relay to users.
type NotificationKind string

const (
	NotifyVipRequestReceived NotificationKind = "vip_request_received"
	NotifyVipRequestApproved NotificationKind = "vip_request_approved"
	NotifyVipRequestRejected NotificationKind = "vip_request_rejected"
)

// Notification is the payload handed to the external dispatcher.
type Notification struct {
	Kind      NotificationKind
	Email     string
	RequestID int64
}

// Notifier dispatches user-facing notifications. Calls are fire-and-forget:
// implementations must not block the caller, and a delivery failure never
// fails or rolls back the operation that triggered it.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}
