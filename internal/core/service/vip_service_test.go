package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/monsterwith/monstermedia/internal/core/domain"
	"github.com/monsterwith/monstermedia/internal/core/ports"
	"github.com/monsterwith/monstermedia/internal/infrastructure/memory"
)

type stubNotifier struct {
	mu   sync.Mutex
	sent []ports.Notification
}

func (n *stubNotifier) Notify(_ context.Context, notification ports.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification)
}

func (n *stubNotifier) kinds() []ports.NotificationKind {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]ports.NotificationKind, 0, len(n.sent))
	for _, s := range n.sent {
		out = append(out, s.Kind)
	}
	return out
}

func newVipFixture(t *testing.T) (*memory.Store, *VipService, *stubNotifier) {
	t.Helper()
	store := memory.NewStore()
	notifier := &stubNotifier{}
	svc := NewVipService(store.VipRequests(), notifier, zerolog.Nop())
	return store, svc, notifier
}

func seedUser(t *testing.T, store *memory.Store, username string) *domain.User {
	t.Helper()
	user, err := store.Users().Create(context.Background(), &domain.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestVipService_Submit_StartsPending(t *testing.T) {
	store, svc, notifier := newVipFixture(t)
	user := seedUser(t, store, "alice")

	req, err := svc.Submit(context.Background(), ports.SubmitVipRequestInput{
		Email:    "a@example.com",
		Reason:   "please",
		UserID:   &user.ID,
		CallerID: &user.ID,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if req.Status != domain.StatusPending {
		t.Fatalf("expected pending, got %s", req.Status)
	}
	if req.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if kinds := notifier.kinds(); len(kinds) != 1 || kinds[0] != ports.NotifyVipRequestReceived {
		t.Fatalf("unexpected notifications: %v", kinds)
	}
}

func TestVipService_Submit_BadEmail(t *testing.T) {
	_, svc, _ := newVipFixture(t)

	if _, err := svc.Submit(context.Background(), ports.SubmitVipRequestInput{Email: "not-an-email"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := svc.Submit(context.Background(), ports.SubmitVipRequestInput{}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for empty email, got %v", err)
	}
}

func TestVipService_Submit_CallerMismatch(t *testing.T) {
	store, svc, _ := newVipFixture(t)
	user := seedUser(t, store, "alice")
	other := user.ID + 1

	_, err := svc.Submit(context.Background(), ports.SubmitVipRequestInput{
		Email:    "a@example.com",
		UserID:   &user.ID,
		CallerID: &other,
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}

	// No caller at all cannot submit on behalf of a user id.
	_, err = svc.Submit(context.Background(), ports.SubmitVipRequestInput{
		Email:  "a@example.com",
		UserID: &user.ID,
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden for anonymous caller, got %v", err)
	}
}

func TestVipService_Decide_ApproveGrantsVip(t *testing.T) {
	store, svc, notifier := newVipFixture(t)
	user := seedUser(t, store, "alice")
	if user.IsVip {
		t.Fatalf("user should not start as vip")
	}

	req, err := svc.Submit(context.Background(), ports.SubmitVipRequestInput{
		Email:    "a@example.com",
		Reason:   "please",
		UserID:   &user.ID,
		CallerID: &user.ID,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	decided, err := svc.Decide(context.Background(), req.ID, "approved")
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	if decided.Status != domain.StatusApproved {
		t.Fatalf("expected approved, got %s", decided.Status)
	}

	got, err := store.Users().FindByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if !got.IsVip {
		t.Fatalf("expected user to be vip after approval")
	}

	kinds := notifier.kinds()
	if len(kinds) != 2 || kinds[1] != ports.NotifyVipRequestApproved {
		t.Fatalf("unexpected notifications: %v", kinds)
	}
}

func TestVipService_Decide_RejectLeavesUserUntouched(t *testing.T) {
	store, svc, _ := newVipFixture(t)
	user := seedUser(t, store, "bob")

	req, _ := svc.Submit(context.Background(), ports.SubmitVipRequestInput{
		Email:    "b@example.com",
		UserID:   &user.ID,
		CallerID: &user.ID,
	})

	decided, err := svc.Decide(context.Background(), req.ID, "rejected")
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	if decided.Status != domain.StatusRejected {
		t.Fatalf("expected rejected, got %s", decided.Status)
	}

	got, _ := store.Users().FindByID(context.Background(), user.ID)
	if got.IsVip {
		t.Fatalf("rejection must not grant vip")
	}
}

func TestVipService_Decide_DoubleDecide(t *testing.T) {
	store, svc, _ := newVipFixture(t)
	user := seedUser(t, store, "carol")

	req, _ := svc.Submit(context.Background(), ports.SubmitVipRequestInput{
		Email:    "c@example.com",
		UserID:   &user.ID,
		CallerID: &user.ID,
	})
	if _, err := svc.Decide(context.Background(), req.ID, "approved"); err != nil {
		t.Fatalf("first decide: %v", err)
	}

	if _, err := svc.Decide(context.Background(), req.ID, "rejected"); !errors.Is(err, domain.ErrAlreadyDecided) {
		t.Fatalf("expected already decided, got %v", err)
	}

	got, _ := store.Users().FindByID(context.Background(), user.ID)
	if !got.IsVip {
		t.Fatalf("failed second decide must not revoke vip")
	}
}

func TestVipService_Decide_GuestRequest(t *testing.T) {
	_, svc, _ := newVipFixture(t)

	req, err := svc.Submit(context.Background(), ports.SubmitVipRequestInput{Email: "guest@example.com"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	decided, err := svc.Decide(context.Background(), req.ID, "approved")
	if err != nil {
		t.Fatalf("decide guest request: %v", err)
	}
	if decided.Status != domain.StatusApproved {
		t.Fatalf("expected approved, got %s", decided.Status)
	}
}

func TestVipService_Decide_Validation(t *testing.T) {
	_, svc, _ := newVipFixture(t)

	if _, err := svc.Decide(context.Background(), 1, "pending"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for pending decision, got %v", err)
	}
	if _, err := svc.Decide(context.Background(), 1, "bogus"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for unknown decision, got %v", err)
	}
	if _, err := svc.Decide(context.Background(), 999, "approved"); !errors.Is(err, domain.ErrRequestNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestVipService_ListByStatus_OldestFirst(t *testing.T) {
	store, svc, _ := newVipFixture(t)

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		if _, err := store.VipRequests().Create(context.Background(), &domain.VipRequest{
			Email:     "x@example.com",
			Status:    domain.StatusPending,
			CreatedAt: base.Add(time.Duration(2-i) * time.Minute),
		}); err != nil {
			t.Fatalf("seed request: %v", err)
		}
	}

	list, err := svc.ListByStatus(context.Background(), "pending")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 requests, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i].CreatedAt.Before(list[i-1].CreatedAt) {
			t.Fatalf("requests not ordered oldest first: %v", list)
		}
	}

	if _, err := svc.ListByStatus(context.Background(), "bogus"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for bad status, got %v", err)
	}
}

func TestVipService_Decide_ConcurrentSingleWinner(t *testing.T) {
	store, svc, _ := newVipFixture(t)
	user := seedUser(t, store, "dave")

	req, _ := svc.Submit(context.Background(), ports.SubmitVipRequestInput{
		Email:    "d@example.com",
		UserID:   &user.ID,
		CallerID: &user.ID,
	})

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Decide(context.Background(), req.ID, "approved")
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, domain.ErrAlreadyDecided):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Fatalf("expected exactly one winning decide, got %d", wins)
	}
}
