package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/monsterwith/monstermedia/internal/core/domain"
	"github.com/monsterwith/monstermedia/internal/infrastructure/memory"
)

func TestEntitlementService_GrantVip_Idempotent(t *testing.T) {
	store := memory.NewStore()
	svc := NewEntitlementService(store.Users(), zerolog.Nop())
	user := seedUser(t, store, "alice")

	first, err := svc.GrantVip(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("first grant: %v", err)
	}
	if !first.IsVip {
		t.Fatalf("expected vip after grant")
	}

	second, err := svc.GrantVip(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("second grant should be a no-op, got %v", err)
	}
	if !second.IsVip {
		t.Fatalf("expected vip to remain set")
	}
}

func TestEntitlementService_GrantVip_UnknownUser(t *testing.T) {
	store := memory.NewStore()
	svc := NewEntitlementService(store.Users(), zerolog.Nop())

	if _, err := svc.GrantVip(context.Background(), 404); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
