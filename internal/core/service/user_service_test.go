package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/monsterwith/monstermedia/internal/core/domain"
	"github.com/monsterwith/monstermedia/internal/core/ports"
	"github.com/monsterwith/monstermedia/internal/infrastructure/memory"
)

func TestUserService_Update_PartialPatch(t *testing.T) {
	store := memory.NewStore()
	svc := NewUserService(store.Users(), NewEntitlementService(store.Users(), zerolog.Nop()), zerolog.Nop())
	user := seedUser(t, store, "alice")

	vip := true
	updated, err := svc.Update(context.Background(), user.ID, ports.UserPatch{IsVip: &vip})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.IsVip {
		t.Fatalf("expected vip set")
	}
	if updated.Username != "alice" || updated.IsAdmin {
		t.Fatalf("patch touched fields it should not: %+v", updated)
	}

	// Clearing works the same way; absent fields stay put.
	off := false
	admin := true
	updated, err = svc.Update(context.Background(), user.ID, ports.UserPatch{IsVip: &off, IsAdmin: &admin})
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	if updated.IsVip || !updated.IsAdmin {
		t.Fatalf("unexpected flags: %+v", updated)
	}

	if _, err := svc.Update(context.Background(), 999, ports.UserPatch{IsVip: &vip}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUserService_List_SortedByID(t *testing.T) {
	store := memory.NewStore()
	svc := NewUserService(store.Users(), NewEntitlementService(store.Users(), zerolog.Nop()), zerolog.Nop())
	seedUser(t, store, "alice")
	seedUser(t, store, "bob")

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 2 || users[0].ID > users[1].ID {
		t.Fatalf("unexpected users: %+v", users)
	}
}

func TestThemeService_Replace(t *testing.T) {
	store := memory.NewStore()
	svc := NewThemeService(store.Themes())

	if _, err := svc.Active(context.Background()); !errors.Is(err, domain.ErrThemeNotFound) {
		t.Fatalf("expected no active theme, got %v", err)
	}

	first, err := svc.Replace(context.Background(), &domain.ThemeSettings{PrimaryColor: "#7C4DFF"})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	second, err := svc.Replace(context.Background(), &domain.ThemeSettings{PrimaryColor: "#FF4081"})
	if err != nil {
		t.Fatalf("second replace: %v", err)
	}

	active, err := svc.Active(context.Background())
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if active.ID != second.ID || active.ID == first.ID {
		t.Fatalf("expected latest theme active, got %+v", active)
	}
}
