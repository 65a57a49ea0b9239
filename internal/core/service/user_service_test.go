package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bdhub/shoe-api/internal/core/domain"
)

func newUserService(repo *stubUserRepo) *UserService {
	return NewUserService(repo, NewRoleAuthority(repo, discardLogger), discardLogger)
}

func TestUserService_Register_Idempotent(t *testing.T) {
	repo := &stubUserRepo{}
	svc := newUserService(repo)

	first, err := svc.Register(context.Background(), &domain.User{Name: "Alice", Email: "a@x.com"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if first.Existed || first.InsertedID == "" {
		t.Fatalf("expected a fresh insert, got %+v", first)
	}

	second, err := svc.Register(context.Background(), &domain.User{Name: "Alice again", Email: "a@x.com"})
	if err != nil {
		t.Fatalf("register again: %v", err)
	}
	if !second.Existed || second.InsertedID != "" {
		t.Fatalf("expected existing user, got %+v", second)
	}
	if repo.creates != 1 {
		t.Fatalf("expected exactly one insert, got %d", repo.creates)
	}
}

func TestUserService_Register_DropsClientRole(t *testing.T) {
	repo := &stubUserRepo{}
	svc := newUserService(repo)

	if _, err := svc.Register(context.Background(), &domain.User{Email: "a@x.com", Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if repo.users[0].Role != "" {
		t.Fatalf("client-supplied role persisted: %q", repo.users[0].Role)
	}
}

func TestUserService_Register_StorageFailure(t *testing.T) {
	repo := &stubUserRepo{findErr: errStorage}
	svc := newUserService(repo)

	if _, err := svc.Register(context.Background(), &domain.User{Email: "a@x.com"}); !errors.Is(err, errStorage) {
		t.Fatalf("expected storage error, got %v", err)
	}
	if repo.creates != 0 {
		t.Fatalf("nothing should be inserted on lookup failure")
	}
}

func TestUserService_AdminStatus(t *testing.T) {
	repo := &stubUserRepo{users: []*domain.User{
		{ID: "1", Email: "admin@x.com", Role: domain.RoleAdmin},
		{ID: "2", Email: "user@x.com"},
	}}
	svc := newUserService(repo)

	admin, err := svc.AdminStatus(asUser("admin@x.com"), "admin@x.com")
	if err != nil || !admin {
		t.Fatalf("expected admin=true, got %v %v", admin, err)
	}

	admin, err = svc.AdminStatus(asUser("user@x.com"), "user@x.com")
	if err != nil || admin {
		t.Fatalf("expected admin=false, got %v %v", admin, err)
	}

	admin, err = svc.AdminStatus(asUser("ghost@x.com"), "ghost@x.com")
	if err != nil || admin {
		t.Fatalf("unknown identity must be non-admin, got %v %v", admin, err)
	}
}

func TestUserService_AdminStatus_OtherEmailForbidden(t *testing.T) {
	repo := &stubUserRepo{users: []*domain.User{{ID: "1", Email: "admin@x.com", Role: domain.RoleAdmin}}}
	svc := newUserService(repo)

	for _, target := range []string{"admin@x.com", "USER@x.com", "user@x.com "} {
		if _, err := svc.AdminStatus(asUser("user@x.com"), target); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("%q: expected ErrForbidden, got %v", target, err)
		}
	}
	if repo.finds != 0 {
		t.Fatalf("no lookup should happen on a forbidden request, got %d", repo.finds)
	}
}

func TestUserService_AdminStatus_NoIdentity(t *testing.T) {
	svc := newUserService(&stubUserRepo{})
	if _, err := svc.AdminStatus(context.Background(), "a@x.com"); !errors.Is(err, domain.ErrIdentityNotBound) {
		t.Fatalf("expected ErrIdentityNotBound, got %v", err)
	}
}

func TestUserService_Promote(t *testing.T) {
	repo := &stubUserRepo{users: []*domain.User{{ID: "2", Email: "user@x.com"}}}
	svc := newUserService(repo)

	res, err := svc.Promote(context.Background(), "2")
	if err != nil {
		t.Fatalf("promote: %v", err)
	}
	if res.Matched != 1 || res.Modified != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if repo.users[0].Role != domain.RoleAdmin {
		t.Fatalf("role not set")
	}

	res, err = svc.Promote(context.Background(), "2")
	if err != nil || res.Modified != 0 {
		t.Fatalf("second promotion should be a no-op, got %+v %v", res, err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := &stubUserRepo{users: []*domain.User{{ID: "2", Email: "user@x.com"}}}
	svc := newUserService(repo)

	res, err := svc.Delete(context.Background(), "2")
	if err != nil || res.Deleted != 1 {
		t.Fatalf("expected one deletion, got %+v %v", res, err)
	}
	res, err = svc.Delete(context.Background(), "2")
	if err != nil || res.Deleted != 0 {
		t.Fatalf("expected zero deletions, got %+v %v", res, err)
	}
}
