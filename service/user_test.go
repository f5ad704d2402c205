package service

import (
	"context"
	"errors"
	"testing"

	"github.com/port-russell/marina-api/crypto"
	"github.com/port-russell/marina-api/data/repository"
)

func TestCreateUserHashesPassword(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	user, err := svc.User.CreateUser(ctx, "Alice", "alice@port.fr", "secret12")
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	if user.Password == "secret12" {
		t.Error("password stored in plaintext")
	}
	if !crypto.ComparePassword(user.Password, "secret12") {
		t.Error("stored hash does not verify against the password")
	}
	if user.ID.IsZero() {
		t.Error("expected an assigned id")
	}
}

func TestCreateUserValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name                      string
		username, email, password string
	}{
		{"missing username", "", "a@b.fr", "p"},
		{"missing email", "Alice", "", "p"},
		{"missing password", "Alice", "a@b.fr", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.User.CreateUser(ctx, tt.username, tt.email, tt.password); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.User.CreateUser(ctx, "Alice", "alice@port.fr", "secret12"); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	if _, err := svc.User.CreateUser(ctx, "Autre", "alice@port.fr", "autre123"); !errors.Is(err, repository.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.User.CreateUser(ctx, "Alice", "alice@port.fr", "secret12")
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	updated, err := svc.User.UpdateUser(ctx, "alice@port.fr", "Alicia", "nouveau1")
	if err != nil {
		t.Fatalf("failed to update user: %v", err)
	}

	if updated.Username != "Alicia" {
		t.Errorf("unexpected username: %q", updated.Username)
	}
	if updated.Password == created.Password {
		t.Error("password hash unchanged after update")
	}
	if !crypto.ComparePassword(updated.Password, "nouveau1") {
		t.Error("new hash does not verify against the new password")
	}
}

func TestUpdateUserKeepsPasswordWhenAbsent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.User.CreateUser(ctx, "Alice", "alice@port.fr", "secret12")
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	updated, err := svc.User.UpdateUser(ctx, "alice@port.fr", "Alicia", "")
	if err != nil {
		t.Fatalf("failed to update user: %v", err)
	}
	if updated.Password != created.Password {
		t.Error("password hash changed without a new password")
	}
}

func TestUpdateUserNotFound(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.User.UpdateUser(context.Background(), "nobody@port.fr", "X", ""); !errors.Is(err, repository.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDeleteUserTwice(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.User.CreateUser(ctx, "Alice", "alice@port.fr", "secret12"); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	if err := svc.User.DeleteUser(ctx, "alice@port.fr"); err != nil {
		t.Fatalf("failed to delete user: %v", err)
	}
	if err := svc.User.DeleteUser(ctx, "alice@port.fr"); !errors.Is(err, repository.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound on second delete, got %v", err)
	}
}

func TestEnsureAdminUserIdempotent(t *testing.T) {
	svc, d := newTestService()
	ctx := context.Background()
	admin := newTestConfig().Admin

	if err := svc.User.EnsureAdminUser(ctx, admin); err != nil {
		t.Fatalf("failed to ensure admin user: %v", err)
	}
	if err := svc.User.EnsureAdminUser(ctx, admin); err != nil {
		t.Fatalf("second ensure failed: %v", err)
	}

	users, err := d.UserRepo.List(ctx)
	if err != nil {
		t.Fatalf("failed to list users: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
	if users[0].Email != admin.Email {
		t.Errorf("unexpected admin email: %q", users[0].Email)
	}
	if !crypto.ComparePassword(users[0].Password, admin.Password) {
		t.Error("admin password hash does not verify")
	}
}
