package users

import (
	"context"
	"errors"
	"testing"
)

type testRepo struct {
	profile  Profile
	updated  ProfileInput
	password string
}

func (r *testRepo) Me(ctx context.Context) (Profile, error) { return r.profile, nil }

func (r *testRepo) UpdateProfile(ctx context.Context, in ProfileInput) (Profile, error) {
	r.updated = in
	p := r.profile
	p.Email, p.FirstName, p.LastName, p.Phone = in.Email, in.FirstName, in.LastName, in.Phone
	return p, nil
}

func (r *testRepo) ChangePassword(ctx context.Context, current, next string) error {
	if current != r.password {
		return ErrWrongPassword
	}
	r.password = next
	return nil
}

func TestService_UpdateProfile_NormalizesPhone(t *testing.T) {
	repo := &testRepo{profile: Profile{ID: 1, Username: "anna"}}
	svc := NewService(repo)

	p, err := svc.UpdateProfile(context.Background(), ProfileInput{
		Email:     " anna@example.com ",
		FirstName: "Anna",
		LastName:  "Ivanova",
		Phone:     "9161112233",
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if repo.updated.Phone != "+7 916 111 22 33" || p.Email != "anna@example.com" {
		t.Fatalf("unexpected update %+v", repo.updated)
	}
}

func TestService_UpdateProfile_RejectsPartialPhone(t *testing.T) {
	svc := NewService(&testRepo{})
	_, err := svc.UpdateProfile(context.Background(), ProfileInput{
		Email:     "anna@example.com",
		FirstName: "Anna",
		LastName:  "Ivanova",
		Phone:     "+7 916 111",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_ChangePassword(t *testing.T) {
	repo := &testRepo{password: "secret1"}
	svc := NewService(repo)
	ctx := context.Background()

	if err := svc.ChangePassword(ctx, "secret1", "123"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("short password: expected ErrInvalidInput, got %v", err)
	}
	if err := svc.ChangePassword(ctx, "secret1", "secret1"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("same password: expected ErrInvalidInput, got %v", err)
	}
	if err := svc.ChangePassword(ctx, "wrong", "secret2"); !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
	if err := svc.ChangePassword(ctx, "secret1", "secret2"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	if repo.password != "secret2" {
		t.Fatalf("password not changed")
	}
}
