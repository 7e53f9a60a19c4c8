package pets

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-admin-console/internal/domain/sessions"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	items   []Pet
	lastQ   Query
	created []Input
	mine    []Pet
}

func (r *testRepo) List(ctx context.Context, q Query) ([]Pet, error) {
	r.lastQ = q
	return r.items, nil
}

func (r *testRepo) ListMine(ctx context.Context) ([]Pet, error) {
	return r.mine, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Pet, error) {
	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return Pet{}, ErrNotFound
}

func (r *testRepo) Create(ctx context.Context, in Input) (Pet, error) {
	r.created = append(r.created, in)
	return Pet{ID: int64(len(r.items) + 1), Name: in.Name, Type: in.Type, DateOfBirth: in.DateOfBirth}, nil
}

func (r *testRepo) Update(ctx context.Context, id int64, in Input) (Pet, error) {
	return Pet{ID: id, Name: in.Name}, nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error { return nil }

func adminCtx() context.Context {
	return sessions.WithSession(context.Background(), sessions.Session{ID: "s", Roles: []string{"ADMIN"}})
}

func userCtx() context.Context {
	return sessions.WithSession(context.Background(), sessions.Session{ID: "s", Roles: []string{"USER"}})
}

// -------------------------
// Tests
// -------------------------

func TestService_List_FiltersLocallyByNameBreedAndOwner(t *testing.T) {
	repo := &testRepo{items: []Pet{
		{ID: 1, Name: "Rex", Breed: "Shepherd", OwnerName: "Anna Ivanova"},
		{ID: 2, Name: "Murka", Breed: "Siamese", OwnerName: "Petr Petrov"},
		{ID: 3, Name: "Kesha", Breed: "Budgie", OwnerName: "Anna Smirnova"},
	}}
	svc := NewService(repo)

	got, err := svc.List(userCtx(), ListFilter{Type: TypeDog, OwnerID: 7, Query: " ANNA "})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if repo.lastQ.Type != TypeDog || repo.lastQ.OwnerID != 7 {
		t.Fatalf("backend filters not forwarded: %+v", repo.lastQ)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("unexpected filtered pets: %+v", got)
	}

	got, _ = svc.List(userCtx(), ListFilter{Query: "siam"})
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected breed match, got %+v", got)
	}

	got, _ = svc.List(userCtx(), ListFilter{Query: "   "})
	if len(got) != 3 {
		t.Fatalf("blank query must return everything, got %d", len(got))
	}
}

func TestService_Create_RequiresAdmin(t *testing.T) {
	svc := NewService(&testRepo{})
	_, err := svc.Create(userCtx(), Input{})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestService_Create_ValidatesAndCleans(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)
	now := time.Date(2025, 12, 22, 15, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	_, err := svc.Create(adminCtx(), Input{
		Name:        "Rex",
		Type:        "dog",
		Breed:       "Shepherd",
		OwnerID:     1,
		DateOfBirth: now,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("today is not in the past, expected ErrInvalidInput, got %v", err)
	}

	_, err = svc.Create(adminCtx(), Input{Name: "Rex", Type: "LIZARD", Breed: "x", OwnerID: 1, DateOfBirth: now.AddDate(-1, 0, 0)})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown type, expected ErrInvalidInput, got %v", err)
	}

	p, err := svc.Create(adminCtx(), Input{
		Name:        "  Rex ",
		Type:        "dog",
		Breed:       "Shepherd",
		OwnerID:     1,
		DateOfBirth: time.Date(2020, 5, 1, 13, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	in := repo.created[0]
	if in.Name != "Rex" || in.Type != TypeDog || in.DateOfBirth.Hour() != 0 {
		t.Fatalf("input not cleaned: %+v", in)
	}
	if svc.Age(p) != 5 {
		t.Fatalf("expected age 5, got %d", svc.Age(p))
	}
}

func TestAgeAt(t *testing.T) {
	dob := time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		now  time.Time
		want int
	}{
		{time.Date(2021, 6, 14, 0, 0, 0, 0, time.UTC), 0},
		{time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC), 1},
		{time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), 5},
		{time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC), 0},
	}
	for _, c := range cases {
		if got := AgeAt(dob, c.now); got != c.want {
			t.Fatalf("AgeAt(%v) = %d, want %d", c.now, got, c.want)
		}
	}
	if AgeAt(time.Time{}, time.Now()) != 0 {
		t.Fatalf("zero dob must be age 0")
	}
}

func TestParseType(t *testing.T) {
	if got, ok := ParseType(" hamster "); !ok || got != TypeHamster {
		t.Fatalf("ParseType hamster = %q %v", got, ok)
	}
	if _, ok := ParseType("dragon"); ok {
		t.Fatalf("dragon must be unknown")
	}
}
