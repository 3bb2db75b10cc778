package brew

import (
	"context"
	"errors"
	"testing"

	"brewshop/internal/domain"
)

type stubRepo struct {
	brews  []domain.Brew
	err    error
	lastID string
}

func (s *stubRepo) List(context.Context) ([]domain.Brew, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.Brew, len(s.brews))
	copy(out, s.brews)
	return out, nil
}

func (s *stubRepo) GetByID(_ context.Context, id string) (*domain.Brew, error) {
	s.lastID = id
	for _, b := range s.brews {
		if b.ID == id {
			b := b
			return &b, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubRepo) Upsert(_ context.Context, b domain.Brew) (*domain.Brew, error) {
	return &b, nil
}

func TestList_PrefixesRelativeImages(t *testing.T) {
	repo := &stubRepo{brews: []domain.Brew{
		{ID: "1", Name: "Espresso", Image: domain.Image{URL: "/uploads/e.jpg"}},
		{ID: "2", Name: "Mocha", Image: domain.Image{URL: "https://cdn.example.com/m.jpg"}},
		{ID: "3", Name: "Drip"},
	}}
	svc := New(repo, "http://files.local/")

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got[0].Image.URL != "http://files.local/uploads/e.jpg" {
		t.Fatalf("unexpected url %q", got[0].Image.URL)
	}
	if got[1].Image.URL != "https://cdn.example.com/m.jpg" {
		t.Fatalf("absolute url must be kept, got %q", got[1].Image.URL)
	}
	if got[2].Image.URL != "" {
		t.Fatalf("empty url must stay empty, got %q", got[2].Image.URL)
	}
	if repo.brews[0].Image.URL != "/uploads/e.jpg" {
		t.Fatalf("repository data must not be mutated")
	}
}

func TestGet(t *testing.T) {
	repo := &stubRepo{brews: []domain.Brew{{ID: "1", Image: domain.Image{URL: "uploads/e.jpg"}}}}
	svc := New(repo, "http://files.local")

	got, err := svc.Get(context.Background(), "1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Image.URL != "http://files.local/uploads/e.jpg" {
		t.Fatalf("unexpected url %q", got.Image.URL)
	}
	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if repo.lastID != "missing" {
		t.Fatalf("expected lookup by id, got %q", repo.lastID)
	}
}

func TestList_Error(t *testing.T) {
	boom := errors.New("db down")
	if _, err := New(&stubRepo{err: boom}, "").List(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected repo error, got %v", err)
	}
}
