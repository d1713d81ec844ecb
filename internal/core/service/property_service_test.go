package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/terravista/realty-api/internal/core/domain"
	"github.com/terravista/realty-api/internal/core/ports"
)

type stubPropertyRepo struct {
	byID       map[string]*domain.Property
	increments map[string]int
	nextID     int
}

func newStubPropertyRepo() *stubPropertyRepo {
	return &stubPropertyRepo{
		byID:       make(map[string]*domain.Property),
		increments: make(map[string]int),
	}
}

func (r *stubPropertyRepo) Insert(_ context.Context, p *domain.Property) (*domain.Property, error) {
	r.nextID++
	clone := *p
	clone.ID = "prop_" + strconv.Itoa(r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPropertyRepo) FindByID(_ context.Context, id string) (*domain.Property, error) {
	if p, ok := r.byID[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrPropertyNotFound
}

func (r *stubPropertyRepo) FindBySlug(_ context.Context, slug string) (*domain.Property, error) {
	for _, p := range r.byID {
		if p.Slug == slug {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrPropertyNotFound
}

func (r *stubPropertyRepo) List(_ context.Context, filter ports.PropertyFilter) ([]domain.Property, int64, error) {
	var out []domain.Property
	for _, p := range r.byID {
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.Featured != nil && p.Featured != *filter.Featured {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubPropertyRepo) Update(_ context.Context, p *domain.Property) error {
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrPropertyNotFound
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubPropertyRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrPropertyNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubPropertyRepo) IncrementViews(_ context.Context, id string) error {
	if p, ok := r.byID[id]; ok {
		p.Views++
		r.increments[id]++
		return nil
	}
	return domain.ErrPropertyNotFound
}

func validPropertyInput() ports.CreatePropertyInput {
	return ports.CreatePropertyInput{
		Title:       "Vista Gardens",
		Slug:        "vista-gardens",
		Description: "Gated community with lake views",
		Location:    "North Ridge",
		PriceRange:  "$250k-$420k",
		Status:      string(domain.PropertyAvailable),
		Featured:    true,
	}
}

func TestPropertyService_CreateRejectsBadStatus(t *testing.T) {
	svc := NewPropertyService(newStubPropertyRepo(), zerolog.Nop())

	input := validPropertyInput()
	input.Status = "under_construction"
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestPropertyService_GetBySlugCountsView(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := NewPropertyService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), validPropertyInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := svc.GetBySlug(context.Background(), "vista-gardens")
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("resolved wrong property: %s", got.ID)
	}
	if got.Views != 1 || repo.increments[created.ID] != 1 {
		t.Fatalf("expected one counted view, got views=%d increments=%d", got.Views, repo.increments[created.ID])
	}
}

func TestPropertyService_UpdateMissing(t *testing.T) {
	svc := NewPropertyService(newStubPropertyRepo(), zerolog.Nop())

	if _, err := svc.Update(context.Background(), "nope", validPropertyInput()); !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestPropertyService_ListClampsPagination(t *testing.T) {
	svc := NewPropertyService(newStubPropertyRepo(), zerolog.Nop())

	page, err := svc.List(context.Background(), ports.PropertyFilter{Page: -3, Limit: 5000})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Page != 1 || page.Limit != 20 {
		t.Fatalf("expected clamped pagination, got page=%d limit=%d", page.Page, page.Limit)
	}
}

func TestPropertyService_ListRejectsBadStatus(t *testing.T) {
	svc := NewPropertyService(newStubPropertyRepo(), zerolog.Nop())

	if _, err := svc.List(context.Background(), ports.PropertyFilter{Status: "weird"}); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}
