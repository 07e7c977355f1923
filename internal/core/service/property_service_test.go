package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/casabierta/realty-api/internal/core/domain"
	"github.com/casabierta/realty-api/internal/core/ports"
)

func TestPropertyService_Create_ClearsAllowListWhenPublic(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := NewPropertyService(repo, zerolog.Nop())
	admin := domain.Identity{UID: "boss", Role: domain.RoleAdmin}

	id, err := svc.CreateProperty(context.Background(), ports.PropertyInput{
		Title:        "Sunny loft",
		Price:        250000,
		Currency:     "USD",
		IsPublic:     true,
		AllowedUsers: []string{"u1", "u2"},
	}, admin)
	if err != nil {
		t.Fatalf("CreateProperty returned error: %v", err)
	}

	stored, err := repo.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if stored.AllowedUsers != nil {
		t.Fatalf("public record must have no allow-list, got %v", stored.AllowedUsers)
	}
	if stored.CreatedBy != "boss" {
		t.Fatalf("expected creator uid, got %q", stored.CreatedBy)
	}
}

func TestPropertyService_Create_KeepsAllowListWhenPrivate(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := NewPropertyService(repo, zerolog.Nop())
	admin := domain.Identity{UID: "boss", Role: domain.RoleAdmin}

	id, err := svc.CreateProperty(context.Background(), ports.PropertyInput{
		Title:        "Private villa",
		Price:        900000,
		Currency:     "USD",
		IsPublic:     false,
		AllowedUsers: []string{"u1"},
	}, admin)
	if err != nil {
		t.Fatalf("CreateProperty returned error: %v", err)
	}

	stored, _ := repo.Get(context.Background(), id)
	if len(stored.AllowedUsers) != 1 || stored.AllowedUsers[0] != "u1" {
		t.Fatalf("allow-list not preserved: %v", stored.AllowedUsers)
	}
}

func TestPropertyService_Update_PreservesProvenance(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := NewPropertyService(repo, zerolog.Nop())
	creator := domain.Identity{UID: "creator", Role: domain.RoleAdmin}
	editor := domain.Identity{UID: "editor", Role: domain.RoleAdmin}

	id, _ := svc.CreateProperty(context.Background(), ports.PropertyInput{
		Title: "Townhouse", Price: 1, Currency: "USD", IsPublic: true,
	}, creator)
	before, _ := repo.Get(context.Background(), id)

	time.Sleep(time.Millisecond)
	err := svc.UpdateProperty(context.Background(), id, ports.PropertyInput{
		Title: "Townhouse (renovated)", Price: 2, Currency: "USD", IsPublic: true,
	}, editor)
	if err != nil {
		t.Fatalf("UpdateProperty returned error: %v", err)
	}

	after, _ := repo.Get(context.Background(), id)
	if after.Title != "Townhouse (renovated)" {
		t.Fatalf("title not updated: %q", after.Title)
	}
	if after.CreatedBy != "creator" || !after.CreatedAt.Equal(before.CreatedAt) {
		t.Fatalf("provenance not preserved: %+v", after)
	}
	if !after.UpdatedAt.After(before.UpdatedAt) {
		t.Fatalf("updated_at not advanced")
	}
}

func TestPropertyService_Update_NotFound(t *testing.T) {
	svc := NewPropertyService(newStubPropertyRepo(), zerolog.Nop())
	admin := domain.Identity{UID: "boss", Role: domain.RoleAdmin}

	err := svc.UpdateProperty(context.Background(), "missing", ports.PropertyInput{
		Title: "x", Price: 1, Currency: "USD",
	}, admin)
	if !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestPropertyService_Delete(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := NewPropertyService(repo, zerolog.Nop())
	admin := domain.Identity{UID: "boss", Role: domain.RoleAdmin}

	id, _ := svc.CreateProperty(context.Background(), ports.PropertyInput{
		Title: "Bungalow", Price: 1, Currency: "USD", IsPublic: true,
	}, admin)

	if err := svc.DeleteProperty(context.Background(), id, admin); err != nil {
		t.Fatalf("DeleteProperty returned error: %v", err)
	}
	if _, err := repo.Get(context.Background(), id); !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Fatalf("record still present after delete")
	}
	if err := svc.DeleteProperty(context.Background(), id, admin); !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound on double delete, got %v", err)
	}
}

func TestPropertyService_List_VisibilityScoping(t *testing.T) {
	repo := newStubPropertyRepo()
	repo.byID["pub"] = &domain.Property{ID: "pub", IsPublic: true}
	repo.byID["mine"] = &domain.Property{ID: "mine", IsPublic: false, AllowedUsers: []string{"u1"}}
	repo.byID["other"] = &domain.Property{ID: "other", IsPublic: false, AllowedUsers: []string{"u2"}}
	svc := NewPropertyService(repo, zerolog.Nop())

	cases := []struct {
		name     string
		identity *domain.Identity
		want     int
	}{
		{"anonymous sees public only", nil, 1},
		{"member sees public plus own allow-listed", &domain.Identity{UID: "u1", Role: domain.RolePublic}, 2},
		{"admin sees everything", &domain.Identity{UID: "boss", Role: domain.RoleAdmin}, 3},
	}
	for _, tc := range cases {
		result, err := svc.ListProperties(context.Background(), ports.ListPropertiesInput{Identity: tc.identity})
		if err != nil {
			t.Fatalf("%s: ListProperties returned error: %v", tc.name, err)
		}
		if len(result.Items) != tc.want {
			t.Fatalf("%s: expected %d items, got %d", tc.name, tc.want, len(result.Items))
		}
	}
}

func TestPropertyService_List_PaginationDefaults(t *testing.T) {
	repo := newStubPropertyRepo()
	repo.byID["pub"] = &domain.Property{ID: "pub", IsPublic: true}
	svc := NewPropertyService(repo, zerolog.Nop())

	result, err := svc.ListProperties(context.Background(), ports.ListPropertiesInput{Page: -3, Limit: 5000})
	if err != nil {
		t.Fatalf("ListProperties returned error: %v", err)
	}
	if result.Page != 1 {
		t.Fatalf("expected page clamped to 1, got %d", result.Page)
	}
	if result.Limit != maxListLimit {
		t.Fatalf("expected limit capped at %d, got %d", maxListLimit, result.Limit)
	}
}
