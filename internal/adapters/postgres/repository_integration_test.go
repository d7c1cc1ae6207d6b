package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"listing-service/internal/core/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TestPropertyRepository_Integration гоняет полный цикл репозитория против
// живого PostgreSQL из DATABASE_URL. Без переменной тест пропускается.
func TestPropertyRepository_Integration(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL is empty; set it to a live PostgreSQL to run integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect pool: %v", err)
	}
	defer pool.Close()

	var exists bool
	err = pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT FROM information_schema.tables WHERE table_name = 'properties')`,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("check schema: %v", err)
	}
	if !exists {
		t.Skip("database schema missing; apply migrations/0001_create_properties.sql first")
	}

	repo, err := NewPostgresPropertyAdapter(pool)
	if err != nil {
		t.Fatalf("NewPostgresPropertyAdapter: %v", err)
	}

	draft := fingerprintDraft()
	draft.Description = "Integration round-trip listing"
	draft.Price = 125000
	draft.Contact = domain.Contact{Name: "Ann", Phone: "+375291112233", Email: "ann@example.com"}
	draft.Images = []string{"https://cdn.example.com/one.jpg"}
	draft.Amenities = []string{"Parking"}

	created, err := repo.Add(ctx, draft)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	// Чистим за собой независимо от исхода остальных шагов.
	defer pool.Exec(context.Background(), `DELETE FROM properties WHERE id = $1`, created.ID)

	loaded, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if loaded == nil {
		t.Fatal("created property not found")
	}
	if loaded.Title != draft.Title || loaded.Price != draft.Price {
		t.Errorf("loaded %+v does not match draft", loaded)
	}
	if len(loaded.Images) != 1 || loaded.Images[0] != draft.Images[0] {
		t.Errorf("Images = %v", loaded.Images)
	}

	newTitle := "Renamed integration listing"
	updated, err := repo.Update(ctx, created.ID, domain.PropertyPatch{Title: &newTitle})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated == nil || updated.Title != newTitle {
		t.Errorf("Update result = %+v", updated)
	}
	if updated.Description != draft.Description {
		t.Errorf("partial update must not touch description, got %q", updated.Description)
	}

	found, err := repo.Search(ctx, domain.SearchQuery{Search: "Renamed integration"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	var hit bool
	for _, p := range found {
		if p.ID == created.ID {
			hit = true
			break
		}
	}
	if !hit {
		t.Error("updated listing not found via search")
	}

	deleted, err := repo.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted == nil || deleted.ID != created.ID {
		t.Errorf("Delete snapshot = %+v", deleted)
	}

	gone, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID after delete: %v", err)
	}
	if gone != nil {
		t.Error("expected nil for deleted listing")
	}
}
