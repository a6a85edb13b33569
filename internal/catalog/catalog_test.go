package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTestCatalog(t *testing.T) *Catalog {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	c, err := Open(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("failed to open test catalog: %v", err)
	}
	t.Cleanup(func() {
		if err := c.Close(); err != nil {
			t.Errorf("failed to close test catalog: %v", err)
		}
	})
	return c
}

func testAsset(name string) Asset {
	return Asset{
		Filename:   name,
		Width:      4000,
		Height:     3000,
		PrimaryRef: "/photos/originals/" + name,
	}
}

func TestCatalogUpsertAssignsID(t *testing.T) {
	c := openTestCatalog(t)
	ctx := context.Background()

	asset := testAsset("a.jpg")
	if err := c.Upsert(ctx, &asset); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if asset.ID == 0 {
		t.Error("Upsert should assign a non-zero id")
	}
}

func TestCatalogUpsertRejectsInvalid(t *testing.T) {
	c := openTestCatalog(t)

	asset := Asset{Filename: "a.jpg"} // no primary ref, no dimensions
	if err := c.Upsert(context.Background(), &asset); err == nil {
		t.Error("Upsert should reject an invalid asset")
	}
}

func TestCatalogUpsertUpdatesOnConflict(t *testing.T) {
	c := openTestCatalog(t)
	ctx := context.Background()

	asset := testAsset("a.jpg")
	if err := c.Upsert(ctx, &asset); err != nil {
		t.Fatalf("first Upsert failed: %v", err)
	}
	firstID := asset.ID

	updated := asset
	updated.ID = 0
	updated.Width = 8000
	updated.Height = 6000
	updated.FallbackRef = "/photos/fallback/a.jpg"
	if err := c.Upsert(ctx, &updated); err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}

	if updated.ID != firstID {
		t.Errorf("conflicting Upsert changed id: %d -> %d", firstID, updated.ID)
	}

	got, err := c.Get(ctx, firstID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Width != 8000 || got.Height != 6000 {
		t.Errorf("updated dimensions = %dx%d, want 8000x6000", got.Width, got.Height)
	}
	if got.FallbackRef != "/photos/fallback/a.jpg" {
		t.Errorf("updated fallback ref = %q", got.FallbackRef)
	}

	count, err := c.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Count() = %d, want 1 after conflicting upsert", count)
	}
}

func TestCatalogGetNotFound(t *testing.T) {
	c := openTestCatalog(t)

	_, err := c.Get(context.Background(), 9999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get of missing id error = %v, want ErrNotFound", err)
	}
}

func TestCatalogGetRoundTrip(t *testing.T) {
	c := openTestCatalog(t)
	ctx := context.Background()

	asset := testAsset("roundtrip.heic")
	asset.FallbackRef = "/photos/fallback/roundtrip.heic"
	if err := c.Upsert(ctx, &asset); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	got, err := c.Get(ctx, asset.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != asset {
		t.Errorf("Get() = %+v, want %+v", got, asset)
	}
}

func TestCatalogListOrdering(t *testing.T) {
	c := openTestCatalog(t)
	ctx := context.Background()

	for _, name := range []string{"zebra.jpg", "Apple.jpg", "mango.jpg"} {
		asset := testAsset(name)
		if err := c.Upsert(ctx, &asset); err != nil {
			t.Fatalf("Upsert %s failed: %v", name, err)
		}
	}

	assets, err := c.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := []string{"Apple.jpg", "mango.jpg", "zebra.jpg"}
	if len(assets) != len(want) {
		t.Fatalf("List returned %d assets, want %d", len(assets), len(want))
	}
	for i, name := range want {
		if assets[i].Filename != name {
			t.Errorf("assets[%d].Filename = %q, want %q (case-insensitive ordering)", i, assets[i].Filename, name)
		}
	}
}

func TestCatalogListEmpty(t *testing.T) {
	c := openTestCatalog(t)

	assets, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(assets) != 0 {
		t.Errorf("List on empty catalog returned %d assets", len(assets))
	}
}

func TestCatalogDelete(t *testing.T) {
	c := openTestCatalog(t)
	ctx := context.Background()

	var ids []int64
	for _, name := range []string{"a.jpg", "b.jpg", "c.jpg"} {
		asset := testAsset(name)
		if err := c.Upsert(ctx, &asset); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
		ids = append(ids, asset.ID)
	}

	deleted, err := c.Delete(ctx, ids[:2])
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted != 2 {
		t.Errorf("Delete() = %d, want 2", deleted)
	}

	count, err := c.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Count after delete = %d, want 1", count)
	}
}

func TestCatalogDeleteMissingIDs(t *testing.T) {
	c := openTestCatalog(t)
	ctx := context.Background()

	asset := testAsset("a.jpg")
	if err := c.Upsert(ctx, &asset); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	deleted, err := c.Delete(ctx, []int64{asset.ID, 9998, 9999})
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("Delete() = %d, want 1 (missing ids skipped silently)", deleted)
	}
}

func TestCatalogDeleteEmpty(t *testing.T) {
	c := openTestCatalog(t)

	deleted, err := c.Delete(context.Background(), nil)
	if err != nil {
		t.Fatalf("Delete of empty slice failed: %v", err)
	}
	if deleted != 0 {
		t.Errorf("Delete() = %d, want 0", deleted)
	}
}

func TestCatalogStatsSource(t *testing.T) {
	c := openTestCatalog(t)
	ctx := context.Background()

	withFallback := testAsset("a.heic")
	withFallback.FallbackRef = "/photos/fallback/a.heic"
	without := testAsset("b.jpg")

	for _, asset := range []*Asset{&withFallback, &without} {
		if err := c.Upsert(ctx, asset); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
	}

	stats := NewStatsSource(c).GetStats()
	if stats.TotalAssets != 2 {
		t.Errorf("TotalAssets = %d, want 2", stats.TotalAssets)
	}
	if stats.TotalFallbacks != 1 {
		t.Errorf("TotalFallbacks = %d, want 1", stats.TotalFallbacks)
	}
}
