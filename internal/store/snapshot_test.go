package store

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&StoreSnapshot{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return db
}

func TestSnapshotDBRoundTrip(t *testing.T) {
	p := NewSnapshotDB(testDB(t))

	if err := p.Save("test-store", []byte(`{"links":[]}`)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := p.Load("test-store")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(data) != `{"links":[]}` {
		t.Errorf("Expected saved blob back, got %s", data)
	}
}

func TestSnapshotDBOverwrite(t *testing.T) {
	p := NewSnapshotDB(testDB(t))

	if err := p.Save("test-store", []byte("one")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := p.Save("test-store", []byte("two")); err != nil {
		t.Fatalf("Overwrite failed: %v", err)
	}

	data, err := p.Load("test-store")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(data) != "two" {
		t.Errorf("Expected latest blob, got %s", data)
	}
}

func TestSnapshotDBMissing(t *testing.T) {
	p := NewSnapshotDB(testDB(t))

	data, err := p.Load("never-saved")
	if err != nil {
		t.Fatalf("Missing blob must not be an error, got %v", err)
	}
	if data != nil {
		t.Errorf("Expected nil for a missing blob, got %s", data)
	}
}

func TestLinkStoreWithSQLitePersister(t *testing.T) {
	p := NewSnapshotDB(testDB(t))

	s := NewLinkStore(p)
	s.AddLink("A", "http://a")

	reloaded := NewLinkStore(p)
	links := reloaded.Links()
	if len(links) != 1 || links[0].Title != "A" {
		t.Errorf("Expected rehydrated link A, got %+v", links)
	}
}
