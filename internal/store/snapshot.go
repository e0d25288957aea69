// Package store holds the persisted user-state containers: the link
// page store and the watchlist store. Each store keeps its full state in
// memory and serializes the whole snapshot to a named blob on every
// mutation.
package store

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Persister reads and writes a store's serialized snapshot blob.
type Persister interface {
	// Load returns the blob saved under name, or (nil, nil) when none
	// exists yet.
	Load(name string) ([]byte, error)
	// Save overwrites the blob saved under name.
	Save(name string, data []byte) error
}

// StoreSnapshot is one persisted blob row: the entire serialized state
// of a store, keyed by store name.
type StoreSnapshot struct {
	Name      string    `gorm:"primaryKey"`
	Data      []byte    `gorm:"not null"`
	UpdatedAt time.Time
}

// SnapshotDB persists store snapshots in the application database.
type SnapshotDB struct {
	db *gorm.DB
}

func NewSnapshotDB(db *gorm.DB) *SnapshotDB {
	return &SnapshotDB{db: db}
}

func (p *SnapshotDB) Load(name string) ([]byte, error) {
	var snapshot StoreSnapshot
	err := p.db.First(&snapshot, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return snapshot.Data, nil
}

func (p *SnapshotDB) Save(name string, data []byte) error {
	return p.db.Save(&StoreSnapshot{
		Name:      name,
		Data:      data,
		UpdatedAt: time.Now(),
	}).Error
}
