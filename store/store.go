// Package store persists named tokenomics projects in a local SQLite
// database. A project's payload is the YAML-serialized staking model, stored
// as an opaque blob: the store never interprets it, so model schema changes
// do not require migrations here.
package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is one saved tokenomics design.
type Project struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"uniqueIndex"`
	Archetype string    `gorm:"index"`
	Spec      []byte    // YAML staking model, opaque to the store
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ErrNotFound is returned when no project matches the requested name.
var ErrNotFound = errors.New("project not found")

// Store wraps the project database.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the project database at path and runs the
// schema migration. Use "file::memory:?cache=shared" for an in-memory store.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("opening project store: %w", err)
	}
	if err := db.AutoMigrate(&Project{}); err != nil {
		return nil, fmt.Errorf("migrating project store: %w", err)
	}
	return &Store{db: db}, nil
}

// Save upserts a project by name: existing projects keep their ID and get the
// new archetype and spec blob, new names are inserted with a fresh UUID.
func (s *Store) Save(name, archetype string, spec []byte) (*Project, error) {
	var p Project
	err := s.db.Where("name = ?", name).First(&p).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		p = Project{ID: uuid.New(), Name: name}
	case err != nil:
		return nil, fmt.Errorf("looking up project %q: %w", name, err)
	}
	p.Archetype = archetype
	p.Spec = append([]byte(nil), spec...)
	if err := s.db.Save(&p).Error; err != nil {
		return nil, fmt.Errorf("saving project %q: %w", name, err)
	}
	return &p, nil
}

// Get returns the project with the given name, or ErrNotFound.
func (s *Store) Get(name string) (*Project, error) {
	var p Project
	err := s.db.Where("name = ?", name).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading project %q: %w", name, err)
	}
	return &p, nil
}

// List returns all projects ordered by name.
func (s *Store) List() ([]Project, error) {
	var projects []Project
	if err := s.db.Order("name").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}

// Delete removes the project with the given name, or returns ErrNotFound.
func (s *Store) Delete(name string) error {
	res := s.db.Where("name = ?", name).Delete(&Project{})
	if res.Error != nil {
		return fmt.Errorf("deleting project %q: %w", name, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
