package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Repositories groups the repositories bound to one database handle
type Repositories struct {
	Employees   EmployeeRepositoryInterface
	Projects    ProjectRepositoryInterface
	Allocations AllocationRepositoryInterface
	AnnualLeave AnnualLeaveRepositoryInterface
	Markers     CalendarMarkerRepositoryInterface
	Users       UserRepositoryInterface
}

// NewRepositories binds every repository to db
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Employees:   NewEmployeeRepository(db),
		Projects:    NewProjectRepository(db),
		Allocations: NewAllocationRepository(db),
		AnnualLeave: NewAnnualLeaveRepository(db),
		Markers:     NewCalendarMarkerRepository(db),
		Users:       NewUserRepository(db),
	}
}

// Store opens read snapshots over the database
type Store struct {
	db *gorm.DB
}

// NewStore creates a new store
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ReadSnapshot runs fn inside a read-only repeatable-read transaction so every
// query fn issues observes the same committed state.
func (s *Store) ReadSnapshot(ctx context.Context, fn func(repos *Repositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
}
