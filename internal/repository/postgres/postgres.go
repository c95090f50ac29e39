package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"boardlink-backend/internal/repository"

	_ "github.com/lib/pq"
)

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx.
// Repositories are written against it so the same code runs pooled or
// inside an open transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db    *sql.DB
	repos *repository.Repositories
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:    db,
		repos: newRepositories(db),
	}
}

func newRepositories(dbtx DBTX) *repository.Repositories {
	return &repository.Repositories{
		Users:          NewUserRepository(dbtx),
		Collections:    NewCollectionRepository(dbtx),
		Gatherings:     NewGatheringRepository(dbtx),
		Participations: NewParticipationRepository(dbtx),
		Listings:       NewListingRepository(dbtx),
		Trades:         NewTradeRecordRepository(dbtx),
	}
}

// Repos returns repositories bound to the shared pool, for plain reads.
func (s *Store) Repos() *repository.Repositories {
	return s.repos
}

// ExecTx runs fn with a repository set bound to a single transaction.
// Commit happens only when fn returns nil; every failure path, business
// or storage, rolls the whole unit back.
func (s *Store) ExecTx(ctx context.Context, fn func(r *repository.Repositories) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(newRepositories(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}
	return tx.Commit()
}
