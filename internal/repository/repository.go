package repository

import (
	"context"

	"boardlink-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, id int32, role domain.Role) error

	// ApplyFeedback bumps one counter and returns the post-update row so
	// the caller can re-derive the role inside the same transaction.
	ApplyFeedback(ctx context.Context, id int32, kind domain.FeedbackKind) (*domain.User, error)
}

type CollectionRepository interface {
	GetGameByTitle(ctx context.Context, title string) (*domain.BoardGame, error)
	CreateGame(ctx context.Context, game *domain.BoardGame) error
	CreateItem(ctx context.Context, item *domain.CollectionItem) error
	GetItem(ctx context.Context, id int32) (*domain.CollectionItem, error)
	// GetItemForUpdate locks the item row for the rest of the transaction.
	GetItemForUpdate(ctx context.Context, id int32) (*domain.CollectionItem, error)
	ListByOwner(ctx context.Context, ownerID int32) ([]domain.CollectionItem, error)
	UpdateStatus(ctx context.Context, id int32, status domain.ItemStatus) error
	TransferOwner(ctx context.Context, id, newOwnerID int32, status domain.ItemStatus) error
}

type GatheringRepository interface {
	Create(ctx context.Context, g *domain.Gathering) error
	GetByID(ctx context.Context, id int32) (*domain.Gathering, error)
	// GetByIDForUpdate locks the gathering row; waitlist ordering and the
	// capacity check serialize on this lock, per gathering.
	GetByIDForUpdate(ctx context.Context, id int32) (*domain.Gathering, error)
	Search(ctx context.Context, location string) ([]domain.Gathering, error)
	ListByHost(ctx context.Context, hostID int32) ([]domain.Gathering, error)
	// IncrementParticipants applies the capacity-guarded increment and
	// reports whether a seat was actually taken.
	IncrementParticipants(ctx context.Context, id int32) (bool, error)
	UpdateStatus(ctx context.Context, id int32, status domain.GatheringStatus) error
	CloseAllPast(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int32) error
}

type ParticipationRepository interface {
	Create(ctx context.Context, p *domain.Participation) error
	Get(ctx context.Context, gatheringID, userID int32) (*domain.Participation, error)
	MaxWaitOrder(ctx context.Context, gatheringID int32) (int32, error)
	// ShiftWaitlist pushes every waitlisted order back by one, making
	// room at the front of the queue.
	ShiftWaitlist(ctx context.Context, gatheringID int32) error
	UpdateStatus(ctx context.Context, gatheringID, userID int32, status domain.ParticipationStatus) (int64, error)
	ListWaitlisted(ctx context.Context, gatheringID int32) ([]domain.Participation, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.Participation, error)
	DeleteByGathering(ctx context.Context, gatheringID int32) error
}

type ListingRepository interface {
	Create(ctx context.Context, l *domain.Listing) error
	GetByID(ctx context.Context, id int32) (*domain.Listing, error)
	// GetByIDForUpdate locks the listing row so concurrent settlement
	// steps on the same listing serialize.
	GetByIDForUpdate(ctx context.Context, id int32) (*domain.Listing, error)
	ListOpen(ctx context.Context) ([]domain.Listing, error)
	ListOngoingByUser(ctx context.Context, userID int32) ([]domain.Listing, error)
	Update(ctx context.Context, l *domain.Listing) error
	Delete(ctx context.Context, id int32) error
}

type TradeRecordRepository interface {
	Create(ctx context.Context, tr *domain.TradeRecord) error
	ListByUser(ctx context.Context, userID int32) ([]domain.TradeRecord, error)
}

// Repositories bundles one consistent set of repositories: either all
// bound to the shared pool, or all bound to a single open transaction.
type Repositories struct {
	Users          UserRepository
	Collections    CollectionRepository
	Gatherings     GatheringRepository
	Participations ParticipationRepository
	Listings       ListingRepository
	Trades         TradeRecordRepository
}

// Store is the transactional boundary the services operate through.
// ExecTx runs fn against a transaction-bound repository set and commits
// iff fn returns nil; any error rolls everything back, so no partial
// effects are observable outside a committed transaction.
type Store interface {
	Repos() *Repositories
	ExecTx(ctx context.Context, fn func(r *Repositories) error) error
}
