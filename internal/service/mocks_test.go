package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"boardlink-backend/internal/domain"
	"boardlink-backend/internal/repository"
)

// fakeStore runs ExecTx callbacks directly against the mock repository
// set, standing in for a real transaction boundary.
type fakeStore struct {
	repos *repository.Repositories
}

func (s *fakeStore) Repos() *repository.Repositories {
	return s.repos
}

func (s *fakeStore) ExecTx(ctx context.Context, fn func(r *repository.Repositories) error) error {
	return fn(s.repos)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdateRole(ctx context.Context, id int32, role domain.Role) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}
func (m *MockUserRepo) ApplyFeedback(ctx context.Context, id int32, kind domain.FeedbackKind) (*domain.User, error) {
	args := m.Called(ctx, id, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockCollectionRepo
type MockCollectionRepo struct {
	mock.Mock
}

func (m *MockCollectionRepo) GetGameByTitle(ctx context.Context, title string) (*domain.BoardGame, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BoardGame), args.Error(1)
}
func (m *MockCollectionRepo) CreateGame(ctx context.Context, game *domain.BoardGame) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}
func (m *MockCollectionRepo) CreateItem(ctx context.Context, item *domain.CollectionItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockCollectionRepo) GetItem(ctx context.Context, id int32) (*domain.CollectionItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CollectionItem), args.Error(1)
}
func (m *MockCollectionRepo) GetItemForUpdate(ctx context.Context, id int32) (*domain.CollectionItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CollectionItem), args.Error(1)
}
func (m *MockCollectionRepo) ListByOwner(ctx context.Context, ownerID int32) ([]domain.CollectionItem, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.CollectionItem), args.Error(1)
}
func (m *MockCollectionRepo) UpdateStatus(ctx context.Context, id int32, status domain.ItemStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockCollectionRepo) TransferOwner(ctx context.Context, id, newOwnerID int32, status domain.ItemStatus) error {
	args := m.Called(ctx, id, newOwnerID, status)
	return args.Error(0)
}

// MockGatheringRepo
type MockGatheringRepo struct {
	mock.Mock
}

func (m *MockGatheringRepo) Create(ctx context.Context, g *domain.Gathering) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}
func (m *MockGatheringRepo) GetByID(ctx context.Context, id int32) (*domain.Gathering, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Gathering), args.Error(1)
}
func (m *MockGatheringRepo) GetByIDForUpdate(ctx context.Context, id int32) (*domain.Gathering, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Gathering), args.Error(1)
}
func (m *MockGatheringRepo) Search(ctx context.Context, location string) ([]domain.Gathering, error) {
	args := m.Called(ctx, location)
	return args.Get(0).([]domain.Gathering), args.Error(1)
}
func (m *MockGatheringRepo) ListByHost(ctx context.Context, hostID int32) ([]domain.Gathering, error) {
	args := m.Called(ctx, hostID)
	return args.Get(0).([]domain.Gathering), args.Error(1)
}
func (m *MockGatheringRepo) IncrementParticipants(ctx context.Context, id int32) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockGatheringRepo) UpdateStatus(ctx context.Context, id int32, status domain.GatheringStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockGatheringRepo) CloseAllPast(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockGatheringRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockParticipationRepo
type MockParticipationRepo struct {
	mock.Mock
}

func (m *MockParticipationRepo) Create(ctx context.Context, p *domain.Participation) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockParticipationRepo) Get(ctx context.Context, gatheringID, userID int32) (*domain.Participation, error) {
	args := m.Called(ctx, gatheringID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Participation), args.Error(1)
}
func (m *MockParticipationRepo) MaxWaitOrder(ctx context.Context, gatheringID int32) (int32, error) {
	args := m.Called(ctx, gatheringID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockParticipationRepo) ShiftWaitlist(ctx context.Context, gatheringID int32) error {
	args := m.Called(ctx, gatheringID)
	return args.Error(0)
}
func (m *MockParticipationRepo) UpdateStatus(ctx context.Context, gatheringID, userID int32, status domain.ParticipationStatus) (int64, error) {
	args := m.Called(ctx, gatheringID, userID, status)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockParticipationRepo) ListWaitlisted(ctx context.Context, gatheringID int32) ([]domain.Participation, error) {
	args := m.Called(ctx, gatheringID)
	return args.Get(0).([]domain.Participation), args.Error(1)
}
func (m *MockParticipationRepo) ListByUser(ctx context.Context, userID int32) ([]domain.Participation, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Participation), args.Error(1)
}
func (m *MockParticipationRepo) DeleteByGathering(ctx context.Context, gatheringID int32) error {
	args := m.Called(ctx, gatheringID)
	return args.Error(0)
}

// MockListingRepo
type MockListingRepo struct {
	mock.Mock
}

func (m *MockListingRepo) Create(ctx context.Context, l *domain.Listing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}
func (m *MockListingRepo) GetByID(ctx context.Context, id int32) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}
func (m *MockListingRepo) GetByIDForUpdate(ctx context.Context, id int32) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}
func (m *MockListingRepo) ListOpen(ctx context.Context) ([]domain.Listing, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Listing), args.Error(1)
}
func (m *MockListingRepo) ListOngoingByUser(ctx context.Context, userID int32) ([]domain.Listing, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Listing), args.Error(1)
}
func (m *MockListingRepo) Update(ctx context.Context, l *domain.Listing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}
func (m *MockListingRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTradeRepo
type MockTradeRepo struct {
	mock.Mock
}

func (m *MockTradeRepo) Create(ctx context.Context, tr *domain.TradeRecord) error {
	args := m.Called(ctx, tr)
	return args.Error(0)
}
func (m *MockTradeRepo) ListByUser(ctx context.Context, userID int32) ([]domain.TradeRecord, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.TradeRecord), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendApprovalNotification(ctx context.Context, email, username, gatheringTitle string) error {
	args := m.Called(ctx, email, username, gatheringTitle)
	return args.Error(0)
}
func (m *MockEmailService) SendTradeApprovedNotification(ctx context.Context, email, username string, listingID int32) error {
	args := m.Called(ctx, email, username, listingID)
	return args.Error(0)
}
func (m *MockEmailService) SendTradeCompletedNotification(ctx context.Context, email, username string, priceCents int32) error {
	args := m.Called(ctx, email, username, priceCents)
	return args.Error(0)
}

func newMockRepos() (*repository.Repositories, *MockUserRepo, *MockCollectionRepo, *MockGatheringRepo, *MockParticipationRepo, *MockListingRepo, *MockTradeRepo) {
	users := new(MockUserRepo)
	collections := new(MockCollectionRepo)
	gatherings := new(MockGatheringRepo)
	participations := new(MockParticipationRepo)
	listings := new(MockListingRepo)
	trades := new(MockTradeRepo)
	repos := &repository.Repositories{
		Users:          users,
		Collections:    collections,
		Gatherings:     gatherings,
		Participations: participations,
		Listings:       listings,
		Trades:         trades,
	}
	return repos, users, collections, gatherings, participations, listings, trades
}
