package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"boardlink-backend/internal/domain"
)

func testMeetDate() time.Time {
	return time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC)
}

func openGathering(id, hostID int32) *domain.Gathering {
	return &domain.Gathering{
		ID:              id,
		HostID:          hostID,
		Title:           "Friday Night Catan",
		Location:        "Seattle",
		MaxParticipants: 4,
		Status:          domain.GatheringStatusOpen,
	}
}

func TestJoinStandardUserGoesToBackOfWaitlist(t *testing.T) {
	repos, users, _, gatherings, participations, _, _ := newMockRepos()
	svc := NewGatheringService(&fakeStore{repos: repos}, new(MockEmailService))
	ctx := context.Background()

	gatherings.On("GetByIDForUpdate", ctx, int32(10)).Return(openGathering(10, 1), nil)
	users.On("GetByID", ctx, int32(7)).Return(&domain.User{ID: 7, Role: domain.RoleStandard}, nil)
	participations.On("Get", ctx, int32(10), int32(7)).Return(nil, domain.ErrNotFound)
	participations.On("MaxWaitOrder", ctx, int32(10)).Return(int32(3), nil)
	participations.On("Create", ctx, mock.AnythingOfType("*domain.Participation")).Return(nil)

	part, msg, err := svc.Join(ctx, 7, 10)

	assert.NoError(t, err)
	assert.Equal(t, int32(4), part.WaitOrder)
	assert.Equal(t, domain.ParticipationStatusWaitlisted, part.Status)
	assert.Equal(t, "assigned waitlist position 4", msg)
	participations.AssertNotCalled(t, "ShiftWaitlist", ctx, int32(10))
}

func TestJoinVIPJumpsToFrontAndShiftsQueue(t *testing.T) {
	repos, users, _, gatherings, participations, _, _ := newMockRepos()
	svc := NewGatheringService(&fakeStore{repos: repos}, new(MockEmailService))
	ctx := context.Background()

	gatherings.On("GetByIDForUpdate", ctx, int32(10)).Return(openGathering(10, 1), nil)
	users.On("GetByID", ctx, int32(7)).Return(&domain.User{ID: 7, Role: domain.RoleVIP}, nil)
	participations.On("Get", ctx, int32(10), int32(7)).Return(nil, domain.ErrNotFound)
	participations.On("MaxWaitOrder", ctx, int32(10)).Return(int32(3), nil)
	participations.On("ShiftWaitlist", ctx, int32(10)).Return(nil)
	participations.On("Create", ctx, mock.AnythingOfType("*domain.Participation")).Return(nil)

	part, msg, err := svc.Join(ctx, 7, 10)

	assert.NoError(t, err)
	assert.Equal(t, int32(1), part.WaitOrder)
	assert.Equal(t, "VIP priority: assigned waitlist position 1", msg)
	participations.AssertCalled(t, "ShiftWaitlist", ctx, int32(10))
}

func TestJoinRestrictedUserGoesToBackWithNotice(t *testing.T) {
	repos, users, _, gatherings, participations, _, _ := newMockRepos()
	svc := NewGatheringService(&fakeStore{repos: repos}, new(MockEmailService))
	ctx := context.Background()

	gatherings.On("GetByIDForUpdate", ctx, int32(10)).Return(openGathering(10, 1), nil)
	users.On("GetByID", ctx, int32(7)).Return(&domain.User{ID: 7, Role: domain.RoleRestricted}, nil)
	participations.On("Get", ctx, int32(10), int32(7)).Return(nil, domain.ErrNotFound)
	participations.On("MaxWaitOrder", ctx, int32(10)).Return(int32(0), nil)
	participations.On("Create", ctx, mock.AnythingOfType("*domain.Participation")).Return(nil)

	part, msg, err := svc.Join(ctx, 7, 10)

	assert.NoError(t, err)
	assert.Equal(t, int32(1), part.WaitOrder)
	assert.Equal(t, "restricted account: assigned to the back of the waitlist (position 1)", msg)
}

func TestJoinClosedGatheringRejected(t *testing.T) {
	repos, _, _, gatherings, participations, _, _ := newMockRepos()
	svc := NewGatheringService(&fakeStore{repos: repos}, new(MockEmailService))
	ctx := context.Background()

	g := openGathering(10, 1)
	g.Status = domain.GatheringStatusClosed
	gatherings.On("GetByIDForUpdate", ctx, int32(10)).Return(g, nil)

	_, _, err := svc.Join(ctx, 7, 10)

	assert.True(t, domain.IsPolicy(err))
	participations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestJoinDuplicateApplicationRejected(t *testing.T) {
	repos, users, _, gatherings, participations, _, _ := newMockRepos()
	svc := NewGatheringService(&fakeStore{repos: repos}, new(MockEmailService))
	ctx := context.Background()

	gatherings.On("GetByIDForUpdate", ctx, int32(10)).Return(openGathering(10, 1), nil)
	users.On("GetByID", ctx, int32(7)).Return(&domain.User{ID: 7, Role: domain.RoleStandard}, nil)
	participations.On("Get", ctx, int32(10), int32(7)).
		Return(&domain.Participation{GatheringID: 10, UserID: 7, Status: domain.ParticipationStatusWaitlisted}, nil)

	_, _, err := svc.Join(ctx, 7, 10)

	assert.True(t, domain.IsPolicy(err))
	participations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApprovePromotesWaitlistedParticipant(t *testing.T) {
	repos, users, _, gatherings, participations, _, _ := newMockRepos()
	emailSvc := new(MockEmailService)
	svc := NewGatheringService(&fakeStore{repos: repos}, emailSvc)
	ctx := context.Background()

	gatherings.On("GetByIDForUpdate", ctx, int32(10)).Return(openGathering(10, 1), nil)
	participations.On("Get", ctx, int32(10), int32(7)).
		Return(&domain.Participation{GatheringID: 10, UserID: 7, Status: domain.ParticipationStatusWaitlisted, WaitOrder: 2}, nil)
	gatherings.On("IncrementParticipants", ctx, int32(10)).Return(true, nil)
	participations.On("UpdateStatus", ctx, int32(10), int32(7), domain.ParticipationStatusApproved).Return(int64(1), nil)
	users.On("GetByID", ctx, int32(7)).Return(&domain.User{ID: 7, Username: "mina", Email: "mina@example.com"}, nil)
	emailSvc.On("SendApprovalNotification", ctx, "mina@example.com", "mina", "Friday Night Catan").Return(nil)

	err := svc.Approve(ctx, 1, 10, 7)

	assert.NoError(t, err)
	emailSvc.AssertExpectations(t)
}

func TestApproveAtCapacityFailsWithoutPromoting(t *testing.T) {
	repos, _, _, gatherings, participations, _, _ := newMockRepos()
	svc := NewGatheringService(&fakeStore{repos: repos}, new(MockEmailService))
	ctx := context.Background()

	gatherings.On("GetByIDForUpdate", ctx, int32(10)).Return(openGathering(10, 1), nil)
	participations.On("Get", ctx, int32(10), int32(7)).
		Return(&domain.Participation{GatheringID: 10, UserID: 7, Status: domain.ParticipationStatusWaitlisted}, nil)
	gatherings.On("IncrementParticipants", ctx, int32(10)).Return(false, nil)

	err := svc.Approve(ctx, 1, 10, 7)

	assert.True(t, domain.IsPolicy(err))
	assert.Contains(t, err.Error(), "capacity")
	participations.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestApproveByNonHostRejected(t *testing.T) {
	repos, _, _, gatherings, _, _, _ := newMockRepos()
	svc := NewGatheringService(&fakeStore{repos: repos}, new(MockEmailService))
	ctx := context.Background()

	gatherings.On("GetByIDForUpdate", ctx, int32(10)).Return(openGathering(10, 1), nil)

	err := svc.Approve(ctx, 99, 10, 7)

	assert.True(t, domain.IsPolicy(err))
	gatherings.AssertNotCalled(t, "IncrementParticipants", mock.Anything, mock.Anything)
}

func TestApproveNonWaitlistedTargetRejected(t *testing.T) {
	repos, _, _, gatherings, participations, _, _ := newMockRepos()
	svc := NewGatheringService(&fakeStore{repos: repos}, new(MockEmailService))
	ctx := context.Background()

	gatherings.On("GetByIDForUpdate", ctx, int32(10)).Return(openGathering(10, 1), nil)
	participations.On("Get", ctx, int32(10), int32(7)).
		Return(&domain.Participation{GatheringID: 10, UserID: 7, Status: domain.ParticipationStatusApproved}, nil)

	err := svc.Approve(ctx, 1, 10, 7)

	assert.True(t, domain.IsPolicy(err))
	gatherings.AssertNotCalled(t, "IncrementParticipants", mock.Anything, mock.Anything)
}

func TestRejectAlreadyRejectedIsNoOp(t *testing.T) {
	repos, _, _, gatherings, participations, _, _ := newMockRepos()
	svc := NewGatheringService(&fakeStore{repos: repos}, new(MockEmailService))
	ctx := context.Background()

	gatherings.On("GetByIDForUpdate", ctx, int32(10)).Return(openGathering(10, 1), nil)
	participations.On("Get", ctx, int32(10), int32(7)).
		Return(&domain.Participation{GatheringID: 10, UserID: 7, Status: domain.ParticipationStatusRejected}, nil)

	err := svc.Reject(ctx, 1, 10, 7)

	assert.NoError(t, err)
	participations.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRejectDoesNotTouchCapacity(t *testing.T) {
	repos, _, _, gatherings, participations, _, _ := newMockRepos()
	svc := NewGatheringService(&fakeStore{repos: repos}, new(MockEmailService))
	ctx := context.Background()

	gatherings.On("GetByIDForUpdate", ctx, int32(10)).Return(openGathering(10, 1), nil)
	participations.On("Get", ctx, int32(10), int32(7)).
		Return(&domain.Participation{GatheringID: 10, UserID: 7, Status: domain.ParticipationStatusWaitlisted}, nil)
	participations.On("UpdateStatus", ctx, int32(10), int32(7), domain.ParticipationStatusRejected).Return(int64(1), nil)

	err := svc.Reject(ctx, 1, 10, 7)

	assert.NoError(t, err)
	gatherings.AssertNotCalled(t, "IncrementParticipants", mock.Anything, mock.Anything)
}

func TestCloseByNonHostRejected(t *testing.T) {
	repos, _, _, gatherings, _, _, _ := newMockRepos()
	svc := NewGatheringService(&fakeStore{repos: repos}, new(MockEmailService))
	ctx := context.Background()

	gatherings.On("GetByIDForUpdate", ctx, int32(10)).Return(openGathering(10, 1), nil)

	err := svc.Close(ctx, 99, 10)

	assert.True(t, domain.IsPolicy(err))
	gatherings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateGatheringRequiresPositiveCapacity(t *testing.T) {
	repos, _, _, gatherings, _, _, _ := newMockRepos()
	svc := NewGatheringService(&fakeStore{repos: repos}, new(MockEmailService))

	_, err := svc.CreateGathering(context.Background(), 1, "t", "d", "Seattle", testMeetDate(), 0)

	assert.True(t, domain.IsPolicy(err))
	gatherings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
