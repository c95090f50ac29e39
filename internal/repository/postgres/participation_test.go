package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"boardlink-backend/internal/domain"
)

func TestParticipationCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewParticipationRepository(db)
	p := &domain.Participation{
		GatheringID: 10,
		UserID:      7,
		Status:      domain.ParticipationStatusWaitlisted,
		WaitOrder:   3,
	}

	mock.ExpectExec("INSERT INTO participations").
		WithArgs(p.GatheringID, p.UserID, p.Status, p.WaitOrder, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Create(context.Background(), p)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipationGetNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewParticipationRepository(db)

	mock.ExpectQuery("FROM participations WHERE gathering_id").
		WithArgs(int32(10), int32(7)).
		WillReturnRows(sqlmock.NewRows([]string{"gathering_id", "user_id", "status", "wait_order", "created_on"}))

	_, err = repo.Get(context.Background(), 10, 7)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMaxWaitOrderDefaultsToZero(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewParticipationRepository(db)

	mock.ExpectQuery("COALESCE").
		WithArgs(int32(10), domain.ParticipationStatusWaitlisted).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(int32(0)))

	max, err := repo.MaxWaitOrder(context.Background(), 10)

	assert.NoError(t, err)
	assert.Equal(t, int32(0), max)
}

func TestShiftWaitlistOnlyTouchesWaitlistedRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewParticipationRepository(db)

	mock.ExpectExec(`UPDATE participations SET wait_order = wait_order \+ 1`).
		WithArgs(int32(10), domain.ParticipationStatusWaitlisted).
		WillReturnResult(sqlmock.NewResult(0, 4))

	err = repo.ShiftWaitlist(context.Background(), 10)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipationUpdateStatusReportsAffectedRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewParticipationRepository(db)

	mock.ExpectExec("UPDATE participations SET status").
		WithArgs(domain.ParticipationStatusApproved, int32(10), int32(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.UpdateStatus(context.Background(), 10, 7, domain.ParticipationStatusApproved)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}

func TestListWaitlistedOrderedWithUsers(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewParticipationRepository(db)
	now := time.Now()

	cols := []string{"gathering_id", "user_id", "status", "wait_order", "created_on", "u_id", "u_username", "u_role", "u_likes", "u_dislikes"}
	mock.ExpectQuery("ORDER BY p.wait_order ASC").
		WithArgs(int32(10), domain.ParticipationStatusWaitlisted).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int32(10), int32(7), "WAITLIST", int32(1), now, int32(7), "mina", "VIP", int32(12), int32(0)).
			AddRow(int32(10), int32(8), "WAITLIST", int32(2), now, int32(8), "sam", "STANDARD", int32(3), int32(1)))

	parts, err := repo.ListWaitlisted(context.Background(), 10)

	assert.NoError(t, err)
	if assert.Len(t, parts, 2) {
		assert.Equal(t, int32(1), parts[0].WaitOrder)
		assert.Equal(t, "mina", parts[0].User.Username)
		assert.Equal(t, int32(2), parts[1].WaitOrder)
		assert.Equal(t, "sam", parts[1].User.Username)
	}
}
