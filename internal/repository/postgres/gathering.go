package postgres

import (
	"context"
	"database/sql"
	"time"

	"boardlink-backend/internal/domain"
	"boardlink-backend/internal/repository"
)

type gatheringRepository struct {
	db DBTX
}

func NewGatheringRepository(db DBTX) repository.GatheringRepository {
	return &gatheringRepository{db: db}
}

func (r *gatheringRepository) Create(ctx context.Context, g *domain.Gathering) error {
	query := `INSERT INTO gatherings (host_id, title, description, location, meet_date, max_participants, current_participants, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, g.HostID, g.Title, g.Description, g.Location, g.MeetDate, g.MaxParticipants, g.Status, time.Now()).Scan(&g.ID)
}

func (r *gatheringRepository) getByID(ctx context.Context, id int32, forUpdate bool) (*domain.Gathering, error) {
	g := &domain.Gathering{}
	query := `SELECT id, host_id, title, description, location, meet_date, max_participants, current_participants, status, created_on
	          FROM gatherings WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&g.ID, &g.HostID, &g.Title, &g.Description, &g.Location, &g.MeetDate,
		&g.MaxParticipants, &g.CurrentParticipants, &g.Status, &g.CreatedOn)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *gatheringRepository) GetByID(ctx context.Context, id int32) (*domain.Gathering, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate takes the per-gathering row lock that serializes
// waitlist ordering and approvals. Locks on different gatherings do not
// contend.
func (r *gatheringRepository) GetByIDForUpdate(ctx context.Context, id int32) (*domain.Gathering, error) {
	return r.getByID(ctx, id, true)
}

func (r *gatheringRepository) Search(ctx context.Context, location string) ([]domain.Gathering, error) {
	query := `SELECT g.id, g.host_id, g.title, g.description, g.location, g.meet_date, g.max_participants, g.current_participants, g.status, g.created_on,
	                 u.id, u.username, u.role
	          FROM gatherings g
	          JOIN users u ON g.host_id = u.id`
	args := []any{}
	if location != "" {
		query += ` WHERE g.location LIKE $1`
		args = append(args, "%"+location+"%")
	}
	query += ` ORDER BY CASE WHEN g.status = 'OPEN' THEN 1 ELSE 2 END, g.meet_date ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var gatherings []domain.Gathering
	for rows.Next() {
		var g domain.Gathering
		var host domain.User
		if err := rows.Scan(&g.ID, &g.HostID, &g.Title, &g.Description, &g.Location, &g.MeetDate,
			&g.MaxParticipants, &g.CurrentParticipants, &g.Status, &g.CreatedOn,
			&host.ID, &host.Username, &host.Role); err != nil {
			return nil, err
		}
		g.Host = &host
		gatherings = append(gatherings, g)
	}
	return gatherings, rows.Err()
}

func (r *gatheringRepository) ListByHost(ctx context.Context, hostID int32) ([]domain.Gathering, error) {
	query := `SELECT id, host_id, title, description, location, meet_date, max_participants, current_participants, status, created_on
	          FROM gatherings WHERE host_id = $1 ORDER BY meet_date DESC`
	rows, err := r.db.QueryContext(ctx, query, hostID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var gatherings []domain.Gathering
	for rows.Next() {
		var g domain.Gathering
		if err := rows.Scan(&g.ID, &g.HostID, &g.Title, &g.Description, &g.Location, &g.MeetDate,
			&g.MaxParticipants, &g.CurrentParticipants, &g.Status, &g.CreatedOn); err != nil {
			return nil, err
		}
		gatherings = append(gatherings, g)
	}
	return gatherings, rows.Err()
}

// IncrementParticipants folds the capacity check into the update itself:
// zero rows affected means the gathering was already full.
func (r *gatheringRepository) IncrementParticipants(ctx context.Context, id int32) (bool, error) {
	query := `UPDATE gatherings SET current_participants = current_participants + 1
	          WHERE id = $1 AND current_participants < max_participants`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *gatheringRepository) UpdateStatus(ctx context.Context, id int32, status domain.GatheringStatus) error {
	_, err := r.db.ExecContext(ctx, `UPDATE gatherings SET status = $1 WHERE id = $2`, status, id)
	return err
}

func (r *gatheringRepository) CloseAllPast(ctx context.Context) (int64, error) {
	query := `UPDATE gatherings SET status = $1 WHERE status = $2 AND meet_date < $3`
	res, err := r.db.ExecContext(ctx, query, domain.GatheringStatusClosed, domain.GatheringStatusOpen, time.Now())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *gatheringRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM gatherings WHERE id = $1`, id)
	return err
}
