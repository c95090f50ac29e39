package postgres

import (
	"context"
	"database/sql"
	"time"

	"boardlink-backend/internal/domain"
	"boardlink-backend/internal/repository"
)

type participationRepository struct {
	db DBTX
}

func NewParticipationRepository(db DBTX) repository.ParticipationRepository {
	return &participationRepository{db: db}
}

func (r *participationRepository) Create(ctx context.Context, p *domain.Participation) error {
	query := `INSERT INTO participations (gathering_id, user_id, status, wait_order, created_on)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, p.GatheringID, p.UserID, p.Status, p.WaitOrder, time.Now())
	return err
}

func (r *participationRepository) Get(ctx context.Context, gatheringID, userID int32) (*domain.Participation, error) {
	p := &domain.Participation{}
	query := `SELECT gathering_id, user_id, status, wait_order, created_on
	          FROM participations WHERE gathering_id = $1 AND user_id = $2`
	err := r.db.QueryRowContext(ctx, query, gatheringID, userID).Scan(&p.GatheringID, &p.UserID, &p.Status, &p.WaitOrder, &p.CreatedOn)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *participationRepository) MaxWaitOrder(ctx context.Context, gatheringID int32) (int32, error) {
	var max int32
	query := `SELECT COALESCE(MAX(wait_order), 0) FROM participations WHERE gathering_id = $1 AND status = $2`
	err := r.db.QueryRowContext(ctx, query, gatheringID, domain.ParticipationStatusWaitlisted).Scan(&max)
	return max, err
}

func (r *participationRepository) ShiftWaitlist(ctx context.Context, gatheringID int32) error {
	query := `UPDATE participations SET wait_order = wait_order + 1 WHERE gathering_id = $1 AND status = $2`
	_, err := r.db.ExecContext(ctx, query, gatheringID, domain.ParticipationStatusWaitlisted)
	return err
}

func (r *participationRepository) UpdateStatus(ctx context.Context, gatheringID, userID int32, status domain.ParticipationStatus) (int64, error) {
	query := `UPDATE participations SET status = $1 WHERE gathering_id = $2 AND user_id = $3`
	res, err := r.db.ExecContext(ctx, query, status, gatheringID, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *participationRepository) ListWaitlisted(ctx context.Context, gatheringID int32) ([]domain.Participation, error) {
	query := `SELECT p.gathering_id, p.user_id, p.status, p.wait_order, p.created_on,
	                 u.id, u.username, u.role, u.likes, u.dislikes
	          FROM participations p
	          JOIN users u ON p.user_id = u.id
	          WHERE p.gathering_id = $1 AND p.status = $2
	          ORDER BY p.wait_order ASC`
	rows, err := r.db.QueryContext(ctx, query, gatheringID, domain.ParticipationStatusWaitlisted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var parts []domain.Participation
	for rows.Next() {
		var p domain.Participation
		var u domain.User
		if err := rows.Scan(&p.GatheringID, &p.UserID, &p.Status, &p.WaitOrder, &p.CreatedOn,
			&u.ID, &u.Username, &u.Role, &u.Likes, &u.Dislikes); err != nil {
			return nil, err
		}
		p.User = &u
		parts = append(parts, p)
	}
	return parts, rows.Err()
}

func (r *participationRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Participation, error) {
	query := `SELECT p.gathering_id, p.user_id, p.status, p.wait_order, p.created_on,
	                 g.id, g.host_id, g.title, g.location, g.meet_date, g.status
	          FROM participations p
	          JOIN gatherings g ON p.gathering_id = g.id
	          WHERE p.user_id = $1
	          ORDER BY g.meet_date DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var parts []domain.Participation
	for rows.Next() {
		var p domain.Participation
		var g domain.Gathering
		if err := rows.Scan(&p.GatheringID, &p.UserID, &p.Status, &p.WaitOrder, &p.CreatedOn,
			&g.ID, &g.HostID, &g.Title, &g.Location, &g.MeetDate, &g.Status); err != nil {
			return nil, err
		}
		p.Gathering = &g
		parts = append(parts, p)
	}
	return parts, rows.Err()
}

func (r *participationRepository) DeleteByGathering(ctx context.Context, gatheringID int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM participations WHERE gathering_id = $1`, gatheringID)
	return err
}
