package postgres

import (
	"context"
	"database/sql"
	"time"

	"boardlink-backend/internal/domain"
	"boardlink-backend/internal/repository"
)

type userRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (username, password_hash, email, location, role, likes, dislikes, created_on)
	          VALUES ($1, $2, $3, $4, $5, 0, 0, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, u.Username, u.PasswordHash, u.Email, u.Location, u.Role, time.Now()).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, username, password_hash, email, location, role, likes, dislikes, created_on FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.Location, &u.Role, &u.Likes, &u.Dislikes, &u.CreatedOn)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, username, password_hash, email, location, role, likes, dislikes, created_on FROM users WHERE username = $1`
	err := r.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.Location, &u.Role, &u.Likes, &u.Dislikes, &u.CreatedOn)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT id, username, password_hash, email, location, role, likes, dislikes, created_on FROM users ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.Location, &u.Role, &u.Likes, &u.Dislikes, &u.CreatedOn); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) UpdateRole(ctx context.Context, id int32, role domain.Role) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET role = $1 WHERE id = $2`, role, id)
	return err
}

func (r *userRepository) ApplyFeedback(ctx context.Context, id int32, kind domain.FeedbackKind) (*domain.User, error) {
	column := "likes"
	if kind == domain.FeedbackDislike {
		column = "dislikes"
	}
	u := &domain.User{ID: id}
	query := `UPDATE users SET ` + column + ` = ` + column + ` + 1 WHERE id = $1 RETURNING username, email, location, role, likes, dislikes`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.Username, &u.Email, &u.Location, &u.Role, &u.Likes, &u.Dislikes)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
