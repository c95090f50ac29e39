package postgres

import (
	"context"
	"database/sql"

	"boardlink-backend/internal/domain"
	"boardlink-backend/internal/repository"
)

type collectionRepository struct {
	db DBTX
}

func NewCollectionRepository(db DBTX) repository.CollectionRepository {
	return &collectionRepository{db: db}
}

func (r *collectionRepository) GetGameByTitle(ctx context.Context, title string) (*domain.BoardGame, error) {
	g := &domain.BoardGame{}
	query := `SELECT id, title, genre, min_players, max_players, avg_playtime, difficulty FROM board_games WHERE title = $1`
	err := r.db.QueryRowContext(ctx, query, title).Scan(&g.ID, &g.Title, &g.Genre, &g.MinPlayers, &g.MaxPlayers, &g.AvgPlaytime, &g.Difficulty)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *collectionRepository) CreateGame(ctx context.Context, g *domain.BoardGame) error {
	query := `INSERT INTO board_games (title, genre, min_players, max_players, avg_playtime, difficulty)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, g.Title, g.Genre, g.MinPlayers, g.MaxPlayers, g.AvgPlaytime, g.Difficulty).Scan(&g.ID)
}

func (r *collectionRepository) CreateItem(ctx context.Context, item *domain.CollectionItem) error {
	query := `INSERT INTO collection_items (owner_id, game_id, condition_rank, status)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, item.OwnerID, item.GameID, item.ConditionRank, item.Status).Scan(&item.ID)
}

func (r *collectionRepository) getItem(ctx context.Context, id int32, forUpdate bool) (*domain.CollectionItem, error) {
	item := &domain.CollectionItem{}
	query := `SELECT id, owner_id, game_id, condition_rank, status FROM collection_items WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.OwnerID, &item.GameID, &item.ConditionRank, &item.Status)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *collectionRepository) GetItem(ctx context.Context, id int32) (*domain.CollectionItem, error) {
	return r.getItem(ctx, id, false)
}

func (r *collectionRepository) GetItemForUpdate(ctx context.Context, id int32) (*domain.CollectionItem, error) {
	return r.getItem(ctx, id, true)
}

func (r *collectionRepository) ListByOwner(ctx context.Context, ownerID int32) ([]domain.CollectionItem, error) {
	query := `SELECT ci.id, ci.owner_id, ci.game_id, ci.condition_rank, ci.status,
	                 bg.id, bg.title, bg.genre, bg.min_players, bg.max_players, bg.avg_playtime, bg.difficulty
	          FROM collection_items ci
	          JOIN board_games bg ON ci.game_id = bg.id
	          WHERE ci.owner_id = $1
	          ORDER BY ci.id`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.CollectionItem
	for rows.Next() {
		var item domain.CollectionItem
		var g domain.BoardGame
		if err := rows.Scan(&item.ID, &item.OwnerID, &item.GameID, &item.ConditionRank, &item.Status,
			&g.ID, &g.Title, &g.Genre, &g.MinPlayers, &g.MaxPlayers, &g.AvgPlaytime, &g.Difficulty); err != nil {
			return nil, err
		}
		item.Game = &g
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *collectionRepository) UpdateStatus(ctx context.Context, id int32, status domain.ItemStatus) error {
	_, err := r.db.ExecContext(ctx, `UPDATE collection_items SET status = $1 WHERE id = $2`, status, id)
	return err
}

func (r *collectionRepository) TransferOwner(ctx context.Context, id, newOwnerID int32, status domain.ItemStatus) error {
	_, err := r.db.ExecContext(ctx, `UPDATE collection_items SET owner_id = $1, status = $2 WHERE id = $3`, newOwnerID, status, id)
	return err
}
