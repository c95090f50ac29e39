package postgres

import (
	"context"
	"database/sql"
	"time"

	"boardlink-backend/internal/domain"
	"boardlink-backend/internal/repository"
)

type listingRepository struct {
	db DBTX
}

func NewListingRepository(db DBTX) repository.ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(ctx context.Context, l *domain.Listing) error {
	query := `INSERT INTO listings (collection_item_id, seller_id, price_cents, description, status, seller_info, buyer_info, created_on)
	          VALUES ($1, $2, $3, $4, $5, '', '', $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, l.CollectionItemID, l.SellerID, l.PriceCents, l.Description, l.Status, time.Now()).Scan(&l.ID)
}

func (r *listingRepository) getByID(ctx context.Context, id int32, forUpdate bool) (*domain.Listing, error) {
	l := &domain.Listing{}
	query := `SELECT id, collection_item_id, seller_id, buyer_id, price_cents, description, status, seller_info, buyer_info, created_on
	          FROM listings WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&l.ID, &l.CollectionItemID, &l.SellerID, &l.BuyerID,
		&l.PriceCents, &l.Description, &l.Status, &l.SellerInfo, &l.BuyerInfo, &l.CreatedOn)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *listingRepository) GetByID(ctx context.Context, id int32) (*domain.Listing, error) {
	return r.getByID(ctx, id, false)
}

func (r *listingRepository) GetByIDForUpdate(ctx context.Context, id int32) (*domain.Listing, error) {
	return r.getByID(ctx, id, true)
}

func (r *listingRepository) ListOpen(ctx context.Context) ([]domain.Listing, error) {
	query := `SELECT l.id, l.collection_item_id, l.seller_id, l.price_cents, l.description, l.status, l.created_on,
	                 bg.title, u.id, u.username, u.role
	          FROM listings l
	          JOIN collection_items ci ON l.collection_item_id = ci.id
	          JOIN board_games bg ON ci.game_id = bg.id
	          JOIN users u ON l.seller_id = u.id
	          WHERE l.buyer_id IS NULL AND ci.status = $1
	          ORDER BY CASE WHEN u.role = 'VIP' THEN 1 ELSE 2 END, l.id DESC`
	rows, err := r.db.QueryContext(ctx, query, domain.ItemStatusInTrade)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		var seller domain.User
		if err := rows.Scan(&l.ID, &l.CollectionItemID, &l.SellerID, &l.PriceCents, &l.Description, &l.Status, &l.CreatedOn,
			&l.GameTitle, &seller.ID, &seller.Username, &seller.Role); err != nil {
			return nil, err
		}
		l.Seller = &seller
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

func (r *listingRepository) ListOngoingByUser(ctx context.Context, userID int32) ([]domain.Listing, error) {
	query := `SELECT id, collection_item_id, seller_id, buyer_id, price_cents, description, status, seller_info, buyer_info, created_on
	          FROM listings
	          WHERE (seller_id = $1 OR buyer_id = $1) AND status IN ($2, $3)
	          ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID, domain.ListingStatusApproved, domain.ListingStatusPaid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := rows.Scan(&l.ID, &l.CollectionItemID, &l.SellerID, &l.BuyerID, &l.PriceCents,
			&l.Description, &l.Status, &l.SellerInfo, &l.BuyerInfo, &l.CreatedOn); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

func (r *listingRepository) Update(ctx context.Context, l *domain.Listing) error {
	query := `UPDATE listings SET buyer_id = $1, status = $2, seller_info = $3, buyer_info = $4 WHERE id = $5`
	_, err := r.db.ExecContext(ctx, query, l.BuyerID, l.Status, l.SellerInfo, l.BuyerInfo, l.ID)
	return err
}

func (r *listingRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM listings WHERE id = $1`, id)
	return err
}
