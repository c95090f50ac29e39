package postgres

import (
	"context"
	"time"

	"boardlink-backend/internal/domain"
	"boardlink-backend/internal/repository"
)

type tradeRecordRepository struct {
	db DBTX
}

func NewTradeRecordRepository(db DBTX) repository.TradeRecordRepository {
	return &tradeRecordRepository{db: db}
}

// Create appends the archival row; trade records are never updated or
// deleted afterwards.
func (r *tradeRecordRepository) Create(ctx context.Context, tr *domain.TradeRecord) error {
	query := `INSERT INTO trade_records (listing_id, seller_id, buyer_id, final_price_cents, completed_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	tr.CompletedOn = time.Now()
	return r.db.QueryRowContext(ctx, query, tr.ListingID, tr.SellerID, tr.BuyerID, tr.FinalPriceCents, tr.CompletedOn).Scan(&tr.ID)
}

func (r *tradeRecordRepository) ListByUser(ctx context.Context, userID int32) ([]domain.TradeRecord, error) {
	query := `SELECT id, listing_id, seller_id, buyer_id, final_price_cents, completed_on
	          FROM trade_records WHERE seller_id = $1 OR buyer_id = $1
	          ORDER BY completed_on DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.TradeRecord
	for rows.Next() {
		var tr domain.TradeRecord
		if err := rows.Scan(&tr.ID, &tr.ListingID, &tr.SellerID, &tr.BuyerID, &tr.FinalPriceCents, &tr.CompletedOn); err != nil {
			return nil, err
		}
		records = append(records, tr)
	}
	return records, rows.Err()
}
