package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"boardlink-backend/internal/domain"
)

func listingColumns() []string {
	return []string{"id", "collection_item_id", "seller_id", "buyer_id", "price_cents", "description", "status", "seller_info", "buyer_info", "created_on"}
}

func TestListingCreateStartsWithEmptySettlementFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewListingRepository(db)
	l := &domain.Listing{
		CollectionItemID: 30,
		SellerID:         2,
		PriceCents:       4500,
		Description:      "lightly played",
		Status:           domain.ListingStatusOpen,
	}

	mock.ExpectQuery("INSERT INTO listings").
		WithArgs(l.CollectionItemID, l.SellerID, l.PriceCents, l.Description, l.Status, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int32(5)))

	err = repo.Create(context.Background(), l)

	assert.NoError(t, err)
	assert.Equal(t, int32(5), l.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingGetByIDForUpdateHandlesNullBuyer(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewListingRepository(db)

	mock.ExpectQuery(`FROM listings WHERE id = \$1 FOR UPDATE`).
		WithArgs(int32(5)).
		WillReturnRows(sqlmock.NewRows(listingColumns()).
			AddRow(int32(5), int32(30), int32(2), nil, int32(4500), "lightly played", "OPEN", "", "", time.Now()))

	l, err := repo.GetByIDForUpdate(context.Background(), 5)

	assert.NoError(t, err)
	assert.Nil(t, l.BuyerID)
	assert.Equal(t, domain.ListingStatusOpen, l.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewListingRepository(db)

	mock.ExpectQuery("FROM listings WHERE id").
		WithArgs(int32(99)).
		WillReturnRows(sqlmock.NewRows(listingColumns()))

	_, err = repo.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListingUpdateWritesAllMutableColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewListingRepository(db)
	buyer := int32(7)
	l := &domain.Listing{
		ID:         5,
		SellerID:   2,
		BuyerID:    &buyer,
		Status:     domain.ListingStatusPaid,
		SellerInfo: "venmo @seller",
		BuyerInfo:  "ship to 5 Main St",
	}

	mock.ExpectExec("UPDATE listings SET buyer_id").
		WithArgs(l.BuyerID, l.Status, l.SellerInfo, l.BuyerInfo, l.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Update(context.Background(), l)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListOngoingByUserFiltersToSettlementStates(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewListingRepository(db)

	mock.ExpectQuery("FROM listings").
		WithArgs(int32(7), domain.ListingStatusApproved, domain.ListingStatusPaid).
		WillReturnRows(sqlmock.NewRows(listingColumns()).
			AddRow(int32(5), int32(30), int32(2), int32(7), int32(4500), "", "APPROVED", "venmo @seller", "", time.Now()))

	listings, err := repo.ListOngoingByUser(context.Background(), 7)

	assert.NoError(t, err)
	if assert.Len(t, listings, 1) {
		assert.Equal(t, domain.ListingStatusApproved, listings[0].Status)
		if assert.NotNil(t, listings[0].BuyerID) {
			assert.Equal(t, int32(7), *listings[0].BuyerID)
		}
	}
}

func TestListOpenOrdersVIPSellersFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewListingRepository(db)
	now := time.Now()

	cols := []string{"id", "collection_item_id", "seller_id", "price_cents", "description", "status", "created_on", "title", "u_id", "u_username", "u_role"}
	mock.ExpectQuery("ORDER BY CASE WHEN u.role = 'VIP' THEN 1 ELSE 2 END").
		WithArgs(domain.ItemStatusInTrade).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int32(5), int32(30), int32(2), int32(4500), "", "OPEN", now, "Brass: Birmingham", int32(2), "vip-sam", "VIP").
			AddRow(int32(6), int32(31), int32(3), int32(2000), "", "OPEN", now, "Azul", int32(3), "mina", "STANDARD"))

	listings, err := repo.ListOpen(context.Background())

	assert.NoError(t, err)
	if assert.Len(t, listings, 2) {
		assert.Equal(t, "Brass: Birmingham", listings[0].GameTitle)
		assert.Equal(t, domain.RoleVIP, listings[0].Seller.Role)
		assert.Equal(t, "mina", listings[1].Seller.Username)
	}
}
