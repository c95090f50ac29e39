package service

import (
	"context"

	"boardlink-backend/internal/domain"
	"boardlink-backend/internal/logger"
	"boardlink-backend/internal/repository"
)

type marketService struct {
	store    repository.Store
	emailSvc EmailService
}

func NewMarketService(store repository.Store, emailSvc EmailService) MarketService {
	return &marketService{store: store, emailSvc: emailSvc}
}

// CreateListing puts an owned, available item up for sale. Listing row
// and the item's IN_TRADE flip commit together or not at all.
func (s *marketService) CreateListing(ctx context.Context, sellerID, itemID, priceCents int32, description string) (*domain.Listing, error) {
	var listing *domain.Listing
	err := s.store.ExecTx(ctx, func(r *repository.Repositories) error {
		seller, err := r.Users.GetByID(ctx, sellerID)
		if err != nil {
			return err
		}
		if !seller.CanCreateListing() {
			return domain.Policyf("restricted accounts cannot create listings")
		}

		item, err := r.Collections.GetItemForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if item.OwnerID != sellerID {
			return domain.Policyf("item does not belong to the seller")
		}
		if item.Status != domain.ItemStatusAvailable {
			return domain.Policyf("item is not available for trade")
		}

		listing = &domain.Listing{
			CollectionItemID: itemID,
			SellerID:         sellerID,
			PriceCents:       priceCents,
			Description:      description,
			Status:           domain.ListingStatusOpen,
		}
		if err := r.Listings.Create(ctx, listing); err != nil {
			return err
		}
		return r.Collections.UpdateStatus(ctx, itemID, domain.ItemStatusInTrade)
	})
	if err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *marketService) BrowseListings(ctx context.Context) ([]domain.Listing, error) {
	return s.store.Repos().Listings.ListOpen(ctx)
}

func (s *marketService) ListOngoingTrades(ctx context.Context, userID int32) ([]domain.Listing, error) {
	return s.store.Repos().Listings.ListOngoingByUser(ctx, userID)
}

func (s *marketService) RequestPurchase(ctx context.Context, buyerID, listingID int32) (*domain.Listing, error) {
	var listing *domain.Listing
	err := s.store.ExecTx(ctx, func(r *repository.Repositories) error {
		var err error
		listing, err = r.Listings.GetByIDForUpdate(ctx, listingID)
		if err != nil {
			return err
		}
		if listing.SellerID == buyerID {
			return domain.Policyf("sellers cannot purchase their own listing")
		}
		if listing.Status != domain.ListingStatusOpen {
			return domain.Policyf("listing is not open for purchase requests")
		}

		listing.BuyerID = &buyerID
		listing.Status = domain.ListingStatusRequested
		return r.Listings.Update(ctx, listing)
	})
	if err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *marketService) ApproveRequest(ctx context.Context, sellerID, listingID int32) (*domain.Listing, error) {
	var listing *domain.Listing
	err := s.store.ExecTx(ctx, func(r *repository.Repositories) error {
		var err error
		listing, err = r.Listings.GetByIDForUpdate(ctx, listingID)
		if err != nil {
			return err
		}
		if listing.SellerID != sellerID {
			return domain.Policyf("only the seller can approve a purchase request")
		}
		if listing.Status != domain.ListingStatusRequested {
			return domain.Policyf("listing has no pending purchase request")
		}

		listing.Status = domain.ListingStatusApproved
		return r.Listings.Update(ctx, listing)
	})
	if err != nil {
		return nil, err
	}

	if listing.BuyerID != nil {
		if buyer, err := s.store.Repos().Users.GetByID(ctx, *listing.BuyerID); err == nil && buyer.Email != "" {
			if err := s.emailSvc.SendTradeApprovedNotification(ctx, buyer.Email, buyer.Username, listing.ID); err != nil {
				logger.Warn("trade approval notification failed", "listing_id", listing.ID, "error", err)
			}
		}
	}
	return listing, nil
}

// SubmitSettlementDetail writes one party's settlement field. The PAID
// transition is derived: it happens exactly when the second field lands,
// in the same transaction.
func (s *marketService) SubmitSettlementDetail(ctx context.Context, userID, listingID int32, detail domain.SettlementDetail) (*domain.Listing, string, error) {
	if detail.Value == "" {
		return nil, "", domain.Policyf("settlement detail must not be empty")
	}

	var listing *domain.Listing
	var msg string
	err := s.store.ExecTx(ctx, func(r *repository.Repositories) error {
		var err error
		listing, err = r.Listings.GetByIDForUpdate(ctx, listingID)
		if err != nil {
			return err
		}

		switch detail.Party {
		case domain.SettlementPartySeller:
			if listing.SellerID != userID {
				return domain.Policyf("only the seller may submit the seller settlement detail")
			}
		case domain.SettlementPartyBuyer:
			if listing.BuyerID == nil || *listing.BuyerID != userID {
				return domain.Policyf("only the buyer may submit the buyer settlement detail")
			}
		default:
			return domain.Policyf("unknown settlement party")
		}

		if listing.Status != domain.ListingStatusApproved {
			return domain.Policyf("settlement details are accepted only for approved trades")
		}

		if detail.Party == domain.SettlementPartySeller {
			listing.SellerInfo = detail.Value
		} else {
			listing.BuyerInfo = detail.Value
		}

		msg = "settlement detail recorded"
		if listing.SettlementReady() {
			listing.Status = domain.ListingStatusPaid
			msg = "both parties confirmed; trade moved to paid"
		}
		return r.Listings.Update(ctx, listing)
	})
	if err != nil {
		return nil, "", err
	}
	return listing, msg, nil
}

// CompleteTrade archives the trade, hands the item to the buyer and
// removes the listing as one unit, then re-derives both parties' roles
// before committing.
func (s *marketService) CompleteTrade(ctx context.Context, sellerID, listingID int32) (*domain.TradeRecord, error) {
	var record *domain.TradeRecord
	var buyerID int32
	err := s.store.ExecTx(ctx, func(r *repository.Repositories) error {
		listing, err := r.Listings.GetByIDForUpdate(ctx, listingID)
		if err != nil {
			return err
		}
		if listing.SellerID != sellerID {
			return domain.Policyf("only the seller can complete the trade")
		}
		if listing.Status != domain.ListingStatusPaid || listing.BuyerID == nil {
			return domain.Policyf("not eligible to complete")
		}
		buyerID = *listing.BuyerID

		record = &domain.TradeRecord{
			ListingID:       listing.ID,
			SellerID:        listing.SellerID,
			BuyerID:         buyerID,
			FinalPriceCents: listing.PriceCents,
		}
		if err := r.Trades.Create(ctx, record); err != nil {
			return err
		}
		if err := r.Collections.TransferOwner(ctx, listing.CollectionItemID, buyerID, domain.ItemStatusSold); err != nil {
			return err
		}
		if err := r.Listings.Delete(ctx, listing.ID); err != nil {
			return err
		}

		for _, uid := range []int32{listing.SellerID, buyerID} {
			if err := recheckReputation(ctx, r, uid); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, uid := range []int32{sellerID, buyerID} {
		if u, err := s.store.Repos().Users.GetByID(ctx, uid); err == nil && u.Email != "" {
			if err := s.emailSvc.SendTradeCompletedNotification(ctx, u.Email, u.Username, record.FinalPriceCents); err != nil {
				logger.Warn("trade completion notification failed", "user_id", uid, "error", err)
			}
		}
	}
	return record, nil
}

func (s *marketService) ListTradeHistory(ctx context.Context, userID int32) ([]domain.TradeRecord, error) {
	return s.store.Repos().Trades.ListByUser(ctx, userID)
}

// recheckReputation re-derives a user's role from their counters and
// persists it within the calling transaction when it changed.
func recheckReputation(ctx context.Context, r *repository.Repositories, userID int32) error {
	u, err := r.Users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if next := domain.NextRole(u.Role, u.Likes, u.Dislikes); next != u.Role {
		return r.Users.UpdateRole(ctx, userID, next)
	}
	return nil
}
