package service

import (
	"context"
	"time"

	"boardlink-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, username, password, email, location string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, string, *domain.User, error) // access, refresh
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
	// GiveFeedback bumps the target's like/dislike counter and re-derives
	// their role in the same transaction.
	GiveFeedback(ctx context.Context, targetID int32, kind domain.FeedbackKind) (*domain.User, error)
	RegisterGame(ctx context.Context, userID int32, game *domain.BoardGame, conditionRank string) (*domain.CollectionItem, error)
	ListCollection(ctx context.Context, userID int32) ([]domain.CollectionItem, error)
}

type GatheringService interface {
	CreateGathering(ctx context.Context, hostID int32, title, description, location string, meetDate time.Time, maxParticipants int32) (*domain.Gathering, error)
	SearchGatherings(ctx context.Context, location string) ([]domain.Gathering, error)
	ListHosted(ctx context.Context, hostID int32) ([]domain.Gathering, error)
	ListApplicants(ctx context.Context, gatheringID int32) ([]domain.Participation, error)
	ListMyApplications(ctx context.Context, userID int32) ([]domain.Participation, error)
	// Join allocates a waitlist position according to the user's role and
	// returns the per-branch outcome message.
	Join(ctx context.Context, userID, gatheringID int32) (*domain.Participation, string, error)
	Approve(ctx context.Context, hostID, gatheringID, targetUserID int32) error
	Reject(ctx context.Context, hostID, gatheringID, targetUserID int32) error
	Close(ctx context.Context, hostID, gatheringID int32) error
}

type MarketService interface {
	CreateListing(ctx context.Context, sellerID, itemID, priceCents int32, description string) (*domain.Listing, error)
	BrowseListings(ctx context.Context) ([]domain.Listing, error)
	ListOngoingTrades(ctx context.Context, userID int32) ([]domain.Listing, error)
	RequestPurchase(ctx context.Context, buyerID, listingID int32) (*domain.Listing, error)
	ApproveRequest(ctx context.Context, sellerID, listingID int32) (*domain.Listing, error)
	// SubmitSettlementDetail records one party's settlement field; when
	// both are present the listing transitions to PAID in the same
	// transaction. Returns the outcome message.
	SubmitSettlementDetail(ctx context.Context, userID, listingID int32, detail domain.SettlementDetail) (*domain.Listing, string, error)
	CompleteTrade(ctx context.Context, sellerID, listingID int32) (*domain.TradeRecord, error)
	ListTradeHistory(ctx context.Context, userID int32) ([]domain.TradeRecord, error)
}

type AdminService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	SetUserRole(ctx context.Context, targetID int32, role domain.Role) error
	DeleteGathering(ctx context.Context, gatheringID int32) error
	CancelListing(ctx context.Context, listingID int32) error
}

type EmailService interface {
	SendApprovalNotification(ctx context.Context, email, username, gatheringTitle string) error
	SendTradeApprovedNotification(ctx context.Context, email, username string, listingID int32) error
	SendTradeCompletedNotification(ctx context.Context, email, username string, priceCents int32) error
}
