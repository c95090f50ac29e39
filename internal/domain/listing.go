package domain

import "time"

type ListingStatus string

const (
	ListingStatusOpen      ListingStatus = "OPEN"
	ListingStatusRequested ListingStatus = "REQUESTED"
	ListingStatusApproved  ListingStatus = "APPROVED"
	ListingStatusPaid      ListingStatus = "PAID"
)

type Listing struct {
	ID               int32         `json:"id"`
	CollectionItemID int32         `json:"collection_item_id"`
	SellerID         int32         `json:"seller_id"`
	Seller           *User         `json:"seller,omitempty"` // Populated on market browse
	BuyerID          *int32        `json:"buyer_id,omitempty"`
	PriceCents       int32         `json:"price_cents"`
	Description      string        `json:"description"`
	Status           ListingStatus `json:"status"`
	SellerInfo       string        `json:"seller_info,omitempty"` // Free-form settlement detail, not a payment integration
	BuyerInfo        string        `json:"buyer_info,omitempty"`
	GameTitle        string        `json:"game_title,omitempty"` // Populated on market browse
	CreatedOn        time.Time     `json:"created_on"`
}

// SettlementReady reports whether both parties have submitted their
// settlement detail; the Paid transition is derived from exactly this.
func (l *Listing) SettlementReady() bool {
	return l.SellerInfo != "" && l.BuyerInfo != ""
}

type SettlementParty string

const (
	SettlementPartySeller SettlementParty = "SELLER"
	SettlementPartyBuyer  SettlementParty = "BUYER"
)

// SettlementDetail is a tagged value: each trade party submits its own
// side independently. Resolving the party through a closed enum keeps
// the column choice out of string-built SQL.
type SettlementDetail struct {
	Party SettlementParty `json:"party"`
	Value string          `json:"value"`
}

// TradeRecord is the immutable archival row written exactly once when a
// listing completes. Append-only.
type TradeRecord struct {
	ID              int32     `json:"id"`
	ListingID       int32     `json:"listing_id"`
	SellerID        int32     `json:"seller_id"`
	BuyerID         int32     `json:"buyer_id"`
	FinalPriceCents int32     `json:"final_price_cents"`
	CompletedOn     time.Time `json:"completed_on"`
}
