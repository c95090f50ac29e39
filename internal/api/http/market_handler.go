package http

import (
	"net/http"

	"boardlink-backend/internal/domain"
	"boardlink-backend/internal/service"
)

type MarketHandler struct {
	marketSvc service.MarketService
	adminSvc  service.AdminService
}

func NewMarketHandler(marketSvc service.MarketService, adminSvc service.AdminService) *MarketHandler {
	return &MarketHandler{marketSvc: marketSvc, adminSvc: adminSvc}
}

type createListingRequest struct {
	CollectionItemID int32  `json:"collection_item_id"`
	PriceCents       int32  `json:"price_cents"`
	Description      string `json:"description"`
}

func (h *MarketHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createListingRequest
	if err := decodeBody(r, &req); err != nil || req.CollectionItemID <= 0 {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid request body"})
		return
	}

	listing, err := h.marketSvc.CreateListing(r.Context(), callerID(r.Context()), req.CollectionItemID, req.PriceCents, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "listing created", listing)
}

func (h *MarketHandler) Browse(w http.ResponseWriter, r *http.Request) {
	listings, err := h.marketSvc.BrowseListings(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, listings)
}

func (h *MarketHandler) ListOngoing(w http.ResponseWriter, r *http.Request) {
	listings, err := h.marketSvc.ListOngoingTrades(r.Context(), callerID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, listings)
}

func (h *MarketHandler) Request(w http.ResponseWriter, r *http.Request) {
	listingID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid listing id"})
		return
	}

	listing, err := h.marketSvc.RequestPurchase(r.Context(), callerID(r.Context()), listingID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "purchase requested", listing)
}

func (h *MarketHandler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	listingID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid listing id"})
		return
	}

	listing, err := h.marketSvc.ApproveRequest(r.Context(), callerID(r.Context()), listingID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "purchase request approved", listing)
}

type settlementRequest struct {
	Party domain.SettlementParty `json:"party"`
	Value string                 `json:"value"`
}

func (h *MarketHandler) SubmitSettlement(w http.ResponseWriter, r *http.Request) {
	listingID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid listing id"})
		return
	}
	var req settlementRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid request body"})
		return
	}

	listing, msg, err := h.marketSvc.SubmitSettlementDetail(r.Context(), callerID(r.Context()), listingID,
		domain.SettlementDetail{Party: req.Party, Value: req.Value})
	if err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, msg, listing)
}

func (h *MarketHandler) Complete(w http.ResponseWriter, r *http.Request) {
	listingID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid listing id"})
		return
	}

	record, err := h.marketSvc.CompleteTrade(r.Context(), callerID(r.Context()), listingID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "trade completed", record)
}

func (h *MarketHandler) History(w http.ResponseWriter, r *http.Request) {
	records, err := h.marketSvc.ListTradeHistory(r.Context(), callerID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, records)
}

func (h *MarketHandler) AdminCancel(w http.ResponseWriter, r *http.Request) {
	listingID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid listing id"})
		return
	}

	if err := h.adminSvc.CancelListing(r.Context(), listingID); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "listing cancelled", nil)
}
