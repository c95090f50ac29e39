package http

import (
	"net/http"
	"time"

	"boardlink-backend/internal/service"
)

type GatheringHandler struct {
	gatheringSvc service.GatheringService
	adminSvc     service.AdminService
}

func NewGatheringHandler(gatheringSvc service.GatheringService, adminSvc service.AdminService) *GatheringHandler {
	return &GatheringHandler{gatheringSvc: gatheringSvc, adminSvc: adminSvc}
}

type createGatheringRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Location        string `json:"location"`
	MeetDate        string `json:"meet_date"` // "2006-01-02"
	MaxParticipants int32  `json:"max_participants"`
}

func (h *GatheringHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGatheringRequest
	if err := decodeBody(r, &req); err != nil || req.Title == "" {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid request body"})
		return
	}
	meetDate, err := time.Parse("2006-01-02", req.MeetDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "meet_date must be YYYY-MM-DD"})
		return
	}

	g, err := h.gatheringSvc.CreateGathering(r.Context(), callerID(r.Context()), req.Title, req.Description, req.Location, meetDate, req.MaxParticipants)
	if err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "gathering created", g)
}

func (h *GatheringHandler) Search(w http.ResponseWriter, r *http.Request) {
	gatherings, err := h.gatheringSvc.SearchGatherings(r.Context(), r.URL.Query().Get("location"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, gatherings)
}

func (h *GatheringHandler) ListHosted(w http.ResponseWriter, r *http.Request) {
	gatherings, err := h.gatheringSvc.ListHosted(r.Context(), callerID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, gatherings)
}

func (h *GatheringHandler) ListApplicants(w http.ResponseWriter, r *http.Request) {
	gatheringID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid gathering id"})
		return
	}
	applicants, err := h.gatheringSvc.ListApplicants(r.Context(), gatheringID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, applicants)
}

func (h *GatheringHandler) ListMyApplications(w http.ResponseWriter, r *http.Request) {
	applications, err := h.gatheringSvc.ListMyApplications(r.Context(), callerID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, applications)
}

func (h *GatheringHandler) Join(w http.ResponseWriter, r *http.Request) {
	gatheringID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid gathering id"})
		return
	}

	part, msg, err := h.gatheringSvc.Join(r.Context(), callerID(r.Context()), gatheringID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, msg, part)
}

type participantRequest struct {
	UserID int32 `json:"user_id"`
}

func (h *GatheringHandler) Approve(w http.ResponseWriter, r *http.Request) {
	gatheringID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid gathering id"})
		return
	}
	var req participantRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid request body"})
		return
	}

	if err := h.gatheringSvc.Approve(r.Context(), callerID(r.Context()), gatheringID, req.UserID); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "participant approved", nil)
}

func (h *GatheringHandler) Reject(w http.ResponseWriter, r *http.Request) {
	gatheringID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid gathering id"})
		return
	}
	var req participantRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid request body"})
		return
	}

	if err := h.gatheringSvc.Reject(r.Context(), callerID(r.Context()), gatheringID, req.UserID); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "participant rejected", nil)
}

func (h *GatheringHandler) Close(w http.ResponseWriter, r *http.Request) {
	gatheringID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid gathering id"})
		return
	}

	if err := h.gatheringSvc.Close(r.Context(), callerID(r.Context()), gatheringID); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "gathering closed", nil)
}

func (h *GatheringHandler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	gatheringID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid gathering id"})
		return
	}

	if err := h.adminSvc.DeleteGathering(r.Context(), gatheringID); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "gathering deleted", nil)
}
