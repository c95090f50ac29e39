package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"boardlink-backend/internal/domain"
	"boardlink-backend/internal/service"
)

type UserHandler struct {
	userSvc  service.UserService
	adminSvc service.AdminService
}

func NewUserHandler(userSvc service.UserService, adminSvc service.AdminService) *UserHandler {
	return &UserHandler{userSvc: userSvc, adminSvc: adminSvc}
}

func pathID(r *http.Request, name string) (int32, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.userSvc.GetProfile(r.Context(), callerID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, user)
}

type feedbackRequest struct {
	Kind domain.FeedbackKind `json:"kind"`
}

func (h *UserHandler) GiveFeedback(w http.ResponseWriter, r *http.Request) {
	targetID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid user id"})
		return
	}
	var req feedbackRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid request body"})
		return
	}

	user, err := h.userSvc.GiveFeedback(r.Context(), targetID, req.Kind)
	if err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "feedback recorded", user)
}

type registerGameRequest struct {
	Title         string `json:"title"`
	Genre         string `json:"genre"`
	MinPlayers    int32  `json:"min_players"`
	MaxPlayers    int32  `json:"max_players"`
	AvgPlaytime   int32  `json:"avg_playtime_minutes"`
	Difficulty    string `json:"difficulty"`
	ConditionRank string `json:"condition_rank"`
}

func (h *UserHandler) RegisterGame(w http.ResponseWriter, r *http.Request) {
	var req registerGameRequest
	if err := decodeBody(r, &req); err != nil || req.Title == "" {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid request body"})
		return
	}

	game := &domain.BoardGame{
		Title:       req.Title,
		Genre:       req.Genre,
		MinPlayers:  req.MinPlayers,
		MaxPlayers:  req.MaxPlayers,
		AvgPlaytime: req.AvgPlaytime,
		Difficulty:  req.Difficulty,
	}
	item, err := h.userSvc.RegisterGame(r.Context(), callerID(r.Context()), game, req.ConditionRank)
	if err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "game registered to collection", item)
}

func (h *UserHandler) ListCollection(w http.ResponseWriter, r *http.Request) {
	items, err := h.userSvc.ListCollection(r.Context(), callerID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, items)
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminSvc.ListUsers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, users)
}

type setRoleRequest struct {
	Role domain.Role `json:"role"`
}

func (h *UserHandler) SetUserRole(w http.ResponseWriter, r *http.Request) {
	targetID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid user id"})
		return
	}
	var req setRoleRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid request body"})
		return
	}

	if err := h.adminSvc.SetUserRole(r.Context(), targetID, req.Role); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "role updated", nil)
}
