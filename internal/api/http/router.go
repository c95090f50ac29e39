package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"boardlink-backend/internal/security"
)

// NewRouter wires every endpoint. Auth endpoints are public; everything
// else requires a bearer token, and the admin subtree additionally
// requires the ADMIN role.
func NewRouter(
	tokens security.TokenManager,
	authH *AuthHandler,
	userH *UserHandler,
	gatheringH *GatheringHandler,
	marketH *MarketHandler,
) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/signup", authH.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authH.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authH.Refresh).Methods(http.MethodPost)

	authed := api.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(tokens))

	authed.HandleFunc("/me", userH.GetProfile).Methods(http.MethodGet)
	authed.HandleFunc("/me/collection", userH.ListCollection).Methods(http.MethodGet)
	authed.HandleFunc("/me/collection", userH.RegisterGame).Methods(http.MethodPost)
	authed.HandleFunc("/users/{id:[0-9]+}/feedback", userH.GiveFeedback).Methods(http.MethodPost)

	authed.HandleFunc("/gatherings", gatheringH.Create).Methods(http.MethodPost)
	authed.HandleFunc("/gatherings", gatheringH.Search).Methods(http.MethodGet)
	authed.HandleFunc("/gatherings/hosted", gatheringH.ListHosted).Methods(http.MethodGet)
	authed.HandleFunc("/gatherings/applications", gatheringH.ListMyApplications).Methods(http.MethodGet)
	authed.HandleFunc("/gatherings/{id:[0-9]+}/applicants", gatheringH.ListApplicants).Methods(http.MethodGet)
	authed.HandleFunc("/gatherings/{id:[0-9]+}/join", gatheringH.Join).Methods(http.MethodPost)
	authed.HandleFunc("/gatherings/{id:[0-9]+}/approve", gatheringH.Approve).Methods(http.MethodPost)
	authed.HandleFunc("/gatherings/{id:[0-9]+}/reject", gatheringH.Reject).Methods(http.MethodPost)
	authed.HandleFunc("/gatherings/{id:[0-9]+}/close", gatheringH.Close).Methods(http.MethodPost)

	authed.HandleFunc("/market/listings", marketH.Create).Methods(http.MethodPost)
	authed.HandleFunc("/market/listings", marketH.Browse).Methods(http.MethodGet)
	authed.HandleFunc("/market/trades", marketH.ListOngoing).Methods(http.MethodGet)
	authed.HandleFunc("/market/history", marketH.History).Methods(http.MethodGet)
	authed.HandleFunc("/market/listings/{id:[0-9]+}/request", marketH.Request).Methods(http.MethodPost)
	authed.HandleFunc("/market/listings/{id:[0-9]+}/approve", marketH.ApproveRequest).Methods(http.MethodPost)
	authed.HandleFunc("/market/listings/{id:[0-9]+}/settlement", marketH.SubmitSettlement).Methods(http.MethodPost)
	authed.HandleFunc("/market/listings/{id:[0-9]+}/complete", marketH.Complete).Methods(http.MethodPost)

	authed.HandleFunc("/admin/users", AdminOnly(userH.ListUsers)).Methods(http.MethodGet)
	authed.HandleFunc("/admin/users/{id:[0-9]+}/role", AdminOnly(userH.SetUserRole)).Methods(http.MethodPut)
	authed.HandleFunc("/admin/gatherings/{id:[0-9]+}", AdminOnly(gatheringH.AdminDelete)).Methods(http.MethodDelete)
	authed.HandleFunc("/admin/market/listings/{id:[0-9]+}", AdminOnly(marketH.AdminCancel)).Methods(http.MethodDelete)

	return r
}
