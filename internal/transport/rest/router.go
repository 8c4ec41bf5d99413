package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/scorekeeper-backend/internal/transport/middleware"
)

// RouterDeps holds everything NewRouter wires together.
type RouterDeps struct {
	Auth    *AuthHandler
	Scoring *ScoringHandler
	Health  *HealthHandler

	// Chain wraps the whole router, so it also sees 404, 405 and CORS
	// preflight requests.
	Chain middleware.Middleware
	// LoginLimit guards POST /auth/telegram. Optional.
	LoginLimit middleware.Middleware
}

// NewRouter builds the HTTP handler of the service.
func NewRouter(d RouterDeps) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/live", d.Health.Live).Methods(http.MethodGet)
	r.HandleFunc("/ready", d.Health.Ready).Methods(http.MethodGet)
	r.HandleFunc("/health", d.Health.Health).Methods(http.MethodGet)

	var login http.Handler = http.HandlerFunc(d.Auth.TelegramLogin)
	if d.LoginLimit != nil {
		login = d.LoginLimit(login)
	}
	r.Handle("/auth/telegram", login).Methods(http.MethodPost)
	r.HandleFunc("/session", d.Auth.Session).Methods(http.MethodGet)

	p := r.PathPrefix("/participants").Subrouter()
	p.HandleFunc("", d.Scoring.ListParticipants).Methods(http.MethodGet)
	p.HandleFunc("", d.Scoring.CreateParticipant).Methods(http.MethodPost)
	p.HandleFunc("/{id}", d.Scoring.GetParticipant).Methods(http.MethodGet)
	p.HandleFunc("/{id}", d.Scoring.UpdateParticipant).Methods(http.MethodPatch)
	p.HandleFunc("/{id}", d.Scoring.DeleteParticipant).Methods(http.MethodDelete)

	g := r.PathPrefix("/games").Subrouter()
	g.HandleFunc("", d.Scoring.ListGames).Methods(http.MethodGet)
	g.HandleFunc("", d.Scoring.CreateGame).Methods(http.MethodPost)
	g.HandleFunc("/titles", d.Scoring.GameTitles).Methods(http.MethodGet)
	g.HandleFunc("/{id}", d.Scoring.DeleteGame).Methods(http.MethodDelete)

	r.HandleFunc("/statistics", d.Scoring.Statistics).Methods(http.MethodGet)
	r.HandleFunc("/statistics/by-game", d.Scoring.StatisticsByGame).Methods(http.MethodGet)
	r.HandleFunc("/migrate", d.Scoring.Migrate).Methods(http.MethodPost)

	if d.Chain == nil {
		return r
	}
	return d.Chain(r)
}
