package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/scorekeeper-backend/internal/domain"
	"github.com/heartmarshall/scorekeeper-backend/internal/service/scoring"
)

// scoringService defines the storage adapter operations served over REST.
type scoringService interface {
	ListParticipants(ctx context.Context) []domain.Participant
	FindParticipant(ctx context.Context, id uuid.UUID) *domain.Participant
	CreateParticipant(ctx context.Context, input scoring.CreateParticipantInput) scoring.ParticipantResult
	UpdateParticipant(ctx context.Context, input scoring.UpdateParticipantInput) scoring.ParticipantResult
	DeleteParticipant(ctx context.Context, id uuid.UUID) bool
	ListGames(ctx context.Context) []domain.Game
	CreateGame(ctx context.Context, input scoring.CreateGameInput) scoring.CreateGameResult
	GameTitles(ctx context.Context) []string
	DeleteGame(ctx context.Context, id uuid.UUID) bool
	Statistics(ctx context.Context) []domain.ParticipantStats
	StatisticsByGame(ctx context.Context) []domain.TitleStats
	MigrateWithReport(ctx context.Context) scoring.MigrationReport
}

// ScoringHandler serves participant, game and statistics endpoints.
type ScoringHandler struct {
	svc scoringService
}

// NewScoringHandler creates a ScoringHandler. The service logs its own
// failures, so the handler carries no logger.
func NewScoringHandler(svc scoringService) *ScoringHandler {
	return &ScoringHandler{svc: svc}
}

// ---------------------------------------------------------------------------
// Payloads
// ---------------------------------------------------------------------------

type participantPayload struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type colorPayload struct {
	Status   string `json:"status"`
	Original string `json:"original,omitempty"`
	Color    string `json:"color"`
}

type participantWriteResponse struct {
	Participant participantPayload `json:"participant"`
	Color       *colorPayload      `json:"colorCheck,omitempty"`
}

type createParticipantRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type updateParticipantRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

type gamePayload struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"name"`
	Date           time.Time   `json:"date"`
	WinnerID       uuid.UUID   `json:"winnerId"`
	ParticipantIDs []uuid.UUID `json:"participantIds"`
}

type createGameRequest struct {
	Name           string      `json:"name"`
	WinnerID       uuid.UUID   `json:"winnerId"`
	ParticipantIDs []uuid.UUID `json:"participantIds"`
	Date           *time.Time  `json:"date"`
}

type createGameResponse struct {
	Outcome string       `json:"outcome"`
	Game    *gamePayload `json:"game,omitempty"`
	Detail  string       `json:"detail,omitempty"`
}

type participantStatsPayload struct {
	ParticipantID   uuid.UUID `json:"participantId"`
	ParticipantName string    `json:"participantName"`
	Color           string    `json:"color"`
	TotalGames      int       `json:"totalGames"`
	Wins            int       `json:"wins"`
	WinPercentage   int       `json:"winPercentage"`
}

type titleStatsPayload struct {
	GameName     string                    `json:"gameName"`
	GamesCount   int                       `json:"gamesCount"`
	Participants []participantStatsPayload `json:"participants"`
}

type migrationPayload struct {
	Migrated           bool   `json:"migrated"`
	Skipped            string `json:"skipped,omitempty"`
	ParticipantsCopied int    `json:"participantsCopied"`
	ParticipantsFailed int    `json:"participantsFailed"`
	GamesCopied        int    `json:"gamesCopied"`
	GamesPartial       int    `json:"gamesPartial"`
	GamesSkipped       int    `json:"gamesSkipped"`
	GamesFailed        int    `json:"gamesFailed"`
}

// ---------------------------------------------------------------------------
// Participants
// ---------------------------------------------------------------------------

// ListParticipants handles GET /participants.
func (h *ScoringHandler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	list := h.svc.ListParticipants(r.Context())
	out := make([]participantPayload, 0, len(list))
	for _, p := range list {
		out = append(out, toParticipantPayload(p))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetParticipant handles GET /participants/{id}.
func (h *ScoringHandler) GetParticipant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p := h.svc.FindParticipant(r.Context(), id)
	if p == nil {
		writeError(w, http.StatusNotFound, "participant not found")
		return
	}
	writeJSON(w, http.StatusOK, toParticipantPayload(*p))
}

// CreateParticipant handles POST /participants.
func (h *ScoringHandler) CreateParticipant(w http.ResponseWriter, r *http.Request) {
	var req createParticipantRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := scoring.CreateParticipantInput{Name: req.Name, Color: req.Color}
	if err := input.Validate(); err != nil {
		writeValidation(w, err)
		return
	}

	res := h.svc.CreateParticipant(r.Context(), input)
	if !res.OK() {
		writeError(w, http.StatusInternalServerError, "participant was not created")
		return
	}
	writeJSON(w, http.StatusCreated, toParticipantWrite(res))
}

// UpdateParticipant handles PATCH /participants/{id}.
func (h *ScoringHandler) UpdateParticipant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req updateParticipantRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := scoring.UpdateParticipantInput{ID: id, Name: req.Name, Color: req.Color}
	if err := input.Validate(); err != nil {
		writeValidation(w, err)
		return
	}

	res := h.svc.UpdateParticipant(r.Context(), input)
	if !res.OK() {
		writeError(w, http.StatusNotFound, "participant not found")
		return
	}
	writeJSON(w, http.StatusOK, toParticipantWrite(res))
}

// DeleteParticipant handles DELETE /participants/{id}.
func (h *ScoringHandler) DeleteParticipant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if !h.svc.DeleteParticipant(r.Context(), id) {
		writeError(w, http.StatusNotFound, "participant not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Games
// ---------------------------------------------------------------------------

// ListGames handles GET /games.
func (h *ScoringHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	list := h.svc.ListGames(r.Context())
	out := make([]gamePayload, 0, len(list))
	for _, g := range list {
		out = append(out, toGamePayload(g))
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateGame handles POST /games. A partially written game is answered
// with 201 and outcome PARTIALLY_CREATED; clients should re-fetch.
func (h *ScoringHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := scoring.CreateGameInput{
		Name:           req.Name,
		WinnerID:       req.WinnerID,
		ParticipantIDs: req.ParticipantIDs,
	}
	if req.Date != nil {
		input.Date = req.Date.UTC()
	}
	if err := input.Validate(); err != nil {
		writeValidation(w, err)
		return
	}

	res := h.svc.CreateGame(r.Context(), input)
	resp := createGameResponse{Outcome: res.Outcome.String(), Detail: res.Detail}
	if res.Game != nil {
		g := toGamePayload(*res.Game)
		resp.Game = &g
	}

	status := http.StatusCreated
	if res.Outcome == domain.OutcomeFailed {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, resp)
}

// GameTitles handles GET /games/titles.
func (h *ScoringHandler) GameTitles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.GameTitles(r.Context()))
}

// DeleteGame handles DELETE /games/{id}.
func (h *ScoringHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if !h.svc.DeleteGame(r.Context(), id) {
		writeError(w, http.StatusNotFound, "game not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Statistics and migration
// ---------------------------------------------------------------------------

// Statistics handles GET /statistics.
func (h *ScoringHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toStatsPayload(h.svc.Statistics(r.Context())))
}

// StatisticsByGame handles GET /statistics/by-game.
func (h *ScoringHandler) StatisticsByGame(w http.ResponseWriter, r *http.Request) {
	groups := h.svc.StatisticsByGame(r.Context())
	out := make([]titleStatsPayload, 0, len(groups))
	for _, g := range groups {
		out = append(out, titleStatsPayload{
			GameName:     g.GameName,
			GamesCount:   g.GamesCount,
			Participants: toStatsPayload(g.Participants),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// Migrate handles POST /migrate: copies the caller's local data into the
// remote backend once.
func (h *ScoringHandler) Migrate(w http.ResponseWriter, r *http.Request) {
	rep := h.svc.MigrateWithReport(r.Context())
	writeJSON(w, http.StatusOK, migrationPayload{
		Migrated:           rep.Migrated,
		Skipped:            rep.Skipped,
		ParticipantsCopied: rep.ParticipantsCopied,
		ParticipantsFailed: rep.ParticipantsFailed,
		GamesCopied:        rep.GamesCopied,
		GamesPartial:       rep.GamesPartial,
		GamesSkipped:       rep.GamesSkipped,
		GamesFailed:        rep.GamesFailed,
	})
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func toParticipantPayload(p domain.Participant) participantPayload {
	return participantPayload{
		ID:        p.ID,
		Name:      p.Name,
		Color:     p.Color,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toParticipantWrite(res scoring.ParticipantResult) participantWriteResponse {
	resp := participantWriteResponse{Participant: toParticipantPayload(*res.Participant)}
	if res.Color.Status != "" {
		resp.Color = &colorPayload{Status: string(res.Color.Status), Color: res.Color.Color}
		if res.Color.Corrected() {
			resp.Color.Original = res.Color.Original
		}
	}
	return resp
}

func toGamePayload(g domain.Game) gamePayload {
	ids := g.ParticipantIDs
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return gamePayload{
		ID:             g.ID,
		Name:           g.Name,
		Date:           g.Date,
		WinnerID:       g.WinnerID,
		ParticipantIDs: ids,
	}
}

func toStatsPayload(stats []domain.ParticipantStats) []participantStatsPayload {
	out := make([]participantStatsPayload, 0, len(stats))
	for _, s := range stats {
		out = append(out, participantStatsPayload{
			ParticipantID:   s.ParticipantID,
			ParticipantName: s.ParticipantName,
			Color:           s.Color,
			TotalGames:      s.TotalGames,
			Wins:            s.Wins,
			WinPercentage:   s.WinPercentage,
		})
	}
	return out
}
