package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/chayilhub/chayil/internal/assistant"
	"github.com/chayilhub/chayil/internal/derive"
	"github.com/chayilhub/chayil/internal/domain"
	"github.com/chayilhub/chayil/internal/identity"
	"github.com/chayilhub/chayil/internal/session"
	"github.com/chayilhub/chayil/internal/store"
	"github.com/rs/zerolog"
)

// dashboardMaxRadius matches the wheel chart radius the dashboard renders at.
const dashboardMaxRadius = 75.0

// Dependencies are the collaborators the handlers need.
type Dependencies struct {
	Lifecycle *session.Controller
	Coach     *assistant.Coach
}

// Handler serves the planner API.
type Handler struct {
	lifecycle *session.Controller
	coach     *assistant.Coach
}

// NewHandler creates a Handler from its dependencies.
func NewHandler(deps Dependencies) *Handler {
	return &Handler{lifecycle: deps.Lifecycle, coach: deps.Coach}
}

type credentialsRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

type sessionResponse struct {
	UserID      string `json:"userId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	AccessToken string `json:"accessToken"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, err := h.lifecycle.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		var authErr *identity.AuthError
		if errors.As(err, &authErr) {
			respondError(w, http.StatusUnauthorized, authErr.Message)
			return
		}
		if errors.Is(err, identity.ErrUnavailable) {
			respondError(w, http.StatusServiceUnavailable, "identity provider unavailable")
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("sign-in failed")
		respondError(w, http.StatusInternalServerError, "sign-in failed")
		return
	}

	respondJSON(w, http.StatusOK, sessionResponse{
		UserID:      sess.UserID,
		Email:       sess.Email,
		DisplayName: sess.DisplayName,
		AccessToken: sess.AccessToken,
	})
}

func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.lifecycle.SignUp(r.Context(), req.Email, req.Password, req.DisplayName); err != nil {
		var authErr *identity.AuthError
		if errors.As(err, &authErr) {
			respondError(w, http.StatusBadRequest, authErr.Message)
			return
		}
		respondError(w, http.StatusServiceUnavailable, "identity provider unavailable")
		return
	}

	// Access is granted after the verification e-mail is confirmed.
	respondJSON(w, http.StatusAccepted, map[string]string{"status": "pending_verification"})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.lifecycle.SignOut(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// activeStore resolves the live store or writes a 401.
func (h *Handler) activeStore(w http.ResponseWriter) *store.Store {
	st := h.lifecycle.Store()
	if st == nil || h.lifecycle.State() != session.StateSignedIn {
		respondError(w, http.StatusUnauthorized, "not signed in")
		return nil
	}
	return st
}

func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	st := h.activeStore(w)
	if st == nil {
		return
	}
	respondJSON(w, http.StatusOK, st.Current())
}

func (h *Handler) PatchState(w http.ResponseWriter, r *http.Request) {
	st := h.activeStore(w)
	if st == nil {
		return
	}

	// Unknown fields are dropped, not rejected: stored-schema forward
	// compatibility.
	var patch store.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "invalid patch body")
		return
	}

	respondJSON(w, http.StatusOK, st.Patch(patch))
}

type summaryResponse struct {
	Quote               string               `json:"quote"`
	DailyAffirmation    string               `json:"dailyAffirmation"`
	HabitTotal          int                  `json:"habitTotal"`
	TaskProgress        int                  `json:"taskProgress"`
	ActiveTasks         []domain.Task        `json:"activeTasks"`
	UpcomingMeetings    []domain.Meeting     `json:"upcomingMeetings"`
	WheelSectors        []derive.Sector      `json:"wheelSectors"`
	FinancePersonal     derive.FinanceTotals `json:"financePersonal"`
	FinanceBusiness     derive.FinanceTotals `json:"financeBusiness"`
	FinanceConsolidated derive.FinanceTotals `json:"financeConsolidated"`
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	st := h.activeStore(w)
	if st == nil {
		return
	}
	state := st.Current()

	rec := domain.Recurrence(r.URL.Query().Get("recurrence"))
	if rec != "" && !domain.ValidRecurrences[rec] {
		respondError(w, http.StatusBadRequest, "unknown recurrence filter")
		return
	}

	respondJSON(w, http.StatusOK, summaryResponse{
		Quote:               domain.DailyQuote(time.Now()),
		DailyAffirmation:    state.DailyAffirmation,
		HabitTotal:          derive.HabitTotal(state.Habits),
		TaskProgress:        derive.TaskProgress(derive.FilterTasks(state.Tasks, rec)),
		ActiveTasks:         derive.ActiveTasks(state.Tasks, 5),
		UpcomingMeetings:    derive.UpcomingMeetings(state.Meetings, 3),
		WheelSectors:        derive.WheelSectors(state.Wheel, dashboardMaxRadius),
		FinancePersonal:     derive.FinanceSummary(state.FinancePersonal),
		FinanceBusiness:     derive.FinanceSummary(state.FinanceBusiness),
		FinanceConsolidated: derive.ConsolidatedSummary(state.FinancePersonal, state.FinanceBusiness),
	})
}

type wheelSaveRequest struct {
	Categories []domain.WheelCategory `json:"categories"`
}

func (h *Handler) SaveWheelCalibration(w http.ResponseWriter, r *http.Request) {
	st := h.activeStore(w)
	if st == nil {
		return
	}

	var req wheelSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid calibration body")
		return
	}
	for _, cat := range req.Categories {
		if cat.Score < domain.WheelScoreMin || cat.Score > domain.WheelScoreMax {
			respondError(w, http.StatusBadRequest, "scores must be between 1 and 10")
			return
		}
	}

	// Saving a calibration is the only operation that appends history:
	// newest first, each entry an immutable snapshot.
	state := st.Current()
	entry := domain.NewWheelEntry(time.Now(), req.Categories)
	history := append([]domain.WheelEntry{entry}, state.WheelHistory...)

	respondJSON(w, http.StatusOK, st.Patch(store.Patch{
		Wheel:        &req.Categories,
		WheelHistory: &history,
	}))
}

type coachRequest struct {
	Context string `json:"context"`
	Niche   string `json:"niche"`
}

func (h *Handler) CoachAdvice(w http.ResponseWriter, r *http.Request) {
	var req coachRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"advice": h.coach.BusinessAdvice(r.Context(), req.Context),
	})
}

func (h *Handler) CoachIdeas(w http.ResponseWriter, r *http.Request) {
	var req coachRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"ideas": h.coach.ContentIdeas(r.Context(), req.Niche),
	})
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
