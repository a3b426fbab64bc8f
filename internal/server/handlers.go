package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shashankd123/workout-frontend/internal/generate"
	"github.com/shashankd123/workout-frontend/internal/plan"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func errorJSON(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// dayParam validates the {day} URL parameter against the seven full day
// names. Reports false after writing the error response.
func dayParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	day := chi.URLParam(r, "day")
	if !plan.ValidDay(day) {
		errorJSON(w, http.StatusBadRequest, "unknown day: "+day)
		return "", false
	}
	return day, true
}

// indexParam parses the {index} URL parameter. Range checking is left to
// the mutation engine, which treats out-of-range indices as no-ops.
func indexParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid exercise index")
		return 0, false
	}
	return idx, true
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"order": plan.DayOrder,
		"plan":  s.repo.Current(),
	})
}

func (s *Server) handleGetDay(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(w, r)
	if !ok {
		return
	}
	dp := s.repo.Current().Day(day)
	writeJSON(w, http.StatusOK, map[string]any{
		"day":       day,
		"workout":   dp.Workout,
		"exercises": dp.Exercises,
	})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := s.repo.UserID(r.Context())
	if err != nil {
		s.log.Error("user id lookup failed", "error", err)
		errorJSON(w, http.StatusInternalServerError, "user id unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"userId": id})
}

func (s *Server) handleReplacePlan(w http.ResponseWriter, r *http.Request) {
	var next plan.WeeklyPlan
	if err := json.NewDecoder(r.Body).Decode(&next); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	for day := range next {
		if !plan.ValidDay(day) {
			errorJSON(w, http.StatusBadRequest, "unknown day: "+day)
			return
		}
	}

	committed := plan.ReplacePlan(s.repo.Current(), next)
	s.repo.Commit(r.Context(), committed)
	writeJSON(w, http.StatusOK, committed)
}

// dayResponse commits the mutated plan and responds with the updated day.
func (s *Server) dayResponse(w http.ResponseWriter, r *http.Request, day string, mutated plan.WeeklyPlan) {
	s.repo.Commit(r.Context(), mutated)
	dp := mutated.Day(day)
	writeJSON(w, http.StatusOK, map[string]any{
		"day":       day,
		"workout":   dp.Workout,
		"exercises": dp.Exercises,
	})
}

func (s *Server) handleSetTitle(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(w, r)
	if !ok {
		return
	}
	var body struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	s.dayResponse(w, r, day, plan.SetDayTitle(s.repo.Current(), day, body.Title))
}

func (s *Server) handleAddExercise(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(w, r)
	if !ok {
		return
	}
	s.dayResponse(w, r, day, plan.AddExercise(s.repo.Current(), day))
}

func (s *Server) handleSetField(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(w, r)
	if !ok {
		return
	}
	idx, ok := indexParam(w, r)
	if !ok {
		return
	}

	var body struct {
		Field string          `json:"field"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	field, ok := plan.ParseField(body.Field)
	if !ok {
		errorJSON(w, http.StatusBadRequest, "unknown field: "+body.Field)
		return
	}

	fv := plan.FieldValue{Field: field}
	var err error
	switch field {
	case plan.FieldName:
		err = json.Unmarshal(body.Value, &fv.Name)
	case plan.FieldSets:
		err = json.Unmarshal(body.Value, &fv.Sets)
		if err == nil && fv.Sets < 0 {
			errorJSON(w, http.StatusBadRequest, "sets must not be negative")
			return
		}
	case plan.FieldReps:
		err = json.Unmarshal(body.Value, &fv.Reps)
	case plan.FieldCompleted:
		err = json.Unmarshal(body.Value, &fv.Completed)
	}
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid value for "+body.Field+": "+err.Error())
		return
	}

	s.dayResponse(w, r, day, plan.SetExerciseField(s.repo.Current(), day, idx, fv))
}

func (s *Server) handleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(w, r)
	if !ok {
		return
	}
	idx, ok := indexParam(w, r)
	if !ok {
		return
	}
	s.dayResponse(w, r, day, plan.DeleteExercise(s.repo.Current(), day, idx))
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(w, r)
	if !ok {
		return
	}
	idx, ok := indexParam(w, r)
	if !ok {
		return
	}
	s.dayResponse(w, r, day, plan.ToggleCompletion(s.repo.Current(), day, idx))
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(w, r)
	if !ok {
		return
	}
	idx, ok := indexParam(w, r)
	if !ok {
		return
	}
	var body struct {
		Direction string `json:"direction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	var dir plan.Direction
	switch body.Direction {
	case "up":
		dir = plan.MoveUp
	case "down":
		dir = plan.MoveDown
	default:
		errorJSON(w, http.StatusBadRequest, "direction must be up or down")
		return
	}
	s.dayResponse(w, r, day, plan.MoveExercise(s.repo.Current(), day, idx, dir))
}

func (s *Server) handleResetDay(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(w, r)
	if !ok {
		return
	}
	s.dayResponse(w, r, day, plan.ResetDayToDefault(s.repo.Current(), day))
}

func (s *Server) handleResetCompletion(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(w, r)
	if !ok {
		return
	}
	s.dayResponse(w, r, day, plan.ResetCompletionForDay(s.repo.Current(), day))
}

// handleGenerate proxies the generation call. The result is a candidate
// only: the client accepts it with POST /api/v1/plan. One request may be in
// flight at a time; concurrent calls get 409.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var profile generate.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	select {
	case s.generating <- struct{}{}:
		defer func() { <-s.generating }()
	default:
		errorJSON(w, http.StatusConflict, "a generation request is already in flight")
		return
	}

	userID, err := s.repo.UserID(r.Context())
	if err != nil {
		s.log.Error("user id lookup failed", "error", err)
		errorJSON(w, http.StatusInternalServerError, "user id unavailable")
		return
	}

	candidate, err := s.gateway.Generate(r.Context(), profile, userID)
	if err != nil {
		var verr *generate.ValidationError
		var terr *generate.TimeoutError
		var rerr *generate.RemoteError
		switch {
		case errors.As(err, &verr):
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":  "invalid profile",
				"fields": verr.Fields,
			})
		case errors.As(err, &terr):
			errorJSON(w, http.StatusGatewayTimeout, terr.Error())
		case errors.As(err, &rerr):
			errorJSON(w, http.StatusBadGateway, rerr.Error())
		default:
			s.log.Error("generation error", "error", err)
			errorJSON(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"candidate": candidate})
}
