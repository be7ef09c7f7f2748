package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/Rrens/fitcoach/internal/api/middleware"
	"github.com/Rrens/fitcoach/internal/api/response"
	"github.com/Rrens/fitcoach/internal/service"
	"github.com/Rrens/fitcoach/internal/training"
	"github.com/rs/zerolog/log"
)

// TrainingHandler handles plan generation and lookup
type TrainingHandler struct {
	trainingService *service.TrainingService
}

// NewTrainingHandler creates a new training handler
func NewTrainingHandler(trainingService *service.TrainingService) *TrainingHandler {
	return &TrainingHandler{trainingService: trainingService}
}

type generateMetadata struct {
	ExecutionTime int64     `json:"executionTime"`
	Timestamp     time.Time `json:"timestamp"`
	Fallback      bool      `json:"fallback"`
	Stages        []string  `json:"stages"`
}

// Generate validates the profile, builds a plan and stores it
func (h *TrainingHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, response.CodeNoToken, "Token não fornecido")
		return
	}

	var form training.Form
	if !decodeJSON(w, r, &form) {
		return
	}

	result, err := h.trainingService.Generate(r.Context(), userID, form)
	if err != nil {
		var verr *training.ValidationError
		if errors.As(err, &verr) {
			response.ErrorWithDetails(w, http.StatusBadRequest, response.CodeValidation, "Dados inválidos", verr.Errors)
			return
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("training generation failed")
		response.InternalError(w, "Erro interno do servidor")
		return
	}

	stages := make([]string, len(result.Trace))
	for i, s := range result.Trace {
		stages[i] = s.String()
	}

	response.Created(w, map[string]any{
		"training": result.Training.View(),
		"metadata": generateMetadata{
			ExecutionTime: result.ExecutionTime.Milliseconds(),
			Timestamp:     time.Now().UTC(),
			Fallback:      result.Fallback,
			Stages:        stages,
		},
	})
}

// Current returns the stored plan, or null when the user has none
func (h *TrainingHandler) Current(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, response.CodeNoToken, "Token não fornecido")
		return
	}

	view, err := h.trainingService.Current(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("training lookup failed")
		response.InternalError(w, "Erro interno do servidor")
		return
	}

	response.OK(w, map[string]any{"training": view})
}
