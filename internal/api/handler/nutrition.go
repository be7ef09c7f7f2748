package handler

import (
	"net/http"
	"strings"

	"github.com/Rrens/fitcoach/internal/api/middleware"
	"github.com/Rrens/fitcoach/internal/api/response"
	"github.com/Rrens/fitcoach/internal/service"
)

// NutritionHandler serves the nutrition chat
type NutritionHandler struct {
	nutritionService *service.NutritionService
}

// NewNutritionHandler creates a new nutrition handler
func NewNutritionHandler(nutritionService *service.NutritionService) *NutritionHandler {
	return &NutritionHandler{nutritionService: nutritionService}
}

// Chat answers one message. Oracle failures are reported inside a 200 reply.
func (h *NutritionHandler) Chat(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, response.CodeNoToken, "Token não fornecido")
		return
	}

	var input struct {
		Message string `json:"message" validate:"max=4000"`
	}
	if !decodeJSON(w, r, &input) || !validateStruct(w, input) {
		return
	}
	if strings.TrimSpace(input.Message) == "" {
		response.BadRequest(w, response.CodeValidation, "Mensagem vazia")
		return
	}

	response.OK(w, h.nutritionService.Chat(r.Context(), userID, input.Message))
}
