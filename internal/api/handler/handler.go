package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Rrens/fitcoach/internal/api/response"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// maxBodyBytes bounds every JSON request body
const maxBodyBytes = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.BadRequest(w, response.CodeInvalidJSON, "JSON inválido")
		return false
	}
	return true
}

func validateStruct(w http.ResponseWriter, input any) bool {
	err := validate.Struct(input)
	if err == nil {
		return true
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		response.BadRequest(w, response.CodeValidation, err.Error())
		return false
	}

	details := make(map[string]string)
	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			details[field] = "campo obrigatório"
		case "email":
			details[field] = "email inválido"
		case "min":
			details[field] = "deve ter pelo menos " + e.Param() + " caracteres"
		case "max":
			details[field] = "deve ter no máximo " + e.Param() + " caracteres"
		default:
			details[field] = "falhou na validação " + e.Tag()
		}
	}
	response.ErrorWithDetails(w, http.StatusBadRequest, response.CodeValidation, "Dados inválidos", details)
	return false
}
