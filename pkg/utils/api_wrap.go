package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// traceID reads the id set by middleware.TraceIDMiddleware. The key is
// duplicated here because utils must not import middleware.
func traceID(c *gin.Context) string {
	id, _ := c.Get("trace_id")
	s, _ := id.(string)
	return s
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps domain errors onto the user-facing messages the
// app has always shown. Anything unrecognized is a generic connection error.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNoActiveAccount):
		RespondError(c, http.StatusForbidden, "Conta desativada.")
	case errors.Is(err, ErrUserNotFound):
		RespondError(c, http.StatusNotFound, "Usuário não encontrado.")
	case errors.Is(err, ErrAccessRevoked):
		RespondError(c, http.StatusForbidden, "Acesso revogado.")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Senha incorreta.")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Dados inválidos.")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Erro de conexão.")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Erro de conexão.")
	}
}
