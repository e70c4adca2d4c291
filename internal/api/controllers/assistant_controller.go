package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"doramahub/internal/models/request_models"
	"doramahub/internal/services"
	"doramahub/pkg/utils"
)

type AssistantController struct {
	assistantService services.AssistantServiceInterface
	sessionService   services.SessionServiceInterface
}

func NewAssistantController(
	assistantService services.AssistantServiceInterface,
	sessionService services.SessionServiceInterface,
) *AssistantController {
	return &AssistantController{
		assistantService: assistantService,
		sessionService:   sessionService,
	}
}

// Suggest godoc
// @Summary Suggest the next doramas based on watch history
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body request_models.SuggestRequest true "Suggestion payload"
// @Success 200 {object} utils.APIResponse
// @Router /assistant/suggest [post]
func (a *AssistantController) Suggest(c *gin.Context) {
	var req request_models.SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := a.sessionService.ResolveByPhone(c.Request.Context(), utils.CleanPhone(req.PhoneNumber))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	suggestion := a.assistantService.Suggest(c.Request.Context(), user)
	utils.RespondSuccess(c, gin.H{"suggestion": suggestion}, "Suggestion ready")
}
