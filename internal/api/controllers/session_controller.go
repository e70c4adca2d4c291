package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"doramahub/internal/models/request_models"
	"doramahub/internal/services"
	"doramahub/pkg/utils"
)

type SessionController struct {
	sessionService services.SessionServiceInterface
}

func NewSessionController(sessionService services.SessionServiceInterface) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

// Status godoc
// @Summary Check account status by phone suffix
// @Description Looks up accounts matching the last digits of a phone number
// @Tags Session
// @Accept json
// @Produce json
// @Param request body request_models.StatusRequest true "Status check payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /session/status [post]
func (s *SessionController) Status(c *gin.Context) {
	var req request_models.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	status := s.sessionService.CheckUserStatus(c.Request.Context(), req.LastDigits)
	utils.RespondSuccess(c, status, "Status checked")
}

// Register godoc
// @Summary Set the password for an existing account
// @Tags Session
// @Accept json
// @Produce json
// @Param request body request_models.RegisterPasswordRequest true "Password registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /session/register [post]
func (s *SessionController) Register(c *gin.Context) {
	var req request_models.RegisterPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	ok := s.sessionService.RegisterPassword(c.Request.Context(), utils.CleanPhone(req.PhoneNumber), req.Password)
	if !ok {
		utils.HandleServiceError(c, utils.ErrUserNotFound)
		return
	}

	utils.RespondSuccess(c, nil, "Senha cadastrada com sucesso")
}

// Login godoc
// @Summary Authenticate a subscriber
// @Tags Session
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /session/login [post]
func (s *SessionController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := s.sessionService.Login(c.Request.Context(), utils.CleanPhone(req.PhoneNumber), req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "Login successful")
}

// TestLogin signs in as the shared test account.
func (s *SessionController) TestLogin(c *gin.Context) {
	user, err := s.sessionService.TestUser(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "Login successful")
}

// CreateDemo provisions a throwaway demo account and returns its phone.
func (s *SessionController) CreateDemo(c *gin.Context) {
	phone, err := s.sessionService.CreateDemoClient(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"phone_number": phone, "password": "1234"}, "Demo account created")
}
