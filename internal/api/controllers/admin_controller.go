package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"doramahub/internal/models/request_models"
	"doramahub/internal/services"
	"doramahub/pkg/utils"
)

type AdminController struct {
	adminService services.AdminServiceInterface
}

func NewAdminController(adminService services.AdminServiceInterface) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// Login godoc
// @Summary Authenticate an operator and return a token
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.AdminLoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /admin/login [post]
func (a *AdminController) Login(c *gin.Context) {
	var req request_models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.adminService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"token": token}, "Login successful")
}

// ListClients godoc
// @Summary List every client purchase row
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/clients [get]
func (a *AdminController) ListClients(c *gin.Context) {
	clients, err := a.adminService.ListClients(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, clients, "Clients fetched")
}

// SaveClient inserts a purchase row when the payload has no id, updates
// the row otherwise.
func (a *AdminController) SaveClient(c *gin.Context) {
	var req request_models.SaveClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.adminService.SaveClient(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Client saved")
}

func (a *AdminController) DeleteClient(c *gin.Context) {
	if err := a.adminService.DeleteClient(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Client removed")
}

func (a *AdminController) UpdateClientName(c *gin.Context) {
	var req request_models.UpdateClientNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.adminService.UpdateClientName(c.Request.Context(), req.PhoneNumber, req.Name); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Client name updated")
}

// ResetPasswords wipes every client password except the test account.
func (a *AdminController) ResetPasswords(c *gin.Context) {
	if err := a.adminService.ResetAllClientPasswords(c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Passwords reset")
}
