package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"doramahub/internal/services"
	"doramahub/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// Get godoc
// @Summary Build the full dashboard for a phone number
// @Description Resolves the user, derives access and assigns service credentials
// @Tags Dashboard
// @Produce json
// @Param phone path string true "Phone number"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /dashboard/{phone} [get]
func (d *DashboardController) Get(c *gin.Context) {
	phone := utils.CleanPhone(c.Param("phone"))
	if phone == "" {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	dashboard, err := d.dashboardService.BuildDashboard(c.Request.Context(), phone)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dashboard, "Dashboard built")
}
