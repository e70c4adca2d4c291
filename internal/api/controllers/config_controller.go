package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"doramahub/internal/models/response_models"
	"doramahub/internal/services"
	"doramahub/pkg/utils"
)

type ConfigController struct {
	configService services.ConfigServiceInterface
}

func NewConfigController(configService services.ConfigServiceInterface) *ConfigController {
	return &ConfigController{
		configService: configService,
	}
}

// Get returns the public banner and service-status board. Never fails;
// a broken config row degrades to the defaults.
func (cc *ConfigController) Get(c *gin.Context) {
	cfg := cc.configService.Get(c.Request.Context())
	utils.RespondSuccess(c, cfg, "Config fetched")
}

// Save godoc
// @Summary Replace the global banner and service-status config
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body response_models.SystemConfig true "Config payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/config [put]
func (cc *ConfigController) Save(c *gin.Context) {
	var cfg response_models.SystemConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := cc.configService.Save(c.Request.Context(), cfg); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Config saved")
}
