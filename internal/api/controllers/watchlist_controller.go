package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"doramahub/internal/models/request_models"
	"doramahub/internal/services"
	"doramahub/pkg/utils"
)

type WatchlistController struct {
	watchlistService services.WatchlistServiceInterface
}

func NewWatchlistController(watchlistService services.WatchlistServiceInterface) *WatchlistController {
	return &WatchlistController{
		watchlistService: watchlistService,
	}
}

// List godoc
// @Summary Fetch the three watch lists for a phone number
// @Tags Watchlist
// @Produce json
// @Param phone path string true "Phone number"
// @Success 200 {object} utils.APIResponse
// @Router /watchlist/{phone} [get]
func (w *WatchlistController) List(c *gin.Context) {
	phone := utils.CleanPhone(c.Param("phone"))
	if phone == "" {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	lists := w.watchlistService.Read(c.Request.Context(), phone)
	utils.RespondSuccess(c, lists, "Watchlist fetched")
}

// Add godoc
// @Summary Add a title to one of the watch lists
// @Tags Watchlist
// @Accept json
// @Produce json
// @Param phone path string true "Phone number"
// @Param request body request_models.AddWatchEntryRequest true "New entry payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /watchlist/{phone} [post]
func (w *WatchlistController) Add(c *gin.Context) {
	phone := utils.CleanPhone(c.Param("phone"))
	if phone == "" {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	var req request_models.AddWatchEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	item := w.watchlistService.Add(c.Request.Context(), phone, req)
	utils.RespondSuccess(c, item, "Entry added")
}

// Update patches progress fields on one entry. Placeholder ids succeed
// without a remote write.
func (w *WatchlistController) Update(c *gin.Context) {
	var req request_models.UpdateWatchEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if !w.watchlistService.Update(c.Request.Context(), c.Param("id"), req) {
		utils.HandleServiceError(c, utils.ErrDatabaseError)
		return
	}

	utils.RespondSuccess(c, nil, "Entry updated")
}

func (w *WatchlistController) Delete(c *gin.Context) {
	if !w.watchlistService.Delete(c.Request.Context(), c.Param("id")) {
		utils.HandleServiceError(c, utils.ErrDatabaseError)
		return
	}

	utils.RespondSuccess(c, nil, "Entry removed")
}
