package api

import (
	"net/http"

	reqdto "restaurant-crm/internal/handler/dto/request"
	resdto "restaurant-crm/internal/handler/dto/response"
	"restaurant-crm/internal/handler/httperr"
	"restaurant-crm/internal/usecase/commands"
	"restaurant-crm/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	cmds commands.SettingsCommands
	q    queries.SettingsQueries
}

func NewSettingsHandler(cmds commands.SettingsCommands, q queries.SettingsQueries) *SettingsHandler {
	return &SettingsHandler{cmds: cmds, q: q}
}

// @Summary Get restaurant settings
// @Tags restaurants
// @Produce json
// @Security BearerAuth
// @Param restaurant_id path int true "Restaurant ID"
// @Success 200 {object} resdto.SettingsResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /restaurants/{restaurant_id}/settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	restaurantID, ok := restaurantIDParam(c)
	if !ok {
		return
	}

	view, err := h.q.GetSettings(c.Request.Context(), restaurantID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	resp, err := resdto.FromSettingsView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Replace restaurant settings
// @Description Omitted fields are cleared
// @Tags restaurants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param restaurant_id path int true "Restaurant ID"
// @Param request body reqdto.UpdateSettingsRequest true "Settings"
// @Success 200 {object} resdto.SettingsResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /restaurants/{restaurant_id}/settings [put]
func (h *SettingsHandler) Put(c *gin.Context) {
	restaurantID, ok := restaurantIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	saved, err := h.cmds.UpdateSettings(c.Request.Context(), restaurantID, req.ToCommand())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	resp, err := resdto.FromSettings(saved)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
