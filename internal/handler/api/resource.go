package api

import (
	"net/http"

	resdto "fleet-booking/internal/handler/dto/response"
	"fleet-booking/internal/handler/httperr"
	"fleet-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ResourceHandler struct {
	q queries.ResourceQueries
}

func NewResourceHandler(q queries.ResourceQueries) *ResourceHandler {
	return &ResourceHandler{q: q}
}

// @Summary List cars
// @Description List every registered car ordered by id
// @Tags cars
// @Produce json
// @Success 200 {array} resdto.CarResponse
// @Failure 500 {object} httperr.Response
// @Router /cars [get]
func (h *ResourceHandler) List(c *gin.Context) {
	views, err := h.q.ListResources(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	cars, err := resdto.FromResourceViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, cars)
}
