package api

import (
	"net/http"
	"strconv"

	reqdto "fleet-booking/internal/handler/dto/request"
	resdto "fleet-booking/internal/handler/dto/response"
	"fleet-booking/internal/handler/httperr"
	"fleet-booking/internal/pkg/errs"
	"fleet-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Car availability by id
// @Description List free two-hour slots between 08:00 and 18:00 for a registered car
// @Tags availability
// @Produce json
// @Param car_id path int true "Car ID"
// @Param day query string true "Day (YYYY-MM-DD)"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /availability/{car_id} [get]
func (h *AvailabilityHandler) ByCarID(c *gin.Context) {
	carID, err := strconv.ParseInt(c.Param("car_id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid car id", nil)
		return
	}
	if carID <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Invalid("car id %d must be positive", carID), "Invalid car id", nil)
		return
	}

	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "day is required", nil)
		return
	}

	h.respond(c, queries.ResourceRef{ID: carID}, query.Day)
}

// @Summary Car availability by license plate
// @Description List free two-hour slots for a license plate; unknown plates are fully available
// @Tags availability
// @Produce json
// @Param license_plate query string true "License plate"
// @Param day query string true "Day (YYYY-MM-DD)"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Router /availability [get]
func (h *AvailabilityHandler) ByLicensePlate(c *gin.Context) {
	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "day is required", nil)
		return
	}

	h.respond(c, queries.ResourceRef{NaturalKey: query.LicensePlate}, query.Day)
}

func (h *AvailabilityHandler) respond(c *gin.Context, ref queries.ResourceRef, day string) {
	slots, err := h.q.ListAvailability(c.Request.Context(), ref, day)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromIntervals(slots))
}
