package api

import (
	"net/http"

	reqdto "fleet-booking/internal/handler/dto/request"
	resdto "fleet-booking/internal/handler/dto/response"
	"fleet-booking/internal/handler/httperr"
	"fleet-booking/internal/handler/middleware"
	"fleet-booking/internal/pkg/errs"
	"fleet-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
}

func NewReservationHandler(cmds commands.ReservationCommands) *ReservationHandler {
	return &ReservationHandler{cmds: cmds}
}

// @Summary Reserve a car
// @Description Book a two-hour slot for a car, registering the car on first use
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReserveRequest true "Reservation request"
// @Success 201 {object} resdto.ReserveResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /reserve [post]
func (h *ReservationHandler) Reserve(c *gin.Context) {
	principalID, ok := middleware.GetPrincipalID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Unauthorized", nil)
		return
	}

	var req reqdto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Reserve(c.Request.Context(), req.ToInput(principalID))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReserveResult(result))
}
