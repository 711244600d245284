//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"fleet-booking/internal/domain/slot"
	"fleet-booking/internal/handler/api"
	resdto "fleet-booking/internal/handler/dto/response"
	"fleet-booking/internal/handler/middleware"
	"fleet-booking/internal/pkg/errs"
	"fleet-booking/internal/usecase/queries"
	"fleet-booking/tests/common/httptest"
	queriesmock "fleet-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	handler := api.NewAvailabilityHandler(s.mockQueries)

	s.router.GET("/availability", handler.ByLicensePlate)
	s.router.GET("/availability/:car_id", handler.ByCarID)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func freeSlots() []slot.Interval {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	return []slot.Interval{
		slot.NewInterval(day.Add(8*time.Hour), 2*time.Hour),
		slot.NewInterval(day.Add(12*time.Hour), 2*time.Hour),
	}
}

func (s *AvailabilityHandlerTestSuite) TestByCarID() {
	s.Run("success: renders HH:MM slots", func() {
		s.mockQueries.EXPECT().
			ListAvailability(gomock.Any(), queries.ResourceRef{ID: 7}, "2024-06-01").
			Return(freeSlots(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/7?day=2024-06-01", nil, "")

		var body []resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]resdto.SlotResponse{
			{StartTime: "08:00", EndTime: "10:00"},
			{StartTime: "12:00", EndTime: "14:00"},
		}, body)
	})

	s.Run("success: fully booked day is an empty array", func() {
		s.mockQueries.EXPECT().ListAvailability(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/7?day=2024-06-01", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 400 on non-numeric or non-positive id", func() {
		for _, path := range []string{"/availability/abc?day=2024-06-01", "/availability/0?day=2024-06-01"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid car id")
		}
	})

	s.Run("error: 400 without day", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/7", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "day is required")
	})

	s.Run("error: 400 on malformed day", func() {
		s.mockQueries.EXPECT().ListAvailability(gomock.Any(), gomock.Any(), "2024-13-40").
			Return(nil, errs.Mark(slot.ErrInvalidDay, errs.ErrInvalidInput)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/7?day=2024-13-40", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
	})

	s.Run("error: 404 on unknown car", func() {
		s.mockQueries.EXPECT().ListAvailability(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrResourceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/99?day=2024-06-01", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Car not found")
	})
}

func (s *AvailabilityHandlerTestSuite) TestByLicensePlate() {
	s.Run("success: passes the plate through", func() {
		s.mockQueries.EXPECT().
			ListAvailability(gomock.Any(), queries.ResourceRef{NaturalKey: "ABC-123"}, "2024-06-01").
			Return(freeSlots(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?license_plate=ABC-123&day=2024-06-01", nil, "")

		var body []resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})

	s.Run("error: 500 on storage failure", func() {
		s.mockQueries.EXPECT().ListAvailability(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("io"), errs.ErrStorageUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?license_plate=ABC-123&day=2024-06-01", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
