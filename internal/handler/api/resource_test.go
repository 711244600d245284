//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"fleet-booking/internal/handler/api"
	resdto "fleet-booking/internal/handler/dto/response"
	"fleet-booking/internal/handler/middleware"
	"fleet-booking/internal/pkg/errs"
	"fleet-booking/internal/usecase/queries"
	"fleet-booking/tests/common/httptest"
	queriesmock "fleet-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestResourceHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, *queriesmock.MockResourceQueries) {
		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockResourceQueries(ctrl)
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/cars", api.NewResourceHandler(q).List)
		return router, q
	}

	t.Run("success: maps views to cars", func(t *testing.T) {
		router, q := setup(t)
		q.EXPECT().ListResources(gomock.Any()).Return([]queries.ResourceView{
			{ID: 1, Label: "Civic", NaturalKey: "ABC-123"},
			{ID: 2, Label: "Model 3", NaturalKey: "XYZ-999"},
		}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/cars", nil, "")

		var body []resdto.CarResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, []resdto.CarResponse{
			{CarID: 1, Model: "Civic", LicensePlate: "ABC-123"},
			{CarID: 2, Model: "Model 3", LicensePlate: "XYZ-999"},
		}, body)
	})

	t.Run("success: empty fleet", func(t *testing.T) {
		router, q := setup(t)
		q.EXPECT().ListResources(gomock.Any()).Return(nil, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/cars", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("error: 500 on storage failure", func(t *testing.T) {
		router, q := setup(t)
		q.EXPECT().ListResources(gomock.Any()).Return(nil, errs.Mark(errs.New("io"), errs.ErrStorageUnavailable))

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/cars", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}
