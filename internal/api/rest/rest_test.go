package rest_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-token-sale/internal/api/rest"
	"github.com/feral-file/ff-token-sale/internal/mocks"
)

func respondOK(c *gin.Context) { c.Status(http.StatusOK) }

func TestSetupRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := mocks.NewMockAPIHandler(ctrl)

	adminCalls := 0
	router := gin.New()
	rest.SetupRoutes(router, handler, func(c *gin.Context) {
		adminCalls++
		c.Next()
	})

	tests := []struct {
		method string
		path   string
		admin  bool
		expect func()
	}{
		{http.MethodGet, "/health", false, func() { handler.EXPECT().HealthCheck(gomock.Any()).Do(respondOK) }},
		{http.MethodPost, "/api/v1/purchases", false, func() { handler.EXPECT().SubmitPurchase(gomock.Any()).Do(respondOK) }},
		{http.MethodGet, "/api/v1/purchases/0xabc", false, func() { handler.EXPECT().GetPurchaseStatus(gomock.Any()).Do(respondOK) }},
		{http.MethodGet, "/api/v1/buyers/0xabc/purchases", false, func() { handler.EXPECT().GetBuyerPurchases(gomock.Any()).Do(respondOK) }},
		{http.MethodGet, "/api/v1/rounds", false, func() { handler.EXPECT().ListRounds(gomock.Any()).Do(respondOK) }},
		{http.MethodGet, "/api/v1/rounds/active", false, func() { handler.EXPECT().GetActiveRound(gomock.Any()).Do(respondOK) }},
		{http.MethodGet, "/api/v1/sale", false, func() { handler.EXPECT().GetSale(gomock.Any()).Do(respondOK) }},
		{http.MethodGet, "/api/v1/price", false, func() { handler.EXPECT().GetPrice(gomock.Any()).Do(respondOK) }},
		{http.MethodPost, "/api/v1/admin/rounds/2/activate", true, func() { handler.EXPECT().ActivateRound(gomock.Any()).Do(respondOK) }},
		{http.MethodPost, "/api/v1/admin/rounds/2/complete", true, func() { handler.EXPECT().CompleteRound(gomock.Any()).Do(respondOK) }},
		{http.MethodPost, "/api/v1/admin/rounds/2/reset", true, func() { handler.EXPECT().ResetRound(gomock.Any()).Do(respondOK) }},
		{http.MethodPost, "/api/v1/admin/sale/finish", true, func() { handler.EXPECT().FinishSale(gomock.Any()).Do(respondOK) }},
		{http.MethodPut, "/api/v1/admin/sale/total-raised", true, func() { handler.EXPECT().SetTotalRaised(gomock.Any()).Do(respondOK) }},
		{http.MethodPut, "/api/v1/admin/sale/total-raised/mode", true, func() { handler.EXPECT().SetTotalRaisedMode(gomock.Any()).Do(respondOK) }},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			tt.expect()
			before := adminCalls

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			if tt.admin {
				assert.Equal(t, before+1, adminCalls)
			} else {
				assert.Equal(t, before, adminCalls)
			}
		})
	}
}
