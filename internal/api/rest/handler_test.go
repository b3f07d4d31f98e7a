package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-token-sale/internal/api/rest"
	"github.com/feral-file/ff-token-sale/internal/api/shared/constants"
	"github.com/feral-file/ff-token-sale/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-token-sale/internal/api/shared/errors"
	"github.com/feral-file/ff-token-sale/internal/domain"
	"github.com/feral-file/ff-token-sale/internal/logger"
	"github.com/feral-file/ff-token-sale/internal/mocks"
)

const (
	testTxHash = "0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060"
	testBuyer  = "0xabc0000000000000000000000000000000000001"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type testHandlerMocks struct {
	ctrl     *gomock.Controller
	executor *mocks.MockAPIExecutor
	router   *gin.Engine
}

func setupTest(t *testing.T) *testHandlerMocks {
	ctrl := gomock.NewController(t)
	tm := &testHandlerMocks{
		ctrl:     ctrl,
		executor: mocks.NewMockAPIExecutor(ctrl),
		router:   gin.New(),
	}

	// Authentication is covered by the middleware tests
	allowAll := func(c *gin.Context) { c.Next() }
	rest.SetupRoutes(tm.router, rest.NewHandler(tm.executor), allowAll)

	return tm
}

func (tm *testHandlerMocks) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	tm.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) apierrors.APIError {
	t.Helper()
	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	return apiErr
}

func validSubmitBody() map[string]interface{} {
	return map[string]interface{}{
		"tx_hash":       testTxHash,
		"buyer_address": testBuyer,
		"amount_usd":    100,
		"round":         1,
		"eth_price_usd": "2000.5",
	}
}

func TestHealthCheck(t *testing.T) {
	tm := setupTest(t)

	w := tm.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestSubmitPurchase_Accepted(t *testing.T) {
	tm := setupTest(t)

	tm.executor.EXPECT().
		SubmitPurchase(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req dto.SubmitPurchaseRequest) (*dto.PurchaseSubmittedResponse, error) {
			assert.Equal(t, testTxHash, req.TxHash)
			assert.True(t, decimal.NewFromInt(100).Equal(req.AmountUSD))
			require.NotNil(t, req.EthPriceUSD)
			assert.True(t, decimal.RequireFromString("2000.5").Equal(*req.EthPriceUSD))
			assert.Nil(t, req.ChainID)
			return &dto.PurchaseSubmittedResponse{TxHash: testTxHash, Status: constants.PURCHASE_STATUS_PENDING}, nil
		})

	w := tm.do(http.MethodPost, "/api/v1/purchases", validSubmitBody())
	assert.Equal(t, http.StatusAccepted, w.Code)

	var resp dto.PurchaseSubmittedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
}

func TestSubmitPurchase_AlreadyConfirmed(t *testing.T) {
	tm := setupTest(t)

	tm.executor.EXPECT().
		SubmitPurchase(gomock.Any(), gomock.Any()).
		Return(&dto.PurchaseSubmittedResponse{TxHash: testTxHash, Status: constants.PURCHASE_STATUS_CONFIRMED}, nil)

	w := tm.do(http.MethodPost, "/api/v1/purchases", validSubmitBody())
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubmitPurchase_InvalidBody(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]interface{})
	}{
		{"bad tx hash", func(b map[string]interface{}) { b["tx_hash"] = "0x1234" }},
		{"bad buyer", func(b map[string]interface{}) { b["buyer_address"] = "bob" }},
		{"zero amount", func(b map[string]interface{}) { b["amount_usd"] = 0 }},
		{"negative amount", func(b map[string]interface{}) { b["amount_usd"] = -5 }},
		{"missing round", func(b map[string]interface{}) { delete(b, "round") }},
		{"zero locked price", func(b map[string]interface{}) { b["eth_price_usd"] = 0 }},
		{"unsupported chain", func(b map[string]interface{}) { b["chain_id"] = 137 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTest(t)
			body := validSubmitBody()
			tt.mutate(body)

			w := tm.do(http.MethodPost, "/api/v1/purchases", body)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Equal(t, apierrors.ErrCodeValidationFailed, decodeError(t, w).Code)
		})
	}
}

func TestSubmitPurchase_MalformedJSON(t *testing.T) {
	tm := setupTest(t)

	w := tm.do(http.MethodPost, "/api/v1/purchases", `{"tx_hash":`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestSubmitPurchase_SaleFinished(t *testing.T) {
	tm := setupTest(t)

	tm.executor.EXPECT().
		SubmitPurchase(gomock.Any(), gomock.Any()).
		Return(nil, apierrors.NewSaleFinishedError())

	w := tm.do(http.MethodPost, "/api/v1/purchases", validSubmitBody())
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, apierrors.ErrCodeSaleFinished, decodeError(t, w).Code)
}

func TestGetPurchaseStatus(t *testing.T) {
	tm := setupTest(t)

	tm.executor.EXPECT().
		GetPurchaseStatus(gomock.Any(), testTxHash).
		Return(&dto.PurchaseStatusResponse{
			TxHash: testTxHash,
			Status: constants.PURCHASE_STATUS_REJECTED,
			Reason: "payment sent to wrong address",
		}, nil)

	w := tm.do(http.MethodGet, "/api/v1/purchases/"+testTxHash, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PurchaseStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "rejected", resp.Status)
	assert.Equal(t, "payment sent to wrong address", resp.Reason)
}

func TestGetPurchaseStatus_NotFound(t *testing.T) {
	tm := setupTest(t)

	tm.executor.EXPECT().GetPurchaseStatus(gomock.Any(), testTxHash).Return(nil, nil)

	w := tm.do(http.MethodGet, "/api/v1/purchases/"+testTxHash, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetBuyerPurchases(t *testing.T) {
	tm := setupTest(t)

	tm.executor.EXPECT().
		GetBuyerPurchases(gomock.Any(), testBuyer).
		Return(&dto.BuyerPurchasesResponse{
			BuyerAddress: testBuyer,
			Purchases:    []dto.PurchaseResponse{},
			TotalTokens:  decimal.RequireFromString("9090.9090909"),
		}, nil)

	w := tm.do(http.MethodGet, "/api/v1/buyers/"+testBuyer+"/purchases", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_tokens":"9090.9090909"`)
}

func TestGetActiveRound_None(t *testing.T) {
	tm := setupTest(t)

	tm.executor.EXPECT().GetActiveRound(gomock.Any()).Return(nil, nil)

	w := tm.do(http.MethodGet, "/api/v1/rounds/active", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListRounds(t *testing.T) {
	tm := setupTest(t)

	tm.executor.EXPECT().ListRounds(gomock.Any()).Return(&dto.RoundListResponse{
		Rounds: []dto.RoundResponse{{RoundNumber: 1, Status: domain.RoundStatusActive}},
	}, nil)

	w := tm.do(http.MethodGet, "/api/v1/rounds", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"active"`)
}

func TestGetPrice_Unavailable(t *testing.T) {
	tm := setupTest(t)

	tm.executor.EXPECT().
		GetPrice(gomock.Any()).
		Return(nil, apierrors.NewServiceUnavailableError("ETH price unavailable"))

	w := tm.do(http.MethodGet, "/api/v1/price", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetSale_DatabaseError(t *testing.T) {
	tm := setupTest(t)

	tm.executor.EXPECT().
		GetSale(gomock.Any()).
		Return(nil, apierrors.NewDatabaseError("Failed to get sale status"))

	w := tm.do(http.MethodGet, "/api/v1/sale", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, apierrors.ErrCodeDatabaseError, decodeError(t, w).Code)
}

func TestAdminActions_RequireConfirmation(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
	}{
		{"activate without body", http.MethodPost, "/api/v1/admin/rounds/2/activate", nil},
		{"activate unconfirmed", http.MethodPost, "/api/v1/admin/rounds/2/activate", map[string]bool{"confirm": false}},
		{"complete", http.MethodPost, "/api/v1/admin/rounds/2/complete", nil},
		{"reset", http.MethodPost, "/api/v1/admin/rounds/2/reset", map[string]interface{}{}},
		{"finish sale", http.MethodPost, "/api/v1/admin/sale/finish", nil},
		{"total raised", http.MethodPut, "/api/v1/admin/sale/total-raised", map[string]interface{}{"amount_usd": "1000"}},
		{"total raised mode", http.MethodPut, "/api/v1/admin/sale/total-raised/mode", map[string]interface{}{"use_manual": true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No executor expectations: nothing may be performed
			tm := setupTest(t)

			w := tm.do(tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusConflict, w.Code)

			apiErr := decodeError(t, w)
			assert.Equal(t, apierrors.ErrCodeConfirmationRequired, apiErr.Code)
			assert.NotEmpty(t, apiErr.Details)
		})
	}
}

func TestActivateRound_Confirmed(t *testing.T) {
	tm := setupTest(t)

	tm.executor.EXPECT().
		ActivateRound(gomock.Any(), 2).
		Return(&dto.RoundResponse{RoundNumber: 2, Status: domain.RoundStatusActive}, nil)

	w := tm.do(http.MethodPost, "/api/v1/admin/rounds/2/activate", map[string]bool{"confirm": true})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoundAction_InvalidRound(t *testing.T) {
	tm := setupTest(t)

	for _, round := range []string{"0", "-1", "abc"} {
		w := tm.do(http.MethodPost, "/api/v1/admin/rounds/"+round+"/complete", map[string]bool{"confirm": true})
		assert.Equal(t, http.StatusBadRequest, w.Code, round)
	}
}

func TestRoundAction_InvalidTransition(t *testing.T) {
	tm := setupTest(t)

	tm.executor.EXPECT().
		CompleteRound(gomock.Any(), 3).
		Return(nil, apierrors.NewConflictError("Cannot complete round 3"))

	w := tm.do(http.MethodPost, "/api/v1/admin/rounds/3/complete", map[string]bool{"confirm": true})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, apierrors.ErrCodeConflict, decodeError(t, w).Code)
}

func TestSetTotalRaised_Confirmed(t *testing.T) {
	tm := setupTest(t)
	amount := decimal.RequireFromString("125000.50")

	tm.executor.EXPECT().
		SetManualTotalRaised(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got decimal.Decimal) (*dto.SaleResponse, error) {
			assert.True(t, amount.Equal(got))
			return &dto.SaleResponse{ManualTotalRaisedUSD: got}, nil
		})

	w := tm.do(http.MethodPut, "/api/v1/admin/sale/total-raised", map[string]interface{}{
		"amount_usd": "125000.50",
		"confirm":    true,
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetTotalRaised_Negative(t *testing.T) {
	tm := setupTest(t)

	w := tm.do(http.MethodPut, "/api/v1/admin/sale/total-raised", map[string]interface{}{
		"amount_usd": "-1",
		"confirm":    true,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestSetTotalRaisedMode(t *testing.T) {
	tm := setupTest(t)

	tm.executor.EXPECT().
		SetManualTotalMode(gomock.Any(), false).
		Return(&dto.SaleResponse{UseManualTotal: false}, nil)

	w := tm.do(http.MethodPut, "/api/v1/admin/sale/total-raised/mode", map[string]interface{}{
		"use_manual": false,
		"confirm":    true,
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetTotalRaisedMode_MissingFlag(t *testing.T) {
	tm := setupTest(t)

	w := tm.do(http.MethodPut, "/api/v1/admin/sale/total-raised/mode", map[string]interface{}{"confirm": true})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
