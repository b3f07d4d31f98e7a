package server_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-token-sale/internal/api/middleware"
	"github.com/feral-file/ff-token-sale/internal/api/server"
	"github.com/feral-file/ff-token-sale/internal/api/shared/dto"
	"github.com/feral-file/ff-token-sale/internal/domain"
	"github.com/feral-file/ff-token-sale/internal/logger"
	"github.com/feral-file/ff-token-sale/internal/mocks"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestRouter_AdminRequiresAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockAPIExecutor(ctrl)

	srv := server.New(server.Config{
		Auth: middleware.AuthConfig{APIKeys: []string{"admin-key"}},
	}, exec)
	router, err := srv.Router()
	require.NoError(t, err)

	// Unauthenticated: rejected before the handler
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/rounds/1/complete", strings.NewReader(`{"confirm":true}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	exec.EXPECT().
		CompleteRound(gomock.Any(), 1).
		Return(&dto.RoundResponse{RoundNumber: 1, Status: domain.RoundStatusCompleted}, nil)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/admin/rounds/1/complete", strings.NewReader(`{"confirm":true}`))
	req.Header.Set("Authorization", "ApiKey admin-key")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.REQUEST_ID_HEADER))
}

func TestRouter_PublicRoutesNeedNoAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockAPIExecutor(ctrl)

	srv := server.New(server.Config{}, exec)
	router, err := srv.Router()
	require.NoError(t, err)

	exec.EXPECT().GetSale(gomock.Any()).Return(&dto.SaleResponse{}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sale", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_InvalidAuthConfig(t *testing.T) {
	srv := server.New(server.Config{
		Auth: middleware.AuthConfig{JWTPublicKey: "-----BEGIN PUBLIC KEY-----\nbroken\n-----END PUBLIC KEY-----"},
	}, nil)

	_, err := srv.Router()
	assert.Error(t, err)
}
