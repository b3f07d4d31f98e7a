package rest

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-token-sale/internal/api/shared/constants"
	"github.com/feral-file/ff-token-sale/internal/api/shared/dto"
	"github.com/feral-file/ff-token-sale/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// SubmitPurchase queues a sent payment for verification
	// POST /api/v1/purchases
	SubmitPurchase(c *gin.Context)

	// GetPurchaseStatus reports the verification status of a transaction
	// GET /api/v1/purchases/:tx_hash
	GetPurchaseStatus(c *gin.Context)

	// GetBuyerPurchases lists a buyer's purchases
	// GET /api/v1/buyers/:address/purchases
	GetBuyerPurchases(c *gin.Context)

	// GET /api/v1/rounds
	ListRounds(c *gin.Context)

	// GET /api/v1/rounds/active
	GetActiveRound(c *gin.Context)

	// GET /api/v1/sale
	GetSale(c *gin.Context)

	// GET /api/v1/price
	GetPrice(c *gin.Context)

	// Admin actions, each needs "confirm": true in the body
	// POST /api/v1/admin/rounds/:round/activate
	ActivateRound(c *gin.Context)
	// POST /api/v1/admin/rounds/:round/complete
	CompleteRound(c *gin.Context)
	// POST /api/v1/admin/rounds/:round/reset
	ResetRound(c *gin.Context)
	// POST /api/v1/admin/sale/finish
	FinishSale(c *gin.Context)
	// PUT /api/v1/admin/sale/total-raised
	SetTotalRaised(c *gin.Context)
	// PUT /api/v1/admin/sale/total-raised/mode
	SetTotalRaisedMode(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

// SubmitPurchase queues a sent payment for verification
func (h *handler) SubmitPurchase(c *gin.Context) {
	var req dto.SubmitPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request body")
		return
	}

	response, err := h.executor.SubmitPurchase(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to submit purchase")
		return
	}

	// A payment already in the ledger is reported as done, anything else is accepted for verification
	if response.Status == constants.PURCHASE_STATUS_PENDING {
		c.JSON(http.StatusAccepted, response)
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetPurchaseStatus reports the verification status of a transaction
func (h *handler) GetPurchaseStatus(c *gin.Context) {
	txHash := c.Param("tx_hash")
	if txHash == "" {
		respondBadRequest(c, "tx_hash is required")
		return
	}

	status, err := h.executor.GetPurchaseStatus(c.Request.Context(), txHash)
	if err != nil {
		respondError(c, err, "Failed to get purchase status")
		return
	}

	if status == nil {
		respondNotFound(c, "Purchase not found")
		return
	}

	c.JSON(http.StatusOK, status)
}

// GetBuyerPurchases lists a buyer's purchases
func (h *handler) GetBuyerPurchases(c *gin.Context) {
	address := c.Param("address")
	if address == "" {
		respondBadRequest(c, "address is required")
		return
	}

	response, err := h.executor.GetBuyerPurchases(c.Request.Context(), address)
	if err != nil {
		respondError(c, err, "Failed to list purchases")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) ListRounds(c *gin.Context) {
	response, err := h.executor.ListRounds(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list rounds")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetActiveRound(c *gin.Context) {
	round, err := h.executor.GetActiveRound(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get active round")
		return
	}

	if round == nil {
		respondNotFound(c, "No active round")
		return
	}

	c.JSON(http.StatusOK, round)
}

func (h *handler) GetSale(c *gin.Context) {
	response, err := h.executor.GetSale(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get sale status")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetPrice(c *gin.Context) {
	response, err := h.executor.GetPrice(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get ETH price")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ActivateRound makes a round the active one
func (h *handler) ActivateRound(c *gin.Context) {
	roundNumber, ok := h.roundParam(c)
	if !ok {
		return
	}

	effect := fmt.Sprintf("Round %d becomes active, any other active round is completed", roundNumber)
	if !h.confirmed(c, effect) {
		return
	}

	round, err := h.executor.ActivateRound(c.Request.Context(), roundNumber)
	if err != nil {
		respondError(c, err, "Failed to activate round")
		return
	}

	c.JSON(http.StatusOK, round)
}

// CompleteRound closes an active round
func (h *handler) CompleteRound(c *gin.Context) {
	roundNumber, ok := h.roundParam(c)
	if !ok {
		return
	}

	effect := fmt.Sprintf("Round %d is completed", roundNumber)
	if !h.confirmed(c, effect) {
		return
	}

	round, err := h.executor.CompleteRound(c.Request.Context(), roundNumber)
	if err != nil {
		respondError(c, err, "Failed to complete round")
		return
	}

	c.JSON(http.StatusOK, round)
}

// ResetRound moves a round back to upcoming
func (h *handler) ResetRound(c *gin.Context) {
	roundNumber, ok := h.roundParam(c)
	if !ok {
		return
	}

	effect := fmt.Sprintf("Round %d goes back to upcoming, its sold tokens are kept", roundNumber)
	if !h.confirmed(c, effect) {
		return
	}

	round, err := h.executor.ResetRound(c.Request.Context(), roundNumber)
	if err != nil {
		respondError(c, err, "Failed to reset round")
		return
	}

	c.JSON(http.StatusOK, round)
}

// FinishSale closes the sale for good
func (h *handler) FinishSale(c *gin.Context) {
	if !h.confirmed(c, "The sale is finished and no new purchase is accepted, this cannot be undone") {
		return
	}

	response, err := h.executor.FinishSale(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to finish sale")
		return
	}

	c.JSON(http.StatusOK, response)
}

// SetTotalRaised sets the manual total raised
func (h *handler) SetTotalRaised(c *gin.Context) {
	var req dto.SetTotalRaisedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request body")
		return
	}

	if !req.Confirm {
		respondConfirmationRequired(c, fmt.Sprintf("The manual total raised is set to %s USD", req.AmountUSD.String()))
		return
	}

	response, err := h.executor.SetManualTotalRaised(c.Request.Context(), req.AmountUSD)
	if err != nil {
		respondError(c, err, "Failed to set total raised")
		return
	}

	c.JSON(http.StatusOK, response)
}

// SetTotalRaisedMode switches the displayed total between the manual and the computed value
func (h *handler) SetTotalRaisedMode(c *gin.Context) {
	var req dto.SetTotalRaisedModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request body")
		return
	}

	if !req.Confirm {
		effect := "The displayed total raised becomes the computed total"
		if *req.UseManual {
			effect = "The displayed total raised becomes the manual total"
		}
		respondConfirmationRequired(c, effect)
		return
	}

	response, err := h.executor.SetManualTotalMode(c.Request.Context(), *req.UseManual)
	if err != nil {
		respondError(c, err, "Failed to set total raised mode")
		return
	}

	c.JSON(http.StatusOK, response)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "ff-token-sale-api",
	})
}

// roundParam parses the :round path parameter, responding when it is invalid
func (h *handler) roundParam(c *gin.Context) (int, bool) {
	roundNumber, err := strconv.Atoi(c.Param("round"))
	if err != nil || roundNumber <= 0 {
		respondBadRequest(c, "round must be a positive round number")
		return 0, false
	}
	return roundNumber, true
}

// confirmed reads an optional confirmation body, responding when the action is not confirmed
func (h *handler) confirmed(c *gin.Context, effect string) bool {
	var req dto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return false
	}

	if !req.Confirm {
		respondConfirmationRequired(c, effect)
		return false
	}
	return true
}
