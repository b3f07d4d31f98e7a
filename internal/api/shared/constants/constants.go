package constants

// Purchase statuses reported by the API
const (
	PURCHASE_STATUS_PENDING   = "pending"
	PURCHASE_STATUS_CONFIRMED = "confirmed"
	PURCHASE_STATUS_REJECTED  = "rejected"
	PURCHASE_STATUS_EXPIRED   = "expired"
)

const (
	// MAX_CLAIMED_USD bounds a single purchase claim
	MAX_CLAIMED_USD = 10_000_000
	// MAX_LOCKED_ETH_PRICE_USD bounds the client-supplied ETH/USD rate
	MAX_LOCKED_ETH_PRICE_USD = 100_000
)
