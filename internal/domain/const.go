package domain

const (
	// WEI_DECIMALS is the number of decimal places between wei and ether
	WEI_DECIMALS = 18

	// Chain IDs for the supported networks
	CHAIN_ID_ETHEREUM_MAINNET int64 = 1
	CHAIN_ID_ETHEREUM_SEPOLIA int64 = 11155111
)
