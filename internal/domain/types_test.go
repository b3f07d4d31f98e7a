package domain

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidChain(t *testing.T) {
	tests := []struct {
		name     string
		chain    Chain
		expected bool
	}{
		{
			name:     "valid ethereum mainnet",
			chain:    ChainEthereumMainnet,
			expected: true,
		},
		{
			name:     "valid ethereum sepolia",
			chain:    ChainEthereumSepolia,
			expected: true,
		},
		{
			name:     "invalid empty chain",
			chain:    Chain(""),
			expected: false,
		},
		{
			name:     "invalid other evm chain",
			chain:    Chain("eip155:137"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidChain(tt.chain))
		})
	}
}

func TestChainFromID(t *testing.T) {
	chain, err := ChainFromID(1)
	require.NoError(t, err)
	assert.Equal(t, ChainEthereumMainnet, chain)
	assert.Equal(t, int64(1), chain.ID())
	assert.True(t, chain.IsProduction())

	chain, err = ChainFromID(11155111)
	require.NoError(t, err)
	assert.Equal(t, ChainEthereumSepolia, chain)
	assert.False(t, chain.IsProduction())

	_, err = ChainFromID(137)
	assert.ErrorIs(t, err, ErrUnsupportedChain)
}

func TestNormalizeAddress(t *testing.T) {
	addr, err := NormalizeAddress(" 0x194c1D795E1D4D26b5ac5C9EF0d83f319FD6805c ")
	require.NoError(t, err)
	assert.Equal(t, "0x194c1d795e1d4d26b5ac5c9ef0d83f319fd6805c", addr)

	for _, bad := range []string{"", "0x123", "194c1D795E1D4D26b5ac5C9EF0d83f319FD6805c", "0xzz4c1D795E1D4D26b5ac5C9EF0d83f319FD6805c"} {
		_, err := NormalizeAddress(bad)
		assert.ErrorIs(t, err, ErrInvalidAddress, bad)
	}
}

func TestNormalizeTxHash(t *testing.T) {
	hash, err := NormalizeTxHash("0xABCDEF0000000000000000000000000000000000000000000000000000000001")
	require.NoError(t, err)
	assert.Equal(t, "0xabcdef0000000000000000000000000000000000000000000000000000000001", hash)

	_, err = NormalizeTxHash("0x1234")
	assert.ErrorIs(t, err, ErrInvalidTxHash)
}

func TestAddressEqual(t *testing.T) {
	assert.True(t, AddressEqual("0xABCDEF", "0xabcdef"))
	assert.False(t, AddressEqual("0xabcdef", "0xabcdee"))
}

func TestWeiToEth(t *testing.T) {
	wei, ok := new(big.Int).SetString("1500000000000000000", 10)
	require.True(t, ok)
	assert.Equal(t, "1.5", WeiToEth(wei).String())

	wei, ok = new(big.Int).SetString("1", 10)
	require.True(t, ok)
	assert.Equal(t, "0.000000000000000001", WeiToEth(wei).String())

	assert.True(t, WeiToEth(nil).IsZero())
}

func TestErrorClassification(t *testing.T) {
	permanent := []error{
		ErrAlreadyProcessed,
		ErrWrongDestination,
		ErrTransactionFailed,
		ErrInsufficientPayment,
		ErrExcessivePayment,
		NewVerificationError(ErrInsufficientPayment, "0xabc", map[string]string{"expected": "$100.00"}),
		fmt.Errorf("wrapped: %w", ErrSenderMismatch),
	}
	for _, err := range permanent {
		assert.True(t, IsPermanent(err), err.Error())
		assert.False(t, IsRetryable(err), err.Error())
	}

	retryable := []error{
		ErrTransactionNotFound,
		ErrReceiptPending,
		ErrInsufficientConfirmations,
		NewVerificationError(ErrInsufficientConfirmations, "0xabc", nil),
		errors.New("dial tcp: i/o timeout"),
	}
	for _, err := range retryable {
		assert.True(t, IsRetryable(err), err.Error())
		assert.False(t, IsPermanent(err), err.Error())
	}

	assert.False(t, IsRetryable(nil))
	assert.False(t, IsPermanent(nil))
}

func TestVerificationError(t *testing.T) {
	err := NewVerificationError(ErrWrongDestination, "0xabc", nil)
	assert.ErrorIs(t, err, ErrWrongDestination)
	assert.Equal(t, "payment sent to wrong address: 0xabc", err.Error())

	var verr *VerificationError
	require.True(t, errors.As(fmt.Errorf("verify: %w", err), &verr))
	assert.Equal(t, "0xabc", verr.TxHash)
}

func TestVerificationState_IsTerminal(t *testing.T) {
	assert.False(t, VerificationStateSubmitted.IsTerminal())
	assert.True(t, VerificationStateVerified.IsTerminal())
	assert.True(t, VerificationStateFailed.IsTerminal())
	assert.True(t, VerificationStateExpired.IsTerminal())
}
