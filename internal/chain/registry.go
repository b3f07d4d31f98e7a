package chain

import (
	"fmt"
	"sort"
	"sync"

	"github.com/feral-file/ff-token-sale/internal/block"
	"github.com/feral-file/ff-token-sale/internal/domain"
)

// Network bundles everything needed to verify a payment on one chain
type Network struct {
	Chain                 domain.Chain
	Reader                Reader
	Head                  block.HeadProvider
	RequiredConfirmations uint64
}

// Resolver returns the network a payment was made on
//
//go:generate mockgen -source=registry.go -destination=../mocks/chain_resolver.go -package=mocks -mock_names=Resolver=MockChainResolver
type Resolver interface {
	Network(chainID domain.Chain) (*Network, error)
}

// Registry holds the readers of the supported payment networks
type Registry struct {
	mu       sync.RWMutex
	networks map[domain.Chain]*Network
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{networks: make(map[domain.Chain]*Network)}
}

// Register adds or replaces a network
func (r *Registry) Register(n *Network) error {
	if n == nil || n.Reader == nil || n.Head == nil {
		return fmt.Errorf("network requires a reader and a head provider")
	}
	if !domain.IsValidChain(n.Chain) {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedChain, n.Chain)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.networks[n.Chain] = n
	return nil
}

// Network returns the registered network for chain
func (r *Registry) Network(chain domain.Chain) (*Network, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.networks[chain]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedChain, chain)
	}
	return n, nil
}

// Chains returns the registered chains in a stable order
func (r *Registry) Chains() []domain.Chain {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chains := make([]domain.Chain, 0, len(r.networks))
	for c := range r.networks {
		chains = append(chains, c)
	}
	sort.Slice(chains, func(i, j int) bool { return chains[i] < chains[j] })
	return chains
}
