//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

// LocalStorage is the per-device key/value store the client keeps its
// session and chat history in. Values are opaque strings, JSON for
// structured entries.
type LocalStorage interface {
	// GetItem returns false when the key is absent.
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
	// RemoveItem is a no-op for absent keys.
	RemoveItem(key string) error
	// Keys lists stored keys starting with prefix, in lexicographic order.
	Keys(prefix string) ([]string, error)
}
