package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rpgo/compound-calculator/internal/domain"
)

// ResultCache stores projection results by input. A miss is reported with
// ok == false and a nil error; errors are reserved for backend failures.
type ResultCache interface {
	Get(ctx context.Context, key string) (*domain.ProjectionResult, bool, error)
	Set(ctx context.Context, key string, result *domain.ProjectionResult, ttl time.Duration) error
}

const keyPrefix = "compound:projection:"

// KeyFor derives the cache key of a parameter set. Parameter sets that are
// equal field by field share a key.
func KeyFor(params domain.InputParameters) string {
	// struct fields marshal in declaration order, so the encoding is canonical
	data, err := json.Marshal(params)
	if err != nil {
		return ""
	}
	return keyPrefix + strconv.FormatUint(xxhash.Sum64(data), 16)
}
