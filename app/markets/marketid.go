package markets

import (
	"encoding/base64"
	"encoding/binary"
	"math/rand"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const (
	marketIDPrefix    = "market_"
	marketIDRandLen   = 16
	fallbackIDLen     = 20
	fallbackIDEntropy = 2
)

// IDGenerator produces candidate market identifiers. The issuer retries
// through one of these when a candidate collides in the store.
type IDGenerator func() string

// NewMarketID returns a fresh "market_"-prefixed identifier built from the
// first 16 hex characters of a random UUID. If the UUID source fails it
// falls back to FallbackMarketID rather than aborting creation.
func NewMarketID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return FallbackMarketID(time.Now())
	}
	raw := strings.ReplaceAll(id.String(), "-", "")
	return marketIDPrefix + raw[:marketIDRandLen]
}

var fallbackCounter uint32

// FallbackMarketID builds an identifier without any UUID source: a
// nanosecond timestamp, two random words and a monotonically increasing
// counter, base64-encoded with URL-hostile characters stripped. Used when
// the primary generator is unavailable.
func FallbackMarketID(now time.Time) string {
	buf := make([]byte, 8+8*fallbackIDEntropy+4)
	binary.BigEndian.PutUint64(buf[0:8], uint64(now.UnixNano()))
	for i := 0; i < fallbackIDEntropy; i++ {
		binary.BigEndian.PutUint64(buf[8+8*i:], rand.Uint64()) //nolint:gosec // uniqueness, not secrecy
	}
	binary.BigEndian.PutUint32(buf[8+8*fallbackIDEntropy:], atomic.AddUint32(&fallbackCounter, 1))

	enc := base64.StdEncoding.EncodeToString(buf)
	enc = strings.NewReplacer("+", "", "/", "", "=", "").Replace(enc)
	if len(enc) > fallbackIDLen {
		enc = enc[:fallbackIDLen]
	}
	return marketIDPrefix + enc
}
