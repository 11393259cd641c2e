package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// GridKey derives the cache key for one grid build. The key covers every
// parameter that changes the resulting document, so identical builds share
// an entry across CLI and server and any parameter change misses.
func GridKey(shape, orientation string, radius float64, width, height int) string {
	return "grid:" + digest(fmt.Sprintf("%s|%s|%g|%d|%d", shape, orientation, radius, width, height))
}

// digest returns the full sha256 hex of s. Keys are never truncated;
// a collision would silently serve the wrong board.
func digest(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
