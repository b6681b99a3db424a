package devicecache

import (
	"crypto/md5"
	"encoding/hex"
	"strings"

	"github.com/dmitrymomot/categorizr/pkg/categorizr"
)

// DefaultPrefix namespaces cache keys.
const DefaultPrefix = "categorizr::"

// Key builds the cache key for ua. The agent is hashed so arbitrary bytes and
// lengths yield a short, store-safe key. Engine options are part of the key so
// differently configured engines never share entries.
func Key(prefix string, opts categorizr.Options, ua string) string {
	sum := md5.Sum([]byte(ua))

	var b strings.Builder
	b.Grow(len(prefix) + 4 + hex.EncodedLen(len(sum)))
	b.WriteString(prefix)
	b.WriteByte(flag(opts.TabletsAsDesktops))
	b.WriteByte(flag(opts.TVsAsDesktops))
	b.WriteByte(flag(opts.RobotsAsMobile))
	b.WriteByte(':')
	b.WriteString(hex.EncodeToString(sum[:]))
	return b.String()
}

func flag(v bool) byte {
	if v {
		return '1'
	}
	return '0'
}
