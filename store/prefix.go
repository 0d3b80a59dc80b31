package store

import (
	"github.com/syndtr/goleveldb/leveldb/util"
	"strings"
)

// KeyPrefix builds keys under a fixed namespace by joining parts with "/".
type KeyPrefix func(parts ...string) []byte

func Prefixer(prefix string) KeyPrefix {
	return func(parts ...string) []byte {
		k := strings.Join(append([]string{prefix}, parts...), "/")
		return []byte(k)
	}
}

// Trim returns key with the namespace and its separator removed. Keys
// outside the namespace are returned unchanged.
func (p KeyPrefix) Trim(key []byte) string {
	return strings.TrimPrefix(string(key), string(p("")))
}

// Range covers every key below the namespace, but not the bare prefix.
func (p KeyPrefix) Range() *util.Range {
	return util.BytesPrefix(p(""))
}
