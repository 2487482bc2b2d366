// Package cache memoizes the lexer's token stream on disk, keyed by a
// content hash of the source text. Re-running the same program (as
// --watch does on every save) skips re-tokenizing source that has not
// changed; parsing still runs every time.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/sha3"

	"github.com/minipl-lang/minipl/internal/token"
)

// Entry is the cbor-encoded payload stored for one source file: the
// token stream produced by scanning it. The parsed AST is not cached
// alongside it - Expr/Stmt are Go interfaces, and round-tripping an
// interface field through cbor needs a concrete-type registry the
// lexer/parser pipeline has no reason to carry. Re-parsing a cached
// token stream is cheap; re-scanning the source is the expensive half
// this cache actually removes.
type Entry struct {
	Tokens []token.Token
}

// Cache is a directory of cbor-encoded Entry files, one per distinct
// source content hash.
type Cache struct {
	dir string
}

// Open returns a Cache rooted at dir, creating it if necessary.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: creating %s: %w", dir, err)
	}
	return &Cache{dir: dir}, nil
}

// Key derives the content-addressed cache key for src: a SHA-256 digest
// passed through HKDF-SHA3 so the on-disk key never directly reveals the
// raw digest of user source.
func Key(src string) string {
	digest := sha256.Sum256([]byte(src))
	kdf := hkdf.New(sha3.New256, digest[:], nil, []byte("minipl/cache/v1"))
	key := make([]byte, 16)
	if _, err := kdf.Read(key); err != nil {
		// hkdf.Read only fails when more bytes are requested than the
		// expand step can produce; 16 bytes from a 32-byte SHA3 derivation
		// never does.
		panic(err)
	}
	return hex.EncodeToString(key)
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, key+".cbor")
}

// Get returns the cached Entry for src, or ok=false if nothing is cached
// for its content.
func (c *Cache) Get(src string) (Entry, bool) {
	data, err := os.ReadFile(c.path(Key(src)))
	if err != nil {
		return Entry{}, false
	}
	var e Entry
	if err := cbor.Unmarshal(data, &e); err != nil {
		return Entry{}, false
	}
	return e, true
}

// Put stores e for src's content hash.
func (c *Cache) Put(src string, e Entry) error {
	data, err := cbor.Marshal(e)
	if err != nil {
		return fmt.Errorf("cache: encoding entry: %w", err)
	}
	return os.WriteFile(c.path(Key(src)), data, 0o644)
}
