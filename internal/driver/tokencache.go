package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"cexpand/internal/source"
	"cexpand/internal/token"
)

// Current schema version - increment when cachedFile format changes.
const tokenCacheSchemaVersion uint16 = 1

// TokenCache stores raw token lists on disk keyed by content hash, so
// repeated runs over an unchanged file skip the lexer. Thread-safe for
// concurrent access.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

// cachedToken is the on-disk token shape. Sym is not cached: StringIDs are
// interner-relative, so symbols are re-interned from Text on load.
type cachedToken struct {
	Kind         uint8
	Start        uint32
	End          uint32
	Text         string
	StartsLine   bool
	LeadingSpace bool
}

type cachedFile struct {
	Schema uint16
	Tokens []cachedToken
}

// OpenTokenCache initializes a token cache at the standard location.
func OpenTokenCache(app string) (*TokenCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

// OpenTokenCacheAt initializes a token cache rooted at an explicit directory.
func OpenTokenCacheAt(dir string) (*TokenCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

func (c *TokenCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "tokens", hexKey+".mp")
}

// Put serializes the file's token list into the cache.
func (c *TokenCache) Put(file *source.File, toks []token.Token) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := cachedFile{
		Schema: tokenCacheSchemaVersion,
		Tokens: make([]cachedToken, len(toks)),
	}
	for i, t := range toks {
		payload.Tokens[i] = cachedToken{
			Kind:         uint8(t.Kind),
			Start:        t.Span.Start,
			End:          t.Span.End,
			Text:         t.Text,
			StartsLine:   t.StartsLine,
			LeadingSpace: t.LeadingSpace,
		}
	}

	p := c.pathFor(file.Hash)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		// Already renamed on the success path; removal fails quietly then.
		_ = os.Remove(f.Name())
	}()

	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get restores the token list for the file's content hash. Symbols are
// re-interned into the caller's interner so IDs stay comparable with the
// preprocessor's output.
func (c *TokenCache) Get(file *source.File, interner *source.Interner) ([]token.Token, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(file.Hash))
	if err != nil {
		return nil, false
	}
	defer func() { _ = f.Close() }()

	var payload cachedFile
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false
	}
	if payload.Schema != tokenCacheSchemaVersion {
		return nil, false
	}

	toks := make([]token.Token, len(payload.Tokens))
	for i, ct := range payload.Tokens {
		t := token.Token{
			Kind:         token.Kind(ct.Kind),
			Span:         source.Span{File: file.ID, Start: ct.Start, End: ct.End},
			Text:         ct.Text,
			StartsLine:   ct.StartsLine,
			LeadingSpace: ct.LeadingSpace,
		}
		if t.Kind == token.Ident {
			t.Sym = interner.Intern(ct.Text)
		}
		toks[i] = t
	}
	return toks, true
}

// DropAll invalidates the cache, useful after format changes.
func (c *TokenCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	sub := filepath.Join(c.dir, "tokens")
	if err := os.RemoveAll(sub); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
