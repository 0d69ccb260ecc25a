// Package cache speeds up repeat service requests two ways: a local
// SQLite table maps a content hash of a validate request's puzzles to
// the diagnostics that request produced, and a Redis client memoises
// the rendered solutions of solve requests. Both fall back to an
// uncached path when their backing store is unavailable.
package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"

	"github.com/crossplay/waffle/internal/models"
)

// ValidationCache maps a puzzle's content hash to the diagnostic set
// it produced the last time it was checked, grounded on pkg/clues's
// sqlite-backed ClueCache shape but caching validator verdicts instead
// of LLM clues.
type ValidationCache struct {
	db *sql.DB
}

// NewValidationCache opens (creating if absent) a SQLite database at
// path and ensures its table exists.
func NewValidationCache(path string) (*ValidationCache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open validation cache: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping validation cache: %w", err)
	}

	c := &ValidationCache{db: db}
	if err := c.initSchema(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *ValidationCache) initSchema() error {
	_, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS validation_cache (
			content_hash TEXT PRIMARY KEY,
			diagnostic_count INTEGER NOT NULL,
			diagnostics TEXT NOT NULL,
			checked_at DATETIME NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to init validation cache schema: %w", err)
	}
	return nil
}

func (c *ValidationCache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Get returns the diagnostics recorded for contentHash, if any. A
// cache miss or any database error is reported as (nil, false) so a
// caller always has a safe uncached path.
func (c *ValidationCache) Get(contentHash string) ([]models.DiagnosticDTO, bool) {
	if c == nil || c.db == nil {
		return nil, false
	}

	var raw string
	err := c.db.QueryRow(`
		SELECT diagnostics FROM validation_cache WHERE content_hash = ?
	`, contentHash).Scan(&raw)
	if err != nil {
		return nil, false
	}

	var diags []models.DiagnosticDTO
	if err := json.Unmarshal([]byte(raw), &diags); err != nil {
		return nil, false
	}
	return diags, true
}

// Put records the diagnostics found for contentHash, replacing any
// prior entry (a puzzle line can be re-checked after its file changes).
func (c *ValidationCache) Put(contentHash string, diags []models.DiagnosticDTO) error {
	if c == nil || c.db == nil {
		return nil
	}

	raw, err := json.Marshal(diags)
	if err != nil {
		return fmt.Errorf("failed to marshal diagnostics: %w", err)
	}

	_, err = c.db.Exec(`
		INSERT INTO validation_cache (content_hash, diagnostic_count, diagnostics, checked_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(content_hash) DO UPDATE SET
			diagnostic_count = excluded.diagnostic_count,
			diagnostics = excluded.diagnostics,
			checked_at = excluded.checked_at
	`, contentHash, len(diags), string(raw), time.Now())
	if err != nil {
		return fmt.Errorf("failed to save validation cache entry: %w", err)
	}
	return nil
}

// Clear removes every cached entry.
func (c *ValidationCache) Clear() error {
	if c == nil || c.db == nil {
		return nil
	}
	_, err := c.db.Exec(`DELETE FROM validation_cache`)
	if err != nil {
		return fmt.Errorf("failed to clear validation cache: %w", err)
	}
	return nil
}

// PatternCache memoises lists of strings in Redis, keyed by
// (dictionary checksum, pattern). Its caller, the solve handler, stores
// rendered solution grids under a pattern made of the grid text and
// the solution limit.
type PatternCache struct {
	client *redis.Client
}

// NewPatternCache wraps an already-connected Redis client. Pass nil to
// get a cache that always misses, the same graceful-degradation shape
// used throughout this codebase when a backing store is unreachable.
func NewPatternCache(client *redis.Client) *PatternCache {
	return &PatternCache{client: client}
}

func key(checksum, pattern string) string {
	return "pattern:" + checksum + ":" + pattern
}

// Get returns the cached word list for (checksum, pattern), if present.
func (p *PatternCache) Get(ctx context.Context, checksum, pattern string) ([]string, bool) {
	if p == nil || p.client == nil {
		return nil, false
	}

	raw, err := p.client.Get(ctx, key(checksum, pattern)).Result()
	if err != nil {
		return nil, false
	}
	if raw == "" {
		return []string{}, true
	}
	return strings.Split(raw, "\n"), true
}

// Set stores the word list for (checksum, pattern) with a one-hour TTL
// — dictionaries are rebuilt occasionally, so stale pattern hits should
// expire rather than persist forever.
func (p *PatternCache) Set(ctx context.Context, checksum, pattern string, words []string) error {
	if p == nil || p.client == nil {
		return nil
	}
	err := p.client.Set(ctx, key(checksum, pattern), strings.Join(words, "\n"), time.Hour).Err()
	if err != nil {
		return fmt.Errorf("failed to cache pattern search: %w", err)
	}
	return nil
}

// Clear drops every cached pattern-search entry.
func (p *PatternCache) Clear(ctx context.Context) error {
	if p == nil || p.client == nil {
		return nil
	}
	iter := p.client.Scan(ctx, 0, "pattern:*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan pattern cache: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := p.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear pattern cache: %w", err)
	}
	return nil
}
