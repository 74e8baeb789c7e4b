package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"veridoc/internal/ocr"
)

const rawTextTTL = 24 * time.Hour

// Cache stores OCR output keyed by the upload's SHA-256, so re-uploading the
// same file skips the slow external extraction call. All methods are
// nil-safe; a nil *Cache just means no caching.
type Cache struct {
	rdb *redis.Client
}

// New connects to redis using a URL like redis://localhost:6379/0.
func New(url string) (*Cache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Cache{rdb: rdb}, nil
}

func key(sum string) string { return "veridoc:ocr:" + sum }

// Sum returns the hex SHA-256 of an upload.
func Sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

func (c *Cache) GetRawText(ctx context.Context, sum string) (string, bool) {
	if c == nil {
		return "", false
	}
	text, err := c.rdb.Get(ctx, key(sum)).Result()
	if err != nil {
		return "", false
	}
	return text, true
}

func (c *Cache) SetRawText(ctx context.Context, sum, text string) {
	if c == nil {
		return
	}
	if err := c.rdb.Set(ctx, key(sum), text, rawTextTTL).Err(); err != nil {
		log.Printf("cache: failed to store raw text: %v", err)
	}
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}

// CachingSource wraps a TextSource with the raw-text cache.
type CachingSource struct {
	Inner ocr.TextSource
	Cache *Cache
}

func (s *CachingSource) ExtractRawText(ctx context.Context, filename string, data []byte) (string, error) {
	sum := Sum(data)
	if text, ok := s.Cache.GetRawText(ctx, sum); ok {
		return text, nil
	}
	text, err := s.Inner.ExtractRawText(ctx, filename, data)
	if err != nil {
		return "", err
	}
	s.Cache.SetRawText(ctx, sum, text)
	return text, nil
}

func (s *CachingSource) Close() error { return s.Inner.Close() }
