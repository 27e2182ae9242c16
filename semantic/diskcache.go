package semantic

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

// DiskCache is an EmbeddingCache persisted to a directory, one
// zstd-compressed file per entry keyed by the SHA-256 of the input text.
//
// It survives process restarts, which matters for embedding backends billed
// per call. DiskCache performs no eviction; callers manage the directory
// lifetime. Read/write failures degrade to cache misses.
type DiskCache struct {
	dir     string
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewDiskCache creates a DiskCache rooted at dir, creating it if needed.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}

	return &DiskCache{
		dir:     dir,
		encoder: encoder,
		decoder: decoder,
	}, nil
}

// Get returns a cached vector.
func (c *DiskCache) Get(text string) ([]float32, bool) {
	compressed, err := os.ReadFile(c.path(text))
	if err != nil {
		return nil, false
	}

	raw, err := c.decoder.DecodeAll(compressed, nil)
	if err != nil || len(raw)%4 != 0 {
		return nil, false
	}

	vec := make([]float32, len(raw)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return vec, true
}

// Set caches a vector. The write is atomic (temp file + rename) so a
// concurrent Get never observes a partial entry.
func (c *DiskCache) Set(text string, vec []float32) {
	raw := make([]byte, len(vec)*4)
	for i, v := range vec {
		binary.LittleEndian.PutUint32(raw[i*4:], math.Float32bits(v))
	}

	compressed := c.encoder.EncodeAll(raw, nil)

	path := c.path(text)
	tmp, err := os.CreateTemp(c.dir, "emb-*.tmp")
	if err != nil {
		return
	}

	if _, err := tmp.Write(compressed); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
	}
}

func (c *DiskCache) path(text string) string {
	sum := sha256.Sum256([]byte(text))
	return filepath.Join(c.dir, hex.EncodeToString(sum[:])+".emb")
}
