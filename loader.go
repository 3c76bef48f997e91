package flvparse

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Archive container magics. Brotli frames carry none and are routed by
// file extension instead.
var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// ReadFile loads path into memory for Decode, transparently decompressing
// gzip, zstd, and lz4 archives by their magic bytes and brotli archives
// by a .br suffix. Decompressed output is capped by
// Limits.MaxDecompressedSize; exceeding the cap fails with
// ErrLimitExceeded.
func ReadFile(path string, opts ...LoadOption) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadAll(f, path, opts...)
}

// ReadAll is ReadFile over an io.Reader. name participates only in .br
// detection and may be empty.
func ReadAll(r io.Reader, name string, opts ...LoadOption) ([]byte, error) {
	cfg := loadConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	max := cfg.limits.MaxDecompressedSize
	switch {
	case bytes.HasPrefix(raw, gzipMagic):
		return gzipDecompress(raw, max)
	case bytes.HasPrefix(raw, zstdMagic):
		return zstdDecompress(raw, max)
	case bytes.HasPrefix(raw, lz4Magic):
		return lz4Decompress(raw, max)
	case strings.HasSuffix(name, ".br"):
		return brotliDecompress(raw, max)
	default:
		return raw, nil
	}
}

func gzipDecompress(in []byte, max uint64) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(in))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return readCapped(zr, max)
}

func zstdDecompress(in []byte, max uint64) ([]byte, error) {
	zr, err := zstd.NewReader(bytes.NewReader(in))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return readCapped(zr, max)
}

func lz4Decompress(in []byte, max uint64) ([]byte, error) {
	return readCapped(lz4.NewReader(bytes.NewReader(in)), max)
}

func brotliDecompress(in []byte, max uint64) ([]byte, error) {
	return readCapped(brotli.NewReader(bytes.NewReader(in)), max)
}

// readCapped drains r, refusing output beyond max bytes to prevent
// decompression bombs.
func readCapped(r io.Reader, max uint64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, int64(max)+1))
	if err != nil {
		return nil, err
	}
	if uint64(len(b)) > max {
		return nil, fmt.Errorf("%w: decompressed input exceeds %d bytes", ErrLimitExceeded, max)
	}
	return b, nil
}
