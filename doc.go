// Package flvparse decodes the FLV media container format.
//
// An FLV file is a 9-byte header followed by a stream of timestamped
// tags, each carrying audio data, video data, or script metadata, with a
// 4-byte previous-tag-size field between tags. This package parses a
// whole file held in memory into a typed tree: the header, every tag
// header, the audio/video sub-headers, and the full recursive script
// value grammar used by metadata tags such as onMetaData. It is a
// decoder only; there is no write path, no transport, and no audio or
// video sample decoding.
//
// # Basic Usage
//
// To inspect a file:
//
//	data, err := flvparse.ReadFile("input.flv")
//	if err != nil {
//		log.Fatal(err)
//	}
//	c, err := flvparse.Decode(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, tag := range c.Body.Tags {
//		fmt.Println(tag.Header.Type, tag.Header.Timestamp)
//	}
//
// ReadFile transparently decompresses gzip, zstd, lz4, and brotli
// archives, so compressed stream dumps decode like plain files. Decode
// works on any byte slice; payloads in the returned tree alias that
// slice rather than copying it.
//
// # Truncated Input
//
// A stream that ends in the middle of its final tag is not an error: the
// incomplete tag is dropped and the tags before it are returned. Every
// other malformed construct fails the decode with one of the package's
// sentinel errors, which callers can test with errors.Is.
//
// # Security Considerations
//
// The script value grammar is recursive, and attacker-supplied input
// could nest values arbitrarily deep; decoding fails with
// ErrDepthExceeded past a configurable bound. Decompression during
// loading is likewise capped. See [Limits].
//
// # Format
//
// The container layout follows Adobe's Video File Format Specification,
// version 10.
package flvparse
