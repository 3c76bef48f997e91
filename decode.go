package flvparse

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Decode parses one FLV stream held entirely in data.
//
// The decoding process:
//  1. Reads and validates the 9-byte file header
//  2. Reads the 4-byte first previous-tag-size
//  3. Decodes (tag, previous-tag-size) pairs until the buffer ends
//
// A final tag cut short by the end of the buffer is dropped silently and
// ends the stream; files captured mid-recording stay readable. Any other
// malformed construct (an unknown tag type, an unknown sound format, a
// bad string, a property list without its end marker) fails the whole
// decode.
//
// Decoded payloads alias data. The caller must keep data alive and
// unmodified for as long as it uses the returned Container.
//
// Decode returns ErrBadSignature if data is not an FLV stream, and
// ErrTruncated if it ends before the header or the first
// previous-tag-size.
func Decode(data []byte, opts ...DecodeOption) (*Container, error) {
	cfg := decodeConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	r := newReader(data)
	h, err := decodeHeader(r)
	if err != nil {
		return nil, err
	}
	body, err := decodeBody(r, cfg.limits.MaxScriptDepth)
	if err != nil {
		return nil, err
	}
	return &Container{Header: h, Body: body}, nil
}

func decodeHeader(r *reader) (Header, error) {
	b, err := r.take(headerSize)
	if err != nil {
		return Header{}, err
	}
	var sig [3]byte
	copy(sig[:], b[0:3])
	if sig != Signature {
		return Header{}, fmt.Errorf("%w: % x", ErrBadSignature, b[0:3])
	}
	flags := b[4]
	return Header{
		Signature:  sig,
		Version:    b[3],
		Flags:      flags,
		HasAudio:   flags&flagHasAudio != 0,
		HasVideo:   flags&flagHasVideo != 0,
		DataOffset: binary.BigEndian.Uint32(b[5:9]),
	}, nil
}

func decodeBody(r *reader, maxDepth int) (Body, error) {
	first, err := r.u32()
	if err != nil {
		return Body{}, err
	}
	body := Body{FirstPreviousTagSize: first}
	for r.remaining() > 0 {
		tag, err := decodeTag(r, maxDepth)
		if err != nil {
			if errors.Is(err, ErrTruncated) {
				// Dangling final tag: treat as end of stream.
				break
			}
			return Body{}, err
		}
		body.Tags = append(body.Tags, tag)
	}
	return body, nil
}
