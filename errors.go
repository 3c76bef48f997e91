package flvparse

import "errors"

var (
	ErrBadSignature           = errors.New("flvparse: bad signature")
	ErrTruncated              = errors.New("flvparse: truncated input")
	ErrUnknownTagType         = errors.New("flvparse: unknown tag type")
	ErrUnknownSoundFormat     = errors.New("flvparse: unknown sound format")
	ErrUnknownAACPacketType   = errors.New("flvparse: unknown aac packet type")
	ErrUnknownScriptValueType = errors.New("flvparse: unknown script value type")
	ErrInvalidUTF8            = errors.New("flvparse: invalid utf-8 string")
	ErrMissingObjectEnd       = errors.New("flvparse: missing object end marker")
	ErrDepthExceeded          = errors.New("flvparse: script value nesting too deep")
	ErrLimitExceeded          = errors.New("flvparse: limit exceeded")
)
