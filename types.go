package flvparse

import "fmt"

const (
	Version1 uint8 = 1

	headerSize    = 9
	tagHeaderSize = 11
)

// Signature is the 3-byte FLV file signature.
var Signature = [3]byte{'F', 'L', 'V'}

const (
	flagHasAudio uint8 = 0x04
	flagHasVideo uint8 = 0x01
)

type TagType uint8

const (
	TagTypeAudio  TagType = 8
	TagTypeVideo  TagType = 9
	TagTypeScript TagType = 18
)

func (t TagType) String() string {
	switch t {
	case TagTypeAudio:
		return "Audio"
	case TagTypeVideo:
		return "Video"
	case TagTypeScript:
		return "Script"
	default:
		return fmt.Sprintf("TagType(%d)", uint8(t))
	}
}

// Container is a decoded FLV file.
//
// Every payload slice in the tree aliases the input buffer handed to
// Decode; the tree stays valid only as long as that buffer does.
type Container struct {
	Header Header
	Body   Body
}

// Header is the 9-byte file header.
type Header struct {
	Signature  [3]byte
	Version    uint8
	Flags      uint8 // bit 2 = audio present, bit 0 = video present
	HasAudio   bool
	HasVideo   bool
	DataOffset uint32 // header length in bytes, 9 for version 1
}

// Body is the tag sequence in stream order.
type Body struct {
	FirstPreviousTagSize uint32 // 0 by convention, recorded as read
	Tags                 []Tag
}

// Tag is one timestamped record: its header, its decoded payload, and the
// previous-tag-size field that follows it in the stream.
type Tag struct {
	Header       TagHeader
	Data         TagData
	TrailingSize uint32
}

// TagHeader is the fixed 11-byte header preceding every tag payload.
type TagHeader struct {
	Type      TagType
	DataSize  uint32 // payload byte count, at most 0xFFFFFF
	Timestamp uint32 // milliseconds; extension byte forms the high byte
	StreamID  uint32 // 0 by convention, recorded as read
}

// TagData is the decoded payload of a tag: exactly one of *AudioData,
// *VideoData, or *ScriptData.
type TagData interface {
	isTagData()
}
