package flvparse

import "fmt"

// decodeTagHeader reads the fixed 11-byte tag header. The 4-byte
// timestamp is split on the wire: a 24-bit value followed by an extension
// byte that forms the unsigned high byte.
func decodeTagHeader(r *reader) (TagHeader, error) {
	b, err := r.take(tagHeaderSize)
	if err != nil {
		return TagHeader{}, err
	}
	t := TagType(b[0])
	switch t {
	case TagTypeAudio, TagTypeVideo, TagTypeScript:
	default:
		return TagHeader{}, fmt.Errorf("%w: %d", ErrUnknownTagType, b[0])
	}
	return TagHeader{
		Type:      t,
		DataSize:  be24(b[1:4]),
		Timestamp: uint32(b[7])<<24 | be24(b[4:7]),
		StreamID:  be24(b[8:11]),
	}, nil
}

// decodeTagData routes a payload window to the decoder matching the tag
// type. payload holds exactly the data bytes the header declared.
func decodeTagData(t TagType, payload []byte, maxDepth int) (TagData, error) {
	switch t {
	case TagTypeAudio:
		return decodeAudioData(payload)
	case TagTypeVideo:
		return decodeVideoData(payload)
	case TagTypeScript:
		return decodeScriptData(payload, maxDepth)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownTagType, uint8(t))
	}
}

// decodeTag reads one tag and the previous-tag-size field after it.
func decodeTag(r *reader, maxDepth int) (Tag, error) {
	h, err := decodeTagHeader(r)
	if err != nil {
		return Tag{}, err
	}
	payload, err := r.take(int(h.DataSize))
	if err != nil {
		return Tag{}, err
	}
	data, err := decodeTagData(h.Type, payload, maxDepth)
	if err != nil {
		return Tag{}, err
	}
	trailing, err := r.u32()
	if err != nil {
		return Tag{}, err
	}
	return Tag{Header: h, Data: data, TrailingSize: trailing}, nil
}
