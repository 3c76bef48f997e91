package flvparse

import (
	"fmt"

	"github.com/q191201771/naza/pkg/nazabits"
)

// FrameType is the frame kind of a video tag. Nibbles outside 1..5 map to
// FrameTypeUnknown rather than failing, so files using future frame kinds
// still decode.
type FrameType uint8

const (
	FrameTypeUnknown         FrameType = 0
	FrameTypeKey             FrameType = 1
	FrameTypeInter           FrameType = 2
	FrameTypeDisposableInter FrameType = 3
	FrameTypeGenerated       FrameType = 4
	FrameTypeCommand         FrameType = 5
)

// CodecID is the video codec of a video tag. Nibbles outside 2..7 map to
// CodecIDUnknown rather than failing.
type CodecID uint8

const (
	CodecIDUnknown       CodecID = 0
	CodecIDSorensonH263  CodecID = 2
	CodecIDScreenVideo   CodecID = 3
	CodecIDVP6           CodecID = 4
	CodecIDVP6Alpha      CodecID = 5
	CodecIDScreenVideoV2 CodecID = 6
	CodecIDAVC           CodecID = 7
)

// VideoData is the payload of a video tag.
//
// frameType [4b] 1=key frame, 2=inter frame
// codecID   [4b] 7=AVC
type VideoData struct {
	FrameType FrameType
	CodecID   CodecID
	Body      []byte // codec bitstream, aliases the input buffer
}

func (*VideoData) isTagData() {}

// decodeVideoData decodes a video tag payload. b holds exactly the tag's
// declared data bytes.
func decodeVideoData(b []byte) (*VideoData, error) {
	if len(b) < 1 {
		return nil, fmt.Errorf("%w: need 1 byte for video header", ErrTruncated)
	}
	br := nazabits.NewBitReader(b)
	frame, _ := br.ReadBits8(4)
	codec, _ := br.ReadBits8(4)

	ft := FrameType(frame)
	if ft < FrameTypeKey || ft > FrameTypeCommand {
		ft = FrameTypeUnknown
	}
	ci := CodecID(codec)
	if ci < CodecIDSorensonH263 || ci > CodecIDAVC {
		ci = CodecIDUnknown
	}

	return &VideoData{FrameType: ft, CodecID: ci, Body: b[1:]}, nil
}

// AVCPacketType distinguishes the AVC payload kinds. Bytes outside 0..2
// map to AVCUnknown rather than failing.
type AVCPacketType uint8

const (
	AVCSequenceHeader AVCPacketType = 0
	AVCNALU           AVCPacketType = 1
	AVCEndOfSequence  AVCPacketType = 2
	AVCUnknown        AVCPacketType = 0xff
)

// AVCVideoPacket is the secondary decode of a video body whose CodecID is
// CodecIDAVC.
type AVCVideoPacket struct {
	PacketType AVCPacketType
	// CompositionTime is the signed offset in milliseconds between
	// decode time and presentation time. Only meaningful when PacketType
	// is AVCNALU; 0 otherwise.
	CompositionTime int32
	Data            []byte // AVCDecoderConfigurationRecord or NAL units
}

// DecodeAVCVideoPacket decodes the AVC sub-packet inside a video tag
// body. Decode never calls it; invoke it explicitly once
// VideoData.CodecID is known to be CodecIDAVC.
func DecodeAVCVideoPacket(data []byte) (*AVCVideoPacket, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: need 4 bytes for avc packet header", ErrTruncated)
	}
	pt := AVCPacketType(data[0])
	if pt > AVCEndOfSequence {
		pt = AVCUnknown
	}
	return &AVCVideoPacket{
		PacketType:      pt,
		CompositionTime: signed24(data[1:4]),
		Data:            data[4:],
	}, nil
}
