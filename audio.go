package flvparse

import (
	"fmt"

	"github.com/q191201771/naza/pkg/nazabits"
)

// SoundFormat is the audio codec carried by an audio tag.
type SoundFormat uint8

const (
	SoundFormatPCMPlatformEndian SoundFormat = 0
	SoundFormatADPCM             SoundFormat = 1
	SoundFormatMP3               SoundFormat = 2
	SoundFormatPCMLittleEndian   SoundFormat = 3
	SoundFormatNellymoser16kMono SoundFormat = 4
	SoundFormatNellymoser8kMono  SoundFormat = 5
	SoundFormatNellymoser        SoundFormat = 6
	SoundFormatPCMALaw           SoundFormat = 7
	SoundFormatPCMMuLaw          SoundFormat = 8
	SoundFormatReserved          SoundFormat = 9
	SoundFormatAAC               SoundFormat = 10
	SoundFormatSpeex             SoundFormat = 11
	SoundFormatMP3_8kHz          SoundFormat = 14
	SoundFormatDeviceSpecific    SoundFormat = 15
)

type SoundRate uint8

const (
	SoundRate5_5K SoundRate = 0
	SoundRate11K  SoundRate = 1
	SoundRate22K  SoundRate = 2
	SoundRate44K  SoundRate = 3
)

type SoundSize uint8

const (
	SoundSize8Bit  SoundSize = 0
	SoundSize16Bit SoundSize = 1
)

type SoundType uint8

const (
	SoundTypeMono   SoundType = 0
	SoundTypeStereo SoundType = 1
)

// AudioData is the payload of an audio tag.
//
// soundFormat [4b] 10=AAC
// soundRate   [2b] 3=44kHz, AAC is always 3
// soundSize   [1b] 0=8-bit, 1=16-bit
// soundType   [1b] 0=mono, 1=stereo, AAC is always 1
type AudioData struct {
	SoundFormat SoundFormat
	SoundRate   SoundRate
	SoundSize   SoundSize
	SoundType   SoundType
	Body        []byte // codec bitstream, aliases the input buffer
}

func (*AudioData) isTagData() {}

// decodeAudioData decodes an audio tag payload. b holds exactly the tag's
// declared data bytes.
func decodeAudioData(b []byte) (*AudioData, error) {
	if len(b) < 1 {
		return nil, fmt.Errorf("%w: need 1 byte for sound header", ErrTruncated)
	}
	br := nazabits.NewBitReader(b)
	format, _ := br.ReadBits8(4)
	rate, _ := br.ReadBits8(2)
	size, _ := br.ReadBits8(1)
	typ, _ := br.ReadBits8(1)

	switch SoundFormat(format) {
	case SoundFormatPCMPlatformEndian, SoundFormatADPCM, SoundFormatMP3,
		SoundFormatPCMLittleEndian, SoundFormatNellymoser16kMono,
		SoundFormatNellymoser8kMono, SoundFormatNellymoser,
		SoundFormatPCMALaw, SoundFormatPCMMuLaw, SoundFormatReserved,
		SoundFormatAAC, SoundFormatSpeex, SoundFormatMP3_8kHz,
		SoundFormatDeviceSpecific:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownSoundFormat, format)
	}

	return &AudioData{
		SoundFormat: SoundFormat(format),
		SoundRate:   SoundRate(rate),
		SoundSize:   SoundSize(size),
		SoundType:   SoundType(typ),
		Body:        b[1:],
	}, nil
}

// AACPacketType distinguishes an AAC sequence header from raw frames.
type AACPacketType uint8

const (
	AACSequenceHeader AACPacketType = 0
	AACRaw            AACPacketType = 1
)

// AACAudioPacket is the secondary decode of an audio body whose
// SoundFormat is SoundFormatAAC.
type AACAudioPacket struct {
	PacketType AACPacketType
	Data       []byte // AudioSpecificConfig or raw AAC frame data
}

// DecodeAACAudioPacket decodes the AAC sub-packet inside an audio tag
// body. Decode never calls it; invoke it explicitly once
// AudioData.SoundFormat is known to be SoundFormatAAC.
func DecodeAACAudioPacket(data []byte) (*AACAudioPacket, error) {
	if len(data) < 1 {
		return nil, fmt.Errorf("%w: need 1 byte for aac packet type", ErrTruncated)
	}
	switch t := AACPacketType(data[0]); t {
	case AACSequenceHeader, AACRaw:
		return &AACAudioPacket{PacketType: t, Data: data[1:]}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAACPacketType, data[0])
	}
}
