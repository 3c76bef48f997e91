package flvparse

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecodeVideoData_KeyFrameAVC(t *testing.T) {
	d, err := decodeVideoData([]byte{0x17, 0x01, 0x02})
	if err != nil {
		t.Fatal(err)
	}
	if d.FrameType != FrameTypeKey || d.CodecID != CodecIDAVC {
		t.Fatalf("got %+v", d)
	}
	if !bytes.Equal(d.Body, []byte{0x01, 0x02}) {
		t.Fatalf("body: % x", d.Body)
	}
}

func TestDecodeVideoData_Sentinels(t *testing.T) {
	// Unmapped nibbles go to the Unknown sentinel, never an error.
	for frame := uint8(0); frame < 16; frame++ {
		for codec := uint8(0); codec < 16; codec++ {
			d, err := decodeVideoData([]byte{frame<<4 | codec})
			if err != nil {
				t.Fatalf("frame %d codec %d: %v", frame, codec, err)
			}
			wantFrame := FrameType(frame)
			if frame < 1 || frame > 5 {
				wantFrame = FrameTypeUnknown
			}
			wantCodec := CodecID(codec)
			if codec < 2 || codec > 7 {
				wantCodec = CodecIDUnknown
			}
			if d.FrameType != wantFrame || d.CodecID != wantCodec {
				t.Fatalf("frame %d codec %d: got %d/%d, want %d/%d",
					frame, codec, d.FrameType, d.CodecID, wantFrame, wantCodec)
			}
		}
	}
}

func TestDecodeVideoData_Empty(t *testing.T) {
	_, err := decodeVideoData(nil)
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestDecodeAVCVideoPacket_SequenceHeader(t *testing.T) {
	pkt, err := DecodeAVCVideoPacket([]byte{0x00, 0x00, 0x00, 0x00, 0x01, 0x64})
	if err != nil {
		t.Fatal(err)
	}
	if pkt.PacketType != AVCSequenceHeader || pkt.CompositionTime != 0 {
		t.Fatalf("got %+v", pkt)
	}
	if !bytes.Equal(pkt.Data, []byte{0x01, 0x64}) {
		t.Fatalf("data: % x", pkt.Data)
	}
}

func TestDecodeAVCVideoPacket_CompositionTime(t *testing.T) {
	cases := []struct {
		wire []byte
		want int32
	}{
		{[]byte{0x00, 0x00, 0x28}, 40},
		{[]byte{0xff, 0xff, 0xd8}, -40}, // sign-extended from 24 bits
		{[]byte{0x80, 0x00, 0x00}, -8388608},
		{[]byte{0x7f, 0xff, 0xff}, 8388607},
	}
	for _, tc := range cases {
		b := append([]byte{0x01}, tc.wire...)
		pkt, err := DecodeAVCVideoPacket(b)
		if err != nil {
			t.Fatal(err)
		}
		if pkt.PacketType != AVCNALU {
			t.Fatalf("packet type: %d", pkt.PacketType)
		}
		if pkt.CompositionTime != tc.want {
			t.Fatalf("wire % x: got %d, want %d", tc.wire, pkt.CompositionTime, tc.want)
		}
	}
}

func TestDecodeAVCVideoPacket_UnknownTypeSentinel(t *testing.T) {
	pkt, err := DecodeAVCVideoPacket([]byte{0x09, 0x00, 0x00, 0x00})
	if err != nil {
		t.Fatal(err)
	}
	if pkt.PacketType != AVCUnknown {
		t.Fatalf("packet type: %d", pkt.PacketType)
	}
}

func TestDecodeAVCVideoPacket_TooShort(t *testing.T) {
	_, err := DecodeAVCVideoPacket([]byte{0x01, 0x00, 0x00})
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}
