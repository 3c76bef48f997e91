package flvparse

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecodeAudioData_SoundFormats(t *testing.T) {
	want := map[uint8]SoundFormat{
		0:  SoundFormatPCMPlatformEndian,
		1:  SoundFormatADPCM,
		2:  SoundFormatMP3,
		3:  SoundFormatPCMLittleEndian,
		4:  SoundFormatNellymoser16kMono,
		5:  SoundFormatNellymoser8kMono,
		6:  SoundFormatNellymoser,
		7:  SoundFormatPCMALaw,
		8:  SoundFormatPCMMuLaw,
		9:  SoundFormatReserved,
		10: SoundFormatAAC,
		11: SoundFormatSpeex,
		14: SoundFormatMP3_8kHz,
		15: SoundFormatDeviceSpecific,
	}
	for nibble := uint8(0); nibble < 16; nibble++ {
		d, err := decodeAudioData([]byte{nibble << 4})
		format, mapped := want[nibble]
		if !mapped {
			if !errors.Is(err, ErrUnknownSoundFormat) {
				t.Fatalf("nibble %d: expected ErrUnknownSoundFormat, got %v", nibble, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("nibble %d: %v", nibble, err)
		}
		if d.SoundFormat != format {
			t.Fatalf("nibble %d: got format %d, want %d", nibble, d.SoundFormat, format)
		}
	}
}

func TestDecodeAudioData_SubHeaderBitfields(t *testing.T) {
	// 0xaf = 1010 11 1 1: AAC, 44kHz, 16-bit, stereo.
	d, err := decodeAudioData([]byte{0xaf, 0x01, 0x02})
	if err != nil {
		t.Fatal(err)
	}
	if d.SoundFormat != SoundFormatAAC || d.SoundRate != SoundRate44K ||
		d.SoundSize != SoundSize16Bit || d.SoundType != SoundTypeStereo {
		t.Fatalf("got %+v", d)
	}
	if !bytes.Equal(d.Body, []byte{0x01, 0x02}) {
		t.Fatalf("body: % x", d.Body)
	}

	// 0x22 = 0010 00 1 0: MP3, 5.5kHz, 16-bit, mono.
	d, err = decodeAudioData([]byte{0x22})
	if err != nil {
		t.Fatal(err)
	}
	if d.SoundFormat != SoundFormatMP3 || d.SoundRate != SoundRate5_5K ||
		d.SoundSize != SoundSize16Bit || d.SoundType != SoundTypeMono {
		t.Fatalf("got %+v", d)
	}
	if len(d.Body) != 0 {
		t.Fatalf("body: % x", d.Body)
	}
}

func TestDecodeAudioData_SoundRates(t *testing.T) {
	// All four 2-bit combinations are defined; none may fail.
	for bits := uint8(0); bits < 4; bits++ {
		d, err := decodeAudioData([]byte{bits << 2})
		if err != nil {
			t.Fatalf("rate bits %d: %v", bits, err)
		}
		if d.SoundRate != SoundRate(bits) {
			t.Fatalf("rate bits %d: got %d", bits, d.SoundRate)
		}
	}
}

func TestDecodeAudioData_Empty(t *testing.T) {
	_, err := decodeAudioData(nil)
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestDecodeAACAudioPacket(t *testing.T) {
	pkt, err := DecodeAACAudioPacket([]byte{0x00, 0x12, 0x10})
	if err != nil {
		t.Fatal(err)
	}
	if pkt.PacketType != AACSequenceHeader {
		t.Fatalf("packet type: %d", pkt.PacketType)
	}
	if !bytes.Equal(pkt.Data, []byte{0x12, 0x10}) {
		t.Fatalf("data: % x", pkt.Data)
	}

	pkt, err = DecodeAACAudioPacket([]byte{0x01})
	if err != nil {
		t.Fatal(err)
	}
	if pkt.PacketType != AACRaw || len(pkt.Data) != 0 {
		t.Fatalf("got %+v", pkt)
	}
}

func TestDecodeAACAudioPacket_UnknownType(t *testing.T) {
	// No catch-all: anything past 1 fails.
	for _, b := range []byte{0x02, 0x7f, 0xff} {
		_, err := DecodeAACAudioPacket([]byte{b})
		if !errors.Is(err, ErrUnknownAACPacketType) {
			t.Fatalf("byte %#x: expected ErrUnknownAACPacketType, got %v", b, err)
		}
	}
}

func TestDecodeAACAudioPacket_Empty(t *testing.T) {
	_, err := DecodeAACAudioPacket(nil)
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}
