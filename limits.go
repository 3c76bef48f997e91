package flvparse

type Limits struct {
	MaxScriptDepth      int    // nesting bound for script values
	MaxDecompressedSize uint64 // loader output after decompression
}

func defaultLimits() Limits {
	return Limits{
		MaxScriptDepth:      64,
		MaxDecompressedSize: 1 << 30, // 1 GiB
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxScriptDepth == 0 {
		l.MaxScriptDepth = d.MaxScriptDepth
	}
	if l.MaxDecompressedSize == 0 {
		l.MaxDecompressedSize = d.MaxDecompressedSize
	}
	return l
}

// DefaultLimits returns the limits used when no override is supplied.
func DefaultLimits() Limits { return defaultLimits() }
