package flvparse

type decodeConfig struct {
	limits Limits
}

type DecodeOption func(*decodeConfig)

func WithDecodeLimits(l Limits) DecodeOption {
	return func(c *decodeConfig) { c.limits = l }
}

type loadConfig struct {
	limits Limits
}

type LoadOption func(*loadConfig)

func WithLoadLimits(l Limits) LoadOption {
	return func(c *loadConfig) { c.limits = l }
}
