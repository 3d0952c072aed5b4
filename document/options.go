package document

import (
	"log/slog"

	"github.com/LeiYangGH/dxf"
	"github.com/google/uuid"
)

// Option configures a Document during creation.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	handleSeed  dxf.Handle
	fingerprint uuid.UUID
}

func defaultOptions() options {
	return options{
		logger:      nil, // dxf.Logger() at creation time
		handleSeed:  1,
		fingerprint: uuid.Nil, // generated
	}
}

// WithLogger sets the logger for this document instead of the package wide
// dxf.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithHandleSeed sets the first handle the handle pass hands out. Zero is
// ignored.
func WithHandleSeed(seed dxf.Handle) Option {
	return func(o *options) {
		if seed != 0 {
			o.handleSeed = seed
		}
	}
}

// WithFingerprintGUID keeps the fingerprint of a document read from a file
// instead of generating a new one.
func WithFingerprintGUID(id uuid.UUID) Option {
	return func(o *options) {
		o.fingerprint = id
	}
}
