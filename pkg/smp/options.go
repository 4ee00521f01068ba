package smp

import (
	"io"

	"github.com/cryptotoy/smp-go/pkg/smp/fiatshamir"
	"github.com/cryptotoy/smp-go/pkg/smp/logging"
	"github.com/cryptotoy/smp-go/pkg/smp/random"
)

// Option configures a session.
type Option func(*options)

type options struct {
	rand   io.Reader
	logger logging.Logger
	hash   fiatshamir.HashFunc
}

func defaultOptions() options {
	return options{
		rand:   random.Reader,
		logger: logging.Nop(),
		hash:   fiatshamir.SHA256,
	}
}

// WithRand replaces the randomness source. Production sessions must use a
// cryptographically secure reader; the default is crypto/rand.
func WithRand(r io.Reader) Option {
	return func(o *options) {
		if r != nil {
			o.rand = r
		}
	}
}

// WithLogger attaches a logger. Sessions log step transitions at Debug and
// aborts at Warn. Secrets are never logged.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithHash selects the Fiat-Shamir challenge hash. Both parties must use the
// same hash.
func WithHash(h fiatshamir.HashFunc) Option {
	return func(o *options) {
		if h != nil {
			o.hash = h
		}
	}
}
