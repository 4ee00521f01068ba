package smp

import (
	"context"
	"fmt"
	"io"
	"math/big"

	"github.com/cryptotoy/smp-go/pkg/smp/fiatshamir"
	"github.com/cryptotoy/smp-go/pkg/smp/group"
	"github.com/cryptotoy/smp-go/pkg/smp/logging"
	"github.com/cryptotoy/smp-go/pkg/smp/random"
	"github.com/cryptotoy/smp-go/pkg/smp/zk"
)

// Result is the outcome of a completed run. A run that aborted returns an
// error wrapping ErrProtocolAbort instead of a Result.
type Result struct {
	Equal bool
}

// session holds what both parties share: public parameters, the local
// secret, the randomness source and every scalar drawn so far.
type session[E group.Element[E]] struct {
	grp   group.Group[E]
	suite *zk.Suite[E]
	g1    E
	rand  io.Reader
	log   logging.Logger
	role  Role

	secret *big.Int
	drawn  []*big.Int
	seen   map[string]struct{}
	closed bool
}

func newSession[E group.Element[E]](grp group.Group[E], secret *big.Int, role Role, opts []Option) (*session[E], error) {
	if grp == nil {
		return nil, fmt.Errorf("%w: nil group", ErrInvalidArgument)
	}
	if secret == nil || secret.Sign() < 0 {
		return nil, fmt.Errorf("%w: secret must be a non-negative integer", ErrInvalidArgument)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	suite, err := zk.NewSuite(grp, fiatshamir.WithHash(o.hash))
	if err != nil {
		return nil, err
	}
	return &session[E]{
		grp:    grp,
		suite:  suite,
		g1:     grp.Generator(),
		rand:   o.rand,
		log:    o.logger.With("party", role.String()),
		role:   role,
		secret: new(big.Int).Mod(secret, grp.Order()),
		seen:   make(map[string]struct{}),
	}, nil
}

// scalar draws a fresh value in [1, q). Every draw is remembered so a
// repeating randomness source is caught before a value is used twice.
func (s *session[E]) scalar() (*big.Int, error) {
	v, err := random.NonZeroScalar(s.rand, s.grp.Order())
	if err != nil {
		return nil, err
	}
	key := string(v.Bytes())
	if _, dup := s.seen[key]; dup {
		zeroizeInt(v)
		return nil, ErrNonceReuse
	}
	s.seen[key] = struct{}{}
	s.drawn = append(s.drawn, v)
	return v, nil
}

// scalars draws n fresh values.
func (s *session[E]) scalars(n int) ([]*big.Int, error) {
	out := make([]*big.Int, n)
	for i := range out {
		v, err := s.scalar()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// checkElements applies the group's range sanity check to peer elements.
func (s *session[E]) checkElements(names []string, elems ...E) error {
	for i, e := range elems {
		if !s.grp.Valid(e) {
			return fmt.Errorf("%w: %s", ErrDegenerateElement, names[i])
		}
	}
	return nil
}

// abort wipes the session and reports the failure. The returned error wraps
// ErrProtocolAbort and cause.
func (s *session[E]) abort(ctx context.Context, step string, cause error) error {
	s.log.Warn(ctx, "smp aborted", "step", step, "reason", cause.Error())
	s.wipe()
	return &AbortError{Step: step, Err: cause}
}

// wipe zeroizes the secret and every drawn scalar and closes the session.
func (s *session[E]) wipe() {
	if s.closed {
		return
	}
	zeroizeInt(s.secret)
	for _, v := range s.drawn {
		zeroizeInt(v)
	}
	s.drawn = nil
	s.seen = nil
	s.closed = true
}

// quotient returns a * b^-1.
func quotient[E group.Element[E]](a, b E) E {
	return a.Operate(b.Inverse())
}
