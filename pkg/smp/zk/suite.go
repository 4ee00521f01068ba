package zk

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"

	"github.com/cryptotoy/smp-go/pkg/smp/fiatshamir"
	"github.com/cryptotoy/smp-go/pkg/smp/group"
)

var (
	// ErrNilParams reports a missing parameter struct or field.
	ErrNilParams = errors.New("zk: nil parameter")
)

// Suite binds the proofs to one group: responses are reduced modulo the
// group order and challenges are hashed with the group's encoding width.
type Suite[E group.Element[E]] struct {
	order *big.Int
	fs    *fiatshamir.Transform
}

// NewSuite builds a Suite for grp. Options select the challenge hash.
func NewSuite[E group.Element[E]](grp group.Group[E], opts ...fiatshamir.Option) (*Suite[E], error) {
	if grp == nil {
		return nil, fmt.Errorf("%w: group", ErrNilParams)
	}
	fs, err := fiatshamir.New(grp.ByteLen(), opts...)
	if err != nil {
		return nil, err
	}
	return &Suite[E]{order: grp.Order(), fs: fs}, nil
}

// Order returns a copy of the scalar modulus q.
func (s *Suite[E]) Order() *big.Int { return new(big.Int).Set(s.order) }

// challenge hashes the version tag and the commitments' integer encodings.
func (s *Suite[E]) challenge(version uint64, commitments ...E) (*big.Int, error) {
	ints := make([]*big.Int, len(commitments))
	for i, c := range commitments {
		ints[i] = c.Int()
	}
	return s.fs.HashToInt(version, ints...)
}

// response computes (r - x*c) mod q.
func (s *Suite[E]) response(r, x, c *big.Int) *big.Int {
	d := new(big.Int).Mul(x, c)
	d.Sub(r, d)
	return d.Mod(d, s.order)
}

// combine returns base^d * public^c.
func combine[E group.Element[E]](base, public E, d, c *big.Int) E {
	return base.Exponentiate(d).Operate(public.Exponentiate(c))
}

// checkChallenge recomputes the challenge over the commitments and compares
// it with the claimed one. Encoding failures reject.
func (s *Suite[E]) checkChallenge(version uint64, claimed *big.Int, commitments ...E) bool {
	c, err := s.challenge(version, commitments...)
	if err != nil {
		return false
	}
	return c.Cmp(claimed) == 0
}

// reduced reports whether every response lies in [0, q).
func (s *Suite[E]) reduced(ds ...*big.Int) bool {
	for _, d := range ds {
		if d == nil || d.Sign() < 0 || d.Cmp(s.order) >= 0 {
			return false
		}
	}
	return true
}

func anyNil(vals ...*big.Int) bool {
	for _, v := range vals {
		if v == nil {
			return true
		}
	}
	return false
}

// isNil reports whether an element is a nil pointer or nil interface.
func isNil[E any](e E) bool {
	v := reflect.ValueOf(any(e))
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
