// brokenio wraps an io.Reader so that reads go wrong on demand.
// Typical use: in a test, you have a reader over a file or a string.
// You write
//   rdr = brokenio.NewReader(rdr)
// and hand it to the code under test. Everything works as before until
// you ask for a failure.
// There are three kinds:
//   - fail after some number of bytes with ErrInjected,
//   - on the first read, return zero bytes and EOF, as from an empty file,
//   - at random, wipe out the end of a buffer and return an error.

package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// ErrInjected is returned when a read fails because we said it should.
var ErrInjected = errors.New("brokenio: injected read failure")

// A BrknRdr is modelled on the various Readers in the standard library,
// but with variables controlling the frequency of errors.
// The probabilities are fractions, so 0.05 means failure in 5% of calls.
type BrknRdr struct {
	rdrOrig      io.Reader // Wrapped reader
	probZeroFile float32   // Probability of returning a zero length file
	probFail     float32
	fracFail     float32
	failAfter    int // fail once this many bytes are delivered, if >= 0
	nCalled      int
	nByte        int
}

// dfltReader sets default values for a new brokenio reader.
var dfltReader = BrknRdr{
	fracFail:  0.5,
	failAfter: -1,
}

// NewReader returns a new Reader - a wrapper around the old one
func NewReader(rIn io.Reader) *BrknRdr {
	var rOut = dfltReader
	rOut.rdrOrig = rIn
	return &rOut
}

// SetFracFail sets the amount of the bytes which will be trashed
func (r *BrknRdr) SetFracFail(frac float32) { r.fracFail = frac }

// SetProbZeroFile sets the rate at which we simply return 0 bytes on the
// first read. It must be a value from 0 to 1. We do not check.
func (r *BrknRdr) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbFail set the probability of a read failure.
// It must be between zero and 1.
func (r *BrknRdr) SetProbFail(prob float32) { r.probFail = prob }

// SetFailAfter makes reading fail with ErrInjected once n bytes
// have been passed through. A negative n switches it off.
func (r *BrknRdr) SetFailAfter(n int) { r.failAfter = n }

// NByte is the number of bytes delivered so far.
func (r *BrknRdr) NByte() int { return r.nByte }

// trashSlice wipes out the second part of a slice.
// The amount to wipe out is given by a fraction, so 0.3
// will wipe out the second 30 % of a slice
func trashSlice(p []byte, frac float32) (int, error) {
	nkeep := int(float32(len(p)) * (1. - frac))
	if nkeep == len(p) {
		return nkeep, nil
	}
	err := fmt.Errorf("%w: wiped out last %d of %d", ErrInjected, len(p)-nkeep, len(p))
	clear(p[nkeep:])
	return nkeep, err
}

// Read wraps the original reader and sums up the amount of data that
// has gone through.
func (r *BrknRdr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.probZeroFile > 0 {
		if rand.Float32() < r.probZeroFile {
			r.nCalled++
			return 0, io.EOF
		}
	}
	r.nCalled++
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, ErrInjected
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	n, err = r.rdrOrig.Read(p)
	r.nByte += n
	if r.probFail > 0 && r.fracFail > 0 && rand.Float32() < r.probFail {
		m, err := trashSlice(p[:n], r.fracFail)
		return m, err
	}
	return n, err
}
