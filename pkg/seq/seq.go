// 20 Dec 2017
// 18 Oct 2026 Reading is now handed to biogo. We only keep the
// name and length of each sequence.

// Package seq reads sequences in fasta format, one record at a time.
// For each record we keep the identifier and the number of symbols.
package seq

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	. "github.com/andrew-torda/seqlen/pkg/seq/common"
)

// ErrNotFasta is returned if the input does not start with a comment line.
var ErrNotFasta = errors.New("not fasta format")

// Record is what we keep from a sequence.
// ID is the first word of the comment line without the ">".
// Len counts symbols, but not white space or line breaks. Gaps count.
type Record struct {
	ID  string
	Len int
}

// Reader hands out records in the order they are in the input.
// Once it has returned an error, including io.EOF, it keeps returning
// the same error.
type Reader struct {
	brdr *bufio.Reader
	sc   *seqio.Scanner
	n    int // records returned so far
	err  error
}

// NewReader wraps rdr. Nothing is read until the first call to Read.
func NewReader(rdr io.Reader) *Reader {
	return &Reader{brdr: bufio.NewReader(rdr)}
}

func isWhite(c byte) bool {
	var asciiSpace = [256]bool{
		'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
	}
	return asciiSpace[c]
}

// checkStart skips leading white space and makes sure the first real
// character is a ">". biogo would otherwise take sequence data with no
// comment line in front of it. Empty input is fine. It is just zero
// sequences, so we return io.EOF and biogo never sees it.
func (r *Reader) checkStart() error {
	for {
		c, err := r.brdr.ReadByte()
		if err != nil {
			return err
		}
		if isWhite(c) {
			continue
		}
		if c != CmmtChar {
			return fmt.Errorf("%w: input starts with %q, not %q", ErrNotFasta, c, CmmtChar)
		}
		return r.brdr.UnreadByte()
	}
}

// firstWord returns the first white space delimited word.
func firstWord(s string) string {
	if f := strings.Fields(s); len(f) > 0 {
		return f[0]
	}
	return ""
}

// recordID is the first word after the ">". biogo splits the comment at
// the first space or tab, so for "> a desc" the name is empty and the
// word we want starts the description.
func recordID(name, desc string) string {
	if name != "" {
		return name
	}
	return firstWord(desc)
}

// Read returns the next record, or io.EOF when there are no more.
func (r *Reader) Read() (Record, error) {
	if r.err != nil {
		return Record{}, r.err
	}
	if r.sc == nil {
		if err := r.checkStart(); err != nil {
			r.err = err
			return Record{}, err
		}
		t := linear.NewSeq("", nil, alphabet.Protein)
		r.sc = seqio.NewScanner(fasta.NewReader(r.brdr, t))
	}
	if !r.sc.Next() {
		if err := r.sc.Error(); err != nil {
			r.err = fmt.Errorf("reading sequence %d: %w", r.n+1, err)
		} else {
			r.err = io.EOF
		}
		return Record{}, r.err
	}
	s := r.sc.Seq()
	r.n++
	return Record{ID: recordID(s.Name(), s.Description()), Len: s.Len()}, nil
}

// NRead returns the number of records handed out so far.
func (r *Reader) NRead() int { return r.n }
