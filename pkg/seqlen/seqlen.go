// 15 May 2025
// 18 Oct 2026 Now it does what it says.
// For each sequence in a fasta file, print the identifier and the length.
// At the end print the number of sequences, the total length and the
// longest and shortest.

package seqlen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/andrew-torda/seqlen/pkg/seq"
)

// ErrNoSeqs means there is no longest or shortest sequence.
var ErrNoSeqs = errors.New("no sequences found")

// CmdArgs is what main collects from the command line.
// Logger may be nil, in which case nothing is logged.
type CmdArgs struct {
	InSeqFname string
	Logger     *log.Logger
}

// Stats accumulates sequence lengths. Max and Min are only set by
// Finish.
type Stats struct {
	N     int
	Total int
	Max   int
	Min   int
	lens  []int
}

// Add counts one more sequence of length n.
func (st *Stats) Add(n int) {
	st.N++
	st.Total += n
	st.lens = append(st.lens, n)
}

// Finish sorts the lengths and sets Max and Min. With no sequences
// there is nothing to take them from, so we return ErrNoSeqs.
func (st *Stats) Finish() error {
	if len(st.lens) == 0 {
		return ErrNoSeqs
	}
	slices.Sort(st.lens)
	st.Min = st.lens[0]
	st.Max = st.lens[len(st.lens)-1]
	return nil
}

// RecReader is anything that hands out records until io.EOF.
// *seq.Reader and *seq.File are the ones we use.
type RecReader interface {
	Read() (seq.Record, error)
}

// Report writes "id length" for each record as it is read, then the
// summary. On any error it stops and returns what it has so far.
func Report(w io.Writer, rdr RecReader) (Stats, error) {
	var st Stats
	for {
		rec, err := rdr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return st, err
		}
		if _, err := fmt.Fprintln(w, rec.ID, rec.Len); err != nil {
			return st, err
		}
		st.Add(rec.Len)
	}
	if err := st.Finish(); err != nil {
		return st, err
	}
	_, err := fmt.Fprintf(w, "Number of sequences: %d\nTotal length: %d\nMax length: %d\nMin length: %d\n",
		st.N, st.Total, st.Max, st.Min)
	return st, err
}

// Mymain opens the file named in cmdArgs and writes the report to w.
// Output is buffered, but whatever was written before an error is
// flushed.
func Mymain(cmdArgs *CmdArgs, w io.Writer) (err error) {
	logger := cmdArgs.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	fname := cmdArgs.InSeqFname
	f, err := seq.Open(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	logger.Debug("opened", "file", fname, "bytes", f.Size(), "mapped", f.Mapped())

	bw := bufio.NewWriter(w)
	st, err := Report(bw, f)
	if ferr := bw.Flush(); ferr != nil && err == nil {
		err = ferr
	}
	logger.Debug("finished reading", "sequences", st.N, "total", st.Total)
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	return nil
}
