package seq_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andrew-torda/seqlen/brokenio"
	. "github.com/andrew-torda/seqlen/pkg/seq"
	"github.com/andrew-torda/seqlen/pkg/seq/common"
)

const (
	big       = 64 * 1024
	bigminus1 = big - 1
	bigplus1  = big + 1
)

// readAll collects records until the reader gives up.
func readAll(r *Reader) ([]Record, error) {
	var recs []Record
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return recs, err
		}
		recs = append(recs, rec)
	}
}

var readTests = []struct {
	name string
	in   string
	want []Record
}{
	{"simple", ">a\nACGT\n>b\nAC\n", []Record{{"a", 4}, {"b", 2}}},
	{"no final newline", ">a\nACGT\n>b\nAC", []Record{{"a", 4}, {"b", 2}}},
	{"multi line", ">s1\nAAA\nCC\nG\n>s2\nT\n", []Record{{"s1", 6}, {"s2", 1}}},
	{"comment words", ">xyz.123 comment here [homo sapiens]\nMKV\n", []Record{{"xyz.123", 3}}},
	{"tab in comment", ">xyz.123\tcomment\nMKV\n", []Record{{"xyz.123", 3}}},
	{"space after marker", "> a desc\nACGT\n", []Record{{"a", 4}}},
	{"tab after marker", ">\ta desc\nACGT\n", []Record{{"a", 4}}},
	{"no sequence lines", ">a\n>b\nAC\n", []Record{{"a", 0}, {"b", 2}}},
	{"gaps count", ">aln\n-AC-GT-\n", []Record{{"aln", 7}}},
	{"blank lines", "\n\n>a\nAC\n\n>b\n\nACG\n\n", []Record{{"a", 2}, {"b", 3}}},
	{"empty", "", nil},
	{"only white", "\n  \n\t\n", nil},
}

// TestRead checks ids and lengths come out in file order.
func TestRead(t *testing.T) {
	for _, tt := range readTests {
		got, err := readAll(NewReader(strings.NewReader(tt.in)))
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Fatalf("%s: records differ (-want +got):\n%s", tt.name, diff)
		}
	}
}

// TestLong has sequences much longer than any buffer.
func TestLong(t *testing.T) {
	lens := []int{10, 30, bigminus1, big, bigplus1}
	var sb strings.Builder
	var want []Record
	for i, l := range lens {
		id := "seq" + strings.Repeat("x", i)
		sb.WriteString(">" + id + " some comment\n")
		for done := 0; done < l; done += 60 {
			sb.WriteString(strings.Repeat("A", min(60, l-done)) + "\n")
		}
		want = append(want, Record{id, l})
	}
	got, err := readAll(NewReader(strings.NewReader(sb.String())))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("long seqs differ (-want +got):\n%s", diff)
	}
}

// TestNotFasta must refuse input that does not start with a comment.
func TestNotFasta(t *testing.T) {
	for _, s := range []string{"ACGT\n>a\nAC\n", "  hello\n", "@read1\nACGT\n+\nIIII\n"} {
		_, err := NewReader(strings.NewReader(s)).Read()
		if !errors.Is(err, ErrNotFasta) {
			t.Fatalf("input %q wanted ErrNotFasta, got %v", s, err)
		}
	}
}

// TestSticky checks that a reader keeps returning its first error.
func TestSticky(t *testing.T) {
	r := NewReader(strings.NewReader(">a\nAC\n"))
	if _, err := r.Read(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if _, err := r.Read(); err != io.EOF {
			t.Fatalf("read %d after end wanted EOF got %v", i, err)
		}
	}
	if r.NRead() != 1 {
		t.Fatal("NRead wanted 1 got", r.NRead())
	}
}

// TestBrokenRead has the input fail part way through. We must get the
// error, not a short list of records.
func TestBrokenRead(t *testing.T) {
	s := ">a\n" + strings.Repeat("ACGT", 1000) + "\n>b\nAC\n"
	brkn := brokenio.NewReader(strings.NewReader(s))
	brkn.SetFailAfter(len(s) / 2)
	_, err := readAll(NewReader(brkn))
	if !errors.Is(err, brokenio.ErrInjected) {
		t.Fatal("wanted injected error, got", err)
	}
}

// TestBrokenFirstRead fails before any byte arrives.
func TestBrokenFirstRead(t *testing.T) {
	brkn := brokenio.NewReader(strings.NewReader(">a\nAC\n"))
	brkn.SetFailAfter(0)
	if _, err := NewReader(brkn).Read(); !errors.Is(err, brokenio.ErrInjected) {
		t.Fatal("wanted injected error, got", err)
	}
}

// TestOpen reads through a mapped file and must agree with the
// plain reader.
func TestOpen(t *testing.T) {
	for _, tt := range readTests {
		fname, err := common.WrtTemp(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		defer os.Remove(fname)
		f, err := Open(fname)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if f.Size() != int64(len(tt.in)) {
			t.Fatalf("%s: size %d wanted %d", tt.name, f.Size(), len(tt.in))
		}
		if f.Mapped() != (len(tt.in) > 0) {
			t.Fatalf("%s: mapped is %v for %d bytes", tt.name, f.Mapped(), len(tt.in))
		}
		got, err := readAll(f.Reader)
		if cerr := f.Close(); cerr != nil {
			t.Fatal("close", cerr)
		}
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Fatalf("%s: mapped records differ (-want +got):\n%s", tt.name, diff)
		}
		if err := f.Close(); err != nil {
			t.Fatal("second close should be harmless, got", err)
		}
	}
}

func TestOpenMissing(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "not_there.fa")
	if _, err := Open(fname); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("wanted ErrNotExist, got", err)
	}
}

func TestOpenDir(t *testing.T) {
	if _, err := Open(t.TempDir()); err == nil {
		t.Fatal("opening a directory should fail")
	}
}
