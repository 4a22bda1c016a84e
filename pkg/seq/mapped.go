// 18 Oct 2026
// Reading a fasta file through a read only memory map.

package seq

import (
	"bytes"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// File is a Reader sitting on a memory mapped file.
// Always Close it, also after errors from Read. Do not Read after Close,
// the memory is gone.
type File struct {
	*Reader
	fp   *os.File
	mm   mmap.MMap
	size int64
}

// Open opens fname and maps it read only.
// A zero length file cannot be mapped, so it is read as empty input.
func Open(fname string) (*File, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	fi, err := fp.Stat()
	if err != nil {
		fp.Close()
		return nil, err
	}
	if fi.IsDir() {
		fp.Close()
		return nil, fmt.Errorf("%s is a directory, not a fasta file", fname)
	}
	f := &File{fp: fp, size: fi.Size()}
	if f.size == 0 {
		f.Reader = NewReader(bytes.NewReader(nil))
		return f, nil
	}
	if f.mm, err = mmap.Map(fp, mmap.RDONLY, 0); err != nil {
		fp.Close()
		return nil, fmt.Errorf("mapping %s: %w", fname, err)
	}
	f.Reader = NewReader(bytes.NewReader(f.mm))
	return f, nil
}

// Size is the file size in bytes when it was opened.
func (f *File) Size() int64 { return f.size }

// Mapped is false for empty files.
func (f *File) Mapped() bool { return f.mm != nil }

// Close unmaps and closes the file. It is safe to call more than once.
func (f *File) Close() error {
	var err error
	if f.mm != nil {
		err = f.mm.Unmap()
		f.mm = nil
	}
	if f.fp != nil {
		if cerr := f.fp.Close(); err == nil {
			err = cerr
		}
		f.fp = nil
	}
	return err
}
