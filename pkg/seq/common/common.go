// 29 Apr 2020
// 18 Oct 2026 trimmed to what seqlen needs

package common

import (
	"fmt"
	"io"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

const CmmtChar byte = '>' // introduces a header line in fasta format

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
// The caller should remove the file.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}
	defer f_tmp.Close()

	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v: %w", f_tmp.Name(), err)
	}
	return f_tmp.Name(), nil
}
