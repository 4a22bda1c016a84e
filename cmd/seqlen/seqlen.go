// 25 may 2025
// 18 Oct 2026 one argument, the fasta file.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	. "github.com/andrew-torda/seqlen/pkg/seq/common"
	"github.com/andrew-torda/seqlen/pkg/seqlen"
)

func usage(w io.Writer, name string) {
	fmt.Fprintln(w, "Usage: "+name+" <FASTA>")
}

// newLogger goes to stderr. Debug level only if verbose.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: "seqlen"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// mymain returns the exit code, so main has nothing to do but exit.
func mymain(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(stderr)
	verbose := flags.Bool("v", false, "verbose, debugging output on stderr")
	flags.Usage = func() {
		usage(flags.Output(), args[0])
		flags.PrintDefaults()
	}
	if err := flags.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return ExitSuccess
		}
		return ExitUsageError
	}
	if flags.NArg() < 1 {
		usage(stdout, args[0])
		return ExitSuccess
	}
	cmdArgs := seqlen.CmdArgs{
		InSeqFname: flags.Arg(0),
		Logger:     newLogger(stderr, *verbose),
	}
	if err := seqlen.Mymain(&cmdArgs, stdout); err != nil {
		cmdArgs.Logger.Error(err)
		return ExitFailure
	}
	return ExitSuccess
}

func main() {
	os.Exit(mymain(os.Args, os.Stdout, os.Stderr))
}
