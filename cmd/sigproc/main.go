// Command sigproc runs the signal processing library from the shell.
//
// Samples are read as whitespace-separated numbers from the arguments or,
// when none are given, from stdin. Arguments after -- are never parsed as
// flags, which negative samples need.
//
// Examples:
//
//	sigproc window hann --size 8
//	sigproc window --analyze --size 1024 hann blackman kaiser
//	echo 1 0 0 0 | sigproc fft
//	sigproc fft --sample-rate 4 -- 1 -1 1 -1
//	sigproc design --response lowpass --order 4 --cutoff 1000
//	sigproc run --pipeline-file chain.yaml < samples.txt
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-sigproc/logging"
)

func main() {
	err := newRootCmd().Execute()
	_ = logging.L().Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
