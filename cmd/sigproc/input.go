package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-sigproc/dsp/core"
)

// readSamples parses whitespace-separated numbers from args, or from r
// when args is empty.
func readSamples(r io.Reader, args []string) ([]float64, error) {
	if len(args) > 0 {
		r = strings.NewReader(strings.Join(args, " "))
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var out []float64
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", len(out), err)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read samples: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no samples: %w", core.ErrInvalidLength)
	}
	return out, nil
}
