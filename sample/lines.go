package sample

import (
	"bufio"
	"io"
)

// ReadLines reads one sample per line. Blank lines are kept: the empty
// string is a legitimate sample.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// WriteLines writes one sample per line.
func WriteLines(w io.Writer, samples []string) error {
	bw := bufio.NewWriter(w)
	for _, s := range samples {
		if _, err := bw.WriteString(s + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
