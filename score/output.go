package score

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// WriteJSONL writes one JSON object per result, in order.
func WriteJSONL(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

// WriteTopCSV writes the first n results as CSV with a header row. A
// non-positive n writes every result.
func WriteTopCSV(w io.Writer, results []Result, n int) error {
	if n <= 0 || n > len(results) {
		n = len(results)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"regex", "score", "f1_val", "acc_val", "f1_train", "len", "ops", "states"}); err != nil {
		return err
	}
	for _, r := range results[:n] {
		rec := []string{
			r.Body,
			strconv.FormatFloat(r.Score, 'f', 4, 64),
			strconv.FormatFloat(r.F1Val, 'f', 4, 64),
			strconv.FormatFloat(r.AccVal, 'f', 4, 64),
			strconv.FormatFloat(r.F1Train, 'f', 4, 64),
			strconv.Itoa(r.Length),
			strconv.Itoa(r.Ops),
			strconv.Itoa(r.States),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Best returns the top-ranked result.
func Best(results []Result) (Result, error) {
	if len(results) == 0 {
		return Result{}, fmt.Errorf("no scored candidates")
	}
	return results[0], nil
}
