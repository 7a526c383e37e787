package record

import (
	"bufio"
	"io"
	"strings"

	"github.com/Iron-Ham/fretsmart/internal/errors"
)

// Lines calls fn for every line of r with its 1-based line number. A
// trailing carriage return is stripped. Iteration stops at the first error
// returned by fn or by the reader.
func Lines(r io.Reader, fn func(n int, line string) error) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		if err := fn(n, strings.TrimSuffix(sc.Text(), "\r")); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "failed to read data")
	}
	return nil
}

// Scan parses every line of r and passes the records to fn in order. The
// first line that fails to parse aborts the scan: its FormatError, annotated
// with the line number, is returned and no later record is delivered.
func Scan(r io.Reader, fn func(n int, rec Record) error) error {
	return Lines(r, func(n int, line string) error {
		rec, err := Parse(line)
		if err != nil {
			var formatErr *errors.FormatError
			if errors.As(err, &formatErr) {
				formatErr.WithLine(n)
			}
			return err
		}
		return fn(n, rec)
	})
}
