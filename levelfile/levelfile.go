// Package levelfile reads and writes level geometry in the plain text corner
// format: one vertex per line as "x,z,y", two consecutive vertices per wall.
// The file stores the vertical axis last and the depth axis negated, so every
// vertex is remapped on the way in and out.
package levelfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"notdoom/model"
)

var (
	// ErrBadVector is returned for a line that is not three comma separated numbers.
	ErrBadVector = errors.New("bad vector")
	// ErrOddCornerCount is returned when the last wall is missing its second corner.
	ErrOddCornerCount = errors.New("odd number of corners")
)

// Parse reads corner pairs from r. Blank lines are ignored.
func Parse(r io.Reader) ([]model.CornerPair, error) {
	var (
		pairs   []model.CornerPair
		pending *model.Vector3
		lineNo  int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		v, err := parseVector(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		if pending == nil {
			pending = &v
			continue
		}
		pairs = append(pairs, model.CornerPair{*pending, v})
		pending = nil
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if pending != nil {
		return nil, fmt.Errorf("%d walls then a lone corner: %w", len(pairs), ErrOddCornerCount)
	}

	return pairs, nil
}

func parseVector(line string) (model.Vector3, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return model.Vector3{}, fmt.Errorf("%w: want 3 fields, got %d", ErrBadVector, len(fields))
	}

	var f [3]float64
	for i, field := range fields {
		n, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return model.Vector3{}, fmt.Errorf("%w: %q", ErrBadVector, field)
		}
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return model.Vector3{}, fmt.Errorf("%w: non-finite value %q", ErrBadVector, field)
		}
		f[i] = n
	}

	return model.Vector3{X: f[0], Y: f[2], Z: -f[1]}, nil
}

// Write stores pairs in the format Parse reads.
func Write(w io.Writer, pairs []model.CornerPair) error {
	bw := bufio.NewWriter(w)
	for _, pair := range pairs {
		for _, v := range pair {
			_, err := fmt.Fprintf(bw, "%s,%s,%s\n", formatFloat(v.X), formatFloat(-v.Z), formatFloat(v.Y))
			if err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func formatFloat(f float64) string {
	if f == 0 {
		// avoid writing "-0" for negated zero depths
		f = 0
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
