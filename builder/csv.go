package builder

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/opentsp/core"
)

// CSVSource reads points from the CSV file at path; see ReaderSource for the
// format.
func CSVSource(path string) Source {
	return func(cfg builderConfig) ([]core.Point, int64, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, 0, wrapf(MethodCSV, err, "open %s", path)
		}
		defer f.Close()

		return ReaderSource(f)(cfg)
	}
}

// ReaderSource reads points from CSV data: a header row naming an "x" and a
// "y" column (case-insensitive, other columns ignored) followed by one point
// per row.
//
// Errors: ErrCSVFormat for a missing column or a bad number, ErrTooFewNodes
// when there are no data rows.
func ReaderSource(r io.Reader) Source {
	return func(builderConfig) ([]core.Point, int64, error) {
		cr := csv.NewReader(r)
		cr.FieldsPerRecord = -1
		cr.TrimLeadingSpace = true

		header, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil, 0, wrapf(MethodCSV, ErrTooFewNodes, "empty input")
		}
		if err != nil {
			return nil, 0, wrapf(MethodCSV, ErrCSVFormat, "header: %v", err)
		}
		xi, yi := -1, -1
		for i, name := range header {
			switch strings.ToLower(strings.TrimSpace(name)) {
			case ColumnX:
				xi = i
			case ColumnY:
				yi = i
			}
		}
		if xi < 0 || yi < 0 {
			return nil, 0, wrapf(MethodCSV, ErrCSVFormat, "header %q lacks %q or %q", header, ColumnX, ColumnY)
		}

		var (
			pts    []core.Point
			rec    []string
			x, y   float64
			line   int
			parsed bool
		)
		for line = 2; ; line++ {
			if rec, err = cr.Read(); errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return nil, 0, wrapf(MethodCSV, ErrCSVFormat, "line %d: %v", line, err)
			}
			if x, y, parsed = parseXY(rec, xi, yi); !parsed {
				return nil, 0, wrapf(MethodCSV, ErrCSVFormat, "line %d: bad coordinates %q", line, rec)
			}
			pts = append(pts, core.NewPoint(x, y))
		}
		if len(pts) == 0 {
			return nil, 0, wrapf(MethodCSV, ErrTooFewNodes, "no data rows")
		}

		return pts, 0, nil
	}
}

// parseXY reads finite coordinates from columns xi and yi.
func parseXY(rec []string, xi, yi int) (x, y float64, ok bool) {
	if xi >= len(rec) || yi >= len(rec) {
		return 0, 0, false
	}
	var err error
	if x, err = strconv.ParseFloat(strings.TrimSpace(rec[xi]), 64); err != nil {
		return 0, 0, false
	}
	if y, err = strconv.ParseFloat(strings.TrimSpace(rec[yi]), 64); err != nil {
		return 0, 0, false
	}
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, 0, false
	}

	return x, y, true
}
