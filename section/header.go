package section

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/geomtools/geomgrid/errs"
)

// Header holds the metadata section of a geometry description.
type Header struct {
	// Grid is the number of cells per axis (a, b, c).
	Grid [3]int
	// Size is the physical extent per axis (x, y, z).
	Size [3]float64
	// Origin is the physical coordinate of the grid's lower corner.
	Origin [3]float64
	// Homogenization is an opaque scheme id, meaningful to the solver only.
	Homogenization int
	// Comments are the non-keyword header lines, verbatim and in file order.
	Comments []string
}

// ParseHeader decodes the header from the lines of a geometry file. It
// returns the header and the index of the first body line.
//
// The homogenization line may be absent; it defaults to 1.
func ParseHeader(lines []string) (*Header, int, error) {
	if len(lines) == 0 {
		return nil, 0, errs.ErrHeaderMarker
	}

	count, err := parseMarker(lines[0])
	if err != nil {
		return nil, 0, err
	}
	if len(lines)-1 < count {
		return nil, 0, fmt.Errorf("%w: declared %d header lines, found %d", errs.ErrFormat, count, len(lines)-1)
	}

	header := &Header{Homogenization: 1}
	var gridSeen, sizeSeen, originSeen bool

	for _, line := range lines[1 : 1+count] {
		items := strings.Fields(strings.ToLower(line))
		key := ""
		if len(items) > 0 {
			key = items[0]
		}

		switch key {
		case "grid":
			if header.Grid, err = axisInts(items, [3]string{"a", "b", "c"}); err != nil {
				return nil, 0, err
			}
			gridSeen = true
		case "size":
			if header.Size, err = axisFloats(items, [3]string{"x", "y", "z"}); err != nil {
				return nil, 0, err
			}
			sizeSeen = true
		case "origin":
			if header.Origin, err = axisFloats(items, [3]string{"x", "y", "z"}); err != nil {
				return nil, 0, err
			}
			originSeen = true
		case "homogenization":
			if len(items) < 2 {
				return nil, 0, fmt.Errorf("%w: homogenization value missing", errs.ErrFormat)
			}
			if header.Homogenization, err = strconv.Atoi(items[1]); err != nil {
				return nil, 0, fmt.Errorf("%w %q in homogenization line", errs.ErrBadToken, items[1])
			}
		default:
			header.Comments = append(header.Comments, strings.TrimSpace(line))
		}
	}

	if !gridSeen || !sizeSeen || !originSeen {
		return nil, 0, errs.ErrMissingGeometry
	}

	return header, 1 + count, nil
}

// LineCount returns the header line count declared on encode,
// one line per comment plus the four keyword lines.
func (h *Header) LineCount() int {
	return len(h.Comments) + 4
}

// Encode serializes the header in canonical order: marker, comments, grid,
// size, origin, homogenization. Decode accepts keyword lines in any order;
// encode always emits this one.
func (h *Header) Encode() []string {
	lines := make([]string, 0, h.LineCount()+1)
	lines = append(lines, fmt.Sprintf("%d header", h.LineCount()))
	lines = append(lines, h.Comments...)
	lines = append(lines,
		fmt.Sprintf("grid   a %d b %d c %d", h.Grid[0], h.Grid[1], h.Grid[2]),
		fmt.Sprintf("size   x %s y %s z %s", fmtFloat(h.Size[0]), fmtFloat(h.Size[1]), fmtFloat(h.Size[2])),
		fmt.Sprintf("origin x %s y %s z %s", fmtFloat(h.Origin[0]), fmtFloat(h.Origin[1]), fmtFloat(h.Origin[2])),
		fmt.Sprintf("homogenization %d", h.Homogenization),
	)

	return lines
}

// parseMarker validates the "<count> head..." marker line and returns the
// declared header line count.
func parseMarker(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, errs.ErrHeaderMarker
	}

	count, err := strconv.Atoi(fields[0])
	if err != nil || count < 3 || !strings.HasPrefix(strings.ToLower(fields[1]), "head") {
		return 0, errs.ErrHeaderMarker
	}

	return count, nil
}

// axisPairs maps the alternating "<letter> <value>" tokens following a
// keyword to their values. Axis order in the file is free.
func axisPairs(items []string) map[string]string {
	pairs := make(map[string]string, (len(items)-1)/2)
	for i := 1; i+1 < len(items); i += 2 {
		pairs[items[i]] = items[i+1]
	}

	return pairs
}

func axisInts(items []string, axes [3]string) ([3]int, error) {
	var out [3]int
	pairs := axisPairs(items)
	for i, ax := range axes {
		tok, ok := pairs[ax]
		if !ok {
			return out, fmt.Errorf("%w: axis %q missing in %s line", errs.ErrFormat, ax, items[0])
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return out, fmt.Errorf("%w %q for axis %q in %s line", errs.ErrBadToken, tok, ax, items[0])
		}
		out[i] = v
	}

	return out, nil
}

func axisFloats(items []string, axes [3]string) ([3]float64, error) {
	var out [3]float64
	pairs := axisPairs(items)
	for i, ax := range axes {
		tok, ok := pairs[ax]
		if !ok {
			return out, fmt.Errorf("%w: axis %q missing in %s line", errs.ErrFormat, ax, items[0])
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return out, fmt.Errorf("%w %q for axis %q in %s line", errs.ErrBadToken, tok, ax, items[0])
		}
		out[i] = v
	}

	return out, nil
}

// fmtFloat renders a float the way the canonical header lines expect:
// shortest representation that round-trips.
func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
