package boundary

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shiftsolver/core/internal/shifterr"
)

// DateMode selects how ambiguous numeric dates in tabular input are read,
// per spec.md §6.2.
type DateMode string

const (
	// DateAuto accepts YYYY-MM-DD, MM/DD/YYYY and DD/MM/YYYY, defaulting
	// ambiguous literals to US month-first order.
	DateAuto DateMode = "auto"
	// DateUS forces MM/DD/YYYY for slash-separated literals.
	DateUS DateMode = "us"
	// DateEU forces DD/MM/YYYY for slash-separated literals.
	DateEU DateMode = "eu"
)

// DateWarning is emitted once per distinct ambiguous literal encountered in
// auto mode.
type DateWarning struct {
	Literal string
	Message string
}

// DateParser tracks which ambiguous literals have already produced a
// warning, deduplicating per distinct literal across an entire load, per
// the original loader's supplement to spec.md §6.2.
type DateParser struct {
	Mode   DateMode
	warned map[string]struct{}
}

// NewDateParser constructs a parser for the given mode.
func NewDateParser(mode DateMode) *DateParser {
	if mode == "" {
		mode = DateAuto
	}
	return &DateParser{Mode: mode, warned: map[string]struct{}{}}
}

// Parse parses one date literal, returning any new (deduplicated) ambiguity
// warning alongside the value.
func (p *DateParser) Parse(literal string) (time.Time, *DateWarning, error) {
	literal = strings.TrimSpace(literal)
	if t, err := time.Parse(dateLayout, literal); err == nil {
		return t, nil, nil
	}

	parts := strings.Split(literal, "/")
	if len(parts) != 3 {
		return time.Time{}, nil, shifterr.Boundary("", -1, "unparseable date literal %q", literal)
	}
	a, errA := strconv.Atoi(parts[0])
	b, errB := strconv.Atoi(parts[1])
	year, errY := strconv.Atoi(parts[2])
	if errA != nil || errB != nil || errY != nil {
		return time.Time{}, nil, shifterr.Boundary("", -1, "unparseable date literal %q", literal)
	}

	month, day := a, b
	var warning *DateWarning
	switch p.Mode {
	case DateEU:
		month, day = b, a
	case DateUS:
		month, day = a, b
	default: // DateAuto
		ambiguous := a <= 12 && b <= 12 && a != b
		if ambiguous {
			if _, seen := p.warned[literal]; !seen {
				p.warned[literal] = struct{}{}
				warning = &DateWarning{
					Literal: literal,
					Message: "ambiguous date defaulted to US (month/day/year) interpretation",
				}
			}
		}
		if a > 12 && b <= 12 {
			month, day = b, a
		} else {
			month, day = a, b
		}
	}

	t, err := time.Parse(dateLayout, formatISO(year, month, day))
	if err != nil {
		return time.Time{}, nil, shifterr.Boundary("", -1, "invalid date literal %q", literal)
	}
	return t, warning, nil
}

func formatISO(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
