package pattern

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/pathpair/pkg/errors"
)

// segmentKind discriminates the parsed segment variants.
type segmentKind int

const (
	segLiteral segmentKind = iota
	segStar                // `*`: any run of characters
	segAnyChar             // `?`: exactly one character
	segRange               // `{a..=b:w}`: zero-padded integer interval
)

// segment is one parsed element of an expression.
type segment struct {
	kind    segmentKind
	literal string // segLiteral
	lo, hi  uint64 // segRange
	width   int    // segRange
}

// Expression is a parsed match expression. It is immutable once
// produced by Parse and safe for concurrent use.
type Expression struct {
	raw      string
	segments []segment
}

// rangeOp separates the two bounds of a range segment.
const rangeOp = "..="

// Parse parses a match expression. Parsing is total: it either returns
// a usable matcher or a PATTERN_SYNTAX error describing the defect.
func Parse(raw string) (*Expression, error) {
	if raw == "" {
		return nil, errors.New(errors.ErrPatternSyntax, "empty pattern")
	}
	if strings.ContainsRune(raw, '/') {
		return nil, errors.Newf(errors.ErrPatternSyntax,
			"pattern %q must not contain a path separator", raw)
	}

	var segs []segment
	var lit strings.Builder

	flushLiteral := func() {
		if lit.Len() > 0 {
			segs = append(segs, segment{kind: segLiteral, literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(raw); {
		switch raw[i] {
		case '*':
			flushLiteral()
			// collapse runs of `*`, they match the same inputs
			for i < len(raw) && raw[i] == '*' {
				i++
			}
			segs = append(segs, segment{kind: segStar})
		case '?':
			flushLiteral()
			segs = append(segs, segment{kind: segAnyChar})
			i++
		case '{':
			end := strings.IndexByte(raw[i:], '}')
			if end < 0 {
				return nil, errors.Newf(errors.ErrPatternSyntax,
					"unclosed brace in pattern %q", raw)
			}
			seg, err := parseRange(raw[i+1 : i+end])
			if err != nil {
				return nil, err
			}
			flushLiteral()
			segs = append(segs, seg)
			i += end + 1
		case '}':
			return nil, errors.Newf(errors.ErrPatternSyntax,
				"unmatched '}' in pattern %q", raw)
		default:
			lit.WriteByte(raw[i])
			i++
		}
	}
	flushLiteral()

	return &Expression{raw: raw, segments: segs}, nil
}

// parseRange parses the interior of a `{a..=b:w}` segment (braces
// already stripped).
func parseRange(body string) (segment, error) {
	colon := strings.LastIndexByte(body, ':')
	if colon < 0 {
		return segment{}, errors.Newf(errors.ErrPatternSyntax,
			"range %q is missing its ':width' part", "{"+body+"}")
	}

	bounds, widthSpec := body[:colon], body[colon+1:]
	op := strings.Index(bounds, rangeOp)
	if op < 0 {
		return segment{}, errors.Newf(errors.ErrPatternSyntax,
			"range %q is missing the '..=' operator", "{"+body+"}")
	}

	lo, err := strconv.ParseUint(bounds[:op], 10, 64)
	if err != nil {
		return segment{}, errors.Newf(errors.ErrPatternSyntax,
			"range start %q is not a non-negative integer", bounds[:op])
	}
	hi, err := strconv.ParseUint(bounds[op+len(rangeOp):], 10, 64)
	if err != nil {
		return segment{}, errors.Newf(errors.ErrPatternSyntax,
			"range end %q is not a non-negative integer", bounds[op+len(rangeOp):])
	}
	if lo > hi {
		return segment{}, errors.Newf(errors.ErrPatternSyntax,
			"range start %d exceeds range end %d", lo, hi)
	}

	// width is decimal digits, optionally suffixed with 'd' as in
	// printf-style `04d`
	widthSpec = strings.TrimSuffix(widthSpec, "d")
	if widthSpec == "" {
		return segment{}, errors.New(errors.ErrPatternSyntax, "empty range width")
	}
	width, err := strconv.Atoi(widthSpec)
	if err != nil || width <= 0 {
		return segment{}, errors.Newf(errors.ErrPatternSyntax,
			"range width %q is not a positive integer", widthSpec)
	}
	if digits := len(strconv.FormatUint(hi, 10)); digits > width {
		return segment{}, errors.Newf(errors.ErrPatternSyntax,
			"width %d cannot represent range end %d", width, hi)
	}

	return segment{kind: segRange, lo: lo, hi: hi, width: width}, nil
}

// String returns the raw pattern text the expression was parsed from.
func (e *Expression) String() string {
	return e.raw
}

// Match reports whether name matches the expression. The whole name
// must match, not just a prefix.
func (e *Expression) Match(name string) bool {
	return matchSegments(e.segments, name)
}

func matchSegments(segs []segment, name string) bool {
	if len(segs) == 0 {
		return name == ""
	}

	seg, rest := segs[0], segs[1:]
	switch seg.kind {
	case segLiteral:
		if !strings.HasPrefix(name, seg.literal) {
			return false
		}
		return matchSegments(rest, name[len(seg.literal):])

	case segAnyChar:
		if name == "" {
			return false
		}
		return matchSegments(rest, name[1:])

	case segStar:
		// try every split point, shortest first
		for i := 0; i <= len(name); i++ {
			if matchSegments(rest, name[i:]) {
				return true
			}
		}
		return false

	case segRange:
		if len(name) < seg.width {
			return false
		}
		digits := name[:seg.width]
		for i := 0; i < len(digits); i++ {
			if digits[i] < '0' || digits[i] > '9' {
				return false
			}
		}
		val, err := strconv.ParseUint(digits, 10, 64)
		if err != nil {
			return false
		}
		if val < seg.lo || val > seg.hi {
			return false
		}
		return matchSegments(rest, name[seg.width:])

	default:
		return false
	}
}
