package format

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DefaultBillNumberTemplate = "BILL-{YYYY}{MM}{DD}-{SEQ6}"

var (
	ErrEmptyTemplate   = errors.New("bill_number_template_empty")
	ErrUnknownToken    = errors.New("bill_number_token_unknown")
	ErrUnbalancedBrace = errors.New("bill_number_brace_unbalanced")
	ErrInvalidSequence = errors.New("bill_number_sequence_invalid")
)

type segmentKind int

const (
	literal segmentKind = iota
	year4
	year2
	month
	day
	sequence
)

type segment struct {
	kind  segmentKind
	text  string
	width int
}

// Template is a parsed bill number layout. Supported tokens are
// {YYYY} {YY} {MM} {DD} {SEQ} and {SEQn}, where n pads the bill id with zeros.
type Template struct {
	source   string
	segments []segment
}

// Parse validates a bill number layout once so rendering cannot fail on it later.
func Parse(source string) (*Template, error) {
	if strings.TrimSpace(source) == "" {
		return nil, ErrEmptyTemplate
	}

	tpl := &Template{source: source}
	rest := source
	for rest != "" {
		open := strings.IndexAny(rest, "{}")
		if open < 0 {
			tpl.addLiteral(rest)
			break
		}
		if rest[open] == '}' {
			return nil, fmt.Errorf("%w: stray '}' in %q", ErrUnbalancedBrace, source)
		}
		tpl.addLiteral(rest[:open])

		end := strings.IndexAny(rest[open+1:], "{}")
		if end < 0 || rest[open+1+end] == '{' {
			return nil, fmt.Errorf("%w: unterminated token in %q", ErrUnbalancedBrace, source)
		}
		token := rest[open+1 : open+1+end]
		seg, err := parseToken(token)
		if err != nil {
			return nil, fmt.Errorf("%w: {%s} in %q", err, token, source)
		}
		tpl.segments = append(tpl.segments, seg)
		rest = rest[open+end+2:]
	}
	return tpl, nil
}

// MustParse is Parse for layouts known at compile time.
func MustParse(source string) *Template {
	tpl, err := Parse(source)
	if err != nil {
		panic(err)
	}
	return tpl
}

func parseToken(token string) (segment, error) {
	switch token {
	case "YYYY":
		return segment{kind: year4}, nil
	case "YY":
		return segment{kind: year2}, nil
	case "MM":
		return segment{kind: month}, nil
	case "DD":
		return segment{kind: day}, nil
	case "SEQ":
		return segment{kind: sequence}, nil
	}
	if digits, ok := strings.CutPrefix(token, "SEQ"); ok {
		width, err := strconv.Atoi(digits)
		if err == nil && width > 0 && width <= 20 {
			return segment{kind: sequence, width: width}, nil
		}
	}
	return segment{}, ErrUnknownToken
}

func (t *Template) addLiteral(text string) {
	if text == "" {
		return
	}
	t.segments = append(t.segments, segment{kind: literal, text: text})
}

func (t *Template) String() string {
	return t.source
}

// Format renders the number for a bill generated at generatedAt with the given id.
func (t *Template) Format(generatedAt time.Time, seq int64) (string, error) {
	if seq <= 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidSequence, seq)
	}

	var b strings.Builder
	for _, seg := range t.segments {
		switch seg.kind {
		case literal:
			b.WriteString(seg.text)
		case year4:
			b.WriteString(generatedAt.Format("2006"))
		case year2:
			b.WriteString(generatedAt.Format("06"))
		case month:
			b.WriteString(generatedAt.Format("01"))
		case day:
			b.WriteString(generatedAt.Format("02"))
		case sequence:
			fmt.Fprintf(&b, "%0*d", seg.width, seq)
		}
	}
	return b.String(), nil
}
