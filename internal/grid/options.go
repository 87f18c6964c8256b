package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// EdgePolicy controls what happens to text that would run past the right
// edge of the buffer.
type EdgePolicy uint8

const (
	// EdgeDefault stops drawing a line at the edge.
	EdgeDefault EdgePolicy = iota
	// EdgeNewline hard-wraps onto the next line at the edge.
	EdgeNewline
	// EdgePreserve wraps onto the next line at the edge without splitting
	// words where possible.
	EdgePreserve
)

// EdgePolicyNames lists the names accepted by ParseEdgePolicy.
var EdgePolicyNames = []string{"default", "newline", "preserve"}

func (e EdgePolicy) String() string {
	if int(e) < len(EdgePolicyNames) {
		return EdgePolicyNames[e]
	}

	return fmt.Sprintf("EdgePolicy(%d)", uint8(e))
}

// ParseEdgePolicy returns the EdgePolicy named s.
func ParseEdgePolicy(s string) (EdgePolicy, error) {
	i, err := parseName("edge policy", EdgePolicyNames, s)
	return EdgePolicy(i), err
}

// Anchor selects which side of the drawn text lines up with the given x.
type Anchor uint8

const (
	// AnchorLeft aligns the left side of every line.
	AnchorLeft Anchor = iota
	// AnchorRight aligns the right side of every line.
	AnchorRight
)

// AnchorNames lists the names accepted by ParseAnchor.
var AnchorNames = []string{"left", "right"}

func (a Anchor) String() string {
	if int(a) < len(AnchorNames) {
		return AnchorNames[a]
	}

	return fmt.Sprintf("Anchor(%d)", uint8(a))
}

// ParseAnchor returns the Anchor named s.
func ParseAnchor(s string) (Anchor, error) {
	i, err := parseName("anchor", AnchorNames, s)
	return Anchor(i), err
}

// Trigger selects when an ellipsis is substituted into text.
type Trigger uint8

const (
	// TriggerAll substitutes on either of the other triggers.
	TriggerAll Trigger = iota
	// TriggerLineTruncation substitutes when lines were dropped because of
	// TextOptions.MaxLines.
	TriggerLineTruncation
	// TriggerScreenEdge substitutes when the text runs past the bottom of the
	// buffer.
	TriggerScreenEdge
)

// TriggerNames lists the names accepted by ParseTrigger.
var TriggerNames = []string{"all", "max-line", "screen-edge"}

func (t Trigger) String() string {
	if int(t) < len(TriggerNames) {
		return TriggerNames[t]
	}

	return fmt.Sprintf("Trigger(%d)", uint8(t))
}

// ParseTrigger returns the Trigger named s.
func ParseTrigger(s string) (Trigger, error) {
	i, err := parseName("trigger", TriggerNames, s)
	return Trigger(i), err
}

func parseName(kind string, names []string, s string) (int, error) {
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: %s %q, expected one of %s",
		ErrInvalidOption, kind, s, strings.Join(names, ", "))
}

// Width is a maximum line width. A zero N means unlimited. When Words is
// set, lines are wrapped between words where possible.
type Width struct {
	N     int
	Words bool
}

const preservePrefix = "preserve-"

func (w Width) String() string {
	if w.Words {
		return preservePrefix + strconv.Itoa(w.N)
	}

	return strconv.Itoa(w.N)
}

// ParseWidth parses either "N" or "preserve-N".
func ParseWidth(s string) (Width, error) {
	var w Width
	if strings.HasPrefix(s, preservePrefix) {
		w.Words = true
		s = strings.TrimPrefix(s, preservePrefix)
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return Width{}, fmt.Errorf(`%w: %q, expected a non-negative integer or "preserve-<width>"`,
			ErrInvalidWidth, s)
	}
	w.N = n

	return w, nil
}

// Direction controls the direction text is written in.
type Direction struct {
	// Reverse writes each line right to left, starting at the anchor.
	Reverse bool
	// PreserveOnReverse reverses the characters of each line before
	// writing it in reverse, so that it still reads left to right.
	PreserveOnReverse bool
	// Anchor selects the side of the text that lines up with x.
	Anchor Anchor
}

// Ellipsis configures the truncation marker substituted into text.
type Ellipsis struct {
	// Symbol is repeated Count times at the end of the last line.
	Symbol rune
	// Count must be positive. If it exceeds the length of the line, the
	// whole line is replaced.
	Count int
	// Trigger selects when the ellipsis is applied.
	Trigger Trigger
}

// TextOptions configures DrawLines. The zero value draws text as-is,
// left-anchored and forwards, without wrapping.
type TextOptions struct {
	// MaxWidth wraps lines longer than MaxWidth.N.
	MaxWidth Width
	// MaxLines drops lines after the first MaxLines. Zero means unlimited.
	MaxLines int
	// Edge controls what happens at the right edge of the buffer.
	Edge EdgePolicy
	// Mask contains characters that are never written; the cell keeps its
	// previous character.
	Mask string
	// Restrict, when non-empty, only allows writing over cells that
	// currently hold one of its characters.
	Restrict string
	Direction
	// Ellipsis, when non-nil, marks truncated text.
	Ellipsis *Ellipsis
	// Indent is the number of spaces prefixed to every non-empty line when
	// anchored left.
	Indent int
	// CalcOnly computes the layout without drawing it.
	CalcOnly bool
}

func (o *TextOptions) validate() error {
	if o.MaxWidth.N < 0 {
		return fmt.Errorf("%w: max width %d", ErrInvalidWidth, o.MaxWidth.N)
	}
	if o.MaxLines < 0 {
		return fmt.Errorf("%w: max lines %d, expected a non-negative integer", ErrInvalidOption, o.MaxLines)
	}
	if o.Edge > EdgePreserve {
		return fmt.Errorf("%w: edge policy %s", ErrInvalidOption, o.Edge)
	}
	if o.Anchor > AnchorRight {
		return fmt.Errorf("%w: anchor %s", ErrInvalidOption, o.Anchor)
	}
	if o.Indent < 0 {
		return fmt.Errorf("%w: indent %d, expected a non-negative integer", ErrInvalidOption, o.Indent)
	}
	if err := checkSet("mask", o.Mask); err != nil {
		return err
	}
	if err := checkSet("restrict", o.Restrict); err != nil {
		return err
	}

	if e := o.Ellipsis; e != nil {
		if err := checkRune(e.Symbol); err != nil {
			return fmt.Errorf("invalid ellipsis symbol: %w", err)
		}
		if e.Count <= 0 {
			return fmt.Errorf("%w: ellipsis count %d, expected a positive integer", ErrInvalidOption, e.Count)
		}
		if e.Trigger > TriggerScreenEdge {
			return fmt.Errorf("%w: ellipsis trigger %s", ErrInvalidOption, e.Trigger)
		}
	}

	return nil
}
