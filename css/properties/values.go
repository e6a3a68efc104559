package properties

import (
	"fmt"
	"strings"

	"github.com/LadybirdBrowser/ladybird-sub002/css/parser"
	"github.com/LadybirdBrowser/ladybird-sub002/utils"
)

type Fl = utils.Fl

// Value is one parsed style value: the typed result of validating a
// declaration (or one slot of an expanded shorthand). Values are
// immutable once built; the same instance may fill several longhand
// slots after a positional expansion.
type Value interface {
	isValue()
}

// Unit is the dimension unit of a Dimension. Absolute length units
// are converted to pixels at parse time, so only Px, the relative
// length units and Perc survive in parsed values.
type Unit uint8

const (
	// Scalar is a unitless number.
	Scalar Unit = iota + 1
	Perc
	Px
	Em
	Rem
	Ex
	Ch
	Vw
	Vh
	Vmin
	Vmax
)

var unitNames = [...]string{
	Scalar: "",
	Perc:   "%",
	Px:     "px",
	Em:     "em",
	Rem:    "rem",
	Ex:     "ex",
	Ch:     "ch",
	Vw:     "vw",
	Vh:     "vh",
	Vmin:   "vmin",
	Vmax:   "vmax",
}

func (u Unit) String() string {
	if int(u) >= len(unitNames) {
		return "<invalid unit>"
	}
	return unitNames[u]
}

// Dimension is a float with a unit, the building block for lengths,
// percentages and position offsets.
type Dimension struct {
	Unit  Unit
	Value Fl
}

func (d Dimension) String() string {
	return fmt.Sprintf("%g%s", d.Value, d.Unit)
}

// Keyword is a recognized, ASCII-lowercased keyword.
type Keyword string

// CustomIdent is an author-defined identifier, case preserved.
type CustomIdent string

type String string

type Integer int

type Number Fl

// Length is a <length> value. Absolute units are normalized to
// pixels; relative units keep their unit for later resolution.
type Length Dimension

// Percentage is a <percentage> value, stored as written (50% is 50).
type Percentage Fl

// Angle is a <angle> value normalized to degrees.
type Angle Fl

// Time is a <time> value normalized to seconds.
type Time Fl

// Frequency is a <frequency> value normalized to hertz.
type Frequency Fl

// Resolution is a <resolution> value normalized to dots per px.
type Resolution Fl

// Flex is a <flex> value in fr units.
type Flex Fl

// Ratio is a <ratio> value; a degenerate ratio (zero or negative
// component) is rejected at parse time.
type Ratio struct {
	Num, Den Fl
}

type Color parser.Color

// OpenTypeTag is one feature or variation setting: a 4-character tag
// and its value.
type OpenTypeTag struct {
	Tag   string
	Value Fl
}

// Image is a <image> value: none, a url, or a gradient function kept
// in textual form.
type Image struct {
	// exactly one of the three is set
	None     bool
	URL      string
	Gradient string
}

// Point is a pair of position offsets.
type Point struct {
	X, Y Dimension
}

// Position is a <position> value: two origin keywords and offsets
// from them.
type Position struct {
	OriginX, OriginY string // "left" or "right", "top" or "bottom"
	Pos              Point
}

// Calculated is a deferred math expression (calc() and friends),
// kept as serialized text for later resolution.
type Calculated struct {
	Expression string
}

type Separator uint8

const (
	SpaceSep Separator = iota
	CommaSep
)

// List is an ordered sequence of values with a fixed separator.
type List struct {
	Separator Separator
	Values    []Value
}

// RawTokens is an unparsed token sequence, used for values whose
// resolution is deferred (pending substitutions).
type RawTokens []parser.Token

func (Keyword) isValue()     {}
func (CustomIdent) isValue() {}
func (String) isValue()      {}
func (Integer) isValue()     {}
func (Number) isValue()      {}
func (Length) isValue()      {}
func (Percentage) isValue()  {}
func (Angle) isValue()       {}
func (Time) isValue()        {}
func (Frequency) isValue()   {}
func (Resolution) isValue()  {}
func (Flex) isValue()        {}
func (Ratio) isValue()       {}
func (Color) isValue()       {}
func (OpenTypeTag) isValue() {}
func (Image) isValue()       {}
func (Position) isValue()    {}
func (Calculated) isValue()  {}
func (List) isValue()        {}
func (RawTokens) isValue()   {}

// NewList builds a space-separated list.
func NewList(values ...Value) List {
	return List{Separator: SpaceSep, Values: values}
}

// NewCommaList builds a comma-separated list.
func NewCommaList(values ...Value) List {
	return List{Separator: CommaSep, Values: values}
}

func (l List) String() string {
	sep := " "
	if l.Separator == CommaSep {
		sep = ", "
	}
	chunks := make([]string, len(l.Values))
	for i, v := range l.Values {
		chunks[i] = fmt.Sprintf("%v", v)
	}
	return strings.Join(chunks, sep)
}

func (l Length) String() string     { return Dimension(l).String() }
func (p Percentage) String() string { return fmt.Sprintf("%g%%", Fl(p)) }
func (a Angle) String() string      { return fmt.Sprintf("%gdeg", Fl(a)) }
func (t Time) String() string       { return fmt.Sprintf("%gs", Fl(t)) }
func (f Frequency) String() string  { return fmt.Sprintf("%ghz", Fl(f)) }
func (r Resolution) String() string { return fmt.Sprintf("%gdppx", Fl(r)) }
func (f Flex) String() string       { return fmt.Sprintf("%gfr", Fl(f)) }

func (r Ratio) String() string { return fmt.Sprintf("%g / %g", r.Num, r.Den) }

func (t OpenTypeTag) String() string { return fmt.Sprintf("%q %g", t.Tag, t.Value) }

func (i Image) String() string {
	switch {
	case i.None:
		return "none"
	case i.URL != "":
		return fmt.Sprintf("url(%q)", i.URL)
	}
	return i.Gradient
}

func (p Position) String() string {
	return fmt.Sprintf("%s %s %s %s", p.OriginX, p.Pos.X, p.OriginY, p.Pos.Y)
}

func (c Calculated) String() string { return c.Expression }

// PxLength builds a pixel length.
func PxLength(value Fl) Length { return Length{Unit: Px, Value: value} }

// ZeroPercent is the initial flex-basis.
var ZeroPercent = Percentage(0)
