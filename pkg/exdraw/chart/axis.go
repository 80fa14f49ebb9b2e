package chart

import (
	"strconv"

	"github.com/ukaji3/exdraw-go/pkg/exdraw/errs"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/ooxml"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/xmltree"
)

// Log base bounds, inclusive.
const (
	MinLogBase = 2.0
	MaxLogBase = 1000.0
)

// Axis is typed access to the configuration of one chart axis. It composes
// over a Structure and keeps no state of its own.
type Axis struct {
	s Structure
}

// NewAxis wraps s.
func NewAxis(s Structure) *Axis {
	return &Axis{s: s}
}

// Structure returns the underlying element accessors.
func (a *Axis) Structure() Structure { return a.s }

// Kind returns the concrete axis kind.
func (a *Axis) Kind() Kind { return a.s.Kind() }

func (a *Axis) tree() *xmltree.Tree { return a.s.Tree() }

// ID returns the axis identifier.
func (a *Axis) ID() uint32 {
	v, _ := val(a.tree(), a.s.AxisID())
	id, _ := strconv.ParseUint(v, 10, 32)
	return uint32(id)
}

// Position returns the side the axis is drawn on.
func (a *Axis) Position() Position {
	v, _ := val(a.tree(), a.s.AxisPosition())
	return decode(positionCodes, v)
}

// SetPosition moves the axis to side p.
func (a *Axis) SetPosition(p Position) {
	a.tree().SetAttr(a.s.AxisPosition(), "val", positionCodes[p])
}

// HasNumberFormat reports whether a number format is stored. Check it before
// NumberFormat, which creates a default format when none exists.
func (a *Axis) HasNumberFormat() bool { return a.s.HasNumberFormat() }

// SetNumberFormat stores format code and marks it linked to the source data.
func (a *Axis) SetNumberFormat(format string) {
	n := a.s.NumberFormat()
	a.tree().SetAttr(n, "formatCode", format)
	a.tree().SetAttr(n, "sourceLinked", "1")
}

// NumberFormat returns the format code.
func (a *Axis) NumberFormat() string {
	v, _ := a.tree().Attr(a.s.NumberFormat(), "formatCode")
	return v
}

// NumberFormatKind classifies the stored format code. An axis without a
// number format is FormatGeneral.
func (a *Axis) NumberFormatKind() NumberFormatKind {
	if !a.s.HasNumberFormat() {
		return FormatGeneral
	}
	return ClassifyNumberFormat(a.NumberFormat())
}

func (a *Axis) scalingChild(local string) xmltree.NodeID {
	sc := a.s.Scaling()
	if sc == xmltree.None {
		return xmltree.None
	}
	return a.tree().Child(sc, ooxml.C(local))
}

// setScaling creates or updates the scaling child local.
func (a *Axis) setScaling(local, value string) {
	sc := a.s.Scaling()
	if sc == xmltree.None {
		sc = a.tree().EnsureChild(a.s.Node(), ooxml.C("scaling"), kindSpecs[a.s.Kind()].order)
	}
	n := a.tree().EnsureChild(sc, ooxml.C(local), scalingOrder)
	a.tree().SetAttr(n, "val", value)
}

func (a *Axis) scalingFloat(local string) float64 {
	v, ok := val(a.tree(), a.scalingChild(local))
	if !ok {
		return 0.0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0.0
	}
	return f
}

// IsSetLogBase reports whether a log base is stored.
func (a *Axis) IsSetLogBase() bool { return a.scalingChild("logBase") != xmltree.None }

// SetLogBase switches the axis to a logarithmic scale with base v. Bases
// outside [MinLogBase, MaxLogBase] are rejected and leave the axis untouched.
func (a *Axis) SetLogBase(v float64) error {
	if !(v >= MinLogBase && v <= MaxLogBase) {
		return errs.Invalid("axis log base must be between 2 and 1000 (inclusive), got: %v", v)
	}
	a.setScaling("logBase", formatFloat(v))
	return nil
}

// LogBase returns the log base, or 0.0 when none is stored.
func (a *Axis) LogBase() float64 { return a.scalingFloat("logBase") }

// IsSetMinimum reports whether an explicit minimum is stored.
func (a *Axis) IsSetMinimum() bool { return a.scalingChild("min") != xmltree.None }

// SetMinimum stores the axis minimum.
func (a *Axis) SetMinimum(v float64) { a.setScaling("min", formatFloat(v)) }

// Minimum returns the axis minimum, or 0.0 when none is stored.
func (a *Axis) Minimum() float64 { return a.scalingFloat("min") }

// IsSetMaximum reports whether an explicit maximum is stored.
func (a *Axis) IsSetMaximum() bool { return a.scalingChild("max") != xmltree.None }

// SetMaximum stores the axis maximum.
func (a *Axis) SetMaximum(v float64) { a.setScaling("max", formatFloat(v)) }

// Maximum returns the axis maximum, or 0.0 when none is stored.
func (a *Axis) Maximum() float64 { return a.scalingFloat("max") }

// Orientation returns the value direction, minMax when none is stored.
func (a *Axis) Orientation() Orientation {
	v, _ := val(a.tree(), a.scalingChild("orientation"))
	return decode(orientationCodes, v)
}

// SetOrientation stores the value direction.
func (a *Axis) SetOrientation(o Orientation) {
	a.setScaling("orientation", orientationCodes[o])
}

// Crosses returns where the axis crosses its perpendicular axis. An axis
// crossing at an explicit value reports CrossesAutoZero; see IsSetCrossesAt.
func (a *Axis) Crosses() Crosses {
	v, _ := val(a.tree(), a.s.Crosses())
	return decode(crossesCodes, v)
}

// SetCrosses changes where the axis crosses its perpendicular axis,
// replacing any explicit crossing value.
func (a *Axis) SetCrosses(c Crosses) {
	a.setCrossing("crosses", "crossesAt", crossesCodes[c])
}

// IsSetCrossesAt reports whether the axis crosses at an explicit value.
func (a *Axis) IsSetCrossesAt() bool { return a.s.CrossesAt() != xmltree.None }

// CrossesAt returns the explicit crossing value, or 0.0 when none is stored.
func (a *Axis) CrossesAt() float64 {
	v, ok := val(a.tree(), a.s.CrossesAt())
	if !ok {
		return 0.0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0.0
	}
	return f
}

// SetCrossesAt makes the axis cross at value v, replacing any named
// crossing point.
func (a *Axis) SetCrossesAt(v float64) {
	a.setCrossing("crossesAt", "crosses", formatFloat(v))
}

// setCrossing stores value on the crossing element local and drops its
// schema alternative other.
func (a *Axis) setCrossing(local, other, value string) {
	if n := a.tree().Child(a.s.Node(), ooxml.C(other)); n != xmltree.None {
		a.tree().Detach(n)
	}
	n := a.tree().EnsureChild(a.s.Node(), ooxml.C(local), kindSpecs[a.s.Kind()].order)
	a.tree().SetAttr(n, "val", value)
}

// CrossAxis makes a cross other.
func (a *Axis) CrossAxis(other *Axis) {
	a.s.CrossAxis(other.ID())
}

// CrossAxisID returns the identifier of the axis a crosses.
func (a *Axis) CrossAxisID() uint32 {
	v, _ := val(a.tree(), a.tree().Child(a.s.Node(), ooxml.C("crossAx")))
	id, _ := strconv.ParseUint(v, 10, 32)
	return uint32(id)
}

// IsVisible reports whether the axis is shown. An axis is visible exactly
// when it is not deleted.
func (a *Axis) IsVisible() bool {
	return !boolVal(a.tree(), a.s.Delete())
}

// SetVisible shows or hides the axis.
func (a *Axis) SetVisible(visible bool) {
	a.tree().SetAttr(a.s.Delete(), "val", formatBool(!visible))
}

func (a *Axis) tickMark(node xmltree.NodeID) TickMark {
	v, ok := val(a.tree(), node)
	if !ok {
		return TickMarkCross
	}
	return decode(tickMarkCodes, v)
}

// MajorTickMark returns the major tick mark style.
func (a *Axis) MajorTickMark() TickMark { return a.tickMark(a.s.MajorTickMark()) }

// SetMajorTickMark changes the major tick mark style.
func (a *Axis) SetMajorTickMark(t TickMark) {
	a.tree().SetAttr(a.s.MajorTickMark(), "val", tickMarkCodes[t])
}

// MinorTickMark returns the minor tick mark style.
func (a *Axis) MinorTickMark() TickMark { return a.tickMark(a.s.MinorTickMark()) }

// SetMinorTickMark changes the minor tick mark style.
func (a *Axis) SetMinorTickMark(t TickMark) {
	a.tree().SetAttr(a.s.MinorTickMark(), "val", tickMarkCodes[t])
}

// HasMajorGridlines reports whether major gridlines are drawn.
func (a *Axis) HasMajorGridlines() bool { return a.s.Gridlines(true, false) != xmltree.None }

// HasMinorGridlines reports whether minor gridlines are drawn.
func (a *Axis) HasMinorGridlines() bool { return a.s.Gridlines(false, false) != xmltree.None }

// GetOrAddMajorGridProperties returns the style of the major gridlines,
// creating the gridlines and their style block on first use.
func (a *Axis) GetOrAddMajorGridProperties() *ShapeProperties {
	return linesProperties(a.tree(), a.s.Gridlines(true, true))
}

// GetOrAddMinorGridProperties is GetOrAddMajorGridProperties for the minor
// gridlines.
func (a *Axis) GetOrAddMinorGridProperties() *ShapeProperties {
	return linesProperties(a.tree(), a.s.Gridlines(false, true))
}

// GetOrAddShapeProperties returns the style of the axis line itself.
func (a *Axis) GetOrAddShapeProperties() *ShapeProperties {
	return &ShapeProperties{tree: a.tree(), node: a.s.ShapeProperties()}
}

func linesProperties(tree *xmltree.Tree, gridlines xmltree.NodeID) *ShapeProperties {
	sp := tree.EnsureChild(gridlines, ooxml.C("spPr"), nil)
	return &ShapeProperties{tree: tree, node: sp}
}
