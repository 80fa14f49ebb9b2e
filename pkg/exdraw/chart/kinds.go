package chart

import (
	"strconv"

	"github.com/ukaji3/exdraw-go/pkg/exdraw/errs"
)

// CategoryAxis is a c:catAx axis.
type CategoryAxis struct {
	*Axis
	el *axisElement
}

// LabelOffset returns the label distance from the axis, in percent.
func (c *CategoryAxis) LabelOffset() int {
	v, _ := val(c.el.tree, c.el.child("lblOffset"))
	n, err := strconv.Atoi(v)
	if err != nil {
		return 100
	}
	return n
}

// SetLabelOffset sets the label distance in percent, 0 to 1000.
func (c *CategoryAxis) SetLabelOffset(pct int) error {
	if pct < 0 || pct > 1000 {
		return errs.Invalid("label offset must be between 0 and 1000, got: %d", pct)
	}
	c.el.tree.SetAttr(c.el.ensure("lblOffset"), "val", strconv.Itoa(pct))
	return nil
}

// ValueAxis is a c:valAx axis.
type ValueAxis struct {
	*Axis
	el *axisElement
}

// CrossBetween returns how the axis crosses between categories.
func (v *ValueAxis) CrossBetween() CrossBetween {
	s, _ := val(v.el.tree, v.el.child("crossBetween"))
	return decode(crossBetweenCodes, s)
}

// SetCrossBetween changes how the axis crosses between categories.
func (v *ValueAxis) SetCrossBetween(c CrossBetween) {
	v.el.tree.SetAttr(v.el.ensure("crossBetween"), "val", crossBetweenCodes[c])
}

// MajorUnit returns the distance between major ticks, or 0.0 when automatic.
func (v *ValueAxis) MajorUnit() float64 { return unit(v.el, "majorUnit") }

// SetMajorUnit sets the distance between major ticks.
func (v *ValueAxis) SetMajorUnit(u float64) error { return setUnit(v.el, "majorUnit", u) }

// MinorUnit returns the distance between minor ticks, or 0.0 when automatic.
func (v *ValueAxis) MinorUnit() float64 { return unit(v.el, "minorUnit") }

// SetMinorUnit sets the distance between minor ticks.
func (v *ValueAxis) SetMinorUnit(u float64) error { return setUnit(v.el, "minorUnit", u) }

// DateAxis is a c:dateAx axis.
type DateAxis struct {
	*Axis
	el *axisElement
}

// BaseTimeUnit returns the base unit of the axis.
func (d *DateAxis) BaseTimeUnit() TimeUnit {
	s, _ := val(d.el.tree, d.el.child("baseTimeUnit"))
	return decode(timeUnitCodes, s)
}

// SetBaseTimeUnit changes the base unit of the axis.
func (d *DateAxis) SetBaseTimeUnit(u TimeUnit) {
	d.el.tree.SetAttr(d.el.ensure("baseTimeUnit"), "val", timeUnitCodes[u])
}

// MajorUnit returns the distance between major ticks, or 0.0 when automatic.
func (d *DateAxis) MajorUnit() float64 { return unit(d.el, "majorUnit") }

// SetMajorUnit sets the distance between major ticks.
func (d *DateAxis) SetMajorUnit(u float64) error { return setUnit(d.el, "majorUnit", u) }

// SeriesAxis is a c:serAx axis.
type SeriesAxis struct {
	*Axis
	el *axisElement
}

// TickLabelSkip returns how many labels are skipped between drawn ones, or
// 0 when unset.
func (s *SeriesAxis) TickLabelSkip() int {
	v, _ := val(s.el.tree, s.el.child("tickLblSkip"))
	n, _ := strconv.Atoi(v)
	return n
}

// SetTickLabelSkip sets how many labels are skipped, at least 1.
func (s *SeriesAxis) SetTickLabelSkip(n int) error {
	if n < 1 {
		return errs.Invalid("tick label skip must be positive, got: %d", n)
	}
	s.el.tree.SetAttr(s.el.ensure("tickLblSkip"), "val", strconv.Itoa(n))
	return nil
}

func unit(el *axisElement, local string) float64 {
	v, ok := val(el.tree, el.child(local))
	if !ok {
		return 0.0
	}
	f, _ := strconv.ParseFloat(v, 64)
	return f
}

func setUnit(el *axisElement, local string, u float64) error {
	if !(u > 0) {
		return errs.Invalid("%s must be positive, got: %v", local, u)
	}
	el.tree.SetAttr(el.ensure(local), "val", formatFloat(u))
	return nil
}
