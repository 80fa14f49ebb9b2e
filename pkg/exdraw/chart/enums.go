package chart

// Position is the side of the plot area an axis is drawn on.
type Position int

const (
	PositionBottom Position = iota
	PositionLeft
	PositionRight
	PositionTop
)

var positionCodes = map[Position]string{
	PositionBottom: "b",
	PositionLeft:   "l",
	PositionRight:  "r",
	PositionTop:    "t",
}

// Orientation is the direction axis values run in.
type Orientation int

const (
	OrientationMinMax Orientation = iota
	OrientationMaxMin
)

var orientationCodes = map[Orientation]string{
	OrientationMinMax: "minMax",
	OrientationMaxMin: "maxMin",
}

// Crosses is where an axis crosses its perpendicular axis.
type Crosses int

const (
	CrossesAutoZero Crosses = iota
	CrossesMax
	CrossesMin
)

var crossesCodes = map[Crosses]string{
	CrossesAutoZero: "autoZero",
	CrossesMax:      "max",
	CrossesMin:      "min",
}

// TickMark is the tick mark style of an axis.
type TickMark int

const (
	TickMarkNone TickMark = iota
	TickMarkIn
	TickMarkOut
	TickMarkCross
)

var tickMarkCodes = map[TickMark]string{
	TickMarkNone:  "none",
	TickMarkIn:    "in",
	TickMarkOut:   "out",
	TickMarkCross: "cross",
}

// CrossBetween is how a value axis crosses the category axis.
type CrossBetween int

const (
	CrossBetweenBetween CrossBetween = iota
	CrossBetweenMidpoint
)

var crossBetweenCodes = map[CrossBetween]string{
	CrossBetweenBetween:  "between",
	CrossBetweenMidpoint: "midCat",
}

// TimeUnit is the base unit of a date axis.
type TimeUnit int

const (
	TimeUnitDays TimeUnit = iota
	TimeUnitMonths
	TimeUnitYears
)

var timeUnitCodes = map[TimeUnit]string{
	TimeUnitDays:   "days",
	TimeUnitMonths: "months",
	TimeUnitYears:  "years",
}

func (p Position) String() string     { return positionCodes[p] }
func (o Orientation) String() string  { return orientationCodes[o] }
func (c Crosses) String() string      { return crossesCodes[c] }
func (t TickMark) String() string     { return tickMarkCodes[t] }
func (c CrossBetween) String() string { return crossBetweenCodes[c] }
func (t TimeUnit) String() string     { return timeUnitCodes[t] }

// decode maps a stored code back to its enum value. Unknown codes map to the
// zero value.
func decode[T comparable](codes map[T]string, code string) T {
	for v, c := range codes {
		if c == code {
			return v
		}
	}
	var zero T
	return zero
}
