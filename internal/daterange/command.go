package daterange

// Direction is whether a range extends backward or forward from the
// reference instant.
type Direction string

const (
	DirectionLast Direction = "last"
	DirectionNext Direction = "next"
)

// Unit is a named duration granularity.
type Unit string

const (
	UnitSecond Unit = "second"
	UnitMinute Unit = "minute"
	UnitHour   Unit = "hour"
	UnitDay    Unit = "day"
	UnitWeek   Unit = "week"
	UnitMonth  Unit = "month"
	UnitYear   Unit = "year"
)

// units maps a normalized unit token to its canonical Unit.
var units = map[string]Unit{
	"second": UnitSecond,
	"minute": UnitMinute,
	"hour":   UnitHour,
	"day":    UnitDay,
	"week":   UnitWeek,
	"month":  UnitMonth,
	"year":   UnitYear,
}

// unitOrder is the documented unit order, smallest first.
var unitOrder = []Unit{
	UnitSecond,
	UnitMinute,
	UnitHour,
	UnitDay,
	UnitWeek,
	UnitMonth,
	UnitYear,
}

// Units returns the supported units, smallest first.
func Units() []Unit {
	out := make([]Unit, len(unitOrder))
	copy(out, unitOrder)
	return out
}

// Command is a parsed relative time span command.
type Command struct {
	Direction Direction `json:"direction"`
	Quantity  int       `json:"quantity"`
	Unit      Unit      `json:"unit"`
}
