package daterange

import "time"

// Context anchors a range computation: the resolved location and the single
// instant captured as "now". A Context is used for exactly one computation so
// that start and end stay internally consistent.
type Context struct {
	Location *time.Location
	Now      time.Time
}

// ResolveZone resolves an IANA timezone identifier (e.g. "Europe/London")
// and captures the current instant in that zone. An empty identifier
// resolves to UTC.
func ResolveZone(identifier string) (Context, error) {
	if identifier == "" {
		return Context{Location: time.UTC, Now: time.Now().UTC()}, nil
	}

	loc, err := time.LoadLocation(identifier)
	if err != nil {
		return Context{}, &TimezoneError{Identifier: identifier, Err: err}
	}

	return Context{Location: loc, Now: time.Now().In(loc)}, nil
}

// Offset returns the zone's UTC offset at the captured instant.
func (c Context) Offset() time.Duration {
	_, secs := c.Now.Zone()
	return time.Duration(secs) * time.Second
}

// Abbreviation returns the zone abbreviation (e.g. "GMT", "EDT") at the
// captured instant.
func (c Context) Abbreviation() string {
	name, _ := c.Now.Zone()
	return name
}
