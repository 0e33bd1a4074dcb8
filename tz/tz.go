// Package tz provides a static IANA timezone offset table and fixed-offset
// conversions. Offsets are standard-time values in minutes east of UTC; the
// table is a snapshot, not a live tz database.
package tz

import (
	"fmt"
	"time"
)

// Zone is one entry of the static timezone table.
type Zone struct {
	ID            string
	OffsetMinutes int
	Description   string
}

var zoneIndex = buildIndex()

func buildIndex() map[string]Zone {
	idx := make(map[string]Zone, len(zones))
	for _, z := range zones {
		idx[z.ID] = z
	}
	return idx
}

// Lookup returns the table entry for an IANA zone id. Unknown ids are an
// error, never a zero offset.
func Lookup(id string) (Zone, error) {
	z, ok := zoneIndex[id]
	if !ok {
		return Zone{}, fmt.Errorf("unknown timezone %q", id)
	}
	return z, nil
}

// OffsetMinutes returns the standard offset of a zone in minutes east of
// UTC.
func OffsetMinutes(id string) (int, error) {
	z, err := Lookup(id)
	if err != nil {
		return 0, err
	}
	return z.OffsetMinutes, nil
}

// Convert shifts t between two table zones by their fixed offsets.
func Convert(t time.Time, fromID, toID string) (time.Time, error) {
	from, err := Lookup(fromID)
	if err != nil {
		return time.Time{}, err
	}
	to, err := Lookup(toID)
	if err != nil {
		return time.Time{}, err
	}
	return t.Add(time.Duration(to.OffsetMinutes-from.OffsetMinutes) * time.Minute), nil
}

// IDs returns every zone id in table order.
func IDs() []string {
	out := make([]string, 0, len(zones))
	for _, z := range zones {
		out = append(out, z.ID)
	}
	return out
}
