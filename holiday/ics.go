package holiday

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	applog "datekit/internal/log"
)

// ImportICS parses an iCalendar payload into holidays, one per VEVENT. The
// event's DTSTART supplies the date (all-day and date-time forms are both
// accepted) and SUMMARY supplies the name. Events without a usable DTSTART
// are logged and skipped; parsing only fails when the payload itself is not
// a calendar.
func ImportICS(body []byte) ([]Holiday, error) {
	if len(body) == 0 {
		return nil, errors.New("empty ICS body")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ics parse: %w", err)
	}

	out := make([]Holiday, 0)
	for _, ve := range cal.Events() {
		h, err := parseVEvent(ve)
		if err != nil {
			applog.Error("ics vevent skipped", err)
			continue
		}
		out = append(out, h)
	}

	applog.Info("ics import completed", "event_count", len(out))
	return out, nil
}

// AddCustomFromICS imports an iCalendar payload and adds every event day to
// the custom overlay set.
func AddCustomFromICS(body []byte) error {
	holidays, err := ImportICS(body)
	if err != nil {
		return err
	}
	dates := make([]any, 0, len(holidays))
	for _, h := range holidays {
		dates = append(dates, h.Date)
	}
	return AddCustom(dates...)
}

func parseVEvent(ve *ical.VEvent) (Holiday, error) {
	var out Holiday

	dtStart := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dtStart == nil || dtStart.Value == "" {
		return out, errors.New("missing DTSTART")
	}
	t, err := parseICSTime(dtStart.Value)
	if err != nil {
		return out, fmt.Errorf("DTSTART %q: %w", dtStart.Value, err)
	}
	out.Date = t

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		out.Name = p.Value
	}
	if out.Name == "" {
		out.Name = "Holiday"
	}
	return out, nil
}

// parseICSTime handles the basic DATE / DATE-TIME / UTC forms of an ICS
// date value.
func parseICSTime(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, errors.New("empty time value")
	}

	if strings.HasSuffix(v, "Z") {
		return time.Parse("20060102T150405Z", v)
	}
	if strings.Contains(v, "T") {
		return time.ParseInLocation("20060102T150405", v, time.Local)
	}
	return time.ParseInLocation("20060102", v, time.Local)
}

// ExportICS renders a country's holidays for one year as an iCalendar
// document with one all-day VEVENT per holiday.
func ExportICS(year int, country string) ([]byte, error) {
	holidays, err := ForYear(year, country)
	if err != nil {
		return nil, err
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//datekit//holiday calendar//EN")

	code := normalizeCountry(country)
	for i, h := range holidays {
		uid := fmt.Sprintf("%s-%d-%d@datekit", strings.ToLower(code), year, i)
		ev := cal.AddEvent(uid)
		ev.SetSummary(h.Name)
		ev.SetAllDayStartAt(h.Date)
		ev.SetAllDayEndAt(h.Date.AddDate(0, 0, 1))
		ev.SetDtStampTime(h.Date)
	}

	return []byte(cal.Serialize()), nil
}
