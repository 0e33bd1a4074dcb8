package holiday

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datekit/date"
)

func TestExportImportRoundTrip(t *testing.T) {
	body, err := ExportICS(2024, "GB")
	require.NoError(t, err)
	assert.Contains(t, string(body), "BEGIN:VCALENDAR")
	assert.Contains(t, string(body), "Boxing Day")

	imported, err := ImportICS(body)
	require.NoError(t, err)

	want, err := ForYear(2024, "GB")
	require.NoError(t, err)
	require.Len(t, imported, len(want))

	wantKeys := map[string]bool{}
	for _, h := range want {
		wantKeys[date.Key(h.Date)] = true
	}
	for _, h := range imported {
		assert.True(t, wantKeys[date.Key(h.Date)], "unexpected date %s", date.Key(h.Date))
	}
}

func TestExportICSUnknownCountry(t *testing.T) {
	_, err := ExportICS(2024, "XX")
	assert.Error(t, err)
}

func TestImportICSErrors(t *testing.T) {
	_, err := ImportICS(nil)
	assert.Error(t, err)

	_, err = ImportICS([]byte("not a calendar"))
	assert.Error(t, err)
}

func TestAddCustomFromICS(t *testing.T) {
	ResetCustom()
	t.Cleanup(ResetCustom)

	ics := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//test//EN",
		"BEGIN:VEVENT",
		"UID:one@test",
		"DTSTAMP:20240101T000000Z",
		"DTSTART;VALUE=DATE:20240610",
		"SUMMARY:Company Day",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")

	require.NoError(t, AddCustomFromICS([]byte(ics)))

	ok, err := IsHoliday(d(2024, time.June, 10))
	require.NoError(t, err)
	assert.True(t, ok)
}
