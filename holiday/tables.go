package holiday

import "time"

// builtinRules returns the built-in country tables. Fixed-date rules and
// weekday-anchored floating rules are resolved; Easter-, equinox- and
// lunar-calendar-derived observances are intentionally absent.
func builtinRules() map[string][]Rule {
	us := []Rule{
		{Name: "New Year's Day", Month: time.January, Day: 1},
		{Name: "Martin Luther King Jr. Day", Floating: NthWeekday(3, time.Monday, time.January)},
		{Name: "Presidents' Day", Floating: NthWeekday(3, time.Monday, time.February)},
		{Name: "Memorial Day", Floating: NthWeekday(-1, time.Monday, time.May)},
		{Name: "Independence Day", Month: time.July, Day: 4},
		{Name: "Labour Day", Floating: NthWeekday(1, time.Monday, time.September)},
		{Name: "Columbus Day", Floating: NthWeekday(2, time.Monday, time.October)},
		{Name: "Veterans Day", Month: time.November, Day: 11},
		{Name: "Thanksgiving", Floating: NthWeekday(4, time.Thursday, time.November)},
		{Name: "Christmas Day", Month: time.December, Day: 25},
	}

	gb := []Rule{
		{Name: "New Year's Day", Month: time.January, Day: 1},
		{Name: "Early May Bank Holiday", Floating: NthWeekday(1, time.Monday, time.May)},
		{Name: "Spring Bank Holiday", Floating: NthWeekday(-1, time.Monday, time.May)},
		{Name: "Summer Bank Holiday", Floating: NthWeekday(-1, time.Monday, time.August)},
		{Name: "Christmas Day", Month: time.December, Day: 25},
		{Name: "Boxing Day", Month: time.December, Day: 26},
	}

	return map[string][]Rule{
		"US": us,
		"GB": gb,
		// Legacy alias kept for callers using the pre-ISO code.
		"UK": gb,
		"CA": {
			{Name: "New Year's Day", Month: time.January, Day: 1},
			{Name: "Family Day", Floating: NthWeekday(3, time.Monday, time.February)},
			{Name: "Victoria Day", Floating: NthWeekday(-1, time.Monday, time.May)},
			{Name: "Canada Day", Month: time.July, Day: 1},
			{Name: "Civic Holiday", Floating: NthWeekday(1, time.Monday, time.August)},
			{Name: "Labour Day", Floating: NthWeekday(1, time.Monday, time.September)},
			{Name: "Thanksgiving", Floating: NthWeekday(2, time.Monday, time.October)},
			{Name: "Remembrance Day", Month: time.November, Day: 11},
			{Name: "Christmas Day", Month: time.December, Day: 25},
			{Name: "Boxing Day", Month: time.December, Day: 26},
		},
		"DE": {
			{Name: "New Year's Day", Month: time.January, Day: 1},
			{Name: "Labour Day", Month: time.May, Day: 1},
			{Name: "German Unity Day", Month: time.October, Day: 3},
			{Name: "Christmas Day", Month: time.December, Day: 25},
			{Name: "Boxing Day", Month: time.December, Day: 26},
		},
		"FR": {
			{Name: "New Year's Day", Month: time.January, Day: 1},
			{Name: "Labour Day", Month: time.May, Day: 1},
			{Name: "Victory in Europe Day", Month: time.May, Day: 8},
			{Name: "Bastille Day", Month: time.July, Day: 14},
			{Name: "Assumption Day", Month: time.August, Day: 15},
			{Name: "All Saints' Day", Month: time.November, Day: 1},
			{Name: "Armistice Day", Month: time.November, Day: 11},
			{Name: "Christmas Day", Month: time.December, Day: 25},
		},
		"JP": {
			{Name: "New Year's Day", Month: time.January, Day: 1},
			{Name: "Coming of Age Day", Floating: NthWeekday(2, time.Monday, time.January)},
			{Name: "National Foundation Day", Month: time.February, Day: 11},
			{Name: "Showa Day", Month: time.April, Day: 29},
			{Name: "Constitution Memorial Day", Month: time.May, Day: 3},
			{Name: "Greenery Day", Month: time.May, Day: 4},
			{Name: "Children's Day", Month: time.May, Day: 5},
			{Name: "Marine Day", Floating: NthWeekday(3, time.Monday, time.July)},
			{Name: "Mountain Day", Month: time.August, Day: 11},
			{Name: "Respect for the Aged Day", Floating: NthWeekday(3, time.Monday, time.September)},
			{Name: "Health and Sports Day", Floating: NthWeekday(2, time.Monday, time.October)},
			{Name: "Culture Day", Month: time.November, Day: 3},
			{Name: "Labour Thanksgiving Day", Month: time.November, Day: 23},
		},
		"KR": {
			{Name: "New Year's Day", Month: time.January, Day: 1},
			{Name: "Independence Movement Day", Month: time.March, Day: 1},
			{Name: "Children's Day", Month: time.May, Day: 5},
			{Name: "Memorial Day", Month: time.June, Day: 6},
			{Name: "Constitution Day", Month: time.July, Day: 17},
			{Name: "Liberation Day", Month: time.August, Day: 15},
			{Name: "National Foundation Day", Month: time.October, Day: 3},
			{Name: "Hangeul Day", Month: time.October, Day: 9},
			{Name: "Christmas Day", Month: time.December, Day: 25},
		},
		"IN": {
			{Name: "New Year's Day", Month: time.January, Day: 1},
			{Name: "Republic Day", Month: time.January, Day: 26},
			{Name: "Independence Day", Month: time.August, Day: 15},
			{Name: "Gandhi Jayanti", Month: time.October, Day: 2},
			{Name: "Christmas Day", Month: time.December, Day: 25},
		},
		"NG": {
			{Name: "New Year's Day", Month: time.January, Day: 1},
			{Name: "Worker's Day", Month: time.May, Day: 1},
			{Name: "Democracy Day", Month: time.May, Day: 29},
			{Name: "Independence Day", Month: time.October, Day: 1},
			{Name: "Christmas Day", Month: time.December, Day: 25},
			{Name: "Boxing Day", Month: time.December, Day: 26},
		},
		"MX": {
			{Name: "New Year's Day", Month: time.January, Day: 1},
			{Name: "Constitution Day", Floating: NthWeekday(1, time.Monday, time.February)},
			{Name: "Benito Juárez's Birthday", Floating: NthWeekday(3, time.Monday, time.March)},
			{Name: "Labour Day", Month: time.May, Day: 1},
			{Name: "Independence Day", Month: time.September, Day: 16},
			{Name: "Revolution Day", Floating: NthWeekday(3, time.Monday, time.November)},
			{Name: "Christmas Day", Month: time.December, Day: 25},
		},
		"ZA": {
			{Name: "New Year's Day", Month: time.January, Day: 1},
			{Name: "Human Rights Day", Month: time.March, Day: 21},
			{Name: "Freedom Day", Month: time.April, Day: 27},
			{Name: "Workers' Day", Month: time.May, Day: 1},
			{Name: "Youth Day", Month: time.June, Day: 16},
			{Name: "National Women's Day", Month: time.August, Day: 9},
			{Name: "Heritage Day", Month: time.September, Day: 24},
			{Name: "Day of Reconciliation", Month: time.December, Day: 16},
			{Name: "Christmas Day", Month: time.December, Day: 25},
			{Name: "Day of Goodwill", Month: time.December, Day: 26},
		},
	}
}
