package tz

// zones mirrors the standardized IANA offset snapshot the library ships
// with. Offsets are minutes east of UTC.
var zones = []Zone{
	{ID: "Etc/GMT+12", OffsetMinutes: -720, Description: "GMT-12:00"},
	{ID: "Pacific/Midway", OffsetMinutes: -660, Description: "Samoa Standard Time"},
	{ID: "Pacific/Pago_Pago", OffsetMinutes: -660, Description: "Samoa Standard Time"},
	{ID: "Pacific/Samoa", OffsetMinutes: -660, Description: "Samoa Standard Time"},
	{ID: "US/Samoa", OffsetMinutes: -660, Description: "Samoa Standard Time"},
	{ID: "Etc/GMT+11", OffsetMinutes: -660, Description: "GMT-11:00"},
	{ID: "Pacific/Honolulu", OffsetMinutes: -600, Description: "Hawaii Standard Time"},
	{ID: "US/Hawaii", OffsetMinutes: -600, Description: "Hawaii Standard Time"},
	{ID: "Pacific/Rarotonga", OffsetMinutes: -600, Description: "Cook Is. Time"},
	{ID: "Pacific/Tahiti", OffsetMinutes: -600, Description: "Tahiti Time"},
	{ID: "Etc/GMT+10", OffsetMinutes: -600, Description: "GMT-10:00"},
	{ID: "US/Alaska", OffsetMinutes: -540, Description: "Alaska Standard Time"},
	{ID: "America/Anchorage", OffsetMinutes: -540, Description: "Alaska Standard Time"},
	{ID: "America/Juneau", OffsetMinutes: -540, Description: "Alaska Standard Time"},
	{ID: "America/Nome", OffsetMinutes: -540, Description: "Alaska Standard Time"},
	{ID: "America/Yakutat", OffsetMinutes: -540, Description: "Alaska Standard Time"},
	{ID: "Pacific/Gambier", OffsetMinutes: -540, Description: "Gambier Time"},
	{ID: "Etc/GMT+9", OffsetMinutes: -540, Description: "GMT-09:00"},
	{ID: "US/Pacific", OffsetMinutes: -480, Description: "Pacific Standard Time"},
	{ID: "America/Los_Angeles", OffsetMinutes: -480, Description: "Pacific Standard Time"},
	{ID: "America/Vancouver", OffsetMinutes: -480, Description: "Pacific Standard Time"},
	{ID: "America/Tijuana", OffsetMinutes: -480, Description: "Pacific Standard Time"},
	{ID: "Pacific/Pitcairn", OffsetMinutes: -480, Description: "Pitcairn Standard Time"},
	{ID: "Etc/GMT+8", OffsetMinutes: -480, Description: "GMT-08:00"},
	{ID: "US/Mountain", OffsetMinutes: -420, Description: "Mountain Standard Time"},
	{ID: "America/Denver", OffsetMinutes: -420, Description: "Mountain Standard Time"},
	{ID: "America/Phoenix", OffsetMinutes: -420, Description: "Mountain Standard Time"},
	{ID: "America/Calgary", OffsetMinutes: -420, Description: "Mountain Standard Time"},
	{ID: "America/Edmonton", OffsetMinutes: -420, Description: "Mountain Standard Time"},
	{ID: "US/Arizona", OffsetMinutes: -420, Description: "Mountain Standard Time"},
	{ID: "Etc/GMT+7", OffsetMinutes: -420, Description: "GMT-07:00"},
	{ID: "US/Central", OffsetMinutes: -360, Description: "Central Standard Time"},
	{ID: "America/Chicago", OffsetMinutes: -360, Description: "Central Standard Time"},
	{ID: "America/Mexico_City", OffsetMinutes: -360, Description: "Central Standard Time"},
	{ID: "America/Winnipeg", OffsetMinutes: -360, Description: "Central Standard Time"},
	{ID: "America/Guatemala", OffsetMinutes: -360, Description: "Central Standard Time"},
	{ID: "Pacific/Easter", OffsetMinutes: -360, Description: "Easter Is. Time"},
	{ID: "Etc/GMT+6", OffsetMinutes: -360, Description: "GMT-06:00"},
	{ID: "US/Eastern", OffsetMinutes: -300, Description: "Eastern Standard Time"},
	{ID: "America/New_York", OffsetMinutes: -300, Description: "Eastern Standard Time"},
	{ID: "America/Toronto", OffsetMinutes: -300, Description: "Eastern Standard Time"},
	{ID: "America/Montreal", OffsetMinutes: -300, Description: "Eastern Standard Time"},
	{ID: "America/Bogota", OffsetMinutes: -300, Description: "Colombia Time"},
	{ID: "America/Lima", OffsetMinutes: -300, Description: "Peru Time"},
	{ID: "America/Panama", OffsetMinutes: -300, Description: "Eastern Standard Time"},
	{ID: "Etc/GMT+5", OffsetMinutes: -300, Description: "GMT-05:00"},
	{ID: "America/Caracas", OffsetMinutes: -240, Description: "Venezuela Time"},
	{ID: "America/Santiago", OffsetMinutes: -240, Description: "Chile Time"},
	{ID: "America/La_Paz", OffsetMinutes: -240, Description: "Bolivia Time"},
	{ID: "America/Halifax", OffsetMinutes: -240, Description: "Atlantic Standard Time"},
	{ID: "America/Barbados", OffsetMinutes: -240, Description: "Atlantic Standard Time"},
	{ID: "Atlantic/Bermuda", OffsetMinutes: -240, Description: "Atlantic Standard Time"},
	{ID: "Etc/GMT+4", OffsetMinutes: -240, Description: "GMT-04:00"},
	{ID: "America/Sao_Paulo", OffsetMinutes: -180, Description: "Brazil Time"},
	{ID: "America/Buenos_Aires", OffsetMinutes: -180, Description: "Argentina Time"},
	{ID: "America/Montevideo", OffsetMinutes: -180, Description: "Uruguay Time"},
	{ID: "America/Cayenne", OffsetMinutes: -180, Description: "French Guiana Time"},
	{ID: "America/Godthab", OffsetMinutes: -180, Description: "West Greenland Time"},
	{ID: "Etc/GMT+3", OffsetMinutes: -180, Description: "GMT-03:00"},
	{ID: "America/Noronha", OffsetMinutes: -120, Description: "Fernando de Noronha Time"},
	{ID: "Atlantic/South_Georgia", OffsetMinutes: -120, Description: "South Georgia Time"},
	{ID: "Etc/GMT+2", OffsetMinutes: -120, Description: "GMT-02:00"},
	{ID: "Atlantic/Azores", OffsetMinutes: -60, Description: "Azores Time"},
	{ID: "Atlantic/Cape_Verde", OffsetMinutes: -60, Description: "Cape Verde Time"},
	{ID: "Etc/GMT+1", OffsetMinutes: -60, Description: "GMT-01:00"},
	{ID: "UTC", OffsetMinutes: 0, Description: "Coordinated Universal Time"},
	{ID: "GMT", OffsetMinutes: 0, Description: "Greenwich Mean Time"},
	{ID: "Europe/London", OffsetMinutes: 0, Description: "Greenwich Mean Time"},
	{ID: "Europe/Dublin", OffsetMinutes: 0, Description: "Irish Standard Time"},
	{ID: "Africa/Casablanca", OffsetMinutes: 0, Description: "Western European Time"},
	{ID: "Atlantic/Reykjavik", OffsetMinutes: 0, Description: "Greenwich Mean Time"},
	{ID: "Etc/GMT", OffsetMinutes: 0, Description: "GMT"},
	{ID: "Europe/Paris", OffsetMinutes: 60, Description: "Central European Time"},
	{ID: "Europe/Berlin", OffsetMinutes: 60, Description: "Central European Time"},
	{ID: "Europe/Rome", OffsetMinutes: 60, Description: "Central European Time"},
	{ID: "Europe/Madrid", OffsetMinutes: 60, Description: "Central European Time"},
	{ID: "Europe/Amsterdam", OffsetMinutes: 60, Description: "Central European Time"},
	{ID: "Europe/Brussels", OffsetMinutes: 60, Description: "Central European Time"},
	{ID: "Europe/Vienna", OffsetMinutes: 60, Description: "Central European Time"},
	{ID: "Europe/Zurich", OffsetMinutes: 60, Description: "Central European Time"},
	{ID: "Africa/Lagos", OffsetMinutes: 60, Description: "West Africa Time"},
	{ID: "Etc/GMT-1", OffsetMinutes: 60, Description: "GMT+01:00"},
	{ID: "Europe/Helsinki", OffsetMinutes: 120, Description: "Eastern European Time"},
	{ID: "Europe/Athens", OffsetMinutes: 120, Description: "Eastern European Time"},
	{ID: "Europe/Istanbul", OffsetMinutes: 120, Description: "Turkey Time"},
	{ID: "Europe/Kiev", OffsetMinutes: 120, Description: "Eastern European Time"},
	{ID: "Africa/Cairo", OffsetMinutes: 120, Description: "Eastern European Time"},
	{ID: "Africa/Johannesburg", OffsetMinutes: 120, Description: "South Africa Standard Time"},
	{ID: "Asia/Jerusalem", OffsetMinutes: 120, Description: "Israel Standard Time"},
	{ID: "Etc/GMT-2", OffsetMinutes: 120, Description: "GMT+02:00"},
	{ID: "Europe/Moscow", OffsetMinutes: 180, Description: "Moscow Standard Time"},
	{ID: "Asia/Riyadh", OffsetMinutes: 180, Description: "Arabia Standard Time"},
	{ID: "Asia/Kuwait", OffsetMinutes: 180, Description: "Arabia Standard Time"},
	{ID: "Asia/Baghdad", OffsetMinutes: 180, Description: "Arabia Standard Time"},
	{ID: "Africa/Nairobi", OffsetMinutes: 180, Description: "East Africa Time"},
	{ID: "Indian/Antananarivo", OffsetMinutes: 180, Description: "East Africa Time"},
	{ID: "Etc/GMT-3", OffsetMinutes: 180, Description: "GMT+03:00"},
	{ID: "Asia/Tehran", OffsetMinutes: 210, Description: "Iran Standard Time"},
	{ID: "Asia/Dubai", OffsetMinutes: 240, Description: "Gulf Standard Time"},
	{ID: "Asia/Muscat", OffsetMinutes: 240, Description: "Gulf Standard Time"},
	{ID: "Asia/Baku", OffsetMinutes: 240, Description: "Azerbaijan Time"},
	{ID: "Asia/Tbilisi", OffsetMinutes: 240, Description: "Georgia Time"},
	{ID: "Indian/Mauritius", OffsetMinutes: 240, Description: "Mauritius Time"},
	{ID: "Etc/GMT-4", OffsetMinutes: 240, Description: "GMT+04:00"},
	{ID: "Asia/Kabul", OffsetMinutes: 270, Description: "Afghanistan Time"},
	{ID: "Asia/Karachi", OffsetMinutes: 300, Description: "Pakistan Standard Time"},
	{ID: "Asia/Tashkent", OffsetMinutes: 300, Description: "Uzbekistan Time"},
	{ID: "Asia/Yekaterinburg", OffsetMinutes: 300, Description: "Yekaterinburg Time"},
	{ID: "Indian/Maldives", OffsetMinutes: 300, Description: "Maldives Time"},
	{ID: "Etc/GMT-5", OffsetMinutes: 300, Description: "GMT+05:00"},
	{ID: "Asia/Kolkata", OffsetMinutes: 330, Description: "India Standard Time"},
	{ID: "Asia/Colombo", OffsetMinutes: 330, Description: "Sri Lanka Time"},
	{ID: "Asia/Kathmandu", OffsetMinutes: 345, Description: "Nepal Time"},
	{ID: "Asia/Almaty", OffsetMinutes: 360, Description: "East Kazakhstan Time"},
	{ID: "Asia/Dhaka", OffsetMinutes: 360, Description: "Bangladesh Time"},
	{ID: "Asia/Omsk", OffsetMinutes: 360, Description: "Omsk Time"},
	{ID: "Indian/Chagos", OffsetMinutes: 360, Description: "Indian Ocean Time"},
	{ID: "Etc/GMT-6", OffsetMinutes: 360, Description: "GMT+06:00"},
	{ID: "Asia/Rangoon", OffsetMinutes: 390, Description: "Myanmar Time"},
	{ID: "Indian/Cocos", OffsetMinutes: 390, Description: "Cocos Islands Time"},
	{ID: "Asia/Bangkok", OffsetMinutes: 420, Description: "Indochina Time"},
	{ID: "Asia/Jakarta", OffsetMinutes: 420, Description: "West Indonesia Time"},
	{ID: "Asia/Ho_Chi_Minh", OffsetMinutes: 420, Description: "Indochina Time"},
	{ID: "Asia/Krasnoyarsk", OffsetMinutes: 420, Description: "Krasnoyarsk Time"},
	{ID: "Etc/GMT-7", OffsetMinutes: 420, Description: "GMT+07:00"},
	{ID: "Asia/Shanghai", OffsetMinutes: 480, Description: "China Standard Time"},
	{ID: "Asia/Hong_Kong", OffsetMinutes: 480, Description: "Hong Kong Time"},
	{ID: "Asia/Singapore", OffsetMinutes: 480, Description: "Singapore Time"},
	{ID: "Asia/Taipei", OffsetMinutes: 480, Description: "China Standard Time"},
	{ID: "Asia/Manila", OffsetMinutes: 480, Description: "Philippine Time"},
	{ID: "Asia/Kuala_Lumpur", OffsetMinutes: 480, Description: "Malaysia Time"},
	{ID: "Australia/Perth", OffsetMinutes: 480, Description: "Western Standard Time (Australia)"},
	{ID: "Asia/Irkutsk", OffsetMinutes: 480, Description: "Irkutsk Time"},
	{ID: "Etc/GMT-8", OffsetMinutes: 480, Description: "GMT+08:00"},
	{ID: "Asia/Tokyo", OffsetMinutes: 540, Description: "Japan Standard Time"},
	{ID: "Asia/Seoul", OffsetMinutes: 540, Description: "Korea Standard Time"},
	{ID: "Asia/Yakutsk", OffsetMinutes: 540, Description: "Yakutsk Time"},
	{ID: "Pacific/Palau", OffsetMinutes: 540, Description: "Palau Time"},
	{ID: "Etc/GMT-9", OffsetMinutes: 540, Description: "GMT+09:00"},
	{ID: "Australia/Adelaide", OffsetMinutes: 570, Description: "Central Standard Time (South Australia)"},
	{ID: "Australia/Darwin", OffsetMinutes: 570, Description: "Central Standard Time (Northern Territory)"},
	{ID: "Australia/Sydney", OffsetMinutes: 600, Description: "Eastern Standard Time (New South Wales)"},
	{ID: "Australia/Melbourne", OffsetMinutes: 600, Description: "Eastern Standard Time (Victoria)"},
	{ID: "Australia/Brisbane", OffsetMinutes: 600, Description: "Eastern Standard Time (Queensland)"},
	{ID: "Australia/Hobart", OffsetMinutes: 600, Description: "Eastern Standard Time (Tasmania)"},
	{ID: "Pacific/Guam", OffsetMinutes: 600, Description: "Chamorro Standard Time"},
	{ID: "Asia/Vladivostok", OffsetMinutes: 600, Description: "Vladivostok Time"},
	{ID: "Etc/GMT-10", OffsetMinutes: 600, Description: "GMT+10:00"},
	{ID: "Australia/Lord_Howe", OffsetMinutes: 630, Description: "Lord Howe Standard Time"},
	{ID: "Pacific/Norfolk", OffsetMinutes: 660, Description: "Norfolk Time"},
	{ID: "Asia/Magadan", OffsetMinutes: 660, Description: "Magadan Time"},
	{ID: "Pacific/Noumea", OffsetMinutes: 660, Description: "New Caledonia Time"},
	{ID: "Etc/GMT-11", OffsetMinutes: 660, Description: "GMT+11:00"},
	{ID: "Pacific/Auckland", OffsetMinutes: 720, Description: "New Zealand Standard Time"},
	{ID: "Pacific/Fiji", OffsetMinutes: 720, Description: "Fiji Time"},
	{ID: "Asia/Kamchatka", OffsetMinutes: 720, Description: "Kamchatka Time"},
	{ID: "Pacific/Tarawa", OffsetMinutes: 720, Description: "Gilbert Is. Time"},
	{ID: "Etc/GMT-12", OffsetMinutes: 720, Description: "GMT+12:00"},
	{ID: "Pacific/Chatham", OffsetMinutes: 765, Description: "Chatham Standard Time"},
	{ID: "Pacific/Tongatapu", OffsetMinutes: 780, Description: "Tonga Time"},
	{ID: "Pacific/Apia", OffsetMinutes: 780, Description: "West Samoa Time"},
	{ID: "Etc/GMT-13", OffsetMinutes: 780, Description: "GMT+13:00"},
	{ID: "Pacific/Kiritimati", OffsetMinutes: 840, Description: "Line Is. Time"},
	{ID: "Etc/GMT-14", OffsetMinutes: 840, Description: "GMT+14:00"},
}
