package datefmt

import "strings"

// field is a calendar field an interval's ends can differ in.
type field int

const (
	fieldNone field = iota
	fieldYear
	fieldMonth
	fieldDay
)

// intervalLayout formats the two ends of a range that differ from the
// given field onward; shared trailing fields are written once by end.
type intervalLayout struct {
	start string
	end   string
}

// profile holds the Go layouts for one locale. Month and weekday names in
// the layouts are English and translated when rendered.
type profile struct {
	id  string
	tag string

	// dates is the plain date format per style, used for single
	// day-precision dates.
	dates map[Style]string
	// skeletons maps CLDR skeletons to layouts.
	skeletons map[string]string
	// times is the time-of-day format per style.
	times map[Style]string
	// dateTime joins {date} and {time}; long is used for full and long.
	dateTimeLong  string
	dateTimeShort string
	// intervals holds greatest-difference layouts per skeleton. Missing
	// entries fall back to formatting both ends in full.
	intervals map[string]map[field]intervalLayout
	separator string
}

// dayFirstIntervals builds interval layouts for locales that write the day
// before the month and the year last. yearSuffix is the trailing text each
// layout ends with, such as " 2006" or " de 2006".
func dayFirstIntervals(dayPart, yearSuffix string, layouts ...string) map[string]map[field]intervalLayout {
	out := make(map[string]map[field]intervalLayout, len(layouts)/2)
	for i := 0; i+1 < len(layouts); i += 2 {
		skeleton, layout := layouts[i], layouts[i+1]
		withoutYear := strings.TrimSuffix(layout, yearSuffix)
		byField := map[field]intervalLayout{
			fieldMonth: {start: withoutYear, end: layout},
		}
		if strings.HasPrefix(layout, dayPart) {
			byField[fieldDay] = intervalLayout{start: dayPart, end: layout}
		}
		out[skeleton] = byField
	}
	return out
}

var profiles = []*profile{
	{
		id:  "en_US",
		tag: "en-US",
		dates: map[Style]string{
			StyleFull:   "Monday, January 2, 2006",
			StyleLong:   "January 2, 2006",
			StyleMedium: "Jan 2, 2006",
			StyleShort:  "1/2/06",
		},
		skeletons: map[string]string{
			"y":          "2006",
			"yMMMM":      "January 2006",
			"yMMM":       "Jan 2006",
			"yM":         "1/2006",
			"EEEEyMMMMd": "Monday, January 2, 2006",
			"yMMMMd":     "January 2, 2006",
			"yMMMd":      "Jan 2, 2006",
			"yMd":        "1/2/2006",
		},
		times: map[Style]string{
			StyleFull:   "3:04:05 PM",
			StyleLong:   "3:04:05 PM",
			StyleMedium: "3:04:05 PM",
			StyleShort:  "3:04 PM",
		},
		dateTimeLong:  "{date} at {time}",
		dateTimeShort: "{date}, {time}",
		intervals: map[string]map[field]intervalLayout{
			"yMMMd": {
				fieldMonth: {start: "Jan 2", end: "Jan 2, 2006"},
				fieldDay:   {start: "Jan 2", end: "2, 2006"},
			},
			"yMMMMd": {
				fieldMonth: {start: "January 2", end: "January 2, 2006"},
				fieldDay:   {start: "January 2", end: "2, 2006"},
			},
			"yMMM": {
				fieldMonth: {start: "Jan", end: "Jan 2006"},
			},
			"yMMMM": {
				fieldMonth: {start: "January", end: "January 2006"},
			},
		},
		separator: " – ",
	},
	{
		id:  "en_GB",
		tag: "en-GB",
		dates: map[Style]string{
			StyleFull:   "Monday, 2 January 2006",
			StyleLong:   "2 January 2006",
			StyleMedium: "2 Jan 2006",
			StyleShort:  "02/01/2006",
		},
		skeletons: map[string]string{
			"y":          "2006",
			"yMMMM":      "January 2006",
			"yMMM":       "Jan 2006",
			"yM":         "01/2006",
			"EEEEyMMMMd": "Monday, 2 January 2006",
			"yMMMMd":     "2 January 2006",
			"yMMMd":      "2 Jan 2006",
			"yMd":        "02/01/2006",
		},
		times:         twentyFourHour,
		dateTimeLong:  "{date} at {time}",
		dateTimeShort: "{date}, {time}",
		intervals: dayFirstIntervals("2", " 2006",
			"yMMMd", "2 Jan 2006",
			"yMMMMd", "2 January 2006",
			"yMMM", "Jan 2006",
			"yMMMM", "January 2006",
		),
		separator: " – ",
	},
	{
		id:  "fr_FR",
		tag: "fr-FR",
		dates: map[Style]string{
			StyleFull:   "Monday 2 January 2006",
			StyleLong:   "2 January 2006",
			StyleMedium: "2 Jan 2006",
			StyleShort:  "02/01/2006",
		},
		skeletons: map[string]string{
			"y":          "2006",
			"yMMMM":      "January 2006",
			"yMMM":       "Jan 2006",
			"yM":         "01/2006",
			"EEEEyMMMMd": "Monday 2 January 2006",
			"yMMMMd":     "2 January 2006",
			"yMMMd":      "2 Jan 2006",
			"yMd":        "02/01/2006",
		},
		times:         twentyFourHour,
		dateTimeLong:  "{date} à {time}",
		dateTimeShort: "{date} {time}",
		intervals: dayFirstIntervals("2", " 2006",
			"yMMMd", "2 Jan 2006",
			"yMMMMd", "2 January 2006",
			"yMMM", "Jan 2006",
			"yMMMM", "January 2006",
		),
		separator: " – ",
	},
	{
		id:  "de_DE",
		tag: "de-DE",
		dates: map[Style]string{
			StyleFull:   "Monday, 2. January 2006",
			StyleLong:   "2. January 2006",
			StyleMedium: "02.01.2006",
			StyleShort:  "02.01.06",
		},
		skeletons: map[string]string{
			"y":          "2006",
			"yMMMM":      "January 2006",
			"yMMM":       "Jan 2006",
			"yM":         "1/2006",
			"EEEEyMMMMd": "Monday, 2. January 2006",
			"yMMMMd":     "2. January 2006",
			"yMMMd":      "2. Jan 2006",
			"yMd":        "2.1.2006",
		},
		times:         twentyFourHour,
		dateTimeLong:  "{date} um {time}",
		dateTimeShort: "{date}, {time}",
		intervals: dayFirstIntervals("2.", " 2006",
			"yMMMd", "2. Jan 2006",
			"yMMMMd", "2. January 2006",
			"yMMM", "Jan 2006",
			"yMMMM", "January 2006",
		),
		separator: " – ",
	},
	{
		id:  "es_ES",
		tag: "es-ES",
		dates: map[Style]string{
			StyleFull:   "Monday, 2 de January de 2006",
			StyleLong:   "2 de January de 2006",
			StyleMedium: "2 Jan 2006",
			StyleShort:  "2/1/06",
		},
		skeletons: map[string]string{
			"y":          "2006",
			"yMMMM":      "January de 2006",
			"yMMM":       "Jan 2006",
			"yM":         "1/2006",
			"EEEEyMMMMd": "Monday, 2 de January de 2006",
			"yMMMMd":     "2 de January de 2006",
			"yMMMd":      "2 Jan 2006",
			"yMd":        "2/1/2006",
		},
		times:         twentyFourHour,
		dateTimeLong:  "{date}, {time}",
		dateTimeShort: "{date}, {time}",
		intervals: mergeIntervals(
			dayFirstIntervals("2", " 2006", "yMMMd", "2 Jan 2006", "yMMM", "Jan 2006"),
			dayFirstIntervals("2", " de 2006", "yMMMMd", "2 de January de 2006", "yMMMM", "January de 2006"),
		),
		separator: " – ",
	},
	{
		id:  "it_IT",
		tag: "it-IT",
		dates: map[Style]string{
			StyleFull:   "Monday 2 January 2006",
			StyleLong:   "2 January 2006",
			StyleMedium: "2 Jan 2006",
			StyleShort:  "02/01/06",
		},
		skeletons: map[string]string{
			"y":          "2006",
			"yMMMM":      "January 2006",
			"yMMM":       "Jan 2006",
			"yM":         "1/2006",
			"EEEEyMMMMd": "Monday 2 January 2006",
			"yMMMMd":     "2 January 2006",
			"yMMMd":      "2 Jan 2006",
			"yMd":        "2/1/2006",
		},
		times:         twentyFourHour,
		dateTimeLong:  "{date} alle ore {time}",
		dateTimeShort: "{date}, {time}",
		intervals: dayFirstIntervals("2", " 2006",
			"yMMMd", "2 Jan 2006",
			"yMMMMd", "2 January 2006",
			"yMMM", "Jan 2006",
			"yMMMM", "January 2006",
		),
		separator: " – ",
	},
	{
		id:  "nl_NL",
		tag: "nl-NL",
		dates: map[Style]string{
			StyleFull:   "Monday 2 January 2006",
			StyleLong:   "2 January 2006",
			StyleMedium: "2 Jan 2006",
			StyleShort:  "02-01-2006",
		},
		skeletons: map[string]string{
			"y":          "2006",
			"yMMMM":      "January 2006",
			"yMMM":       "Jan 2006",
			"yM":         "1-2006",
			"EEEEyMMMMd": "Monday 2 January 2006",
			"yMMMMd":     "2 January 2006",
			"yMMMd":      "2 Jan 2006",
			"yMd":        "2-1-2006",
		},
		times:         twentyFourHour,
		dateTimeLong:  "{date} om {time}",
		dateTimeShort: "{date} {time}",
		intervals: dayFirstIntervals("2", " 2006",
			"yMMMd", "2 Jan 2006",
			"yMMMMd", "2 January 2006",
			"yMMM", "Jan 2006",
			"yMMMM", "January 2006",
		),
		separator: " – ",
	},
	{
		id:  "pt_PT",
		tag: "pt-PT",
		dates: map[Style]string{
			StyleFull:   "Monday, 2 de January de 2006",
			StyleLong:   "2 de January de 2006",
			StyleMedium: "02/01/2006",
			StyleShort:  "02/01/06",
		},
		skeletons: map[string]string{
			"y":          "2006",
			"yMMMM":      "January de 2006",
			"yMMM":       "Jan 2006",
			"yM":         "01/2006",
			"EEEEyMMMMd": "Monday, 2 de January de 2006",
			"yMMMMd":     "2 de January de 2006",
			"yMMMd":      "02/01/2006",
			"yMd":        "02/01/2006",
		},
		times:         twentyFourHour,
		dateTimeLong:  "{date} às {time}",
		dateTimeShort: "{date}, {time}",
		intervals: mergeIntervals(
			dayFirstIntervals("2", " 2006", "yMMM", "Jan 2006"),
			dayFirstIntervals("2", " de 2006", "yMMMMd", "2 de January de 2006", "yMMMM", "January de 2006"),
		),
		separator: " – ",
	},
}

var twentyFourHour = map[Style]string{
	StyleFull:   "15:04:05",
	StyleLong:   "15:04:05",
	StyleMedium: "15:04:05",
	StyleShort:  "15:04",
}

func mergeIntervals(sets ...map[string]map[field]intervalLayout) map[string]map[field]intervalLayout {
	out := make(map[string]map[field]intervalLayout)
	for _, set := range sets {
		for skeleton, byField := range set {
			out[skeleton] = byField
		}
	}
	return out
}
