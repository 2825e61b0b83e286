// Package holiday carries the static national holiday table overlaid on the
// month view.
package holiday

import "time"

// table maps ISO dates to holiday names for the covered calendar year.
var table = map[string]string{
	"2024-01-01": "신정",
	"2024-02-09": "설날",
	"2024-02-10": "설날",
	"2024-02-11": "설날",
	"2024-03-01": "삼일절",
	"2024-05-05": "어린이날",
	"2024-06-06": "현충일",
	"2024-08-15": "광복절",
	"2024-09-16": "추석",
	"2024-09-17": "추석",
	"2024-09-18": "추석",
	"2024-10-03": "개천절",
	"2024-10-09": "한글날",
	"2024-12-25": "크리스마스",
}

// ForMonth returns the holidays falling in t's year and month, keyed by ISO
// date. Months without holidays yield an empty map.
func ForMonth(t time.Time) map[string]string {
	prefix := t.Format("2006-01")

	out := map[string]string{}
	for date, name := range table {
		if len(date) >= 7 && date[:7] == prefix {
			out[date] = name
		}
	}
	return out
}
