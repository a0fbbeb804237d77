package constants

import "time"

// MonthNames in calendar order, for report series that group by month name.
var MonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the label for a time.Month.
func MonthName(m time.Month) string {
	return MonthNames[int(m)-1]
}
