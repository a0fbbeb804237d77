package service

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"chwc_backend/internals/constants"
	appointmentModel "chwc_backend/internals/features/appointments/model"
	emergencyModel "chwc_backend/internals/features/emergencies/model"
	porModel "chwc_backend/internals/features/por/model"
)

// MonthPair is one month's worth of two compared series. Months with no
// activity in either series are absent, matching how the report queries have
// always behaved.
type MonthPair struct {
	Month  string
	First  int
	Second int
}

// CampusBreakdown totals emergencies per campus for the pie report.
type CampusBreakdown struct {
	Parktown int64
	Main     int64
	Total    int64
}

// MonthlyBookingsVsEmergencies groups appointments (First) and emergency
// reports (Second) by calendar month. Grouping runs in Go so the same query
// plan serves MySQL and the test store.
func MonthlyBookingsVsEmergencies(db *gorm.DB) ([]MonthPair, error) {
	bookings, err := appointmentMonths(db)
	if err != nil {
		return nil, err
	}
	emergencies, err := emergencyMonths(db)
	if err != nil {
		return nil, err
	}
	return merge(bookings, emergencies), nil
}

// MonthlyUploadsVsBookings groups POR uploads (First) and appointments
// (Second) by calendar month.
func MonthlyUploadsVsBookings(db *gorm.DB) ([]MonthPair, error) {
	uploads, err := uploadMonths(db)
	if err != nil {
		return nil, err
	}
	bookings, err := appointmentMonths(db)
	if err != nil {
		return nil, err
	}
	return merge(uploads, bookings), nil
}

// EmergencyCampusBreakdown sums the campus flags. The Parktown/Main naming
// follows the report the clinic has always produced.
func EmergencyCampusBreakdown(db *gorm.DB) (CampusBreakdown, error) {
	var out CampusBreakdown
	err := db.Model(&emergencyModel.EmergencyReportModel{}).
		Select("COALESCE(SUM(education_campus), 0) AS parktown, COALESCE(SUM(other_campus), 0) AS main, COUNT(*) AS total").
		Scan(&out).Error
	return out, err
}

func appointmentMonths(db *gorm.DB) (map[time.Month]int, error) {
	var dates []datatypes.Date
	err := db.Model(&appointmentModel.AppointmentModel{}).
		Where("appointment_date IS NOT NULL").
		Pluck("appointment_date", &dates).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[time.Month]int)
	for _, d := range dates {
		counts[time.Time(d).Month()]++
	}
	return counts, nil
}

func emergencyMonths(db *gorm.DB) (map[time.Month]int, error) {
	var dates []datatypes.Date
	err := db.Model(&emergencyModel.EmergencyReportModel{}).
		Where("date IS NOT NULL").
		Pluck("date", &dates).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[time.Month]int)
	for _, d := range dates {
		counts[time.Time(d).Month()]++
	}
	return counts, nil
}

func uploadMonths(db *gorm.DB) (map[time.Month]int, error) {
	var stamps []time.Time
	err := db.Model(&porModel.PORUploadModel{}).
		Where("uploaded_at IS NOT NULL").
		Pluck("uploaded_at", &stamps).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[time.Month]int)
	for _, t := range stamps {
		counts[t.Month()]++
	}
	return counts, nil
}

// merge walks the calendar and keeps every month either side saw.
func merge(first, second map[time.Month]int) []MonthPair {
	var out []MonthPair
	for m := time.January; m <= time.December; m++ {
		a, okA := first[m]
		b, okB := second[m]
		if !okA && !okB {
			continue
		}
		out = append(out, MonthPair{
			Month:  constants.MonthName(m),
			First:  a,
			Second: b,
		})
	}
	return out
}
