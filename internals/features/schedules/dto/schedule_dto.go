package dto

import (
	"strings"
	"time"

	"chwc_backend/internals/features/schedules/model"
)

type SaveScheduleRequest struct {
	StaffName   string `json:"staff_name"`
	Month       string `json:"month"`
	Day         int    `json:"day"`
	Lunch1Start string `json:"lunch1_start"`
	Lunch1End   string `json:"lunch1_end"`
	Lunch2Start string `json:"lunch2_start"`
	Lunch2End   string `json:"lunch2_end"`
	Notes       string `json:"notes"`
}

func (r *SaveScheduleRequest) Complete() bool {
	return r.StaffName != "" && r.Month != "" && r.Day != 0
}

func (r *SaveScheduleRequest) ToModel() *model.StaffScheduleModel {
	return &model.StaffScheduleModel{
		StaffName:   r.StaffName,
		Month:       r.Month,
		Day:         r.Day,
		Lunch1Start: optional(r.Lunch1Start),
		Lunch1End:   optional(r.Lunch1End),
		Lunch2Start: optional(r.Lunch2Start),
		Lunch2End:   optional(r.Lunch2End),
		Notes:       optional(r.Notes),
	}
}

// TodayScheduleRow is the cover-board shape: the raw row plus the composed
// display string, e.g. "12:00 PM - 12:30 PM / 01:00 PM - 01:30 PM".
type TodayScheduleRow struct {
	model.StaffScheduleModel
	LunchTimes string `json:"lunch_times"`
}

func ToTodayRow(m model.StaffScheduleModel) TodayScheduleRow {
	var windows []string
	if w := window(m.Lunch1Start, m.Lunch1End); w != "" {
		windows = append(windows, w)
	}
	if w := window(m.Lunch2Start, m.Lunch2End); w != "" {
		windows = append(windows, w)
	}
	return TodayScheduleRow{
		StaffScheduleModel: m,
		LunchTimes:         strings.Join(windows, " / "),
	}
}

func window(start, end *string) string {
	if start == nil || end == nil || *start == "" || *end == "" {
		return ""
	}
	return clock(*start) + " - " + clock(*end)
}

// clock renders an HH:MM value as zero-padded 12-hour with AM/PM; anything
// unparseable passes through as stored.
func clock(s string) string {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return s
	}
	return t.Format("03:04 PM")
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
