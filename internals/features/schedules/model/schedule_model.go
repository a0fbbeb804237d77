package model

import "time"

// StaffScheduleModel maps staff_schedules: the lunch cover roster, one row
// per staff member per calendar day. The composite unique index makes the
// save endpoint an upsert.
type StaffScheduleModel struct {
	ID          int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	StaffName   string    `gorm:"column:staff_name;size:100;not null;uniqueIndex:uniq_staff_day" json:"staff_name"`
	Month       string    `gorm:"column:month;size:20;not null;uniqueIndex:uniq_staff_day" json:"month"`
	Day         int       `gorm:"column:day;not null;uniqueIndex:uniq_staff_day" json:"day"`
	Lunch1Start *string   `gorm:"column:lunch1_start;size:10" json:"lunch1_start,omitempty"`
	Lunch1End   *string   `gorm:"column:lunch1_end;size:10" json:"lunch1_end,omitempty"`
	Lunch2Start *string   `gorm:"column:lunch2_start;size:10" json:"lunch2_start,omitempty"`
	Lunch2End   *string   `gorm:"column:lunch2_end;size:10" json:"lunch2_end,omitempty"`
	Notes       *string   `gorm:"column:notes;type:text" json:"notes,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (StaffScheduleModel) TableName() string { return "staff_schedules" }
