package model

import (
	"time"

	"gorm.io/datatypes"
)

// AppointmentModel maps appointments. Times stay as HH:MM strings: the
// booking form submits them verbatim and the frontend renders them verbatim.
type AppointmentModel struct {
	ID                     int             `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ReferenceNumber        string          `gorm:"column:reference_number;size:50;not null" json:"reference_number"`
	StudentNumber          string          `gorm:"column:student_number;size:50;not null;index" json:"student_number"`
	AppointmentType        string          `gorm:"column:appointment_type;size:50;not null" json:"appointment_type"`
	AppointmentFor         string          `gorm:"column:appointment_for;size:100;not null" json:"appointment_for"`
	AppointmentDate        *datatypes.Date `gorm:"column:appointment_date" json:"appointment_date,omitempty"`
	AppointmentTime        string          `gorm:"column:appointment_time;size:20;not null" json:"appointment_time"`
	PreviousAppointmentRef *string         `gorm:"column:previous_appointment_ref;size:100" json:"previous_appointment_ref,omitempty"`
	Status                 string          `gorm:"column:status;size:20;default:scheduled" json:"status"`
	CreatedAt              time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AppointmentModel) TableName() string { return "appointments" }

const (
	StatusScheduled = "scheduled"
	StatusCancelled = "cancelled"
)
