package dto

import (
	"time"

	"gorm.io/datatypes"

	"chwc_backend/internals/features/appointments/model"
)

type SaveAppointmentRequest struct {
	ReferenceNumber        string `json:"referenceNumber"`
	StudentNumber          string `json:"studentNumber"`
	AppointmentType        string `json:"appointmentType"`
	AppointmentFor         string `json:"appointmentFor"`
	AppointmentDate        string `json:"appointmentDate"`
	AppointmentTime        string `json:"appointmentTime"`
	PreviousAppointmentRef string `json:"previousAppointmentRef"`
}

// MissingFields lists the required booking fields absent from the request,
// in form order, so the error detail reads the way the form is laid out.
func (r *SaveAppointmentRequest) MissingFields() []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"referenceNumber", r.ReferenceNumber},
		{"studentNumber", r.StudentNumber},
		{"appointmentType", r.AppointmentType},
		{"appointmentFor", r.AppointmentFor},
		{"appointmentTime", r.AppointmentTime},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func (r *SaveAppointmentRequest) ToModel() (*model.AppointmentModel, error) {
	m := &model.AppointmentModel{
		ReferenceNumber: r.ReferenceNumber,
		StudentNumber:   r.StudentNumber,
		AppointmentType: r.AppointmentType,
		AppointmentFor:  r.AppointmentFor,
		AppointmentTime: r.AppointmentTime,
		Status:          model.StatusScheduled,
	}
	if r.AppointmentDate != "" {
		t, err := time.Parse("2006-01-02", r.AppointmentDate)
		if err != nil {
			return nil, err
		}
		d := datatypes.Date(t)
		m.AppointmentDate = &d
	}
	if r.PreviousAppointmentRef != "" {
		m.PreviousAppointmentRef = &r.PreviousAppointmentRef
	}
	return m, nil
}

type UpdateAppointmentRequest struct {
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	AppointmentFor  string `json:"appointmentFor"`
	Status          string `json:"status"`
}

func (r *UpdateAppointmentRequest) Complete() bool {
	return r.AppointmentDate != "" && r.AppointmentTime != "" && r.AppointmentFor != ""
}
