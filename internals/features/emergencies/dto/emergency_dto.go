package dto

import (
	"fmt"
	"time"

	"gorm.io/datatypes"

	"chwc_backend/internals/features/emergencies/model"
)

// EmergencyReportRequest carries the full incident form. The same shape is
// used for create and update; only create enforces the required set.
type EmergencyReportRequest struct {
	Date              string `json:"date"`
	TimeOfCall        string `json:"timeOfCall"`
	PersonResponsible string `json:"personResponsible"`
	CallerName        string `json:"callerName"`
	Department        string `json:"department"`
	ContactNumber     string `json:"contactNumber"`
	ProblemNature     string `json:"problemNature"`

	EastCampus      bool   `json:"eastCampus"`
	WestCampus      bool   `json:"westCampus"`
	EducationCampus bool   `json:"educationCampus"`
	OtherCampus     bool   `json:"otherCampus"`
	Building        string `json:"building"`
	RoomNumber      string `json:"roomNumber"`
	Floor           string `json:"floor"`
	OtherLocation   string `json:"otherLocation"`

	StaffInformed    string `json:"staffInformed"`
	NotificationTime string `json:"notificationTime"`
	TeamResponding   string `json:"teamResponding"`
	TimeLeftClinic   string `json:"timeLeftClinic"`

	ChwcVehicle          bool   `json:"chwcVehicle"`
	SistersOnFoot        bool   `json:"sistersOnFoot"`
	OtherTransport       bool   `json:"otherTransport"`
	OtherTransportDetail string `json:"otherTransportDetail"`
	ArrivalTime          string `json:"arrivalTime"`

	StudentNumber  string `json:"studentNumber"`
	PatientName    string `json:"patientName"`
	PatientSurname string `json:"patientSurname"`

	PrimaryAssessment string `json:"primaryAssessment"`
	Intervention      string `json:"intervention"`

	MedicalConsent   string `json:"medicalConsent"`
	TransportConsent string `json:"transportConsent"`
	Signature        string `json:"signature"`
	ConsentDate      string `json:"consentDate"`

	PtChwcVehicle        bool   `json:"ptCHWCVehicle"`
	PtAmbulance          bool   `json:"ptAmbulance"`
	PtOther              bool   `json:"ptOther"`
	PtOtherDetail        string `json:"ptOtherDetail"`
	PatientTransportedTo string `json:"patientTransportedTo"`
	DepartureTime        string `json:"departureTime"`

	ChwcArrivalTime    string `json:"chwcArrivalTime"`
	ExistingFile       string `json:"existingFile"`
	Referred           string `json:"referred"`
	HospitalName       string `json:"hospitalName"`
	DischargeCondition string `json:"dischargeCondition"`
	DischargeTime      string `json:"dischargeTime"`
}

// FirstMissing returns the first empty required field, in form order, or ""
// when the form is complete. Only submission checks this; edits go through
// unchecked.
func (r *EmergencyReportRequest) FirstMissing() string {
	required := []struct {
		name  string
		value string
	}{
		{"date", r.Date},
		{"timeOfCall", r.TimeOfCall},
		{"personResponsible", r.PersonResponsible},
		{"callerName", r.CallerName},
		{"department", r.Department},
		{"contactNumber", r.ContactNumber},
		{"problemNature", r.ProblemNature},
		{"staffInformed", r.StaffInformed},
		{"notificationTime", r.NotificationTime},
		{"teamResponding", r.TeamResponding},
		{"timeLeftClinic", r.TimeLeftClinic},
		{"arrivalTime", r.ArrivalTime},
		{"studentNumber", r.StudentNumber},
		{"patientName", r.PatientName},
		{"patientSurname", r.PatientSurname},
		{"primaryAssessment", r.PrimaryAssessment},
		{"intervention", r.Intervention},
		{"medicalConsent", r.MedicalConsent},
		{"transportConsent", r.TransportConsent},
		{"signature", r.Signature},
		{"consentDate", r.ConsentDate},
		{"patientTransportedTo", r.PatientTransportedTo},
		{"departureTime", r.DepartureTime},
		{"chwcArrivalTime", r.ChwcArrivalTime},
		{"existingFile", r.ExistingFile},
		{"referred", r.Referred},
		{"dischargeCondition", r.DischargeCondition},
		{"dischargeTime", r.DischargeTime},
	}
	for _, f := range required {
		if f.value == "" {
			return f.name
		}
	}
	return ""
}

func (r *EmergencyReportRequest) ToModel() (*model.EmergencyReportModel, error) {
	date, err := parseDate(r.Date, "date")
	if err != nil {
		return nil, err
	}
	consentDate, err := parseDate(r.ConsentDate, "consentDate")
	if err != nil {
		return nil, err
	}

	return &model.EmergencyReportModel{
		Date:              date,
		TimeOfCall:        r.TimeOfCall,
		PersonResponsible: r.PersonResponsible,
		CallerName:        r.CallerName,
		Department:        r.Department,
		ContactNumber:     r.ContactNumber,
		ProblemNature:     r.ProblemNature,

		EastCampus:      r.EastCampus,
		WestCampus:      r.WestCampus,
		EducationCampus: r.EducationCampus,
		OtherCampus:     r.OtherCampus,
		Building:        optional(r.Building),
		RoomNumber:      optional(r.RoomNumber),
		Floor:           optional(r.Floor),
		OtherLocation:   optional(r.OtherLocation),

		StaffInformed:    r.StaffInformed,
		NotificationTime: r.NotificationTime,
		TeamResponding:   r.TeamResponding,
		TimeLeftClinic:   r.TimeLeftClinic,

		ChwcVehicle:          r.ChwcVehicle,
		SistersOnFoot:        r.SistersOnFoot,
		OtherTransport:       r.OtherTransport,
		OtherTransportDetail: optional(r.OtherTransportDetail),
		ArrivalTime:          r.ArrivalTime,

		StudentNumber:  r.StudentNumber,
		PatientName:    r.PatientName,
		PatientSurname: r.PatientSurname,

		PrimaryAssessment: r.PrimaryAssessment,
		Intervention:      r.Intervention,

		MedicalConsent:   r.MedicalConsent,
		TransportConsent: r.TransportConsent,
		Signature:        r.Signature,
		ConsentDate:      consentDate,

		PtChwcVehicle:        r.PtChwcVehicle,
		PtAmbulance:          r.PtAmbulance,
		PtOther:              r.PtOther,
		PtOtherDetail:        optional(r.PtOtherDetail),
		PatientTransportedTo: r.PatientTransportedTo,
		DepartureTime:        r.DepartureTime,

		ChwcArrivalTime:    r.ChwcArrivalTime,
		ExistingFile:       r.ExistingFile,
		Referred:           r.Referred,
		HospitalName:       optional(r.HospitalName),
		DischargeCondition: r.DischargeCondition,
		DischargeTime:      r.DischargeTime,
	}, nil
}

// ReportSummary is the listing shape: enough to identify an incident without
// the full form.
type ReportSummary struct {
	ID             int            `json:"id"`
	Date           datatypes.Date `json:"date"`
	TimeOfCall     string         `json:"time_of_call"`
	CallerName     string         `json:"caller_name"`
	Department     string         `json:"department"`
	PatientName    string         `json:"patient_name"`
	PatientSurname string         `json:"patient_surname"`
	StudentNumber  string         `json:"student_number"`
	CreatedAt      time.Time      `json:"created_at"`
}

func parseDate(s, field string) (datatypes.Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return datatypes.Date{}, fmt.Errorf("invalid %s: %w", field, err)
	}
	return datatypes.Date(t), nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
