package model

import (
	"time"

	"gorm.io/datatypes"
)

// Consent and referral values are closed sets; the form submits them as-is.
const (
	ConsentGive      = "give"
	ConsentDoNotGive = "doNotGive"

	TransportConsent      = "consent"
	TransportDoNotConsent = "doNotConsent"
)

// EmergencyReportModel maps emergency_onboarding: one row per incident,
// covering call intake, location, response, transport, patient, assessment,
// consent and discharge. Clock fields are HH:MM(:SS) strings, stored the way
// the form submits them.
type EmergencyReportModel struct {
	ID int `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	// Call intake.
	Date              datatypes.Date `gorm:"column:date;not null" json:"date"`
	TimeOfCall        string         `gorm:"column:time_of_call;size:10;not null" json:"time_of_call"`
	PersonResponsible string         `gorm:"column:person_responsible;size:255;not null" json:"person_responsible"`
	CallerName        string         `gorm:"column:caller_name;size:255;not null" json:"caller_name"`
	Department        string         `gorm:"column:department;size:255;not null" json:"department"`
	ContactNumber     string         `gorm:"column:contact_number;size:20;not null" json:"contact_number"`
	ProblemNature     string         `gorm:"column:problem_nature;type:text;not null" json:"problem_nature"`

	// Location.
	EastCampus      bool    `gorm:"column:east_campus;default:false" json:"east_campus"`
	WestCampus      bool    `gorm:"column:west_campus;default:false" json:"west_campus"`
	EducationCampus bool    `gorm:"column:education_campus;default:false" json:"education_campus"`
	OtherCampus     bool    `gorm:"column:other_campus;default:false" json:"other_campus"`
	Building        *string `gorm:"column:building;size:255" json:"building,omitempty"`
	RoomNumber      *string `gorm:"column:room_number;size:50" json:"room_number,omitempty"`
	Floor           *string `gorm:"column:floor;size:50" json:"floor,omitempty"`
	OtherLocation   *string `gorm:"column:other_location;size:255" json:"other_location,omitempty"`

	// Response.
	StaffInformed    string `gorm:"column:staff_informed;size:255;not null" json:"staff_informed"`
	NotificationTime string `gorm:"column:notification_time;size:10;not null" json:"notification_time"`
	TeamResponding   string `gorm:"column:team_responding;size:255;not null" json:"team_responding"`
	TimeLeftClinic   string `gorm:"column:time_left_clinic;size:10;not null" json:"time_left_clinic"`

	// Transport to the scene.
	ChwcVehicle          bool    `gorm:"column:chwc_vehicle;default:false" json:"chwc_vehicle"`
	SistersOnFoot        bool    `gorm:"column:sisters_on_foot;default:false" json:"sisters_on_foot"`
	OtherTransport       bool    `gorm:"column:other_transport;default:false" json:"other_transport"`
	OtherTransportDetail *string `gorm:"column:other_transport_detail;size:255" json:"other_transport_detail,omitempty"`
	ArrivalTime          string  `gorm:"column:arrival_time;size:10;not null" json:"arrival_time"`

	// Patient.
	StudentNumber  string `gorm:"column:student_number;size:50;not null" json:"student_number"`
	PatientName    string `gorm:"column:patient_name;size:255;not null" json:"patient_name"`
	PatientSurname string `gorm:"column:patient_surname;size:255;not null" json:"patient_surname"`

	// Assessment.
	PrimaryAssessment string `gorm:"column:primary_assessment;type:text;not null" json:"primary_assessment"`
	Intervention      string `gorm:"column:intervention;type:text;not null" json:"intervention"`

	// Consent.
	MedicalConsent   string         `gorm:"column:medical_consent;size:20;not null" json:"medical_consent"`
	TransportConsent string         `gorm:"column:transport_consent;size:20;not null" json:"transport_consent"`
	Signature        string         `gorm:"column:signature;size:255;not null" json:"signature"`
	ConsentDate      datatypes.Date `gorm:"column:consent_date;not null" json:"consent_date"`

	// Patient transport.
	PtChwcVehicle        bool    `gorm:"column:pt_chwc_vehicle;default:false" json:"pt_chwc_vehicle"`
	PtAmbulance          bool    `gorm:"column:pt_ambulance;default:false" json:"pt_ambulance"`
	PtOther              bool    `gorm:"column:pt_other;default:false" json:"pt_other"`
	PtOtherDetail        *string `gorm:"column:pt_other_detail;size:255" json:"pt_other_detail,omitempty"`
	PatientTransportedTo string  `gorm:"column:patient_transported_to;size:255;not null" json:"patient_transported_to"`
	DepartureTime        string  `gorm:"column:departure_time;size:10;not null" json:"departure_time"`

	// Discharge.
	ChwcArrivalTime    string  `gorm:"column:chwc_arrival_time;size:10;not null" json:"chwc_arrival_time"`
	ExistingFile       string  `gorm:"column:existing_file;size:10;not null" json:"existing_file"`
	Referred           string  `gorm:"column:referred;size:10;not null" json:"referred"`
	HospitalName       *string `gorm:"column:hospital_name;size:255" json:"hospital_name,omitempty"`
	DischargeCondition string  `gorm:"column:discharge_condition;type:text;not null" json:"discharge_condition"`
	DischargeTime      string  `gorm:"column:discharge_time;size:10;not null" json:"discharge_time"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (EmergencyReportModel) TableName() string { return "emergency_onboarding" }
