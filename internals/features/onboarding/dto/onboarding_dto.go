package dto

import (
	"fmt"
	"time"

	"gorm.io/datatypes"

	"chwc_backend/internals/features/onboarding/model"
)

type OnboardingRequest struct {
	StudentNumber string `json:"studentNumber" validate:"required"`
	Surname       string `json:"surname" validate:"required"`
	FullNames     string `json:"fullNames" validate:"required"`
	DateOfBirth   string `json:"dateOfBirth" validate:"required"`
	Gender        string `json:"gender" validate:"required"`
	OtherGender   string `json:"otherGender"`

	PhysicalAddress string `json:"physicalAddress" validate:"required"`
	PostalAddress   string `json:"postalAddress" validate:"required"`
	Code            string `json:"code" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Cell            string `json:"cell" validate:"required"`
	AltNumber       string `json:"altNumber"`

	EmergencyName     string `json:"emergencyName" validate:"required"`
	EmergencyRelation string `json:"emergencyRelation" validate:"required"`
	EmergencyWorkTel  string `json:"emergencyWorkTel"`
	EmergencyCell     string `json:"emergencyCell" validate:"required"`

	MedicalConditions    string `json:"medicalConditions" validate:"required"`
	Operations           string `json:"operations" validate:"required"`
	ConditionsDetails    string `json:"conditionsDetails"`
	Disability           string `json:"disability" validate:"required"`
	DisabilityDetails    string `json:"disabilityDetails"`
	Medication           string `json:"medication" validate:"required"`
	MedicationDetails    string `json:"medicationDetails"`
	OtherConditions      string `json:"otherConditions"`
	Congenital           string `json:"congenital" validate:"required"`
	FamilyOther          string `json:"familyOther"`
	Smoking              string `json:"smoking" validate:"required"`
	Recreation           string `json:"recreation" validate:"required"`
	Psychological        string `json:"psychological" validate:"required"`
	PsychologicalDetails string `json:"psychologicalDetails"`

	Date          string `json:"date" validate:"required"`
	SignatureData string `json:"signatureData"`
}

// ToModel parses the two date strings and maps optional fields to NULLs.
func (r *OnboardingRequest) ToModel() (*model.OnboardingStudentModel, error) {
	dob, err := parseDate(r.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("invalid dateOfBirth: %w", err)
	}
	formDate, err := parseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	return &model.OnboardingStudentModel{
		StudentNumber: r.StudentNumber,
		Surname:       r.Surname,
		FullNames:     r.FullNames,
		DateOfBirth:   dob,
		Gender:        r.Gender,
		OtherGender:   optional(r.OtherGender),

		PhysicalAddress: r.PhysicalAddress,
		PostalAddress:   r.PostalAddress,
		Code:            r.Code,
		Email:           r.Email,
		Cell:            r.Cell,
		AltNumber:       optional(r.AltNumber),

		EmergencyName:     r.EmergencyName,
		EmergencyRelation: r.EmergencyRelation,
		EmergencyWorkTel:  optional(r.EmergencyWorkTel),
		EmergencyCell:     r.EmergencyCell,

		MedicalConditions:    r.MedicalConditions,
		Operations:           r.Operations,
		ConditionsDetails:    optional(r.ConditionsDetails),
		Disability:           r.Disability,
		DisabilityDetails:    optional(r.DisabilityDetails),
		Medication:           r.Medication,
		MedicationDetails:    optional(r.MedicationDetails),
		OtherConditions:      optional(r.OtherConditions),
		Congenital:           r.Congenital,
		FamilyOther:          optional(r.FamilyOther),
		Smoking:              r.Smoking,
		Recreation:           r.Recreation,
		Psychological:        r.Psychological,
		PsychologicalDetails: optional(r.PsychologicalDetails),

		Date:          formDate,
		SignatureData: optional(r.SignatureData),
	}, nil
}

// OnboardingReportRow is the shape the registrations report consumes: the
// student number doubles as the row id, as the previous backend aliased it.
type OnboardingReportRow struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
	Date string `json:"date"`
}

func ToReportRow(m *model.OnboardingStudentModel) OnboardingReportRow {
	return OnboardingReportRow{
		ID:   m.StudentNumber,
		Name: m.Surname + ", " + m.FullNames,
		Role: "Student",
		Date: time.Time(m.Date).Format("2006-01-02"),
	}
}

func parseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
