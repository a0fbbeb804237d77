package model

import (
	"time"

	"gorm.io/datatypes"
)

// OnboardingStudentModel maps onboarding_students: the demographic and medical
// intake form a student completes once, signature included.
type OnboardingStudentModel struct {
	ID            int            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	StudentNumber string         `gorm:"column:student_number;size:50;not null;index" json:"student_number"`
	Surname       string         `gorm:"column:surname;size:100;not null" json:"surname"`
	FullNames     string         `gorm:"column:full_names;size:100;not null" json:"full_names"`
	DateOfBirth   datatypes.Date `gorm:"column:date_of_birth" json:"date_of_birth"`
	Gender        string         `gorm:"column:gender;size:20;not null" json:"gender"`
	OtherGender   *string        `gorm:"column:other_gender;size:50" json:"other_gender,omitempty"`

	PhysicalAddress string  `gorm:"column:physical_address;size:255;not null" json:"physical_address"`
	PostalAddress   string  `gorm:"column:postal_address;size:255;not null" json:"postal_address"`
	Code            string  `gorm:"column:code;size:20;not null" json:"code"`
	Email           string  `gorm:"column:email;size:100;not null" json:"email"`
	Cell            string  `gorm:"column:cell;size:20;not null" json:"cell"`
	AltNumber       *string `gorm:"column:alt_number;size:20" json:"alt_number,omitempty"`

	EmergencyName    string  `gorm:"column:emergency_name;size:100;not null" json:"emergency_name"`
	EmergencyRelation string `gorm:"column:emergency_relation;size:50;not null" json:"emergency_relation"`
	EmergencyWorkTel *string `gorm:"column:emergency_work_tel;size:20" json:"emergency_work_tel,omitempty"`
	EmergencyCell    string  `gorm:"column:emergency_cell;size:20;not null" json:"emergency_cell"`

	MedicalConditions    string  `gorm:"column:medical_conditions;size:10;not null" json:"medical_conditions"`
	Operations           string  `gorm:"column:operations;size:10;not null" json:"operations"`
	ConditionsDetails    *string `gorm:"column:conditions_details;type:text" json:"conditions_details,omitempty"`
	Disability           string  `gorm:"column:disability;size:10;not null" json:"disability"`
	DisabilityDetails    *string `gorm:"column:disability_details;type:text" json:"disability_details,omitempty"`
	Medication           string  `gorm:"column:medication;size:10;not null" json:"medication"`
	MedicationDetails    *string `gorm:"column:medication_details;type:text" json:"medication_details,omitempty"`
	OtherConditions      *string `gorm:"column:other_conditions;type:text" json:"other_conditions,omitempty"`
	Congenital           string  `gorm:"column:congenital;size:10;not null" json:"congenital"`
	FamilyOther          *string `gorm:"column:family_other;type:text" json:"family_other,omitempty"`
	Smoking              string  `gorm:"column:smoking;size:10;not null" json:"smoking"`
	Recreation           string  `gorm:"column:recreation;size:10;not null" json:"recreation"`
	Psychological        string  `gorm:"column:psychological;size:10;not null" json:"psychological"`
	PsychologicalDetails *string `gorm:"column:psychological_details;type:text" json:"psychological_details,omitempty"`

	Date          datatypes.Date `gorm:"column:date" json:"date"`
	SignatureData *string        `gorm:"column:signature_data;type:longtext" json:"signature_data,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (OnboardingStudentModel) TableName() string { return "onboarding_students" }
