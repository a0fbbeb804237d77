package model

import "time"

// Approval states for a proof-of-registration upload.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// PORUploadModel maps por_uploads. student_number carries a unique index so a
// re-upload is a single upsert; the previous backend's check-then-branch
// insert/update could race and leave two rows for one student.
type PORUploadModel struct {
	ID             int        `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	StudentNumber  string     `gorm:"column:student_number;size:50;not null;uniqueIndex:uniq_por_student" json:"student_number"`
	FileName       string     `gorm:"column:file_name;size:255;not null" json:"file_name"`
	FilePath       *string    `gorm:"column:file_path;size:255" json:"file_path,omitempty"`
	FileSize       *int64     `gorm:"column:file_size" json:"file_size,omitempty"`
	Mimetype       *string    `gorm:"column:mimetype;size:100" json:"mimetype,omitempty"`
	UploadedAt     time.Time  `gorm:"column:uploaded_at;autoCreateTime" json:"uploaded_at"`
	ApprovalStatus string     `gorm:"column:approval_status;size:20;default:pending" json:"approval_status"`
	ApprovedAt     *time.Time `gorm:"column:approved_at" json:"approved_at,omitempty"`
}

func (PORUploadModel) TableName() string { return "por_uploads" }
