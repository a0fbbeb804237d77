package dto

import (
	"time"

	"chwc_backend/internals/features/por/model"
)

type DecisionRequest struct {
	Decision string `json:"decision"`
}

func (r *DecisionRequest) Valid() bool {
	return r.Decision == model.StatusApproved || r.Decision == model.StatusRejected
}

type CheckPORRequest struct {
	StudentNumber string `json:"studentNumber"`
}

// FileEntry is the metadata shape for student-files listings: everything
// except the on-disk path.
type FileEntry struct {
	ID             int       `json:"id"`
	FileName       string    `json:"file_name"`
	FileSize       *int64    `json:"file_size,omitempty"`
	Mimetype       *string   `json:"mimetype,omitempty"`
	UploadedAt     time.Time `json:"uploaded_at"`
	ApprovalStatus string    `json:"approval_status"`
}

func ToFileEntry(m *model.PORUploadModel) FileEntry {
	return FileEntry{
		ID:             m.ID,
		FileName:       m.FileName,
		FileSize:       m.FileSize,
		Mimetype:       m.Mimetype,
		UploadedAt:     m.UploadedAt,
		ApprovalStatus: m.ApprovalStatus,
	}
}

// UploadSummary is the admin listing row: identification only, no path or
// size.
type UploadSummary struct {
	ID            int       `json:"id"`
	StudentNumber string    `json:"student_number"`
	FileName      string    `json:"file_name"`
	UploadedAt    time.Time `json:"uploaded_at"`
}

func ToUploadSummary(m *model.PORUploadModel) UploadSummary {
	return UploadSummary{
		ID:            m.ID,
		StudentNumber: m.StudentNumber,
		FileName:      m.FileName,
		UploadedAt:    m.UploadedAt,
	}
}
