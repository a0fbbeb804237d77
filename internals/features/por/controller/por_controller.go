package controller

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"chwc_backend/internals/configs"
	"chwc_backend/internals/constants"
	"chwc_backend/internals/features/por/dto"
	"chwc_backend/internals/features/por/model"
	"chwc_backend/internals/features/por/service"
	helper "chwc_backend/internals/helpers"
)

type PORController struct {
	DB *gorm.DB
}

func NewPORController(db *gorm.DB) *PORController {
	return &PORController{DB: db}
}

// Upload receives the proof-of-registration document. A re-upload replaces
// the student's row in place: metadata swapped, status back to pending,
// approval timestamp cleared. The unique index on student_number makes the
// whole thing a single upsert, so two concurrent first uploads still end in
// one row.
func (pc *PORController) Upload(c *fiber.Ctx) error {
	studentNumber := c.FormValue("studentNumber")
	if studentNumber == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student number is required")
	}

	fh, err := c.FormFile("document")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "No file uploaded")
	}
	if fh.Size > constants.MaxUploadSize {
		return helper.JsonError(c, fiber.StatusBadRequest, "File too large. Maximum size is 10MB")
	}

	if !constants.IsAllowedUploadExt(fh.Filename) {
		src, err := fh.Open()
		if err != nil {
			return helper.JsonDBError(c, "Error reading uploaded file", err)
		}
		detected, derr := mimetype.DetectReader(src)
		src.Close()
		if derr != nil || !constants.IsAllowedUploadMime(detected.String()) {
			return helper.JsonError(c, fiber.StatusBadRequest, "File type not supported")
		}
	}

	stored, err := service.SaveUpload(configs.UploadDir, fh)
	if err != nil {
		log.Println("[ERROR] saving por upload:", err)
		return helper.JsonDBError(c, "Error saving uploaded file", err)
	}
	mime := fh.Header.Get("Content-Type")
	originalName := filepath.Base(fh.Filename)

	// The row keeps the client's file name; only the disk path carries the
	// timestamp prefix.
	record := model.PORUploadModel{
		StudentNumber:  studentNumber,
		FileName:       originalName,
		FilePath:       &stored.Path,
		FileSize:       &stored.Size,
		Mimetype:       optionalStr(mime),
		UploadedAt:     time.Now(),
		ApprovalStatus: model.StatusPending,
		ApprovedAt:     nil,
	}
	err = pc.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "student_number"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"file_name":       record.FileName,
			"file_path":       record.FilePath,
			"file_size":       record.FileSize,
			"mimetype":        record.Mimetype,
			"uploaded_at":     record.UploadedAt,
			"approval_status": model.StatusPending,
			"approved_at":     nil,
		}),
	}).Create(&record).Error
	if err != nil {
		log.Println("[ERROR] recording por upload:", err)
		return helper.JsonDBError(c, "Error saving file record", err)
	}

	return c.JSON(fiber.Map{
		"message": "File saved successfully!",
		"file": fiber.Map{
			"filename":      stored.Name,
			"originalName":  originalName,
			"size":          stored.Size,
			"mimetype":      mime,
			"path":          stored.Path,
			"studentNumber": studentNumber,
			"uploadDate":    record.UploadedAt,
		},
	})
}

// Latest returns a student's most recent upload, or 404.
func (pc *PORController) Latest(c *fiber.Ctx) error {
	studentNumber := c.Params("studentNumber")

	var record model.PORUploadModel
	err := pc.DB.Where("student_number = ?", studentNumber).
		Order("uploaded_at DESC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "No POR found for this student")
		}
		return helper.JsonDBError(c, "Error fetching POR", err)
	}
	return c.JSON(fiber.Map{"por": record})
}

// Decide records an approval or rejection against the student's latest
// upload. approved_at is set only on approval; a rejection clears it.
func (pc *PORController) Decide(c *fiber.Ctx) error {
	studentNumber := c.Params("studentNumber")

	var req dto.DecisionRequest
	if err := c.BodyParser(&req); err != nil || !req.Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Invalid decision. Must be 'approved' or 'rejected'")
	}

	// approved_at has to be an untyped nil here: a typed nil pointer in the
	// updates map is not written out as NULL.
	updates := map[string]interface{}{
		"approval_status": req.Decision,
		"approved_at":     nil,
	}
	if req.Decision == model.StatusApproved {
		updates["approved_at"] = time.Now()
	}

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		var record model.PORUploadModel
		if err := tx.Where("student_number = ?", studentNumber).
			Order("uploaded_at DESC").
			First(&record).Error; err != nil {
			return err
		}
		return tx.Model(&model.PORUploadModel{}).
			Where("id = ?", record.ID).
			Updates(updates).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "No POR found for this student")
		}
		log.Println("[ERROR] recording por decision:", err)
		return helper.JsonDBError(c, "Error updating approval status", err)
	}

	return c.JSON(fiber.Map{"message": "POR " + req.Decision + " successfully"})
}

// Check reports whether a student has an upload and whether it is approved.
func (pc *PORController) Check(c *fiber.Ctx) error {
	var req dto.CheckPORRequest
	if err := c.BodyParser(&req); err != nil || req.StudentNumber == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student number is required")
	}

	service.EnsureApprovalColumns(pc.DB)

	var record model.PORUploadModel
	err := pc.DB.Where("student_number = ?", req.StudentNumber).
		Order("uploaded_at DESC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(fiber.Map{"exists": false, "approved": false})
		}
		return helper.JsonDBError(c, "Error checking POR status", err)
	}

	return c.JSON(fiber.Map{
		"exists":   true,
		"approved": record.ApprovalStatus == model.StatusApproved,
	})
}

// StudentFiles lists a student's upload metadata, path excluded.
func (pc *PORController) StudentFiles(c *fiber.Ctx) error {
	studentNumber := c.Params("studentNumber")

	var records []model.PORUploadModel
	if err := pc.DB.Where("student_number = ?", studentNumber).
		Order("uploaded_at DESC").
		Find(&records).Error; err != nil {
		return helper.JsonDBError(c, "Error fetching files", err)
	}

	entries := make([]dto.FileEntry, 0, len(records))
	for i := range records {
		entries = append(entries, dto.ToFileEntry(&records[i]))
	}
	return c.JSON(fiber.Map{
		"files": entries,
		"count": len(entries),
	})
}

// Download streams a stored file back with its persisted MIME type. A row
// whose file no longer exists on disk reads as 404, same as a missing row.
func (pc *PORController) Download(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid file id")
	}

	var record model.PORUploadModel
	if err := pc.DB.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "File not found")
		}
		return helper.JsonDBError(c, "Error fetching file", err)
	}
	if record.FilePath == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "File not found")
	}
	if _, err := os.Stat(*record.FilePath); err != nil {
		log.Println("[WARN] por file missing on disk:", *record.FilePath)
		return helper.JsonError(c, fiber.StatusNotFound, "File not found on server")
	}

	if record.Mimetype != nil {
		c.Set(fiber.HeaderContentType, *record.Mimetype)
	}
	return c.Download(*record.FilePath, record.FileName)
}

// ListAll is the admin view over every upload row, trimmed to identifying
// metadata.
func (pc *PORController) ListAll(c *fiber.Ctx) error {
	var records []model.PORUploadModel
	if err := pc.DB.Order("uploaded_at DESC").Find(&records).Error; err != nil {
		return helper.JsonDBError(c, "Error fetching POR uploads", err)
	}

	uploads := make([]dto.UploadSummary, 0, len(records))
	for i := range records {
		uploads = append(uploads, dto.ToUploadSummary(&records[i]))
	}
	return c.JSON(fiber.Map{
		"uploads": uploads,
		"count":   len(uploads),
	})
}

// UpdateTableStructure re-runs the approval-column migration on demand.
func (pc *PORController) UpdateTableStructure(c *fiber.Ctx) error {
	service.EnsureSchema(pc.DB)
	return c.JSON(fiber.Map{"message": "por_uploads table structure is up to date"})
}

func optionalStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
