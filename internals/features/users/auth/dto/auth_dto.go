package dto

import (
	"strings"
	"time"

	"chwc_backend/internals/features/users/auth/model"
)

type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
	UserType   string `json:"userType"`
}

func (r *LoginRequest) Normalize() {
	r.Identifier = strings.TrimSpace(r.Identifier)
	r.UserType = strings.TrimSpace(strings.ToLower(r.UserType))
}

// StaffProfile is the login/user listing payload: the account row joined to
// its role name, with the password hash stripped.
type StaffProfile struct {
	ID          int       `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	StaffNumber string    `json:"staff_number"`
	FullName    string    `json:"full_name"`
	RoleID      int       `json:"role_id"`
	RoleName    string    `json:"role_name"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type StudentProfile struct {
	ID            int       `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	StudentNumber string    `json:"student_number"`
	FullName      string    `json:"full_name"`
	RoleID        int       `json:"role_id"`
	RoleName      string    `json:"role_name"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromUserModel(u *model.UserModel, roleName string) StaffProfile {
	return StaffProfile{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		StaffNumber: u.StaffNumber,
		FullName:    u.FullName,
		RoleID:      u.RoleID,
		RoleName:    roleName,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
	}
}

func FromStudentModel(s *model.StudentModel, roleName string) StudentProfile {
	return StudentProfile{
		ID:            s.ID,
		Username:      s.Username,
		Email:         s.Email,
		StudentNumber: s.StudentNumber,
		FullName:      s.FullName,
		RoleID:        s.RoleID,
		RoleName:      roleName,
		IsActive:      s.IsActive,
		CreatedAt:     s.CreatedAt,
	}
}

type CreateStudentRequest struct {
	Username      string `json:"username" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
	StudentNumber string `json:"studentNumber" validate:"required"`
	FullName      string `json:"fullName" validate:"required"`
	RoleID        int    `json:"roleId"`
}

func (r *CreateStudentRequest) ToModel(hashedPassword string) *model.StudentModel {
	roleID := r.RoleID
	if roleID == 0 {
		roleID = 1
	}
	return &model.StudentModel{
		Username:      r.Username,
		Email:         r.Email,
		Password:      hashedPassword,
		StudentNumber: r.StudentNumber,
		FullName:      r.FullName,
		RoleID:        roleID,
		IsActive:      true,
	}
}

type ResetStudentPasswordRequest struct {
	StudentNumber string `json:"studentNumber"`
	NewPassword   string `json:"newPassword"`
}
