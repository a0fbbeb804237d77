package model

import "time"

// RoleModel maps the shared roles lookup table.
type RoleModel struct {
	ID       int    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RoleName string `gorm:"column:role_name;size:50;not null" json:"role_name"`
}

func (RoleModel) TableName() string { return "roles" }

// UserModel maps the staff accounts table.
type UserModel struct {
	ID          int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username    string    `gorm:"column:username;size:50;uniqueIndex;not null" json:"username"`
	Email       string    `gorm:"column:email;size:100;not null" json:"email"`
	Password    string    `gorm:"column:password;size:255;not null" json:"-"`
	StaffNumber string    `gorm:"column:staff_number;size:50;uniqueIndex;not null" json:"staff_number"`
	FullName    string    `gorm:"column:full_name;size:100;not null" json:"full_name"`
	RoleID      int       `gorm:"column:role_id;not null;default:1" json:"role_id"`
	IsActive    bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string { return "users" }

// StudentModel maps the student accounts table (same shape as users, keyed by
// student_number instead of staff_number).
type StudentModel struct {
	ID            int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username      string    `gorm:"column:username;size:50;uniqueIndex;not null" json:"username"`
	Email         string    `gorm:"column:email;size:100;not null" json:"email"`
	Password      string    `gorm:"column:password;size:255;not null" json:"-"`
	StudentNumber string    `gorm:"column:student_number;size:50;uniqueIndex;not null" json:"student_number"`
	FullName      string    `gorm:"column:full_name;size:100;not null" json:"full_name"`
	RoleID        int       `gorm:"column:role_id;not null;default:1" json:"role_id"`
	IsActive      bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (StudentModel) TableName() string { return "students" }
