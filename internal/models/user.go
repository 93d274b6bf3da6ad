package models

import (
	"time"

	"github.com/google/uuid"
)

// Roles a principal can hold. Students report and claim items, staff
// reconcile matches and verify claims.
const (
	RoleStudent = "student"
	RoleStaff   = "staff"
)

// User is the unified student/staff principal.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Email       string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	Phone       string    `gorm:"size:30" json:"phone"`
	Department  string    `gorm:"size:100" json:"department"`
	YearOfStudy int       `json:"year_of_study,omitempty"`
	Role        string    `gorm:"size:20;not null;default:'student';index" json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (u *User) IsStaff() bool { return u.Role == RoleStaff }
