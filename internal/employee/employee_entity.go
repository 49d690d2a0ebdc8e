package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AccountID    uuid.UUID  `gorm:"type:uuid;uniqueIndex:uq_employee_account;not null"`
	CompanyID    uuid.UUID  `gorm:"type:uuid;index;not null"`
	DepartmentID *uuid.UUID `gorm:"type:uuid"`
	// SupervisorID forms the reporting graph. It is an id reference resolved
	// by lookup; cycles are not rejected.
	SupervisorID *uuid.UUID `gorm:"type:uuid"`
	Position     string     `gorm:"type:varchar(150)"`
	Location     string     `gorm:"type:varchar(150)"`
	Bio          string     `gorm:"type:text"`
	ImageURL     string     `gorm:"type:varchar(1000)"`
	Tasks        string     `gorm:"type:varchar(500)"`
	Phone        string     `gorm:"type:varchar(50)"`
	Slack        string     `gorm:"type:varchar(50)"`
	IsAdmin      bool       `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Hobbies []EmployeeHobby `gorm:"foreignKey:EmployeeID"`
}

func (Employee) TableName() string {
	return "employees"
}

type EmployeeHobby struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;index;not null"`
	Hobby      string    `gorm:"type:varchar(150);not null"`
}

func (EmployeeHobby) TableName() string {
	return "employee_hobbies"
}
