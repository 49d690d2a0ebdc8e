package department

import (
	"time"

	"github.com/google/uuid"
)

// Department is shared across companies; there is deliberately no company
// reference on this table.
type Department struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(150);not null"`
	ColorHex  string    `gorm:"type:varchar(50)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Department) TableName() string {
	return "departments"
}
