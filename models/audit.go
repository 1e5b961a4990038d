package models

import "time"

// Audit carries the common audit trail columns of the p_* tables. Deletion is
// a terminal attribute set at creation time; no generator flips it later.
type Audit struct {
	CreatedAt time.Time  `gorm:"column:created_at;not null"`
	CreatedBy int64      `gorm:"column:created_by;not null"`
	UpdatedAt time.Time  `gorm:"column:updated_at;not null"`
	UpdatedBy int64      `gorm:"column:updated_by;not null"`
	IsDeleted bool       `gorm:"column:is_deleted;not null"`
	DeletedAt *time.Time `gorm:"column:deleted_at"`
	DeletedBy *int64     `gorm:"column:deleted_by"`
}
