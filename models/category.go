package models

type Category struct {
	ID    string `gorm:"column:id;primaryKey;type:varchar(36)"`
	Name  string `gorm:"column:name;type:varchar(100);not null"`
	Audit `gorm:"embedded"`
}

func (Category) TableName() string { return "p_category" }

func (c *Category) InsertRow() (string, []string, []any) {
	return "p_category",
		[]string{"id", "name", "is_deleted", "deleted_at", "deleted_by", "created_at", "created_by", "updated_at", "updated_by"},
		[]any{c.ID, c.Name, c.IsDeleted, c.DeletedAt, c.DeletedBy, c.CreatedAt, c.CreatedBy, c.UpdatedAt, c.UpdatedBy}
}
