package models

// Review is written only by a user with a completed order at the store.
type Review struct {
	ID      string  `gorm:"column:id;primaryKey;type:varchar(36)"`
	StoreID string  `gorm:"column:store_id;type:varchar(36);not null"`
	UserID  int64   `gorm:"column:user_id;not null"`
	Rating  int     `gorm:"column:rating;not null"`
	Content *string `gorm:"column:content;type:text"`
	Audit   `gorm:"embedded"`
}

func (Review) TableName() string { return "p_review" }

func (r *Review) InsertRow() (string, []string, []any) {
	return "p_review",
		[]string{"id", "store_id", "user_id", "rating", "content",
			"is_deleted", "deleted_at", "deleted_by", "created_at", "created_by", "updated_at", "updated_by"},
		[]any{r.ID, r.StoreID, r.UserID, r.Rating, r.Content,
			r.IsDeleted, r.DeletedAt, r.DeletedBy, r.CreatedAt, r.CreatedBy, r.UpdatedAt, r.UpdatedBy}
}
