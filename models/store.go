package models

type Store struct {
	ID            string `gorm:"column:id;primaryKey;type:varchar(36)"`
	Name          string `gorm:"column:name;type:varchar(255);not null"`
	RoadAddress   string `gorm:"column:road_address;type:varchar(255)"`
	AddressDetail string `gorm:"column:address_detail;type:varchar(255)"`
	PhoneNumber   string `gorm:"column:phone_number;type:varchar(30)"`
	OpenTime      string `gorm:"column:open_time;type:varchar(8)"`
	CloseTime     string `gorm:"column:close_time;type:varchar(8)"`
	Status        string `gorm:"column:status;type:varchar(20);not null"`
	Audit         `gorm:"embedded"`
}

func (Store) TableName() string { return "p_store" }

func (s *Store) InsertRow() (string, []string, []any) {
	return "p_store",
		[]string{"id", "name", "road_address", "address_detail", "phone_number", "open_time", "close_time", "status",
			"is_deleted", "deleted_at", "deleted_by", "created_at", "created_by", "updated_at", "updated_by"},
		[]any{s.ID, s.Name, s.RoadAddress, s.AddressDetail, s.PhoneNumber, s.OpenTime, s.CloseTime, s.Status,
			s.IsDeleted, s.DeletedAt, s.DeletedBy, s.CreatedAt, s.CreatedBy, s.UpdatedAt, s.UpdatedBy}
}

// StoreCategory links a store to one of its 1-3 categories.
type StoreCategory struct {
	ID         string `gorm:"column:id;primaryKey;type:varchar(36)"`
	StoreID    string `gorm:"column:store_id;type:varchar(36);not null"`
	CategoryID string `gorm:"column:category_id;type:varchar(36);not null"`
	Audit      `gorm:"embedded"`
}

func (StoreCategory) TableName() string { return "p_store_category" }

func (sc *StoreCategory) InsertRow() (string, []string, []any) {
	return "p_store_category",
		[]string{"id", "store_id", "category_id",
			"created_at", "created_by", "updated_at", "updated_by", "is_deleted", "deleted_at", "deleted_by"},
		[]any{sc.ID, sc.StoreID, sc.CategoryID,
			sc.CreatedAt, sc.CreatedBy, sc.UpdatedAt, sc.UpdatedBy, sc.IsDeleted, sc.DeletedAt, sc.DeletedBy}
}

// StoreUser links a store to its single owning user.
type StoreUser struct {
	ID      string `gorm:"column:id;primaryKey;type:varchar(36)"`
	StoreID string `gorm:"column:store_id;type:varchar(36);not null"`
	UserID  int64  `gorm:"column:user_id;not null"`
	Audit   `gorm:"embedded"`
}

func (StoreUser) TableName() string { return "p_store_user" }

func (su *StoreUser) InsertRow() (string, []string, []any) {
	return "p_store_user",
		[]string{"id", "store_id", "user_id",
			"created_at", "created_by", "updated_at", "updated_by", "is_deleted", "deleted_at", "deleted_by"},
		[]any{su.ID, su.StoreID, su.UserID,
			su.CreatedAt, su.CreatedBy, su.UpdatedAt, su.UpdatedBy, su.IsDeleted, su.DeletedAt, su.DeletedBy}
}
