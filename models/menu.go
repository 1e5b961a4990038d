package models

type Menu struct {
	ID          string  `gorm:"column:menu_id;primaryKey;type:varchar(36)"`
	StoreID     string  `gorm:"column:store_id;type:varchar(36);not null"`
	Name        string  `gorm:"column:name;type:varchar(255);not null"`
	Category    string  `gorm:"column:category;type:varchar(100)"`
	Price       int64   `gorm:"column:price;not null"`
	Description string  `gorm:"column:description;type:text"`
	ImageURL    *string `gorm:"column:image_url;type:varchar(255)"`
	IsAvailable bool    `gorm:"column:is_available;not null"`
	IsHidden    bool    `gorm:"column:is_hidden;not null"`
	Audit       `gorm:"embedded"`
}

func (Menu) TableName() string { return "p_menu" }

func (m *Menu) InsertRow() (string, []string, []any) {
	return "p_menu",
		[]string{"menu_id", "store_id", "name", "category", "price", "description", "image_url", "is_available", "is_hidden",
			"is_deleted", "deleted_at", "deleted_by", "created_at", "created_by", "updated_at", "updated_by"},
		[]any{m.ID, m.StoreID, m.Name, m.Category, m.Price, m.Description, m.ImageURL, m.IsAvailable, m.IsHidden,
			m.IsDeleted, m.DeletedAt, m.DeletedBy, m.CreatedAt, m.CreatedBy, m.UpdatedAt, m.UpdatedBy}
}

type MenuOption struct {
	ID          string `gorm:"column:option_id;primaryKey;type:varchar(36)"`
	MenuID      string `gorm:"column:menu_id;type:varchar(36);not null"`
	Name        string `gorm:"column:name;type:varchar(100);not null"`
	Detail      string `gorm:"column:detail;type:varchar(100);not null"`
	Price       int64  `gorm:"column:price;not null"`
	IsAvailable bool   `gorm:"column:is_available;not null"`
	IsHidden    bool   `gorm:"column:is_hidden;not null"`
	Audit       `gorm:"embedded"`
}

func (MenuOption) TableName() string { return "p_menu_option" }

func (o *MenuOption) InsertRow() (string, []string, []any) {
	return "p_menu_option",
		[]string{"option_id", "menu_id", "name", "detail", "price", "is_available", "is_hidden",
			"is_deleted", "deleted_at", "deleted_by", "created_at", "created_by", "updated_at", "updated_by"},
		[]any{o.ID, o.MenuID, o.Name, o.Detail, o.Price, o.IsAvailable, o.IsHidden,
			o.IsDeleted, o.DeletedAt, o.DeletedBy, o.CreatedAt, o.CreatedBy, o.UpdatedAt, o.UpdatedBy}
}

// MenuOrigin is an origin-disclosure row for one ingredient of a menu.
type MenuOrigin struct {
	ID             string `gorm:"column:id;primaryKey;type:varchar(36)"`
	MenuID         string `gorm:"column:menu_id;type:varchar(36);not null"`
	OriginName     string `gorm:"column:origin_name;type:varchar(100);not null"`
	IngredientName string `gorm:"column:ingredient_name;type:varchar(100);not null"`
	Audit          `gorm:"embedded"`
}

func (MenuOrigin) TableName() string { return "p_origin" }

func (o *MenuOrigin) InsertRow() (string, []string, []any) {
	return "p_origin",
		[]string{"id", "menu_id", "origin_name", "ingredient_name",
			"is_deleted", "deleted_at", "deleted_by", "created_at", "created_by", "updated_at", "updated_by"},
		[]any{o.ID, o.MenuID, o.OriginName, o.IngredientName,
			o.IsDeleted, o.DeletedAt, o.DeletedBy, o.CreatedAt, o.CreatedBy, o.UpdatedAt, o.UpdatedBy}
}
