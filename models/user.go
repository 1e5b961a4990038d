package models

type User struct {
	ID            int64  `gorm:"column:id;primaryKey"`
	Name          string `gorm:"column:name;type:varchar(255);not null"`
	Nickname      string `gorm:"column:nickname;type:varchar(100);unique;not null"`
	Email         string `gorm:"column:email;type:varchar(255);unique;not null"`
	Male          bool   `gorm:"column:male;not null"`
	Age           int    `gorm:"column:age;not null"`
	RoadAddress   string `gorm:"column:road_address;type:varchar(255)"`
	AddressDetail string `gorm:"column:address_detail;type:varchar(255)"`
	Role          string `gorm:"column:role;type:varchar(20);not null"`
	Audit         `gorm:"embedded"`
}

func (User) TableName() string { return "p_user" }

func (u *User) InsertRow() (string, []string, []any) {
	return "p_user",
		[]string{"id", "name", "nickname", "email", "male", "age", "road_address", "address_detail", "role",
			"created_at", "created_by", "updated_at", "updated_by", "is_deleted", "deleted_at", "deleted_by"},
		[]any{u.ID, u.Name, u.Nickname, u.Email, u.Male, u.Age, u.RoadAddress, u.AddressDetail, u.Role,
			u.CreatedAt, u.CreatedBy, u.UpdatedAt, u.UpdatedBy, u.IsDeleted, u.DeletedAt, u.DeletedBy}
}

// UserAuth pairs every user with a verifiable password digest. The plaintext
// behind the digest is always the user's nickname.
type UserAuth struct {
	ID             string `gorm:"column:id;primaryKey;type:varchar(36)"`
	UserID         int64  `gorm:"column:user_id;not null"`
	HashedPassword string `gorm:"column:hashed_password;type:varchar(255);not null"`
	Audit          `gorm:"embedded"`
}

func (UserAuth) TableName() string { return "p_user_auth" }

func (a *UserAuth) InsertRow() (string, []string, []any) {
	return "p_user_auth",
		[]string{"id", "user_id", "hashed_password",
			"created_at", "created_by", "updated_at", "updated_by", "is_deleted", "deleted_at", "deleted_by"},
		[]any{a.ID, a.UserID, a.HashedPassword,
			a.CreatedAt, a.CreatedBy, a.UpdatedAt, a.UpdatedBy, a.IsDeleted, a.DeletedAt, a.DeletedBy}
}
