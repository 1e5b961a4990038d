package models

import "time"

// Payment amount is the exact sum of the order's item and option totals.
type Payment struct {
	ID             string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	UserID         int64     `gorm:"column:user_id;not null"`
	OrderID        string    `gorm:"column:order_id;type:varchar(36);not null"`
	PaymentTitle   string    `gorm:"column:payment_title;type:varchar(255);not null"`
	PaymentContent string    `gorm:"column:payment_content;type:varchar(255)"`
	PaymentMethod  string    `gorm:"column:payment_method;type:varchar(20);not null"`
	PaymentAmount  int64     `gorm:"column:payment_amount;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;not null"`
	CreatedBy      int64     `gorm:"column:created_by;not null"`
}

func (Payment) TableName() string { return "p_payment" }

func (p *Payment) InsertRow() (string, []string, []any) {
	return "p_payment",
		[]string{"id", "user_id", "order_id", "payment_title", "payment_content", "payment_method", "payment_amount", "created_at", "created_by"},
		[]any{p.ID, p.UserID, p.OrderID, p.PaymentTitle, p.PaymentContent, p.PaymentMethod, p.PaymentAmount, p.CreatedAt, p.CreatedBy}
}

type PaymentHistory struct {
	ID            string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	PaymentID     string    `gorm:"column:payment_id;type:varchar(36);not null"`
	PaymentStatus string    `gorm:"column:payment_status;type:varchar(20);not null"`
	CreatedAt     time.Time `gorm:"column:created_at;not null"`
	CreatedBy     int64     `gorm:"column:created_by;not null"`
}

func (PaymentHistory) TableName() string { return "p_payment_history" }

func (h *PaymentHistory) InsertRow() (string, []string, []any) {
	return "p_payment_history",
		[]string{"id", "payment_id", "payment_status", "created_at", "created_by"},
		[]any{h.ID, h.PaymentID, h.PaymentStatus, h.CreatedAt, h.CreatedBy}
}

// PaymentKey exists only for payments whose history status is DONE.
type PaymentKey struct {
	ID          string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	PaymentID   string    `gorm:"column:payment_id;type:varchar(36);not null"`
	PaymentKey  string    `gorm:"column:payment_key;type:varchar(100);not null"`
	ConfirmedAt time.Time `gorm:"column:confirmed_at;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
	CreatedBy   int64     `gorm:"column:created_by;not null"`
}

func (PaymentKey) TableName() string { return "p_payment_key" }

func (k *PaymentKey) InsertRow() (string, []string, []any) {
	return "p_payment_key",
		[]string{"id", "payment_id", "payment_key", "confirmed_at", "created_at", "created_by"},
		[]any{k.ID, k.PaymentID, k.PaymentKey, k.ConfirmedAt, k.CreatedAt, k.CreatedBy}
}
