package models

import "time"

// Order is the central entity of the dataset. Which of the nullable
// timestamps are set is decided entirely by OrderStatus; every set timestamp
// is strictly later than its predecessor in the lifecycle.
type Order struct {
	ID                 string     `gorm:"column:id;primaryKey;type:varchar(36)"`
	UserID             int64      `gorm:"column:user_id;not null"`
	StoreID            string     `gorm:"column:store_id;type:varchar(36);not null"`
	OrderNumber        string     `gorm:"column:order_number;type:varchar(20);not null"`
	Request            *string    `gorm:"column:request;type:varchar(255)"`
	NeedDisposables    bool       `gorm:"column:need_disposables;not null"`
	PickupTime         time.Time  `gorm:"column:pickup_time;not null"`
	OrderStatus        string     `gorm:"column:order_status;type:varchar(20);not null"`
	PaymentCompletedAt *time.Time `gorm:"column:payment_completed_at"`
	PaymentFailedAt    *time.Time `gorm:"column:payment_failed_at"`
	AcceptedAt         *time.Time `gorm:"column:accepted_at"`
	RejectedAt         *time.Time `gorm:"column:rejected_at"`
	CookingStartedAt   *time.Time `gorm:"column:cooking_started_at"`
	CookingCompletedAt *time.Time `gorm:"column:cooking_completed_at"`
	PickedUpAt         *time.Time `gorm:"column:picked_up_at"`
	CancelledAt        *time.Time `gorm:"column:cancelled_at"`
	CancelledBy        *string    `gorm:"column:cancelled_by;type:varchar(10)"`
	EstimatedTime      *int       `gorm:"column:estimated_time"`
	Reason             *string    `gorm:"column:reason;type:varchar(255)"`
	CreatedAt          time.Time  `gorm:"column:created_at;not null"`
	CreatedBy          int64      `gorm:"column:created_by;not null"`
}

func (Order) TableName() string { return "p_order" }

func (o *Order) InsertRow() (string, []string, []any) {
	return "p_order",
		[]string{"id", "user_id", "store_id", "order_number", "request", "need_disposables", "pickup_time",
			"order_status", "payment_completed_at", "payment_failed_at", "accepted_at", "rejected_at",
			"cooking_started_at", "cooking_completed_at", "picked_up_at", "cancelled_at", "cancelled_by",
			"estimated_time", "reason", "created_at", "created_by"},
		[]any{o.ID, o.UserID, o.StoreID, o.OrderNumber, o.Request, o.NeedDisposables, o.PickupTime,
			o.OrderStatus, o.PaymentCompletedAt, o.PaymentFailedAt, o.AcceptedAt, o.RejectedAt,
			o.CookingStartedAt, o.CookingCompletedAt, o.PickedUpAt, o.CancelledAt, o.CancelledBy,
			o.EstimatedTime, o.Reason, o.CreatedAt, o.CreatedBy}
}

// OrderItem snapshots the referenced menu's name and price at order time.
type OrderItem struct {
	ID        string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	OrderID   string    `gorm:"column:order_id;type:varchar(36);not null"`
	MenuID    string    `gorm:"column:menu_id;type:varchar(36);not null"`
	MenuName  string    `gorm:"column:menu_name;type:varchar(255);not null"`
	MenuPrice int64     `gorm:"column:menu_price;not null"`
	Quantity  int       `gorm:"column:quantity;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	CreatedBy int64     `gorm:"column:created_by;not null"`
}

func (OrderItem) TableName() string { return "p_order_item" }

func (i *OrderItem) InsertRow() (string, []string, []any) {
	return "p_order_item",
		[]string{"id", "order_id", "menu_id", "menu_name", "menu_price", "quantity", "created_at", "created_by"},
		[]any{i.ID, i.OrderID, i.MenuID, i.MenuName, i.MenuPrice, i.Quantity, i.CreatedAt, i.CreatedBy}
}

type OrderItemOption struct {
	ID           string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	OrderItemID  string    `gorm:"column:order_item_id;type:varchar(36);not null"`
	MenuOptionID string    `gorm:"column:menu_option_id;type:varchar(36);not null"`
	OptionName   string    `gorm:"column:option_name;type:varchar(100);not null"`
	OptionDetail string    `gorm:"column:option_detail;type:varchar(100);not null"`
	OptionPrice  int64     `gorm:"column:option_price;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"`
	CreatedBy    int64     `gorm:"column:created_by;not null"`
}

func (OrderItemOption) TableName() string { return "p_order_item_option" }

func (o *OrderItemOption) InsertRow() (string, []string, []any) {
	return "p_order_item_option",
		[]string{"id", "order_item_id", "menu_option_id", "option_name", "option_detail", "option_price", "created_at", "created_by"},
		[]any{o.ID, o.OrderItemID, o.MenuOptionID, o.OptionName, o.OptionDetail, o.OptionPrice, o.CreatedAt, o.CreatedBy}
}
