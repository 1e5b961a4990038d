package models

// User roles.
const (
	RoleMaster   = "MASTER"
	RoleOwner    = "OWNER"
	RoleChef     = "CHEF"
	RoleCustomer = "CUSTOMER"
)

// Store statuses.
const (
	StorePending  = "PENDING"
	StoreApproved = "APPROVED"
	StoreRejected = "REJECTED"
)

// StoreStatuses lists every store status in sampling order.
var StoreStatuses = []string{StorePending, StoreApproved, StoreRejected}

// Order statuses.
const (
	OrderPaymentPending = "PAYMENT_PENDING"
	OrderPending        = "PENDING"
	OrderAccepted       = "ACCEPTED"
	OrderCooking        = "COOKING"
	OrderReady          = "READY"
	OrderCompleted      = "COMPLETED"
	OrderCancelled      = "CANCELLED"
	OrderRejected       = "REJECTED"
)

// OrderStatuses lists every order status in sampling order.
var OrderStatuses = []string{
	OrderPaymentPending,
	OrderPending,
	OrderAccepted,
	OrderCooking,
	OrderReady,
	OrderCompleted,
	OrderCancelled,
	OrderRejected,
}

// Payment history statuses emitted by the generator.
const (
	PaymentDone      = "DONE"
	PaymentReady     = "READY"
	PaymentCancelled = "CANCELLED"
)

// Payment methods.
var PaymentMethods = []string{"CREDIT_CARD", "BANK_TRANSFER"}

// CancelledBy values for cancelled orders.
var CancelledBy = []string{"USER", "OWNER"}
