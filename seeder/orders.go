package seeder

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yeremiapane/spot-seeder/models"
	"github.com/yeremiapane/spot-seeder/utils"
)

// OrderStage emits orders with their items, item options, payment, payment
// history and (for settled payments) a payment key. The sampled status drives
// a strictly increasing timestamp chain; every derived row reuses ids already
// materialized by earlier stages.
type OrderStage struct{}

func (OrderStage) Name() string        { return "orders" }
func (OrderStage) Reads() []EntitySet  { return []EntitySet{SetUsers, SetStores, SetMenus} }
func (OrderStage) Produces() EntitySet { return SetOrders }

func (s OrderStage) Run(ctx *Context) error {
	var eligible []StoreRef
	for _, store := range ctx.Stores {
		if store.Status == models.StoreApproved && len(ctx.MenusByStore[store.ID]) > 0 {
			eligible = append(eligible, store)
		}
	}
	if len(eligible) == 0 || len(ctx.Users) == 0 {
		utils.ErrorLogger.Warn("no eligible stores with menus, skipping orders")
		return nil
	}

	if err := ctx.Sink.Comment("Orders"); err != nil {
		return err
	}
	for i := 0; i < ctx.Cfg.NumOrders; i++ {
		if err := s.generateOrder(ctx, i, pick(ctx.Rng, eligible)); err != nil {
			return err
		}
	}
	return ctx.Sink.Comment("")
}

func (s OrderStage) generateOrder(ctx *Context, seq int, store StoreRef) error {
	userID := pick(ctx.Rng, ctx.Users)
	status := choice(ctx.Rng, models.OrderStatuses, ctx.Cfg.OrderStatusWeights)
	createdAt := pastTime(ctx.Rng, 90, 0)

	order := models.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		StoreID:         store.ID,
		OrderNumber:     fmt.Sprintf("ORD%08d", seq+1),
		NeedDisposables: ctx.Rng.Intn(2) == 0,
		PickupTime:      minutesAfter(ctx.Rng, createdAt, 30, 90),
		OrderStatus:     status,
		CreatedAt:       createdAt,
		CreatedBy:       userID,
	}
	if ctx.Rng.Float64() < 0.75 {
		req := pick(ctx.Rng, orderRequests)
		order.Request = &req
	}

	s.applyStatusTimestamps(ctx, &order)

	if err := ctx.Sink.Write(&order); err != nil {
		return err
	}

	total, err := s.generateItems(ctx, &order)
	if err != nil {
		return err
	}
	if err := s.generatePayment(ctx, &order, store, total); err != nil {
		return err
	}

	var completedAt *time.Time
	if status == models.OrderCompleted {
		completedAt = order.PickedUpAt
	}
	ctx.Orders = append(ctx.Orders, OrderRef{
		ID:          order.ID,
		UserID:      userID,
		StoreID:     store.ID,
		Status:      status,
		CompletedAt: completedAt,
	})
	return nil
}

// applyStatusTimestamps fills the nullable timestamps the sampled status
// implies. Each set timestamp is a bounded positive offset past its
// predecessor, so every present chain is strictly increasing.
func (s OrderStage) applyStatusTimestamps(ctx *Context, o *models.Order) {
	switch o.OrderStatus {
	case models.OrderCancelled:
		at := minutesAfter(ctx.Rng, o.CreatedAt, 5, 30)
		by := pick(ctx.Rng, models.CancelledBy)
		reason := ctx.Faker.Sentence(5)
		o.CancelledAt = &at
		o.CancelledBy = &by
		o.Reason = &reason
		return
	case models.OrderRejected:
		at := minutesAfter(ctx.Rng, o.CreatedAt, 5, 15)
		reason := ctx.Faker.Sentence(5)
		o.RejectedAt = &at
		o.Reason = &reason
		return
	case models.OrderPaymentPending:
		return
	}

	paid := minutesAfter(ctx.Rng, o.CreatedAt, 1, 5)
	o.PaymentCompletedAt = &paid
	if o.OrderStatus == models.OrderPending {
		return
	}

	accepted := minutesAfter(ctx.Rng, paid, 5, 15)
	o.AcceptedAt = &accepted
	est := intBetween(ctx.Rng, 20, 60)
	o.EstimatedTime = &est
	if o.OrderStatus == models.OrderAccepted {
		return
	}

	cooking := minutesAfter(ctx.Rng, accepted, 5, 10)
	o.CookingStartedAt = &cooking
	if o.OrderStatus == models.OrderCooking {
		return
	}

	done := minutesAfter(ctx.Rng, cooking, 15, 30)
	o.CookingCompletedAt = &done
	if o.OrderStatus == models.OrderReady {
		return
	}

	picked := minutesAfter(ctx.Rng, done, 5, 20)
	o.PickedUpAt = &picked
}

// generateItems emits 1-5 order items sampled without replacement from the
// store's menus, each snapshotting the menu's name and price, plus optional
// item options from the same menu. Returns the exact order total.
func (s OrderStage) generateItems(ctx *Context, order *models.Order) (int64, error) {
	menus := ctx.MenusByStore[order.StoreID]
	var total int64

	for _, menu := range sample(ctx.Rng, menus, between(ctx.Rng, ctx.Cfg.ItemsPerOrder)) {
		quantity := intBetween(ctx.Rng, 1, 3)
		item := models.OrderItem{
			ID:        uuid.NewString(),
			OrderID:   order.ID,
			MenuID:    menu.ID,
			MenuName:  menu.Name,
			MenuPrice: menu.Price,
			Quantity:  quantity,
			CreatedAt: order.CreatedAt,
			CreatedBy: order.UserID,
		}
		if err := ctx.Sink.Write(&item); err != nil {
			return 0, err
		}
		total += menu.Price * int64(quantity)

		opts := ctx.OptionsByMenu[menu.ID]
		if len(opts) == 0 || ctx.Rng.Float64() < 0.5 {
			continue
		}
		for _, opt := range sample(ctx.Rng, opts, intBetween(ctx.Rng, 1, 2)) {
			itemOpt := models.OrderItemOption{
				ID:           uuid.NewString(),
				OrderItemID:  item.ID,
				MenuOptionID: opt.ID,
				OptionName:   opt.Name,
				OptionDetail: opt.Detail,
				OptionPrice:  opt.Price,
				CreatedAt:    order.CreatedAt,
				CreatedBy:    order.UserID,
			}
			if err := ctx.Sink.Write(&itemOpt); err != nil {
				return 0, err
			}
			total += opt.Price * int64(quantity)
		}
	}
	return total, nil
}

// generatePayment emits the order's payment, its history row, and a payment
// key when the history status is DONE.
func (s OrderStage) generatePayment(ctx *Context, order *models.Order, store StoreRef, total int64) error {
	payment := models.Payment{
		ID:             uuid.NewString(),
		UserID:         order.UserID,
		OrderID:        order.ID,
		PaymentTitle:   store.Name + " 주문",
		PaymentContent: "주문번호: " + order.OrderNumber,
		PaymentMethod:  pick(ctx.Rng, models.PaymentMethods),
		PaymentAmount:  total,
		CreatedAt:      order.CreatedAt,
		CreatedBy:      order.UserID,
	}
	if err := ctx.Sink.Write(&payment); err != nil {
		return err
	}

	historyStatus := models.PaymentDone
	switch order.OrderStatus {
	case models.OrderCancelled:
		historyStatus = models.PaymentCancelled
	case models.OrderRejected, models.OrderPaymentPending:
		historyStatus = models.PaymentReady
	}
	history := models.PaymentHistory{
		ID:            uuid.NewString(),
		PaymentID:     payment.ID,
		PaymentStatus: historyStatus,
		CreatedAt:     order.CreatedAt,
		CreatedBy:     order.UserID,
	}
	if err := ctx.Sink.Write(&history); err != nil {
		return err
	}

	if historyStatus != models.PaymentDone {
		return nil
	}
	key := models.PaymentKey{
		ID:          uuid.NewString(),
		PaymentID:   payment.ID,
		PaymentKey:  "paymentkey_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:20],
		ConfirmedAt: *order.PaymentCompletedAt,
		CreatedAt:   order.CreatedAt,
		CreatedBy:   order.UserID,
	}
	return ctx.Sink.Write(&key)
}
