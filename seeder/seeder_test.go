package seeder

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yeremiapane/spot-seeder/config"
	"github.com/yeremiapane/spot-seeder/models"
	"github.com/yeremiapane/spot-seeder/sqlout"
)

// memSink collects every generated row for inspection.
type memSink struct {
	rows []sqlout.Row
}

func (m *memSink) Write(r sqlout.Row) error { m.rows = append(m.rows, r); return nil }
func (m *memSink) Comment(string) error     { return nil }

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.NumUsers = 30
	cfg.NumStores = 12
	cfg.NumCategories = 8
	cfg.NumOrders = 120
	cfg.MenusPerStore = config.Range{Min: 2, Max: 4}
	cfg.OptionsPerMenu = config.Range{Min: 0, Max: 3}
	cfg.OriginsPerMenu = config.Range{Min: 0, Max: 2}
	cfg.ReviewsPerStore = config.Range{Min: 0, Max: 6}
	cfg.HashCost = bcrypt.MinCost
	return cfg
}

// runPipeline generates a full dataset into a memory sink, with a fixed
// random source so a failure is reproducible.
func runPipeline(t *testing.T, cfg *config.Config, seed int64) (*Context, *memSink) {
	t.Helper()
	sink := &memSink{}
	ctx := NewContext(cfg, sink)
	ctx.Rng = rand.New(rand.NewSource(seed))

	p, err := NewPipeline(DefaultStages()...)
	require.NoError(t, err)
	require.NoError(t, p.Run(ctx))
	return ctx, sink
}

func collect[T sqlout.Row](sink *memSink) []T {
	var out []T
	for _, r := range sink.rows {
		if v, ok := r.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

func TestCategoryCountAndOverflow(t *testing.T) {
	cfg := testConfig()
	ctx, sink := runPipeline(t, cfg, 1)
	assert.Len(t, ctx.Categories, cfg.NumCategories)
	assert.Len(t, collect[*models.Category](sink), cfg.NumCategories)

	over := testConfig()
	over.NumCategories = len(CategoryNames) + 1
	st := CategoryStage{}
	err := st.Run(NewContext(over, &memSink{}))
	assert.Error(t, err)
}

func TestCanonicalAccountsAndOwnerRatio(t *testing.T) {
	cfg := testConfig()
	cfg.NumUsers = 10
	cfg.NumStores = 5
	cfg.OwnerRatio = 0.1
	ctx, sink := runPipeline(t, cfg, 2)

	users := collect[*models.User](sink)
	require.Len(t, users, 10)
	assert.Equal(t, models.RoleMaster, users[0].Role)
	assert.Equal(t, models.RoleOwner, users[1].Role)
	assert.Equal(t, models.RoleChef, users[2].Role)
	assert.Equal(t, models.RoleCustomer, users[3].Role)

	// 6 non-canonical users at ratio 0.1 -> exactly 1 positional OWNER
	// (user id 5), plus the canonical owner account.
	var randomOwners []int64
	for _, u := range users[4:] {
		if u.Role == models.RoleOwner {
			randomOwners = append(randomOwners, u.ID)
		}
	}
	require.Len(t, randomOwners, 1)
	assert.Equal(t, int64(5), randomOwners[0])
	assert.ElementsMatch(t, []int64{2, 5}, ctx.Owners)

	// Every store owner link points into the OWNER pool.
	ownerSet := map[int64]bool{2: true, 5: true}
	links := collect[*models.StoreUser](sink)
	require.Len(t, links, 5)
	for _, link := range links {
		assert.True(t, ownerSet[link.UserID], "store %s owned by non-OWNER user %d", link.StoreID, link.UserID)
	}
}

func TestOwnerFallbackWhenNoOwners(t *testing.T) {
	cfg := testConfig()
	cfg.OwnerRatio = 0
	sink := &memSink{}
	ctx := NewContext(cfg, sink)
	ctx.Rng = rand.New(rand.NewSource(3))

	require.NoError(t, UserStage{}.Run(ctx))
	// Strip the canonical OWNER so the pool is genuinely empty.
	ctx.Owners = nil
	require.NoError(t, CategoryStage{}.Run(ctx))
	require.NoError(t, (StoreStage{}).Run(ctx))

	users := map[int64]bool{}
	for _, id := range ctx.Users {
		users[id] = true
	}
	for _, link := range collect[*models.StoreUser](sink) {
		assert.True(t, users[link.UserID])
	}
}

func TestEveryUserHasVerifiableAuth(t *testing.T) {
	cfg := testConfig()
	cfg.NumUsers = 8
	cfg.NumStores = 0
	cfg.NumOrders = 0
	_, sink := runPipeline(t, cfg, 4)

	users := collect[*models.User](sink)
	auths := collect[*models.UserAuth](sink)
	require.Len(t, auths, len(users))

	byUser := map[int64]*models.UserAuth{}
	for _, a := range auths {
		byUser[a.UserID] = a
	}
	for _, u := range users {
		a := byUser[u.ID]
		require.NotNil(t, a, "user %d has no auth row", u.ID)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(a.HashedPassword), []byte(u.Nickname)),
			"digest for %s does not verify against nickname", u.Nickname)
	}
}

func TestMenusOnlyForApprovedStores(t *testing.T) {
	ctx, sink := runPipeline(t, testConfig(), 5)

	statusByStore := map[string]string{}
	for _, s := range ctx.Stores {
		statusByStore[s.ID] = s.Status
	}
	for _, m := range collect[*models.Menu](sink) {
		assert.Equal(t, models.StoreApproved, statusByStore[m.StoreID],
			"menu %s attached to non-approved store", m.ID)
		assert.Greater(t, m.Price, int64(0))
		assert.Zero(t, m.Price%1000, "price %d is not a 1000-won multiple", m.Price)
	}
}

func TestRejectedStoreGetsNoMenus(t *testing.T) {
	cfg := testConfig()
	cfg.StoreStatusWeights = map[string]float64{
		models.StorePending:  0,
		models.StoreApproved: 0,
		models.StoreRejected: 1,
	}
	cfg.MenusPerStore = config.Range{Min: 5, Max: 15}
	ctx, sink := runPipeline(t, cfg, 6)

	require.NotEmpty(t, ctx.Stores)
	assert.Empty(t, collect[*models.Menu](sink))
	// With no eligible stores, orders are skipped rather than crashing.
	assert.Empty(t, collect[*models.Order](sink))
}

func TestMenuNeverPredatesStore(t *testing.T) {
	ctx, sink := runPipeline(t, testConfig(), 7)
	createdByStore := map[string]time.Time{}
	for _, s := range ctx.Stores {
		createdByStore[s.ID] = s.CreatedAt
	}
	for _, m := range collect[*models.Menu](sink) {
		assert.False(t, m.CreatedAt.Before(createdByStore[m.StoreID]))
	}
}

func TestOrderTimestampPolicy(t *testing.T) {
	_, sink := runPipeline(t, testConfig(), 8)
	orders := collect[*models.Order](sink)
	require.NotEmpty(t, orders)

	seen := map[string]bool{}
	for _, o := range orders {
		seen[o.OrderStatus] = true
		assertTimestampPolicy(t, o)
	}
	// The weighted sampler should reach the heavy statuses in 120 draws.
	assert.True(t, seen[models.OrderCompleted])
}

func assertTimestampPolicy(t *testing.T, o *models.Order) {
	t.Helper()

	type expectation struct {
		paid, accepted, cooking, done, picked bool
	}
	expected := map[string]expectation{
		models.OrderPaymentPending: {},
		models.OrderPending:        {paid: true},
		models.OrderAccepted:       {paid: true, accepted: true},
		models.OrderCooking:        {paid: true, accepted: true, cooking: true},
		models.OrderReady:          {paid: true, accepted: true, cooking: true, done: true},
		models.OrderCompleted:      {paid: true, accepted: true, cooking: true, done: true, picked: true},
		models.OrderCancelled:      {},
		models.OrderRejected:       {},
	}
	want, ok := expected[o.OrderStatus]
	require.True(t, ok, "unknown status %s", o.OrderStatus)

	assert.Equal(t, want.paid, o.PaymentCompletedAt != nil, "%s payment_completed_at", o.OrderStatus)
	assert.Equal(t, want.accepted, o.AcceptedAt != nil, "%s accepted_at", o.OrderStatus)
	assert.Equal(t, want.cooking, o.CookingStartedAt != nil, "%s cooking_started_at", o.OrderStatus)
	assert.Equal(t, want.done, o.CookingCompletedAt != nil, "%s cooking_completed_at", o.OrderStatus)
	assert.Equal(t, want.picked, o.PickedUpAt != nil, "%s picked_up_at", o.OrderStatus)

	assert.Equal(t, o.OrderStatus == models.OrderCancelled, o.CancelledAt != nil)
	assert.Equal(t, o.OrderStatus == models.OrderCancelled, o.CancelledBy != nil)
	assert.Equal(t, o.OrderStatus == models.OrderRejected, o.RejectedAt != nil)

	// Every present timestamp is strictly later than its predecessor.
	prev := o.CreatedAt
	for _, ts := range []*time.Time{
		o.PaymentCompletedAt, o.AcceptedAt, o.CookingStartedAt, o.CookingCompletedAt, o.PickedUpAt,
	} {
		if ts == nil {
			continue
		}
		assert.True(t, ts.After(prev), "%s chain not strictly increasing", o.OrderStatus)
		prev = *ts
	}
	if o.CancelledAt != nil {
		assert.True(t, o.CancelledAt.After(o.CreatedAt))
	}
	if o.RejectedAt != nil {
		assert.True(t, o.RejectedAt.After(o.CreatedAt))
	}
}

func TestPaymentAmountMatchesItems(t *testing.T) {
	_, sink := runPipeline(t, testConfig(), 9)

	items := collect[*models.OrderItem](sink)
	options := collect[*models.OrderItemOption](sink)
	payments := collect[*models.Payment](sink)
	require.NotEmpty(t, payments)

	qtyByItem := map[string]int{}
	totalByOrder := map[string]int64{}
	itemOrder := map[string]string{}
	for _, it := range items {
		qtyByItem[it.ID] = it.Quantity
		itemOrder[it.ID] = it.OrderID
		totalByOrder[it.OrderID] += it.MenuPrice * int64(it.Quantity)
	}
	for _, opt := range options {
		qty, ok := qtyByItem[opt.OrderItemID]
		require.True(t, ok, "option %s references unknown item", opt.ID)
		totalByOrder[itemOrder[opt.OrderItemID]] += opt.OptionPrice * int64(qty)
	}

	for _, p := range payments {
		assert.Equal(t, totalByOrder[p.OrderID], p.PaymentAmount,
			"payment for order %s does not match item totals", p.OrderID)
	}
}

func TestItemSnapshotsAndOptionParentage(t *testing.T) {
	ctx, sink := runPipeline(t, testConfig(), 10)

	menuByID := map[string]MenuRef{}
	for _, menus := range ctx.MenusByStore {
		for _, m := range menus {
			menuByID[m.ID] = m
		}
	}
	optionMenu := map[string]string{}
	for menuID, opts := range ctx.OptionsByMenu {
		for _, o := range opts {
			optionMenu[o.ID] = menuID
		}
	}

	itemMenu := map[string]string{}
	for _, it := range collect[*models.OrderItem](sink) {
		m, ok := menuByID[it.MenuID]
		require.True(t, ok)
		assert.Equal(t, m.Name, it.MenuName)
		assert.Equal(t, m.Price, it.MenuPrice)
		assert.GreaterOrEqual(t, it.Quantity, 1)
		itemMenu[it.ID] = it.MenuID
	}
	for _, opt := range collect[*models.OrderItemOption](sink) {
		// The option's parent menu is the order item's menu.
		assert.Equal(t, itemMenu[opt.OrderItemID], optionMenu[opt.MenuOptionID])
	}
}

func TestPaymentHistoryAndKey(t *testing.T) {
	_, sink := runPipeline(t, testConfig(), 11)

	orders := map[string]*models.Order{}
	for _, o := range collect[*models.Order](sink) {
		orders[o.ID] = o
	}
	histories := collect[*models.PaymentHistory](sink)
	keys := collect[*models.PaymentKey](sink)
	payments := collect[*models.Payment](sink)
	require.Len(t, histories, len(payments))

	keyed := map[string]bool{}
	for _, k := range keys {
		keyed[k.PaymentID] = true
	}
	historyByPayment := map[string]string{}
	for _, h := range histories {
		historyByPayment[h.PaymentID] = h.PaymentStatus
	}

	for _, p := range payments {
		o := orders[p.OrderID]
		require.NotNil(t, o)
		status := historyByPayment[p.ID]
		switch o.OrderStatus {
		case models.OrderCancelled:
			assert.Equal(t, models.PaymentCancelled, status)
			assert.Nil(t, o.PaymentCompletedAt)
			assert.False(t, keyed[p.ID])
		case models.OrderRejected, models.OrderPaymentPending:
			assert.Equal(t, models.PaymentReady, status)
			assert.False(t, keyed[p.ID])
		default:
			assert.Equal(t, models.PaymentDone, status)
			assert.True(t, keyed[p.ID], "settled payment %s has no key", p.ID)
		}
	}
}

func TestReviewsRequireCompletedOrders(t *testing.T) {
	ctx, sink := runPipeline(t, testConfig(), 12)

	completed := map[string]map[int64]*time.Time{}
	for _, o := range ctx.Orders {
		if o.Status != models.OrderCompleted {
			continue
		}
		if completed[o.StoreID] == nil {
			completed[o.StoreID] = map[int64]*time.Time{}
		}
		completed[o.StoreID][o.UserID] = o.CompletedAt
	}

	for _, r := range collect[*models.Review](sink) {
		users := completed[r.StoreID]
		require.NotNil(t, users, "review on store %s with no completed orders", r.StoreID)
		doneAt, ok := users[r.UserID]
		require.True(t, ok, "review by user %d without a completed order at store %s", r.UserID, r.StoreID)
		require.NotNil(t, doneAt)
		assert.True(t, r.CreatedAt.After(*doneAt), "review predates order completion")
		assert.GreaterOrEqual(t, r.Rating, 1)
		assert.LessOrEqual(t, r.Rating, 5)
	}
}

func TestWeightedChoiceRespectsZeroWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	weights := map[string]float64{"a": 0, "b": 1, "c": 0}
	for i := 0; i < 200; i++ {
		assert.Equal(t, "b", choice(rng, []string{"a", "b", "c"}, weights))
	}
}

func TestPastTimeNeverInFuture(t *testing.T) {
	rng := rand.New(rand.NewSource(15))
	for i := 0; i < 500; i++ {
		ts := pastTime(rng, 90, 0)
		assert.False(t, ts.After(time.Now()), "pastTime produced a future timestamp")
	}
}

func TestOrdersAreNotFutureDated(t *testing.T) {
	_, sink := runPipeline(t, testConfig(), 16)
	now := time.Now()
	for _, o := range collect[*models.Order](sink) {
		assert.False(t, o.CreatedAt.After(now), "order %s created in the future", o.ID)
	}
}

func TestOwnerQuotaRounds(t *testing.T) {
	// 6 non-canonical users at ratio 0.1 round up to one owner; truncation
	// would leave the pool empty.
	assert.Equal(t, 1, ownerCount(6, 0.1))
	assert.Equal(t, 50, ownerCount(496, 0.1))
	assert.Equal(t, 0, ownerCount(6, 0))

	cfg := testConfig()
	cfg.NumUsers = 10
	cfg.OwnerRatio = 0.1
	sink := &memSink{}
	ctx := NewContext(cfg, sink)
	ctx.Rng = rand.New(rand.NewSource(14))
	require.NoError(t, UserStage{}.Run(ctx))

	nonCanonical := 0
	for _, id := range ctx.Owners {
		if id > 4 {
			nonCanonical++
		}
	}
	assert.Equal(t, 1, nonCanonical)
}

func TestPlaceholderDigestShape(t *testing.T) {
	assert.Equal(t, "$2a$10$hashed_user9_placeholder", placeholderDigest("user9"))
}
