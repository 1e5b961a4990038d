package seeder

import (
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/yeremiapane/spot-seeder/config"
	"github.com/yeremiapane/spot-seeder/sqlout"
)

// Minimal downstream projections of generated entities. Later stages sample
// parent keys from these arenas only; full rows leave through the sink and
// are never revisited.

type CategoryRef struct {
	ID   string
	Name string
}

type StoreRef struct {
	ID        string
	Name      string
	Status    string
	CreatedAt time.Time
}

type MenuRef struct {
	ID      string
	StoreID string
	Name    string
	Price   int64
}

type OptionRef struct {
	ID     string
	Name   string
	Detail string
	Price  int64
}

type OrderRef struct {
	ID      string
	UserID  int64
	StoreID string
	Status  string
	// CompletedAt is the pickup time, set only for COMPLETED orders.
	CompletedAt *time.Time
}

// Context is the generation context handed to every stage. Each stage appends
// to its own arena and reads earlier arenas; nothing is mutated after append.
type Context struct {
	Cfg   *config.Config
	Rng   *rand.Rand
	Faker *gofakeit.Faker
	Sink  sqlout.Sink

	Categories    []CategoryRef
	Users         []int64
	Owners        []int64
	Stores        []StoreRef
	MenusByStore  map[string][]MenuRef
	OptionsByMenu map[string][]OptionRef
	Orders        []OrderRef

	ReviewCount int
}

// NewContext builds a context with a wall-clock random seed; each run yields a
// different but internally consistent dataset. Tests may replace Rng with a
// fixed-seed source.
func NewContext(cfg *config.Config, sink sqlout.Sink) *Context {
	return &Context{
		Cfg:           cfg,
		Rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
		Faker:         gofakeit.New(0),
		Sink:          sink,
		MenusByStore:  make(map[string][]MenuRef),
		OptionsByMenu: make(map[string][]OptionRef),
	}
}

// RandomUser returns a random materialized user id, defaulting to the first
// canonical account when none exist yet.
func (c *Context) RandomUser() int64 {
	if len(c.Users) == 0 {
		return 1
	}
	return pick(c.Rng, c.Users)
}

// MenuCount sums menus across all stores, for the run summary.
func (c *Context) MenuCount() int {
	var n int
	for _, menus := range c.MenusByStore {
		n += len(menus)
	}
	return n
}

// OptionCount sums options across all menus, for the run summary.
func (c *Context) OptionCount() int {
	var n int
	for _, opts := range c.OptionsByMenu {
		n += len(opts)
	}
	return n
}
