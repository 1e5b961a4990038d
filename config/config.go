package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"github.com/yeremiapane/spot-seeder/models"
)

// Range is an inclusive [Min, Max] draw range.
type Range struct {
	Min int
	Max int
}

// Config holds every knob of a generation run. Values are read once at
// startup; nothing mutates them afterwards.
type Config struct {
	NumUsers      int
	NumStores     int
	NumCategories int
	NumOrders     int

	MenusPerStore   Range
	OptionsPerMenu  Range
	OriginsPerMenu  Range
	ItemsPerOrder   Range
	ReviewsPerStore Range

	// OwnerRatio is the fraction of the non-canonical user population that is
	// assigned role OWNER. Selection is positional, so the ratio is exact.
	OwnerRatio float64

	// StoreDeletedRatio is the probability a store is emitted soft-deleted.
	StoreDeletedRatio float64

	// HashCost is the bcrypt cost used for auth digests.
	HashCost int

	StoreStatusWeights map[string]float64
	OrderStatusWeights map[string]float64
	RatingWeights      map[int]float64
}

// Default returns the configuration the original dataset ships with.
func Default() *Config {
	return &Config{
		NumUsers:      500,
		NumStores:     1000,
		NumCategories: 20,
		NumOrders:     10000,

		MenusPerStore:   Range{5, 15},
		OptionsPerMenu:  Range{0, 5},
		OriginsPerMenu:  Range{0, 3},
		ItemsPerOrder:   Range{1, 5},
		ReviewsPerStore: Range{0, 20},

		OwnerRatio:        0.1,
		StoreDeletedRatio: 0.05,
		HashCost:          10,

		StoreStatusWeights: map[string]float64{
			models.StorePending:  0.10,
			models.StoreApproved: 0.85,
			models.StoreRejected: 0.05,
		},
		OrderStatusWeights: map[string]float64{
			models.OrderPaymentPending: 0.05,
			models.OrderPending:        0.10,
			models.OrderAccepted:       0.10,
			models.OrderCooking:        0.10,
			models.OrderReady:          0.10,
			models.OrderCompleted:      0.50,
			models.OrderCancelled:      0.03,
			models.OrderRejected:       0.02,
		},
		RatingWeights: map[int]float64{
			1: 0.02,
			2: 0.03,
			3: 0.10,
			4: 0.35,
			5: 0.50,
		},
	}
}

// Load builds the run configuration from defaults plus SEED_* environment
// overrides. Call godotenv.Load first if a .env file should participate.
func Load() (*Config, error) {
	cfg := Default()

	cfg.NumUsers = envInt("SEED_NUM_USERS", cfg.NumUsers)
	cfg.NumStores = envInt("SEED_NUM_STORES", cfg.NumStores)
	cfg.NumCategories = envInt("SEED_NUM_CATEGORIES", cfg.NumCategories)
	cfg.NumOrders = envInt("SEED_NUM_ORDERS", cfg.NumOrders)
	cfg.OwnerRatio = envFloat("SEED_OWNER_RATIO", cfg.OwnerRatio)
	cfg.HashCost = envInt("SEED_HASH_COST", cfg.HashCost)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the pipeline cannot honor.
func (c *Config) Validate() error {
	if c.NumUsers < 4 {
		return fmt.Errorf("config: NumUsers must cover the 4 canonical accounts, got %d", c.NumUsers)
	}
	if c.NumStores < 0 || c.NumOrders < 0 {
		return fmt.Errorf("config: entity counts must be non-negative")
	}
	if c.NumCategories < 1 {
		return fmt.Errorf("config: NumCategories must be at least 1, got %d", c.NumCategories)
	}
	if c.OwnerRatio < 0 || c.OwnerRatio > 1 {
		return fmt.Errorf("config: OwnerRatio must be in [0,1], got %g", c.OwnerRatio)
	}
	if c.StoreDeletedRatio < 0 || c.StoreDeletedRatio > 1 {
		return fmt.Errorf("config: StoreDeletedRatio must be in [0,1], got %g", c.StoreDeletedRatio)
	}
	if c.HashCost < bcrypt.MinCost || c.HashCost > bcrypt.MaxCost {
		return fmt.Errorf("config: HashCost %d outside bcrypt range [%d,%d]", c.HashCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	for name, r := range map[string]Range{
		"MenusPerStore":   c.MenusPerStore,
		"OptionsPerMenu":  c.OptionsPerMenu,
		"OriginsPerMenu":  c.OriginsPerMenu,
		"ItemsPerOrder":   c.ItemsPerOrder,
		"ReviewsPerStore": c.ReviewsPerStore,
	} {
		if r.Min < 0 || r.Max < r.Min {
			return fmt.Errorf("config: %s range [%d,%d] is invalid", name, r.Min, r.Max)
		}
	}
	if err := validWeights("StoreStatusWeights", c.StoreStatusWeights); err != nil {
		return err
	}
	if err := validWeights("OrderStatusWeights", c.OrderStatusWeights); err != nil {
		return err
	}
	return validWeights("RatingWeights", c.RatingWeights)
}

// validWeights checks a weight table is sensible: no negative weight and a
// positive total. The weights need not sum to 1.
func validWeights[K comparable](name string, weights map[K]float64) error {
	var sum float64
	for k, w := range weights {
		if w < 0 {
			return fmt.Errorf("config: %s has negative weight for %v", name, k)
		}
		sum += w
	}
	if sum <= 0 {
		return fmt.Errorf("config: %s weights sum to %g, need a positive total", name, sum)
	}
	return nil
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
