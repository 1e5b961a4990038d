package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/spot-seeder/models"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	t.Setenv("SEED_NUM_USERS", "10")
	t.Setenv("SEED_NUM_STORES", "5")
	t.Setenv("SEED_OWNER_RATIO", "0.1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.NumUsers)
	assert.Equal(t, 5, cfg.NumStores)
	assert.Equal(t, 0.1, cfg.OwnerRatio)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := map[string]func(*Config){
		"too few users":      func(c *Config) { c.NumUsers = 3 },
		"negative orders":    func(c *Config) { c.NumOrders = -1 },
		"ratio above one":    func(c *Config) { c.OwnerRatio = 1.5 },
		"inverted range":     func(c *Config) { c.ItemsPerOrder = Range{5, 1} },
		"negative weight":    func(c *Config) { c.RatingWeights[3] = -1 },
		"zero weight total":  func(c *Config) { c.OrderStatusWeights = map[string]float64{models.OrderCompleted: 0} },
		"hash cost too high": func(c *Config) { c.HashCost = 99 },
	}
	for name, mutate := range cases {
		cfg := Default()
		mutate(cfg)
		assert.Error(t, cfg.Validate(), name)
	}
}

func TestWeightsNeedNotSumToOne(t *testing.T) {
	cfg := Default()
	cfg.StoreStatusWeights = map[string]float64{
		models.StorePending:  2,
		models.StoreApproved: 17,
		models.StoreRejected: 1,
	}
	assert.NoError(t, cfg.Validate())
}
