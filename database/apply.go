package database

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeremiapane/spot-seeder/config"
	"github.com/yeremiapane/spot-seeder/models"
	"github.com/yeremiapane/spot-seeder/seeder"
	"github.com/yeremiapane/spot-seeder/sqlout"
	"github.com/yeremiapane/spot-seeder/utils"
)

// Open connects per environment: DB_DRIVER selects sqlite (default) or mysql,
// DB_DSN carries the target. The sqlite default writes spot_seed.db in the
// working directory.
func Open() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")
	dsn := os.Getenv("DB_DSN")

	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	switch driver {
	case "", "sqlite":
		if dsn == "" {
			dsn = "spot_seed.db"
		}
		return gorm.Open(sqlite.Open(dsn), gormCfg)
	case "mysql":
		if dsn == "" {
			return nil, fmt.Errorf("database: DB_DSN is required for mysql")
		}
		return gorm.Open(mysql.Open(dsn), gormCfg)
	default:
		return nil, fmt.Errorf("database: unknown DB_DRIVER %q", driver)
	}
}

// Migrate creates the full p_* schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.User{},
		&models.UserAuth{},
		&models.Store{},
		&models.StoreCategory{},
		&models.StoreUser{},
		&models.Menu{},
		&models.MenuOption{},
		&models.MenuOrigin{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderItemOption{},
		&models.Payment{},
		&models.PaymentHistory{},
		&models.PaymentKey{},
		&models.Review{},
	)
}

// Apply runs the whole generation pipeline against the database inside one
// transaction. Any stage error rolls the run back; there is no partial
// commit.
func Apply(db *gorm.DB, cfg *config.Config) error {
	if err := Migrate(db); err != nil {
		return fmt.Errorf("database: migrate: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		ctx := seeder.NewContext(cfg, sqlout.NewDBSink(tx))
		pipeline, err := seeder.NewPipeline(seeder.DefaultStages()...)
		if err != nil {
			return err
		}
		if err := pipeline.Run(ctx); err != nil {
			return err
		}
		utils.InfoLogger.Printf("Applied %d users, %d stores, %d menus, %d orders, %d reviews",
			len(ctx.Users), len(ctx.Stores), ctx.MenuCount(), len(ctx.Orders), ctx.ReviewCount)
		return nil
	})
}
