package seeder

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/yeremiapane/spot-seeder/models"
	"github.com/yeremiapane/spot-seeder/utils"
)

// StoreStage emits stores with a weighted status, 1-3 category links and
// exactly one owner link. Owners come from the OWNER pool; the full user pool
// is the fallback only when no OWNER exists.
type StoreStage struct{}

func (StoreStage) Name() string        { return "stores" }
func (StoreStage) Reads() []EntitySet  { return []EntitySet{SetCategories, SetUsers} }
func (StoreStage) Produces() EntitySet { return SetStores }

func (StoreStage) Run(ctx *Context) error {
	if len(ctx.Users) == 0 {
		utils.ErrorLogger.Warn("no users generated, skipping stores")
		return nil
	}
	if err := ctx.Sink.Comment("Stores"); err != nil {
		return err
	}

	for i := 0; i < ctx.Cfg.NumStores; i++ {
		createdAt := pastTime(ctx.Rng, 365, 30)
		status := choice(ctx.Rng, models.StoreStatuses, ctx.Cfg.StoreStatusWeights)
		createdBy := ctx.RandomUser()

		store := models.Store{
			ID:            uuid.NewString(),
			Name:          ctx.Faker.Company() + " " + pick(ctx.Rng, storeNameSuffixes),
			RoadAddress:   jongnoAddress(ctx),
			AddressDetail: fmt.Sprintf("%d층", intBetween(ctx.Rng, 1, 10)),
			PhoneNumber:   ctx.Faker.Phone(),
			OpenTime:      "09:00:00",
			CloseTime:     "22:00:00",
			Status:        status,
			Audit: models.Audit{
				CreatedAt: createdAt,
				CreatedBy: createdBy,
				UpdatedAt: updatedAfter(ctx.Rng, createdAt),
				UpdatedBy: ctx.RandomUser(),
			},
		}
		if ctx.Rng.Float64() < ctx.Cfg.StoreDeletedRatio {
			deletedAt := updatedAfter(ctx.Rng, createdAt)
			deletedBy := ctx.RandomUser()
			store.IsDeleted = true
			store.DeletedAt = &deletedAt
			store.DeletedBy = &deletedBy
		}
		if err := ctx.Sink.Write(&store); err != nil {
			return err
		}

		for _, cat := range sample(ctx.Rng, ctx.Categories, intBetween(ctx.Rng, 1, 3)) {
			link := models.StoreCategory{
				ID:         uuid.NewString(),
				StoreID:    store.ID,
				CategoryID: cat.ID,
				Audit: models.Audit{
					CreatedAt: createdAt,
					CreatedBy: createdBy,
					UpdatedAt: updatedAfter(ctx.Rng, createdAt),
					UpdatedBy: ctx.RandomUser(),
				},
			}
			if err := ctx.Sink.Write(&link); err != nil {
				return err
			}
		}

		ownerID := ctx.RandomUser()
		if len(ctx.Owners) > 0 {
			ownerID = pick(ctx.Rng, ctx.Owners)
		}
		ownerLink := models.StoreUser{
			ID:      uuid.NewString(),
			StoreID: store.ID,
			UserID:  ownerID,
			Audit: models.Audit{
				CreatedAt: createdAt,
				CreatedBy: createdBy,
				UpdatedAt: updatedAfter(ctx.Rng, createdAt),
				UpdatedBy: ctx.RandomUser(),
			},
		}
		if err := ctx.Sink.Write(&ownerLink); err != nil {
			return err
		}

		ctx.Stores = append(ctx.Stores, StoreRef{
			ID:        store.ID,
			Name:      store.Name,
			Status:    store.Status,
			CreatedAt: store.CreatedAt,
		})
	}
	return ctx.Sink.Comment("")
}

func jongnoAddress(ctx *Context) string {
	return fmt.Sprintf("서울특별시 종로구 %s %d", pick(ctx.Rng, jongnoRoads), intBetween(ctx.Rng, 1, 300))
}
