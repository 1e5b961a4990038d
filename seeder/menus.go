package seeder

import (
	"time"

	"github.com/google/uuid"

	"github.com/yeremiapane/spot-seeder/models"
)

// MenuStage emits menus, menu options and origin-disclosure rows for every
// APPROVED store. Stores in any other status never receive menus; that is
// this stage's consistency contract with the order generator.
type MenuStage struct{}

func (MenuStage) Name() string        { return "menus" }
func (MenuStage) Reads() []EntitySet  { return []EntitySet{SetStores, SetUsers} }
func (MenuStage) Produces() EntitySet { return SetMenus }

func (MenuStage) Run(ctx *Context) error {
	if err := ctx.Sink.Comment("Menus"); err != nil {
		return err
	}

	for _, store := range ctx.Stores {
		if store.Status != models.StoreApproved {
			continue
		}

		cuisine := pick(ctx.Rng, cuisines)
		names := menuTemplates[cuisine]

		for j := between(ctx.Rng, ctx.Cfg.MenusPerStore); j > 0; j-- {
			name := pick(ctx.Rng, names)
			if ctx.Rng.Float64() > 0.5 {
				name += " " + pick(ctx.Rng, menuSuffixes)
			}
			// Menus never predate their store.
			createdAt := store.CreatedAt.Add(time.Duration(ctx.Rng.Intn(31)) * 24 * time.Hour)

			menu := models.Menu{
				ID:          uuid.NewString(),
				StoreID:     store.ID,
				Name:        name,
				Category:    cuisine,
				Price:       int64(intBetween(ctx.Rng, 5, 50)) * 1000,
				Description: ctx.Faker.Sentence(6),
				IsAvailable: ctx.Rng.Float64() > 0.10,
				IsHidden:    ctx.Rng.Float64() < 0.05,
				Audit: models.Audit{
					CreatedAt: createdAt,
					CreatedBy: ctx.RandomUser(),
					UpdatedAt: updatedAfter(ctx.Rng, createdAt),
					UpdatedBy: ctx.RandomUser(),
				},
			}
			if err := ctx.Sink.Write(&menu); err != nil {
				return err
			}
			ctx.MenusByStore[store.ID] = append(ctx.MenusByStore[store.ID], MenuRef{
				ID:      menu.ID,
				StoreID: store.ID,
				Name:    menu.Name,
				Price:   menu.Price,
			})

			for k := between(ctx.Rng, ctx.Cfg.OptionsPerMenu); k > 0; k-- {
				group := pick(ctx.Rng, optionGroups)
				opt := models.MenuOption{
					ID:          uuid.NewString(),
					MenuID:      menu.ID,
					Name:        group.Name,
					Detail:      pick(ctx.Rng, group.Details),
					Price:       pick(ctx.Rng, optionPrices),
					IsAvailable: ctx.Rng.Float64() > 0.05,
					IsHidden:    ctx.Rng.Float64() < 0.02,
					Audit: models.Audit{
						CreatedAt: createdAt,
						CreatedBy: ctx.RandomUser(),
						UpdatedAt: updatedAfter(ctx.Rng, createdAt),
						UpdatedBy: ctx.RandomUser(),
					},
				}
				if err := ctx.Sink.Write(&opt); err != nil {
					return err
				}
				ctx.OptionsByMenu[menu.ID] = append(ctx.OptionsByMenu[menu.ID], OptionRef{
					ID:     opt.ID,
					Name:   opt.Name,
					Detail: opt.Detail,
					Price:  opt.Price,
				})
			}

			for l := between(ctx.Rng, ctx.Cfg.OriginsPerMenu); l > 0; l-- {
				entry := pick(ctx.Rng, originCatalog)
				origin := models.MenuOrigin{
					ID:             uuid.NewString(),
					MenuID:         menu.ID,
					OriginName:     pick(ctx.Rng, entry.Origins),
					IngredientName: entry.Ingredient,
					Audit: models.Audit{
						CreatedAt: createdAt,
						CreatedBy: ctx.RandomUser(),
						UpdatedAt: updatedAfter(ctx.Rng, createdAt),
						UpdatedBy: ctx.RandomUser(),
					},
				}
				if err := ctx.Sink.Write(&origin); err != nil {
					return err
				}
			}
		}
	}
	return ctx.Sink.Comment("")
}
