package seeder

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/yeremiapane/spot-seeder/models"
)

// CategoryStage emits the first NumCategories entries of the fixed category
// list. It has no dependencies; the audit actor is 0 (system) because no user
// exists yet.
type CategoryStage struct{}

func (CategoryStage) Name() string        { return "categories" }
func (CategoryStage) Reads() []EntitySet  { return nil }
func (CategoryStage) Produces() EntitySet { return SetCategories }

func (CategoryStage) Run(ctx *Context) error {
	if ctx.Cfg.NumCategories > len(CategoryNames) {
		return fmt.Errorf("%d categories requested but only %d names exist", ctx.Cfg.NumCategories, len(CategoryNames))
	}

	if err := ctx.Sink.Comment("Categories"); err != nil {
		return err
	}
	for _, name := range CategoryNames[:ctx.Cfg.NumCategories] {
		createdAt := pastTime(ctx.Rng, 180, 150)
		cat := models.Category{
			ID:   uuid.NewString(),
			Name: name,
			Audit: models.Audit{
				CreatedAt: createdAt,
				CreatedBy: 0,
				UpdatedAt: updatedAfter(ctx.Rng, createdAt),
				UpdatedBy: 0,
			},
		}
		if err := ctx.Sink.Write(&cat); err != nil {
			return err
		}
		ctx.Categories = append(ctx.Categories, CategoryRef{ID: cat.ID, Name: cat.Name})
	}
	return ctx.Sink.Comment("")
}
