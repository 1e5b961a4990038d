package seeder

import (
	"time"

	"github.com/google/uuid"

	"github.com/yeremiapane/spot-seeder/models"
)

// ReviewStage emits reviews for approved stores that have at least one
// completed order. Writers are drawn from users who completed an order at the
// store; repeat reviewers are allowed only once every such user has reviewed.
// A review is always dated after the order it follows was picked up.
type ReviewStage struct{}

func (ReviewStage) Name() string        { return "reviews" }
func (ReviewStage) Reads() []EntitySet  { return []EntitySet{SetStores, SetOrders} }
func (ReviewStage) Produces() EntitySet { return SetReviews }

var ratings = []int{1, 2, 3, 4, 5}

func (ReviewStage) Run(ctx *Context) error {
	completedByStore := make(map[string][]OrderRef)
	for _, order := range ctx.Orders {
		if order.Status == models.OrderCompleted {
			completedByStore[order.StoreID] = append(completedByStore[order.StoreID], order)
		}
	}

	if err := ctx.Sink.Comment("Reviews"); err != nil {
		return err
	}

	for _, store := range ctx.Stores {
		if store.Status != models.StoreApproved {
			continue
		}
		completed := completedByStore[store.ID]
		if len(completed) == 0 {
			continue
		}

		reviewed := make(map[int64]bool)
		for n := between(ctx.Rng, ctx.Cfg.ReviewsPerStore); n > 0; n-- {
			var fresh []OrderRef
			for _, o := range completed {
				if !reviewed[o.UserID] {
					fresh = append(fresh, o)
				}
			}
			if len(fresh) == 0 {
				fresh = completed
			}

			order := pick(ctx.Rng, fresh)
			reviewed[order.UserID] = true

			rating := choice(ctx.Rng, ratings, ctx.Cfg.RatingWeights)
			createdAt := reviewTime(ctx, order)

			review := models.Review{
				ID:      uuid.NewString(),
				StoreID: store.ID,
				UserID:  order.UserID,
				Rating:  rating,
				Audit: models.Audit{
					CreatedAt: createdAt,
					CreatedBy: order.UserID,
					UpdatedAt: updatedAfter(ctx.Rng, createdAt),
					UpdatedBy: order.UserID,
				},
			}
			if ctx.Rng.Float64() > 0.2 {
				content := pick(ctx.Rng, reviewPhrases[rating])
				review.Content = &content
			}
			if err := ctx.Sink.Write(&review); err != nil {
				return err
			}
			ctx.ReviewCount++
		}
	}
	return ctx.Sink.Comment("")
}

// reviewTime dates the review strictly after the reviewed order completed.
func reviewTime(ctx *Context, order OrderRef) time.Time {
	base := time.Now()
	if order.CompletedAt != nil {
		base = *order.CompletedAt
	}
	return base.Add(time.Duration(intBetween(ctx.Rng, 1, 72)) * time.Hour)
}
