package seeder

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/yeremiapane/spot-seeder/models"
	"github.com/yeremiapane/spot-seeder/utils"
)

// canonicalAccounts are the fixed test identities, one per role, always
// occupying ids 1-4. Their password equals their nickname.
var canonicalAccounts = []struct {
	ID       int64
	Name     string
	Nickname string
	Email    string
	Role     string
}{
	{1, "master", "master", "master@example.com", models.RoleMaster},
	{2, "owner", "owner", "owner@example.com", models.RoleOwner},
	{3, "chef", "chef", "chef@example.com", models.RoleChef},
	{4, "customer", "customer", "customer@example.com", models.RoleCustomer},
}

// UserStage emits the canonical accounts followed by the randomized
// population. The first K users of the non-canonical range become OWNERs so
// the configured owner ratio holds exactly. Every user gets an auth row whose
// digest verifies against the nickname.
type UserStage struct{}

func (UserStage) Name() string        { return "users" }
func (UserStage) Reads() []EntitySet  { return nil }
func (UserStage) Produces() EntitySet { return SetUsers }

func (s UserStage) Run(ctx *Context) error {
	if err := ctx.Sink.Comment("Users"); err != nil {
		return err
	}

	for _, acc := range canonicalAccounts {
		createdAt := pastTime(ctx.Rng, 365, 1)
		user := models.User{
			ID:            acc.ID,
			Name:          acc.Name,
			Nickname:      acc.Nickname,
			Email:         acc.Email,
			Male:          ctx.Rng.Intn(2) == 0,
			Age:           intBetween(ctx.Rng, 25, 45),
			RoadAddress:   ctx.Faker.Address().Street,
			AddressDetail: fmt.Sprintf("%d호", intBetween(ctx.Rng, 101, 999)),
			Role:          acc.Role,
			Audit: models.Audit{
				CreatedAt: createdAt,
				CreatedBy: acc.ID,
				UpdatedAt: updatedAfter(ctx.Rng, createdAt),
				UpdatedBy: acc.ID,
			},
		}
		if err := s.emit(ctx, &user, acc.ID); err != nil {
			return err
		}
	}

	// Positional owner assignment over the non-canonical range keeps the
	// ratio exact regardless of the random source. Rounded, not truncated:
	// 6 users at ratio 0.1 still yield one owner.
	numOwners := ownerCount(ctx.Cfg.NumUsers-len(canonicalAccounts), ctx.Cfg.OwnerRatio)

	for i := len(canonicalAccounts); i < ctx.Cfg.NumUsers; i++ {
		userID := int64(i + 1)
		role := models.RoleCustomer
		if i-len(canonicalAccounts) < numOwners {
			role = models.RoleOwner
		}
		createdAt := pastTime(ctx.Rng, 365, 1)
		user := models.User{
			ID:            userID,
			Name:          ctx.Faker.Name(),
			Nickname:      fmt.Sprintf("user%d", userID),
			Email:         fmt.Sprintf("user%d@example.com", userID),
			Male:          ctx.Rng.Intn(2) == 0,
			Age:           intBetween(ctx.Rng, 18, 65),
			RoadAddress:   ctx.Faker.Address().Street,
			AddressDetail: fmt.Sprintf("%d호", intBetween(ctx.Rng, 101, 999)),
			Role:          role,
			Audit: models.Audit{
				CreatedAt: createdAt,
				CreatedBy: userID,
				UpdatedAt: updatedAfter(ctx.Rng, createdAt),
				UpdatedBy: int64(intBetween(ctx.Rng, 1, int(userID))),
			},
		}
		if err := s.emit(ctx, &user, user.UpdatedBy); err != nil {
			return err
		}
	}
	return ctx.Sink.Comment("")
}

// emit writes the user and its paired auth row, then records the id in the
// sampling arenas.
func (UserStage) emit(ctx *Context, user *models.User, authUpdatedBy int64) error {
	if err := ctx.Sink.Write(user); err != nil {
		return err
	}

	auth := models.UserAuth{
		ID:             uuid.NewString(),
		UserID:         user.ID,
		HashedPassword: hashPassword(user.Nickname, ctx.Cfg.HashCost),
		Audit: models.Audit{
			CreatedAt: user.CreatedAt,
			CreatedBy: user.ID,
			UpdatedAt: updatedAfter(ctx.Rng, user.CreatedAt),
			UpdatedBy: authUpdatedBy,
		},
	}
	if err := ctx.Sink.Write(&auth); err != nil {
		return err
	}

	if user.Role == models.RoleOwner {
		ctx.Owners = append(ctx.Owners, user.ID)
	}
	ctx.Users = append(ctx.Users, user.ID)
	return nil
}

// hashPassword returns a bcrypt digest of the plaintext. When hashing fails
// it degrades to a clearly marked placeholder instead of aborting the run;
// the verification utility reports the placeholder as a distinct condition.
func hashPassword(plain string, cost int) string {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		utils.ErrorLogger.Warnf("bcrypt unavailable for %q, emitting placeholder digest: %v", plain, err)
		return placeholderDigest(plain)
	}
	return string(digest)
}

func placeholderDigest(plain string) string {
	return fmt.Sprintf("$2a$10$hashed_%s_placeholder", plain)
}

// ownerCount rounds the owner quota over the non-canonical population.
func ownerCount(population int, ratio float64) int {
	return int(math.Round(float64(population) * ratio))
}
