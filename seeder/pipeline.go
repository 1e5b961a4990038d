package seeder

import (
	"fmt"

	"github.com/yeremiapane/spot-seeder/utils"
)

// EntitySet names a class of generated entities a stage can read or produce.
type EntitySet string

const (
	SetCategories EntitySet = "categories"
	SetUsers      EntitySet = "users"
	SetStores     EntitySet = "stores"
	SetMenus      EntitySet = "menus"
	SetOrders     EntitySet = "orders"
	SetReviews    EntitySet = "reviews"
)

// Stage is one step of the generation pipeline. A stage declares the entity
// sets it samples from and the one it produces; the pipeline refuses to be
// built when a stage would run before one of its dependencies.
type Stage interface {
	Name() string
	Reads() []EntitySet
	Produces() EntitySet
	Run(ctx *Context) error
}

type Pipeline struct {
	stages []Stage
}

// NewPipeline validates stage ordering at construction time.
func NewPipeline(stages ...Stage) (*Pipeline, error) {
	produced := make(map[EntitySet]bool)
	for _, st := range stages {
		for _, dep := range st.Reads() {
			if !produced[dep] {
				return nil, fmt.Errorf("pipeline: stage %s reads %q before any stage produces it", st.Name(), dep)
			}
		}
		if produced[st.Produces()] {
			return nil, fmt.Errorf("pipeline: entity set %q produced twice", st.Produces())
		}
		produced[st.Produces()] = true
	}
	return &Pipeline{stages: stages}, nil
}

// Run executes the stages in order. Generation is one-shot: the first stage
// error aborts the whole run.
func (p *Pipeline) Run(ctx *Context) error {
	for _, st := range p.stages {
		utils.InfoLogger.Printf("Generating %s", st.Produces())
		if err := st.Run(ctx); err != nil {
			return fmt.Errorf("seed %s: %w", st.Produces(), err)
		}
	}
	return nil
}

// DefaultStages returns the six generators in dependency order.
func DefaultStages() []Stage {
	return []Stage{
		&CategoryStage{},
		&UserStage{},
		&StoreStage{},
		&MenuStage{},
		&OrderStage{},
		&ReviewStage{},
	}
}
