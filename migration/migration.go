package migration

import (
	"context"

	"github.com/eventara/backend/internal/entity"
	"github.com/eventara/backend/pkg/xcontext"
)

// When this migrator is called, no need to call other migrators.
func AutoMigrate(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&entity.User{},
		&entity.Event{},
		&entity.Category{},
		&entity.Nominee{},
		&entity.Ballot{},
		&entity.Collaborator{},
	)
}
