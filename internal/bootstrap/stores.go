package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/hustlehub/hustle-api/internal/core"
	"github.com/hustlehub/hustle-api/internal/data"
	"github.com/hustlehub/hustle-api/internal/data/memstore"
)

// Repositories groups the storage ports the marketplace services depend on.
type Repositories struct {
	Jobs          core.JobRepository
	Bids          core.BidRepository
	Assignments   core.AssignmentRepository
	Reviews       core.ReviewRepository
	Notifications core.NotificationRepository
	Messages      core.MessageRepository
	Profiles      core.ProfileRepository
}

// NewPostgresRepositories builds repositories backed by PostgreSQL.
func NewPostgresRepositories(db *sql.DB, logger *slog.Logger) Repositories {
	cfg := data.RepoConfig{Logger: logger}
	return Repositories{
		Jobs:          data.NewJobRepo(db, cfg),
		Bids:          data.NewBidRepo(db, cfg),
		Assignments:   data.NewAssignmentRepo(db, cfg),
		Reviews:       data.NewReviewRepo(db, cfg),
		Notifications: data.NewNotificationRepo(db, cfg),
		Messages:      data.NewMessageRepo(db, cfg),
		Profiles:      data.NewProfileRepo(db, cfg),
	}
}

// NewMemoryRepositories builds repositories over a single in-process store.
// State is lost on restart.
func NewMemoryRepositories(logger *slog.Logger) Repositories {
	store := memstore.New(memstore.Options{Logger: logger})
	return Repositories{
		Jobs:          store.Jobs(),
		Bids:          store.Bids(),
		Assignments:   store.Assignments(),
		Reviews:       store.Reviews(),
		Notifications: store.Notifications(),
		Messages:      store.Messages(),
		Profiles:      store.Profiles(),
	}
}
