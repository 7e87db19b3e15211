// Package devseed loads demo profiles, jobs and bids for local development.
// Seeding goes through the services so every row passes the same validation
// as an API request.
package devseed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hustlehub/hustle-api/internal/core"
	"github.com/hustlehub/hustle-api/internal/domain/model"
	apperrors "github.com/hustlehub/hustle-api/internal/errors"
	"github.com/hustlehub/hustle-api/internal/service"
)

// Services bundles the dependencies needed for development seeding.
type Services struct {
	Jobs     *service.JobService
	Bids     *service.BidService
	Profiles core.ProfileRepository
	// Now anchors seeded schedules; defaults to time.Now.
	Now func() time.Time
}

type jobSeed struct {
	owner   string
	request func(now time.Time) *model.CreateJobRequest
	bids    []bidSeed
}

type bidSeed struct {
	hustler string
	price   float64
	notes   string
}

// Run seeds profiles, then jobs with their bids. A job whose owner already has
// an open posting with the same title is skipped, so Run can be repeated.
func Run(ctx context.Context, svcs Services, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	now := time.Now
	if svcs.Now != nil {
		now = svcs.Now
	}

	failures := seedProfiles(ctx, svcs.Profiles, logger)
	for _, seed := range defaultJobs() {
		failures += seedJob(ctx, svcs, seed, now(), logger)
	}
	if failures > 0 {
		return fmt.Errorf("%d seed errors; check logs", failures)
	}
	return nil
}

func defaultProfiles() []*model.Profile {
	return []*model.Profile{
		{UserID: "giver-1", DisplayName: "Demo Giver", Role: "job_giver"},
		{UserID: "giver-2", DisplayName: "Karim Traders", Role: "job_giver"},
		{UserID: "hustler-1", DisplayName: "Demo Hustler", Role: "hustler", Skills: []string{"moving", "cleaning"}},
		{UserID: "hustler-2", DisplayName: "Second Hustler", Role: "hustler", Skills: []string{"tutoring"}},
	}
}

func seedProfiles(ctx context.Context, profiles core.ProfileRepository, logger *slog.Logger) int {
	failures := 0
	for _, p := range defaultProfiles() {
		if err := profiles.Upsert(ctx, p); err != nil {
			logger.ErrorContext(ctx, "seed profile failed", "user_id", p.UserID, "error", err)
			failures++
		}
	}
	return failures
}

func defaultJobs() []jobSeed {
	day := func(now time.Time, days int) time.Time {
		return now.AddDate(0, 0, days).UTC().Truncate(24 * time.Hour)
	}
	return []jobSeed{
		{
			owner: "giver-1",
			request: func(now time.Time) *model.CreateJobRequest {
				return &model.CreateJobRequest{
					Title:       "Move furniture to new flat",
					Description: "Carry a sofa, two beds and boxes to the third floor. No lift.",
					JobType:     "moving",
					Location:    model.Location{Division: "Dhaka", District: "Dhaka", Upazila: "Dhanmondi", Area: "Road 27"},
					Schedule:    model.Schedule{Date: day(now, 1), StartTime: "10:00", DurationMinutes: 180},
					Payment:     model.Payment{Method: model.PaymentFixed, Amount: 1500, Platform: "bkash"},
					HiringType:  model.HiringBidding,
				}
			},
			bids: []bidSeed{
				{hustler: "hustler-1", price: 1400, notes: "I can bring a friend."},
				{hustler: "hustler-2", price: 1600},
			},
		},
		{
			owner: "giver-1",
			request: func(now time.Time) *model.CreateJobRequest {
				return &model.CreateJobRequest{
					Title:          "Math tutor for class 8",
					Description:    "Two evening sessions a week covering algebra and geometry.",
					JobType:        "tutoring",
					Location:       model.Location{Division: "Dhaka", District: "Dhaka", Upazila: "Gulshan"},
					Schedule:       model.Schedule{Date: day(now, 5), StartTime: "18:30", DurationMinutes: 90},
					Payment:        model.Payment{Method: model.PaymentHourly, Rate: 400, Platform: "nagad"},
					HiringType:     model.HiringInstant,
					SkillsRequired: []string{"tutoring"},
				}
			},
			bids: []bidSeed{{hustler: "hustler-2", price: 400}},
		},
		{
			owner: "giver-2",
			request: func(now time.Time) *model.CreateJobRequest {
				return &model.CreateJobRequest{
					Title:       "Shop stock count",
					Description: "Count and label inventory after closing.",
					JobType:     "inventory",
					Location:    model.Location{Division: "Chattogram", District: "Chattogram", Upazila: "Panchlaish"},
					Schedule:    model.Schedule{Date: day(now, 10), StartTime: "20:00", DurationMinutes: 300},
					Payment:     model.Payment{Method: model.PaymentFixed, Amount: 2500, Platform: "cash"},
					HiringType:  model.HiringBidding,
				}
			},
		},
	}
}

func seedJob(ctx context.Context, svcs Services, seed jobSeed, now time.Time, logger *slog.Logger) int {
	req := seed.request(now)
	exists, err := jobExists(ctx, svcs.Jobs, seed.owner, req.Title)
	if err != nil {
		logger.ErrorContext(ctx, "lookup seeded job failed", "title", req.Title, "error", err)
		return 1
	}
	if exists {
		logger.InfoContext(ctx, "seed job already present", "title", req.Title)
		return 0
	}

	job, err := svcs.Jobs.Create(ctx, req, seed.owner)
	if err != nil {
		logger.ErrorContext(ctx, "seed job failed", "title", req.Title, "error", err)
		return 1
	}
	logger.InfoContext(ctx, "seeded job", "id", job.ID, "title", job.Title)

	failures := 0
	for _, b := range seed.bids {
		_, err := svcs.Bids.Place(ctx, job.ID, b.hustler, &model.PlaceBidRequest{Price: b.price, Notes: b.notes})
		if err != nil && !errors.Is(err, context.Canceled) && !apperrors.IsDuplicate(err) {
			logger.ErrorContext(ctx, "seed bid failed", "job_id", job.ID, "hustler_id", b.hustler, "error", err)
			failures++
		}
	}
	return failures
}

func jobExists(ctx context.Context, jobs *service.JobService, owner, title string) (bool, error) {
	page, err := jobs.List(ctx, model.JobListOptions{
		Filters: model.JobFilters{CreatedBy: &owner, Search: &title},
		Limit:   50,
	}, "")
	if err != nil {
		return false, err
	}
	for _, j := range page.Jobs {
		if j.Title == title {
			return true, nil
		}
	}
	return false, nil
}
