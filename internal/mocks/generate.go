// Package mocks provides gomock implementations of the core repository and
// transport ports.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	jobs := mocks.NewMockJobRepository(ctrl)
//	jobs.EXPECT().GetByID(gomock.Any(), jobID).Return(job, nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=job_repository_mock.go github.com/hustlehub/hustle-api/internal/core JobRepository
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=bid_repository_mock.go github.com/hustlehub/hustle-api/internal/core BidRepository
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=assignment_repository_mock.go github.com/hustlehub/hustle-api/internal/core AssignmentRepository
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=review_repository_mock.go github.com/hustlehub/hustle-api/internal/core ReviewRepository
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=notification_repository_mock.go github.com/hustlehub/hustle-api/internal/core NotificationRepository
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=message_repository_mock.go github.com/hustlehub/hustle-api/internal/core MessageRepository
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=profile_repository_mock.go github.com/hustlehub/hustle-api/internal/core ProfileRepository
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=cache_repository_mock.go github.com/hustlehub/hustle-api/internal/core CacheRepository
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=channel_mock.go github.com/hustlehub/hustle-api/internal/core Channel
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=location_validator_mock.go github.com/hustlehub/hustle-api/internal/core LocationValidator
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=withdraw_checker_mock.go github.com/hustlehub/hustle-api/internal/core WithdrawChecker
