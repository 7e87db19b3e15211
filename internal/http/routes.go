package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/hustlehub/hustle-api/internal/domain/auth"
	"github.com/hustlehub/hustle-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Jobs          *service.JobService
	Bids          *service.BidService
	Assignments   *service.AssignmentService
	Reviews       *service.ReviewService
	Notifications *service.NotificationService
	Chat          *service.ChatService
	Auth          AuthServiceInterface // Optional: enables /api/auth routes and bearer tokens

	// ActorHeaders trusts X-Actor-ID / X-Actor-Role (development only).
	ActorHeaders bool
	// Readiness checks served on /readyz, keyed by dependency name.
	Readiness map[string]HealthCheck
	Logger    *slog.Logger
}

type middleware func(http.Handler) http.Handler

func chain(h http.HandlerFunc, mws ...middleware) http.Handler {
	var out http.Handler = h
	for i := len(mws) - 1; i >= 0; i-- {
		out = mws[i](out)
	}
	return out
}

// NewRouter creates and configures the API router.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}
	mux := http.NewServeMux()

	authOpts := AuthOptions{ActorHeaders: services.ActorHeaders, Logger: logger}
	if services.Auth != nil {
		authOpts.Sessions = services.Auth
	}
	authed := RequireAuth(authOpts)
	optional := OptionalAuth(authOpts)
	givers := RequireRole(domainauth.RoleJobGiver)
	hustlers := RequireRole(domainauth.RoleHustler)

	jobs := &JobHandlers{Svc: services.Jobs, Assignments: services.Assignments, Logger: logger}
	bids := &BidHandlers{Svc: services.Bids, Assignments: services.Assignments, Logger: logger}
	reviews := &ReviewHandlers{Svc: services.Reviews, Logger: logger}
	inbox := &NotificationHandlers{Svc: services.Notifications, Logger: logger}
	chat := &ChatHandlers{Svc: services.Chat, Logger: logger}

	mux.Handle("POST /api/jobs", chain(jobs.CreateJob, authed, givers))
	mux.Handle("GET /api/jobs", chain(jobs.ListJobs, optional))
	mux.Handle("GET /api/jobs/{id}", chain(jobs.GetJob, optional))
	mux.Handle("POST /api/jobs/{id}/cancel", chain(jobs.CancelJob, authed))

	mux.Handle("POST /api/jobs/{id}/bids", chain(bids.PlaceBid, authed, hustlers))
	mux.Handle("GET /api/jobs/{id}/bids", chain(bids.ListBids, authed))
	mux.Handle("POST /api/jobs/{id}/bids/{bidID}/accept", chain(bids.AcceptBid, authed))
	mux.Handle("POST /api/jobs/{id}/bids/{bidID}/reject", chain(bids.RejectBid, authed))
	mux.Handle("GET /api/bids/{id}", chain(bids.GetBid, authed))
	mux.Handle("PATCH /api/bids/{id}/status", chain(bids.UpdateBidStatus, authed))
	mux.Handle("POST /api/bids/{id}/withdraw", chain(bids.WithdrawBid, authed))
	mux.Handle("GET /api/me/bids", chain(bids.MyBids, authed))

	mux.Handle("POST /api/jobs/{id}/review", chain(reviews.SubmitReview, authed))
	mux.Handle("GET /api/hustlers/{id}/reviews", http.HandlerFunc(reviews.ListHustlerReviews))

	mux.Handle("GET /api/notifications", chain(inbox.ListNotifications, authed))
	mux.Handle("GET /api/notifications/unread-count", chain(inbox.UnreadCount, authed))
	mux.Handle("POST /api/notifications/{id}/read", chain(inbox.MarkRead, authed))

	mux.Handle("GET /api/jobs/{id}/messages", chain(chat.ListMessages, authed))
	mux.Handle("POST /api/jobs/{id}/messages", chain(chat.SendMessage, authed))
	mux.Handle("GET /api/me/chats", chain(chat.ActiveChats, authed))

	if services.Auth != nil {
		auth := &AuthHandlers{Svc: services.Auth, Logger: logger}
		mux.Handle("POST /api/auth/login", http.HandlerFunc(auth.Login))
		mux.Handle("POST /api/auth/logout", http.HandlerFunc(auth.Logout))
		mux.Handle("GET /api/auth/me", chain(auth.Me, authed))
	}

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("GET /readyz", readinessHandler(services.Readiness, logger))

	return mux
}
