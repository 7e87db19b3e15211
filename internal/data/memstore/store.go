// Package memstore implements every repository port in process memory. All
// state sits behind one mutex, so each lifecycle operation is atomic in the
// same way a database transaction holding the job row lock is. It backs the
// STORE_DRIVER=memory mode and the service scenario tests.
package memstore

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hustlehub/hustle-api/internal/domain/model"
)

// Clock supplies the store's notion of now.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// Options configures a Store.
type Options struct {
	Clock  Clock
	Logger *slog.Logger
}

// Store holds all marketplace state.
type Store struct {
	mu     sync.Mutex
	clock  Clock
	logger *slog.Logger

	jobs          map[string]*model.Job
	jobOrder      []string
	bids          map[string]*model.Bid
	reviews       map[string]*model.Review // keyed by job id
	reviewOrder   []string
	notifications map[string]*model.Notification
	notifOrder    []string
	messages      map[string][]*model.Message // keyed by job id
	profiles      map[string]*model.Profile
}

// New creates an empty Store.
func New(opts Options) *Store {
	clock := opts.Clock
	if clock == nil {
		clock = systemClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		clock:         clock,
		logger:        logger.With("component", "memstore"),
		jobs:          make(map[string]*model.Job),
		bids:          make(map[string]*model.Bid),
		reviews:       make(map[string]*model.Review),
		notifications: make(map[string]*model.Notification),
		messages:      make(map[string][]*model.Message),
		profiles:      make(map[string]*model.Profile),
	}
}

// Jobs returns the job repository view of the store.
func (s *Store) Jobs() *JobRepo { return &JobRepo{s: s} }

// Bids returns the bid repository view of the store.
func (s *Store) Bids() *BidRepo { return &BidRepo{s: s} }

// Assignments returns the assignment repository view of the store.
func (s *Store) Assignments() *AssignmentRepo { return &AssignmentRepo{s: s} }

// Reviews returns the review repository view of the store.
func (s *Store) Reviews() *ReviewRepo { return &ReviewRepo{s: s} }

// Notifications returns the notification repository view of the store.
func (s *Store) Notifications() *NotificationRepo { return &NotificationRepo{s: s} }

// Messages returns the chat message repository view of the store.
func (s *Store) Messages() *MessageRepo { return &MessageRepo{s: s} }

// Profiles returns the profile repository view of the store.
func (s *Store) Profiles() *ProfileRepo { return &ProfileRepo{s: s} }

func newID() string { return uuid.NewString() }

func cloneJob(j *model.Job) *model.Job {
	if j == nil {
		return nil
	}
	c := *j
	if j.AssignedTo != nil {
		assigned := *j.AssignedTo
		c.AssignedTo = &assigned
	}
	c.SkillsRequired = append([]string{}, j.SkillsRequired...)
	c.Bids = append([]string{}, j.Bids...)
	c.ApplicantIDs = append([]string{}, j.ApplicantIDs...)
	return &c
}

func cloneBid(b *model.Bid) *model.Bid {
	if b == nil {
		return nil
	}
	c := *b
	c.StatusHistory = model.NewStatusHistory(b.StatusHistory.Entries()...)
	return &c
}

func cloneBids(in []*model.Bid) []*model.Bid {
	out := make([]*model.Bid, len(in))
	for i, b := range in {
		out[i] = cloneBid(b)
	}
	return out
}

func cloneProfile(p *model.Profile) *model.Profile {
	c := *p
	c.Skills = append([]string{}, p.Skills...)
	return &c
}
