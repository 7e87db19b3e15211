package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hustlehub/hustle-api/internal/core"
	"github.com/hustlehub/hustle-api/internal/domain/marketplace"
	"github.com/hustlehub/hustle-api/internal/domain/model"
	apperrors "github.com/hustlehub/hustle-api/internal/errors"
	"github.com/hustlehub/hustle-api/internal/realtime"
)

const (
	defaultMessageLimit = 50
	maxMessageLimit     = 200
)

// ChatServiceOptions groups dependencies for ChatService.
type ChatServiceOptions struct {
	Jobs     core.JobRepository     // Required
	Messages core.MessageRepository // Required
	Realtime core.Channel           // Optional: pushes "message" events on the job topic
	Logger   *slog.Logger
}

// ChatService gates and carries the job-scoped chat between the owner and
// the assigned hustler. Chat is open only while the job is in progress.
type ChatService struct {
	jobs     core.JobRepository
	messages core.MessageRepository
	realtime core.Channel
	logger   *slog.Logger
}

// NewChatService constructs a new ChatService.
func NewChatService(opts ChatServiceOptions) *ChatService {
	if opts.Jobs == nil {
		panic("JobRepository is required")
	}
	if opts.Messages == nil {
		panic("MessageRepository is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatService{
		jobs:     opts.Jobs,
		messages: opts.Messages,
		realtime: opts.Realtime,
		logger:   logger.With("component", "chat_service"),
	}
}

// CanMessage reports whether userID may chat on jobID. Unknown jobs and
// lookup failures answer false.
func (s *ChatService) CanMessage(ctx context.Context, jobID, userID string) bool {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			s.logger.WarnContext(ctx, "chat gate lookup failed", "job_id", jobID, "error", err)
		}
		return false
	}
	return marketplace.CanMessage(job, userID)
}

// Send posts a message from sender on jobID.
func (s *ChatService) Send(
	ctx context.Context,
	jobID, sender string,
	req *model.SendMessageRequest,
) (*model.Message, error) {
	if req == nil {
		return nil, apperrors.Validation("request body is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	msg, err := s.messages.Create(ctx, &model.Message{JobID: jobID, SenderID: sender, Body: req.Body})
	if err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}

	realtime.Broadcast(ctx, s.realtime, s.logger, toJob(jobID, model.RealtimeEvent{
		Type:      model.EventMessage,
		JobID:     jobID,
		Data:      msg,
		Timestamp: msg.CreatedAt,
	}))
	return msg, nil
}

// List returns the chat history of jobID to one of its participants.
func (s *ChatService) List(ctx context.Context, jobID, userID string, limit, offset int) ([]*model.Message, error) {
	if !s.CanMessage(ctx, jobID, userID) {
		return nil, apperrors.Forbidden("chat is not open for this user")
	}
	if offset < 0 {
		offset = 0
	}
	msgs, err := s.messages.ListByJob(ctx, jobID, clampLimit(limit, defaultMessageLimit, maxMessageLimit), offset)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	if msgs == nil {
		msgs = []*model.Message{}
	}
	return msgs, nil
}

// ActiveChats lists the in-progress jobs userID participates in.
func (s *ChatService) ActiveChats(ctx context.Context, userID string) ([]*model.Job, error) {
	jobs, err := s.jobs.ListActiveForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list active chats: %w", err)
	}
	if jobs == nil {
		jobs = []*model.Job{}
	}
	return jobs, nil
}
