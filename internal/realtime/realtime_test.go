package realtime

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/hustlehub/hustle-api/internal/domain/model"
	"github.com/hustlehub/hustle-api/internal/mocks"
)

type recordingChannel struct {
	mu     sync.Mutex
	topics []string
}

func (r *recordingChannel) Publish(_ context.Context, topic string, _ model.RealtimeEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.topics = append(r.topics, topic)
	return nil
}

func TestNop(t *testing.T) {
	assert.NoError(t, Nop{}.Publish(context.Background(), "job:1", model.RealtimeEvent{}))
}

func TestBroadcast_PublishesEveryMessage(t *testing.T) {
	ch := &recordingChannel{}
	ev := model.RealtimeEvent{Type: model.EventChatClosed, Timestamp: time.Now()}

	Broadcast(context.Background(), ch, nil,
		Message{Topic: model.UserTopic("owner"), Event: ev},
		Message{Topic: model.UserTopic("hustler"), Event: ev},
		Message{Topic: model.JobTopic("j1"), Event: ev},
	)

	sort.Strings(ch.topics)
	assert.Equal(t, []string{"job:j1", "user:hustler", "user:owner"}, ch.topics)
}

func TestBroadcast_SwallowsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	ch := mocks.NewMockChannel(ctrl)
	ch.EXPECT().Publish(gomock.Any(), "job:j1", gomock.Any()).Return(errors.New("down"))

	assert.NotPanics(t, func() {
		Broadcast(context.Background(), ch, nil, Message{Topic: "job:j1"})
	})
}

func TestBroadcast_NilChannel(t *testing.T) {
	assert.NotPanics(t, func() {
		Broadcast(context.Background(), nil, nil, Message{Topic: "job:j1"})
	})
}
