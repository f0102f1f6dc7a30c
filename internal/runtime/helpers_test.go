package runtime

import (
	"context"
	"sync"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/require"

	configpkg "github.com/fancast/fancast/internal/runtime/config"
	idspkg "github.com/fancast/fancast/internal/runtime/ids"
	loggingpkg "github.com/fancast/fancast/internal/runtime/logging"
	transportpkg "github.com/fancast/fancast/transport"
)

type publishedMessage struct {
	topic   string
	payload []byte
}

type testPublisher struct {
	mu        sync.Mutex
	published []publishedMessage
	closed    bool
	err       error
}

func (p *testPublisher) Publish(topic string, messages ...*message.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	for _, msg := range messages {
		p.published = append(p.published, publishedMessage{topic: topic, payload: msg.Payload})
	}
	return nil
}

func (p *testPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

func (p *testPublisher) Topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	topics := make([]string, len(p.published))
	for i, m := range p.published {
		topics[i] = m.topic
	}
	return topics
}

func (p *testPublisher) Messages() []publishedMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	clone := make([]publishedMessage, len(p.published))
	copy(clone, p.published)
	return clone
}

func (p *testPublisher) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

type testSubscriber struct {
	mu      sync.Mutex
	streams map[string]chan *message.Message
	calls   []string
	closed  bool
	err     error
}

func newTestSubscriber() *testSubscriber {
	return &testSubscriber{streams: make(map[string]chan *message.Message)}
}

func (s *testSubscriber) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	s.calls = append(s.calls, topic)
	ch := make(chan *message.Message, 16)
	s.streams[topic] = ch
	go func() {
		<-ctx.Done()
		s.mu.Lock()
		if s.streams[topic] == ch {
			delete(s.streams, topic)
		}
		s.mu.Unlock()
		close(ch)
	}()
	return ch, nil
}

func (s *testSubscriber) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *testSubscriber) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := make([]string, len(s.calls))
	copy(clone, s.calls)
	return clone
}

func (s *testSubscriber) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// deliver feeds a raw message into the stream for topic, as if the transport
// had received it.
func (s *testSubscriber) deliver(t *testing.T, topic string, payload []byte) {
	t.Helper()
	s.mu.Lock()
	ch, ok := s.streams[topic]
	s.mu.Unlock()
	require.True(t, ok, "no active stream for topic %q", topic)
	ch <- message.NewMessage(idspkg.CreateULID(), payload)
}

func (s *testSubscriber) hasStream(topic string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.streams[topic]
	return ok
}

func newTestRouter(t *testing.T, conf *configpkg.Config, deps Dependencies) (*Router, *testPublisher, *testSubscriber) {
	t.Helper()
	if conf == nil {
		conf = &configpkg.Config{PubSubSystem: "test"}
	}

	pub := &testPublisher{}
	sub := newTestSubscriber()
	if deps.Transport.Publisher == nil && deps.Transport.Subscriber == nil {
		deps.Transport = transportpkg.Transport{Publisher: pub, Subscriber: sub}
	}

	r, err := TryNewRouter(conf, loggingpkg.NopLogger(), context.Background(), deps)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Disconnect() })
	return r, pub, sub
}
