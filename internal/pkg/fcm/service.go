package fcm

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"golang.org/x/sync/errgroup"
)

// FCM caps SendAll at 500 messages per call.
const maxBatchSize = 500

// Message is a single data push to one device token.
type Message struct {
	Token string
	Data  map[string]string
}

// Service wraps the Firebase messaging client. Credentials come from the
// GOOGLE_APPLICATION_CREDENTIALS environment the SDK reads itself.
type Service struct {
	client *messaging.Client
}

func NewService(ctx context.Context) (*Service, error) {
	app, err := firebase.NewApp(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("obtaining messaging client: %w", err)
	}

	return &Service{client: client}, nil
}

func (s *Service) SendMessage(ctx context.Context, m *Message) error {
	if _, err := s.client.Send(ctx, toFirebaseMessage(m)); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

// SendMessageBatch fans the messages out in chunks of maxBatchSize, all
// chunks in flight at once. The first chunk error cancels the rest.
func (s *Service) SendMessageBatch(ctx context.Context, ms []*Message) error {
	messages := make([]*messaging.Message, len(ms))
	for i, m := range ms {
		messages[i] = toFirebaseMessage(m)
	}

	g, ctx := errgroup.WithContext(ctx)
	for len(messages) > 0 {
		chunk := messages
		if len(chunk) > maxBatchSize {
			chunk = chunk[:maxBatchSize]
		}
		messages = messages[len(chunk):]

		g.Go(func() error {
			if _, err := s.client.SendAll(ctx, chunk); err != nil {
				return fmt.Errorf("send batch: %w", err)
			}
			return nil
		})
	}

	return g.Wait()
}

func toFirebaseMessage(m *Message) *messaging.Message {
	return &messaging.Message{
		Token: m.Token,
		Data:  m.Data,
	}
}
