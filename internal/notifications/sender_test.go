package notifications

import (
	"context"
	"testing"
	"time"

	"github.com/meetwith/scheduler-backend/internal/model"
	"github.com/meetwith/scheduler-backend/internal/pkg/fcm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeFCM struct {
	sent []*fcm.Message
}

func (f *fakeFCM) SendMessage(_ context.Context, m *fcm.Message) error {
	f.sent = append(f.sent, m)
	return nil
}

func (f *fakeFCM) SendMessageBatch(_ context.Context, ms []*fcm.Message) error {
	f.sent = append(f.sent, ms...)
	return nil
}

func TestDueReminders(t *testing.T) {
	from := time.Date(2024, 2, 5, 10, 0, 0, 0, time.UTC)
	to := from.Add(time.Minute)

	found := []*model.Meeting{
		{
			ID:        1,
			Title:     "due in window",
			Start:     from.Add(15 * time.Minute),
			Reminders: []time.Duration{15 * time.Minute},
		},
		{
			ID:        2,
			Title:     "fires later",
			Start:     from.Add(2 * time.Hour),
			Reminders: []time.Duration{15 * time.Minute},
		},
		{
			ID:        3,
			Title:     "two offsets, one due",
			Start:     from.Add(time.Hour),
			Reminders: []time.Duration{time.Hour, 5 * time.Minute},
		},
		{
			ID:    4,
			Title: "no reminders",
			Start: from.Add(30 * time.Minute),
		},
	}

	due := dueReminders(found, from, to)

	require.Len(t, due, 2)
	assert.Equal(t, int64(1), due[0].meeting.ID)
	assert.Equal(t, 15*time.Minute, due[0].offset)
	assert.Equal(t, int64(3), due[1].meeting.ID)
	assert.Equal(t, time.Hour, due[1].offset)
}

func TestSendReminders(t *testing.T) {
	fcmService := &fakeFCM{}
	s := &Sender{
		logger: zap.NewNop().Sugar(),
		fcm:    fcmService,
	}

	meeting := &model.Meeting{
		ID:           7,
		SeriesID:     3,
		Title:        "standup",
		Participants: []string{"0xaa", "0xbb", "0xcc", "0xdd"},
		Start:        time.Date(2024, 2, 5, 10, 0, 0, 0, time.UTC),
	}

	accounts := map[string]*model.Account{
		// 0xaa has no account at all
		"0xbb": {AccountCreate: model.AccountCreate{Address: "0xbb", PushToken: "token-b", Notify: true}},
		"0xcc": {AccountCreate: model.AccountCreate{Address: "0xcc", PushToken: "token-c", Notify: false}},
		"0xdd": {AccountCreate: model.AccountCreate{Address: "0xdd", PushToken: "", Notify: true}},
	}

	err := s.sendReminders(context.Background(), []*reminder{{meeting: meeting, offset: 15 * time.Minute}}, accounts)
	require.NoError(t, err)

	require.Len(t, fcmService.sent, 1)
	assert.Equal(t, "token-b", fcmService.sent[0].Token)
	assert.Equal(t, "standup", fcmService.sent[0].Data["meeting_title"])
}

func TestSendRemindersUnsupportedOffset(t *testing.T) {
	s := &Sender{
		logger: zap.NewNop().Sugar(),
		fcm:    &fakeFCM{},
	}

	meeting := &model.Meeting{ID: 1, Participants: []string{"0xaa"}}

	err := s.sendReminders(context.Background(), []*reminder{{meeting: meeting, offset: 7 * time.Minute}}, nil)
	assert.Error(t, err)
}

func TestLoopStopsWhenDoneCloses(t *testing.T) {
	s := &Sender{
		logger: zap.NewNop().Sugar(),
		fcm:    &fakeFCM{},
	}

	ticks := make(chan time.Time)
	done := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		s.loop(context.Background(), ticks, done, time.Now())
		close(finished)
	}()

	close(done)

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("loop kept running after shutdown")
	}
}

func TestMapToOffsetValue(t *testing.T) {
	val, err := mapToOffsetValue(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, offsetValueDay, val)

	_, err = mapToOffsetValue(42 * time.Minute)
	assert.Error(t, err)
}
