package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/meetwith/scheduler-backend/internal/database"
	"github.com/meetwith/scheduler-backend/internal/model"
	"github.com/meetwith/scheduler-backend/internal/pkg/fcm"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

// Sender pushes meeting reminders. Every minute it looks for meetings whose
// configured reminder offsets land in the elapsed window and notifies the
// participants that opted in.
type Sender struct {
	db              database.PGX
	logger          *zap.SugaredLogger
	accounts        accountsRepository
	meetingsService meetingsService
	fcm             fcmService
}

type accountsRepository interface {
	GetAccountsByAddresses(ctx context.Context, q database.Queryable, addresses []string) ([]*model.Account, error)
}

type meetingsService interface {
	Meetings(ctx context.Context, filter model.MeetingsFilter) ([]*model.Meeting, error)
}

type fcmService interface {
	SendMessage(ctx context.Context, m *fcm.Message) error
	SendMessageBatch(ctx context.Context, ms []*fcm.Message) error
}

func NewSender(
	db database.PGX,
	logger *zap.SugaredLogger,
	accounts accountsRepository,
	meetingsService meetingsService,
	fcm fcmService,
) *Sender {
	return &Sender{
		db:              db,
		logger:          logger,
		accounts:        accounts,
		meetingsService: meetingsService,
		fcm:             fcm,
	}
}

func (s *Sender) Start(ctx context.Context) {
	now := time.Now()

	from := now.Truncate(time.Minute)
	to := from.Add(time.Minute)
	// initial send
	go s.findAndSendReminders(ctx, from, to)

	time.Sleep(to.Sub(time.Now()))

	// send at first minute
	from = to
	to = time.Now().Truncate(time.Minute).Add(time.Minute)
	go s.findAndSendReminders(ctx, from, to)

	ticker := time.NewTicker(time.Minute)
	done := make(chan struct{})

	closer.Bind(func() {
		close(done)
		ticker.Stop()
	})

	s.loop(ctx, ticker.C, done, to)
}

// loop schedules a send for every elapsed minute until done is closed.
func (s *Sender) loop(ctx context.Context, ticks <-chan time.Time, done <-chan struct{}, to time.Time) {
	for {
		select {
		case <-done:
			return
		case t := <-ticks:
			from := to
			to = t.Truncate(time.Minute).Add(time.Minute)
			go s.findAndSendReminders(ctx, from, to)
		}
	}
}

type reminder struct {
	meeting *model.Meeting
	offset  time.Duration
}

func (s *Sender) findAndSendReminders(ctx context.Context, from, to time.Time) {
	s.logger.Debugw("sending reminders", "from", from, "to", to)

	// widest supported offset is a day, so no meeting starting later than
	// that can owe a reminder in this window
	filter := model.MeetingsFilter{
		From: from,
		To:   to.Add(24 * time.Hour),
	}
	found, err := s.meetingsService.Meetings(ctx, filter)
	if err != nil {
		s.logger.Errorw("failed to get meetings", "filter", filter, "err", err)
		return
	}

	reminders := dueReminders(found, from, to)
	if len(reminders) == 0 {
		return
	}

	accounts, err := s.getRecipients(ctx, reminders)
	if err != nil {
		s.logger.Errorw("failed to get recipients", "err", err)
		return
	}

	if err := s.sendReminders(ctx, reminders, accounts); err != nil {
		s.logger.Errorw("failed to send reminders", "err", err)
	}
}

// dueReminders keeps the (meeting, offset) pairs whose fire time falls in
// [from, to).
func dueReminders(found []*model.Meeting, from, to time.Time) []*reminder {
	var res []*reminder
	for _, m := range found {
		for _, offset := range m.Reminders {
			fireAt := m.Start.Add(-offset)
			if !fireAt.Before(from) && fireAt.Before(to) {
				res = append(res, &reminder{
					meeting: m,
					offset:  offset,
				})
			}
		}
	}

	return res
}

func (s *Sender) getRecipients(ctx context.Context, reminders []*reminder) (map[string]*model.Account, error) {
	var addresses []string
	addressesMap := make(map[string]struct{})

	for _, rm := range reminders {
		for _, p := range rm.meeting.Participants {
			if _, ok := addressesMap[p]; !ok {
				addresses = append(addresses, p)
				addressesMap[p] = struct{}{}
			}
		}
	}

	accounts, err := s.accounts.GetAccountsByAddresses(ctx, s.db, addresses)
	if err != nil {
		return nil, fmt.Errorf("get accounts: %w", err)
	}

	res := make(map[string]*model.Account, len(accounts))
	for _, a := range accounts {
		res[a.Address] = a
	}

	return res, nil
}

func (s *Sender) sendReminders(ctx context.Context, reminders []*reminder, accounts map[string]*model.Account) error {
	var messages []*fcm.Message
	for _, rm := range reminders {
		offsetValue, err := mapToOffsetValue(rm.offset)
		if err != nil {
			return fmt.Errorf("map reminder offset: %w", err)
		}

		for _, p := range rm.meeting.Participants {
			account, ok := accounts[p]
			if !ok {
				// participants without an account can't receive pushes
				continue
			}
			if !account.Notify || account.PushToken == "" {
				continue
			}

			messages = append(messages, &fcm.Message{
				Token: account.PushToken,
				Data: map[string]string{
					"meeting_id":    fmt.Sprintf("%v", rm.meeting.ID),
					"series_id":     fmt.Sprintf("%v", rm.meeting.SeriesID),
					"meeting_title": rm.meeting.Title,
					"reminder_type": fmt.Sprintf("%v", offsetValue),
				},
			})
		}
	}

	if len(messages) == 0 {
		return nil
	}

	if err := s.fcm.SendMessageBatch(ctx, messages); err != nil {
		return fmt.Errorf("send reminders: %w", err)
	}

	return nil
}
