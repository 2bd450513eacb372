package meetings

import (
	"context"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/meetwith/scheduler-backend/internal/database"
	"github.com/meetwith/scheduler-backend/internal/model"
)

// In-memory collaborators for exercising the service without postgres.

type fakeDB struct{}

func (*fakeDB) Exec(context.Context, database.Sqlizer) (pgconn.CommandTag, error) { return nil, nil }
func (*fakeDB) Get(context.Context, interface{}, database.Sqlizer) error          { return nil }
func (*fakeDB) Select(context.Context, interface{}, database.Sqlizer) error       { return nil }
func (*fakeDB) ExecRaw(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return nil, nil
}
func (*fakeDB) GetPool(context.Context) *pgxpool.Pool { return nil }
func (*fakeDB) BeginTx(context.Context, *pgx.TxOptions) (database.Tx, error) {
	return &fakeTx{}, nil
}

type fakeTx struct{ fakeDB }

func (*fakeTx) Commit(context.Context) error   { return nil }
func (*fakeTx) Rollback(context.Context) error { return nil }

type fakeMeetingsRepo struct {
	meetings   []*model.Meeting
	series     map[int64]*model.MeetingSeries
	nextID     int64
	nextSeries int64
	calls      int
}

func (r *fakeMeetingsRepo) CreateSeries(_ context.Context, _ database.Queryable, info *model.MeetingSeries) (int64, error) {
	r.calls++
	r.nextSeries++
	if r.series == nil {
		r.series = map[int64]*model.MeetingSeries{}
	}
	stored := *info
	stored.ID = r.nextSeries
	r.series[stored.ID] = &stored
	return stored.ID, nil
}

func (r *fakeMeetingsRepo) GetSeriesInfo(_ context.Context, _ database.Queryable, seriesID int64) (*model.MeetingSeries, error) {
	r.calls++
	series, ok := r.series[seriesID]
	if !ok {
		return nil, model.ErrNoRecord
	}
	return series, nil
}

func (r *fakeMeetingsRepo) CreateMeeting(_ context.Context, _ database.Queryable, m *model.Meeting) (int64, error) {
	r.calls++
	r.nextID++
	stored := *m
	stored.ID = r.nextID
	r.meetings = append(r.meetings, &stored)
	return r.nextID, nil
}

func (r *fakeMeetingsRepo) GetMeetingByID(_ context.Context, _ database.Queryable, id int64) (*model.Meeting, error) {
	r.calls++
	for _, m := range r.meetings {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, model.ErrNoRecord
}

func (r *fakeMeetingsRepo) GetMeetings(_ context.Context, _ database.Queryable, filter model.MeetingsFilter) ([]*model.Meeting, error) {
	r.calls++
	var res []*model.Meeting
	for _, m := range r.meetings {
		if !m.Start.Before(filter.To) || !m.End.After(filter.From) {
			continue
		}
		if len(filter.Participants) != 0 && !intersects(m.Participants, filter.Participants) {
			continue
		}
		res = append(res, m)
	}
	return res, nil
}

func (r *fakeMeetingsRepo) GetSeries(_ context.Context, _ database.Queryable, seriesID int64) ([]*model.Meeting, error) {
	r.calls++
	var res []*model.Meeting
	for _, m := range r.meetings {
		if m.SeriesID == seriesID {
			res = append(res, m)
		}
	}
	if len(res) == 0 {
		return nil, model.ErrNoRecord
	}
	return res, nil
}

func (r *fakeMeetingsRepo) UpdateMeeting(_ context.Context, _ database.Queryable, m *model.Meeting) error {
	r.calls++
	for i, old := range r.meetings {
		if old.ID == m.ID {
			stored := *m
			r.meetings[i] = &stored
			return nil
		}
	}
	return model.ErrNoRecord
}

func (r *fakeMeetingsRepo) DeleteSeries(_ context.Context, _ database.Queryable, seriesID int64) error {
	r.calls++
	var keep []*model.Meeting
	for _, m := range r.meetings {
		if m.SeriesID != seriesID {
			keep = append(keep, m)
		}
	}
	r.meetings = keep
	return nil
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

type fakeMeetingTypesRepo struct {
	types map[int64]*model.MeetingType
}

func (r *fakeMeetingTypesRepo) GetMeetingTypeByID(_ context.Context, _ database.Queryable, id int64) (*model.MeetingType, error) {
	mt, ok := r.types[id]
	if !ok {
		return nil, model.ErrNoRecord
	}
	return mt, nil
}

type fakeAllotmentsRepo struct {
	allotments map[string]*model.SlotAllotment
	consumed   int
}

func (r *fakeAllotmentsRepo) GetAllotment(_ context.Context, _ database.Queryable, address string) (*model.SlotAllotment, error) {
	a, ok := r.allotments[address]
	if !ok {
		return nil, model.ErrNoRecord
	}
	return a, nil
}

func (r *fakeAllotmentsRepo) ConsumeSlots(_ context.Context, _ database.Queryable, address string, count, defaultLimit int) error {
	if r.allotments == nil {
		r.allotments = map[string]*model.SlotAllotment{}
	}
	a, ok := r.allotments[address]
	if !ok {
		a = &model.SlotAllotment{AccountAddress: address, Limit: defaultLimit}
		r.allotments[address] = a
	}
	a.Used += count
	r.consumed += count
	return nil
}

func (r *fakeAllotmentsRepo) ReleaseSlots(_ context.Context, _ database.Queryable, address string, count int) error {
	if a, ok := r.allotments[address]; ok {
		a.Used -= count
		if a.Used < 0 {
			a.Used = 0
		}
	}
	return nil
}

type fakeGateValidator struct {
	valid bool
	calls int
}

func (v *fakeGateValidator) IsConditionValid(_ context.Context, _, _ string) (bool, error) {
	v.calls++
	return v.valid, nil
}

type fakePaymentVerifier struct {
	verified bool
}

func (v *fakePaymentVerifier) VerifyTransaction(_ context.Context, _ string) (bool, error) {
	return v.verified, nil
}

type serviceFixture struct {
	service    *Service
	meetings   *fakeMeetingsRepo
	types      *fakeMeetingTypesRepo
	allotments *fakeAllotmentsRepo
	gates      *fakeGateValidator
	payments   *fakePaymentVerifier
}

func newFixture() *serviceFixture {
	f := &serviceFixture{
		meetings:   &fakeMeetingsRepo{},
		types:      &fakeMeetingTypesRepo{types: map[int64]*model.MeetingType{}},
		allotments: &fakeAllotmentsRepo{allotments: map[string]*model.SlotAllotment{}},
		gates:      &fakeGateValidator{valid: true},
		payments:   &fakePaymentVerifier{verified: true},
	}
	f.service = NewService(&fakeDB{}, f.meetings, f.types, f.allotments, f.gates, f.payments, 100)
	return f
}
