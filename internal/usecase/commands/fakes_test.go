//go:build unit

package commands_test

import (
	"context"
	"errors"
	"time"

	"adspace-booking/internal/domain/booking"
	"adspace-booking/internal/domain/request"
	"adspace-booking/internal/infra"
	"adspace-booking/internal/usecase/queries"
	"adspace-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var errNoRow = errors.New("no rows")

// In-memory unit of work. Within runs the function against shared fake
// repositories; there is no rollback, which is fine for asserting the
// error paths because each test inspects writes explicitly.
type fakeUoW struct {
	tx    *fakeTx
	reads *fakeCommandReads
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{
		tx: &fakeTx{
			supports:      &fakeSupportRepo{},
			requests:      &fakeRequestRepo{store: map[uuid.UUID]*request.Request{}},
			bookings:      &fakeBookingRepo{store: map[uuid.UUID]*booking.Booking{}},
			notifications: &fakeNotificationRepo{},
		},
		reads: &fakeCommandReads{supports: map[uuid.UUID]shared.SupportSnapshot{}},
	}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return u.reads
}

type fakeTx struct {
	supports      *fakeSupportRepo
	requests      *fakeRequestRepo
	bookings      *fakeBookingRepo
	notifications *fakeNotificationRepo
}

func (t *fakeTx) Supports() shared.SupportRepository           { return t.supports }
func (t *fakeTx) Requests() shared.RequestRepository           { return t.requests }
func (t *fakeTx) Bookings() shared.BookingRepository           { return t.bookings }
func (t *fakeTx) Notifications() shared.NotificationRepository { return t.notifications }

type fakeCommandReads struct {
	supports map[uuid.UUID]shared.SupportSnapshot
}

func (r *fakeCommandReads) SupportByID(_ context.Context, id uuid.UUID) (*shared.SupportSnapshot, error) {
	snap, ok := r.supports[id]
	if !ok {
		return nil, infra.WrapRepoErr("support not found", errNoRow, infra.KindNotFound)
	}
	return &snap, nil
}

func (r *fakeCommandReads) SupportsByCode(_ context.Context, codes []string) (map[string]shared.SupportSnapshot, error) {
	result := map[string]shared.SupportSnapshot{}
	for _, snap := range r.supports {
		for _, code := range codes {
			if snap.Code == code {
				result[code] = snap
			}
		}
	}
	return result, nil
}

type fakeSupportRepo struct {
	lockCalls []uuid.UUID
	lockErr   error
}

func (r *fakeSupportRepo) Lock(_ context.Context, id uuid.UUID) error {
	r.lockCalls = append(r.lockCalls, id)
	return r.lockErr
}

type fakeRequestRepo struct {
	store       map[uuid.UUID]*request.Request
	updateCalls int
	createCalls int
}

func (r *fakeRequestRepo) Create(_ context.Context, req *request.Request) error {
	r.createCalls++
	r.store[req.ID()] = req
	return nil
}

func (r *fakeRequestRepo) FindByID(_ context.Context, id uuid.UUID) (*request.Request, error) {
	req, ok := r.store[id]
	if !ok {
		return nil, infra.WrapRepoErr("request not found", errNoRow, infra.KindNotFound)
	}
	return req, nil
}

func (r *fakeRequestRepo) UpdateState(_ context.Context, req *request.Request) error {
	r.updateCalls++
	r.store[req.ID()] = req
	return nil
}

type fakeBookingRepo struct {
	store       map[uuid.UUID]*booking.Booking
	schedule    []*booking.Booking
	updateCalls int
}

func (r *fakeBookingRepo) Create(_ context.Context, bk *booking.Booking) error {
	r.store[bk.ID()] = bk
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	bk, ok := r.store[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", errNoRow, infra.KindNotFound)
	}
	return bk, nil
}

func (r *fakeBookingRepo) BlockingBySupport(_ context.Context, _ uuid.UUID) ([]*booking.Booking, error) {
	return r.schedule, nil
}

func (r *fakeBookingRepo) UpdateState(_ context.Context, bk *booking.Booking) error {
	r.updateCalls++
	r.store[bk.ID()] = bk
	return nil
}

func (r *fakeBookingRepo) DueForActivation(_ context.Context, today time.Time) ([]*booking.Booking, error) {
	var due []*booking.Booking
	for _, bk := range r.store {
		if bk.Status() == booking.StatusReserved && bk.Period().StartedBy(today) {
			due = append(due, bk)
		}
	}
	return due, nil
}

func (r *fakeBookingRepo) DueForCompletion(_ context.Context, today time.Time) ([]*booking.Booking, error) {
	var due []*booking.Booking
	for _, bk := range r.store {
		if bk.Status() == booking.StatusActive && bk.Period().EndedBy(today) {
			due = append(due, bk)
		}
	}
	return due, nil
}

type notificationJob struct {
	kind  string
	topic string
}

type fakeNotificationRepo struct {
	jobs []notificationJob
}

func (r *fakeNotificationRepo) CreateJob(_ context.Context, kind, topic string, _ []byte, _ time.Time) error {
	r.jobs = append(r.jobs, notificationJob{kind: kind, topic: topic})
	return nil
}

// Read-side stubs: the commands only re-read views after a commit, so a
// canned answer per id is enough.

type fakeRequestQueries struct {
	views map[uuid.UUID]*queries.RequestView
}

func (q *fakeRequestQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.RequestView, error) {
	if view, ok := q.views[id]; ok {
		return view, nil
	}
	return &queries.RequestView{ID: id}, nil
}

func (q *fakeRequestQueries) ListByRequester(_ context.Context, _ uuid.UUID) ([]*queries.RequestListItem, error) {
	return nil, nil
}

type fakeBookingQueries struct{}

func (q *fakeBookingQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	return &queries.BookingView{ID: id}, nil
}

func (q *fakeBookingQueries) ListBySupport(_ context.Context, _ uuid.UUID) ([]*queries.BookingView, error) {
	return nil, nil
}
