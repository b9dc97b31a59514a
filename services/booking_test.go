package services

import (
	"context"
	"testing"
	"time"

	"vitalfit/models"
	"vitalfit/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeAppointmentStore struct {
	appts map[primitive.ObjectID]*models.Appointment
}

func newFakeAppointmentStore() *fakeAppointmentStore {
	return &fakeAppointmentStore{appts: map[primitive.ObjectID]*models.Appointment{}}
}

func (f *fakeAppointmentStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	appt, ok := f.appts[id]
	if !ok {
		return nil, nil
	}
	clone := *appt
	return &clone, nil
}

func (f *fakeAppointmentStore) FindBlocking(_ context.Context, consultantID primitive.ObjectID) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, appt := range f.appts {
		if appt.ConsultantID == consultantID && blocking(appt.Status) {
			out = append(out, *appt)
		}
	}
	return out, nil
}

func (f *fakeAppointmentStore) FindExact(_ context.Context, userID, consultantID primitive.ObjectID, startAt time.Time) (*models.Appointment, error) {
	for _, appt := range f.appts {
		if appt.UserID == userID && appt.ConsultantID == consultantID && appt.StartAt.Equal(startAt) {
			clone := *appt
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentStore) Create(_ context.Context, appt *models.Appointment) error {
	appt.ID = primitive.NewObjectID()
	clone := *appt
	f.appts[appt.ID] = &clone
	return nil
}

func (f *fakeAppointmentStore) Save(_ context.Context, appt *models.Appointment) error {
	clone := *appt
	f.appts[appt.ID] = &clone
	return nil
}

func (f *fakeAppointmentStore) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	delete(f.appts, id)
	return nil
}

type fakeConsultantStore struct {
	consultants map[primitive.ObjectID]*models.Consultant
}

func (f *fakeConsultantStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Consultant, error) {
	consultant, ok := f.consultants[id]
	if !ok {
		return nil, nil
	}
	return consultant, nil
}

type bookerFixture struct {
	booker       *Booker
	store        *fakeAppointmentStore
	consultant   *models.Consultant
	consultantID primitive.ObjectID
	user         Actor
	otherUser    Actor
	trainerActor Actor
	admin        Actor
}

func newBookerFixture() *bookerFixture {
	perSession := 500.0
	consultantID := primitive.NewObjectID()
	trainerUserID := primitive.NewObjectID()
	consultant := &models.Consultant{
		ID:             consultantID,
		UserID:         trainerUserID,
		Name:           "Asha Trainer",
		Specialty:      "Strength",
		ModeOfTraining: models.ModeOnline,
		Pricing:        models.Pricing{PerSession: &perSession},
	}
	store := newFakeAppointmentStore()
	return &bookerFixture{
		booker: &Booker{
			Appointments: store,
			Consultants:  &fakeConsultantStore{consultants: map[primitive.ObjectID]*models.Consultant{consultantID: consultant}},
		},
		store:        store,
		consultant:   consultant,
		consultantID: consultantID,
		user:         Actor{ID: primitive.NewObjectID(), Role: models.RoleUser},
		otherUser:    Actor{ID: primitive.NewObjectID(), Role: models.RoleUser},
		trainerActor: Actor{ID: trainerUserID, Role: models.RoleConsultant},
		admin:        Actor{ID: primitive.NewObjectID(), Role: models.RoleAdmin},
	}
}

func (fx *bookerFixture) book(t *testing.T, actor Actor, start, end string) *models.Appointment {
	t.Helper()
	appt, err := fx.booker.Create(context.Background(), actor, CreateAppointmentInput{
		ConsultantID: fx.consultantID.Hex(),
		StartAt:      start,
		EndAt:        end,
	})
	require.NoError(t, err)
	return appt
}

func TestTimeRangeOverlaps(t *testing.T) {
	base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	slot := TimeRange{Start: base, End: base.Add(30 * time.Minute)}

	tests := []struct {
		name    string
		other   TimeRange
		overlap bool
	}{
		{"identical", TimeRange{base, base.Add(30 * time.Minute)}, true},
		{"partial tail", TimeRange{base.Add(15 * time.Minute), base.Add(45 * time.Minute)}, true},
		{"contained", TimeRange{base.Add(5 * time.Minute), base.Add(10 * time.Minute)}, true},
		{"containing", TimeRange{base.Add(-1 * time.Hour), base.Add(2 * time.Hour)}, true},
		{"back to back after", TimeRange{base.Add(30 * time.Minute), base.Add(time.Hour)}, false},
		{"back to back before", TimeRange{base.Add(-30 * time.Minute), base}, false},
		{"disjoint", TimeRange{base.Add(2 * time.Hour), base.Add(3 * time.Hour)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlap, slot.Overlaps(tt.other))
			assert.Equal(t, tt.overlap, tt.other.Overlaps(slot))
		})
	}
}

func TestNewTimeRangeRejectsInvertedOrEmpty(t *testing.T) {
	now := time.Now()
	_, err := NewTimeRange(now, now)
	require.Error(t, err)
	assert.Equal(t, util.KindInvalidRange, util.KindOf(err))

	_, err = NewTimeRange(now, now.Add(-time.Minute))
	require.Error(t, err)
}

func TestTransitionTable(t *testing.T) {
	allowed := []struct{ from, to models.AppointmentStatus }{
		{models.StatusPending, models.StatusConfirmed},
		{models.StatusPending, models.StatusCancelled},
		{models.StatusConfirmed, models.StatusRescheduled},
		{models.StatusConfirmed, models.StatusCompleted},
		{models.StatusConfirmed, models.StatusCancelled},
		{models.StatusRescheduled, models.StatusConfirmed},
		{models.StatusRescheduled, models.StatusCancelled},
	}
	for _, tr := range allowed {
		assert.True(t, CanTransition(tr.from, tr.to), "%s -> %s should be allowed", tr.from, tr.to)
	}

	denied := []struct{ from, to models.AppointmentStatus }{
		{models.StatusPending, models.StatusCompleted},
		{models.StatusPending, models.StatusRescheduled},
		{models.StatusCompleted, models.StatusConfirmed},
		{models.StatusCompleted, models.StatusCancelled},
		{models.StatusCancelled, models.StatusPending},
		{models.StatusCancelled, models.StatusConfirmed},
	}
	for _, tr := range denied {
		assert.False(t, CanTransition(tr.from, tr.to), "%s -> %s should be denied", tr.from, tr.to)
		err := CheckTransition(tr.from, tr.to, models.RoleUser)
		require.Error(t, err)
		assert.Equal(t, util.KindInvalidStatusTransition, util.KindOf(err))

		// privileged roles override the table
		assert.NoError(t, CheckTransition(tr.from, tr.to, models.RoleAdmin))
		assert.NoError(t, CheckTransition(tr.from, tr.to, models.RoleSuperAdmin))
	}
}

func TestCreateAppliesConsultantDefaults(t *testing.T) {
	fx := newBookerFixture()
	appt := fx.book(t, fx.user, "2026-03-10T10:00:00Z", "")

	assert.Equal(t, models.StatusPending, appt.Status)
	assert.Equal(t, models.ModeOnline, appt.Mode)
	require.NotNil(t, appt.Price)
	assert.Equal(t, 500.0, *appt.Price)
	assert.Equal(t, 30*time.Minute, appt.EndAt.Sub(appt.StartAt))
	assert.Equal(t, fx.user.ID, appt.UserID)
	assert.Equal(t, fx.user.ID, appt.LastModifiedBy)
}

func TestCreateRejectsMissingAndInvalidInput(t *testing.T) {
	fx := newBookerFixture()
	ctx := context.Background()

	_, err := fx.booker.Create(ctx, fx.user, CreateAppointmentInput{StartAt: "2026-03-10T10:00:00Z"})
	assert.Equal(t, util.KindMissingRequiredField, util.KindOf(err))

	_, err = fx.booker.Create(ctx, fx.user, CreateAppointmentInput{ConsultantID: fx.consultantID.Hex(), StartAt: "not-a-date"})
	assert.Equal(t, util.KindInvalidDate, util.KindOf(err))

	_, err = fx.booker.Create(ctx, fx.user, CreateAppointmentInput{
		ConsultantID: fx.consultantID.Hex(),
		StartAt:      "2026-03-10T10:00:00Z",
		EndAt:        "2026-03-10T09:00:00Z",
	})
	assert.Equal(t, util.KindInvalidRange, util.KindOf(err))

	_, err = fx.booker.Create(ctx, fx.user, CreateAppointmentInput{
		ConsultantID: primitive.NewObjectID().Hex(),
		StartAt:      "2026-03-10T10:00:00Z",
	})
	assert.Equal(t, util.KindNotFound, util.KindOf(err))
}

func TestOverlappingSlotIsRejected(t *testing.T) {
	fx := newBookerFixture()
	fx.book(t, fx.user, "2026-03-10T10:00:00Z", "2026-03-10T10:30:00Z")

	// overlapping attempt by another user fails without leaking whose
	// booking holds the slot
	_, err := fx.booker.Create(context.Background(), fx.otherUser, CreateAppointmentInput{
		ConsultantID: fx.consultantID.Hex(),
		StartAt:      "2026-03-10T10:15:00Z",
		EndAt:        "2026-03-10T10:45:00Z",
	})
	require.Error(t, err)
	assert.Equal(t, util.KindSlotUnavailable, util.KindOf(err))
	assert.Equal(t, util.SLOT_ALREADY_BOOKED, err.Error())
	assert.NotContains(t, err.Error(), fx.user.ID.Hex())

	// a back-to-back slot sharing the boundary instant is fine
	appt := fx.book(t, fx.otherUser, "2026-03-10T10:30:00Z", "2026-03-10T11:00:00Z")
	assert.Equal(t, models.StatusPending, appt.Status)
}

func TestOverlapWithOwnBookingGetsOwnMessage(t *testing.T) {
	fx := newBookerFixture()
	fx.book(t, fx.user, "2026-03-10T10:00:00Z", "2026-03-10T10:30:00Z")

	_, err := fx.booker.Create(context.Background(), fx.user, CreateAppointmentInput{
		ConsultantID: fx.consultantID.Hex(),
		StartAt:      "2026-03-10T10:15:00Z",
		EndAt:        "2026-03-10T10:45:00Z",
	})
	require.Error(t, err)
	assert.Equal(t, util.KindSlotUnavailable, util.KindOf(err))
	assert.Equal(t, util.OVERLAP_OWN_BOOKING, err.Error())
}

func TestExactRebookIsDuplicateNotOverlap(t *testing.T) {
	fx := newBookerFixture()
	fx.book(t, fx.user, "2026-03-10T10:00:00Z", "2026-03-10T10:30:00Z")

	// same start instant, different end, same user and consultant
	_, err := fx.booker.Create(context.Background(), fx.user, CreateAppointmentInput{
		ConsultantID: fx.consultantID.Hex(),
		StartAt:      "2026-03-10T10:00:00Z",
		EndAt:        "2026-03-10T11:00:00Z",
	})
	require.Error(t, err)
	assert.Equal(t, util.KindDuplicateBooking, util.KindOf(err))
}

func TestCancelledSlotDoesNotBlock(t *testing.T) {
	fx := newBookerFixture()
	appt := fx.book(t, fx.user, "2026-03-10T10:00:00Z", "2026-03-10T10:30:00Z")
	_, err := fx.booker.Cancel(context.Background(), fx.user, appt.ID)
	require.NoError(t, err)

	rebooked := fx.book(t, fx.otherUser, "2026-03-10T10:00:00Z", "2026-03-10T10:30:00Z")
	assert.Equal(t, models.StatusPending, rebooked.Status)
}

func TestOwnCancelledSlotStillDuplicate(t *testing.T) {
	fx := newBookerFixture()
	appt := fx.book(t, fx.user, "2026-03-10T10:00:00Z", "2026-03-10T10:30:00Z")
	_, err := fx.booker.Cancel(context.Background(), fx.user, appt.ID)
	require.NoError(t, err)

	// the same user at the same instant is a duplicate even though the
	// cancelled booking no longer blocks the slot for anyone else
	_, err = fx.booker.Create(context.Background(), fx.user, CreateAppointmentInput{
		ConsultantID: fx.consultantID.Hex(),
		StartAt:      "2026-03-10T10:00:00Z",
		EndAt:        "2026-03-10T10:30:00Z",
	})
	require.Error(t, err)
	assert.Equal(t, util.KindDuplicateBooking, util.KindOf(err))
}

func TestUpdateDropsOwnershipFieldsForNonPrivileged(t *testing.T) {
	fx := newBookerFixture()
	appt := fx.book(t, fx.user, "2026-03-10T10:00:00Z", "2026-03-10T10:30:00Z")

	hijack := primitive.NewObjectID()
	updated, err := fx.booker.Update(context.Background(), fx.user, appt.ID, map[string]interface{}{
		"userId": hijack.Hex(),
		"title":  "Leg day",
	})
	require.NoError(t, err)
	assert.Equal(t, fx.user.ID, updated.UserID)
	assert.Equal(t, "Leg day", updated.Title)
}

func TestUpdateStatusFollowsTransitionTable(t *testing.T) {
	fx := newBookerFixture()
	appt := fx.book(t, fx.user, "2026-03-10T10:00:00Z", "2026-03-10T10:30:00Z")
	ctx := context.Background()

	_, err := fx.booker.Update(ctx, fx.user, appt.ID, map[string]interface{}{"status": "completed"})
	require.Error(t, err)
	assert.Equal(t, util.KindInvalidStatusTransition, util.KindOf(err))

	updated, err := fx.booker.Update(ctx, fx.user, appt.ID, map[string]interface{}{"status": "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, updated.Status)

	// admin can force a jump the table forbids
	updated, err = fx.booker.Update(ctx, fx.admin, appt.ID, map[string]interface{}{"status": "pending"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, updated.Status)

	_, err = fx.booker.Update(ctx, fx.user, appt.ID, map[string]interface{}{"status": "bogus"})
	assert.Equal(t, util.KindBadRequest, util.KindOf(err))
}

func TestUpdateSameStatusRunsTransitionGuard(t *testing.T) {
	fx := newBookerFixture()
	appt := fx.book(t, fx.user, "2026-03-10T10:00:00Z", "2026-03-10T10:30:00Z")
	ctx := context.Background()

	// restating the current status is a self-transition, which the
	// table does not allow for non-privileged actors
	_, err := fx.booker.Update(ctx, fx.user, appt.ID, map[string]interface{}{"status": "pending"})
	require.Error(t, err)
	assert.Equal(t, util.KindInvalidStatusTransition, util.KindOf(err))

	updated, err := fx.booker.Update(ctx, fx.admin, appt.ID, map[string]interface{}{"status": "pending"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, updated.Status)
}

func TestUpdateMovedRangeRevalidatesConflicts(t *testing.T) {
	fx := newBookerFixture()
	first := fx.book(t, fx.user, "2026-03-10T10:00:00Z", "2026-03-10T10:30:00Z")
	fx.book(t, fx.otherUser, "2026-03-10T11:00:00Z", "2026-03-10T11:30:00Z")
	ctx := context.Background()

	// shifting within its own slot excludes itself from the scan
	updated, err := fx.booker.Update(ctx, fx.user, first.ID, map[string]interface{}{
		"startAt": "2026-03-10T10:15:00Z",
		"endAt":   "2026-03-10T10:45:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, 15, updated.StartAt.Minute())

	// moving onto somebody else's slot is rejected
	_, err = fx.booker.Update(ctx, fx.user, first.ID, map[string]interface{}{
		"startAt": "2026-03-10T11:15:00Z",
		"endAt":   "2026-03-10T11:45:00Z",
	})
	require.Error(t, err)
	assert.Equal(t, util.KindSlotUnavailable, util.KindOf(err))
}

func TestUpdateAuthorization(t *testing.T) {
	fx := newBookerFixture()
	appt := fx.book(t, fx.user, "2026-03-10T10:00:00Z", "2026-03-10T10:30:00Z")
	ctx := context.Background()

	_, err := fx.booker.Update(ctx, fx.otherUser, appt.ID, map[string]interface{}{"title": "nope"})
	assert.Equal(t, util.KindForbidden, util.KindOf(err))

	// the consultant the booking is with may modify it
	updated, err := fx.booker.Update(ctx, fx.trainerActor, appt.ID, map[string]interface{}{"notes": "bring shoes"})
	require.NoError(t, err)
	assert.Equal(t, "bring shoes", updated.Notes)

	_, err = fx.booker.Update(ctx, fx.user, primitive.NewObjectID(), map[string]interface{}{"title": "gone"})
	assert.Equal(t, util.KindNotFound, util.KindOf(err))
}

func TestCancelDistinguishesFinalStates(t *testing.T) {
	fx := newBookerFixture()
	ctx := context.Background()

	appt := fx.book(t, fx.user, "2026-03-10T10:00:00Z", "2026-03-10T10:30:00Z")
	_, err := fx.booker.Update(ctx, fx.admin, appt.ID, map[string]interface{}{"status": "completed"})
	require.NoError(t, err)

	_, err = fx.booker.Cancel(ctx, fx.user, appt.ID)
	require.Error(t, err)
	assert.Equal(t, util.KindAlreadyFinal, util.KindOf(err))
	assert.Equal(t, util.CANNOT_CANCEL_COMPLETED, err.Error())

	second := fx.book(t, fx.user, "2026-03-11T10:00:00Z", "2026-03-11T10:30:00Z")
	_, err = fx.booker.Cancel(ctx, fx.user, second.ID)
	require.NoError(t, err)

	_, err = fx.booker.Cancel(ctx, fx.user, second.ID)
	require.Error(t, err)
	assert.Equal(t, util.KindAlreadyFinal, util.KindOf(err))
	assert.Equal(t, util.ALREADY_CANCELLED, err.Error())
}

func TestDeleteExcludesConsultant(t *testing.T) {
	fx := newBookerFixture()
	ctx := context.Background()
	appt := fx.book(t, fx.user, "2026-03-10T10:00:00Z", "2026-03-10T10:30:00Z")

	// consultant may update but not erase
	err := fx.booker.Delete(ctx, fx.trainerActor, appt.ID)
	assert.Equal(t, util.KindForbidden, util.KindOf(err))

	require.NoError(t, fx.booker.Delete(ctx, fx.user, appt.ID))

	second := fx.book(t, fx.user, "2026-03-11T10:00:00Z", "2026-03-11T10:30:00Z")
	require.NoError(t, fx.booker.Delete(ctx, fx.admin, second.ID))

	err = fx.booker.Delete(ctx, fx.admin, second.ID)
	assert.Equal(t, util.KindNotFound, util.KindOf(err))
}

func TestGetRequiresPartyOrPrivilege(t *testing.T) {
	fx := newBookerFixture()
	ctx := context.Background()
	appt := fx.book(t, fx.user, "2026-03-10T10:00:00Z", "2026-03-10T10:30:00Z")

	_, err := fx.booker.Get(ctx, fx.otherUser, appt.ID)
	assert.Equal(t, util.KindForbidden, util.KindOf(err))

	for _, actor := range []Actor{fx.user, fx.trainerActor, fx.admin} {
		got, getErr := fx.booker.Get(ctx, actor, appt.ID)
		require.NoError(t, getErr)
		assert.Equal(t, appt.ID, got.ID)
	}
}

func TestPrivilegedCreateForAnotherUser(t *testing.T) {
	fx := newBookerFixture()
	target := primitive.NewObjectID()

	appt, err := fx.booker.Create(context.Background(), fx.admin, CreateAppointmentInput{
		ConsultantID: fx.consultantID.Hex(),
		StartAt:      "2026-03-10T10:00:00Z",
		ForUserID:    target.Hex(),
	})
	require.NoError(t, err)
	assert.Equal(t, target, appt.UserID)
	assert.Equal(t, fx.admin.ID, appt.LastModifiedBy)

	// non-privileged callers cannot book on behalf of others
	appt2, err := fx.booker.Create(context.Background(), fx.user, CreateAppointmentInput{
		ConsultantID: fx.consultantID.Hex(),
		StartAt:      "2026-03-11T10:00:00Z",
		ForUserID:    target.Hex(),
	})
	require.NoError(t, err)
	assert.Equal(t, fx.user.ID, appt2.UserID)
}

func TestParseTimestampLayouts(t *testing.T) {
	for _, raw := range []string{
		"2026-03-10T10:00:00Z",
		"2026-03-10T10:00:00",
		"2026-03-10 10:00",
		"2026-03-10",
	} {
		_, err := parseTimestamp(raw)
		assert.NoError(t, err, raw)
	}
	_, err := parseTimestamp("10/03/2026")
	assert.Error(t, err)
}
