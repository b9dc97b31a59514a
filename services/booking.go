package services

import (
	"context"
	"fmt"
	"time"

	"vitalfit/models"
	"vitalfit/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Actor is the authenticated identity a booking operation runs as. It is
// passed explicitly so the rules below never read ambient state.
type Actor struct {
	ID   primitive.ObjectID
	Role models.Role
}

// System is the actor used by jobs and migrations.
var System = Actor{Role: models.RoleSuperAdmin}

// TimeRange is a half-open interval [Start, End).
type TimeRange struct {
	Start time.Time
	End   time.Time
}

func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if !end.After(start) {
		return TimeRange{}, util.InvalidRange(util.ENDAT_BEFORE_STARTAT)
	}
	return TimeRange{Start: start, End: end}, nil
}

// Overlaps reports whether two half-open intervals intersect. Back-to-back
// ranges sharing a boundary instant do not overlap.
func (r TimeRange) Overlaps(o TimeRange) bool {
	return r.Start.Before(o.End) && r.End.After(o.Start)
}

// BlockingStatuses are the statuses that hold a consultant's slot.
var BlockingStatuses = []models.AppointmentStatus{
	models.StatusPending,
	models.StatusConfirmed,
	models.StatusRescheduled,
}

func blocking(status models.AppointmentStatus) bool {
	for _, s := range BlockingStatuses {
		if s == status {
			return true
		}
	}
	return false
}

var validTransitions = map[models.AppointmentStatus][]models.AppointmentStatus{
	models.StatusPending:     {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed:   {models.StatusRescheduled, models.StatusCompleted, models.StatusCancelled},
	models.StatusRescheduled: {models.StatusConfirmed, models.StatusCancelled},
	models.StatusCompleted:   {},
	models.StatusCancelled:   {},
}

// CanTransition reports whether the transition table allows from -> to.
func CanTransition(from, to models.AppointmentStatus) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

/*
* Enforce the status transition table. Privileged roles may set any
* status, including reopening a terminal one.
 */
func CheckTransition(from, to models.AppointmentStatus, role models.Role) error {
	if role.Privileged() {
		return nil
	}
	if !CanTransition(from, to) {
		return util.InvalidTransition(fmt.Sprintf("Cannot change status from %s to %s", from, to))
	}
	return nil
}

// AppointmentStore is the persistence surface the booking rules run
// against. Lookups return (nil, nil) when nothing matches.
type AppointmentStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error)
	FindBlocking(ctx context.Context, consultantID primitive.ObjectID) ([]models.Appointment, error)
	FindExact(ctx context.Context, userID, consultantID primitive.ObjectID, startAt time.Time) (*models.Appointment, error)
	Create(ctx context.Context, appt *models.Appointment) error
	Save(ctx context.Context, appt *models.Appointment) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

type ConsultantStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Consultant, error)
}

type ConflictKind int

const (
	NoConflict ConflictKind = iota
	ConflictWithOwnBooking
	ConflictWithOther
)

type ConflictResult struct {
	Kind ConflictKind
	With *models.Appointment
}

// Booker applies the booking rules over pluggable stores so the rules can
// be exercised without a database.
type Booker struct {
	Appointments AppointmentStore
	Consultants  ConsultantStore
	Tx           func(ctx context.Context, fn func(ctx context.Context) error) error
	Now          func() time.Time
}

func (b *Booker) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

func (b *Booker) runTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if b.Tx != nil {
		return b.Tx(ctx, fn)
	}
	return fn(ctx)
}

/*
* Scan the consultant's blocking appointments for an overlap with the
* proposed range. A conflict with the requester's own booking is reported
* separately from one with somebody else's, and the latter never carries
* the other party's appointment back to the caller.
 */
func (b *Booker) CheckConflict(ctx context.Context, consultantID primitive.ObjectID, proposed TimeRange, exclude *primitive.ObjectID, requester Actor) (ConflictResult, error) {
	existing, err := b.Appointments.FindBlocking(ctx, consultantID)
	if err != nil {
		return ConflictResult{}, err
	}
	for i := range existing {
		appt := &existing[i]
		if exclude != nil && appt.ID == *exclude {
			continue
		}
		held := TimeRange{Start: appt.StartAt, End: appt.EndAt}
		if !proposed.Overlaps(held) {
			continue
		}
		if appt.UserID == requester.ID {
			return ConflictResult{Kind: ConflictWithOwnBooking, With: appt}, nil
		}
		return ConflictResult{Kind: ConflictWithOther}, nil
	}
	return ConflictResult{Kind: NoConflict}, nil
}

/*
* An exact duplicate is the same user, consultant and start instant,
* regardless of the end time or the existing appointment's status: a
* cancelled booking at the same instant still counts. Checked before
* the overlap scan so the caller gets the more specific error.
 */
func (b *Booker) checkDuplicate(ctx context.Context, userID, consultantID primitive.ObjectID, startAt time.Time, exclude *primitive.ObjectID) error {
	dup, err := b.Appointments.FindExact(ctx, userID, consultantID, startAt)
	if err != nil {
		return err
	}
	if dup == nil {
		return nil
	}
	if exclude != nil && dup.ID == *exclude {
		return nil
	}
	return util.DuplicateBooking(util.DUPLICATE_BOOKING)
}

/*
* Modification rights: privileged actors, the booking party, and the
* consultant the appointment is with
 */
func (b *Booker) canModify(ctx context.Context, actor Actor, appt *models.Appointment) (bool, error) {
	if actor.Role.Privileged() || appt.UserID == actor.ID {
		return true, nil
	}
	consultant, err := b.Consultants.FindByID(ctx, appt.ConsultantID)
	if err != nil {
		return false, err
	}
	return consultant != nil && consultant.UserID == actor.ID, nil
}

type CreateAppointmentInput struct {
	ConsultantID string                 `json:"consultantId"`
	StartAt      string                 `json:"startAt"`
	EndAt        string                 `json:"endAt"`
	Title        string                 `json:"title"`
	Notes        string                 `json:"notes"`
	Mode         string                 `json:"mode"`
	Location     string                 `json:"location"`
	Price        *float64               `json:"price"`
	Metadata     map[string]interface{} `json:"metadata"`
	ForUserID    string                 `json:"forUserId"`
}

const defaultSessionLength = 30 * time.Minute

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

/*
* Book an appointment. The duplicate check, the overlap scan and the
* insert run in one transaction so two racing requests cannot both pass
* the checks; the unique index on the collection backstops the window
* anyway.
 */
func (b *Booker) Create(ctx context.Context, actor Actor, in CreateAppointmentInput) (*models.Appointment, error) {
	if in.ConsultantID == "" || in.StartAt == "" {
		return nil, util.MissingField(util.CONSULTANT_AND_STARTAT_REQUIRED)
	}
	consultantID, err := primitive.ObjectIDFromHex(in.ConsultantID)
	if err != nil {
		return nil, util.NotFound(util.CONSULTANT_NOT_FOUND)
	}
	consultant, err := b.Consultants.FindByID(ctx, consultantID)
	if err != nil {
		return nil, err
	}
	if consultant == nil {
		return nil, util.NotFound(util.CONSULTANT_NOT_FOUND)
	}

	startAt, err := parseTimestamp(in.StartAt)
	if err != nil {
		return nil, util.InvalidDate(util.INVALID_STARTAT)
	}
	endAt := startAt.Add(defaultSessionLength)
	if in.EndAt != "" {
		endAt, err = parseTimestamp(in.EndAt)
		if err != nil {
			return nil, util.InvalidDate(util.INVALID_ENDAT)
		}
	}
	proposed, err := NewTimeRange(startAt, endAt)
	if err != nil {
		return nil, err
	}

	userID := actor.ID
	if in.ForUserID != "" && actor.Role.Privileged() {
		userID, err = primitive.ObjectIDFromHex(in.ForUserID)
		if err != nil {
			return nil, util.NotFound(util.USER_NOT_FOUND)
		}
	}

	mode := in.Mode
	if mode == "" {
		mode = consultant.ModeOfTraining
	}
	price := in.Price
	if price == nil {
		price = consultant.Pricing.PerSession
	}

	appt := &models.Appointment{
		UserID:         userID,
		ConsultantID:   consultantID,
		Title:          in.Title,
		Notes:          in.Notes,
		StartAt:        proposed.Start,
		EndAt:          proposed.End,
		Status:         models.StatusPending,
		Mode:           mode,
		Location:       in.Location,
		Price:          price,
		Metadata:       in.Metadata,
		LastModifiedBy: actor.ID,
	}

	err = b.runTx(ctx, func(txCtx context.Context) error {
		if dupErr := b.checkDuplicate(txCtx, userID, consultantID, proposed.Start, nil); dupErr != nil {
			return dupErr
		}
		conflict, confErr := b.CheckConflict(txCtx, consultantID, proposed, nil, Actor{ID: userID, Role: actor.Role})
		if confErr != nil {
			return confErr
		}
		switch conflict.Kind {
		case ConflictWithOwnBooking:
			return util.SlotUnavailable(util.OVERLAP_OWN_BOOKING)
		case ConflictWithOther:
			return util.SlotUnavailable(util.SLOT_ALREADY_BOOKED)
		}
		return b.Appointments.Create(txCtx, appt)
	})
	if err != nil {
		return nil, err
	}
	return appt, nil
}

var updatableFields = []string{
	"title", "notes", "mode", "location", "price", "metadata", "startAt", "endAt",
}

/*
* Apply a partial update. Ownership fields are silently dropped for
* non-privileged actors, status changes go through the transition table,
* and moving the time range re-runs the conflict checks with the
* appointment itself excluded.
 */
func (b *Booker) Update(ctx context.Context, actor Actor, id primitive.ObjectID, updates map[string]interface{}) (*models.Appointment, error) {
	appt, err := b.Appointments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, util.NotFound(util.APPOINTMENT_NOT_FOUND)
	}
	allowed, err := b.canModify(ctx, actor, appt)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, util.Forbidden(util.FORBIDDEN)
	}

	if !actor.Role.Privileged() {
		delete(updates, "userId")
		delete(updates, "consultantId")
	}

	if raw, ok := updates["status"]; ok {
		statusStr, _ := raw.(string)
		status, valid := models.ParseAppointmentStatus(statusStr)
		if !valid {
			return nil, util.BadRequest("Invalid status: " + statusStr)
		}
		// self-transitions are not in the table, so restating the
		// current status is rejected for non-privileged actors too
		if err := CheckTransition(appt.Status, status, actor.Role); err != nil {
			return nil, err
		}
		appt.Status = status
	}

	if raw, ok := updates["userId"].(string); ok {
		uid, idErr := primitive.ObjectIDFromHex(raw)
		if idErr != nil {
			return nil, util.NotFound(util.USER_NOT_FOUND)
		}
		appt.UserID = uid
	}
	if raw, ok := updates["consultantId"].(string); ok {
		cid, idErr := primitive.ObjectIDFromHex(raw)
		if idErr != nil {
			return nil, util.NotFound(util.CONSULTANT_NOT_FOUND)
		}
		consultant, findErr := b.Consultants.FindByID(ctx, cid)
		if findErr != nil {
			return nil, findErr
		}
		if consultant == nil {
			return nil, util.NotFound(util.CONSULTANT_NOT_FOUND)
		}
		appt.ConsultantID = cid
	}

	rangeChanged := false
	for _, field := range updatableFields {
		raw, ok := updates[field]
		if !ok {
			continue
		}
		switch field {
		case "title":
			appt.Title, _ = raw.(string)
		case "notes":
			appt.Notes, _ = raw.(string)
		case "mode":
			appt.Mode, _ = raw.(string)
		case "location":
			appt.Location, _ = raw.(string)
		case "price":
			if v, isNum := raw.(float64); isNum {
				appt.Price = &v
			}
		case "metadata":
			if v, isMap := raw.(map[string]interface{}); isMap {
				appt.Metadata = v
			}
		case "startAt":
			s, _ := raw.(string)
			t, parseErr := parseTimestamp(s)
			if parseErr != nil {
				return nil, util.InvalidDate(util.INVALID_STARTAT)
			}
			appt.StartAt = t
			rangeChanged = true
		case "endAt":
			s, _ := raw.(string)
			t, parseErr := parseTimestamp(s)
			if parseErr != nil {
				return nil, util.InvalidDate(util.INVALID_ENDAT)
			}
			appt.EndAt = t
			rangeChanged = true
		}
	}

	moved, err := NewTimeRange(appt.StartAt, appt.EndAt)
	if err != nil {
		return nil, err
	}

	appt.LastModifiedBy = actor.ID
	err = b.runTx(ctx, func(txCtx context.Context) error {
		if rangeChanged && blocking(appt.Status) {
			if dupErr := b.checkDuplicate(txCtx, appt.UserID, appt.ConsultantID, moved.Start, &appt.ID); dupErr != nil {
				return dupErr
			}
			conflict, confErr := b.CheckConflict(txCtx, appt.ConsultantID, moved, &appt.ID, Actor{ID: appt.UserID, Role: actor.Role})
			if confErr != nil {
				return confErr
			}
			switch conflict.Kind {
			case ConflictWithOwnBooking:
				return util.SlotUnavailable(util.OVERLAP_OWN_BOOKING)
			case ConflictWithOther:
				return util.SlotUnavailable(util.SLOT_ALREADY_BOOKED)
			}
		}
		return b.Appointments.Save(txCtx, appt)
	})
	if err != nil {
		return nil, err
	}
	return appt, nil
}

/*
* Cancel is its own operation rather than a status update so the caller
* gets a precise error when the appointment is already settled.
 */
func (b *Booker) Cancel(ctx context.Context, actor Actor, id primitive.ObjectID) (*models.Appointment, error) {
	appt, err := b.Appointments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, util.NotFound(util.APPOINTMENT_NOT_FOUND)
	}
	allowed, err := b.canModify(ctx, actor, appt)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, util.Forbidden(util.FORBIDDEN)
	}
	switch appt.Status {
	case models.StatusCompleted:
		return nil, util.AlreadyFinal(util.CANNOT_CANCEL_COMPLETED)
	case models.StatusCancelled:
		return nil, util.AlreadyFinal(util.ALREADY_CANCELLED)
	}
	appt.Status = models.StatusCancelled
	appt.LastModifiedBy = actor.ID
	if err := b.Appointments.Save(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

/*
* Hard delete. Restricted to privileged actors and the booking party;
* the consultant can modify but not erase the record.
 */
func (b *Booker) Delete(ctx context.Context, actor Actor, id primitive.ObjectID) error {
	appt, err := b.Appointments.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if appt == nil {
		return util.NotFound(util.APPOINTMENT_NOT_FOUND)
	}
	if !actor.Role.Privileged() && appt.UserID != actor.ID {
		return util.Forbidden(util.FORBIDDEN)
	}
	return b.Appointments.DeleteByID(ctx, id)
}

func (b *Booker) Get(ctx context.Context, actor Actor, id primitive.ObjectID) (*models.Appointment, error) {
	appt, err := b.Appointments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, util.NotFound(util.APPOINTMENT_NOT_FOUND)
	}
	allowed, err := b.canModify(ctx, actor, appt)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, util.Forbidden(util.FORBIDDEN)
	}
	return appt, nil
}
