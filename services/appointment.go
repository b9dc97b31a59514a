package services

import (
	"context"
	"errors"
	"log"
	"time"

	"vitalfit/config/db"
	"vitalfit/config/redis"
	"vitalfit/models"
	"vitalfit/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoAppointmentStore backs AppointmentStore with the APPOINTMENT
// collection.
type mongoAppointmentStore struct{}

func (mongoAppointmentStore) coll() *mongo.Collection {
	return db.OpenCollections(util.AppointmentCollection)
}

func (s mongoAppointmentStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	var appt models.Appointment
	err := db.FindOne(ctx, s.coll(), bson.M{"_id": id}, &appt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

func (s mongoAppointmentStore) FindBlocking(ctx context.Context, consultantID primitive.ObjectID) ([]models.Appointment, error) {
	filter := bson.M{
		"consultantId": consultantID,
		"status":       bson.M{"$in": BlockingStatuses},
	}
	var appts []models.Appointment
	if err := db.FindAll(ctx, s.coll(), filter, nil, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

func (s mongoAppointmentStore) FindExact(ctx context.Context, userID, consultantID primitive.ObjectID, startAt time.Time) (*models.Appointment, error) {
	filter := bson.M{
		"userId":       userID,
		"consultantId": consultantID,
		"startAt":      startAt,
	}
	var appt models.Appointment
	err := db.FindOne(ctx, s.coll(), filter, &appt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

func (s mongoAppointmentStore) Create(ctx context.Context, appt *models.Appointment) error {
	appt.CreatedAt = time.Now()
	appt.UpdatedAt = appt.CreatedAt
	inserted, err := db.CreateOne(ctx, s.coll(), appt)
	if mongo.IsDuplicateKeyError(err) {
		// A racing request won the unique partial index on
		// {consultantId, startAt}.
		return util.SlotUnavailable(util.SLOT_ALREADY_BOOKED)
	}
	if err != nil {
		return err
	}
	if id, ok := inserted.InsertedID.(primitive.ObjectID); ok {
		appt.ID = id
	}
	return nil
}

func (s mongoAppointmentStore) Save(ctx context.Context, appt *models.Appointment) error {
	appt.UpdatedAt = time.Now()
	_, err := s.coll().ReplaceOne(ctx, bson.M{"_id": appt.ID}, appt)
	if err == nil {
		if cacheErr := redis.DeleteCache(ctx, util.AppointmentKey+appt.ID.Hex()); cacheErr != nil {
			log.Println("Error while evicting appointment from cache: ", cacheErr)
		}
	}
	return err
}

func (s mongoAppointmentStore) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	_, err := db.DeleteOne(ctx, s.coll(), bson.M{"_id": id})
	if err == nil {
		if cacheErr := redis.DeleteCache(ctx, util.AppointmentKey+id.Hex()); cacheErr != nil {
			log.Println("Error while evicting appointment from cache: ", cacheErr)
		}
	}
	return err
}

// mongoConsultantStore backs ConsultantStore with the CONSULTANT collection.
type mongoConsultantStore struct{}

func (mongoConsultantStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Consultant, error) {
	var consultant models.Consultant
	err := db.FindOne(ctx, db.OpenCollections(util.ConsultantCollection), bson.M{"_id": id}, &consultant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &consultant, nil
}

func mongoTx(ctx context.Context, fn func(ctx context.Context) error) error {
	_, err := db.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

var booker = &Booker{
	Appointments: mongoAppointmentStore{},
	Consultants:  mongoConsultantStore{},
	Tx:           mongoTx,
}

/*
* Read the actor that JWTAuth loaded into the context
 */
func ActorFromContext(c *gin.Context) (Actor, error) {
	id, err := primitive.ObjectIDFromHex(c.GetString("userId"))
	if err != nil {
		return Actor{}, util.Unauthorized("Not authorized, no user found")
	}
	role, ok := models.ParseRole(c.GetString("role"))
	if !ok {
		return Actor{}, util.Unauthorized("Not authorized, unknown role")
	}
	return Actor{ID: id, Role: role}, nil
}

/*
* Resolve the user and consultant references on an appointment for display
 */
func resolveAppointment(ctx context.Context, appt *models.Appointment) *models.AppointmentView {
	view := &models.AppointmentView{Appointment: *appt}

	var user models.UserRef
	err := db.FindOne(ctx, db.OpenCollections(util.UserCollection), bson.M{"_id": appt.UserID}, &user)
	if err != nil {
		log.Println("Error while resolving appointment user: ", err)
	} else {
		view.User = &user
	}

	var consultant models.ConsultantRef
	err = db.FindOne(ctx, db.OpenCollections(util.ConsultantCollection), bson.M{"_id": appt.ConsultantID}, &consultant)
	if err != nil {
		log.Println("Error while resolving appointment consultant: ", err)
	} else {
		view.Consultant = &consultant
	}
	return view
}

func CreateAppointment(c *gin.Context, in CreateAppointmentInput) (*models.AppointmentView, error) {
	actor, err := ActorFromContext(c)
	if err != nil {
		return nil, err
	}
	appt, err := booker.Create(c, actor, in)
	if err != nil {
		return nil, err
	}
	view := resolveAppointment(c, appt)
	if cacheErr := redis.SetCache(c, util.AppointmentKey+appt.ID.Hex(), appt); cacheErr != nil {
		log.Println("Error while caching new appointment: ", cacheErr)
	}
	return view, nil
}

func UpdateAppointment(c *gin.Context, appointmentId string, updates map[string]interface{}) (*models.AppointmentView, error) {
	actor, err := ActorFromContext(c)
	if err != nil {
		return nil, err
	}
	id, err := primitive.ObjectIDFromHex(appointmentId)
	if err != nil {
		return nil, util.NotFound(util.APPOINTMENT_NOT_FOUND)
	}
	appt, err := booker.Update(c, actor, id, updates)
	if err != nil {
		return nil, err
	}
	return resolveAppointment(c, appt), nil
}

func CancelAppointment(c *gin.Context, appointmentId string) (*models.AppointmentView, error) {
	actor, err := ActorFromContext(c)
	if err != nil {
		return nil, err
	}
	id, err := primitive.ObjectIDFromHex(appointmentId)
	if err != nil {
		return nil, util.NotFound(util.APPOINTMENT_NOT_FOUND)
	}
	appt, err := booker.Cancel(c, actor, id)
	if err != nil {
		return nil, err
	}
	return resolveAppointment(c, appt), nil
}

func DeleteAppointment(c *gin.Context, appointmentId string) error {
	actor, err := ActorFromContext(c)
	if err != nil {
		return err
	}
	id, err := primitive.ObjectIDFromHex(appointmentId)
	if err != nil {
		return util.NotFound(util.APPOINTMENT_NOT_FOUND)
	}
	return booker.Delete(c, actor, id)
}

/*
* Fetch one appointment, trying the cache first the way every fetch-by-id
* path does
 */
func FetchAppointmentByID(c *gin.Context, appointmentId string) (*models.AppointmentView, error) {
	actor, err := ActorFromContext(c)
	if err != nil {
		return nil, err
	}
	id, err := primitive.ObjectIDFromHex(appointmentId)
	if err != nil {
		return nil, util.NotFound(util.APPOINTMENT_NOT_FOUND)
	}

	key := util.AppointmentKey + appointmentId
	var cached models.Appointment
	if hit, cacheErr := redis.GetCache(c, key, &cached); cacheErr == nil && hit {
		allowed, authErr := booker.canModify(c, actor, &cached)
		if authErr == nil && allowed {
			return resolveAppointment(c, &cached), nil
		}
	}

	appt, err := booker.Get(c, actor, id)
	if err != nil {
		return nil, err
	}
	if cacheErr := redis.SetCache(c, key, appt); cacheErr != nil {
		log.Println("Error while caching appointment: ", cacheErr)
	}
	return resolveAppointment(c, appt), nil
}

/*
* List appointments with the query filters, scoping non-privileged actors
* to appointments they are a party to
 */
func FetchAllAppointments(c *gin.Context) ([]models.AppointmentView, error) {
	actor, err := ActorFromContext(c)
	if err != nil {
		return nil, err
	}

	filter := bson.M{}
	if v := c.Query("userId"); v != "" {
		uid, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			return nil, util.BadRequest("Invalid userId")
		}
		filter["userId"] = uid
	}
	if v := c.Query("consultantId"); v != "" {
		cid, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			return nil, util.BadRequest("Invalid consultantId")
		}
		filter["consultantId"] = cid
	}
	if v := c.Query("status"); v != "" {
		status, ok := models.ParseAppointmentStatus(v)
		if !ok {
			return nil, util.BadRequest("Invalid status: " + v)
		}
		filter["status"] = status
	}
	startRange := bson.M{}
	if v := c.Query("from"); v != "" {
		t, err := parseTimestamp(v)
		if err != nil {
			return nil, util.InvalidDate("Invalid from")
		}
		startRange["$gte"] = t
	}
	if v := c.Query("to"); v != "" {
		t, err := parseTimestamp(v)
		if err != nil {
			return nil, util.InvalidDate("Invalid to")
		}
		startRange["$lte"] = t
	}
	if len(startRange) > 0 {
		filter["startAt"] = startRange
	}

	if !actor.Role.Privileged() {
		if cid, ok := filter["consultantId"].(primitive.ObjectID); ok {
			consultant, err := booker.Consultants.FindByID(c, cid)
			if err != nil {
				return nil, err
			}
			if consultant == nil {
				return nil, util.NotFound(util.CONSULTANT_NOT_FOUND)
			}
			if consultant.UserID != actor.ID {
				return nil, util.Forbidden("Access denied to this consultant")
			}
		} else {
			var owned []models.Consultant
			err := db.FindAll(c, db.OpenCollections(util.ConsultantCollection), bson.M{"userId": actor.ID}, nil, &owned)
			if err != nil {
				return nil, err
			}
			ownedIds := make([]primitive.ObjectID, 0, len(owned))
			for _, consultant := range owned {
				ownedIds = append(ownedIds, consultant.ID)
			}
			filter["$or"] = []bson.M{
				{"userId": actor.ID},
				{"consultantId": bson.M{"$in": ownedIds}},
			}
		}
	}

	var appts []models.Appointment
	opts := options.Find().SetSort(bson.D{{Key: "startAt", Value: 1}})
	if err := db.FindAll(c, db.OpenCollections(util.AppointmentCollection), filter, opts, &appts); err != nil {
		return nil, err
	}

	views := make([]models.AppointmentView, 0, len(appts))
	for i := range appts {
		views = append(views, *resolveAppointment(c, &appts[i]))
	}
	return views, nil
}

/*
* Cancel pending appointments whose start time has already passed.
* Used by the daily job; pending -> cancelled is a legal transition
 */
func ExpireStaleAppointments(ctx context.Context) int {
	store := mongoAppointmentStore{}
	filter := bson.M{
		"status":  models.StatusPending,
		"startAt": bson.M{"$lt": time.Now()},
	}
	var stale []models.Appointment
	if err := db.FindAll(ctx, store.coll(), filter, nil, &stale); err != nil {
		log.Println("Error while fetching stale appointments: ", err)
		return 0
	}
	expired := 0
	for i := range stale {
		appt := stale[i]
		appt.Status = models.StatusCancelled
		appt.LastModifiedBy = System.ID
		if err := store.Save(ctx, &appt); err != nil {
			log.Println("Error while expiring appointment: ", err)
			continue
		}
		expired++
	}
	return expired
}
