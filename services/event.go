package services

import (
	"log"
	"time"

	"vitalfit/config/db"
	"vitalfit/models"
	"vitalfit/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	EventOnline  = "online"
	EventOffline = "offline"
	EventHybrid  = "hybrid"
)

func eventColl() *mongo.Collection {
	return db.OpenCollections(util.EventCollection)
}

func validateEventVenue(eventType, location, onlineLink string) error {
	switch eventType {
	case EventOnline:
		if onlineLink == "" {
			return util.MissingField("onlineLink is required for online events")
		}
	case EventOffline:
		if location == "" {
			return util.MissingField("location is required for offline events")
		}
	case EventHybrid:
		if onlineLink == "" || location == "" {
			return util.MissingField("location and onlineLink are required for hybrid events")
		}
	default:
		return util.BadRequest("eventType must be online, offline or hybrid")
	}
	return nil
}

/*
* Create an event. Admins only; the route guard enforces the role.
 */
func CreateEvent(c *gin.Context, event models.Event) (*models.Event, error) {
	actor, err := ActorFromContext(c)
	if err != nil {
		return nil, err
	}
	if event.Title == "" {
		return nil, util.MissingField("title is required")
	}
	if event.Date.IsZero() {
		return nil, util.MissingField("date is required")
	}
	if err := validateEventVenue(event.EventType, event.Location, event.OnlineLink); err != nil {
		return nil, err
	}

	now := time.Now()
	event.CreatedBy = actor.ID
	event.CreatedAt = now
	event.UpdatedAt = now
	inserted, err := db.CreateOne(c, eventColl(), event)
	if err != nil {
		return nil, err
	}
	event.ID = inserted.InsertedID.(primitive.ObjectID)
	log.Println("Event created: ", event.ID.Hex())
	return &event, nil
}

func FetchAllEvents(c *gin.Context) ([]models.Event, error) {
	filter := bson.M{}
	if eventType := c.Query("eventType"); eventType != "" {
		filter["eventType"] = eventType
	}
	if gymCenter := c.Query("gymCenter"); gymCenter != "" {
		oid, err := primitive.ObjectIDFromHex(gymCenter)
		if err != nil {
			return nil, util.BadRequest("Invalid gymCenter id")
		}
		filter["gymCenter"] = oid
	}
	if c.Query("upcoming") == "true" {
		filter["date"] = bson.M{"$gte": time.Now()}
	}

	var events []models.Event
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	if err := db.FindAll(c, eventColl(), filter, opts, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func FetchEventByID(c *gin.Context, id string) (*models.Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.NotFound(util.EVENT_NOT_FOUND)
	}
	var event models.Event
	if err := db.FindOne(c, eventColl(), bson.M{"_id": oid}, &event); err != nil {
		return nil, util.NotFound(util.EVENT_NOT_FOUND)
	}
	return &event, nil
}

/*
* Update an event. The creator or a superadmin may change it. Venue
* fields are re-validated against the effective event type.
 */
func UpdateEvent(c *gin.Context, id string, updates map[string]interface{}) (*models.Event, error) {
	actor, err := ActorFromContext(c)
	if err != nil {
		return nil, err
	}
	event, err := FetchEventByID(c, id)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.RoleSuperAdmin && event.CreatedBy != actor.ID {
		return nil, util.Forbidden("Access denied")
	}

	eventType := event.EventType
	location := event.Location
	onlineLink := event.OnlineLink
	if raw, ok := updates["eventType"].(string); ok {
		eventType = raw
	}
	if raw, ok := updates["location"].(string); ok {
		location = raw
	}
	if raw, ok := updates["onlineLink"].(string); ok {
		onlineLink = raw
	}
	if err := validateEventVenue(eventType, location, onlineLink); err != nil {
		return nil, err
	}

	set := bson.M{}
	for key, value := range updates {
		switch key {
		case "_id", "id", "createdBy", "createdAt":
			continue
		case "date":
			if raw, ok := value.(string); ok {
				parsed, perr := parseTimestamp(raw)
				if perr != nil {
					return nil, util.InvalidDate("Invalid date")
				}
				set["date"] = parsed
				continue
			}
			set[key] = value
		default:
			set[key] = value
		}
	}
	set["updatedAt"] = time.Now()

	if _, err := db.UpdateOne(c, eventColl(), bson.M{"_id": event.ID}, bson.M{"$set": set}); err != nil {
		return nil, err
	}

	var updated models.Event
	if err := db.FindOne(c, eventColl(), bson.M{"_id": event.ID}, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func DeleteEvent(c *gin.Context, id string) error {
	actor, err := ActorFromContext(c)
	if err != nil {
		return err
	}
	event, err := FetchEventByID(c, id)
	if err != nil {
		return err
	}
	if actor.Role != models.RoleSuperAdmin && event.CreatedBy != actor.ID {
		return util.Forbidden("Access denied")
	}
	_, err = db.DeleteOne(c, eventColl(), bson.M{"_id": event.ID})
	return err
}
