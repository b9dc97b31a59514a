package services

import (
	"log"
	"strconv"
	"strings"
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

func consultantColl() *mongo.Collection {
	return db.OpenCollections(util.ConsultantCollection)
}

/*
* Create a consultant listing. Consultants create their own, admins can
* create on behalf of any user.
 */
func CreateConsultant(c *gin.Context, consultant models.Consultant) (*models.Consultant, error) {
	actor, err := ActorFromContext(c)
	if err != nil {
		return nil, err
	}
	if consultant.Name == "" || consultant.Specialty == "" {
		return nil, util.MissingField("name and specialty are required")
	}
	if !actor.Role.Privileged() {
		consultant.UserID = actor.ID
	} else if consultant.UserID.IsZero() {
		consultant.UserID = actor.ID
	}

	var existing models.Consultant
	err = db.FindOne(c, consultantColl(), bson.M{"userId": consultant.UserID}, &existing)
	if err == nil {
		return nil, util.BadRequest("Consultant profile already exists for this user")
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	now := time.Now()
	consultant.CreatedAt = now
	consultant.UpdatedAt = now
	inserted, err := db.CreateOne(c, consultantColl(), consultant)
	if err != nil {
		return nil, err
	}
	consultant.ID = inserted.InsertedID.(primitive.ObjectID)
	log.Println("Consultant created: ", consultant.ID.Hex())
	return &consultant, nil
}

/*
* List consultants with optional filters from query params
 */
func FetchAllConsultants(c *gin.Context) ([]models.Consultant, error) {
	filter := bson.M{}
	if specialty := c.Query("specialty"); specialty != "" {
		filter["specialty"] = bson.M{"$regex": specialty, "$options": "i"}
	}
	if mode := c.Query("mode"); mode != "" {
		filter["modeOfTraining"] = mode
	}
	if verified := c.Query("verified"); verified != "" {
		filter["isVerified"] = verified == "true"
	}
	if maxPrice := c.Query("maxPrice"); maxPrice != "" {
		if price, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			filter["pricing.perSession"] = bson.M{"$lte": price}
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})
	var consultants []models.Consultant
	if err := db.FindAll(c, consultantColl(), filter, opts, &consultants); err != nil {
		return nil, err
	}
	return consultants, nil
}

func FetchConsultantByID(c *gin.Context, id string) (*models.Consultant, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.NotFound(util.CONSULTANT_NOT_FOUND)
	}

	var cached models.Consultant
	if hit, _ := redis.GetCache(c, util.ConsultantKey+id, &cached); hit {
		return &cached, nil
	}

	var consultant models.Consultant
	if err := db.FindOne(c, consultantColl(), bson.M{"_id": oid}, &consultant); err != nil {
		return nil, util.NotFound(util.CONSULTANT_NOT_FOUND)
	}
	if err := redis.SetCache(c, util.ConsultantKey+id, consultant); err != nil {
		log.Println("Error while caching consultant: ", err)
	}
	return &consultant, nil
}

/*
* Update a consultant listing. Only the owning consultant or a privileged
* actor may change it.
 */
func UpdateConsultant(c *gin.Context, id string, updates map[string]interface{}) (*models.Consultant, error) {
	actor, err := ActorFromContext(c)
	if err != nil {
		return nil, err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.NotFound(util.CONSULTANT_NOT_FOUND)
	}

	var consultant models.Consultant
	if err := db.FindOne(c, consultantColl(), bson.M{"_id": oid}, &consultant); err != nil {
		return nil, util.NotFound(util.CONSULTANT_NOT_FOUND)
	}
	if !actor.Role.Privileged() && consultant.UserID != actor.ID {
		return nil, util.Forbidden("Access denied")
	}

	set := bson.M{}
	for key, value := range updates {
		switch key {
		case "userId", "_id", "id", "rating", "reviewsCount", "isVerified":
			// ownership, identity and reputation fields never come from the payload
			if key == "isVerified" && actor.Role.Privileged() {
				set[key] = value
			}
		default:
			set[strings.TrimSpace(key)] = value
		}
	}
	set["updatedAt"] = time.Now()

	if _, err := db.UpdateOne(c, consultantColl(), bson.M{"_id": oid}, bson.M{"$set": set}); err != nil {
		return nil, err
	}
	if err := redis.DeleteCache(c, util.ConsultantKey+id); err != nil {
		log.Println("Error while evicting consultant cache: ", err)
	}

	var updated models.Consultant
	if err := db.FindOne(c, consultantColl(), bson.M{"_id": oid}, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func DeleteConsultant(c *gin.Context, id string) error {
	actor, err := ActorFromContext(c)
	if err != nil {
		return err
	}
	if !actor.Role.Privileged() {
		return util.Forbidden("Access denied")
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return util.NotFound(util.CONSULTANT_NOT_FOUND)
	}
	res, err := db.DeleteOne(c, consultantColl(), bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return util.NotFound(util.CONSULTANT_NOT_FOUND)
	}
	if err := redis.DeleteCache(c, util.ConsultantKey+id); err != nil {
		log.Println("Error while evicting consultant cache: ", err)
	}
	return nil
}
