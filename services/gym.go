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
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultNearbyRadiusMeters = 5000.0

func gymColl() *mongo.Collection {
	return db.OpenCollections(util.GymCollection)
}

type CreateGymInput struct {
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	Amenities     []string `json:"amenities"`
	Price         float64  `json:"price"`
	AdminName     string   `json:"adminName"`
	AdminEmail    string   `json:"adminEmail"`
	AdminPhone    string   `json:"adminPhone"`
	AdminPassword string   `json:"adminPassword"`
}

/*
* Create a gym center along with its admin account. Superadmin only;
* the route guard enforces the role, this just does the work.
 */
func CreateGym(c *gin.Context, in CreateGymInput) (*models.GymCenter, *AuthResponse, error) {
	if in.Name == "" || in.Address == "" {
		return nil, nil, util.MissingField("name and address are required")
	}
	if in.AdminEmail == "" || in.AdminPassword == "" {
		return nil, nil, util.MissingField("adminEmail and adminPassword are required")
	}

	admin, err := RegisterAdmin(c, RegisterInput{
		Name:     in.AdminName,
		Email:    in.AdminEmail,
		Phone:    in.AdminPhone,
		Password: in.AdminPassword,
	})
	if err != nil {
		return nil, nil, err
	}
	adminID, err := primitive.ObjectIDFromHex(admin.UserID)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	gym := models.GymCenter{
		GymID:     "GYM-" + uuid.NewString(),
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		Admin:     adminID,
		Amenities: in.Amenities,
		Price:     in.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Latitude != nil && in.Longitude != nil {
		gym.Location = &models.GeoPoint{
			Type:        "Point",
			Coordinates: []float64{*in.Longitude, *in.Latitude},
		}
	}

	inserted, err := db.CreateOne(c, gymColl(), gym)
	if err != nil {
		return nil, nil, err
	}
	gym.ID = inserted.InsertedID.(primitive.ObjectID)
	log.Println("Gym center created: ", gym.GymID)
	return &gym, admin, nil
}

func FetchAllGyms(c *gin.Context) ([]models.GymCenter, error) {
	filter := bson.M{}
	if name := c.Query("name"); name != "" {
		filter["name"] = bson.M{"$regex": name, "$options": "i"}
	}
	var gyms []models.GymCenter
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	if err := db.FindAll(c, gymColl(), filter, opts, &gyms); err != nil {
		return nil, err
	}
	return gyms, nil
}

/*
* Geo search for gyms near a coordinate, with optional amenity and
* price filters. Backed by the 2dsphere index on location.
 */
func FetchNearbyGyms(c *gin.Context) ([]models.GymCenter, error) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		return nil, util.MissingField("lat and lng query params are required")
	}

	radius := defaultNearbyRadiusMeters
	if raw := c.Query("radius"); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil && parsed > 0 {
			radius = parsed
		}
	}

	filter := bson.M{
		"location": bson.M{
			"$near": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": []float64{lng, lat},
				},
				"$maxDistance": radius,
			},
		},
	}
	if amenities := c.Query("amenities"); amenities != "" {
		filter["amenities"] = bson.M{"$all": strings.Split(amenities, ",")}
	}
	if maxPrice := c.Query("maxPrice"); maxPrice != "" {
		if price, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			filter["price"] = bson.M{"$lte": price}
		}
	}

	var gyms []models.GymCenter
	if err := db.FindAll(c, gymColl(), filter, nil, &gyms); err != nil {
		return nil, err
	}
	return gyms, nil
}

func FetchGymByID(c *gin.Context, id string) (*models.GymCenter, error) {
	var cached models.GymCenter
	if hit, _ := redis.GetCache(c, util.GymKey+id, &cached); hit {
		return &cached, nil
	}

	filter := bson.M{"gymId": id}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		filter = bson.M{"$or": []bson.M{{"_id": oid}, {"gymId": id}}}
	}

	var gym models.GymCenter
	if err := db.FindOne(c, gymColl(), filter, &gym); err != nil {
		return nil, util.NotFound(util.GYM_NOT_FOUND)
	}
	if err := redis.SetCache(c, util.GymKey+id, gym); err != nil {
		log.Println("Error while caching gym: ", err)
	}
	return &gym, nil
}

/*
* Update a gym. The gym's own admin or a superadmin may change it.
 */
func UpdateGym(c *gin.Context, id string, updates map[string]interface{}) (*models.GymCenter, error) {
	actor, err := ActorFromContext(c)
	if err != nil {
		return nil, err
	}
	gym, err := FetchGymByID(c, id)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.RoleSuperAdmin && gym.Admin != actor.ID {
		return nil, util.Forbidden("Access denied")
	}

	set := bson.M{}
	for key, value := range updates {
		switch key {
		case "_id", "id", "gymId", "admin", "createdAt":
			continue
		case "latitude", "longitude":
			continue
		default:
			set[key] = value
		}
	}
	if lat, latOk := updates["latitude"].(float64); latOk {
		if lng, lngOk := updates["longitude"].(float64); lngOk {
			set["location"] = models.GeoPoint{Type: "Point", Coordinates: []float64{lng, lat}}
		}
	}
	set["updatedAt"] = time.Now()

	if _, err := db.UpdateOne(c, gymColl(), bson.M{"_id": gym.ID}, bson.M{"$set": set}); err != nil {
		return nil, err
	}
	evictGymCache(c, gym)

	var updated models.GymCenter
	if err := db.FindOne(c, gymColl(), bson.M{"_id": gym.ID}, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func DeleteGym(c *gin.Context, id string) error {
	actor, err := ActorFromContext(c)
	if err != nil {
		return err
	}
	if actor.Role != models.RoleSuperAdmin {
		return util.Forbidden("Access denied")
	}
	gym, err := FetchGymByID(c, id)
	if err != nil {
		return err
	}
	if _, err := db.DeleteOne(c, gymColl(), bson.M{"_id": gym.ID}); err != nil {
		return err
	}
	evictGymCache(c, gym)
	return nil
}

func evictGymCache(c *gin.Context, gym *models.GymCenter) {
	for _, key := range []string{util.GymKey + gym.ID.Hex(), util.GymKey + gym.GymID} {
		if err := redis.DeleteCache(c, key); err != nil {
			log.Println("Error while evicting gym cache: ", err)
		}
	}
}
