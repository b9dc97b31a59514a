package services

import (
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

func profileColl() *mongo.Collection {
	return db.OpenCollections(util.ProfileCollection)
}

func FetchProfile(c *gin.Context, userId string) (*models.Profile, error) {
	actor, err := ActorFromContext(c)
	if err != nil {
		return nil, err
	}
	target := actor.ID
	if userId != "" {
		oid, oidErr := primitive.ObjectIDFromHex(userId)
		if oidErr != nil {
			return nil, util.NotFound(util.PROFILE_NOT_FOUND)
		}
		if oid != actor.ID && !actor.Role.Privileged() {
			return nil, util.Forbidden("Access denied")
		}
		target = oid
	}

	cacheKey := util.ProfileKey + target.Hex()
	var cached models.Profile
	if hit, _ := redis.GetCache(c, cacheKey, &cached); hit {
		return &cached, nil
	}

	var profile models.Profile
	if err := db.FindOne(c, profileColl(), bson.M{"userId": target}, &profile); err != nil {
		return nil, util.NotFound(util.PROFILE_NOT_FOUND)
	}
	if err := redis.SetCache(c, cacheKey, profile); err != nil {
		log.Println("Error while caching profile: ", err)
	}
	return &profile, nil
}

/*
* Create or update the actor's own profile. Gamification counters are
* server-managed and never taken from the payload.
 */
func UpsertProfile(c *gin.Context, updates map[string]interface{}) (*models.Profile, error) {
	actor, err := ActorFromContext(c)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	for key, value := range updates {
		switch key {
		case "_id", "id", "userId", "logincount", "badgeCount", "achievements", "membershipStatus", "referralCode", "createdAt":
			continue
		default:
			set[key] = value
		}
	}
	now := time.Now()
	set["updatedAt"] = now

	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"userId": actor.ID, "createdAt": now, "membershipStatus": "free"},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := profileColl().UpdateOne(c, bson.M{"userId": actor.ID}, update, opts); err != nil {
		return nil, err
	}
	if err := redis.DeleteCache(c, util.ProfileKey+actor.ID.Hex()); err != nil {
		log.Println("Error while evicting profile cache: ", err)
	}

	var profile models.Profile
	if err := db.FindOne(c, profileColl(), bson.M{"userId": actor.ID}, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

/*
* Record a login against the profile, used after successful auth
 */
func TouchProfileLogin(c *gin.Context, userID primitive.ObjectID) {
	now := time.Now()
	update := bson.M{
		"$set":         bson.M{"lastlogin": now, "updatedAt": now},
		"$inc":         bson.M{"logincount": 1},
		"$setOnInsert": bson.M{"userId": userID, "createdAt": now, "membershipStatus": "free"},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := profileColl().UpdateOne(c, bson.M{"userId": userID}, update, opts); err != nil {
		log.Println("Error while recording login on profile: ", err)
		return
	}
	if err := redis.DeleteCache(c, util.ProfileKey+userID.Hex()); err != nil {
		log.Println("Error while evicting profile cache: ", err)
	}
}
