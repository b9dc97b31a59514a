package services

import (
	"strconv"
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

func wellnessColl() *mongo.Collection {
	return db.OpenCollections(util.WellnessCollection)
}

/*
* Save questionnaire answers, replacing any previous submission for
* the actor
 */
func SaveWellnessAnswers(c *gin.Context, answers map[string]string) (*models.WellnessAnswer, error) {
	actor, err := ActorFromContext(c)
	if err != nil {
		return nil, err
	}
	if len(answers) == 0 {
		return nil, util.MissingField("answers are required")
	}

	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"userRole":    actor.Role,
			"answers":     answers,
			"completedAt": now,
			"updatedAt":   now,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := wellnessColl().UpdateOne(c, bson.M{"userId": actor.ID}, update, opts); err != nil {
		return nil, err
	}

	var saved models.WellnessAnswer
	if err := db.FindOne(c, wellnessColl(), bson.M{"userId": actor.ID}, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func FetchWellnessAnswers(c *gin.Context, userId string) (*models.WellnessAnswer, error) {
	actor, err := ActorFromContext(c)
	if err != nil {
		return nil, err
	}
	target := actor.ID
	if userId != "" {
		oid, oidErr := primitive.ObjectIDFromHex(userId)
		if oidErr != nil {
			return nil, util.NotFound(util.WELLNESS_NOT_FOUND)
		}
		if oid != actor.ID && !actor.Role.Privileged() {
			return nil, util.Forbidden("Access denied")
		}
		target = oid
	}

	var answer models.WellnessAnswer
	if err := db.FindOne(c, wellnessColl(), bson.M{"userId": target}, &answer); err != nil {
		return nil, util.NotFound(util.WELLNESS_NOT_FOUND)
	}
	return &answer, nil
}

type WellnessPage struct {
	Answers []models.WellnessAnswer `json:"answers"`
	Total   int64                   `json:"total"`
	Page    int64                   `json:"page"`
	Limit   int64                   `json:"limit"`
}

/*
* Paginated admin listing of questionnaire submissions
 */
func FetchAllWellnessAnswers(c *gin.Context) (*WellnessPage, error) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	filter := bson.M{}
	if role := c.Query("role"); role != "" {
		parsed, ok := models.ParseRole(role)
		if !ok {
			return nil, util.BadRequest("Invalid role")
		}
		filter["userRole"] = parsed
	}

	total, err := wellnessColl().CountDocuments(c, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "completedAt", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)
	var answers []models.WellnessAnswer
	if err := db.FindAll(c, wellnessColl(), filter, opts, &answers); err != nil {
		return nil, err
	}

	return &WellnessPage{Answers: answers, Total: total, Page: page, Limit: limit}, nil
}

func DeleteWellnessAnswers(c *gin.Context, userId string) error {
	actor, err := ActorFromContext(c)
	if err != nil {
		return err
	}
	target := actor.ID
	if userId != "" {
		oid, oidErr := primitive.ObjectIDFromHex(userId)
		if oidErr != nil {
			return util.NotFound(util.WELLNESS_NOT_FOUND)
		}
		if oid != actor.ID && !actor.Role.Privileged() {
			return util.Forbidden("Access denied")
		}
		target = oid
	}
	res, err := db.DeleteOne(c, wellnessColl(), bson.M{"userId": target})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return util.NotFound(util.WELLNESS_NOT_FOUND)
	}
	return nil
}
