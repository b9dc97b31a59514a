package services

import (
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

func waterColl() *mongo.Collection {
	return db.OpenCollections(util.WaterCollection)
}

func LogWaterIntake(c *gin.Context, entry models.WaterIntake) (*models.WaterIntake, error) {
	actor, err := ActorFromContext(c)
	if err != nil {
		return nil, err
	}
	if entry.Amount <= 0 {
		return nil, util.BadRequest("amount must be a positive number of millilitres")
	}

	now := time.Now()
	entry.UserID = actor.ID
	if entry.Time.IsZero() {
		entry.Time = now
	}
	entry.CreatedAt = now
	entry.UpdatedAt = now
	inserted, err := db.CreateOne(c, waterColl(), entry)
	if err != nil {
		return nil, err
	}
	entry.ID = inserted.InsertedID.(primitive.ObjectID)
	return &entry, nil
}

type WaterDaySummary struct {
	Date    string               `json:"date"`
	TotalMl float64              `json:"totalMl"`
	Entries []models.WaterIntake `json:"entries"`
}

/*
* All intake entries for one day plus the running total
 */
func FetchWaterIntake(c *gin.Context) (*WaterDaySummary, error) {
	actor, err := ActorFromContext(c)
	if err != nil {
		return nil, err
	}
	day := time.Now()
	if date := c.Query("date"); date != "" {
		parsed, perr := time.Parse("2006-01-02", date)
		if perr != nil {
			return nil, util.InvalidDate("Invalid date, expected YYYY-MM-DD")
		}
		day = parsed
	}
	start, end := dayBounds(day)

	filter := bson.M{"userId": actor.ID, "time": bson.M{"$gte": start, "$lt": end}}
	var entries []models.WaterIntake
	opts := options.Find().SetSort(bson.D{{Key: "time", Value: 1}})
	if err := db.FindAll(c, waterColl(), filter, opts, &entries); err != nil {
		return nil, err
	}

	summary := &WaterDaySummary{Date: start.Format("2006-01-02"), Entries: entries}
	for _, e := range entries {
		summary.TotalMl += e.Amount
	}
	return summary, nil
}

func DeleteWaterIntake(c *gin.Context, id string) error {
	actor, err := ActorFromContext(c)
	if err != nil {
		return err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return util.NotFound(util.ENTRY_NOT_FOUND)
	}
	filter := bson.M{"_id": oid}
	if !actor.Role.Privileged() {
		filter["userId"] = actor.ID
	}
	res, err := db.DeleteOne(c, waterColl(), filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return util.NotFound(util.ENTRY_NOT_FOUND)
	}
	return nil
}
