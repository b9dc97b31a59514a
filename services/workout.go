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

func workoutColl() *mongo.Collection {
	return db.OpenCollections(util.WorkoutCollection)
}

func LogWorkout(c *gin.Context, workout models.Workout) (*models.Workout, error) {
	actor, err := ActorFromContext(c)
	if err != nil {
		return nil, err
	}
	if !models.ValidWorkoutType(workout.WorkoutType) {
		return nil, util.BadRequest("workoutType must be Cardio, Strength, Yoga or HIIT")
	}
	if workout.Duration <= 0 {
		return nil, util.BadRequest("duration must be a positive number of minutes")
	}
	if workout.Intensity == "" {
		workout.Intensity = "medium"
	}
	if !models.ValidIntensity(workout.Intensity) {
		return nil, util.BadRequest("intensity must be low, medium or high")
	}

	now := time.Now()
	workout.UserID = actor.ID
	if workout.CreatedAt.IsZero() {
		workout.CreatedAt = now
	}
	workout.UpdatedAt = now
	inserted, err := db.CreateOne(c, workoutColl(), workout)
	if err != nil {
		return nil, err
	}
	workout.ID = inserted.InsertedID.(primitive.ObjectID)
	return &workout, nil
}

type WorkoutTypeStats struct {
	WorkoutType    string  `json:"workoutType" bson:"_id"`
	Sessions       int     `json:"sessions" bson:"sessions"`
	TotalMinutes   int     `json:"totalMinutes" bson:"totalMinutes"`
	CaloriesBurned float64 `json:"caloriesBurned" bson:"caloriesBurned"`
}

type WorkoutStats struct {
	Period         string             `json:"period"`
	From           time.Time          `json:"from"`
	To             time.Time          `json:"to"`
	Sessions       int                `json:"sessions"`
	TotalMinutes   int                `json:"totalMinutes"`
	CaloriesBurned float64            `json:"caloriesBurned"`
	ByType         []WorkoutTypeStats `json:"byType"`
}

/*
* Today's workouts plus aggregate stats for the day
 */
func FetchTodayWorkouts(c *gin.Context) ([]models.Workout, *WorkoutStats, error) {
	actor, err := ActorFromContext(c)
	if err != nil {
		return nil, nil, err
	}
	start, end := dayBounds(time.Now())
	filter := bson.M{"userId": actor.ID, "createdAt": bson.M{"$gte": start, "$lt": end}}

	var workouts []models.Workout
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if err := db.FindAll(c, workoutColl(), filter, opts, &workouts); err != nil {
		return nil, nil, err
	}
	stats, err := workoutStats(c, actor.ID, "today", start, end)
	if err != nil {
		return nil, nil, err
	}
	return workouts, stats, nil
}

/*
* Aggregate stats for a rolling period: week, month or year
 */
func FetchWorkoutStats(c *gin.Context) (*WorkoutStats, error) {
	actor, err := ActorFromContext(c)
	if err != nil {
		return nil, err
	}
	period := c.DefaultQuery("period", "week")
	now := time.Now()
	var from time.Time
	switch period {
	case "week":
		from = now.AddDate(0, 0, -7)
	case "month":
		from = now.AddDate(0, -1, 0)
	case "year":
		from = now.AddDate(-1, 0, 0)
	default:
		return nil, util.BadRequest("period must be week, month or year")
	}
	return workoutStats(c, actor.ID, period, from, now)
}

func workoutStats(c *gin.Context, userID primitive.ObjectID, period string, from, to time.Time) (*WorkoutStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": userID, "createdAt": bson.M{"$gte": from, "$lt": to}}}},
		{{Key: "$group", Value: bson.M{
			"_id":            "$workoutType",
			"sessions":       bson.M{"$sum": 1},
			"totalMinutes":   bson.M{"$sum": "$duration"},
			"caloriesBurned": bson.M{"$sum": "$caloriesBurned"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	cursor, err := workoutColl().Aggregate(c, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(c)

	var byType []WorkoutTypeStats
	if err := cursor.All(c, &byType); err != nil {
		return nil, err
	}

	stats := &WorkoutStats{Period: period, From: from, To: to, ByType: byType}
	for _, t := range byType {
		stats.Sessions += t.Sessions
		stats.TotalMinutes += t.TotalMinutes
		stats.CaloriesBurned += t.CaloriesBurned
	}
	return stats, nil
}

func FetchWorkouts(c *gin.Context) ([]models.Workout, error) {
	actor, err := ActorFromContext(c)
	if err != nil {
		return nil, err
	}
	filter := bson.M{"userId": actor.ID}
	if workoutType := c.Query("workoutType"); workoutType != "" {
		if !models.ValidWorkoutType(workoutType) {
			return nil, util.BadRequest("Invalid workoutType")
		}
		filter["workoutType"] = workoutType
	}
	if date := c.Query("date"); date != "" {
		day, perr := time.Parse("2006-01-02", date)
		if perr != nil {
			return nil, util.InvalidDate("Invalid date, expected YYYY-MM-DD")
		}
		start, end := dayBounds(day)
		filter["createdAt"] = bson.M{"$gte": start, "$lt": end}
	}

	var workouts []models.Workout
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if err := db.FindAll(c, workoutColl(), filter, opts, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

func UpdateWorkout(c *gin.Context, id string, updates map[string]interface{}) (*models.Workout, error) {
	actor, err := ActorFromContext(c)
	if err != nil {
		return nil, err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.NotFound(util.WORKOUT_NOT_FOUND)
	}
	filter := bson.M{"_id": oid}
	if !actor.Role.Privileged() {
		filter["userId"] = actor.ID
	}
	var workout models.Workout
	if err := db.FindOne(c, workoutColl(), filter, &workout); err != nil {
		return nil, util.NotFound(util.WORKOUT_NOT_FOUND)
	}

	if raw, ok := updates["workoutType"].(string); ok && !models.ValidWorkoutType(raw) {
		return nil, util.BadRequest("Invalid workoutType")
	}
	if raw, ok := updates["intensity"].(string); ok && !models.ValidIntensity(raw) {
		return nil, util.BadRequest("Invalid intensity")
	}
	if raw, ok := updates["duration"].(float64); ok && raw <= 0 {
		return nil, util.BadRequest("duration must be a positive number of minutes")
	}

	set := bson.M{}
	for _, field := range []string{"workoutType", "duration", "caloriesBurned", "intensity", "notes"} {
		if value, ok := updates[field]; ok {
			set[field] = value
		}
	}
	set["updatedAt"] = time.Now()
	if _, err := db.UpdateOne(c, workoutColl(), bson.M{"_id": workout.ID}, bson.M{"$set": set}); err != nil {
		return nil, err
	}

	var updated models.Workout
	if err := db.FindOne(c, workoutColl(), bson.M{"_id": workout.ID}, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func DeleteWorkout(c *gin.Context, id string) error {
	actor, err := ActorFromContext(c)
	if err != nil {
		return err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return util.NotFound(util.WORKOUT_NOT_FOUND)
	}
	filter := bson.M{"_id": oid}
	if !actor.Role.Privileged() {
		filter["userId"] = actor.ID
	}
	res, err := db.DeleteOne(c, workoutColl(), filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return util.NotFound(util.WORKOUT_NOT_FOUND)
	}
	return nil
}
