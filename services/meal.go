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

func mealColl() *mongo.Collection {
	return db.OpenCollections(util.MealCollection)
}

func LogMeal(c *gin.Context, meal models.Meal) (*models.Meal, error) {
	actor, err := ActorFromContext(c)
	if err != nil {
		return nil, err
	}
	if meal.FoodName == "" {
		return nil, util.MissingField("foodName is required")
	}
	if !models.ValidMealType(meal.MealType) {
		return nil, util.BadRequest("mealType must be breakfast, lunch, dinner or snack")
	}

	now := time.Now()
	meal.UserID = actor.ID
	if meal.CreatedAt.IsZero() {
		meal.CreatedAt = now
	}
	meal.UpdatedAt = now
	inserted, err := db.CreateOne(c, mealColl(), meal)
	if err != nil {
		return nil, err
	}
	meal.ID = inserted.InsertedID.(primitive.ObjectID)
	return &meal, nil
}

func numField(entry map[string]interface{}, keys ...string) float64 {
	for _, key := range keys {
		if raw, ok := entry[key]; ok {
			switch v := raw.(type) {
			case float64:
				return v
			case int:
				return float64(v)
			}
		}
	}
	return 0
}

func strField(entry map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if raw, ok := entry[key].(string); ok && raw != "" {
			return raw
		}
	}
	return ""
}

/*
* Bulk meal ingest. Entries come from external trackers whose field
* names differ from ours, so aliases are accepted per field.
 */
func BulkLogMeals(c *gin.Context, entries []map[string]interface{}) ([]models.Meal, []map[string]interface{}, error) {
	actor, err := ActorFromContext(c)
	if err != nil {
		return nil, nil, err
	}
	if len(entries) == 0 {
		return nil, nil, util.MissingField("meals array is required")
	}

	now := time.Now()
	var saved []models.Meal
	var failed []map[string]interface{}
	for i, entry := range entries {
		meal := models.Meal{
			UserID:       actor.ID,
			FoodName:     strField(entry, "foodName", "food_name", "name"),
			MealType:     strField(entry, "mealType", "meal_type", "type"),
			Calories:     numField(entry, "calories", "kcal"),
			Protein:      numField(entry, "protein", "protein_g"),
			Carbs:        numField(entry, "carbs", "carbohydrates", "carbs_g"),
			Fats:         numField(entry, "fats", "fat", "fat_g"),
			ServingSize:  numField(entry, "servingSize", "serving_size"),
			Fiber:        numField(entry, "fiber"),
			Sugar:        numField(entry, "sugar"),
			Sodium:       numField(entry, "sodium"),
			Cholesterol:  numField(entry, "cholesterol"),
			SaturatedFat: numField(entry, "saturatedFat", "saturated_fat"),
			Potassium:    numField(entry, "potassium"),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if raw := strField(entry, "loggedAt", "logged_at", "date"); raw != "" {
			if parsed, perr := parseTimestamp(raw); perr == nil {
				meal.CreatedAt = parsed
			}
		}

		if meal.FoodName == "" || !models.ValidMealType(meal.MealType) {
			failed = append(failed, map[string]interface{}{"index": i, "reason": "missing foodName or invalid mealType"})
			continue
		}
		inserted, insErr := db.CreateOne(c, mealColl(), meal)
		if insErr != nil {
			log.Println("Error while bulk inserting meal: ", insErr)
			failed = append(failed, map[string]interface{}{"index": i, "reason": "insert failed"})
			continue
		}
		meal.ID = inserted.InsertedID.(primitive.ObjectID)
		saved = append(saved, meal)
	}
	return saved, failed, nil
}

func mealScope(c *gin.Context) (bson.M, error) {
	actor, err := ActorFromContext(c)
	if err != nil {
		return nil, err
	}
	filter := bson.M{"userId": actor.ID}
	if target := c.Query("userId"); target != "" && actor.Role.Privileged() {
		oid, oidErr := primitive.ObjectIDFromHex(target)
		if oidErr != nil {
			return nil, util.BadRequest("Invalid userId")
		}
		filter["userId"] = oid
	}
	return filter, nil
}

func dayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start, start.Add(24 * time.Hour)
}

func FetchMeals(c *gin.Context) ([]models.Meal, error) {
	filter, err := mealScope(c)
	if err != nil {
		return nil, err
	}
	if mealType := c.Query("mealType"); mealType != "" {
		if !models.ValidMealType(mealType) {
			return nil, util.BadRequest("Invalid mealType")
		}
		filter["mealType"] = mealType
	}
	if date := c.Query("date"); date != "" {
		day, perr := time.Parse("2006-01-02", date)
		if perr != nil {
			return nil, util.InvalidDate("Invalid date, expected YYYY-MM-DD")
		}
		start, end := dayBounds(day)
		filter["createdAt"] = bson.M{"$gte": start, "$lt": end}
	} else {
		span := bson.M{}
		if from := c.Query("from"); from != "" {
			parsed, perr := parseTimestamp(from)
			if perr != nil {
				return nil, util.InvalidDate("Invalid from date")
			}
			span["$gte"] = parsed
		}
		if to := c.Query("to"); to != "" {
			parsed, perr := parseTimestamp(to)
			if perr != nil {
				return nil, util.InvalidDate("Invalid to date")
			}
			span["$lt"] = parsed
		}
		if len(span) > 0 {
			filter["createdAt"] = span
		}
	}

	var meals []models.Meal
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if err := db.FindAll(c, mealColl(), filter, opts, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

type MealTypeSummary struct {
	MealType string  `json:"mealType" bson:"_id"`
	Count    int     `json:"count" bson:"count"`
	Calories float64 `json:"calories" bson:"calories"`
	Protein  float64 `json:"protein" bson:"protein"`
	Carbs    float64 `json:"carbs" bson:"carbs"`
	Fats     float64 `json:"fats" bson:"fats"`
}

type DailyMealSummary struct {
	Date          string            `json:"date"`
	TotalCalories float64           `json:"totalCalories"`
	TotalProtein  float64           `json:"totalProtein"`
	TotalCarbs    float64           `json:"totalCarbs"`
	TotalFats     float64           `json:"totalFats"`
	ByMealType    []MealTypeSummary `json:"byMealType"`
}

/*
* Per-day nutrition rollup grouped by meal type
 */
func FetchMealSummary(c *gin.Context) (*DailyMealSummary, error) {
	filter, err := mealScope(c)
	if err != nil {
		return nil, err
	}

	day := time.Now()
	dateStr := c.Query("date")
	if dateStr != "" {
		parsed, perr := time.Parse("2006-01-02", dateStr)
		if perr != nil {
			return nil, util.InvalidDate("Invalid date, expected YYYY-MM-DD")
		}
		day = parsed
	}
	start, end := dayBounds(day)
	filter["createdAt"] = bson.M{"$gte": start, "$lt": end}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$group", Value: bson.M{
			"_id":      "$mealType",
			"count":    bson.M{"$sum": 1},
			"calories": bson.M{"$sum": "$calories"},
			"protein":  bson.M{"$sum": "$protein"},
			"carbs":    bson.M{"$sum": "$carbs"},
			"fats":     bson.M{"$sum": "$fats"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	cursor, err := mealColl().Aggregate(c, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(c)

	var groups []MealTypeSummary
	if err := cursor.All(c, &groups); err != nil {
		return nil, err
	}

	summary := &DailyMealSummary{
		Date:       start.Format("2006-01-02"),
		ByMealType: groups,
	}
	for _, g := range groups {
		summary.TotalCalories += g.Calories
		summary.TotalProtein += g.Protein
		summary.TotalCarbs += g.Carbs
		summary.TotalFats += g.Fats
	}
	return summary, nil
}

func FetchMealByID(c *gin.Context, id string) (*models.Meal, error) {
	actor, err := ActorFromContext(c)
	if err != nil {
		return nil, err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.NotFound(util.MEAL_NOT_FOUND)
	}
	filter := bson.M{"_id": oid}
	if !actor.Role.Privileged() {
		filter["userId"] = actor.ID
	}
	var meal models.Meal
	if err := db.FindOne(c, mealColl(), filter, &meal); err != nil {
		return nil, util.NotFound(util.MEAL_NOT_FOUND)
	}
	return &meal, nil
}

var mealUpdatableFields = map[string]bool{
	"mealType": true, "foodName": true, "calories": true, "protein": true,
	"carbs": true, "fats": true, "servingSize": true, "fiber": true,
	"sugar": true, "sodium": true, "cholesterol": true, "saturatedFat": true,
	"potassium": true, "imageId": true, "metadata": true,
}

func UpdateMeal(c *gin.Context, id string, updates map[string]interface{}) (*models.Meal, error) {
	meal, err := FetchMealByID(c, id)
	if err != nil {
		return nil, err
	}
	if raw, ok := updates["mealType"].(string); ok && !models.ValidMealType(raw) {
		return nil, util.BadRequest("Invalid mealType")
	}

	set := bson.M{}
	for key, value := range updates {
		if mealUpdatableFields[key] {
			set[key] = value
		}
	}
	set["updatedAt"] = time.Now()
	if _, err := db.UpdateOne(c, mealColl(), bson.M{"_id": meal.ID}, bson.M{"$set": set}); err != nil {
		return nil, err
	}

	var updated models.Meal
	if err := db.FindOne(c, mealColl(), bson.M{"_id": meal.ID}, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func DeleteMeal(c *gin.Context, id string) error {
	actor, err := ActorFromContext(c)
	if err != nil {
		return err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return util.NotFound(util.MEAL_NOT_FOUND)
	}
	filter := bson.M{"_id": oid}
	if !actor.Role.Privileged() {
		filter["userId"] = actor.ID
	}
	res, err := db.DeleteOne(c, mealColl(), filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return util.NotFound(util.MEAL_NOT_FOUND)
	}
	return nil
}
