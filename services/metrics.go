package services

import (
	"log"

	"vitalfit/config/db"
	"vitalfit/models"
	"vitalfit/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

/*
* Platform-wide counts for the admin dashboard
 */
func FetchPlatformMetrics(c *gin.Context) (map[string]interface{}, error) {
	users, err := userColl().CountDocuments(c, bson.M{"role": models.RoleUser})
	if err != nil {
		return nil, err
	}
	consultants, err := consultantColl().CountDocuments(c, bson.M{})
	if err != nil {
		return nil, err
	}
	gyms, err := gymColl().CountDocuments(c, bson.M{})
	if err != nil {
		return nil, err
	}
	events, err := eventColl().CountDocuments(c, bson.M{})
	if err != nil {
		return nil, err
	}

	appointments := map[string]int64{}
	appointmentColl := db.OpenCollections(util.AppointmentCollection)
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := appointmentColl.Aggregate(c, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(c)
	var groups []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cursor.All(c, &groups); err != nil {
		return nil, err
	}
	var total int64
	for _, g := range groups {
		appointments[g.Status] = g.Count
		total += g.Count
	}

	log.Println("Platform metrics computed")
	return map[string]interface{}{
		"users":                users,
		"consultants":          consultants,
		"gyms":                 gyms,
		"events":               events,
		"appointments":         total,
		"appointmentsByStatus": appointments,
		// growth figures come from the analytics pipeline once it lands
		"userGrowth":    "+0%",
		"revenueGrowth": "+0%",
	}, nil
}
