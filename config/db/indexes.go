package db

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
* Create the indexes the booking path relies on
* The unique partial index rejects a second live booking at the same
* consultant/startAt even when two requests race past the conflict check
 */
func EnsureIndexes(ctx context.Context) {
	appointments := OpenCollections("APPOINTMENT")

	_, err := appointments.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "consultantId", Value: 1}, {Key: "startAt", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{
					"status": bson.M{"$in": []string{"pending", "confirmed", "rescheduled"}},
				}),
		},
		{
			Keys: bson.D{{Key: "consultantId", Value: 1}, {Key: "status", Value: 1}, {Key: "endAt", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "userId", Value: 1}, {Key: "startAt", Value: 1}},
		},
	})
	if err != nil {
		log.Println("Error while creating appointment indexes: ", err)
	}

	gyms := OpenCollections("GYM_CENTER")
	_, err = gyms.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "location", Value: "2dsphere"}},
	})
	if err != nil {
		log.Println("Error while creating gym location index: ", err)
	}
}
