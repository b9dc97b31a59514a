package migrations

import (
	"context"
	"log"
	"time"

	"vitalfit/config/db"
	"vitalfit/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

/*
* Older appointments were stored without an end time. Backfill endAt as
* startAt plus the 30 minute default so the overlap checks can rely on
* every record carrying a full range.
 */
func BackfillAppointmentEndAt() {
	ctx := context.Background()
	coll := db.DB.Collection(util.AppointmentCollection)

	cursor, err := coll.Find(ctx, bson.M{"endAt": bson.M{"$exists": false}})
	if err != nil {
		log.Println("Migration failed to scan appointments:", err)
		return
	}
	defer cursor.Close(ctx)

	updated := 0
	for cursor.Next(ctx) {
		var doc struct {
			ID      interface{} `bson:"_id"`
			StartAt time.Time   `bson:"startAt"`
		}
		if err := cursor.Decode(&doc); err != nil {
			log.Println("Migration failed to decode appointment:", err)
			continue
		}
		_, err := coll.UpdateOne(ctx,
			bson.M{"_id": doc.ID},
			bson.M{"$set": bson.M{"endAt": doc.StartAt.Add(30 * time.Minute)}},
		)
		if err != nil {
			log.Println("Migration failed to update appointment:", err)
			continue
		}
		updated++
	}
	log.Printf("Migration applied: %d appointments backfilled\n", updated)
}

/*
* Appointments written before the status field became mandatory default
* to pending.
 */
func BackfillAppointmentStatus() {
	ctx := context.Background()
	result, err := db.DB.Collection(util.AppointmentCollection).UpdateMany(
		ctx,
		bson.M{"status": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"status": "pending"}},
	)
	if err != nil {
		log.Println("Migration failed:", err)
		return
	}
	logModified(result)
}

func logModified(result *mongo.UpdateResult) {
	log.Printf("Migration applied: %d documents updated\n", result.ModifiedCount)
}
