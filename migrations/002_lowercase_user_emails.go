package migrations

import (
	"context"
	"log"
	"strings"

	"vitalfit/config/db"
	"vitalfit/util"

	"go.mongodb.org/mongo-driver/bson"
)

/*
* Login matches on the lowercased email, so normalize any addresses
* stored with mixed case before that convention was enforced.
 */
func LowercaseUserEmails() {
	ctx := context.Background()
	coll := db.DB.Collection(util.UserCollection)

	cursor, err := coll.Find(ctx, bson.M{"email": bson.M{"$exists": true, "$ne": ""}})
	if err != nil {
		log.Println("Migration failed to scan users:", err)
		return
	}
	defer cursor.Close(ctx)

	updated := 0
	for cursor.Next(ctx) {
		var doc struct {
			ID    interface{} `bson:"_id"`
			Email string      `bson:"email"`
		}
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		lowered := strings.ToLower(doc.Email)
		if lowered == doc.Email {
			continue
		}
		if _, err := coll.UpdateOne(ctx, bson.M{"_id": doc.ID}, bson.M{"$set": bson.M{"email": lowered}}); err != nil {
			log.Println("Migration failed to update user:", err)
			continue
		}
		updated++
	}
	log.Printf("Migration applied: %d user emails normalized\n", updated)
}
