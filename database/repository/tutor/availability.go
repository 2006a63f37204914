package tutorRepo

import (
	"context"
	"fmt"
	"time"

	"tutorhive/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ReplaceAvailability swaps the tutor's whole availability grid under a
// version guard. Slot locking, releasing, and availability edits all go
// through here, so concurrent writers on the same tutor serialize on the
// availabilityVersion token instead of clobbering each other's
// read-modify-write.
func (repo *MongoTutorRepo) ReplaceAvailability(tutorID string, grid []models.DayAvailability, expectedVersion int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":                  tutorID,
		"availabilityVersion": expectedVersion,
	}
	update := bson.M{
		"$set": bson.M{
			"availability": grid,
			"updatedAt":    time.Now(),
		},
		"$inc": bson.M{"availabilityVersion": 1},
	}

	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to replace availability for tutor %s: %w", tutorID, err)
	}
	if res.MatchedCount == 0 {
		return ErrVersionConflict
	}
	return nil
}
