package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"tutorhive/database"
	"tutorhive/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	return &MongoBookingRepo{coll: database.Collection("bookings")}
}

func (repo *MongoBookingRepo) Create(b *models.Booking) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

func (repo *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching booking with id %s: %w", id, err)
	}
	return &booking, nil
}

func (repo *MongoBookingRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("failed to delete booking %s: %w", id, err)
	}
	return nil
}

// transition performs a status-guarded update. The from-status filter makes
// each transition atomic per document: a booking already moved on by
// another actor simply stops matching.
func (repo *MongoBookingRepo) transition(id, from string, set bson.M) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": id, "status": from},
		bson.M{"$set": set},
	)
	if err != nil {
		return false, fmt.Errorf("failed to transition booking %s: %w", id, err)
	}
	return res.MatchedCount > 0, nil
}

func (repo *MongoBookingRepo) ConfirmPending(id string, at time.Time) (bool, error) {
	return repo.transition(id, models.BookingPending, bson.M{
		"status":    models.BookingConfirmed,
		"updatedAt": at,
	})
}

func (repo *MongoBookingRepo) RejectPending(id, note string, at time.Time) (bool, error) {
	set := bson.M{
		"status":    models.BookingRejected,
		"updatedAt": at,
	}
	if note != "" {
		set["rejectNote"] = note
	}
	return repo.transition(id, models.BookingPending, set)
}

func (repo *MongoBookingRepo) FinishConfirmed(id string, at time.Time) (bool, error) {
	return repo.transition(id, models.BookingConfirmed, bson.M{
		"status":     models.BookingFinished,
		"finishedAt": at,
		"updatedAt":  at,
	})
}

func (repo *MongoBookingRepo) ExpirePending(id string, at time.Time) (bool, error) {
	return repo.transition(id, models.BookingPending, bson.M{
		"status":    models.BookingExpired,
		"updatedAt": at,
	})
}
