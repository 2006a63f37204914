package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"tutorhive/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var listSort = options.Find().SetSort(bson.D{
	{Key: "date", Value: 1},
	{Key: "startTime", Value: 1},
})

func (repo *MongoBookingRepo) list(filter bson.M, opts *options.FindOptions) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// ListByTutor returns the tutor's bookings sorted ascending by (date, startTime).
func (repo *MongoBookingRepo) ListByTutor(tutorID string) ([]models.Booking, error) {
	return repo.list(bson.M{"tutorId": tutorID}, listSort)
}

// ListByStudent returns the student's bookings sorted ascending by (date, startTime).
func (repo *MongoBookingRepo) ListByStudent(studentID string) ([]models.Booking, error) {
	return repo.list(bson.M{"studentId": studentID}, listSort)
}

// ListInFlight returns every booking still pending or confirmed.
func (repo *MongoBookingRepo) ListInFlight() ([]models.Booking, error) {
	filter := bson.M{
		"status": bson.M{"$in": []string{models.BookingPending, models.BookingConfirmed}},
	}
	return repo.list(filter, nil)
}
