package tutorRepo

import (
	"context"
	"fmt"
	"time"

	"tutorhive/database"
	"tutorhive/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoTutorRepo implements TutorRepository using MongoDB.
type MongoTutorRepo struct {
	coll *mongo.Collection
}

// NewMongoTutorRepo constructs a new instance of MongoTutorRepo.
func NewMongoTutorRepo() TutorRepository {
	return &MongoTutorRepo{coll: database.Collection("tutors")}
}

func (repo *MongoTutorRepo) Create(t *models.Tutor) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("failed to insert tutor: %w", err)
	}
	return nil
}

func (repo *MongoTutorRepo) GetByID(id string) (*models.Tutor, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var tutor models.Tutor
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&tutor); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching tutor with id %s: %w", id, err)
	}
	return &tutor, nil
}

func (repo *MongoTutorRepo) GetByEmail(email string) (*models.Tutor, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var tutor models.Tutor
	if err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&tutor); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching tutor with email %s: %w", email, err)
	}
	return &tutor, nil
}

func (repo *MongoTutorRepo) UpdateProfile(id string, upd models.TutorUpdate) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	if upd.Name != "" {
		set["name"] = upd.Name
	}
	if upd.Bio != "" {
		set["bio"] = upd.Bio
	}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update tutor %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("tutor %s not found", id)
	}
	return nil
}

func (repo *MongoTutorRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("failed to delete tutor %s: %w", id, err)
	}
	return nil
}

func (repo *MongoTutorRepo) AddSession(tutorID string, s models.Session) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": tutorID},
		bson.M{
			"$push": bson.M{"sessions": s},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to add session for tutor %s: %w", tutorID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("tutor %s not found", tutorID)
	}
	return nil
}

func (repo *MongoTutorRepo) RemoveSession(tutorID, sessionID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": tutorID},
		bson.M{
			"$pull": bson.M{"sessions": bson.M{"id": sessionID}},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to remove session %s for tutor %s: %w", sessionID, tutorID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("tutor %s not found", tutorID)
	}
	return nil
}
