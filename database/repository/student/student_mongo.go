package studentRepo

import (
	"context"
	"fmt"
	"time"

	"tutorhive/database"
	"tutorhive/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStudentRepo implements StudentRepository using MongoDB.
type MongoStudentRepo struct {
	coll *mongo.Collection
}

// NewMongoStudentRepo constructs a new instance of MongoStudentRepo.
func NewMongoStudentRepo() StudentRepository {
	return &MongoStudentRepo{coll: database.Collection("students")}
}

func (repo *MongoStudentRepo) Create(s *models.Student) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("failed to insert student: %w", err)
	}
	return nil
}

func (repo *MongoStudentRepo) GetByID(id string) (*models.Student, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var student models.Student
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&student); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching student with id %s: %w", id, err)
	}
	return &student, nil
}

func (repo *MongoStudentRepo) GetByEmail(email string) (*models.Student, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var student models.Student
	if err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&student); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching student with email %s: %w", email, err)
	}
	return &student, nil
}

func (repo *MongoStudentRepo) UpdateName(id, name string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"name": name, "updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update student %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("student %s not found", id)
	}
	return nil
}

func (repo *MongoStudentRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("failed to delete student %s: %w", id, err)
	}
	return nil
}

// EnsureIndexes creates the unique id/email indexes for the students collection.
func (repo *MongoStudentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := repo.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create student indexes: %w", err)
	}
	return nil
}
