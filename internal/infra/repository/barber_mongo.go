package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	domain "github.com/hvrSSB04/ssb-backend/internal/domain/barber"
	"github.com/hvrSSB04/ssb-backend/internal/httperr"
	"github.com/hvrSSB04/ssb-backend/internal/models"
)

type BarberMongoRepository struct {
	coll *mongo.Collection
}

func NewBarberMongoRepository(db *mongo.Database) *BarberMongoRepository {
	return &BarberMongoRepository{coll: db.Collection("barbers")}
}

func (r *BarberMongoRepository) Create(
	ctx context.Context,
	b *models.Barber,
) error {

	_, err := r.coll.InsertOne(ctx, b)
	if mongo.IsDuplicateKeyError(err) {
		return httperr.ErrBusiness("email_already_exists")
	}
	if err != nil {
		return fmt.Errorf("failed to create barber: %w", err)
	}
	return nil
}

func (r *BarberMongoRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.Barber, error) {

	var b models.Barber
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find barber by email: %w", err)
	}
	return &b, nil
}

func (r *BarberMongoRepository) FindByIdentifier(
	ctx context.Context,
	identifier string,
) (*models.Barber, error) {

	filter := bson.M{"$or": bson.A{
		bson.M{"first_name": identifier},
		bson.M{"last_name": identifier},
		bson.M{"email": identifier},
	}}

	var b models.Barber
	err := r.coll.FindOne(ctx, filter).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find barber by identifier: %w", err)
	}
	return &b, nil
}

func (r *BarberMongoRepository) FindByFullName(
	ctx context.Context,
	name string,
) (*models.Barber, error) {

	filter := bson.M{"$expr": bson.M{"$eq": bson.A{
		bson.M{"$concat": bson.A{"$first_name", " ", "$last_name"}},
		name,
	}}}

	var b models.Barber
	err := r.coll.FindOne(ctx, filter).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find barber by name: %w", err)
	}
	return &b, nil
}

func (r *BarberMongoRepository) List(
	ctx context.Context,
) ([]models.Barber, error) {

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list barbers: %w", err)
	}

	var barbers []models.Barber
	if err := cursor.All(ctx, &barbers); err != nil {
		return nil, fmt.Errorf("failed to decode barbers: %w", err)
	}
	return barbers, nil
}

// Compile-time check
var _ domain.Repository = (*BarberMongoRepository)(nil)
