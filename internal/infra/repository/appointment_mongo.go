package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domain "github.com/hvrSSB04/ssb-backend/internal/domain/appointment"
	"github.com/hvrSSB04/ssb-backend/internal/httperr"
	"github.com/hvrSSB04/ssb-backend/internal/models"
)

type AppointmentMongoRepository struct {
	coll *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Database) *AppointmentMongoRepository {
	return &AppointmentMongoRepository{coll: db.Collection("appointments")}
}

func (r *AppointmentMongoRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if _, err := r.coll.InsertOne(ctx, ap); err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *AppointmentMongoRepository) FindByID(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ap)
	if err == mongo.ErrNoDocuments {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find appointment: %w", err)
	}
	return &ap, nil
}

func (r *AppointmentMongoRepository) FindByBarber(
	ctx context.Context,
	barberName string,
) ([]models.Appointment, error) {

	return r.findAll(ctx, bson.M{"barber": barberName})
}

func (r *AppointmentMongoRepository) FindByEmail(
	ctx context.Context,
	email string,
) ([]models.Appointment, error) {

	return r.findAll(ctx, bson.M{"email": email})
}

func (r *AppointmentMongoRepository) findAll(
	ctx context.Context,
	filter bson.M,
) ([]models.Appointment, error) {

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	var apps []models.Appointment
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return apps, nil
}

func (r *AppointmentMongoRepository) SetApproved(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var ap models.Appointment
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"approved": true}},
		opts,
	).Decode(&ap)

	if err == mongo.ErrNoDocuments {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to approve appointment: %w", err)
	}
	return &ap, nil
}

// DeleteAndReturn is a single find-and-delete so the caller gets a
// consistent snapshot of the record it just destroyed.
func (r *AppointmentMongoRepository) DeleteAndReturn(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&ap)
	if err == mongo.ErrNoDocuments {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete appointment: %w", err)
	}
	return &ap, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentMongoRepository)(nil)
