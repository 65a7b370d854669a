package interfaces

import (
	"context"
	"paydesk/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// Identifier assignment belongs to the repository: InsertOne/InsertMany
// generate ids for records that carry none. FindOne returns a zero-value
// Payment (empty ID) when the id does not exist.

type IPaymentRepository interface {
	InsertMany(ctx context.Context, payments []entities.Payment) ([]string, error)
	InsertOne(ctx context.Context, p entities.Payment) (string, error)
	FindOne(ctx context.Context, id string) (entities.Payment, error)
	Find(ctx context.Context, statusFilter string, skip, limit int) ([]entities.Payment, error)
	UpdateOne(ctx context.Context, id string, patch map[string]any) (matched int, err error)
	DeleteOne(ctx context.Context, id string) (deleted int, err error)
}
