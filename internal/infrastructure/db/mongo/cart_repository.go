package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bdhub/shoe-api/internal/core/domain"
)

const collectionCarts = "carts"

type CartRepository struct {
	col *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{col: db.Collection(collectionCarts)}
}

// cartDocument keeps the client's attributes at the top level of the
// document, next to the owner email.
type cartDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Email      string             `bson:"email"`
	Attributes bson.M             `bson:",inline"`
}

func (r *CartRepository) Insert(ctx context.Context, item *domain.CartItem) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	attrs := bson.M{}
	for k, v := range item.Attributes {
		if k == "_id" || k == "email" {
			continue
		}
		attrs[k] = v
	}

	res, err := r.col.InsertOne(ctx, cartDocument{Email: item.Email, Attributes: attrs})
	if err != nil {
		return "", fmt.Errorf("insert cart item: %w", err)
	}
	return insertedHex(res.InsertedID), nil
}

func (r *CartRepository) ListByOwner(ctx context.Context, email string) ([]*domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	var docs []cartDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode cart items: %w", err)
	}

	items := make([]*domain.CartItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, &domain.CartItem{
			ID:         d.ID.Hex(),
			Email:      d.Email,
			Attributes: map[string]any(d.Attributes),
		})
	}
	return items, nil
}

// DeleteOwned matches on both _id and owner. An id that is not a valid
// ObjectID cannot match anything and reports zero deletions.
func (r *CartRepository) DeleteOwned(ctx context.Context, id, email string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid, "email": email})
	if err != nil {
		return 0, fmt.Errorf("delete cart item: %w", err)
	}
	return res.DeletedCount, nil
}
