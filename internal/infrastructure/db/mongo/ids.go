package mongo

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bdhub/shoe-api/internal/core/domain"
)

// objectID parses a hex id from a path parameter.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}

func insertedHex(v interface{}) string {
	if oid, ok := v.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}
