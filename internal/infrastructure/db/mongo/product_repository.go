package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bdhub/shoe-api/internal/core/domain"
)

const collectionProducts = "allProduct"

type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection(collectionProducts)}
}

type productDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Category string             `bson:"category"`
	Price    price              `bson:"price"`
	Image    string             `bson:"image"`
}

// price decodes whatever numeric or string value older rows hold in the
// price field. Anything that is not a number reads as 0.
type price float64

func (p *price) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Double:
		*p = price(rv.Double())
	case bsontype.Int32:
		*p = price(rv.Int32())
	case bsontype.Int64:
		*p = price(rv.Int64())
	case bsontype.Decimal128:
		f, err := strconv.ParseFloat(rv.Decimal128().String(), 64)
		if err == nil {
			*p = price(f)
		}
	case bsontype.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(rv.StringValue()), 64)
		if err == nil {
			*p = price(f)
		}
	}
	return nil
}

func (d *productDocument) toDomain() *domain.Product {
	return &domain.Product{
		ID:       d.ID.Hex(),
		Name:     d.Name,
		Category: d.Category,
		Price:    float64(d.Price),
		Image:    d.Image,
	}
}

func (r *ProductRepository) find(ctx context.Context, filter bson.M) ([]*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	var docs []productDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	products := make([]*domain.Product, 0, len(docs))
	for i := range docs {
		products = append(products, docs[i].toDomain())
	}
	return products, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	return r.find(ctx, bson.M{})
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc productDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, productDocument{
		Name:     p.Name,
		Category: p.Category,
		Price:    price(p.Price),
		Image:    p.Image,
	})
	if err != nil {
		return "", fmt.Errorf("insert product: %w", err)
	}
	return insertedHex(res.InsertedID), nil
}

// Update sets only the fields present in patch.
func (r *ProductRepository) Update(ctx context.Context, id string, patch domain.ProductPatch) (int64, int64, error) {
	oid, err := objectID(id)
	if err != nil {
		return 0, 0, err
	}

	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if len(set) == 0 {
		n, err := r.col.CountDocuments(ctx, bson.M{"_id": oid})
		if err != nil {
			return 0, 0, fmt.Errorf("count product: %w", err)
		}
		return n, 0, nil
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return 0, 0, fmt.Errorf("update product: %w", err)
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := objectID(id)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("delete product: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *ProductRepository) SearchByName(ctx context.Context, term string) ([]*domain.Product, error) {
	return r.find(ctx, nameRegex(regexp.QuoteMeta(term)))
}

func (r *ProductRepository) NamesWithPrefix(ctx context.Context, prefix string, limit int) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetProjection(bson.M{"name": 1}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, nameRegex("^"+regexp.QuoteMeta(prefix)), opts)
	if err != nil {
		return nil, fmt.Errorf("find product names: %w", err)
	}
	var docs []productDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode product names: %w", err)
	}

	names := make([]string, 0, len(docs))
	for _, d := range docs {
		names = append(names, d.Name)
	}
	return names, nil
}

func nameRegex(pattern string) bson.M {
	return bson.M{"name": primitive.Regex{Pattern: pattern, Options: "i"}}
}
