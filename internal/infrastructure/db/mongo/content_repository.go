package mongo

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/monsterwith/monstermedia/internal/core/domain"
)

const collectionContent = "content"

type ContentRepository struct {
	col *mongo.Collection
}

func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{col: db.Collection(collectionContent)}
}

// contentDoc is the MongoDB representation of a catalog entry.
type contentDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Type        string             `bson:"type"`
	ImageURL    string             `bson:"image_url,omitempty"`
	SourceURL   string             `bson:"source_url,omitempty"`
	RequiresVip bool               `bson:"requires_vip"`
	Tags        []string           `bson:"tags,omitempty"`
	Metadata    map[string]any     `bson:"metadata,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d *contentDoc) toDomain() domain.Content {
	return domain.Content{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Type:        domain.ContentType(d.Type),
		ImageURL:    d.ImageURL,
		SourceURL:   d.SourceURL,
		RequiresVip: d.RequiresVip,
		Tags:        d.Tags,
		Metadata:    d.Metadata,
		CreatedAt:   d.CreatedAt,
	}
}

// Create inserts a new catalog document and returns it with the assigned id.
func (r *ContentRepository) Create(ctx context.Context, c *domain.Content) (*domain.Content, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := contentDoc{
		Title:       c.Title,
		Description: c.Description,
		Type:        string(c.Type),
		ImageURL:    c.ImageURL,
		SourceURL:   c.SourceURL,
		RequiresVip: c.RequiresVip,
		Tags:        c.Tags,
		Metadata:    c.Metadata,
		CreatedAt:   c.CreatedAt,
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)

	out := doc.toDomain()
	return &out, nil
}

// FindByID retrieves a catalog entry by its hex id.
func (r *ContentRepository) FindByID(ctx context.Context, id string) (*domain.Content, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrContentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc contentDoc
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContentNotFound
		}
		return nil, err
	}
	out := doc.toDomain()
	return &out, nil
}

// FindByIDs retrieves the catalog entries for the given hex ids. Unknown or
// malformed ids are skipped rather than failing the whole lookup.
func (r *ContentRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Content, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return []domain.Content{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, err
	}
	return decodeAll(ctx, cur)
}

// ListByType returns the newest entries of the given category.
func (r *ContentRepository) ListByType(ctx context.Context, contentType domain.ContentType, limit int) ([]domain.Content, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cur, err := r.col.Find(ctx, bson.M{"type": string(contentType)}, opts)
	if err != nil {
		return nil, err
	}
	return decodeAll(ctx, cur)
}

// ListVip returns the newest entries that require a VIP entitlement.
func (r *ContentRepository) ListVip(ctx context.Context, limit int) ([]domain.Content, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cur, err := r.col.Find(ctx, bson.M{"requires_vip": true}, opts)
	if err != nil {
		return nil, err
	}
	return decodeAll(ctx, cur)
}

// Featured returns the most recent anime entry, used as the landing highlight.
func (r *ContentRepository) Featured(ctx context.Context) (*domain.Content, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var doc contentDoc
	err := r.col.FindOne(ctx, bson.M{"type": string(domain.TypeAnime)}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContentNotFound
		}
		return nil, err
	}
	out := doc.toDomain()
	return &out, nil
}

// Search matches query case-insensitively against title, description, and
// tags, optionally restricted to a single category. A URL query matches
// against source_url instead.
func (r *ContentRepository) Search(ctx context.Context, query string, contentType *domain.ContentType) ([]domain.Content, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}

	var filter bson.M
	if strings.HasPrefix(query, "http://") || strings.HasPrefix(query, "https://") {
		filter = bson.M{"source_url": pattern}
	} else {
		filter = bson.M{
			"$or": bson.A{
				bson.M{"title": pattern},
				bson.M{"description": pattern},
				bson.M{"tags": pattern},
			},
		}
	}
	if contentType != nil {
		filter["type"] = string(*contentType)
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	return decodeAll(ctx, cur)
}

// EnsureIndexes creates necessary indexes on the content collection.
func (r *ContentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "requires_vip", Value: 1}}},
		{Keys: bson.D{{Key: "title", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func decodeAll(ctx context.Context, cur *mongo.Cursor) ([]domain.Content, error) {
	defer cur.Close(ctx)

	out := []domain.Content{}
	for cur.Next(ctx) {
		var doc contentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
