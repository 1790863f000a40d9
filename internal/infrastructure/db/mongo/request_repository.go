package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskdeck/project-system/internal/core/domain"
)

const requestCollection = "requests"

// MongoRequestRepository persists requests with their comments embedded in
// the same document, so comment edits and participant accrual ride the same
// atomic update.
type MongoRequestRepository struct {
	coll *mongo.Collection
}

func NewRequestRepository(db *mongo.Database) *MongoRequestRepository {
	return &MongoRequestRepository{coll: db.Collection(requestCollection)}
}

type mongoComment struct {
	ID        string    `bson:"id"`
	AuthorID  string    `bson:"author_id"`
	Body      string    `bson:"body"`
	CreatedAt time.Time `bson:"created_at"`
}

type mongoRequest struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	WorkspaceID    string             `bson:"workspace_id"`
	CreatorID      string             `bson:"creator_id"`
	AssigneeID     string             `bson:"assignee_id,omitempty"`
	ParticipantIDs []string           `bson:"participant_ids"`
	Title          string             `bson:"title"`
	Body           string             `bson:"body,omitempty"`
	Status         string             `bson:"status"`
	Comments       []mongoComment     `bson:"comments,omitempty"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}

func (r *MongoRequestRepository) Create(ctx context.Context, req *domain.Request) (*domain.Request, error) {
	doc := mongoRequest{
		ID:             primitive.NewObjectID(),
		WorkspaceID:    req.WorkspaceID,
		CreatorID:      req.CreatorID,
		AssigneeID:     req.AssigneeID,
		ParticipantIDs: req.ParticipantIDs,
		Title:          req.Title,
		Body:           req.Body,
		Status:         string(req.Status),
		CreatedAt:      req.CreatedAt,
		UpdatedAt:      req.UpdatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert request: %w", err)
	}

	out := *req
	out.ID = doc.ID.Hex()
	return &out, nil
}

func (r *MongoRequestRepository) FindByID(ctx context.Context, workspaceID, id string) (*domain.Request, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRequestNotFound
	}

	var mr mongoRequest
	err = r.coll.FindOne(ctx, bson.M{"_id": oid, "workspace_id": workspaceID}).Decode(&mr)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("find request: %w", err)
	}
	return toRequest(mr), nil
}

func (r *MongoRequestRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]*domain.Request, error) {
	cur, err := r.coll.Find(ctx, bson.M{"workspace_id": workspaceID})
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Request
	for cur.Next(ctx) {
		var mr mongoRequest
		if err := cur.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode request: %w", err)
		}
		out = append(out, toRequest(mr))
	}
	return out, cur.Err()
}

func (r *MongoRequestRepository) Update(ctx context.Context, req *domain.Request) error {
	oid, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		return domain.ErrRequestNotFound
	}

	comments := make([]mongoComment, 0, len(req.Comments))
	for _, c := range req.Comments {
		comments = append(comments, mongoComment{
			ID:        c.ID,
			AuthorID:  c.AuthorID,
			Body:      c.Body,
			CreatedAt: c.CreatedAt,
		})
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "workspace_id": req.WorkspaceID},
		bson.M{"$set": bson.M{
			"assignee_id":     req.AssigneeID,
			"participant_ids": req.ParticipantIDs,
			"title":           req.Title,
			"body":            req.Body,
			"status":          string(req.Status),
			"comments":        comments,
			"updated_at":      req.UpdatedAt,
		}},
	)
	if err != nil {
		return fmt.Errorf("update request: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (r *MongoRequestRepository) Delete(ctx context.Context, workspaceID, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRequestNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "workspace_id": workspaceID})
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func toRequest(mr mongoRequest) *domain.Request {
	comments := make([]domain.RequestComment, 0, len(mr.Comments))
	for _, c := range mr.Comments {
		comments = append(comments, domain.RequestComment{
			ID:        c.ID,
			AuthorID:  c.AuthorID,
			Body:      c.Body,
			CreatedAt: c.CreatedAt,
		})
	}
	return &domain.Request{
		ID:             mr.ID.Hex(),
		WorkspaceID:    mr.WorkspaceID,
		CreatorID:      mr.CreatorID,
		AssigneeID:     mr.AssigneeID,
		ParticipantIDs: mr.ParticipantIDs,
		Title:          mr.Title,
		Body:           mr.Body,
		Status:         domain.RequestStatus(mr.Status),
		Comments:       comments,
		CreatedAt:      mr.CreatedAt,
		UpdatedAt:      mr.UpdatedAt,
	}
}
