package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskdeck/project-system/internal/core/domain"
)

const workspaceCollection = "workspaces"

// MongoWorkspaceRepository persists workspaces and the membership relation.
// It doubles as the gate's membership store: IsMember answers from the
// workspace document (membership array or ownership), with a nonexistent
// workspace vacuously false.
type MongoWorkspaceRepository struct {
	coll *mongo.Collection
}

func NewWorkspaceRepository(db *mongo.Database) *MongoWorkspaceRepository {
	return &MongoWorkspaceRepository{coll: db.Collection(workspaceCollection)}
}

type mongoWorkspace struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	OwnerID   string             `bson:"owner_id"`
	MemberIDs []string           `bson:"member_ids"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

func (r *MongoWorkspaceRepository) Create(ctx context.Context, ws *domain.Workspace) (*domain.Workspace, error) {
	doc := mongoWorkspace{
		ID:        primitive.NewObjectID(),
		Name:      ws.Name,
		OwnerID:   ws.OwnerID,
		MemberIDs: []string{},
		CreatedAt: ws.CreatedAt.Unix(),
		UpdatedAt: ws.UpdatedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert workspace: %w", err)
	}

	out := *ws
	out.ID = doc.ID.Hex()
	out.MemberIDs = []string{}
	return &out, nil
}

func (r *MongoWorkspaceRepository) FindByID(ctx context.Context, id string) (*domain.Workspace, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrWorkspaceNotFound
	}

	var mw mongoWorkspace
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mw); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("find workspace: %w", err)
	}
	return toWorkspace(mw), nil
}

func (r *MongoWorkspaceRepository) List(ctx context.Context) ([]*domain.Workspace, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Workspace
	for cur.Next(ctx) {
		var mw mongoWorkspace
		if err := cur.Decode(&mw); err != nil {
			return nil, fmt.Errorf("decode workspace: %w", err)
		}
		out = append(out, toWorkspace(mw))
	}
	return out, cur.Err()
}

func (r *MongoWorkspaceRepository) AttachMember(ctx context.Context, workspaceID, userID string) error {
	oid, err := primitive.ObjectIDFromHex(workspaceID)
	if err != nil {
		return domain.ErrWorkspaceNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$addToSet": bson.M{"member_ids": userID}},
	)
	if err != nil {
		return fmt.Errorf("attach member: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrWorkspaceNotFound
	}
	return nil
}

func (r *MongoWorkspaceRepository) DetachMember(ctx context.Context, workspaceID, userID string) error {
	oid, err := primitive.ObjectIDFromHex(workspaceID)
	if err != nil {
		return domain.ErrWorkspaceNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$pull": bson.M{"member_ids": userID}},
	)
	if err != nil {
		return fmt.Errorf("detach member: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrWorkspaceNotFound
	}
	return nil
}

// IsMember implements authz.MembershipStore.
func (r *MongoWorkspaceRepository) IsMember(ctx context.Context, userID, workspaceID string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(workspaceID)
	if err != nil {
		return false, nil
	}

	filter := bson.M{
		"_id": oid,
		"$or": []bson.M{
			{"owner_id": userID},
			{"member_ids": userID},
		},
	}
	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("membership lookup: %w", err)
	}
	return n > 0, nil
}

func toWorkspace(mw mongoWorkspace) *domain.Workspace {
	return &domain.Workspace{
		ID:        mw.ID.Hex(),
		Name:      mw.Name,
		OwnerID:   mw.OwnerID,
		MemberIDs: mw.MemberIDs,
		CreatedAt: unixToTime(mw.CreatedAt),
		UpdatedAt: unixToTime(mw.UpdatedAt),
	}
}
