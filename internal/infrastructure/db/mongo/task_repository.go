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

const taskCollection = "tasks"

type MongoTaskRepository struct {
	coll *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *MongoTaskRepository {
	return &MongoTaskRepository{coll: db.Collection(taskCollection)}
}

type mongoTask struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	WorkspaceID string             `bson:"workspace_id"`
	ProjectID   string             `bson:"project_id"`
	CreatorID   string             `bson:"creator_id"`
	AssigneeID  string             `bson:"assignee_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (r *MongoTaskRepository) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	doc := mongoTask{
		ID:          primitive.NewObjectID(),
		WorkspaceID: t.WorkspaceID,
		ProjectID:   t.ProjectID,
		CreatorID:   t.CreatorID,
		AssigneeID:  t.AssigneeID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	out := *t
	out.ID = doc.ID.Hex()
	return &out, nil
}

func (r *MongoTaskRepository) FindByID(ctx context.Context, workspaceID, id string) (*domain.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTaskNotFound
	}

	var mt mongoTask
	err = r.coll.FindOne(ctx, bson.M{"_id": oid, "workspace_id": workspaceID}).Decode(&mt)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return toTask(mt), nil
}

func (r *MongoTaskRepository) ListByProject(ctx context.Context, workspaceID, projectID string) ([]*domain.Task, error) {
	cur, err := r.coll.Find(ctx, bson.M{"workspace_id": workspaceID, "project_id": projectID})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Task
	for cur.Next(ctx) {
		var mt mongoTask
		if err := cur.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode task: %w", err)
		}
		out = append(out, toTask(mt))
	}
	return out, cur.Err()
}

// AssigneesByProject returns the distinct non-empty assignee ids across the
// project's tasks.
func (r *MongoTaskRepository) AssigneesByProject(ctx context.Context, workspaceID, projectID string) ([]string, error) {
	raw, err := r.coll.Distinct(ctx, "assignee_id", bson.M{
		"workspace_id": workspaceID,
		"project_id":   projectID,
		"assignee_id":  bson.M{"$nin": bson.A{"", nil}},
	})
	if err != nil {
		return nil, fmt.Errorf("project assignees: %w", err)
	}

	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *MongoTaskRepository) Update(ctx context.Context, t *domain.Task) error {
	oid, err := primitive.ObjectIDFromHex(t.ID)
	if err != nil {
		return domain.ErrTaskNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "workspace_id": t.WorkspaceID},
		bson.M{"$set": bson.M{
			"assignee_id": t.AssigneeID,
			"title":       t.Title,
			"description": t.Description,
			"status":      string(t.Status),
			"updated_at":  t.UpdatedAt,
		}},
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *MongoTaskRepository) Delete(ctx context.Context, workspaceID, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTaskNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "workspace_id": workspaceID})
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func toTask(mt mongoTask) *domain.Task {
	return &domain.Task{
		ID:          mt.ID.Hex(),
		WorkspaceID: mt.WorkspaceID,
		ProjectID:   mt.ProjectID,
		CreatorID:   mt.CreatorID,
		AssigneeID:  mt.AssigneeID,
		Title:       mt.Title,
		Description: mt.Description,
		Status:      domain.TaskStatus(mt.Status),
		CreatedAt:   mt.CreatedAt,
		UpdatedAt:   mt.UpdatedAt,
	}
}
