package authz

// Resource views carry exactly the ownership/participation facts the policy
// engine needs — owner, assignee, participants — resolved by the caller
// from the persistence layer before the check. The Resource interface is a
// sealed tagged union: Authorize dispatches on the concrete type.

// Resource is implemented by the four view types below and nothing else.
type Resource interface {
	kind() string
}

// ProjectView is the authorization-relevant slice of a project.
// TaskAssigneeIDs is the set of assignees across the project's tasks; a
// principal assigned to any task in a project may view the project.
type ProjectView struct {
	OwnerID         string
	TaskAssigneeIDs []string
}

func (ProjectView) kind() string { return "project" }

func (v ProjectView) hasTaskAssignee(userID string) bool {
	for _, id := range v.TaskAssigneeIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// TaskView is the authorization-relevant slice of a task, including its
// parent project (task visibility derives from project visibility).
type TaskView struct {
	Project    ProjectView
	AssigneeID string
}

func (TaskView) kind() string { return "task" }

// RequestView is the authorization-relevant slice of a request.
type RequestView struct {
	CreatorID      string
	AssigneeID     string
	ParticipantIDs []string
}

func (RequestView) kind() string { return "request" }

func (v RequestView) hasParticipant(userID string) bool {
	for _, id := range v.ParticipantIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// CommentView is the authorization-relevant slice of a request comment,
// including its parent request (comment rules delegate to it).
type CommentView struct {
	Request  RequestView
	AuthorID string
}

func (CommentView) kind() string { return "comment" }
