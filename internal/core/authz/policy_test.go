package authz

import (
	"testing"

	"github.com/taskdeck/project-system/internal/core/domain"
)

func principal(id string, role domain.Role, workspaces ...string) *domain.Principal {
	return domain.NewPrincipal(id, role, workspaces)
}

func TestAuthorize_AdminSuperuser(t *testing.T) {
	admin := principal("adm", domain.RoleAdmin)

	resources := map[string]struct {
		res     Resource
		actions []Action
	}{
		"project": {ProjectView{OwnerID: "someone"}, []Action{ActionView, ActionCreate, ActionUpdate, ActionDelete, ActionAssignOwner}},
		"task":    {TaskView{Project: ProjectView{OwnerID: "someone"}, AssigneeID: "other"}, []Action{ActionView, ActionCreate, ActionUpdate, ActionDelete, ActionAssign}},
		"request": {RequestView{CreatorID: "someone", AssigneeID: "other"}, []Action{ActionView, ActionUpdate, ActionComment, ActionAssign, ActionDelete, ActionUpdateStatus}},
		"comment": {CommentView{Request: RequestView{CreatorID: "someone"}, AuthorID: "other"}, []Action{ActionView, ActionCreate, ActionDelete}},
	}

	for name, tc := range resources {
		for _, action := range tc.actions {
			if d := Authorize(admin, action, tc.res); !d.Allow {
				t.Errorf("%s/%s: admin denied (reason %s)", name, action, d.Reason)
			}
		}
	}
}

func TestAuthorize_NilPrincipal(t *testing.T) {
	d := Authorize(nil, ActionView, ProjectView{OwnerID: "a"})
	if d.Allow {
		t.Fatal("nil principal allowed")
	}
	if d.Reason != ReasonUnauthenticated {
		t.Fatalf("expected unauthenticated, got %s", d.Reason)
	}
}

func TestAuthorize_Project(t *testing.T) {
	proj := ProjectView{OwnerID: "owner", TaskAssigneeIDs: []string{"worker"}}

	tests := []struct {
		name   string
		p      *domain.Principal
		action Action
		want   bool
	}{
		{"owner views", principal("owner", domain.RoleClient), ActionView, true},
		{"task assignee views", principal("worker", domain.RoleConsultant), ActionView, true},
		{"team views without any tie", principal("mgr", domain.RoleTeam), ActionView, true},
		{"stranger denied view", principal("x", domain.RoleClient), ActionView, false},
		{"team creates", principal("mgr", domain.RoleTeam), ActionCreate, true},
		{"client cannot create", principal("x", domain.RoleClient), ActionCreate, false},
		{"consultant cannot create", principal("x", domain.RoleConsultant), ActionCreate, false},
		{"owner updates", principal("owner", domain.RoleClient), ActionUpdate, true},
		{"task assignee cannot update", principal("worker", domain.RoleConsultant), ActionUpdate, false},
		{"team cannot update others project", principal("mgr", domain.RoleTeam), ActionUpdate, false},
		{"owner deletes", principal("owner", domain.RoleClient), ActionDelete, true},
		{"task assignee cannot delete", principal("worker", domain.RoleConsultant), ActionDelete, false},
		{"owner hands over ownership", principal("owner", domain.RoleClient), ActionAssignOwner, true},
		{"team cannot hand over ownership", principal("mgr", domain.RoleTeam), ActionAssignOwner, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := Authorize(tc.p, tc.action, proj)
			if d.Allow != tc.want {
				t.Fatalf("got allow=%v reason=%s, want allow=%v", d.Allow, d.Reason, tc.want)
			}
		})
	}
}

func TestAuthorize_Task(t *testing.T) {
	task := TaskView{
		Project:    ProjectView{OwnerID: "owner"},
		AssigneeID: "assignee",
	}

	tests := []struct {
		name   string
		p      *domain.Principal
		action Action
		want   bool
	}{
		{"assignee views", principal("assignee", domain.RoleConsultant), ActionView, true},
		{"project owner views", principal("owner", domain.RoleClient), ActionView, true},
		{"team views via project visibility", principal("mgr", domain.RoleTeam), ActionView, true},
		{"stranger denied view", principal("x", domain.RoleClient), ActionView, false},
		{"team creates", principal("mgr", domain.RoleTeam), ActionCreate, true},
		{"client cannot create", principal("x", domain.RoleClient), ActionCreate, false},
		{"project owner updates", principal("owner", domain.RoleClient), ActionUpdate, true},
		{"assignee updates", principal("assignee", domain.RoleConsultant), ActionUpdate, true},
		{"stranger cannot update", principal("x", domain.RoleClient), ActionUpdate, false},
		{"project owner deletes", principal("owner", domain.RoleClient), ActionDelete, true},
		{"assignee cannot delete", principal("assignee", domain.RoleConsultant), ActionDelete, false},
		{"project owner assigns", principal("owner", domain.RoleClient), ActionAssign, true},
		{"team assigns", principal("mgr", domain.RoleTeam), ActionAssign, true},
		{"assignee cannot reassign own task", principal("assignee", domain.RoleConsultant), ActionAssign, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := Authorize(tc.p, tc.action, task)
			if d.Allow != tc.want {
				t.Fatalf("got allow=%v reason=%s, want allow=%v", d.Allow, d.Reason, tc.want)
			}
		})
	}
}

func TestAuthorize_Request(t *testing.T) {
	req := RequestView{
		CreatorID:      "creator",
		AssigneeID:     "assignee",
		ParticipantIDs: []string{"creator", "assignee", "watcher"},
	}

	tests := []struct {
		name   string
		p      *domain.Principal
		action Action
		want   bool
	}{
		{"creator views", principal("creator", domain.RoleClient), ActionView, true},
		{"assignee views", principal("assignee", domain.RoleConsultant), ActionView, true},
		{"participant views", principal("watcher", domain.RoleClient), ActionView, true},
		{"unrelated client denied view", principal("x", domain.RoleClient), ActionView, false},
		{"team denied view without participation", principal("mgr", domain.RoleTeam), ActionView, false},
		{"creator updates", principal("creator", domain.RoleClient), ActionUpdate, true},
		{"assignee updates", principal("assignee", domain.RoleConsultant), ActionUpdate, true},
		{"participant cannot update", principal("watcher", domain.RoleClient), ActionUpdate, false},
		{"creator comments", principal("creator", domain.RoleClient), ActionComment, true},
		{"participant comments", principal("watcher", domain.RoleClient), ActionComment, true},
		{"stranger cannot comment", principal("x", domain.RoleClient), ActionComment, false},
		{"creator assigns", principal("creator", domain.RoleClient), ActionAssign, true},
		{"assignee cannot reassign itself", principal("assignee", domain.RoleConsultant), ActionAssign, false},
		{"participant cannot assign", principal("watcher", domain.RoleClient), ActionAssign, false},
		{"creator updates status", principal("creator", domain.RoleClient), ActionUpdateStatus, true},
		{"assignee updates status", principal("assignee", domain.RoleConsultant), ActionUpdateStatus, true},
		{"team updates status without participation", principal("mgr", domain.RoleTeam), ActionUpdateStatus, true},
		{"unrelated client cannot update status", principal("x", domain.RoleClient), ActionUpdateStatus, false},
		{"creator deletes", principal("creator", domain.RoleClient), ActionDelete, true},
		{"assignee cannot delete", principal("assignee", domain.RoleConsultant), ActionDelete, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := Authorize(tc.p, tc.action, req)
			if d.Allow != tc.want {
				t.Fatalf("got allow=%v reason=%s, want allow=%v", d.Allow, d.Reason, tc.want)
			}
		})
	}
}

// The assignee can update a request it is assigned to but cannot delete it,
// while the creator can do both. The asymmetry is intentional policy.
func TestAuthorize_RequestUpdateDeleteAsymmetry(t *testing.T) {
	req := RequestView{CreatorID: "a", AssigneeID: "b", ParticipantIDs: []string{"a", "b"}}

	creator := principal("a", domain.RoleClient)
	assignee := principal("b", domain.RoleClient)

	if d := Authorize(assignee, ActionUpdate, req); !d.Allow {
		t.Fatalf("assignee update denied: %s", d.Reason)
	}
	if d := Authorize(assignee, ActionDelete, req); d.Allow {
		t.Fatal("assignee delete allowed")
	}
	if d := Authorize(creator, ActionUpdate, req); !d.Allow {
		t.Fatalf("creator update denied: %s", d.Reason)
	}
	if d := Authorize(creator, ActionDelete, req); !d.Allow {
		t.Fatalf("creator delete denied: %s", d.Reason)
	}
}

func TestAuthorize_Comment(t *testing.T) {
	parent := RequestView{
		CreatorID:      "creator",
		AssigneeID:     "assignee",
		ParticipantIDs: []string{"creator", "assignee", "watcher"},
	}
	comment := CommentView{Request: parent, AuthorID: "watcher"}

	tests := []struct {
		name   string
		p      *domain.Principal
		action Action
		want   bool
	}{
		{"participant views", principal("watcher", domain.RoleClient), ActionView, true},
		{"stranger denied view", principal("x", domain.RoleClient), ActionView, false},
		{"participant creates", principal("assignee", domain.RoleConsultant), ActionCreate, true},
		{"stranger cannot create", principal("x", domain.RoleClient), ActionCreate, false},
		{"author deletes own comment", principal("watcher", domain.RoleClient), ActionDelete, true},
		{"non-author cannot delete", principal("creator", domain.RoleClient), ActionDelete, false},
		{"admin deletes any comment", principal("adm", domain.RoleAdmin), ActionDelete, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := Authorize(tc.p, tc.action, comment)
			if d.Allow != tc.want {
				t.Fatalf("got allow=%v reason=%s, want allow=%v", d.Allow, d.Reason, tc.want)
			}
		})
	}
}

// Scenario from the product rules: a client-created request is visible to
// its creator and invisible to an unrelated client.
func TestAuthorize_RequestVisibilityScenario(t *testing.T) {
	req := RequestView{CreatorID: "a", ParticipantIDs: []string{"a"}}

	if d := Authorize(principal("a", domain.RoleClient), ActionView, req); !d.Allow {
		t.Fatalf("creator denied: %s", d.Reason)
	}
	if d := Authorize(principal("b", domain.RoleClient), ActionView, req); d.Allow {
		t.Fatal("unrelated client allowed")
	}
}

func TestAuthorize_UnknownActionDenied(t *testing.T) {
	p := principal("owner", domain.RoleTeam)
	if d := Authorize(p, Action("export"), ProjectView{OwnerID: "owner"}); d.Allow {
		t.Fatal("unknown action allowed")
	}
	if d := Authorize(p, ActionComment, ProjectView{OwnerID: "owner"}); d.Allow {
		t.Fatal("comment on a project allowed")
	}
}
