package authz

// Action identifies the operation being authorized. Not every action is
// meaningful for every resource kind; the policy engine denies unknown
// (kind, action) pairs.
type Action string

const (
	ActionView         Action = "view"
	ActionCreate       Action = "create"
	ActionUpdate       Action = "update"
	ActionDelete       Action = "delete"
	ActionAssign       Action = "assign"
	ActionAssignOwner  Action = "assign_owner"
	ActionComment      Action = "comment"
	ActionUpdateStatus Action = "update_status"
)

// Area identifies which half of the role partition a route belongs to.
type Area string

const (
	AreaAdmin Area = "admin"
	AreaApp   Area = "app"
)
