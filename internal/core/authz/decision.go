// Package authz is the authorization core: the area & scope gate and the
// per-resource policy engine. Everything in it is a pure function of its
// inputs — no I/O, no mutation, no ambient request state. Callers resolve
// the principal and the resource first (a missing resource is their 404,
// not a policy concern) and translate the returned Decision into a
// transport response.
package authz

// Reason classifies a Decision for callers and audit trails.
type Reason string

const (
	ReasonAllowed          Reason = "allowed"
	ReasonUnauthenticated  Reason = "unauthenticated"
	ReasonWrongArea        Reason = "wrong_area"
	ReasonMissingWorkspace Reason = "missing_workspace"
	ReasonNotAMember       Reason = "not_a_member"
	ReasonPolicyDenied     Reason = "policy_denied"
)

// Decision is the sole output of the core: an allow/deny verdict plus the
// reason that produced it.
type Decision struct {
	Allow  bool   `json:"allow"`
	Reason Reason `json:"reason"`
}

func allow() Decision {
	return Decision{Allow: true, Reason: ReasonAllowed}
}

func deny(reason Reason) Decision {
	return Decision{Allow: false, Reason: reason}
}
