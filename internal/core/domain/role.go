package domain

// Role is the closed set of principal roles. A principal holds exactly one
// role at a time; the string values are the canonical spellings persisted
// going forward.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleTeam       Role = "TEAM"
	RoleConsultant Role = "CONSULTANT"
	RoleClient     Role = "CLIENT"
)

// legacyRoles maps every role spelling observed in persisted data to its
// canonical value. Normalization happens once at the system boundary; the
// rest of the code only ever sees canonical roles.
var legacyRoles = map[string]Role{
	"admin":           RoleAdmin,
	"ADMIN":           RoleAdmin,
	"team":            RoleTeam,
	"TEAM":            RoleTeam,
	"team_member":     RoleTeam,
	"project_manager": RoleTeam,
	"manager":         RoleTeam,
	"consultant":      RoleConsultant,
	"CONSULTANT":      RoleConsultant,
	"contractor":      RoleConsultant,
	"architect":       RoleConsultant,
	"engineer":        RoleConsultant,
	"client":          RoleClient,
	"CLIENT":          RoleClient,
	"viewer":          RoleClient,
}

// NormalizeRole maps a raw role string (possibly a legacy variant) to its
// canonical Role. ok is false for unknown values; callers must fail closed,
// never guess.
func NormalizeRole(raw string) (Role, bool) {
	r, ok := legacyRoles[raw]
	return r, ok
}

// Valid reports whether the role is one of the canonical values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeam, RoleConsultant, RoleClient:
		return true
	}
	return false
}

// IsAdminArea reports whether the role may use the admin area. The two areas
// partition the role set: a role is admin-area or app-area, never both.
// Unknown roles belong to neither (fail closed — the value may come from
// stale persisted data).
func (r Role) IsAdminArea() bool {
	return r == RoleAdmin
}

// IsAppArea reports whether the role may use the app (SPA) area.
func (r Role) IsAppArea() bool {
	switch r {
	case RoleTeam, RoleConsultant, RoleClient:
		return true
	}
	return false
}
