package policy

// Role is the actor's role vocabulary the engine evaluates against. It
// mirrors the profile role strings; callers convert at the boundary.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
)

// Action is what an actor wants to do with a resource.
type Action string

const (
	ActionRead  Action = "read"
	ActionWrite Action = "write"
)

// ResourceKind identifies the row type a policy decision applies to.
type ResourceKind string

const (
	ResourceProfile    ResourceKind = "profile"
	ResourceAttendance ResourceKind = "attendance"
)

// Actor is the authenticated identity a decision is evaluated for. It is
// threaded explicitly through every service call; nothing in the engine reads
// an ambient session.
type Actor struct {
	ProfileID string
	Role      Role
}

// Resource is the row a decision applies to. OwnerID is the profile the row
// belongs to.
type Resource struct {
	Kind    ResourceKind
	OwnerID string
}

// Allow evaluates the access rules:
//   - an actor may always read and write its own rows,
//   - a manager may additionally read (never write) everyone's rows.
func Allow(actor Actor, res Resource, action Action) bool {
	if actor.ProfileID != "" && actor.ProfileID == res.OwnerID {
		return true
	}
	if actor.Role == RoleManager && action == ActionRead {
		return true
	}
	return false
}
