package state

// Capability is an action that may be gated on the session role.
type Capability int

const (
	CapCreateEnvironment Capability = iota
	CapDeleteEnvironment
	CapCycleStatus
	CapCreatePost
	CapDeletePost
	CapAddComment
	CapDeleteComment
)

func (c Capability) String() string {
	switch c {
	case CapCreateEnvironment:
		return "create environment"
	case CapDeleteEnvironment:
		return "delete environment"
	case CapCycleStatus:
		return "change status"
	case CapCreatePost:
		return "create post"
	case CapDeletePost:
		return "delete post"
	case CapAddComment:
		return "add comment"
	case CapDeleteComment:
		return "delete comment"
	default:
		return "unknown"
	}
}

// adminOnly reports whether c requires the ADMIN role.
func (c Capability) adminOnly() bool {
	switch c {
	case CapCreateEnvironment, CapDeleteEnvironment, CapCycleStatus, CapDeletePost, CapDeleteComment:
		return true
	default:
		return false
	}
}

// Can is the single role check consulted by views and handlers.
func (s Session) Can(c Capability) bool {
	if !s.LoggedIn {
		return false
	}
	if c.adminOnly() {
		return s.IsAdmin()
	}
	return true
}
