package domain

// GroupRole distinguishes admins from plain members.
type GroupRole string

const (
	GroupRoleAdmin  GroupRole = "admin"
	GroupRoleMember GroupRole = "member"
)

// GroupPrivacy controls group discoverability.
type GroupPrivacy string

const (
	GroupPublic  GroupPrivacy = "public"
	GroupPrivate GroupPrivacy = "private"
)

// GroupMember records one membership with its role.
type GroupMember struct {
	UserID string
	Role   GroupRole
}

// Group is one community with a member roster.
type Group struct {
	ID          string
	Name        string
	Description string
	CoverURL    string
	Privacy     GroupPrivacy
	Members     []GroupMember
}

// Clone returns a deep copy of the group and its member roster.
func (g Group) Clone() Group {
	clone := g
	clone.Members = append([]GroupMember(nil), g.Members...)
	return clone
}

// HasMember reports whether userID already belongs to the group.
func (g Group) HasMember(userID string) bool {
	for _, member := range g.Members {
		if member.UserID == userID {
			return true
		}
	}
	return false
}
