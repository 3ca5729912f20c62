package domain

// UserInfo holds the free-form profile facts shown on the about panel.
type UserInfo struct {
	Work      string
	Education string
	Location  string
	Contact   string
}

// User is the canonical record for one account.
type User struct {
	ID             string
	Name           string
	AvatarURL      string
	CoverURL       string
	Bio            string
	Info           UserInfo
	Settings       UserSettings
	FriendIDs      []string
	BlockedUserIDs []string
	Photos         []string
	// PasswordHash is the bcrypt hash of the account credential. Empty on
	// denormalized snapshots fetched from the remote service.
	PasswordHash string
	IsActive     bool
	IsVerified   bool
}

// Clone returns a deep copy of the user. Slices are copied so mutations on
// the clone never alias the original.
func (u User) Clone() User {
	clone := u
	clone.FriendIDs = append([]string(nil), u.FriendIDs...)
	clone.BlockedUserIDs = append([]string(nil), u.BlockedUserIDs...)
	clone.Photos = append([]string(nil), u.Photos...)
	return clone
}

// HasFriend reports whether id is in the user's friend list.
func (u User) HasFriend(id string) bool {
	for _, friendID := range u.FriendIDs {
		if friendID == id {
			return true
		}
	}
	return false
}

// HasBlocked reports whether id is in the user's blocked list.
func (u User) HasBlocked(id string) bool {
	for _, blockedID := range u.BlockedUserIDs {
		if blockedID == id {
			return true
		}
	}
	return false
}
