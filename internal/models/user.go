package models

// User is a tracked account together with its exercise log. The log is
// append-only: entries are never edited or removed once recorded.
type User struct {
	ID       string     `json:"_id"`
	Username string     `json:"username"`
	Log      []Exercise `json:"log"`
}

// UserRef is the public identity projection returned by the list and
// create endpoints.
type UserRef struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

func (u User) Ref() UserRef { return UserRef{ID: u.ID, Username: u.Username} }
