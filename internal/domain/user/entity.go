package user

import "time"

type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Reference is the compact form of a user embedded in other resources.
type Reference struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func (u User) Reference() Reference {
	return Reference{ID: u.ID, Username: u.Username}
}
