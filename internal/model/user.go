// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — similar to classes in other languages,
// but without inheritance. Go favours composition over inheritance.
package model

// User represents a registered account.
//
// The ID is an opaque, creation-time-ordered string (xid) generated at
// registration. Email is the login identifier and must be unique across all
// users at registration time; the comparison is exact-match (case-sensitive).
//
// PasswordHash is a bcrypt hash — self-describing, it embeds its own salt
// and cost. The JSON tag exists because the users store persists this struct
// verbatim; handlers must never serialize a full User to a client. They
// return Profile (below), which has no hash field.
//
// Favorites is the user's favorite-story set, stored as a slice: insertion
// order is preserved but irrelevant, and membership is unique. The
// FavoriteService enforces the no-duplicates invariant on every insert.
type User struct {
	ID           string   `json:"id"`
	Fullname     string   `json:"fullname"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"passwordHash"`
	PhoneNumber  string   `json:"phoneNumber"`
	Favorites    []string `json:"favorites"`
}

// Profile is the client-visible projection of a User — no ID, no hash.
// Returned by GET /api/profile and echoed back by PUT /api/profile.
type Profile struct {
	Fullname    string `json:"fullname"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// Profile returns the client-visible projection of the user.
func (u *User) Profile() Profile {
	return Profile{
		Fullname:    u.Fullname,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
	}
}

// HasFavorite reports whether storyID is in the user's favorite set.
// Matching is exact-string — no trimming, no case folding.
func (u *User) HasFavorite(storyID string) bool {
	for _, id := range u.Favorites {
		if id == storyID {
			return true
		}
	}
	return false
}
