package models

import "time"

// DefaultUserID is the owner of every favorite when the caller names no user.
const DefaultUserID = "default-user"

// College represents a listed college
type College struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Course   string `json:"course"`
	Fee      int64  `json:"fee"`
}

// Clone returns a copy of the college
func (c *College) Clone() *College {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

// Review is a user review. CollegeName is free text and is never checked against colleges.
type Review struct {
	ID          string    `json:"_id"`
	CollegeName string    `json:"collegeName"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Favorite links a user to a college. College is filled in when the favorite is joined.
type Favorite struct {
	ID        string
	CollegeID string
	UserID    string
	College   *College
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a deep copy of the favorite
func (f *Favorite) Clone() *Favorite {
	if f == nil {
		return nil
	}
	cp := *f
	cp.College = f.College.Clone()
	return &cp
}
