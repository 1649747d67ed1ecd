// Package models contains data structures for the application's domain models.
package models

import "time"

// Profile is the portfolio owner record. The application keeps at most one
// row; writes go through an upsert and the row is never deleted via the API.
type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Education string    `json:"education,omitempty"`
	Github    string    `json:"github,omitempty"`
	Linkedin  string    `json:"linkedin,omitempty"`
	Portfolio string    `json:"portfolio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileUpdate is an explicit partial update: only non-nil fields are
// merged into the stored profile. Absent JSON keys stay nil and untouched.
type ProfileUpdate struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Education *string `json:"education"`
	Github    *string `json:"github"`
	Linkedin  *string `json:"linkedin"`
	Portfolio *string `json:"portfolio"`
}

// Apply merges the supplied fields into p.
func (u *ProfileUpdate) Apply(p *Profile) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.Education != nil {
		p.Education = *u.Education
	}
	if u.Github != nil {
		p.Github = *u.Github
	}
	if u.Linkedin != nil {
		p.Linkedin = *u.Linkedin
	}
	if u.Portfolio != nil {
		p.Portfolio = *u.Portfolio
	}
}
