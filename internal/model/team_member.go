package model

import "time"

// TeamMember is a person shown on the team page. Every member carries an
// image: ImageURL and ImagePublicID are always set together, and the
// public ID is the handle used to delete the remote asset later. It is
// stored separately and never derived from the URL.
type TeamMember struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ImageURL      string    `json:"imageUrl"`
	ImagePublicID string    `json:"imagePublicId"`
	Role          string    `json:"role"`
	Position      string    `json:"position"`
	Team          string    `json:"team"`
	Information   string    `json:"information"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	UploadDate    time.Time `json:"uploadDate"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
