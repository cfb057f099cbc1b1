package model

import "time"

// News is a dated news post. The image is optional: ImageURL and
// ImagePublicID are either both set or both nil.
type News struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	NewsDate      time.Time `json:"newsDate"`
	Content       string    `json:"content"`
	ImageURL      *string   `json:"imageUrl"`
	ImagePublicID *string   `json:"imagePublicId"`
	UploadDate    time.Time `json:"uploadDate"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// HasImage reports whether the post references a remote asset.
func (n *News) HasImage() bool {
	return n.ImagePublicID != nil && *n.ImagePublicID != ""
}
