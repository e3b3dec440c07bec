package types

// ContactInfo holds the reachable identity of a lead.
type ContactInfo struct {
	Name        string               `json:"name"`
	Phone       *string              `json:"phone,omitempty"`
	Email       *string              `json:"email,omitempty"`
	SocialMedia []SocialMediaContact `json:"social_media,omitempty"`
	Address     *string              `json:"address,omitempty"`
}

// SocialMediaContact is a single social handle attached to a contact.
type SocialMediaContact struct {
	Platform string  `json:"platform"`
	Username string  `json:"username"`
	URL      *string `json:"url,omitempty"`
}
