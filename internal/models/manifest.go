package models

import "time"

type Feed struct {
	FeedId      string  `json:"feedId"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Format      string  `json:"format"`
}

type File struct {
	FileId    string     `json:"fileId"`
	Kind      string     `json:"kind"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type ManifestResponse struct {
	Feed  Feed   `json:"feed"`
	Files []File `json:"files"`
}
