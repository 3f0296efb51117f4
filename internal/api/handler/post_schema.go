package handler

import "time"

// postRequest is shared by create and update. Pointer fields distinguish an
// absent key from a present-but-empty value: on create both title and
// content keys must be present, on update any subset may be.
type postRequest struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	Permissions *string `json:"permissions" validate:"omitempty,oneof=public users unlisted private drafts"`
}

// postResponse mirrors domain.Post for the swagger docs.
type postResponse struct {
	ID          string    `json:"id"`
	Author      string    `json:"author"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Permissions string    `json:"permissions"`
	PublishDate time.Time `json:"publishDate"`
	UpdatedDate time.Time `json:"updatedDate"`
}
