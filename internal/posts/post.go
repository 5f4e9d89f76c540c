// Copyright (c) 2026 Picstream. All rights reserved.

/*
Package posts implements the content side of the platform: media posts, the
follow-graph feed, likes, and comments.

# Feed Semantics

The feed is assembled per request: the caller's followees are expanded, their
posts flattened into one sequence, and the whole sequence sorted newest-first.
Nothing is paginated or cached — the entire result is materialized per call,
which is a scalability boundary, not a correctness one.
*/
package posts

import "time"

// # Upload Constraints

const (
	// MaxUploadFiles is the maximum number of media files accepted per upload request.
	MaxUploadFiles = 10

	// MaxUploadMemory caps the in-memory portion of multipart parsing (32 MiB);
	// larger bodies spill to temp files.
	MaxUploadMemory = 32 << 20

	// MaxCaptionLength bounds the caption text.
	MaxCaptionLength = 2000
)

// # Domain Entities

// Post is a media post owned by exactly one creator. Posts are created on
// upload and never mutated or deleted here; likes and comments accrete.
type Post struct {
	ID        string    `json:"_id"`
	CreatorID string    `json:"creator"`
	Content   []string  `json:"content"`
	Caption   string    `json:"caption"`
	Likes     []string  `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"timestamp"`
}

// Comment is an immutable remark attached to a post.
type Comment struct {
	ID        string    `json:"_id"`
	PostID    string    `json:"-"`
	AuthorID  string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"timestamp"`
}

// # Field Identifiers

const (
	FieldPostID  = "id"
	FieldCaption = "caption"
	FieldFiles   = "files"
	FieldBody    = "body"
)
