package models

import "time"

type Review struct {
	ID           string    `json:"id"`
	ToolID       string    `json:"tool_id"`
	AuthorName   string    `json:"author_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
	HelpfulCount int       `json:"helpful_count"`
}

func (r Review) Key() string { return r.ID }

// Upload holds metadata for a student-submitted file. The bytes themselves
// are not kept; FileURL points at a placeholder image.
type Upload struct {
	ID         string    `json:"id"`
	ToolID     string    `json:"tool_id"`
	FileName   string    `json:"file_name"`
	FileURL    string    `json:"file_url"`
	FileType   string    `json:"file_type"`
	FileSize   int64     `json:"file_size"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

func (u Upload) Key() string { return u.ID }

type ContactSubmission struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}

func (c ContactSubmission) Key() string { return c.ID }
