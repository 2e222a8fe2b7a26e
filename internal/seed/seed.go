// Package seed writes the default directory content into an empty store and
// holds the catalog used by the bulk tool import.
package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"glutools-directory/internal/db"
	"glutools-directory/internal/models"
	"glutools-directory/internal/repository"
)

type Options struct {
	AdminName     string
	AdminEmail    string
	AdminPassword string
	// Hash produces the stored form of AdminPassword.
	Hash func(string) (string, error)
}

// Report lists which collections were written by a run.
type Report struct {
	Subjects bool
	Admins   bool
	Tools    bool
}

var defaultSubjects = []models.Subject{
	{ID: "design", Name: "Design", Description: "General design tools and resources"},
	{ID: "development", Name: "Development", Description: "Web and software development tools"},
	{ID: "marketing", Name: "Marketing", Description: "Digital marketing and advertising tools"},
	{ID: "video", Name: "Video editing/production", Description: "Video creation and editing tools"},
	{ID: "social", Name: "Social media", Description: "Social media management and content creation"},
	{ID: "gameart", Name: "Game art / 3D modeling", Description: "3D modeling and game art creation tools"},
	{ID: "gamedesign", Name: "Game design", Description: "Game development and design tools"},
	{ID: "vr", Name: "VR development", Description: "Virtual reality development tools"},
	{ID: "brand", Name: "Brand design", Description: "Branding and identity design tools"},
	{ID: "content", Name: "Content design", Description: "Content creation and design tools"},
	{ID: "art", Name: "Art design", Description: "Digital art and illustration tools"},
	{ID: "dtp", Name: "Media production (DTP)", Description: "Desktop publishing and media production tools"},
}

var sampleTools = []models.AITool{
	{
		ID:            "1",
		SubjectID:     "design",
		Name:          "Figma AI",
		Description:   "AI-powered design assistant integrated into Figma",
		Advantages:    []string{"Streamlines design workflow", "Generates design variations", "Smart layout suggestions"},
		Disadvantages: []string{"Requires Figma subscription", "Limited to Figma ecosystem"},
		LinkURL:       "https://www.figma.com/",
	},
	{
		ID:            "2",
		SubjectID:     "development",
		Name:          "GitHub Copilot",
		Description:   "AI pair programmer that helps write code faster",
		Advantages:    []string{"Code completion", "Supports multiple languages", "Learns from context"},
		Disadvantages: []string{"Subscription required", "May generate incorrect code"},
		LinkURL:       "https://github.com/features/copilot",
	},
	{
		ID:            "3",
		SubjectID:     "marketing",
		Name:          "ChatGPT",
		Description:   "AI assistant for content creation and marketing copy",
		Advantages:    []string{"Versatile content generation", "Multiple languages", "Creative writing"},
		Disadvantages: []string{"May lack brand consistency", "Requires fact-checking"},
		LinkURL:       "https://chat.openai.com/",
	},
}

func DefaultSubjects() []models.Subject {
	return append([]models.Subject(nil), defaultSubjects...)
}

func SampleTools() []models.AITool {
	return append([]models.AITool(nil), sampleTools...)
}

// Run writes subjects, the super-admin and the sample tools for every key
// that is not in the store yet. Keys that already exist are left alone, so
// running it again is a no-op.
func Run(ctx context.Context, store db.KeyValueStore, opts Options) (Report, error) {
	var report Report

	wrote, err := writeIfAbsent(ctx, repository.NewSubjects(store).Collection, func() ([]models.Subject, error) {
		return DefaultSubjects(), nil
	})
	if err != nil {
		return report, err
	}
	if wrote {
		log.Printf("Initialized default subjects")
	}
	report.Subjects = wrote

	// The password is only hashed when the admins key is missing.
	var admin models.Admin
	wrote, err = writeIfAbsent(ctx, repository.NewAdmins(store, opts.Hash).Collection, func() ([]models.Admin, error) {
		a, err := superAdmin(opts)
		admin = a
		return []models.Admin{a}, err
	})
	if err != nil {
		return report, err
	}
	if wrote {
		log.Printf("Initialized default admin account %s", admin.Email)
	}
	report.Admins = wrote

	wrote, err = writeIfAbsent(ctx, repository.NewTools(store).Collection, func() ([]models.AITool, error) {
		return SampleTools(), nil
	})
	if err != nil {
		return report, err
	}
	if wrote {
		log.Printf("Initialized sample AI tools")
	}
	report.Tools = wrote

	return report, nil
}

// writeIfAbsent stores the records built by items when the collection key is
// missing. items is not called otherwise.
func writeIfAbsent[T repository.Keyed](ctx context.Context, c *repository.Collection[T], items func() ([]T, error)) (bool, error) {
	present, err := c.Exists(ctx)
	if err != nil {
		return false, err
	}
	if present {
		return false, nil
	}

	records, err := items()
	if err != nil {
		return false, err
	}
	if err := c.Save(ctx, records); err != nil {
		return false, fmt.Errorf("seed: %w", err)
	}
	return true, nil
}

func superAdmin(opts Options) (models.Admin, error) {
	name := opts.AdminName
	if name == "" {
		name = "GLU Admin"
	}
	email := opts.AdminEmail
	if email == "" {
		email = "admin@glutools.com"
	}
	password := opts.AdminPassword
	if password == "" {
		password = "admin123"
	}

	if opts.Hash != nil {
		hashed, err := opts.Hash(password)
		if err != nil {
			return models.Admin{}, fmt.Errorf("hash seed admin password: %w", err)
		}
		password = hashed
	}

	return models.Admin{
		ID:           "1",
		Name:         name,
		Email:        email,
		Password:     password,
		CreatedAt:    time.Now().UTC(),
		IsSuperAdmin: true,
	}, nil
}
