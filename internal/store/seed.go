package store

import "github.com/promptbox/promptbox/internal/domain"

// seedCollection builds the starter dataset written on first run: the
// Favorites system folder, a few example folders, and one example prompt.
func (s *Store) seedCollection() domain.Collection {
	now := s.now()
	emailFolder := domain.Folder{
		ID:    s.folderID(),
		Name:  "Email Templates",
		Color: "#3b82f6",
		Icon:  "📧",
	}
	return domain.Collection{
		Folders: []domain.Folder{
			{
				ID:       domain.FavoritesFolderID,
				Name:     "Favorites",
				Color:    "#f59e0b",
				Icon:     "⭐",
				IsSystem: true,
			},
			emailFolder,
			{
				ID:    s.folderID(),
				Name:  "Social Media",
				Color: "#10b981",
				Icon:  "📱",
			},
			{
				ID:    s.folderID(),
				Name:  "ChatGPT Prompts",
				Color: "#8b5cf6",
				Icon:  "🤖",
			},
		},
		Prompts: []domain.Prompt{
			{
				ID:    s.promptID(),
				Title: "Professional Email Reply",
				Content: "Thank you for your email. I appreciate you reaching out regarding {{subject}}. " +
					"I will review this and get back to you within {{timeframe}}.\n\nBest regards,\n{{name}}",
				FolderID: emailFolder.ID,
				Tags:     []string{"email", "professional", "reply"},
				Variables: []domain.Variable{
					{Name: "subject", DefaultValue: "your inquiry", IsEditable: true},
					{Name: "timeframe", DefaultValue: "24 hours", IsEditable: true},
					{Name: "name", DefaultValue: "Your Name", IsEditable: true},
				},
				Shortcut:  "/email-reply",
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
	}
}
