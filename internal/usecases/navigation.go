package usecases

import "tradedesk.backend/internal/domain/entities"

// Navigation builds the sidebar: the dashboard, one entry per scene, then the assistant.
func Navigation(scenes []entities.Scene) []entities.NavItem {
	items := make([]entities.NavItem, 0, len(scenes)+2)
	items = append(items, entities.NavItem{Key: DashboardScene, Title: "Dashboard", Path: "/api/v1/dashboard", Group: "overview"})
	for _, s := range scenes {
		group := "manage"
		if s.Key == SceneDailyPaidDemo || s.Key == SceneRecentActivity {
			group = "reports"
		}
		items = append(items, entities.NavItem{Key: s.Key, Title: s.Title, Path: "/api/v1/scenes/" + s.Key, Group: group})
	}
	items = append(items, entities.NavItem{Key: "assistant", Title: "AI Assistant", Path: "/api/v1/assistant/messages", Group: "tools"})
	return items
}
