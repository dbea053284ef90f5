package utils

import (
	"slices"

	"github.com/devmaikelrm/BotModerno-sub000/config"
)

// CheckAuth reports whether a user may perform moderation actions.
func CheckAuth(userID string, roles []string) bool {
	authConfig := config.Cfg.Commands.Auth

	if slices.Contains(authConfig.Developers, userID) {
		return true
	}

	for _, role := range roles {
		if slices.Contains(authConfig.AdminsRoles, role) {
			return true
		}
	}

	return false
}
