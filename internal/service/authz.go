package service

import "stackwiser/internal/models"

// hasRole reports whether the user holds one of the given roles.
func hasRole(user *models.User, roles ...string) bool {
	for _, role := range roles {
		if user.Role == role {
			return true
		}
	}
	return false
}

// canMutate reports whether the requester owns the resource authored by authorID.
func canMutate(requesterID, authorID uint) bool {
	return requesterID == authorID
}
