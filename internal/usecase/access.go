package usecase

import "github.com/google/uuid"

// CanAccess is the ownership predicate: a principal may only touch resources
// it owns. No roles, no delegation. Repositories additionally scope every
// query by owner so this can never be the only line of defense.
func CanAccess(principalID, resourceOwnerID uuid.UUID) bool {
	return principalID != uuid.Nil && principalID == resourceOwnerID
}
