package shopping

import (
	"github.com/pantryline/pantryline/internal/domain"
	"github.com/pantryline/pantryline/internal/specification"
)

// Session guard rules expressed as composable specifications. Each command
// evaluates its guards one at a time so every failure maps to a distinct
// domain sentinel rather than a generic "rule violated".

// SessionIsActive is satisfied when the session is still accepting commands.
func SessionIsActive() specification.Specification[*domain.ShoppingSession] {
	return specification.Func[*domain.ShoppingSession](func(s *domain.ShoppingSession) bool {
		return s.IsActive()
	})
}

// SessionOwnedBy is satisfied when the session belongs to the given user.
func SessionOwnedBy(userID domain.UserID) specification.Specification[*domain.ShoppingSession] {
	return specification.Func[*domain.ShoppingSession](func(s *domain.ShoppingSession) bool {
		return s.IsOwnedBy(userID)
	})
}

// IngredientNotYetChecked is satisfied when the ingredient has not already
// been checked off in the session.
func IngredientNotYetChecked(ingredientID domain.IngredientID) specification.Specification[*domain.ShoppingSession] {
	return specification.Func[*domain.ShoppingSession](func(s *domain.ShoppingSession) bool {
		return !s.HasChecked(ingredientID)
	})
}

// CanCheckIngredient is the composite guard for the check command: the
// session must be active, owned by the requester, and must not already
// contain the ingredient.
func CanCheckIngredient(userID domain.UserID, ingredientID domain.IngredientID) specification.Specification[*domain.ShoppingSession] {
	return SessionIsActive().
		And(SessionOwnedBy(userID)).
		And(IngredientNotYetChecked(ingredientID))
}
