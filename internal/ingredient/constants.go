package ingredient

// ============================================================================
// Log Messages
// ============================================================================

// Log operation identifiers
const (
	LogMsgCreateIngredientCalled = "CreateIngredient called"
	LogMsgUpdateIngredientCalled = "UpdateIngredient called"
	LogMsgDeleteIngredientCalled = "DeleteIngredient called"
)

// Warning/Info messages
const (
	LogMsgIngredientCreated = "Ingredient created"
	LogMsgIngredientUpdated = "Ingredient updated"
	LogMsgIngredientDeleted = "Ingredient deleted"
	LogMsgLowStockDetected  = "Ingredient crossed its low stock threshold"
)

// ============================================================================
// Error Messages (local to ingredient service)
// ============================================================================

// Error context messages for wrapped errors
const (
	ErrContextFailedToCreateIngredient = "failed to create ingredient"
	ErrContextFailedToUpdateIngredient = "failed to update ingredient"
	ErrContextFailedToDeleteIngredient = "failed to delete ingredient"
	ErrContextFailedToGetIngredient    = "failed to get ingredient"
	ErrContextFailedToListIngredients  = "failed to list ingredients"
)

// Validation error messages
const (
	ErrMsgNameRequired      = "ingredient name is required"
	ErrMsgNegativeQuantity  = "quantity must not be negative"
	ErrMsgNegativeThreshold = "threshold must not be negative"
)
