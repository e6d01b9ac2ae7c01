package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Session Operations
const (
	ErrMsgFailedToSaveSession     = "failed to save session"
	ErrMsgFailedToGetSession      = "failed to get session"
	ErrMsgFailedToListSessions    = "failed to list sessions"
	ErrMsgFailedToSaveItems       = "failed to save checked items"
	ErrMsgFailedToLoadItems       = "failed to load checked items"
	ErrMsgFailedToBeginSessionTx  = "failed to begin session transaction"
	ErrMsgFailedToCommitSessionTx = "failed to commit session transaction"
)

// Error Messages - Ingredient Operations
const (
	ErrMsgFailedToCreateIngredient = "failed to create ingredient"
	ErrMsgFailedToUpdateIngredient = "failed to update ingredient"
	ErrMsgFailedToDeleteIngredient = "failed to delete ingredient"
	ErrMsgFailedToGetIngredient    = "failed to get ingredient"
	ErrMsgFailedToListIngredients  = "failed to list ingredients"
)
