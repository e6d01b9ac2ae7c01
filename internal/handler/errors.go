package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"

	// Session error messages
	ErrMsgInvalidSessionID      = "Invalid session ID"
	ErrMsgStartSessionFailed    = "Failed to start session"
	ErrMsgCheckIngredientFailed = "Failed to check ingredient"
	ErrMsgCompleteSessionFailed = "Failed to complete session"
	ErrMsgAbandonSessionFailed  = "Failed to abandon session"
	ErrMsgGetSessionFailed      = "Failed to retrieve session"
	ErrMsgListSessionsFailed    = "Failed to list sessions"

	// Ingredient error messages
	ErrMsgInvalidIngredientID     = "Invalid ingredient ID"
	ErrMsgCreateIngredientFailed  = "Failed to create ingredient"
	ErrMsgUpdateIngredientFailed  = "Failed to update ingredient"
	ErrMsgDeleteIngredientFailed  = "Failed to delete ingredient"
	ErrMsgGetIngredientFailed     = "Failed to retrieve ingredient"
	ErrMsgListIngredientsFailed   = "Failed to list ingredients"
	ErrMsgIngredientNotFoundHTTP  = "Ingredient not found"
)

// Success messages for API responses
const (
	MsgIngredientDeletedSuccess = "Ingredient deleted successfully"
)
