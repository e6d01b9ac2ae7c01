package shopping

// ============================================================================
// Log Messages
// ============================================================================

// Log operation identifiers
const (
	LogMsgStartSessionCalled    = "StartSession called"
	LogMsgCheckIngredientCalled = "CheckIngredient called"
	LogMsgCompleteSessionCalled = "CompleteSession called"
	LogMsgAbandonSessionCalled  = "AbandonSession called"
)

// Warning/Info messages
const (
	LogMsgSessionStarted   = "Shopping session started"
	LogMsgSessionCompleted = "Shopping session completed"
	LogMsgSessionAbandoned = "Shopping session abandoned"
	LogMsgItemChecked      = "Ingredient checked off"
)

// ============================================================================
// Error Messages (local to shopping service)
// ============================================================================

// Error context messages for wrapped errors
const (
	ErrContextFailedToCheckActive   = "failed to check active session"
	ErrContextFailedToSaveSession   = "failed to save session"
	ErrContextFailedToGetSession    = "failed to get session"
	ErrContextFailedToGetIngredient = "failed to get ingredient"
	ErrContextFailedToListSessions  = "failed to list sessions"
)
