package domain

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// DuplicateNameErr is returned by the tool store when an owner already has a tool with the same name.
type DuplicateNameErr struct {
	domainErr
}

// NewDuplicateNameErr creates a new DuplicateNameErr with the given message.
func NewDuplicateNameErr(message string) *DuplicateNameErr {
	return &DuplicateNameErr{
		domainErr: domainErr{message: message},
	}
}

// ExecutionTimeoutErr is returned when a tool exceeds its execution budget.
type ExecutionTimeoutErr struct {
	domainErr
}

// NewExecutionTimeoutErr creates a new ExecutionTimeoutErr with the given message.
func NewExecutionTimeoutErr(message string) *ExecutionTimeoutErr {
	return &ExecutionTimeoutErr{
		domainErr: domainErr{message: message},
	}
}

// ScriptRuntimeErr represents an exception thrown by custom tool code.
type ScriptRuntimeErr struct {
	domainErr
}

// NewScriptRuntimeErr creates a new ScriptRuntimeErr with the given message.
func NewScriptRuntimeErr(message string) *ScriptRuntimeErr {
	return &ScriptRuntimeErr{
		domainErr: domainErr{message: message},
	}
}

// ToolNotFoundErr is returned when no handler matches a requested tool name.
type ToolNotFoundErr struct {
	domainErr
}

// NewToolNotFoundErr creates a new ToolNotFoundErr with the given message.
func NewToolNotFoundErr(message string) *ToolNotFoundErr {
	return &ToolNotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ArgumentParseErr is returned when the arguments of a tool call are not a valid JSON object.
type ArgumentParseErr struct {
	domainErr
}

// NewArgumentParseErr creates a new ArgumentParseErr with the given message.
func NewArgumentParseErr(message string) *ArgumentParseErr {
	return &ArgumentParseErr{
		domainErr: domainErr{message: message},
	}
}

// ProviderErr wraps a failure of the LLM provider call.
type ProviderErr struct {
	domainErr
	cause error
}

// NewProviderErr creates a new ProviderErr wrapping the given cause.
func NewProviderErr(message string, cause error) *ProviderErr {
	if cause != nil {
		message = message + ": " + cause.Error()
	}
	return &ProviderErr{
		domainErr: domainErr{message: message},
		cause:     cause,
	}
}

// Unwrap returns the underlying provider failure.
func (e *ProviderErr) Unwrap() error {
	return e.cause
}
