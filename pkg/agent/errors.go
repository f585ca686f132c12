package agent

import "fmt"

// Error is a recoverable tool failure. It never terminates the hosting
// process; the dispatcher turns it into text the agent can speak.
type Error struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Param   string    `json:"param,omitempty"`
	Say     string    `json:"say,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("%s: %s (param: %s)", e.Type, e.Message, e.Param)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Spoken returns the line the agent should say when this error surfaces.
func (e *Error) Spoken() string {
	if e.Say != "" {
		return e.Say
	}
	return e.Message
}

// ErrorType categorizes tool failures.
type ErrorType string

const (
	ErrProductNotFound ErrorType = "product_not_found"
	ErrOutOfStock      ErrorType = "out_of_stock"
	ErrInvalidSize     ErrorType = "invalid_size"
	ErrGameComplete    ErrorType = "game_complete"
	ErrCaseNotFound    ErrorType = "case_not_found"
	ErrNotVerified     ErrorType = "not_verified"
	ErrInvalidTool     ErrorType = "invalid_tool"
	ErrInvalidInput    ErrorType = "invalid_input"
)

// NewProductNotFoundError reports an order line referencing an unknown product.
func NewProductNotFoundError(productID string) *Error {
	return &Error{
		Type:    ErrProductNotFound,
		Message: fmt.Sprintf("no product with id %q", productID),
		Param:   "product_id",
		Say:     "I'm sorry, I couldn't find that product in our catalog.",
	}
}

// NewOutOfStockError reports an order line for a product that is not in stock.
func NewOutOfStockError(productName string) *Error {
	return &Error{
		Type:    ErrOutOfStock,
		Message: fmt.Sprintf("%s is out of stock", productName),
		Say:     fmt.Sprintf("I'm sorry, %s is currently out of stock.", productName),
	}
}

// NewInvalidSizeError reports a size that the product does not come in.
func NewInvalidSizeError(size, productName string, available []string) *Error {
	return &Error{
		Type:    ErrInvalidSize,
		Message: fmt.Sprintf("size %q not available for %s", size, productName),
		Param:   "size",
		Say:     fmt.Sprintf("I'm sorry, %s doesn't come in size %s. Available sizes are %s.", productName, size, joinSizes(available)),
	}
}

// NewGameCompleteError signals that all rounds have been played.
func NewGameCompleteError() *Error {
	return &Error{
		Type:    ErrGameComplete,
		Message: "all rounds have been played",
		Say:     "That's a wrap! We've played all our rounds.",
	}
}

// NewCaseNotFoundError reports that no pending fraud case matches the customer.
func NewCaseNotFoundError(userName string) *Error {
	return &Error{
		Type:    ErrCaseNotFound,
		Message: fmt.Sprintf("no pending fraud case for %q", userName),
		Say:     "No pending fraud cases found for this customer.",
	}
}

// NewNotVerifiedError reports a tool call that requires a loaded, verified case.
func NewNotVerifiedError(message string) *Error {
	return &Error{
		Type:    ErrNotVerified,
		Message: message,
		Say:     message,
	}
}

// NewInvalidToolError reports a dispatch for a tool the agent does not have.
func NewInvalidToolError(name string) *Error {
	return &Error{
		Type:    ErrInvalidTool,
		Message: fmt.Sprintf("unknown tool %q", name),
		Param:   "name",
	}
}

// NewInvalidInputError reports tool input that failed to decode.
func NewInvalidInputError(toolName string, underlying error) *Error {
	return &Error{
		Type:    ErrInvalidInput,
		Message: fmt.Sprintf("bad input for %s: %v", toolName, underlying),
		Param:   "input",
	}
}

func joinSizes(sizes []string) string {
	out := ""
	for i, s := range sizes {
		switch {
		case i == 0:
			out = s
		case i == len(sizes)-1:
			out += " and " + s
		default:
			out += ", " + s
		}
	}
	return out
}
