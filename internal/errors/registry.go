package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Suggestion string
	DocURL     string
}

// Codes for the registered errors. Callers should use these constants
// rather than string literals.
const (
	CodeTargetNotFound  = "E001"
	CodeCircularEffect  = "E002"
	CodeEffectPanicked  = "E003"
	CodeBadSelector     = "E004"
	CodeContextDisposed = "E005"
)

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	CodeTargetNotFound: {
		Category:   CategoryMount,
		Message:    "mount target not found",
		Suggestion: "the selector must resolve to an element that already exists in the document",
		DocURL:     "https://lucent.dev/docs/errors/E001",
	},
	CodeCircularEffect: {
		Category:   CategoryReactive,
		Message:    "circular effect dependency",
		Suggestion: "an effect wrote to a signal it depends on during its own run; move the write out of the effect body or read with Peek",
		DocURL:     "https://lucent.dev/docs/errors/E002",
	},
	CodeEffectPanicked: {
		Category:   CategoryReactive,
		Message:    "effect body panicked",
		Suggestion: "attach an error handler with reactive.WithErrorHandler to recover per-effect",
		DocURL:     "https://lucent.dev/docs/errors/E003",
	},
	CodeBadSelector: {
		Category:   CategorySelector,
		Message:    "unsupported selector syntax",
		Suggestion: "supported selectors are \"#id\", \".class\", and a bare tag name",
		DocURL:     "https://lucent.dev/docs/errors/E004",
	},
	CodeContextDisposed: {
		Category:   CategoryMount,
		Message:    "context already disposed",
		DocURL:     "https://lucent.dev/docs/errors/E005",
	},
}
