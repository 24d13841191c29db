package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
	Example    string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Normalize Errors (A001-A009)
	// ============================================

	"A001": {
		Category:   CategoryNormalize,
		Message:    "Attribute value cannot be converted to text",
		Detail:     "The value is not a boolean, string, symbol, number, list, set or map, and it does not implement attr.ToText or fmt.Stringer.",
		Suggestion: "Implement AttributeText() string on the type, or convert the value to a string before declaring the attribute",
	},
	"A002": {
		Category:   CategoryNormalize,
		Message:    "Invalid attribute value shape",
		Detail:     "Lists and sets may only contain strings, symbols, numbers and coercible values. Maps, lists, sets and true are not allowed inside them.",
		Suggestion: "Flatten nested lists before declaring the attribute, or use a map for nested attributes",
	},
	"A003": {
		Category:   CategoryNormalize,
		Message:    "Attribute value nested too deeply",
		Detail:     "The value exceeds the configured nesting limit.",
		Suggestion: "Reduce nesting or raise the limit with --max-depth or normalize.maxDepth in attrs.json",
	},
	"A004": {
		Category: CategoryNormalize,
		Message:  "Empty attribute name",
		Detail:   "Attribute names and map keys must not be empty.",
	},

	// ============================================
	// Render Errors (A010-A019)
	// ============================================

	"A010": {
		Category:   CategoryRender,
		Message:    "Unsafe attribute name",
		Detail:     "A flattened attribute name contains whitespace, quotes, '=', '/', '<' or '>' and cannot be written into a tag.",
		Suggestion: "Rename the map key so it only uses letters, digits, '-' and '_'",
	},
	"A011": {
		Category: CategoryRender,
		Message:  "Invalid element",
		Detail:   "The tag name is not valid or a void element was given children.",
	},

	// ============================================
	// Input Errors (A020-A029)
	// ============================================

	"A020": {
		Category:   CategoryInput,
		Message:    "Failed to decode attributes",
		Detail:     "The input document is not valid JSON or YAML.",
		Suggestion: "Check the document syntax, or pass --format to pick the right decoder",
	},
	"A021": {
		Category: CategoryInput,
		Message:  "Attribute document must be an object",
		Detail:   "The top level of the document must map attribute names to values.",
		Example:  `{"class": ["btn", "btn-primary"], "data": {":user_id": 7}}`,
	},
	"A022": {
		Category: CategoryInput,
		Message:  "Failed to read input",
	},

	// ============================================
	// Config Errors (C120-C129)
	// ============================================

	"C120": {
		Category: CategoryConfig,
		Message:  "Failed to read attrs.json",
		Detail:   "The configuration file could not be read or parsed.",
	},
	"C121": {
		Category:   CategoryConfig,
		Message:    "attrs.json not found",
		Detail:     "No configuration file was found.",
		Suggestion: "Create attrs.json or pass --config",
	},
	"C122": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "A configuration value is out of range.",
	},

	// ============================================
	// Server Errors (S001-S009)
	// ============================================

	"S001": {
		Category:   CategoryServer,
		Message:    "Server failed to start",
		Detail:     "The HTTP listener could not be started.",
		Suggestion: "Check that the port is free, or pass --port",
	},
	"S002": {
		Category: CategoryServer,
		Message:  "Server shutdown failed",
	},
	"S003": {
		Category:   CategoryServer,
		Message:    "Invalid request body",
		Detail:     "The request body is not a valid JSON object of the expected shape.",
		Suggestion: "Send a JSON object with the documented fields",
		Example:    `{"name": "data", "value": {":user_id": 7}}`,
	},
	"S004": {
		Category: CategoryServer,
		Message:  "Request body too large",
		Detail:   "The request body exceeds server.maxBodyBytes.",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
