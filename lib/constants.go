package lib

var Version = "1.0.0"

// DefaultSchema is the schema the chat application keeps its tables and
// sequences in. Overridable with --schema for non-standard deployments.
const DefaultSchema = "ai_chatbot"
