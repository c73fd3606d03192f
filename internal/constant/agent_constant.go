package constant

const (
	AgentMessageRoleUser      = "user"
	AgentMessageRoleAssistant = "assistant"

	// Default retrieval settings. RAG_TOP_K controls how many sources are
	// fetched per turn; the answer template only quotes the first
	// RAG_DISPLAY_LIMIT of them, but the API always returns the full list.
	DefaultRagTopK        = 4
	DefaultRagDisplay     = 2
	DefaultMemoryLimit    = 6
	DefaultTicketPriority = "medium"
	DefaultTicketStatus   = "open"
	DefaultEventType      = "generic"

	// TicketTitleMaxChars caps the ticket title taken from the raw user
	// message when the decision layer triggers create_ticket.
	TicketTitleMaxChars = 100
)

const (
	ToolSaveDocument    = "save_document"
	ToolSearchDocuments = "search_documents"
	ToolGetUser         = "get_user"
	ToolLogEvent        = "log_event"
	ToolCreateTicket    = "create_ticket"
)
