package linear

// ActionCreate is the only action that produces a note.
const ActionCreate = "create"

// IssueEvent is a Linear webhook payload that passed shape validation.
type IssueEvent struct {
	// Action is the kind of change Linear reports (e.g. "create", "update", "remove").
	Action string
	// Issue is set only for create actions.
	Issue *IssueData
}

// ShouldCreateNote reports whether the event carries a validated issue to forward.
func (e *IssueEvent) ShouldCreateNote() bool {
	return e != nil && e.Action == ActionCreate && e.Issue != nil
}

// IssueData holds the issue fields copied into a note.
type IssueData struct {
	// Title is the issue title.
	Title string
	// Identifier is the human readable key, e.g. "ENG-123".
	Identifier string
	// URL links back to the issue in Linear.
	URL string
	// AssigneeName is empty when the issue is unassigned.
	AssigneeName string
	// Description is empty when the issue has none.
	Description string
}

// StatusResponse is returned for every request that passes signature verification.
type StatusResponse struct {
	Status string `json:"status"`
}

// MessageResponse is returned when a request is rejected.
type MessageResponse struct {
	Message string `json:"message"`
}

// issue fields as they arrive on the wire; pointers tell absent fields from zero values
type rawIssue struct {
	Title       *string      `json:"title"`
	Identifier  *string      `json:"identifier"`
	URL         *string      `json:"url"`
	Description *string      `json:"description"`
	Assignee    *rawAssignee `json:"assignee"`
}

type rawAssignee struct {
	Name *string `json:"name"`
}
