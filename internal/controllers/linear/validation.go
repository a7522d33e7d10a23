package linear

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
)

var (
	// ErrMalformedPayload is returned when the body is not a JSON object.
	ErrMalformedPayload = errors.New("malformed payload")
	// ErrMissingAction is returned when the payload has no string action.
	ErrMissingAction = errors.New("missing action")
	// ErrMissingField is returned when a required field is absent.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidField is returned when a field has the wrong type.
	ErrInvalidField = errors.New("invalid field type")
	// ErrInvalidURL is returned when data.url is not an absolute URI.
	ErrInvalidURL = errors.New("invalid url")
)

// ValidationError names the payload field that failed validation.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

type envelope struct {
	Action json.RawMessage `json:"action"`
	Data   json.RawMessage `json:"data"`
}

// ParseIssueEvent decodes and validates a webhook body. Non-create actions are returned
// without issue data; create actions must carry a complete issue.
func ParseIssueEvent(body []byte) (*IssueEvent, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	if isAbsent(env.Action) {
		return nil, &ValidationError{Field: "action", Err: ErrMissingAction}
	}
	var action string
	if err := json.Unmarshal(env.Action, &action); err != nil {
		return nil, &ValidationError{Field: "action", Err: ErrMissingAction}
	}

	event := &IssueEvent{Action: action}
	if action != ActionCreate {
		return event, nil
	}

	issue, err := parseIssue(env.Data)
	if err != nil {
		return nil, err
	}
	event.Issue = issue
	return event, nil
}

func parseIssue(data json.RawMessage) (*IssueData, error) {
	if isAbsent(data) {
		return nil, &ValidationError{Field: "data", Err: ErrMissingField}
	}
	var raw rawIssue
	if err := json.Unmarshal(data, &raw); err != nil {
		field := "data"
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			field += "." + typeErr.Field
		}
		return nil, &ValidationError{Field: field, Err: ErrInvalidField}
	}

	if raw.Title == nil {
		return nil, &ValidationError{Field: "data.title", Err: ErrMissingField}
	}
	if raw.Identifier == nil {
		return nil, &ValidationError{Field: "data.identifier", Err: ErrMissingField}
	}
	if raw.URL == nil {
		return nil, &ValidationError{Field: "data.url", Err: ErrMissingField}
	}
	if err := validateIssueURL(*raw.URL); err != nil {
		return nil, &ValidationError{Field: "data.url", Err: err}
	}

	issue := &IssueData{
		Title:      *raw.Title,
		Identifier: *raw.Identifier,
		URL:        *raw.URL,
	}
	// a null assignee means unassigned; an assignee object must name someone
	if raw.Assignee != nil {
		if raw.Assignee.Name == nil {
			return nil, &ValidationError{Field: "data.assignee.name", Err: ErrMissingField}
		}
		issue.AssigneeName = *raw.Assignee.Name
	}
	if raw.Description != nil {
		issue.Description = *raw.Description
	}
	return issue, nil
}

func validateIssueURL(issueURL string) error {
	parsed, err := url.Parse(issueURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if parsed.Scheme == "" {
		return ErrInvalidURL
	}
	// hierarchical web schemes need a host; opaque URIs like mailto: or urn: need a body
	if hostRequired[parsed.Scheme] {
		if parsed.Host == "" {
			return ErrInvalidURL
		}
		return nil
	}
	if parsed.Host == "" && parsed.Opaque == "" && parsed.Path == "" {
		return ErrInvalidURL
	}
	return nil
}

var hostRequired = map[string]bool{
	"http":  true,
	"https": true,
	"ws":    true,
	"wss":   true,
	"ftp":   true,
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
