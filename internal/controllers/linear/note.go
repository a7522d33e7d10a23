package linear

import (
	"strings"

	"github.com/DIMO-Network/linear-reflect-relay/internal/clients/reflectapi"
)

// BuildNote turns a created issue into a Reflect note. The assignee is written as a
// backlink so Reflect links the note to the person's page.
func BuildNote(issue IssueData) reflectapi.Note {
	var content strings.Builder
	content.WriteString("- URL: ")
	content.WriteString(issue.URL)
	if issue.AssigneeName != "" {
		content.WriteString("\n- Assignee: [[")
		content.WriteString(issue.AssigneeName)
		content.WriteString("]]")
	}
	if issue.Description != "" {
		content.WriteString("\n- Description: ")
		content.WriteString(issue.Description)
	}

	return reflectapi.Note{
		Subject:         issue.Identifier + " " + issue.Title,
		ContentMarkdown: content.String(),
		Pinned:          false,
	}
}
