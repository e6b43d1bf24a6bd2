package tools

import (
	"fmt"
	"regexp"
	"strings"
)

// toolNameRegex validates the "provider.action" format. Both parts must
// start with a word character and contain only word characters and hyphens.
var toolNameRegex = regexp.MustCompile(`^([\w][\w-]*)\.([\w][\w-]*)$`)

// SplitToolName splits "provider.action" into (provider, action, error).
func SplitToolName(name string) (provider, action string, err error) {
	matches := toolNameRegex.FindStringSubmatch(name)
	if matches == nil {
		return "", "", fmt.Errorf(
			"invalid tool name %q: must be in 'provider.action' format "+
				"(e.g., 'gmail.send')", name)
	}
	return matches[1], matches[2], nil
}

// ToolSpec describes how one tool key maps onto a gateway proxy call.
type ToolSpec struct {
	// Provider is the normalized provider owning the connection.
	Provider string
	// Method is the HTTP method of the provider API call.
	Method string
	// Path is the provider API path, with {placeholders} filled from args.
	Path string
}

// registry is the fixed mapping of tool keys to gateway calls. Unknown keys
// are rejected at execution time.
var registry = map[string]ToolSpec{
	"gmail.send": {
		Provider: "gmail",
		Method:   "POST",
		Path:     "gmail/v1/users/me/messages/send",
	},
	"gmail.reply": {
		Provider: "gmail",
		Method:   "POST",
		Path:     "gmail/v1/users/me/messages/send",
	},
	"gmail.add_label": {
		Provider: "gmail",
		Method:   "POST",
		Path:     "gmail/v1/users/me/messages/{id}/modify",
	},
	"calendar.create": {
		Provider: "google-calendar",
		Method:   "POST",
		Path:     "calendar/v3/calendars/primary/events",
	},
	"calendar.update": {
		Provider: "google-calendar",
		Method:   "PATCH",
		Path:     "calendar/v3/calendars/primary/events/{id}",
	},
	"salesforce.update_lead": {
		Provider: "salesforce",
		Method:   "PATCH",
		Path:     "services/data/v58.0/sobjects/Lead/{id}",
	},
	"salesforce.update_opportunity": {
		Provider: "salesforce",
		Method:   "PATCH",
		Path:     "services/data/v58.0/sobjects/Opportunity/{id}",
	},
	"salesforce.create_task": {
		Provider: "salesforce",
		Method:   "POST",
		Path:     "services/data/v58.0/sobjects/Task",
	},
}

// lookupTool resolves a tool key against the registry.
func lookupTool(tool string) (ToolSpec, bool) {
	spec, ok := registry[tool]
	return spec, ok
}

// expandPath fills {placeholder} segments from args, removing consumed keys
// from the returned body map so path parameters are not re-sent as payload.
func expandPath(path string, args map[string]any) (string, map[string]any) {
	body := make(map[string]any, len(args))
	for k, v := range args {
		body[k] = v
	}
	expanded := path
	for k, v := range args {
		placeholder := "{" + k + "}"
		if strings.Contains(expanded, placeholder) {
			expanded = strings.ReplaceAll(expanded, placeholder, fmt.Sprintf("%v", v))
			delete(body, k)
		}
	}
	return expanded, body
}
