package model

import (
	"strings"
	"time"

	"github.com/google/go-github/v72/github"
	"github.com/m-mizutani/gitbot/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// WebhookEventType represents the X-GitHub-Event header value
type WebhookEventType string

const (
	EventTypeIssues WebhookEventType = "issues"
	EventTypePing   WebhookEventType = "ping"
)

// WebhookEvent is the transport-level envelope of a delivery
type WebhookEvent struct {
	ID         string           // Retrieved from X-GitHub-Delivery header
	Type       WebhookEventType // Retrieved from X-GitHub-Event header
	ReceivedAt time.Time
	RawPayload []byte
}

// IssueEvent holds the fields of an issues webhook payload consumed by the
// release branch pipeline. It is built once per delivery and never mutated.
type IssueEvent struct {
	Action       string   // action
	IssueState   string   // issue.state
	IssueNumber  int      // issue.number
	Label        string   // label.name, the label just applied
	Labels       []string // issue.labels[].name in payload order
	RepoFullName string   // repository.full_name
	RepoURL      string   // repository.url (API URL)
	SenderLogin  string   // sender.login
}

// NewIssueEvent converts a go-github payload. Absent fields become zero values;
// call Validate before relying on them.
func NewIssueEvent(e *github.IssuesEvent) *IssueEvent {
	ev := &IssueEvent{
		Action:       e.GetAction(),
		IssueState:   e.GetIssue().GetState(),
		IssueNumber:  e.GetIssue().GetNumber(),
		Label:        e.GetLabel().GetName(),
		RepoFullName: e.GetRepo().GetFullName(),
		RepoURL:      e.GetRepo().GetURL(),
		SenderLogin:  e.GetSender().GetLogin(),
	}

	if issue := e.GetIssue(); issue != nil {
		for _, label := range issue.Labels {
			ev.Labels = append(ev.Labels, label.GetName())
		}
	}

	return ev
}

// Validate checks the fields required once the event has passed the gate
func (e *IssueEvent) Validate() error {
	var missing []string
	if e.RepoFullName == "" {
		missing = append(missing, "repository.full_name")
	}
	if e.RepoURL == "" {
		missing = append(missing, "repository.url")
	}
	if e.SenderLogin == "" {
		missing = append(missing, "sender.login")
	}
	if e.IssueNumber <= 0 {
		missing = append(missing, "issue.number")
	}

	if len(missing) > 0 {
		return goerr.New("required fields are missing in issue event",
			goerr.V("missing", missing),
			goerr.T(types.ErrTagInvalidEvent),
		)
	}

	if _, _, ok := strings.Cut(e.RepoFullName, "/"); !ok {
		return goerr.New("repository.full_name is not owner/name",
			goerr.V("full_name", e.RepoFullName),
			goerr.T(types.ErrTagInvalidEvent),
		)
	}

	return nil
}

// Owner returns the owner part of repository.full_name
func (e *IssueEvent) Owner() string {
	owner, _, _ := strings.Cut(e.RepoFullName, "/")
	return owner
}

// Repo returns the name part of repository.full_name
func (e *IssueEvent) Repo() string {
	_, repo, _ := strings.Cut(e.RepoFullName, "/")
	return repo
}

// APIBaseURL derives the hosting API root from repository.url, e.g.
// https://api.github.com/repos/o/r -> https://api.github.com/
func (e *IssueEvent) APIBaseURL() string {
	base, _, _ := strings.Cut(e.RepoURL, "/repos/")
	return strings.TrimSuffix(base, "/") + "/"
}
