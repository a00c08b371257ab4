package model

import (
	"fmt"
	"net/http"
)

// Outcome is a terminal state of the release branch pipeline
type Outcome int

const (
	OutcomeNoActionNeeded Outcome = iota
	OutcomeInvalidEvent
	OutcomeMultipleReleases
	OutcomeNoReleases
	OutcomeNoOwners
	OutcomeErrorOwners
	OutcomeOwnersYAMLError
	OutcomeOnlyOwnerCanOpen
	OutcomeReleaseSuccessful
)

// outcomeDef binds an outcome to its user-facing behavior
type outcomeDef struct {
	state      string
	comment    string // empty means no comment is posted
	statusCode int
	noop       bool
}

// Outcomes lists every defined outcome
var Outcomes = []Outcome{
	OutcomeNoActionNeeded,
	OutcomeInvalidEvent,
	OutcomeMultipleReleases,
	OutcomeNoReleases,
	OutcomeNoOwners,
	OutcomeErrorOwners,
	OutcomeOwnersYAMLError,
	OutcomeOnlyOwnerCanOpen,
	OutcomeReleaseSuccessful,
}

// StateUnrecognized is reported when an Outcome value has no definition
const StateUnrecognized = "unrecognized_state"

func (o Outcome) definition(c Conventions) (outcomeDef, bool) {
	switch o {
	case OutcomeNoActionNeeded:
		return outcomeDef{state: "no_action_needed", statusCode: http.StatusOK, noop: true}, true
	case OutcomeInvalidEvent:
		return outcomeDef{state: "invalid_event", statusCode: http.StatusBadRequest}, true
	case OutcomeMultipleReleases:
		return outcomeDef{
			state:      "multiple_releases",
			comment:    "It seems like this issue is labelled with multiple release versions. Please use a single release label per issue",
			statusCode: http.StatusOK,
		}, true
	case OutcomeNoReleases:
		return outcomeDef{
			state:      "no_releases",
			comment:    fmt.Sprintf("There was a problem with your request. Please add the release version label before adding the %s label", c.TriggerLabel),
			statusCode: http.StatusOK,
		}, true
	case OutcomeNoOwners:
		return outcomeDef{
			state:      "no_owners",
			comment:    fmt.Sprintf("I can not seem to find an %s file in the repository. Please make sure an owners file is present and relabel this issue with %s when complete", c.OwnersFile, c.TriggerLabel),
			statusCode: http.StatusOK,
		}, true
	case OutcomeErrorOwners:
		return outcomeDef{
			state:      "error_owners",
			comment:    fmt.Sprintf("I had some issues reading the %s file for this repo. Please make sure the %s file exists and contact CICD team for assistance", c.OwnersFile, c.OwnersFile),
			statusCode: http.StatusOK,
		}, true
	case OutcomeOwnersYAMLError:
		return outcomeDef{
			state:      "owners_yaml_error",
			comment:    fmt.Sprintf("I had some issues reading the %s file for this repo. Please make sure the %s file is a valid YAML format with prescribed content", c.OwnersFile, c.OwnersFile),
			statusCode: http.StatusOK,
		}, true
	case OutcomeOnlyOwnerCanOpen:
		return outcomeDef{
			state:      "only_owner_can_open",
			comment:    fmt.Sprintf("Only the main owner of the repo as specified as the first entry in the %s file can open a release request.", c.OwnersFile),
			statusCode: http.StatusOK,
		}, true
	case OutcomeReleaseSuccessful:
		return outcomeDef{
			state:      "release_successful",
			comment:    "I have created the release branches and tagged it as requested.",
			statusCode: http.StatusOK,
		}, true
	}

	return outcomeDef{}, false
}

// String returns the state name used in responses and logs
func (o Outcome) String() string {
	if s, ok := o.definition(DefaultConventions()); ok {
		return s.state
	}
	return StateUnrecognized
}

// Defined reports whether the outcome is part of the enumeration
func (o Outcome) Defined() bool {
	_, ok := o.definition(DefaultConventions())
	return ok
}

// Comment returns the issue comment for the outcome, or "" when none is posted
func (o Outcome) Comment(c Conventions) string {
	s, _ := o.definition(c)
	return s.comment
}

// HasComment reports whether the outcome posts an issue comment
func (o Outcome) HasComment() bool {
	return o.Comment(DefaultConventions()) != ""
}

// StatusCode returns the HTTP status of the outcome
func (o Outcome) StatusCode() int {
	if s, ok := o.definition(DefaultConventions()); ok {
		return s.statusCode
	}
	return http.StatusInternalServerError
}

// Response builds the structured response. commentID is included as
// messageid for outcomes that post a comment.
func (o Outcome) Response(commentID int64) *Response {
	s, ok := o.definition(DefaultConventions())
	if !ok {
		return &Response{
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       map[string]any{"state": StateUnrecognized},
			StatusCode: http.StatusInternalServerError,
		}
	}

	resp := &Response{
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       map[string]any{"state": s.state},
		StatusCode: s.statusCode,
	}
	if s.noop {
		resp.Headers["x-gitbot-state"] = s.state
		resp.Headers["x-gitbot-action"] = "noop"
	}
	if s.comment != "" {
		resp.Body["messageid"] = commentID
	}

	return resp
}

// Response is the result of one invocation
type Response struct {
	Headers    map[string]string `json:"headers"`
	Body       map[string]any    `json:"body"`
	StatusCode int               `json:"statusCode"`
}

// State returns the state field of the body
func (r *Response) State() string {
	s, _ := r.Body["state"].(string)
	return s
}
