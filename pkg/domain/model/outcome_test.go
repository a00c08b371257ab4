package model_test

import (
	"net/http"
	"testing"

	"github.com/m-mizutani/gitbot/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestOutcome_Definitions(t *testing.T) {
	c := model.DefaultConventions()
	seen := map[string]bool{}

	for _, o := range model.Outcomes {
		gt.True(t, o.Defined())
		gt.Value(t, o.String()).NotEqual(model.StateUnrecognized)
		gt.False(t, seen[o.String()])
		seen[o.String()] = true

		resp := o.Response(123)
		gt.Value(t, resp.State()).Equal(o.String())
		gt.Value(t, resp.Headers["Content-Type"]).Equal("application/json")
		gt.Value(t, resp.StatusCode).Equal(o.StatusCode())

		if o.HasComment() {
			gt.Value(t, o.Comment(c)).NotEqual("")
			gt.Value(t, resp.Body["messageid"]).Equal(int64(123))
		} else {
			_, ok := resp.Body["messageid"]
			gt.False(t, ok)
		}
	}
}

func TestOutcome_States(t *testing.T) {
	tests := []struct {
		outcome    model.Outcome
		state      string
		statusCode int
		comment    bool
	}{
		{model.OutcomeNoActionNeeded, "no_action_needed", http.StatusOK, false},
		{model.OutcomeInvalidEvent, "invalid_event", http.StatusBadRequest, false},
		{model.OutcomeMultipleReleases, "multiple_releases", http.StatusOK, true},
		{model.OutcomeNoReleases, "no_releases", http.StatusOK, true},
		{model.OutcomeNoOwners, "no_owners", http.StatusOK, true},
		{model.OutcomeErrorOwners, "error_owners", http.StatusOK, true},
		{model.OutcomeOwnersYAMLError, "owners_yaml_error", http.StatusOK, true},
		{model.OutcomeOnlyOwnerCanOpen, "only_owner_can_open", http.StatusOK, true},
		{model.OutcomeReleaseSuccessful, "release_successful", http.StatusOK, true},
	}

	gt.Number(t, len(tests)).Equal(len(model.Outcomes))

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			gt.Value(t, tt.outcome.String()).Equal(tt.state)
			gt.Value(t, tt.outcome.StatusCode()).Equal(tt.statusCode)
			gt.Value(t, tt.outcome.HasComment()).Equal(tt.comment)
		})
	}
}

func TestOutcome_NoopHeaders(t *testing.T) {
	resp := model.OutcomeNoActionNeeded.Response(0)
	gt.Value(t, resp.Headers["x-gitbot-state"]).Equal("no_action_needed")
	gt.Value(t, resp.Headers["x-gitbot-action"]).Equal("noop")

	resp = model.OutcomeNoReleases.Response(1)
	_, ok := resp.Headers["x-gitbot-action"]
	gt.False(t, ok)
}

func TestOutcome_CommentsUseConventions(t *testing.T) {
	c := model.DefaultConventions()
	gt.String(t, model.OutcomeNoReleases.Comment(c)).Contains("before adding the release-branch-needed label")
	gt.String(t, model.OutcomeNoOwners.Comment(c)).Contains("relabel this issue with release-branch-needed")

	c.TriggerLabel = "cut-release"
	gt.String(t, model.OutcomeNoReleases.Comment(c)).Contains("before adding the cut-release label")
}

func TestOutcome_Unrecognized(t *testing.T) {
	o := model.Outcome(-1)
	gt.False(t, o.Defined())
	gt.Value(t, o.String()).Equal("unrecognized_state")
	gt.False(t, o.HasComment())

	resp := o.Response(99)
	gt.Value(t, resp.StatusCode).Equal(http.StatusInternalServerError)
	gt.Value(t, resp.State()).Equal("unrecognized_state")
	_, ok := resp.Body["messageid"]
	gt.False(t, ok)
}
