package model_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-github/v72/github"
	"github.com/m-mizutani/gitbot/pkg/domain/model"
	"github.com/m-mizutani/gitbot/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestNewIssueEvent(t *testing.T) {
	raw := `{
		"action": "labeled",
		"label": {"name": "release-branch-needed"},
		"issue": {"number": 12, "state": "open", "labels": [{"name": "release/1.2.0"}, {"name": "bug"}]},
		"repository": {"full_name": "acme/app", "url": "https://api.github.com/repos/acme/app"},
		"sender": {"login": "alice"}
	}`
	var payload github.IssuesEvent
	gt.NoError(t, json.Unmarshal([]byte(raw), &payload))

	ev := model.NewIssueEvent(&payload)
	gt.Value(t, ev.Action).Equal("labeled")
	gt.Value(t, ev.Label).Equal("release-branch-needed")
	gt.Value(t, ev.IssueState).Equal("open")
	gt.Value(t, ev.IssueNumber).Equal(12)
	gt.Value(t, ev.Labels).Equal([]string{"release/1.2.0", "bug"})
	gt.Value(t, ev.SenderLogin).Equal("alice")
	gt.NoError(t, ev.Validate())

	gt.Value(t, ev.Owner()).Equal("acme")
	gt.Value(t, ev.Repo()).Equal("app")
	gt.Value(t, ev.APIBaseURL()).Equal("https://api.github.com/")
}

func TestNewIssueEvent_EmptyPayload(t *testing.T) {
	ev := model.NewIssueEvent(&github.IssuesEvent{})
	gt.Value(t, ev.Action).Equal("")
	gt.Number(t, len(ev.Labels)).Equal(0)

	err := ev.Validate()
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, types.ErrTagInvalidEvent))
}

func TestIssueEvent_Validate(t *testing.T) {
	valid := func() *model.IssueEvent {
		return &model.IssueEvent{
			IssueNumber:  1,
			RepoFullName: "acme/app",
			RepoURL:      "https://api.github.com/repos/acme/app",
			SenderLogin:  "alice",
		}
	}

	tests := []struct {
		name   string
		modify func(ev *model.IssueEvent)
	}{
		{name: "no repository name", modify: func(ev *model.IssueEvent) { ev.RepoFullName = "" }},
		{name: "repository name without owner", modify: func(ev *model.IssueEvent) { ev.RepoFullName = "app" }},
		{name: "no repository url", modify: func(ev *model.IssueEvent) { ev.RepoURL = "" }},
		{name: "no sender", modify: func(ev *model.IssueEvent) { ev.SenderLogin = "" }},
		{name: "no issue number", modify: func(ev *model.IssueEvent) { ev.IssueNumber = 0 }},
	}

	gt.NoError(t, valid().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := valid()
			tt.modify(ev)
			err := ev.Validate()
			gt.Error(t, err)
			gt.True(t, goerr.HasTag(err, types.ErrTagInvalidEvent))
		})
	}
}

func TestIssueEvent_APIBaseURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://api.github.com/repos/acme/app", "https://api.github.com/"},
		{"https://ghe.example.com/api/v3/repos/acme/app", "https://ghe.example.com/api/v3/"},
		{"http://127.0.0.1:8080/repos/acme/app", "http://127.0.0.1:8080/"},
	}

	for _, tt := range tests {
		ev := &model.IssueEvent{RepoURL: tt.url}
		gt.Value(t, ev.APIBaseURL()).Equal(tt.want)
	}
}

func TestConventions(t *testing.T) {
	c := model.DefaultConventions()

	gt.Value(t, c.BranchName("release/1.2.0")).Equal("1.2.0")
	gt.Value(t, c.BranchName("release/release-1.2.0")).Equal("release-1.2.0")
	gt.Value(t, c.BranchName("release/hotfix/1.2.1")).Equal("hotfix/1.2.1")

	gt.Value(t, c.TagName("1.2.0")).Equal("1.2.0")
	gt.Value(t, c.TagName("release-1.2.0")).Equal("1.2.0")
	gt.Value(t, c.TagName("1.2.0-release-candidate")).Equal("1.2.0-release-candidate")

	gt.Value(t, c.CommitMessage("1.2.0")).Equal("create new release branch for 1.2.0")
	gt.Value(t, c.TagMessage("1.2.0")).Equal("New release branch for 1.2.0")
}
