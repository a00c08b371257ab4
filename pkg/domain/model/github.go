package model

import "time"

// Tagger is the identity used to author annotated tags
type Tagger struct {
	Name  string
	Email string
}

// TagRequest describes an annotated tag object to create
type TagRequest struct {
	Tag        string
	Message    string
	ObjectSHA  string
	ObjectType string // always "commit" for release tags
	Tagger     Tagger
	Date       time.Time
}

// ReleasePlan is what the release branch builder created for one request
type ReleasePlan struct {
	Branch       string // new branch name, equals the release identifier
	SourceSHA    string // tip of the source branch
	MarkerSHA    string // commit adding the marker file on the new branch
	Tag          string
	TagObjectSHA string
}
