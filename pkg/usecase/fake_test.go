package usecase_test

import (
	"context"

	"github.com/m-mizutani/gitbot/pkg/domain/interfaces"
	"github.com/m-mizutani/gitbot/pkg/domain/model"
	"github.com/m-mizutani/gitbot/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// fakeFactory hands out a single in-memory repository and records the API roots requested
type fakeFactory struct {
	repo     *fakeRepository
	baseURLs []string
	owner    string
	name     string
}

func (f *fakeFactory) NewClient(_ context.Context, baseURL string) (interfaces.GitHubClient, error) {
	f.baseURLs = append(f.baseURLs, baseURL)
	return f, nil
}

func (f *fakeFactory) Repository(owner, name string) interfaces.Repository {
	f.owner, f.name = owner, name
	return f.repo
}

type createdFile struct {
	Path    string
	Message string
	Content string
	Branch  string
}

type postedComment struct {
	Issue int
	Body  string
}

// fakeRepository keeps refs in memory so that creating the same ref twice
// fails the way the GitHub API does
type fakeRepository struct {
	owners    string
	ownersErr error
	branches  map[string]string

	refs     map[string]string
	files    []createdFile
	tags     []*model.TagRequest
	comments []postedComment

	createFileFunc    func(path, branch string) (string, error)
	createTagFunc     func(req *model.TagRequest) (string, error)
	createCommentFunc func(body string) (int64, error)
}

func newFakeRepository(owners string) *fakeRepository {
	return &fakeRepository{
		owners:   owners,
		branches: map[string]string{"master": "abc123"},
		refs:     map[string]string{},
	}
}

func (r *fakeRepository) Issue(number int) interfaces.Issue {
	return &fakeIssue{repo: r, number: number}
}

func (r *fakeRepository) GetFileContents(_ context.Context, path string) ([]byte, error) {
	if r.ownersErr != nil {
		return nil, r.ownersErr
	}
	if path != "OWNERS" || r.owners == "" {
		return nil, goerr.New("Not Found", goerr.V("path", path), goerr.T(types.ErrTagNotFound))
	}
	return []byte(r.owners), nil
}

func (r *fakeRepository) GetBranchSHA(_ context.Context, branch string) (string, error) {
	sha, ok := r.branches[branch]
	if !ok {
		return "", goerr.New("Branch not found", goerr.T(types.ErrTagNotFound))
	}
	return sha, nil
}

func (r *fakeRepository) CreateRef(_ context.Context, ref, sha string) error {
	if _, exists := r.refs[ref]; exists {
		return goerr.New("Reference already exists", goerr.V("ref", ref), goerr.T(types.ErrTagConflict))
	}
	r.refs[ref] = sha
	return nil
}

func (r *fakeRepository) CreateFile(_ context.Context, path, message string, content []byte, branch string) (string, error) {
	if r.createFileFunc != nil {
		sha, err := r.createFileFunc(path, branch)
		if err != nil {
			return "", err
		}
		r.files = append(r.files, createdFile{Path: path, Message: message, Content: string(content), Branch: branch})
		return sha, nil
	}
	r.files = append(r.files, createdFile{Path: path, Message: message, Content: string(content), Branch: branch})
	return "def456", nil
}

func (r *fakeRepository) CreateTag(_ context.Context, req *model.TagRequest) (string, error) {
	if r.createTagFunc != nil {
		return r.createTagFunc(req)
	}
	r.tags = append(r.tags, req)
	return "tag789", nil
}

type fakeIssue struct {
	repo   *fakeRepository
	number int
}

func (i *fakeIssue) CreateComment(_ context.Context, body string) (int64, error) {
	if i.repo.createCommentFunc != nil {
		return i.repo.createCommentFunc(body)
	}
	i.repo.comments = append(i.repo.comments, postedComment{Issue: i.number, Body: body})
	return int64(500 + len(i.repo.comments)), nil
}
