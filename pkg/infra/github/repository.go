package github

import (
	"context"

	"github.com/google/go-github/v72/github"
	"github.com/m-mizutani/gitbot/pkg/domain/interfaces"
	"github.com/m-mizutani/gitbot/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type repository struct {
	githubClient *github.Client
	owner        string
	name         string
}

func (r *repository) vars() []goerr.Option {
	return []goerr.Option{
		goerr.V("owner", r.owner),
		goerr.V("repo", r.name),
	}
}

func (r *repository) Issue(number int) interfaces.Issue {
	return &issue{repo: r, number: number}
}

func (r *repository) GetFileContents(ctx context.Context, path string) ([]byte, error) {
	fc, _, resp, err := r.githubClient.Repositories.GetContents(ctx, r.owner, r.name, path, nil)
	if err != nil {
		return nil, wrapAPIError(err, resp, "failed to get file contents", append(r.vars(), goerr.V("path", path))...)
	}
	if fc == nil {
		return nil, goerr.New("path is not a file", append(r.vars(), goerr.V("path", path))...)
	}

	content, err := fc.GetContent()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode file contents", append(r.vars(), goerr.V("path", path))...)
	}

	return []byte(content), nil
}

func (r *repository) GetBranchSHA(ctx context.Context, branch string) (string, error) {
	b, resp, err := r.githubClient.Repositories.GetBranch(ctx, r.owner, r.name, branch, 1)
	if err != nil {
		return "", wrapAPIError(err, resp, "failed to get branch", append(r.vars(), goerr.V("branch", branch))...)
	}

	sha := b.GetCommit().GetSHA()
	if sha == "" {
		return "", goerr.New("branch has no commit SHA", append(r.vars(), goerr.V("branch", branch))...)
	}

	return sha, nil
}

func (r *repository) CreateRef(ctx context.Context, ref, sha string) error {
	_, resp, err := r.githubClient.Git.CreateRef(ctx, r.owner, r.name, &github.Reference{
		Ref:    github.Ptr(ref),
		Object: &github.GitObject{SHA: github.Ptr(sha)},
	})
	if err != nil {
		return wrapAPIError(err, resp, "failed to create ref", append(r.vars(), goerr.V("ref", ref), goerr.V("sha", sha))...)
	}

	return nil
}

func (r *repository) CreateFile(ctx context.Context, path, message string, content []byte, branch string) (string, error) {
	rc, resp, err := r.githubClient.Repositories.CreateFile(ctx, r.owner, r.name, path, &github.RepositoryContentFileOptions{
		Message: github.Ptr(message),
		Content: content,
		Branch:  github.Ptr(branch),
	})
	if err != nil {
		return "", wrapAPIError(err, resp, "failed to create file", append(r.vars(), goerr.V("path", path), goerr.V("branch", branch))...)
	}

	sha := rc.Commit.GetSHA()
	if sha == "" {
		return "", goerr.New("file creation returned no commit SHA", append(r.vars(), goerr.V("path", path))...)
	}

	return sha, nil
}

func (r *repository) CreateTag(ctx context.Context, req *model.TagRequest) (string, error) {
	tag, resp, err := r.githubClient.Git.CreateTag(ctx, r.owner, r.name, &github.Tag{
		Tag:     github.Ptr(req.Tag),
		Message: github.Ptr(req.Message),
		Object: &github.GitObject{
			SHA:  github.Ptr(req.ObjectSHA),
			Type: github.Ptr(req.ObjectType),
		},
		Tagger: &github.CommitAuthor{
			Name:  github.Ptr(req.Tagger.Name),
			Email: github.Ptr(req.Tagger.Email),
			Date:  &github.Timestamp{Time: req.Date},
		},
	})
	if err != nil {
		return "", wrapAPIError(err, resp, "failed to create tag", append(r.vars(), goerr.V("tag", req.Tag), goerr.V("object_sha", req.ObjectSHA))...)
	}

	return tag.GetSHA(), nil
}

type issue struct {
	repo   *repository
	number int
}

func (i *issue) CreateComment(ctx context.Context, body string) (int64, error) {
	comment, resp, err := i.repo.githubClient.Issues.CreateComment(ctx, i.repo.owner, i.repo.name, i.number, &github.IssueComment{
		Body: github.Ptr(body),
	})
	if err != nil {
		return 0, wrapAPIError(err, resp, "failed to create comment", append(i.repo.vars(), goerr.V("issue", i.number))...)
	}

	return comment.GetID(), nil
}
