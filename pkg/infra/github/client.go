package github

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v72/github"
	"github.com/m-mizutani/gitbot/pkg/domain/interfaces"
	"github.com/m-mizutani/gitbot/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
)

// Auth holds credentials for the hosting API. Either Token or the three App
// fields must be set.
type Auth struct {
	Token          string `masq:"secret"`
	AppID          int64
	InstallationID int64
	PrivateKey     []byte `masq:"secret"`
}

func (a Auth) useApp() bool {
	return a.AppID != 0 && a.InstallationID != 0 && len(a.PrivateKey) > 0
}

// Validate checks that one authentication method is fully configured
func (a Auth) Validate() error {
	if a.Token == "" && !a.useApp() {
		return goerr.New("either GitHub token or GitHub App credentials (app ID, installation ID, private key) are required")
	}
	return nil
}

type factory struct {
	auth      Auth
	transport http.RoundTripper
}

// FactoryOption is a functional option for the client factory
type FactoryOption func(*factory)

// WithTransport replaces the base HTTP transport
func WithTransport(rt http.RoundTripper) FactoryOption {
	return func(f *factory) {
		f.transport = rt
	}
}

// NewFactory creates a factory that builds an authenticated client per API root
func NewFactory(auth Auth, opts ...FactoryOption) (interfaces.GitHubClientFactory, error) {
	if err := auth.Validate(); err != nil {
		return nil, err
	}

	f := &factory{
		auth:      auth,
		transport: http.DefaultTransport,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

// NewClient creates a GitHub client bound to baseURL, e.g.
// https://api.github.com/ or https://ghe.example.com/api/v3/
func (f *factory) NewClient(ctx context.Context, baseURL string) (interfaces.GitHubClient, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid GitHub API base URL", goerr.V("base_url", baseURL))
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, goerr.New("GitHub API base URL must be absolute", goerr.V("base_url", baseURL))
	}

	httpClient, err := f.httpClient(ctx, strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, err
	}

	ghClient := github.NewClient(httpClient)
	ghClient.BaseURL = parsed
	ghClient.UploadURL = parsed

	return &client{githubClient: ghClient}, nil
}

func (f *factory) httpClient(ctx context.Context, apiRoot string) (*http.Client, error) {
	if f.auth.useApp() {
		itr, err := ghinstallation.New(f.transport, f.auth.AppID, f.auth.InstallationID, f.auth.PrivateKey)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create GitHub App transport",
				goerr.V("app_id", f.auth.AppID),
				goerr.V("installation_id", f.auth.InstallationID),
			)
		}
		itr.BaseURL = apiRoot
		return &http.Client{Transport: itr}, nil
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: f.auth.Token})
	ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Transport: f.transport})
	return oauth2.NewClient(ctx, ts), nil
}

type client struct {
	githubClient *github.Client
}

// Repository returns a handle; no API call is made until an operation runs
func (c *client) Repository(owner, name string) interfaces.Repository {
	return &repository{
		githubClient: c.githubClient,
		owner:        owner,
		name:         name,
	}
}

// wrapAPIError attaches the HTTP status and classification tags to a go-github error
func wrapAPIError(err error, resp *github.Response, msg string, opts ...goerr.Option) error {
	if resp != nil && resp.Response != nil {
		opts = append(opts, goerr.V("status_code", resp.StatusCode))
		switch resp.StatusCode {
		case http.StatusNotFound:
			opts = append(opts, goerr.T(types.ErrTagNotFound))
		case http.StatusUnprocessableEntity:
			opts = append(opts, goerr.T(types.ErrTagConflict))
		}
	}

	return goerr.Wrap(err, msg, opts...)
}
