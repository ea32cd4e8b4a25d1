// Package selfupdate replaces the running wellcheck binary with a GitHub
// release.
package selfupdate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

const (
	defaultBaseURL         = "https://api.github.com"
	defaultDownloadBaseURL = "https://github.com"
	defaultTimeout         = 10 * time.Second
)

// DefaultRepository is where wellcheck releases are published.
var DefaultRepository = Repository{Owner: "abhisek", Name: "wellcheck"}

// ErrBadRepository is returned for a repository that is not "owner/name".
var ErrBadRepository = errors.New("repository must be owner/name")

// Repository names a GitHub repository. Its Name doubles as the binary
// name inside release archives unless WithBinaryName overrides it.
type Repository struct {
	Owner string
	Name  string
}

func (r Repository) String() string { return r.Owner + "/" + r.Name }

// ParseRepository parses an "owner/name" slug.
func ParseRepository(slug string) (Repository, error) {
	owner, name, ok := strings.Cut(strings.TrimSpace(slug), "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return Repository{}, fmt.Errorf("%w: %q", ErrBadRepository, slug)
	}
	return Repository{Owner: owner, Name: name}, nil
}

// Checker looks up releases of one repository and installs them.
type Checker struct {
	client          *http.Client
	repo            Repository
	binary          string
	goos, goarch    string
	baseURL         string
	downloadBaseURL string
	execPath        func() (string, error)
}

// CheckerOption configures a Checker.
type CheckerOption func(*Checker)

// WithRepository selects the repository releases are fetched from.
func WithRepository(r Repository) CheckerOption {
	return func(c *Checker) { c.repo = r }
}

// WithBinaryName sets the executable name expected inside archives.
func WithBinaryName(name string) CheckerOption {
	return func(c *Checker) { c.binary = name }
}

// WithBaseURL points release lookups at a different API host.
func WithBaseURL(url string) CheckerOption {
	return func(c *Checker) { c.baseURL = strings.TrimRight(url, "/") }
}

// WithDownloadBaseURL points asset downloads at a different host.
func WithDownloadBaseURL(url string) CheckerOption {
	return func(c *Checker) { c.downloadBaseURL = strings.TrimRight(url, "/") }
}

func WithTimeout(d time.Duration) CheckerOption {
	return func(c *Checker) { c.client.Timeout = d }
}

func withExecPath(fn func() (string, error)) CheckerOption {
	return func(c *Checker) { c.execPath = fn }
}

func withPlatform(goos, goarch string) CheckerOption {
	return func(c *Checker) { c.goos, c.goarch = goos, goarch }
}

func NewChecker(opts ...CheckerOption) *Checker {
	c := &Checker{
		client:          &http.Client{Timeout: defaultTimeout},
		repo:            DefaultRepository,
		goos:            runtime.GOOS,
		goarch:          runtime.GOARCH,
		baseURL:         defaultBaseURL,
		downloadBaseURL: defaultDownloadBaseURL,
		execPath:        os.Executable,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.binary == "" {
		c.binary = c.repo.Name
	}
	return c
}

type CheckInput struct {
	Version string
}

type CheckResult struct {
	LatestVersion   string
	ReleaseURL      string
	UpdateAvailable bool
}

type latestRelease struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check reports whether a release newer than input.Version exists.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", c.baseURL, c.repo)
	body, err := c.get(ctx, url, "application/vnd.github+json")
	if err != nil {
		return nil, err
	}

	var rel latestRelease
	if err := json.Unmarshal(body, &rel); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}

	latest := canonical(rel.TagName)
	if !semver.IsValid(latest) {
		return nil, fmt.Errorf("release tag %q is not a semantic version", rel.TagName)
	}

	return &CheckResult{
		LatestVersion:   rel.TagName,
		ReleaseURL:      rel.HTMLURL,
		UpdateAvailable: isNewer(latest, canonical(input.Version)),
	}, nil
}

// canonical adds the "v" prefix semver expects.
func canonical(v string) string {
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

// isNewer reports whether latest is ahead of current. An unparseable
// current version always counts as older.
func isNewer(latest, current string) bool {
	if !semver.IsValid(current) {
		return true
	}
	return semver.Compare(latest, current) > 0
}
