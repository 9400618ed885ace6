package repository

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/wb-go/wbf/retry"

	"github.com/LuminaryOps/Production-Rates-sub000/internal/domain"
)

const gitHubAPIBase = "https://api.github.com"

// GitRepoProvider persists the calendar as one JSON file in a hosted
// git repository, via the GitHub contents API. Every save is a commit;
// concurrent sessions resolve as last-write-wins at the repo.
type GitRepoProvider struct {
	client   *http.Client
	strategy retry.Strategy

	token  string
	owner  string
	repo   string
	branch string
	path   string

	mu  sync.Mutex
	sha string // blob sha of the last seen file version
}

type GitRepoConfig struct {
	Token  string
	Owner  string
	Repo   string
	Branch string
	Path   string
}

func NewGitRepoProvider(cfg GitRepoConfig) (*GitRepoProvider, error) {
	if cfg.Token == "" || cfg.Owner == "" || cfg.Repo == "" {
		return nil, fmt.Errorf("git provider needs token, owner and repo")
	}
	if cfg.Branch == "" {
		cfg.Branch = "main"
	}
	if cfg.Path == "" {
		cfg.Path = "data/calendar.json"
	}

	return &GitRepoProvider{
		client: &http.Client{Timeout: 15 * time.Second},
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    time.Second,
			Backoff:  2,
		},
		token:  cfg.Token,
		owner:  cfg.Owner,
		repo:   cfg.Repo,
		branch: cfg.Branch,
		path:   cfg.Path,
	}, nil
}

type contentsResponse struct {
	Content string `json:"content"`
	SHA     string `json:"sha"`
}

type contentsPutRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	Branch  string `json:"branch"`
	SHA     string `json:"sha,omitempty"`
}

type contentsPutResponse struct {
	Content struct {
		SHA string `json:"sha"`
	} `json:"content"`
}

func (p *GitRepoProvider) LoadCalendarData(ctx context.Context) (*domain.RawCalendarPayload, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s?ref=%s",
		gitHubAPIBase, p.owner, p.repo, p.path, p.branch)

	var body []byte
	var status int
	err := retry.Do(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		p.setHeaders(req)

		resp, err := p.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		status = resp.StatusCode
		if status == http.StatusNotFound {
			return nil
		}
		if status != http.StatusOK {
			return fmt.Errorf("contents GET: unexpected status %d", status)
		}

		body, err = io.ReadAll(resp.Body)
		return err
	}, p.strategy)
	if err != nil {
		return nil, fmt.Errorf("load from git repo: %w", err)
	}
	if status == http.StatusNotFound {
		p.sha = ""
		return nil, nil
	}

	var contents contentsResponse
	if err := json.Unmarshal(body, &contents); err != nil {
		return nil, fmt.Errorf("decode contents response: %w", err)
	}
	p.sha = contents.SHA

	// The API wraps base64 content across lines.
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(contents.Content, "\n", ""))
	if err != nil {
		return nil, fmt.Errorf("decode file content: %w", err)
	}
	if len(decoded) == 0 {
		return nil, nil
	}

	var raw domain.RawCalendarPayload
	if err := json.Unmarshal(decoded, &raw); err != nil {
		return nil, fmt.Errorf("decode calendar file: %w", err)
	}
	return &raw, nil
}

func (p *GitRepoProvider) SaveCalendarData(ctx context.Context, availability *domain.Availability) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	data, err := json.MarshalIndent(availability, "", "  ")
	if err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}

	reqBody, err := json.Marshal(contentsPutRequest{
		Message: fmt.Sprintf("Update calendar %s", time.Now().UTC().Format(time.RFC3339)),
		Content: base64.StdEncoding.EncodeToString(data),
		Branch:  p.branch,
		SHA:     p.sha,
	})
	if err != nil {
		return fmt.Errorf("encode contents request: %w", err)
	}

	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s",
		gitHubAPIBase, p.owner, p.repo, p.path)

	var respBody []byte
	err = retry.Do(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(reqBody))
		if err != nil {
			return err
		}
		p.setHeaders(req)

		resp, err := p.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
			return fmt.Errorf("contents PUT: unexpected status %d", resp.StatusCode)
		}

		respBody, err = io.ReadAll(resp.Body)
		return err
	}, p.strategy)
	if err != nil {
		return fmt.Errorf("save to git repo: %w", err)
	}

	var putResp contentsPutResponse
	if err := json.Unmarshal(respBody, &putResp); err == nil && putResp.Content.SHA != "" {
		p.sha = putResp.Content.SHA
	}
	return nil
}

func (p *GitRepoProvider) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+p.token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
}
