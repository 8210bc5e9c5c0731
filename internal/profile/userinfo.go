// Package profile fetches the signed-in user's Google profile.
package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// UserInfoPath is the Google OAuth2 v2 profile endpoint, relative to the API base URL.
const UserInfoPath = "/oauth2/v2/userinfo"

const maxBodyBytes = 1 << 20

// UserInfo is the profile returned by Google. Raw keeps the payload as received.
type UserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
	Locale        string `json:"locale"`

	Raw json.RawMessage `json:"-"`
}

// PrettyJSON returns Raw indented for display.
func (u *UserInfo) PrettyJSON() string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, u.Raw, "", "  "); err != nil {
		return string(u.Raw)
	}
	return buf.String()
}

// DisplayName picks the best available name for greetings.
func (u *UserInfo) DisplayName() string {
	switch {
	case u.GivenName != "":
		return u.GivenName
	case u.Name != "":
		return u.Name
	default:
		return u.Email
	}
}

// UpstreamError is returned when Google answers the profile request with a non-2xx status.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("profile request failed: status=%d body=%s", e.StatusCode, e.Body)
}

// Client calls the Google profile API.
type Client struct {
	baseURL string
}

// NewClient creates a Client for the API rooted at baseURL (e.g. https://www.googleapis.com).
func NewClient(baseURL string) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/")}
}

// Fetch performs GET /oauth2/v2/userinfo with httpClient, which must attach the access token.
func (c *Client) Fetch(ctx context.Context, httpClient *http.Client) (*UserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+UserInfoPath, nil)
	if err != nil {
		return nil, fmt.Errorf("build profile request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("profile request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read profile response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	info := &UserInfo{}
	if err := json.Unmarshal(body, info); err != nil {
		return nil, fmt.Errorf("decode profile response: %w", err)
	}
	info.Raw = json.RawMessage(body)
	return info, nil
}
