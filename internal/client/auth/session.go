package auth

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/dmitrijs2005/sharefile/internal/common"
)

// DefaultCookieName is the cookie the server reads the session token from.
const DefaultCookieName = "access_token"

// NewJar returns a cookie jar holding the session cookie for serverURL. An
// empty token yields an empty jar.
func NewJar(serverURL, cookieName, token string) (http.CookieJar, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	if err := SetSessionCookie(jar, serverURL, cookieName, token); err != nil {
		return nil, err
	}
	return jar, nil
}

// SetSessionCookie stores token in jar as the session cookie for serverURL,
// replacing any previous one. An empty token is a no-op.
func SetSessionCookie(jar http.CookieJar, serverURL, cookieName, token string) error {
	u, err := url.Parse(serverURL)
	if err != nil {
		return fmt.Errorf("invalid server url %q: %w", serverURL, err)
	}
	if token == "" {
		return nil
	}
	if cookieName == "" {
		cookieName = DefaultCookieName
	}

	jar.SetCookies(u, []*http.Cookie{{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   u.Scheme == "https",
	}})
	return nil
}

// CSRFTransport copies the csrf-token cookie into the X-CSRF-TOKEN header
// of state-changing requests, as the server's double-submit check expects.
type CSRFTransport struct {
	Base http.RoundTripper
	Jar  http.CookieJar
}

func (t *CSRFTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	if !safeMethod(req.Method) && t.Jar != nil && req.Header.Get(common.CSRFHeaderName) == "" {
		for _, c := range t.Jar.Cookies(req.URL) {
			if c.Name == common.CSRFCookieName {
				req = req.Clone(req.Context())
				req.Header.Set(common.CSRFHeaderName, c.Value)
				break
			}
		}
	}

	return base.RoundTrip(req)
}

func safeMethod(m string) bool {
	switch m {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	}
	return false
}

// NewClient builds the http.Client for API calls: session cookie jar, CSRF
// header echo and the given timeout.
func NewClient(serverURL, cookieName, token string, timeout time.Duration) (*http.Client, error) {
	jar, err := NewJar(serverURL, cookieName, token)
	if err != nil {
		return nil, err
	}
	return &http.Client{
		Jar:       jar,
		Timeout:   timeout,
		Transport: &CSRFTransport{Base: http.DefaultTransport, Jar: jar},
	}, nil
}
