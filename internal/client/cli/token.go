package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/sharefile/internal/client/auth"
	"github.com/dmitrijs2005/sharefile/internal/common"
)

// Token prompts for a session token without echo and installs it as the
// session cookie.
func (a *App) Token(ctx context.Context) error {
	raw, err := getSecret(a.out, "Session token: ")
	if err != nil {
		return err
	}
	token := strings.TrimSpace(string(raw))
	common.WipeByteArray(raw)
	if token == "" {
		return nil
	}

	claims, err := auth.ParseClaims(token)
	if err != nil {
		fmt.Fprintln(a.out, "This does not look like a session token:", err)
		return err
	}
	if claims.Expired(time.Now()) {
		fmt.Fprintf(a.out, "Warning: token expired at %s\n", claims.Expiry().Local().Format(time.DateTime))
	}

	if a.jar != nil {
		if err := auth.SetSessionCookie(a.jar, a.config.ServerURL, a.config.SessionCookieName, token); err != nil {
			return err
		}
	}

	a.identity = claims.Identity()
	fmt.Fprintf(a.out, "Session set for %s\n", a.identity)
	return nil
}
