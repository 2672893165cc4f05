package auth_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quotekeeper/quotekeeper/pkg/email"
)

type captureMailer struct {
	sent []email.SendParams
}

func (c *captureMailer) Send(ctx context.Context, params email.SendParams) error {
	c.sent = append(c.sent, params)
	return nil
}

var resetLinkRegex = regexp.MustCompile(`reset-password\?token=([A-Za-z0-9_.-]+)`)

func extractToken(t *testing.T, body string) string {
	t.Helper()
	match := resetLinkRegex.FindStringSubmatch(body)
	require.Len(t, match, 2, "reset email must carry a token link")
	return match[1]
}
