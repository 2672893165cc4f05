// Package email provides transactional email delivery with a Postmark-backed
// sender for production and a filesystem sender for development.
//
// Construct a sender from environment config:
//
//	cfg, _ := config.Load[email.Config]()
//	sender, err := email.NewFromConfig(cfg)
//	err = sender.Send(ctx, email.SendParams{
//		To:       "user@example.com",
//		Subject:  "Reset your password",
//		BodyHTML: html,
//		Tag:      "password-reset",
//	})
//
// When no Postmark token is configured, NewFromConfig falls back to a
// DevSender that writes each message to disk.
package email
