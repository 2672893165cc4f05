package email

// Config holds email delivery configuration. The Postmark tokens are
// optional: without them the application falls back to the development
// sender, which writes messages to disk instead of sending them.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL" envDefault:"no-reply@quotekeeper.local"`
	DevOutputDir         string `env:"EMAIL_DEV_DIR" envDefault:"tmp/emails"`
}

// NewFromConfig picks the Postmark sender when tokens are configured and
// the development sender otherwise.
func NewFromConfig(cfg Config) (Sender, error) {
	if cfg.PostmarkServerToken != "" && cfg.PostmarkAccountToken != "" {
		return NewPostmarkSender(cfg)
	}
	return NewDevSender(cfg.DevOutputDir), nil
}
