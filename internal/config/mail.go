package config

import "time"

// MailConfig configures SMTP delivery of the digest.
type MailConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"` // defaults to Username
	To       string `yaml:"to"`

	// InsecureSkipVerify disables certificate verification on STARTTLS.
	InsecureSkipVerify bool   `yaml:"insecure_skip_verify"`
	Timeout            string `yaml:"timeout"`
}

// Sender returns the From address, falling back to the SMTP username.
func (m MailConfig) Sender() string {
	if m.From != "" {
		return m.From
	}
	return m.Username
}

// GetMailTimeout returns the SMTP timeout as a duration.
func (c *Config) GetMailTimeout() time.Duration {
	return parseDuration(c.Mail.Timeout, 10*time.Second)
}
