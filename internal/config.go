package internal

import (
	"fmt"
	"strings"
	"time"
)

// Config is the portal's environment contract, decoded by Netflix/go-env.
// EMAIL_USER, EMAIL_PASS and EMAIL_TO follow the names the feedback relay
// has always used.
type Config struct {
	Host string `env:"HOST,required=true"`
	Port int    `env:"PORT,required=true"`

	AccessKey            string        `env:"ACCESS_KEY,required=true"`
	SessionTokenDuration time.Duration `env:"SESSION_TOKEN_DURATION,required=true"`

	FeedbackLogPath string `env:"FEEDBACK_LOG_PATH,required=true"`

	EmailUser string `env:"EMAIL_USER,required=true"`
	EmailPass string `env:"EMAIL_PASS,required=true"`
	EmailTo   string `env:"EMAIL_TO,required=true"`
	SMTPHost  string `env:"SMTP_HOST,required=true"`
	SMTPPort  int    `env:"SMTP_PORT,required=true"`

	BackendTimeout time.Duration `env:"BACKEND_TIMEOUT,required=true"`
	NotifyTimeout  time.Duration `env:"NOTIFY_TIMEOUT,required=true"`

	CensoredWords   string `env:"CENSORED_WORDS"`
	CharReplacement string `env:"CHARACTER_REPLACEMENT,required=true"`

	AssetsDir      string `env:"ASSETS_DIR"`
	MaxUploadBytes int64  `env:"MAX_UPLOAD_BYTES,required=true"`
	LogLevel       string `env:"LOG_LEVEL,required=true"`
}

// CharacterRune validates that the configured mask is a single character.
func (c Config) CharacterRune() (rune, error) {
	r := []rune(c.CharReplacement)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			c.CharReplacement,
		)
	}
	return r[0], nil
}

// CensoredWordList splits the comma-separated censor list, dropping blanks.
func (c Config) CensoredWordList() []string {
	var words []string
	for _, w := range strings.Split(c.CensoredWords, ",") {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	return words
}
