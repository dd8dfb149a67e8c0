package efa

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mobil-koeln/efa-go/command"
)

const defaultTimeout = 10 * time.Second

// Config is the static configuration of a Client. It is validated once,
// at construction, so that a bad base URL or format never reaches the
// network.
type Config struct {
	// BaseURL of the EFA endpoint, e.g. "https://efa.vgn.de/vgnExt_oeffi/".
	// A missing trailing slash is appended during normalization.
	BaseURL string `validate:"required,url"`

	// Format of the responses. Only rapidJSON is supported.
	Format string `validate:"required"`

	// Timeout for each outbound request.
	Timeout time.Duration `validate:"gte=0"`

	// Debug makes the client log full response bodies.
	Debug bool

	// InsecureSkipVerify disables TLS certificate verification. Some
	// municipal endpoints run with broken certificate chains; opting
	// out of verification is an explicit decision, never a default.
	InsecureSkipVerify bool
}

var validate = validator.New()

// normalize fills defaults and enforces the invariants the rest of the
// client relies on.
func (c *Config) normalize() error {
	if c.Format == "" {
		c.Format = command.FormatRapidJSON
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid client configuration: %w", err)
	}
	if c.Format != command.FormatRapidJSON {
		return fmt.Errorf("%w: %q", ErrFormatNotSupported, c.Format)
	}

	if !strings.HasSuffix(c.BaseURL, "/") {
		c.BaseURL += "/"
	}
	return nil
}
