package validate

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
	"golang.org/x/text/language"
)

var (
	cfg  Config
	once sync.Once
)

// Config carries environment-driven defaults for length validation.
type Config struct {
	// DecimalSeparator splits decimal values when counting their length.
	DecimalSeparator string `env:"VALIDATE_DECIMAL_SEPARATOR" envDefault:"."`
	// Locale is an optional BCP 47 tag (e.g. "de"); when set, the locale's
	// decimal separator takes precedence over DecimalSeparator.
	Locale string `env:"VALIDATE_LOCALE"`
}

// Separator resolves the effective decimal separator, preferring the
// configured locale when one is set.
func (c Config) Separator() (string, error) {
	if c.Locale == "" {
		return c.DecimalSeparator, nil
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return "", errors.Join(ErrInvalidLocale, err)
	}
	return DecimalSeparatorForLocale(tag), nil
}

// LoadConfig loads the configuration from the environment once per
// process and memoizes the result.
func LoadConfig() (Config, error) {
	var err error
	once.Do(func() {
		err = env.Parse(&cfg)
	})
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
