package config

import (
	"errors"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"

	"github.com/g5becks/solcco/internal/render"
)

const (
	DefaultLevel    = 2
	DefaultOutput   = "out.html"
	DefaultTitle    = "Documentation"
	DefaultParallel = 4
)

type Config struct {
	Level     int               `koanf:"level"     validate:"min=1,max=6"`
	Output    string            `koanf:"output"`
	Title     string            `koanf:"title"`
	Style     string            `koanf:"style"     validate:"chroma_style"`
	Exclude   []string          `koanf:"exclude"   validate:"dive,glob_pattern"`
	Parallel  int               `koanf:"parallel"  validate:"min=1,max=64"`
	Languages map[string]string `koanf:"languages" validate:"dive,keys,required,endkeys,chroma_lexer"`
	ConfigDir string            `koanf:"-"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("chroma_style", func(fl validator.FieldLevel) bool {
		return render.StyleExists(fl.Field().String())
	})
	_ = v.RegisterValidation("chroma_lexer", func(fl validator.FieldLevel) bool {
		return render.LexerExists(fl.Field().String())
	})
	_ = v.RegisterValidation("glob_pattern", func(fl validator.FieldLevel) bool {
		return doublestar.ValidatePattern(fl.Field().String())
	})

	return v
}

func (c *Config) ApplyDefaults() {
	if c.Level == 0 {
		c.Level = DefaultLevel
	}

	if c.Output == "" {
		c.Output = DefaultOutput
	}

	if c.Title == "" {
		c.Title = DefaultTitle
	}

	if c.Style == "" {
		c.Style = render.DefaultStyle
	}

	if c.Parallel == 0 {
		c.Parallel = DefaultParallel
	}
}

func (c *Config) Validate() error {
	valErr := newValidator().Struct(c)
	if valErr == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(valErr, &validationErrors) {
		return oops.
			Code("CONFIG_INVALID").
			Wrapf(valErr, "validating config")
	}

	return mapValidationError(c, validationErrors[0])
}

func mapValidationError(c *Config, fe validator.FieldError) error {
	field := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "min", "max":
		if field == "level" {
			return oops.
				Code("CONFIG_INVALID").
				With("field", "level").
				With("value", c.Level).
				Hint("Set level between 1 and 6").
				Errorf("invalid heading level %d", c.Level)
		}

		return oops.
			Code("CONFIG_INVALID").
			With("field", field).
			With("value", fe.Value()).
			Hint("Set parallel between 1 and 64").
			Errorf("invalid value %v for %q", fe.Value(), field)

	case "chroma_style":
		return oops.
			Code("CONFIG_INVALID").
			With("field", "style").
			With("value", c.Style).
			Hint("Use a chroma style name such as github, monokai or dracula").
			Errorf("unknown highlight style %q", c.Style)

	case "chroma_lexer":
		return oops.
			Code("CONFIG_INVALID").
			With("field", "languages").
			With("value", fe.Value()).
			Hint("Map extensions to chroma lexer names, e.g. ts = \"typescript\"").
			Errorf("unknown lexer %q in languages", fe.Value())

	case "glob_pattern":
		return oops.
			Code("CONFIG_INVALID").
			With("field", "exclude").
			With("value", fe.Value()).
			Hint("Exclude patterns use doublestar syntax, e.g. \"test/**\"").
			Errorf("invalid exclude pattern %q", fe.Value())

	default:
		return oops.
			Code("CONFIG_INVALID").
			With("field", field).
			With("tag", fe.Tag()).
			Errorf("validation failed for field %q", field)
	}
}

// Starter is the config written by `solcco init`.
const Starter = `# solcco configuration

# Deepest heading level that gets an anchor and a table of contents entry.
level = 2

# HTML output file, relative to this config.
output = "out.html"

title = "Documentation"

# chroma style used for code highlighting.
style = "github"

# Files matching these patterns are skipped when expanding globs.
exclude = ["node_modules/**", "lib/**"]

# Number of files read at once.
parallel = 4

# Extra languages by file extension, mapped to chroma lexer names.
[languages]
# ts = "typescript"
`
