package config

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/Iron-Ham/fretsmart/internal/fretboard"
	"github.com/Iron-Ham/fretsmart/internal/selection"
	"github.com/Iron-Ham/fretsmart/internal/styles"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "render.frets")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// hexColorRegex matches #RGB and #RRGGBB colors
var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidLogFormats returns the list of valid log formats
func ValidLogFormats() []string {
	return []string{"text", "json"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateData()...)
	errors = append(errors, c.validateSelection()...)
	errors = append(errors, c.validateRender()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateData validates the DataConfig
func (c *Config) validateData() []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(c.Data.File) == "" {
		errors = append(errors, ValidationError{
			Field:   "data.file",
			Value:   c.Data.File,
			Message: "must not be empty",
		})
	}

	return errors
}

// validateSelection rejects values that no data record could ever match
func (c *Config) validateSelection() []ValidationError {
	var errors []ValidationError

	for _, opt := range selection.Options() {
		value := c.Selection.Get(opt)
		if strings.ContainsAny(value, ",;\n") {
			errors = append(errors, ValidationError{
				Field:   "selection." + strings.ReplaceAll(opt, "-", "_"),
				Value:   value,
				Message: "must not contain ',', ';' or line breaks",
			})
		}
	}

	return errors
}

// validateRender validates the RenderConfig
func (c *Config) validateRender() []ValidationError {
	var errors []ValidationError

	if c.Render.Frets < 1 || c.Render.Frets > fretboard.MaxFrets {
		errors = append(errors, ValidationError{
			Field:   "render.frets",
			Value:   c.Render.Frets,
			Message: fmt.Sprintf("must be between 1 and %d", fretboard.MaxFrets),
		})
	}

	if _, err := styles.ParseMode(c.Render.Style); err != nil {
		errors = append(errors, ValidationError{
			Field:   "render.style",
			Value:   c.Render.Style,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(styles.Modes(), ", ")),
		})
	}

	if !IsValidColor(c.Render.HighlightColor) {
		errors = append(errors, ValidationError{
			Field:   "render.highlight_color",
			Value:   c.Render.HighlightColor,
			Message: "must be an ANSI color index (0-255) or a hex color (#RGB or #RRGGBB)",
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Logging.Format != "" && !slices.Contains(ValidLogFormats(), strings.ToLower(c.Logging.Format)) {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Value:   c.Logging.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogFormats(), ", ")),
		})
	}

	return errors
}

// IsValidColor reports whether color is an ANSI index or a hex color
func IsValidColor(color string) bool {
	if hexColorRegex.MatchString(color) {
		return true
	}
	n, err := strconv.Atoi(color)
	return err == nil && n >= 0 && n <= 255
}
