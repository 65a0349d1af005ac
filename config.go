package unitext

import "errors"
import "strconv"

import "go.uber.org/zap"

// Configuration errors returned by [NewSynchronizer]() and
// [Config.Validate](). They always come wrapped in a [*ConfigError],
// so use errors.Is() to check for them.
var (
	ErrInvalidMinSize = errors.New("min size must be at least 1")
	ErrInvalidBounds  = errors.New("min size can't be greater than max size")
	ErrNilHost        = errors.New("synchronizer host can't be nil")
)

// Configuration for a [Synchronizer].
type Config struct {
	// Lower and upper limits for the unified font size. MinSize must
	// be at least 1, and can't be greater than MaxSize.
	MinSize int
	MaxSize int

	// By default, the first recalculation done on construction is
	// immediate. If this is set, it's deferred to the next host tick
	// instead (see [Synchronizer.RecalculateBestFit]()).
	DeferInitialRecalculation bool

	// Diagnostics channel. Warnings about misuse are reported here,
	// while recalculation details are logged at debug level. If nil,
	// nothing is logged.
	Logger *zap.Logger
}

// Returns a [*ConfigError] if the configuration can't be used.
func (self Config) Validate() error {
	if self.MinSize < 1 {
		return &ConfigError{ MinSize: self.MinSize, MaxSize: self.MaxSize, Err: ErrInvalidMinSize }
	}
	if self.MinSize > self.MaxSize {
		return &ConfigError{ MinSize: self.MinSize, MaxSize: self.MaxSize, Err: ErrInvalidBounds }
	}
	return nil
}

// The error type for invalid synchronizer configurations.
type ConfigError struct {
	MinSize int
	MaxSize int
	Err error
}

func (self *ConfigError) Error() string {
	return "invalid synchronizer config (min " + strconv.Itoa(self.MinSize) +
		", max " + strconv.Itoa(self.MaxSize) + "): " + self.Err.Error()
}

func (self *ConfigError) Unwrap() error { return self.Err }
