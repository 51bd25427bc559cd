package dom

import (
	"time"

	"github.com/npillmayer/schuko"
)

// Defaults for polling for the document body.
const (
	DefaultPollInterval = 200 * time.Millisecond
	DefaultMaxAttempts  = 300 // about a minute with the default interval
)

// Configuration keys read by AttachOptionsFrom.
const (
	ConfigAttachInterval = "attach.interval" // milliseconds
	ConfigAttachAttempts = "attach.attempts" // ≤ 0 means unbounded
)

// AttachOptions control how AttachToBody polls for the document body.
type AttachOptions struct {
	Interval    time.Duration // time between two polls
	MaxAttempts int           // number of polls before giving up; ≤ 0 polls until cancelled
}

// AttachOption is an option for AttachToBody.
type AttachOption func(*AttachOptions)

// WithInterval sets the polling interval.
func WithInterval(d time.Duration) AttachOption {
	return func(o *AttachOptions) {
		o.Interval = d
	}
}

// WithMaxAttempts sets the maximum number of polls. With n ≤ 0, polling
// continues until the body appears or the context is cancelled.
func WithMaxAttempts(n int) AttachOption {
	return func(o *AttachOptions) {
		o.MaxAttempts = n
	}
}

// AttachOptionsFrom reads polling options from an application configuration.
// Keys which are not set leave the respective option unchanged.
func AttachOptionsFrom(conf schuko.Configuration) AttachOption {
	return func(o *AttachOptions) {
		if conf == nil {
			return
		}
		if conf.IsSet(ConfigAttachInterval) {
			if ms := conf.GetInt(ConfigAttachInterval); ms > 0 {
				o.Interval = time.Duration(ms) * time.Millisecond
			}
		}
		if conf.IsSet(ConfigAttachAttempts) {
			o.MaxAttempts = conf.GetInt(ConfigAttachAttempts)
		}
	}
}
