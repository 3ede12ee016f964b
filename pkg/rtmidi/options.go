package rtmidi

import "github.com/robhardwick/rtmidi-go/pkg/rtmidi/logging"

const (
	defaultInClientName   = "RtMidi Input Client"
	defaultOutClientName  = "RtMidi Output Client"
	defaultQueueSizeLimit = 100
)

// options collects the construction surface shared by NewIn and NewOut.
type options struct {
	api        API
	clientName string
	queueSize  int
	log        logging.Logger
}

// Option adjusts handle construction.
type Option func(*options)

// WithAPI pins the backend instead of letting the native library choose.
func WithAPI(api API) Option {
	return func(o *options) { o.api = api }
}

// WithClientName overrides the name the handle registers with the backend.
// Input handles default to "RtMidi Input Client", output handles to
// "RtMidi Output Client".
func WithClientName(name string) Option {
	return func(o *options) { o.clientName = name }
}

// WithQueueSizeLimit sets the input queue capacity, in messages, for handles
// created by NewIn; output handles ignore it. The capacity is fixed for the
// life of the handle and the native library drops messages that arrive on a
// full queue. Negative values are ignored.
func WithQueueSizeLimit(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.queueSize = n
		}
	}
}

// WithLogger attaches a logger for lifecycle events. The default discards
// them; nil is ignored.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func newOptions(clientName string, opts []Option) options {
	o := options{
		api:        APIUnspecified,
		clientName: clientName,
		queueSize:  defaultQueueSizeLimit,
		log:        logging.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
