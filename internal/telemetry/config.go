package telemetry

import (
	"os"
)

var observeEnabled bool

func init() {
	// Read once at process start. Mid-run environment changes have no effect
	// except for the explicit override below.
	observeEnabled = os.Getenv("ONEHOP_OBSERVE_JSON") == "1"
}

// ObserveEnabled reports whether JSONL emission was enabled at startup.
// An explicit env value set mid-run is honoured so tests can flip it.
func ObserveEnabled() bool {
	if v, ok := os.LookupEnv("ONEHOP_OBSERVE_JSON"); ok {
		return v == "1"
	}
	return observeEnabled
}
