//go:build gojson

package benchmarks_test

import (
	skema "github.com/reoring/skema"
	drv "github.com/reoring/skema/source/gojson"
)

func init() {
	skema.SetJSONDriver(drv.Driver())
}
