package source

import (
	"github.com/reoring/skema"
	drvgojson "github.com/reoring/skema/source/gojson"
)

// init in a separate package to avoid import cycle in root. This sets go-json as default driver.
func init() { skema.SetJSONDriver(drvgojson.Driver()) }
