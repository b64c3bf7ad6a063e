package render

import (
	"fmt"
	"time"
)

// localTimeLayout is how converted instants are shown to the user.
const localTimeLayout = "2006-01-02 15:04:05 MST"

// ConvertToZone reinterprets a UTC RFC3339 instant in the named timezone
// and formats it for display. Failures come back as a descriptive string
// in place of the timestamp, so one bad row never aborts a whole render.
func ConvertToZone(utcISO, zone string) string {
	t, err := time.Parse(time.RFC3339, utcISO)
	if err != nil {
		return fmt.Sprintf("conversion failed: %v", err)
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return fmt.Sprintf("conversion failed: %v", err)
	}
	return t.In(loc).Format(localTimeLayout)
}
