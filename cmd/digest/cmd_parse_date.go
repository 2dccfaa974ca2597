package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"messdigest/internal/ingest"
)

// parseDates prints the interpretation of each raw timestamp
func parseDates(cmd *cobra.Command, args []string) error {
	loc := time.Local
	if appConfig != nil {
		if l, err := appConfig.Location(); err == nil {
			loc = l
		}
	}

	out := cmd.OutOrStdout()
	for _, raw := range args {
		ts, ok := ingest.ParseTimestamp(raw)
		if !ok {
			fmt.Fprintf(out, "%q: not a timestamp\n", raw)
			continue
		}
		t, valid := ts.Time(loc)
		if !valid {
			fmt.Fprintf(out, "%q: %s, never matches a day\n", raw, ts)
			continue
		}
		fmt.Fprintf(out, "%q: %s -> day %s\n", raw, ts, t.Format("2006-01-02"))
	}
	return nil
}
