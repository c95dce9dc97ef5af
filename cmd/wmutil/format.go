package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/spyoungtech/wmutil"
)

// renderMonitors encodes monitors in the requested output format.
func renderMonitors(monitors []wmutil.Monitor, format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return renderText(monitors), nil
	case "json":
		data, err := json.MarshalIndent(monitors, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	case "yaml":
		data, err := yaml.Marshal(monitors)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json, or yaml)", format)
	}
}

// renderText renders one line per monitor.
func renderText(monitors []wmutil.Monitor) string {
	var b strings.Builder
	for _, m := range monitors {
		b.WriteString(m.String())
		b.WriteByte('\n')
	}
	return b.String()
}
