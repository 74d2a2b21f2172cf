package repository

import (
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
)

func newTransactionID() string {
	return uuid.NewString()
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func int64ToString(v int64) string {
	return strconv.FormatInt(v, 10)
}

// Timestamps are stored as RFC3339Nano strings; the zero time maps to the
// absent attribute (omitempty) and back.

func timeToString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
