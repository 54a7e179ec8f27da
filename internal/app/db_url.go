package app

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/Xenos72/NHLStatsAnalyzer1/internal/config"
)

const (
	binaryResultParam    = "disable_prepared_binary_result"
	maxTracedQueryLength = 512
	traceQueryEllipsis   = "..."
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// normalizeDBURL adds disable_prepared_binary_result=yes for poolers that
// cannot handle binary results of prepared statements. An explicit value
// in the URL wins.
func normalizeDBURL(raw string, disableBinary bool) string {
	if !disableBinary {
		return raw
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	if query.Has(binaryResultParam) {
		return raw
	}
	query.Set(binaryResultParam, "yes")
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// dbNameFromURL accepts both URL and key=value DSN forms.
func dbNameFromURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if parsed, err := url.Parse(raw); err == nil && parsed.Scheme != "" {
		if name := strings.Trim(parsed.Path, "/ "); name != "" {
			return name
		}
	}

	for _, field := range strings.Fields(raw) {
		if value, ok := strings.CutPrefix(field, "dbname="); ok {
			if name := strings.Trim(value, `"'`); name != "" {
				return name
			}
		}
	}
	return ""
}

// formatDBQueryForTrace collapses whitespace so span names stay on one line.
func formatDBQueryForTrace(query string) string {
	query = whitespaceRun.ReplaceAllString(strings.TrimSpace(query), " ")
	if len(query) > maxTracedQueryLength {
		return query[:maxTracedQueryLength] + traceQueryEllipsis
	}
	return query
}

// PostgresURL is the connection string used by both the API and the
// migration command.
func PostgresURL(cfg config.Config) string {
	return normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
}
