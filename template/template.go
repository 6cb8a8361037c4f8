// Package template renders feed entries into note bodies through
// simple {placeholder} substitution.
package template

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/mikeydub/go-nostrss/env"
	"github.com/mikeydub/go-nostrss/rss"
	"github.com/pkg/errors"
)

var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

// FormatError is returned when a template references a placeholder the
// renderer does not recognize. Template errors are treated as systemic
// by callers: one aborts the whole tick.
type FormatError struct {
	Placeholder string
}

func (e FormatError) Error() string {
	return fmt.Sprintf("unknown template placeholder {%s}", e.Placeholder)
}

// Render produces the note body for an entry. The template comes from
// the feed's template file when one is configured, otherwise from the
// DEFAULT_TEMPLATE env var.
func Render(ctx context.Context, feed rss.Feed, entry rss.Entry) (string, error) {
	tmpl, err := load(ctx, feed)
	if err != nil {
		return "", err
	}

	values := entryValues(feed, entry)

	var unknown string
	rendered := placeholderPattern.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[1 : len(match)-1]
		value, ok := values[name]
		if !ok && unknown == "" {
			unknown = name
		}
		return value
	})

	if unknown != "" {
		return "", FormatError{Placeholder: unknown}
	}

	return rendered, nil
}

// Validate parses the process default template once at boot so a
// missing or malformed DEFAULT_TEMPLATE is a startup failure rather
// than a per-tick one.
func Validate(ctx context.Context) error {
	tmpl := env.GetString(ctx, "DEFAULT_TEMPLATE")
	if tmpl == "" {
		return errors.New("DEFAULT_TEMPLATE is not set")
	}
	return nil
}

func load(ctx context.Context, feed rss.Feed) (string, error) {
	if feed.Template != nil {
		content, err := os.ReadFile(*feed.Template)
		if err != nil {
			return "", errors.Wrapf(err, "failed to load template for feed %s", feed.ID)
		}
		return string(content), nil
	}

	tmpl := env.GetString(ctx, "DEFAULT_TEMPLATE")
	if tmpl == "" {
		return "", errors.New("no template for feed and DEFAULT_TEMPLATE is not set")
	}
	return tmpl, nil
}

func entryValues(feed rss.Feed, entry rss.Entry) map[string]string {
	var published string
	if !entry.Published.IsZero() {
		published = entry.Published.UTC().Format(time.RFC3339)
	}

	tags := make([]string, 0, len(feed.Tags))
	for _, tag := range feed.Tags {
		tags = append(tags, "#"+tag)
	}

	return map[string]string{
		"name":      feed.Name,
		"title":     entry.Title,
		"url":       entry.URL,
		"summary":   entry.Summary,
		"content":   entry.Content,
		"published": published,
		"author":    strings.Join(entry.Authors, ", "),
		"tags":      strings.Join(tags, " "),
	}
}
