package share

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// URLOpener opens a URL with the platform handler. fyne.App satisfies it.
type URLOpener interface {
	OpenURL(u *url.URL) error
}

// MailSharer shares by opening a pre-filled mailto: link.
type MailSharer struct {
	Opener URLOpener
}

func (m MailSharer) Share(ctx context.Context, title, text string) error {
	if m.Opener == nil {
		return ErrUnavailable
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrCancelled, err)
	}

	if err := m.Opener.OpenURL(MailURL(title, text)); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// MailURL builds the mailto: link carrying subject and body.
func MailURL(subject, body string) *url.URL {
	query := "subject=" + escape(subject) + "&body=" + escape(body)
	return &url.URL{Scheme: "mailto", RawQuery: query}
}

// escape is query escaping with %20 for spaces, which mail clients expect.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
