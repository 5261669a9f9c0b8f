package share

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"year-progress/internal/progress"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSharer struct {
	err   error
	title string
	text  string
	calls int
}

func (f *fakeSharer) Share(_ context.Context, title, text string) error {
	f.calls++
	f.title, f.text = title, text
	return f.err
}

type fakeClipboard struct {
	err  error
	text string
}

func (f *fakeClipboard) WriteText(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

var sample = progress.Stats{Percentage: 45.123456, DaysPassed: 164, DaysLeft: 201}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Year Progress: 45.12%\nDays Passed: 164\nDays Left: 201", Summary(sample))
	assert.Equal(t, "45.123456%", sample.DisplayPercentage())
}

func TestShareUsesFacility(t *testing.T) {
	sharer := &fakeSharer{}
	clip := &fakeClipboard{}

	outcome, err := NewService(sharer, clip, nil).Share(context.Background(), sample)

	require.NoError(t, err)
	assert.Equal(t, OutcomeShared, outcome)
	assert.Equal(t, Title, sharer.title)
	assert.Equal(t, Summary(sample), sharer.text)
	assert.Empty(t, clip.text)
}

func TestShareFallsBackToClipboard(t *testing.T) {
	tests := []struct {
		name   string
		sharer Sharer
	}{
		{name: "no facility", sharer: nil},
		{name: "facility unavailable", sharer: &fakeSharer{err: ErrUnavailable}},
		{name: "wrapped unavailable", sharer: &fakeSharer{err: errors.Join(errors.New("no handler"), ErrUnavailable)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clip := &fakeClipboard{}
			outcome, err := NewService(tt.sharer, clip, nil).Share(context.Background(), sample)

			require.NoError(t, err)
			assert.Equal(t, OutcomeCopied, outcome)
			assert.Equal(t, Summary(sample), clip.text)
		})
	}
}

func TestShareCancelledDoesNotFallBack(t *testing.T) {
	clip := &fakeClipboard{}
	outcome, err := NewService(&fakeSharer{err: ErrCancelled}, clip, nil).Share(context.Background(), sample)

	assert.ErrorIs(t, err, ErrCancelled)
	assert.Equal(t, OutcomeNone, outcome)
	assert.Empty(t, clip.text)
	assert.Equal(t, "Share cancelled", Notice(outcome, err))
}

func TestShareFailures(t *testing.T) {
	denied := errors.New("clipboard write denied")

	_, err := NewService(nil, &fakeClipboard{err: denied}, nil).Share(context.Background(), sample)
	assert.ErrorIs(t, err, denied)

	boom := errors.New("boom")
	_, err = NewService(&fakeSharer{err: boom}, &fakeClipboard{}, nil).Share(context.Background(), sample)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, Notice(OutcomeNone, err), "Could not share")

	_, err = NewService(nil, nil, nil).Share(context.Background(), sample)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestNotice(t *testing.T) {
	assert.Equal(t, "Copied to clipboard!", Notice(OutcomeCopied, nil))
	assert.Equal(t, "Shared", Notice(OutcomeShared, nil))
	assert.Empty(t, Notice(OutcomeNone, nil))
	assert.Equal(t, "copied", OutcomeCopied.String())
}

type fakeOpener struct {
	opened *url.URL
	err    error
}

func (f *fakeOpener) OpenURL(u *url.URL) error {
	f.opened = u
	return f.err
}

func TestMailSharer(t *testing.T) {
	opener := &fakeOpener{}
	err := MailSharer{Opener: opener}.Share(context.Background(), Title, Summary(sample))

	require.NoError(t, err)
	require.NotNil(t, opener.opened)
	assert.Equal(t, "mailto", opener.opened.Scheme)

	query, err := url.ParseQuery(opener.opened.RawQuery)
	require.NoError(t, err)
	assert.Equal(t, Title, query.Get("subject"))
	assert.Equal(t, Summary(sample), query.Get("body"))
	assert.NotContains(t, opener.opened.String(), "+")
}

func TestMailSharerUnavailable(t *testing.T) {
	err := MailSharer{}.Share(context.Background(), Title, "x")
	assert.ErrorIs(t, err, ErrUnavailable)

	err = MailSharer{Opener: &fakeOpener{err: errors.New("no mail client")}}.Share(context.Background(), Title, "x")
	assert.ErrorIs(t, err, ErrUnavailable)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = MailSharer{Opener: &fakeOpener{}}.Share(ctx, Title, "x")
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestFyneClipboardWithoutWindow(t *testing.T) {
	assert.Error(t, FyneClipboard{}.WriteText("x"))
}
