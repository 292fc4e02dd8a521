package playback

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/browser"

	"slasshy/internal/httputil"
)

// State is the outcome of one playback attempt. The player endpoint has no
// documented retry contract, so an attempt is observed exactly once.
type State int

const (
	Loaded State = iota
	Failed
)

func (s State) String() string {
	if s == Loaded {
		return "loaded"
	}
	return "failed"
}

// Observe probes the player deep-link once and reports whether it loaded.
// A Failed observation is the "content unavailable" event: the requested ID
// does not exist upstream or the player cannot serve it. Transport errors are
// returned separately so they can be surfaced as upstream failures.
func Observe(ctx context.Context, client *resty.Client, url string) (State, error) {
	if err := httputil.ValidateURL(url); err != nil {
		return Failed, fmt.Errorf("invalid player URL: %w", err)
	}

	resp, err := client.R().SetContext(ctx).Get(url)
	if err != nil {
		return Failed, fmt.Errorf("reaching player: %w", err)
	}
	if resp.IsError() {
		return Failed, nil
	}
	return Loaded, nil
}

// Launch opens the deep-link in the default browser.
func Launch(url string) error {
	if err := httputil.ValidateURL(url); err != nil {
		return fmt.Errorf("invalid player URL: %w", err)
	}
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("opening browser: %w", err)
	}
	return nil
}
