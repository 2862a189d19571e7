package platform

import (
	"fmt"
	"net/url"
)

// Sharer is a platform-native share facility. ErrUnsupported from Share means
// the caller should use a fallback.
type Sharer interface {
	Share(title, text, link string) error
}

// Clipboard is the fallback target for the app-share case.
type Clipboard interface {
	Write(text string) error
}

// ComposeURL builds the pre-filled social compose link used as the review
// share fallback.
func ComposeURL(text, link string) string {
	return fmt.Sprintf("https://twitter.com/intent/tweet?text=%s&url=%s",
		url.QueryEscape(text), url.QueryEscape(link))
}

// ReviewShareText is the message body for sharing a review.
func ReviewShareText(author, reviewText string) string {
	return fmt.Sprintf("Check out this review for J Shots Media by %s: %q", author, reviewText)
}

// ShareApp shares the site link natively, falling back to copying it to the
// clipboard. It reports whether the native path was used.
func ShareApp(sharer Sharer, clipboard Clipboard, siteURL string) (native bool, err error) {
	const text = "Download the J Shots Media app for premium photography booking in Lagos!"
	if sharer != nil {
		if err := sharer.Share("J Shots Media App", text, siteURL); err == nil {
			return true, nil
		}
	}
	if clipboard == nil {
		return false, fmt.Errorf("no share fallback available")
	}
	return false, clipboard.Write(siteURL)
}

// ShareReview shares a review natively, falling back to a pre-filled compose
// URL. The returned composeURL is empty when the native path was used.
func ShareReview(sharer Sharer, author, reviewText, siteURL string) (composeURL string) {
	text := ReviewShareText(author, reviewText)
	if sharer != nil {
		if err := sharer.Share("J Shots Media Review", text, siteURL); err == nil {
			return ""
		}
	}
	return ComposeURL(text, siteURL)
}
