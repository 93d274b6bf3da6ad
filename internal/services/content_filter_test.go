package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentFilterCheck(t *testing.T) {
	f := NewContentFilter()

	tests := []struct {
		name   string
		text   string
		ok     bool
		reason string
	}{
		{"clean text", "Black leather wallet with a zipper", true, ""},
		{"empty text", "", true, ""},
		{"banned word", "this is a scam listing", false, "inappropriate_language"},
		{"banned word case insensitive", "SPAM", false, "inappropriate_language"},
		{"word boundary respected", "scampi pasta recipe book", true, ""},
		{"url", "see https://example.com for photos", false, "url_not_allowed"},
		{"www url", "see www.example.com for photos", false, "url_not_allowed"},
		{"email address", "reach me at alice@campus.edu", false, "contact_info_not_allowed"},
		{"phone number", "call 555-123-4567 anytime", false, "contact_info_not_allowed"},
		{"repeated characters", "pleaseeeee return it", false, "spam_detected"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := f.Check(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestRejectionMessage(t *testing.T) {
	f := NewContentFilter()

	assert.Equal(t, "URLs and web links are not allowed.", f.RejectionMessage("url_not_allowed"))
	assert.Equal(t, "The text does not meet the content guidelines.", f.RejectionMessage("unknown_reason"))
}
