// Package mail composes the digest message and delivers it over SMTP.
package mail

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// DateLayout is the date format used in subjects and the text header.
const DateLayout = "2006-01-02"

// Message is a composed digest ready for a Transport.
type Message struct {
	From     string
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

// Compose builds the digest message for day from the summary markup.
func Compose(from, to, summaryHTML string, recordCount int, day time.Time) Message {
	date := day.Format(DateLayout)
	return Message{
		From:     from,
		To:       to,
		Subject:  fmt.Sprintf("Mess Management Daily Digest - %s", date),
		HTMLBody: summaryHTML,
		TextBody: fmt.Sprintf("Daily Mess Management Analysis\nDate: %s\nTotal Complaints: %d\n\n%s",
			date, recordCount, StripTags(summaryHTML)),
	}
}

// StripTags returns the text content of markup with every tag, comment and
// doctype removed. Character references are decoded.
func StripTags(markup string) string {
	z := html.NewTokenizer(strings.NewReader(markup))
	var sb strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return sb.String()
		case html.TextToken:
			sb.Write(z.Text())
		}
	}
}
