package digest

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"messdigest/internal/types"
)

// systemPromptTemplate asks for an HTML digest. %d is the complaint count.
const systemPromptTemplate = `Create a daily digest of mess management complaints. Include:
Total number of complaints received today: %d
<br/>
1. Critical issues requiring immediate attention
2. Common patterns in today's complaints
3. Specific actionable recommendations
4. Brief statistical breakdown of complaint types
<br/>
TL;DR summary of the analysis (be precise and to the point, and use TL;DR as the header)
Format the analysis in a clear, concise manner suitable for quick reading. The output should be in html format and not markdown. Leverage unordered lists (bullets) to order and use emojis to show emphasis. Return only the HTML fragment, without code fences.`

// DateLayout is the date format shown to readers of the digest.
const DateLayout = "2 January 2006"

// SystemPrompt returns the instruction sent with a digest request for count complaints.
func SystemPrompt(count int) string {
	return fmt.Sprintf(systemPromptTemplate, count)
}

// UserPrompt joins the complaint text of records, one per line, under a dated heading.
func UserPrompt(records []types.Record, day time.Time) string {
	complaints := make([]string, len(records))
	for i, r := range records {
		complaints[i] = r.Complaint
	}
	return fmt.Sprintf("Daily Complaints Analysis (%s):\n\n%s", day.Format(DateLayout), strings.Join(complaints, "\n"))
}

var fenceLanguage = regexp.MustCompile(`^[A-Za-z0-9_-]*$`)

// stripCodeFence removes a surrounding ```html fence some models add despite
// being asked not to. Text on the opening fence line is kept unless it is a
// bare language tag.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	first, rest, _ := strings.Cut(s, "\n")
	if fenceLanguage.MatchString(strings.TrimSpace(first)) {
		s = rest
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
