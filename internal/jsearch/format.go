package jsearch

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// formatSalary renders a display salary only when min, max and currency are
// all present; otherwise it returns "" and the field is omitted. INR is
// rendered in lakhs with a trailing ".0" stripped; other currencies get
// thousands separators and a currency-code prefix.
func formatSalary(rec record) string {
	if rec.MinSalary == nil || rec.MaxSalary == nil || rec.SalaryCurrency == nil {
		return ""
	}
	min, max := *rec.MinSalary, *rec.MaxSalary
	if min == 0 || max == 0 {
		return ""
	}
	currency := *rec.SalaryCurrency

	period := ""
	if rec.SalaryPeriod != nil {
		switch *rec.SalaryPeriod {
		case "YEAR":
			period = "/yr"
		case "MONTH":
			period = "/mo"
		}
	}

	var s string
	if currency == "INR" {
		s = fmt.Sprintf("%sL - %sL %s", lakhs(min), lakhs(max), period)
	} else {
		s = fmt.Sprintf("%s %s - %s %s", currency, groupThousands(min), groupThousands(max), period)
	}
	return strings.TrimSpace(s)
}

// lakhs divides by 100,000 and keeps one decimal place, dropping a trailing
// ".0" (1,250,000 -> "12.5", 600,000 -> "6").
func lakhs(v float64) string {
	s := strconv.FormatFloat(v/100000, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

// groupThousands renders a number with comma separators (50000 -> "50,000").
func groupThousands(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	whole := int64(math.Floor(v))
	frac := v - float64(whole)

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	out := b.String()
	if frac > 0 {
		f := strconv.FormatFloat(frac, 'f', 2, 64)
		out += strings.TrimSuffix(strings.TrimPrefix(f, "0"), "0")
	}
	if neg {
		out = "-" + out
	}
	return out
}

// relativeTime renders a posting timestamp against now. Unparseable input
// degrades to "Recently" instead of failing.
func relativeTime(raw string, now time.Time) string {
	posted, err := time.Parse(time.RFC3339, strings.TrimSpace(raw))
	if err != nil {
		return "Recently"
	}
	diff := now.Sub(posted)
	hours := int(diff.Hours())
	days := int(diff.Hours() / 24)

	switch {
	case hours < 1:
		return "Just now"
	case hours < 24:
		return plural(hours, "hour")
	case days < 7:
		return plural(days, "day")
	case days < 30:
		return plural(days/7, "week")
	default:
		return plural(days/30, "month")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// truncateDescription strips HTML, collapses whitespace and truncates to
// 250 characters at the preceding word boundary with a trailing ellipsis.
func truncateDescription(desc string) string {
	if strings.TrimSpace(desc) == "" {
		return ""
	}
	clean := desc
	if strings.Contains(desc, "<") {
		clean = stripTags(desc)
	}
	clean = strings.Join(strings.Fields(clean), " ")

	runes := []rune(clean)
	if len(runes) <= 250 {
		return clean
	}
	cut := string(runes[:250])
	// Collapsed text has single spaces only, so the last space starts the
	// clipped word.
	if i := strings.LastIndexByte(cut, ' '); i >= 0 {
		cut = cut[:i]
	}
	return cut + "..."
}

// stripTags extracts text with a space at every tag boundary, so
// "foo<br>bar" reads "foo bar" and list items stay separate words. The
// caller collapses the extra whitespace.
func stripTags(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range doc.Selection.Nodes {
		walk(n)
	}
	return b.String()
}
