package readme

import (
	"fmt"
	"strings"
	"time"

	"github.com/HeetPatel8126/Leetcode-Stats-Tracker/internal/leetcode"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Approximate problem counts per difficulty, used to scale the progress bars.
const (
	approxEasyTotal   = 830
	approxMediumTotal = 1750
	approxHardTotal   = 750
)

const barLength = 20

var printer = message.NewPrinter(language.English)

// Render produces the markdown block for the managed README region.
// The footer carries the date only, so re-rendering the same stats on the
// same day yields identical bytes.
func Render(stats *leetcode.Stats, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "![LeetCode](https://img.shields.io/badge/LeetCode-%s-orange?style=for-the-badge&logo=leetcode)\n\n", stats.Username)

	b.WriteString("### 🏆 Profile\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(&b, "| 👤 Username | [%s](https://leetcode.com/%s/) |\n", stats.Username, stats.Username)
	fmt.Fprintf(&b, "| 🏅 Ranking | #%s |\n", printer.Sprintf("%d", stats.Ranking))
	fmt.Fprintf(&b, "| ✅ Total Solved | **%d** |\n", stats.TotalSolved)
	fmt.Fprintf(&b, "| 📈 Acceptance Rate | %.1f%% |\n\n", stats.AcceptanceRate)

	b.WriteString("### 📊 Problems\n\n")
	b.WriteString("| Difficulty | Solved | Progress |\n")
	b.WriteString("|------------|--------|----------|\n")
	fmt.Fprintf(&b, "| 🟢 Easy | %d | %s |\n", stats.EasySolved, ProgressBar(stats.EasySolved, approxEasyTotal))
	fmt.Fprintf(&b, "| 🟡 Medium | %d | %s |\n", stats.MediumSolved, ProgressBar(stats.MediumSolved, approxMediumTotal))
	fmt.Fprintf(&b, "| 🔴 Hard | %d | %s |\n\n", stats.HardSolved, ProgressBar(stats.HardSolved, approxHardTotal))

	b.WriteString("### 🎯 Contests\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(&b, "| Contest Rating | %s |\n", contestRating(stats.Contest))
	fmt.Fprintf(&b, "| Contests Attended | %s |\n", contestsAttended(stats.Contest))
	fmt.Fprintf(&b, "| Top Percentage | %s |\n\n", topPercentage(stats.Contest))

	fmt.Fprintf(&b, "<sub>Last updated: %s UTC</sub>", now.UTC().Format("2006-01-02"))

	return b.String()
}

// ProgressBar renders a text bar of solved/total, capped at 100%.
func ProgressBar(solved, total int) string {
	pct := 0.0
	if total > 0 {
		pct = float64(solved) / float64(total)
		if pct > 1 {
			pct = 1
		}
	}
	filled := int(barLength * pct)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barLength-filled)
	return fmt.Sprintf("`%s` %.1f%%", bar, pct*100)
}

func contestRating(c *leetcode.ContestStats) string {
	if c == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", c.Rating)
}

func contestsAttended(c *leetcode.ContestStats) string {
	if c == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", c.Attended)
}

func topPercentage(c *leetcode.ContestStats) string {
	if c == nil || c.TopPercentage == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", *c.TopPercentage)
}
