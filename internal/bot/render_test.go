package bot

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"listbase/internal/app"
	"listbase/internal/domain"
)

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0", formatCount(0))
	assert.Equal(t, "999", formatCount(999))
	assert.Equal(t, "1.0k", formatCount(1000))
	assert.Equal(t, "1.2k", formatCount(1234))
	assert.Equal(t, "12.5k", formatCount(12500))
}

func TestRenderList_Caps(t *testing.T) {
	var items []domain.Item
	for i := range 12 {
		items = append(items, domain.Item{ID: fmt.Sprintf("i%d", i), Title: fmt.Sprintf("Item %d", i)})
	}
	saved := func(id string) bool { return id == "i0" }

	out := renderList("Results", items, saved)
	lines := strings.Split(out, "\n")

	assert.Equal(t, "Results (12)", lines[0])
	assert.Equal(t, "★ Item 0 [i0]", lines[1])
	assert.Equal(t, "• Item 1 [i1]", lines[2])
	assert.Len(t, lines, 1+maxListed+1)
	assert.Equal(t, "…and 2 more", lines[len(lines)-1])
}

func TestRenderDetail(t *testing.T) {
	item := domain.Item{
		ID: "pro", Title: "CoolAir Pro", Tagline: "Same-day AC repair", CategoryLabel: "AC & Cooling",
		Provider: "Ravi K.", Rating: 4.9, ReviewCount: 1320, Price: "AED 150", Location: "Dubai",
		Tags: []string{"AC", "Repair"}, Description: "Certified technicians.",
	}

	out := renderDetail(item, true)
	assert.True(t, strings.HasPrefix(out, "CoolAir Pro\nSame-day AC repair\n"))
	assert.Contains(t, out, "Category: AC & Cooling")
	assert.Contains(t, out, "By: Ravi K.")
	assert.Contains(t, out, "Rating: 4.9 (1.3k reviews)")
	assert.Contains(t, out, "Price: AED 150")
	assert.Contains(t, out, "Location: Dubai")
	assert.Contains(t, out, "Tags: AC, Repair")
	assert.Contains(t, out, "\n\nCertified technicians.")
	assert.True(t, strings.HasSuffix(out, "★ Saved"))
	assert.NotContains(t, out, "Founded:")
}

func TestRenderNotifications(t *testing.T) {
	views := []app.NotificationView{
		{Notification: domain.Notification{ID: "n1", Title: "Hello", Time: "2m ago", Icon: "🚀"}},
		{Notification: domain.Notification{ID: "n2", Title: "Again", Time: "1h ago", Icon: "👀"}, Read: true},
	}
	out := renderNotifications(views, 1)
	assert.Equal(t, "Notifications (1 unread)\n● 🚀 Hello · 2m ago [n1]\n  👀 Again · 1h ago [n2]", out)
}

func TestRenderQuery(t *testing.T) {
	q := app.NewQuery()
	assert.Equal(t, "Search: - · Category: all · Sort: default · Featured only: false", renderQuery(q))
}
