package domain

// Notification is a fixed, in-app notice. Only ID matters to the read tracker.
type Notification struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Time  string `json:"time"`
	Icon  string `json:"icon"`
}

var notifications = []Notification{
	{ID: "n1", Title: "New startup added in AI", Body: "NeuralDraft just joined: AI writing tools for founders.", Time: "2m ago", Icon: "🚀"},
	{ID: "n2", Title: "Your listing got 12 views", Body: "People are checking out your submission today.", Time: "1h ago", Icon: "👀"},
	{ID: "n3", Title: "Trending in Climate Tech", Body: "Verdant is gaining traction this week.", Time: "3h ago", Icon: "📈"},
	{ID: "n4", Title: "New resource available", Body: "Y Combinator application guide is now live.", Time: "5h ago", Icon: "📚"},
	{ID: "n5", Title: "Community post trending", Body: `"How we grew to 1,000 users" got 47 reactions.`, Time: "1d ago", Icon: "💬"},
	{ID: "n6", Title: "Weekly digest ready", Body: "6 new startups joined Launchbase this week.", Time: "2d ago", Icon: "📧"},
	{ID: "n7", Title: "New service listing", Body: "DesignPro Studio is now accepting projects.", Time: "3d ago", Icon: "🎨"},
}

// Notifications returns a copy of the static notification catalog.
func Notifications() []Notification {
	out := make([]Notification, len(notifications))
	copy(out, notifications)
	return out
}
