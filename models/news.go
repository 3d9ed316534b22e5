package models

// ═══════════════════════════════════════════════════════════
// GNews proxy
// ═══════════════════════════════════════════════════════════

// NewsArticle mirrors one GNews article.
type NewsArticle struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	URL         string     `json:"url"`
	Image       string     `json:"image,omitempty"`
	PublishedAt string     `json:"publishedAt,omitempty"`
	Source      NewsSource `json:"source"`
}

type NewsSource struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// NewsResponse is recent coverage of one member: an exact-phrase search
// for the full name over the last 30 days.
type NewsResponse struct {
	BioguideID    string        `json:"bioguide_id"`
	Query         string        `json:"query"`
	TotalArticles int           `json:"total_articles"`
	Articles      []NewsArticle `json:"articles"`
}

// ═══════════════════════════════════════════════════════════
// YouTube proxy
// ═══════════════════════════════════════════════════════════

type Video struct {
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	ChannelTitle string `json:"channel_title,omitempty"`
	PublishedAt  string `json:"published_at,omitempty"`
	Thumbnail    string `json:"thumbnail,omitempty"`
	URL          string `json:"url"`
}

type VideosResponse struct {
	BioguideID string  `json:"bioguide_id"`
	Query      string  `json:"query"`
	Videos     []Video `json:"videos"`
}
