package content

import "time"

// ScreenName is the registry name of the content moderation screen.
const ScreenName = "content"

// MaxNoteLength caps a moderator note.
const MaxNoteLength = 1000

// Moderation statuses.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusReported = "reported"
)

var (
	Statuses     = []string{StatusReported, StatusPending, StatusApproved, StatusRejected}
	ContentTypes = []string{"post", "comment"}
	MediaTypes   = []string{"text", "image", "video"}
)

// --- Content Domain Model ---

// Profile is the author of a reel.
type Profile struct {
	ID      string `json:"id"`
	Online  bool   `json:"online"`
	Picture string `json:"picture"`
	Name    string `json:"name"`
}

// ContentItem is one reel as the backend returns it. Timestamps are kept as
// sent. Moderation fields may be absent, so they are pointers.
type ContentItem struct {
	ID                     string   `json:"id"`
	Profile                *Profile `json:"profile,omitempty"`
	VideoURL               string   `json:"videoURL"`
	Description            string   `json:"description"`
	IsPremiumContent       bool     `json:"isPremiumContent"`
	Duration               float64  `json:"duration"`
	Hashtags               []string `json:"hashtags"`
	MentionedUsers         []string `json:"mentionedUsers"`
	AllowComments          bool     `json:"allowComments"`
	AllowSaveToDevice      bool     `json:"allowSaveToDevice"`
	SaveWithWatermark      bool     `json:"saveWithWatermark"`
	AudienceControlUnder18 bool     `json:"audienceControlUnder18"`
	Likes                  int      `json:"likes"`
	Comments               int      `json:"comments"`
	FavoriteCount          int      `json:"favoriteCount"`
	ShareCount             int      `json:"shareCount"`
	CreatedAt              string   `json:"createdAt"`
	UpdatedAt              string   `json:"updatedAt"`
	Privacy                string   `json:"privacy"`
	IsLikedByUser          bool     `json:"isLikedByUser"`
	ContentType            *string  `json:"contentType"`
	MediaType              *string  `json:"mediaType"`
	Status                 *string  `json:"status"`
	Reports                *int     `json:"reports"`
	FlaggedReason          *string  `json:"flaggedReason"`
	AIScore                *float64 `json:"aiScore"`
}

// AuthorName returns the author's name, "" when the profile is missing.
func (c ContentItem) AuthorName() string {
	if c.Profile == nil {
		return ""
	}
	return c.Profile.Name
}

// Reporter is who filed a report.
type Reporter struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Report is one user report against a reel.
type Report struct {
	ID          string   `json:"id"`
	Reason      string   `json:"reason"`
	Description string   `json:"description"`
	CreatedAt   string   `json:"createdAt"`
	ReportedBy  Reporter `json:"reportedBy"`
}

// Moderator is the admin who wrote a note.
type Moderator struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// Note is a moderator's internal remark on a reel. Notes are never shown to
// the author.
type Note struct {
	ID        string    `json:"id"`
	ContentID string    `json:"contentId"`
	Moderator Moderator `json:"moderator"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}

// --- UseCase Inputs ---

// UpdateInput is a partial update; nil fields are left unchanged.
type UpdateInput struct {
	ID          string
	Description *string
	Status      *string
	ContentType *string
	MediaType   *string
}

// AddNoteInput is a new moderator note on ContentID.
type AddNoteInput struct {
	ContentID string
	Note      string
}

// --- UseCase Outputs ---

type ReportsOutput struct {
	Reports []Report
	Total   int
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
