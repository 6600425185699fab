package discord

// Embed colors by notification type
const (
	// ColorNewApplication is blue, used for freshly submitted applications
	ColorNewApplication = 0x3498DB

	// ColorVotingOpen is purple, used when a voting period opens
	ColorVotingOpen = 0x9B59B6

	// ColorVotingReminder is orange, used for deadline reminders
	ColorVotingReminder = 0xF39C12

	// ColorVotingClosed is gray, used for closures without a decision color
	ColorVotingClosed = 0x95A5A6

	// ColorApproved is green, used for approved applications
	ColorApproved = 0x27AE60

	// ColorRejected is red, used for rejected applications
	ColorRejected = 0xE74C3C

	// ColorCharacterCreated is bright green, used for provisioned members
	ColorCharacterCreated = 0x2ECC71

	// ColorError is dark orange, used for system error alerts
	ColorError = 0xE67E22

	// ColorInfo is blue, used for informational notices and summaries
	ColorInfo = 0x3498DB

	// ColorLootAwarded is gold, used for loot distributions
	ColorLootAwarded = 0xFFD700

	// ColorCharacterNew is cyan, used for plain roster character creation
	ColorCharacterNew = 0x00FFFF

	// ColorCharacterTransfer is blue violet, used for ownership transfers
	ColorCharacterTransfer = 0x8A2BE2

	// ColorMemberStatus is dark orchid, used for activation changes
	ColorMemberStatus = 0x9932CC

	// ColorLinked is green, used for Discord account links
	ColorLinked = 0x00FF00

	// ColorUnlinked is red, used for Discord account unlinks
	ColorUnlinked = 0xFF0000

	// ColorDefault is Discord blurple, the fallback for unknown event types
	ColorDefault = 0x7289DA
)

// EmbedField is one name/value pair inside an embed
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// EmbedFooter is the footer line of an embed
type EmbedFooter struct {
	Text string `json:"text"`
}

// Embed is a Discord rich embed as the webhook API accepts it
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
	Footer      *EmbedFooter `json:"footer,omitempty"`
	// Timestamp is RFC 3339; Discord renders it in the viewer's timezone
	Timestamp string `json:"timestamp,omitempty"`
}

// WebhookPayload is the JSON body posted to a Discord webhook URL
type WebhookPayload struct {
	Content   string  `json:"content,omitempty"`
	Embeds    []Embed `json:"embeds,omitempty"`
	Username  string  `json:"username,omitempty"`
	AvatarURL string  `json:"avatar_url,omitempty"`
}

// DeliveryResult represents the result of a webhook delivery attempt
type DeliveryResult struct {
	// Success indicates whether Discord accepted the message
	Success bool
	// StatusCode is the HTTP status code of the final attempt
	StatusCode int
	// Body is the response body (limited to 4KB)
	Body string
	// Attempts is the number of HTTP requests made, retries included
	Attempts int
}
