package casts

// WebhookPayload is the envelope Neynar posts to the webhook endpoint
type WebhookPayload struct {
	Data      WebhookData `json:"data"`
	CreatedAt int64       `json:"created_at"`
}

// WebhookData wraps one event; only cast.created events carry a cast object
// this service acts on.
type WebhookData struct {
	Type   string `json:"type"`
	Object Cast   `json:"object"`
}

// Cast is the subset of Neynar's cast object the pipeline reads
type Cast struct {
	Hash       string    `json:"hash"`
	ThreadHash string    `json:"thread_hash"`
	ParentHash *string   `json:"parent_hash"`
	Author     Author    `json:"author"`
	Text       string    `json:"text"`
	Timestamp  string    `json:"timestamp"`
	Channel    *Channel  `json:"channel"`
	Reactions  Reactions `json:"reactions"`
	Replies    Replies   `json:"replies"`
}

// Reactions carries the cast's engagement counters
type Reactions struct {
	LikesCount   int `json:"likes_count"`
	RecastsCount int `json:"recasts_count"`
}

// Replies carries the cast's reply count
type Replies struct {
	Count int `json:"count"`
}

// Author identifies the cast's creator
type Author struct {
	FID         int64  `json:"fid"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

// Channel identifies where the cast was posted
type Channel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ChannelID returns the channel id or empty for channel-less casts
func (c *Cast) ChannelID() string {
	if c.Channel == nil {
		return ""
	}
	return c.Channel.ID
}

// ChannelName returns the channel name or empty for channel-less casts
func (c *Cast) ChannelName() string {
	if c.Channel == nil {
		return ""
	}
	return c.Channel.Name
}
