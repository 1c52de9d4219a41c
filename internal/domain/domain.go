package domain

// File formats served by the upstream API.
const (
	FileTypePNG  = "png"
	FileTypeTGS  = "tgs"
	FileTypeWEBM = "webm"
	FileTypeGIF  = "gif"
)

// Sticker set kinds reported by the upstream API.
const (
	PackKindRegular     = "regular"
	PackKindMask        = "mask"
	PackKindCustomEmoji = "custom_emoji"
)

type (
	// Emoji is the normalized representation of a single custom emoji.
	// Instances are built fresh per request and never mutated afterwards.
	Emoji struct {
		ID              string `json:"id"`
		ShortName       string `json:"short_name"`
		Emoji           string `json:"emoji,omitempty"`
		FileType        string `json:"file_type"`
		FileURL         string `json:"file_url,omitempty"`
		ThumbnailURL    string `json:"thumbnail_url,omitempty"`
		Width           int    `json:"width"`
		Height          int    `json:"height"`
		IsAnimated      bool   `json:"is_animated"`
		IsVideo         bool   `json:"is_video"`
		SetName         string `json:"set_name,omitempty"`
		NeedsRepainting bool   `json:"needs_repainting"`
	}

	// Pack is a resolved emoji pack. Stickers keep the upstream order.
	Pack struct {
		Name        string  `json:"name"`
		Title       string  `json:"title"`
		StickerType string  `json:"sticker_type"`
		Stickers    []Emoji `json:"stickers"`
		Thumbnail   string  `json:"thumbnail,omitempty"`
	}
)
