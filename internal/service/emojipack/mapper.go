package emojipack

import (
	"github.com/CORBENDALLAS111/Tmoji-Web/internal/domain"
	"github.com/CORBENDALLAS111/Tmoji-Web/internal/infrastructure/webapi/tgbot"
)

const (
	defaultDimension   = 512
	shortNamePrefixLen = 8
	shortNameFallback  = "emoji"
)

// toEmoji converts an upstream sticker record plus its resolved file URL into
// the normalized emoji shape. fileURL may be empty when resolution failed.
//
// ShortName is a display convenience only: pack name (or "emoji") joined with
// the first 8 characters of the unique file id, with no uniqueness guarantee.
func toEmoji(sticker tgbot.Sticker, fileURL string) domain.Emoji {
	fileType := domain.FileTypePNG
	switch {
	case sticker.IsAnimated:
		fileType = domain.FileTypeTGS
	case sticker.IsVideo:
		fileType = domain.FileTypeWEBM
	}

	id := sticker.CustomEmojiID
	if id == "" {
		id = sticker.FileID
	}

	setName := sticker.SetName
	if setName == "" {
		setName = shortNameFallback
	}

	uniquePrefix := sticker.FileUniqueID
	if len(uniquePrefix) > shortNamePrefixLen {
		uniquePrefix = uniquePrefix[:shortNamePrefixLen]
	}

	width := sticker.Width
	if width == 0 {
		width = defaultDimension
	}

	height := sticker.Height
	if height == 0 {
		height = defaultDimension
	}

	return domain.Emoji{
		ID:              id,
		ShortName:       setName + "_" + uniquePrefix,
		Emoji:           sticker.Emoji,
		FileType:        fileType,
		FileURL:         fileURL,
		Width:           width,
		Height:          height,
		IsAnimated:      sticker.IsAnimated,
		IsVideo:         sticker.IsVideo,
		SetName:         sticker.SetName,
		NeedsRepainting: sticker.NeedsRepainting,
	}
}
