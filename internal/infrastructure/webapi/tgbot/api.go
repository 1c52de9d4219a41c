package tgbot

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
)

const defaultTimeout = time.Second * 30

type (
	// StickerSet mirrors the upstream sticker set object. The library's own
	// type predates the custom emoji fields, so the result payload is decoded
	// into local records instead.
	StickerSet struct {
		Name        string     `json:"name"`
		Title       string     `json:"title"`
		StickerType string     `json:"sticker_type"`
		Stickers    []Sticker  `json:"stickers"`
		Thumbnail   *PhotoSize `json:"thumbnail,omitempty"`
	}

	Sticker struct {
		FileID          string     `json:"file_id"`
		FileUniqueID    string     `json:"file_unique_id"`
		Width           int        `json:"width"`
		Height          int        `json:"height"`
		IsAnimated      bool       `json:"is_animated"`
		IsVideo         bool       `json:"is_video"`
		Emoji           string     `json:"emoji,omitempty"`
		SetName         string     `json:"set_name,omitempty"`
		CustomEmojiID   string     `json:"custom_emoji_id,omitempty"`
		NeedsRepainting bool       `json:"needs_repainting,omitempty"`
		Thumbnail       *PhotoSize `json:"thumbnail,omitempty"`
	}

	PhotoSize struct {
		FileID       string `json:"file_id"`
		FileUniqueID string `json:"file_unique_id"`
		Width        int    `json:"width"`
		Height       int    `json:"height"`
	}
)

type API struct {
	bot    *tgbotapi.BotAPI
	client *http.Client
	token  string
}

func New(debug bool, apiKey string) (*API, error) {
	const errMsg = "BotAPI.New"

	client := &http.Client{Timeout: defaultTimeout}

	bot, err := tgbotapi.NewBotAPIWithClient(apiKey, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, errors.Wrap(err, errMsg)
	}

	bot.Debug = debug

	return &API{
		bot:    bot,
		client: client,
		token:  apiKey,
	}, nil
}

// GetStickerSet fetches a sticker set by name. Upstream rejections and
// transport failures are absorbed: the set is simply reported absent.
func (a *API) GetStickerSet(name string) *StickerSet {
	const errMsg = "BotAPI.GetStickerSet"

	resp, err := a.bot.MakeRequest("getStickerSet", tgbotapi.Params{"name": name})
	if err != nil {
		slog.Error(errMsg, slog.String("name", name), slog.Any("err", err))

		return nil
	}

	var set StickerSet

	err = json.Unmarshal(resp.Result, &set)
	if err != nil {
		slog.Error(errMsg, slog.String("name", name), slog.Any("err", err))

		return nil
	}

	return &set
}

// GetCustomEmojiStickers looks up stickers by custom emoji ids. Failures
// degrade to an empty batch.
func (a *API) GetCustomEmojiStickers(emojiIDs []string) []Sticker {
	const errMsg = "BotAPI.GetCustomEmojiStickers"

	params := tgbotapi.Params{}

	err := params.AddInterface("custom_emoji_ids", emojiIDs)
	if err != nil {
		slog.Error(errMsg, slog.Any("err", err))

		return nil
	}

	resp, err := a.bot.MakeRequest("getCustomEmojiStickers", params)
	if err != nil {
		slog.Error(errMsg, slog.Any("err", err))

		return nil
	}

	var stickers []Sticker

	err = json.Unmarshal(resp.Result, &stickers)
	if err != nil {
		slog.Error(errMsg, slog.Any("err", err))

		return nil
	}

	return stickers
}

// GetFileURL resolves a file id into a download URL: a getFile call for the
// path token, then the fixed file endpoint template. Returns an empty string
// when the token lookup fails or the path is missing.
func (a *API) GetFileURL(fileID string) string {
	const errMsg = "BotAPI.GetFileURL"

	file, err := a.bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		slog.Error(errMsg, slog.String("fileID", fileID), slog.Any("err", err))

		return ""
	}

	if file.FilePath == "" {
		return ""
	}

	return file.Link(a.token)
}

func (a *API) Shutdown() {
	a.client.CloseIdleConnections()
}
