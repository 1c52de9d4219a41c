package emojipack

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/CORBENDALLAS111/Tmoji-Web/internal/config"
	"github.com/CORBENDALLAS111/Tmoji-Web/internal/domain"
	"github.com/CORBENDALLAS111/Tmoji-Web/internal/infrastructure/webapi/tgbot"
)

// TelegramAPI is the slice of the upstream client the pipeline needs. All
// operations report failure as an absent/empty result, never as an error.
type TelegramAPI interface {
	GetStickerSet(name string) *tgbot.StickerSet
	GetCustomEmojiStickers(emojiIDs []string) []tgbot.Sticker
	GetFileURL(fileID string) string
}

type Service struct {
	cfg *config.Config
	api TelegramAPI
}

// New builds the resolution pipeline. api may be nil when no bot credential
// is configured; every resolve call then returns domain.ErrNotConfigured
// without touching the network.
func New(cfg *config.Config, api TelegramAPI) *Service {
	return &Service{
		cfg: cfg,
		api: api,
	}
}

func (s *Service) Configured() bool {
	return s.api != nil
}

// ResolvePack resolves a pack from a sharing link or a bare pack name.
func (s *Service) ResolvePack(ctx context.Context, urlOrName string) (*domain.Pack, error) {
	return s.resolveSet(ctx, ExtractPackName(urlOrName), true)
}

// ResolveManifest resolves a pack by its canonical name. The result carries
// no pack thumbnail.
func (s *Service) ResolveManifest(ctx context.Context, packID string) (*domain.Pack, error) {
	return s.resolveSet(ctx, packID, false)
}

// ResolveEmoji resolves a single emoji by its custom emoji id.
func (s *Service) ResolveEmoji(ctx context.Context, emojiID string) (*domain.Emoji, error) {
	if s.api == nil {
		return nil, domain.ErrNotConfigured
	}

	stickers := s.api.GetCustomEmojiStickers([]string{emojiID})
	if len(stickers) == 0 {
		return nil, &domain.NotFoundError{Resource: domain.ResourceEmoji, ID: emojiID}
	}

	sticker := stickers[0]
	emoji := toEmoji(sticker, s.api.GetFileURL(sticker.FileID))

	return &emoji, nil
}

func (s *Service) resolveSet(ctx context.Context, name string, withThumbnail bool) (*domain.Pack, error) {
	if s.api == nil {
		return nil, domain.ErrNotConfigured
	}

	set := s.api.GetStickerSet(name)
	if set == nil {
		return nil, &domain.NotFoundError{Resource: domain.ResourcePack, ID: name}
	}

	pack := &domain.Pack{
		Name:        set.Name,
		Title:       set.Title,
		StickerType: set.StickerType,
		Stickers:    s.resolveStickers(ctx, set.Stickers),
	}

	if pack.Name == "" {
		pack.Name = name
	}
	if pack.Title == "" {
		pack.Title = name
	}
	if pack.StickerType == "" {
		pack.StickerType = domain.PackKindCustomEmoji
	}

	if withThumbnail && set.Thumbnail != nil {
		pack.Thumbnail = s.api.GetFileURL(set.Thumbnail.FileID)
	}

	return pack, nil
}

// resolveStickers fans out the per-sticker file resolution, bounded by the
// configured limit. Results land in their upstream slots, so the output order
// never depends on completion order. Stickers whose resolution fails keep
// their place with an empty file URL.
func (s *Service) resolveStickers(ctx context.Context, stickers []tgbot.Sticker) []domain.Emoji {
	emojis := make([]domain.Emoji, len(stickers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.FanoutLimit)

	for i, sticker := range stickers {
		i, sticker := i, sticker
		g.Go(func() error {
			var fileURL string
			if ctx.Err() == nil {
				fileURL = s.api.GetFileURL(sticker.FileID)
			}

			emojis[i] = toEmoji(sticker, fileURL)

			return nil
		})
	}

	// Workers never return an error: failed resolutions degrade to an empty
	// file URL instead of failing the pack.
	_ = g.Wait()

	return emojis
}
