package tgbot

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const testToken = "123456:TEST"

// newTestAPI spins up a stub Bot API server and an API wired to it. methods
// maps a method name (e.g. "getStickerSet") to its raw JSON response body.
func newTestAPI(t *testing.T, methods map[string]string) (*API, *httptest.Server) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		method := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]

		if method == "getMe" {
			fmt.Fprint(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"test","username":"test_bot"}}`)

			return
		}

		body, ok := methods[method]
		if !ok {
			t.Errorf("unexpected upstream call: %s", method)
			http.NotFound(w, r)

			return
		}

		fmt.Fprint(w, body)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	bot, err := tgbotapi.NewBotAPIWithClient(testToken, srv.URL+"/bot%s/%s", srv.Client())
	if err != nil {
		t.Fatalf("NewBotAPIWithClient() error: %v", err)
	}

	return &API{bot: bot, client: srv.Client(), token: testToken}, srv
}

func TestGetStickerSet(t *testing.T) {
	api, _ := newTestAPI(t, map[string]string{
		"getStickerSet": `{"ok":true,"result":{
			"name":"mypack","title":"My Pack","sticker_type":"custom_emoji",
			"thumbnail":{"file_id":"thumb1","file_unique_id":"uthumb1","width":100,"height":100},
			"stickers":[{
				"file_id":"file1","file_unique_id":"uniq1","width":512,"height":512,
				"is_animated":true,"is_video":false,"emoji":"🔥","set_name":"mypack",
				"custom_emoji_id":"5368324170671202286","needs_repainting":true
			}]}}`,
	})

	set := api.GetStickerSet("mypack")
	if set == nil {
		t.Fatal("GetStickerSet() = nil, want a set")
	}

	if set.Name != "mypack" || set.Title != "My Pack" || set.StickerType != "custom_emoji" {
		t.Errorf("set header = %+v", set)
	}
	if set.Thumbnail == nil || set.Thumbnail.FileID != "thumb1" {
		t.Errorf("Thumbnail = %+v", set.Thumbnail)
	}
	if len(set.Stickers) != 1 {
		t.Fatalf("got %d stickers, want 1", len(set.Stickers))
	}

	sticker := set.Stickers[0]
	if sticker.CustomEmojiID != "5368324170671202286" {
		t.Errorf("CustomEmojiID = %q", sticker.CustomEmojiID)
	}
	if !sticker.IsAnimated || sticker.IsVideo {
		t.Errorf("flags = (%t, %t)", sticker.IsAnimated, sticker.IsVideo)
	}
	if !sticker.NeedsRepainting {
		t.Error("NeedsRepainting = false, want true")
	}
}

func TestGetStickerSet_AbsentOnRejection(t *testing.T) {
	api, _ := newTestAPI(t, map[string]string{
		"getStickerSet": `{"ok":false,"error_code":400,"description":"Bad Request: STICKERSET_INVALID"}`,
	})

	if set := api.GetStickerSet("unknownpack"); set != nil {
		t.Errorf("GetStickerSet() = %+v, want nil on upstream rejection", set)
	}
}

func TestGetStickerSet_AbsentOnTransportFailure(t *testing.T) {
	api, srv := newTestAPI(t, map[string]string{
		"getStickerSet": `{"ok":true,"result":{"name":"mypack"}}`,
	})
	srv.Close()

	if set := api.GetStickerSet("mypack"); set != nil {
		t.Errorf("GetStickerSet() = %+v, want nil on transport failure", set)
	}
}

func TestGetCustomEmojiStickers(t *testing.T) {
	api, _ := newTestAPI(t, map[string]string{
		"getCustomEmojiStickers": `{"ok":true,"result":[
			{"file_id":"file1","file_unique_id":"uniq1","custom_emoji_id":"111"},
			{"file_id":"file2","file_unique_id":"uniq2","custom_emoji_id":"222"}
		]}`,
	})

	stickers := api.GetCustomEmojiStickers([]string{"111", "222"})
	if len(stickers) != 2 {
		t.Fatalf("got %d stickers, want 2", len(stickers))
	}
	if stickers[0].CustomEmojiID != "111" || stickers[1].CustomEmojiID != "222" {
		t.Errorf("stickers = %+v", stickers)
	}
}

func TestGetCustomEmojiStickers_EmptyOnRejection(t *testing.T) {
	api, _ := newTestAPI(t, map[string]string{
		"getCustomEmojiStickers": `{"ok":false,"error_code":400,"description":"Bad Request"}`,
	})

	if stickers := api.GetCustomEmojiStickers([]string{"111"}); len(stickers) != 0 {
		t.Errorf("got %d stickers, want 0", len(stickers))
	}
}

func TestGetFileURL(t *testing.T) {
	api, _ := newTestAPI(t, map[string]string{
		"getFile": `{"ok":true,"result":{"file_id":"file1","file_unique_id":"uniq1","file_path":"stickers/doc.webm"}}`,
	})

	got := api.GetFileURL("file1")
	want := fmt.Sprintf(tgbotapi.FileEndpoint, testToken, "stickers/doc.webm")
	if got != want {
		t.Errorf("GetFileURL() = %q, want %q", got, want)
	}
}

func TestGetFileURL_Absent(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "upstream rejection",
			body: `{"ok":false,"error_code":400,"description":"Bad Request: invalid file_id"}`,
		},
		{
			name: "missing file path",
			body: `{"ok":true,"result":{"file_id":"file1","file_unique_id":"uniq1"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, _ := newTestAPI(t, map[string]string{"getFile": tt.body})

			if got := api.GetFileURL("file1"); got != "" {
				t.Errorf("GetFileURL() = %q, want empty", got)
			}
		})
	}
}
