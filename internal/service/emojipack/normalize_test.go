package emojipack

import "testing"

func TestExtractPackName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "https sharing link",
			input: "https://t.me/addemoji/foo_bar",
			want:  "foo_bar",
		},
		{
			name:  "http sharing link",
			input: "http://t.me/addemoji/SomePack123",
			want:  "SomePack123",
		},
		{
			name:  "schemeless sharing link",
			input: "t.me/addemoji/adaptive1pack_by_TMojiBot",
			want:  "adaptive1pack_by_TMojiBot",
		},
		{
			name:  "bare name passes through",
			input: "foo_bar",
			want:  "foo_bar",
		},
		{
			name:  "addstickers link is not an emoji link",
			input: "https://t.me/addstickers/foo_bar",
			want:  "https://t.me/addstickers/foo_bar",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "name stops at invalid character",
			input: "https://t.me/addemoji/foo-bar",
			want:  "foo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractPackName(tt.input)
			if got != tt.want {
				t.Errorf("ExtractPackName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
