package treeparse

import (
	"testing"

	"ClipForge/internal/domain/model"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.TreeFormat
	}{
		{
			name: "罫線文字を含むと TreeCommand",
			text: "project/\n├── main.go\n└── util.go",
			want: model.FormatTreeCommand,
		},
		{
			name: "縦線だけでも TreeCommand",
			text: "│   main.go",
			want: model.FormatTreeCommand,
		},
		{
			name: "内容ブロックマーカーを含むと Enhanced",
			text: "main.py\n---START:main.py---\nprint('hi')\n---END:main.py---",
			want: model.FormatEnhanced,
		},
		{
			name: "区切り文字を含みインデントがないと PathList",
			text: "src/main.cpp\nsrc/util.h\ndocs/readme.md",
			want: model.FormatPathList,
		},
		{
			name: "バックスラッシュ区切りも PathList",
			text: `src\main.cpp`,
			want: model.FormatPathList,
		},
		{
			name: "インデントされた行があると Indentation",
			text: "src/\n    main.cpp\n    util.h",
			want: model.FormatIndentation,
		},
		{
			name: "タブインデントも Indentation",
			text: "src\n\tmain.cpp",
			want: model.FormatIndentation,
		},
		{
			name: "平坦なテキストは Unknown",
			text: "notes.txt",
			want: model.FormatUnknown,
		},
		{
			name: "空行だけのテキストは Unknown",
			text: "\n\n",
			want: model.FormatUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFormat(tt.text); got != tt.want {
				t.Errorf("DetectFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}
