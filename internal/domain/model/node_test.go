package model

import "testing"

func TestTreeNode_Count(t *testing.T) {
	tests := []struct {
		name      string
		build     func() *TreeNode
		wantDirs  int
		wantFiles int
	}{
		{
			name: "空のルート",
			build: func() *TreeNode {
				return NewRoot()
			},
			wantDirs:  0,
			wantFiles: 0,
		},
		{
			name: "ディレクトリ1つとファイル2つ",
			build: func() *TreeNode {
				root := NewRoot()
				src := root.AddChild(&TreeNode{Name: "src", IsDir: true})
				src.AddChild(&TreeNode{Name: "main.cpp"})
				src.AddChild(&TreeNode{Name: "util.h"})
				return root
			},
			wantDirs:  1,
			wantFiles: 2,
		},
		{
			name: "入れ子のディレクトリ",
			build: func() *TreeNode {
				root := NewRoot()
				a := root.AddChild(&TreeNode{Name: "a", IsDir: true})
				b := a.AddChild(&TreeNode{Name: "b", IsDir: true})
				b.AddChild(&TreeNode{Name: "c.txt"})
				root.AddChild(&TreeNode{Name: "top.md"})
				return root
			},
			wantDirs:  2,
			wantFiles: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dirs, files := tt.build().Count()
			if dirs != tt.wantDirs {
				t.Errorf("Count() dirs = %v, want %v", dirs, tt.wantDirs)
			}
			if files != tt.wantFiles {
				t.Errorf("Count() files = %v, want %v", files, tt.wantFiles)
			}
		})
	}
}

func TestTreeNode_FindChild(t *testing.T) {
	root := NewRoot()
	root.AddChild(&TreeNode{Name: "docs", IsDir: true})
	root.AddChild(&TreeNode{Name: "readme.md"})

	if got := root.FindChild("docs"); got == nil || !got.IsDir {
		t.Errorf("FindChild(docs) = %v, ディレクトリノードが返るべき", got)
	}
	if got := root.FindChild("missing"); got != nil {
		t.Errorf("FindChild(missing) = %v, nil が返るべき", got)
	}
}

func TestTreeFormat_String(t *testing.T) {
	tests := []struct {
		format TreeFormat
		want   string
	}{
		{FormatUnknown, "Unknown"},
		{FormatTreeCommand, "TreeCommand"},
		{FormatIndentation, "Indentation"},
		{FormatPathList, "PathList"},
		{FormatEnhanced, "Enhanced"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("String() = %v, want %v", got, tt.want)
		}
	}
}
