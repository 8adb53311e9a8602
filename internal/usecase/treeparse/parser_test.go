package treeparse

import (
	"strings"
	"testing"

	"ClipForge/internal/domain/model"
)

func TestParseTreeCommand(t *testing.T) {
	text := strings.Join([]string{
		"project/",
		"├── main.go",
		"├── docs/",
		"│   ├── index.md",
		"│   └── guide.md",
		"└── util.go",
	}, "\n")

	root := ParseTreeCommand(text)
	dirs, files := root.Count()
	if dirs != 2 || files != 4 {
		t.Fatalf("Count() = (%v, %v), want (2, 4)", dirs, files)
	}

	project := root.FindChild("project")
	if project == nil || !project.IsDir {
		t.Fatal("project ディレクトリが見つからない")
	}
	docs := project.FindChild("docs")
	if docs == nil || !docs.IsDir {
		t.Fatal("docs ディレクトリが見つからない")
	}
	if docs.FindChild("index.md") == nil || docs.FindChild("guide.md") == nil {
		t.Error("docs 配下のファイルが見つからない")
	}
	if util := project.FindChild("util.go"); util == nil || util.IsDir {
		t.Error("util.go は project 直下のファイルであるべき")
	}
}

func TestParseTreeCommand_空行とCRLFを許容する(t *testing.T) {
	text := "project/\r\n\r\n├── main.go\r\n"
	root := ParseTreeCommand(text)
	dirs, files := root.Count()
	if dirs != 1 || files != 1 {
		t.Errorf("Count() = (%v, %v), want (1, 1)", dirs, files)
	}
}

func TestParseIndentation(t *testing.T) {
	text := strings.Join([]string{
		"src/",
		"    main.cpp",
		"    util.h",
	}, "\n")

	root := ParseIndentation(text)
	dirs, files := root.Count()
	if dirs != 1 || files != 2 {
		t.Fatalf("Count() = (%v, %v), want (1, 2)", dirs, files)
	}

	src := root.FindChild("src")
	if src == nil || !src.IsDir {
		t.Fatal("src ディレクトリが見つからない")
	}
	if src.FindChild("main.cpp") == nil || src.FindChild("util.h") == nil {
		t.Error("src 配下のファイルが見つからない")
	}
}

func TestParseIndentation_タブと入れ子(t *testing.T) {
	text := strings.Join([]string{
		"app/",
		"\tsrc/",
		"\t\tmain.go",
		"\tREADME.md",
	}, "\n")

	root := ParseIndentation(text)
	dirs, files := root.Count()
	if dirs != 2 || files != 2 {
		t.Fatalf("Count() = (%v, %v), want (2, 2)", dirs, files)
	}

	app := root.FindChild("app")
	if app == nil {
		t.Fatal("app ディレクトリが見つからない")
	}
	src := app.FindChild("src")
	if src == nil || src.FindChild("main.go") == nil {
		t.Error("app/src/main.go が見つからない")
	}
	if readme := app.FindChild("README.md"); readme == nil || readme.IsDir {
		t.Error("README.md は app 直下のファイルであるべき")
	}
}

func TestParsePathList(t *testing.T) {
	text := strings.Join([]string{
		"src/main.cpp",
		"src/util.h",
		"docs/",
		"README.md",
		"bin/tool",
	}, "\n")

	root := ParsePathList(text)
	dirs, files := root.Count()
	// bin/tool の tool は拡張子を持たないためディレクトリ扱い
	if dirs != 4 || files != 3 {
		t.Fatalf("Count() = (%v, %v), want (4, 3)", dirs, files)
	}

	src := root.FindChild("src")
	if src == nil || len(src.Children) != 2 {
		t.Fatalf("src の子が重複なく2つであるべき: %+v", src)
	}
	if docs := root.FindChild("docs"); docs == nil || !docs.IsDir {
		t.Error("docs ディレクトリが見つからない")
	}
	if readme := root.FindChild("README.md"); readme == nil || readme.IsDir {
		t.Error("README.md はファイルであるべき")
	}
	bin := root.FindChild("bin")
	if bin == nil || bin.FindChild("tool") == nil || !bin.FindChild("tool").IsDir {
		t.Error("bin/tool はディレクトリ扱いであるべき")
	}
}

func TestParsePathList_バックスラッシュ区切り(t *testing.T) {
	text := "src\\main.cpp\nsrc\\sub\\util.h"
	root := ParsePathList(text)
	dirs, files := root.Count()
	if dirs != 2 || files != 2 {
		t.Fatalf("Count() = (%v, %v), want (2, 2)", dirs, files)
	}
}

func TestParseEnhanced(t *testing.T) {
	text := strings.Join([]string{
		"app/",
		"    main.py",
		"    lib/",
		"        util.py",
		"---START:main.py---",
		"print(\"hi\")",
		"---END:main.py---",
		"---START:util.py---",
		"x = 1",
		"y = 2",
		"---END:util.py---",
	}, "\n")

	root := ParseEnhanced(text)
	dirs, files := root.Count()
	if dirs != 2 || files != 2 {
		t.Fatalf("Count() = (%v, %v), want (2, 2)", dirs, files)
	}

	app := root.FindChild("app")
	if app == nil {
		t.Fatal("app ディレクトリが見つからない")
	}
	main := app.FindChild("main.py")
	if main == nil || main.Content != "print(\"hi\")" {
		t.Errorf("main.py の内容が結び付いていない: %+v", main)
	}
	util := app.FindChild("lib").FindChild("util.py")
	if util == nil || util.Content != "x = 1\ny = 2" {
		t.Errorf("util.py の内容が結び付いていない: %+v", util)
	}
}

func TestParseEnhanced_閉じられていないブロックは無視される(t *testing.T) {
	text := strings.Join([]string{
		"app/",
		"    main.py",
		"---START:main.py---",
		"print(\"hi\")",
	}, "\n")

	root := ParseEnhanced(text)
	main := root.FindChild("app").FindChild("main.py")
	if main == nil {
		t.Fatal("main.py が見つからない")
	}
	if main.Content != "" {
		t.Errorf("Content = %q, want 空", main.Content)
	}
}

func TestParse_Unknownはnil(t *testing.T) {
	if got := Parse(model.FormatUnknown, "notes.txt"); got != nil {
		t.Errorf("Parse(Unknown) = %v, want nil", got)
	}
}
