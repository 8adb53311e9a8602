package treeparse

import (
	"path/filepath"
	"strings"

	"ClipForge/internal/domain/model"
)

// treeColumnWidth は罫線表記における1階層分の文字数です
const treeColumnWidth = 4

// Parse は判定済みの表記でテキストを解析し、合成ルートを返します。
// FormatUnknown に対しては nil を返します。
func Parse(format model.TreeFormat, text string) *model.TreeNode {
	switch format {
	case model.FormatTreeCommand:
		return ParseTreeCommand(text)
	case model.FormatIndentation:
		return ParseIndentation(text)
	case model.FormatPathList:
		return ParsePathList(text)
	case model.FormatEnhanced:
		return ParseEnhanced(text)
	default:
		return nil
	}
}

// ParseTreeCommand は tree コマンド風の罫線表記を解析します。
// 各行の深さは名前より前の罫線・空白を4文字単位で数えて決定し、
// 先祖スタックを深さ+1 まで巻き戻してから子として接続します。
func ParseTreeCommand(text string) *model.TreeNode {
	root := model.NewRoot()
	stack := []*model.TreeNode{root}

	for _, line := range splitLines(text) {
		runes := []rune(line)
		idx := 0
		for idx < len(runes) && isTreeDrawing(runes[idx]) {
			idx++
		}
		if idx >= len(runes) {
			continue
		}

		depth := idx / treeColumnWidth
		name := strings.TrimSpace(string(runes[idx:]))
		if name == "" {
			continue
		}
		isDir := strings.HasSuffix(name, "/")
		name = strings.TrimSuffix(name, "/")

		if len(stack) > depth+1 {
			stack = stack[:depth+1]
		}
		parent := stack[len(stack)-1]
		node := parent.AddChild(&model.TreeNode{Name: name, IsDir: isDir})
		if isDir {
			stack = append(stack, node)
		}
	}
	return root
}

func isTreeDrawing(r rune) bool {
	switch r {
	case '│', '├', '└', '─', ' ':
		return true
	}
	return false
}

// indentLevel は解析中に借用するノードとそのインデント幅の組です
type indentLevel struct {
	node  *model.TreeNode
	width int
}

// ParseIndentation はインデントによる階層表記を解析します。
// 深さは文字数で測ります（空白=1、タブ=4）。末尾の "/" がディレクトリを示します。
func ParseIndentation(text string) *model.TreeNode {
	root := model.NewRoot()
	stack := []indentLevel{{node: root, width: -1}}

	for _, line := range splitLines(text) {
		width := indentWidth(line)
		name := strings.TrimSpace(line)
		isDir := strings.HasSuffix(name, "/")
		name = strings.TrimSuffix(name, "/")
		if name == "" {
			continue
		}

		for len(stack) > 1 && stack[len(stack)-1].width >= width {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1].node
		node := parent.AddChild(&model.TreeNode{Name: name, IsDir: isDir})
		if isDir {
			stack = append(stack, indentLevel{node: node, width: width})
		}
	}
	return root
}

func indentWidth(line string) int {
	width := 0
	for _, r := range line {
		switch r {
		case ' ':
			width++
		case '\t':
			width += 4
		default:
			return width
		}
	}
	return width
}

// ParsePathList は1行1パスの相対パス一覧を解析します。
// 中間要素はディレクトリとして作成・再利用し、最終要素は
// 行末が "/" か拡張子を持たない場合にディレクトリとみなします。
func ParsePathList(text string) *model.TreeNode {
	root := model.NewRoot()

	for _, line := range splitLines(text) {
		line = strings.TrimSpace(line)
		line = strings.ReplaceAll(line, `\`, "/")
		endsWithSlash := strings.HasSuffix(line, "/")
		line = strings.Trim(line, "/")
		if line == "" {
			continue
		}

		parts := strings.Split(line, "/")
		current := root
		for i, part := range parts {
			if part == "" {
				continue
			}
			last := i == len(parts)-1
			if !last {
				current = ensureDirectory(current, part)
				continue
			}

			isDir := endsWithSlash || filepath.Ext(part) == ""
			if isDir {
				ensureDirectory(current, part)
			} else if current.FindChild(part) == nil {
				current.AddChild(&model.TreeNode{Name: part})
			}
		}
	}
	return root
}

// ensureDirectory は同名のディレクトリ子ノードを探し、なければ作成します
func ensureDirectory(parent *model.TreeNode, name string) *model.TreeNode {
	if existing := parent.FindChild(name); existing != nil && existing.IsDir {
		return existing
	}
	return parent.AddChild(&model.TreeNode{Name: name, IsDir: true})
}

// contentBlock は ---START:/---END: マーカーで囲まれたファイル内容です
type contentBlock struct {
	name    string
	content string
}

// ParseEnhanced はインデント表記に内容ブロックを加えた表記を解析します。
// 内容ブロックを除いた行からインデント解析で骨格を構築し、
// 各ブロックの内容を名前が一致する最初のファイルノード（深さ優先）へ結び付けます。
func ParseEnhanced(text string) *model.TreeNode {
	skeleton, blocks := extractContentBlocks(text)
	root := ParseIndentation(skeleton)
	for _, block := range blocks {
		if node := findFileByName(root, block.name); node != nil {
			node.Content = block.content
		}
	}
	return root
}

// extractContentBlocks はマーカーで囲まれた範囲を切り出し、
// 残りの行（骨格）とブロックの一覧を返します
func extractContentBlocks(text string) (skeleton string, blocks []contentBlock) {
	var skeletonLines []string
	lines := strings.Split(text, "\n")

	for i := 0; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], "\r")
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, startMarkerPrefix) || !strings.HasSuffix(trimmed, markerSuffix) {
			skeletonLines = append(skeletonLines, line)
			continue
		}

		name := strings.TrimSuffix(strings.TrimPrefix(trimmed, startMarkerPrefix), markerSuffix)
		endMarker := endMarkerPrefix + name + markerSuffix
		var body []string
		closed := false
		for i++; i < len(lines); i++ {
			bodyLine := strings.TrimRight(lines[i], "\r")
			if strings.TrimSpace(bodyLine) == endMarker {
				closed = true
				break
			}
			body = append(body, bodyLine)
		}
		if closed {
			blocks = append(blocks, contentBlock{name: name, content: strings.Join(body, "\n")})
		}
	}
	return strings.Join(skeletonLines, "\n"), blocks
}

// findFileByName は深さ優先で名前が一致する最初のファイルノードを探します
func findFileByName(node *model.TreeNode, name string) *model.TreeNode {
	for _, child := range node.Children {
		if !child.IsDir && child.Name == name {
			return child
		}
		if child.IsDir {
			if found := findFileByName(child, name); found != nil {
				return found
			}
		}
	}
	return nil
}

// splitLines は行分割し、行末の改行コードを除いた非空行のみを返します
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
