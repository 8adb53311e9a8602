// package model はドメインモデルを定義します
package model

// TreeFormat はクリップボードテキストが表すツリー表記の種類を表します
type TreeFormat int

const (
	// FormatUnknown はツリー表記として認識できないことを示します
	FormatUnknown TreeFormat = iota
	// FormatTreeCommand は tree コマンド風の罫線表記を示します
	FormatTreeCommand
	// FormatIndentation はインデントによる階層表記を示します
	FormatIndentation
	// FormatPathList は相対パスの一覧による表記を示します
	FormatPathList
	// FormatEnhanced はインデント表記にファイル内容ブロックを加えた表記を示します
	FormatEnhanced
)

// String は TreeFormat の表示名を返します
func (f TreeFormat) String() string {
	switch f {
	case FormatTreeCommand:
		return "TreeCommand"
	case FormatIndentation:
		return "Indentation"
	case FormatPathList:
		return "PathList"
	case FormatEnhanced:
		return "Enhanced"
	default:
		return "Unknown"
	}
}

// TreeNode は作成対象となるファイルまたはディレクトリの1要素を表します。
// IsDir が false のノードの Children は常に空です。
type TreeNode struct {
	// Name は要素名（パス区切りを含まない葉の名前）を表します
	Name string
	// IsDir はディレクトリであるかどうかを示します
	IsDir bool
	// Content はファイルの内容を表します（空ならば空ファイルを作成）
	Content string
	// Children は子ノードの順序付きリストを表します
	Children []*TreeNode
}

// NewRoot は実体化されない合成ルートノードを作成します
func NewRoot() *TreeNode {
	return &TreeNode{Name: "root", IsDir: true}
}

// AddChild は子ノードを末尾に追加し、追加したノードを返します
func (n *TreeNode) AddChild(child *TreeNode) *TreeNode {
	n.Children = append(n.Children, child)
	return child
}

// FindChild は同名の子ノードを探します（見つからなければ nil）
func (n *TreeNode) FindChild(name string) *TreeNode {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Count はルートを除いたディレクトリ数とファイル数を数えます
func (n *TreeNode) Count() (dirs, files int) {
	for _, c := range n.Children {
		if c.IsDir {
			dirs++
			d, f := c.Count()
			dirs += d
			files += f
		} else {
			files++
		}
	}
	return dirs, files
}
