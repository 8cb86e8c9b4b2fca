package workspace

import (
	"sort"

	"github.com/google/uuid"
)

type TreeNode struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Content     string      `json:"content,omitempty"`
	Order       int         `json:"order"`
	UserContent string      `json:"user_content,omitempty"`
	Children    []*TreeNode `json:"children"`
}

// BuildTree assembles the flat item list into a forest. Items whose parent is
// missing from the list are promoted to roots; siblings are sorted by order
// at every level.
func BuildTree(items []*WorkspaceItem) []*TreeNode {
	nodes := make(map[uuid.UUID]*TreeNode, len(items))
	for _, item := range items {
		nodes[item.ID] = &TreeNode{
			ID:          item.ID,
			Title:       item.Title,
			Content:     item.Content,
			Order:       item.Order,
			UserContent: item.UserContent,
			Children:    []*TreeNode{},
		}
	}

	roots := []*TreeNode{}
	for _, item := range items {
		node := nodes[item.ID]
		if item.ParentID != nil {
			if parent, ok := nodes[*item.ParentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}

	for _, node := range nodes {
		sortByOrder(node.Children)
	}
	sortByOrder(roots)
	return roots
}

func sortByOrder(nodes []*TreeNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Order < nodes[j].Order
	})
}
