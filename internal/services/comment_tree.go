package services

import "github.com/bookhive/backend/internal/models"

// BuildCommentTree assembles the flat comment rows of one book summary
// into a forest. The input must be ordered ascending by creation time
// (ID as tie-breaker); children and roots keep that order because nodes
// are appended in input order.
//
// A comment whose parent is not in the input (the parent's subtree was
// deleted underneath it) is promoted to a root rather than dropped.
// Parent references are acyclic by construction (a comment can only
// ever point at a comment that already existed), so no cycle detection
// is needed, and the ID index keeps the whole pass O(n) with no
// recursion on deep reply chains.
func BuildCommentTree(comments []models.Comment) []*models.CommentNode {
	nodes := make(map[uint]*models.CommentNode, len(comments))
	for i := range comments {
		nodes[comments[i].ID] = &models.CommentNode{Comment: comments[i], Replies: []*models.CommentNode{}}
	}

	roots := []*models.CommentNode{}
	for i := range comments {
		node := nodes[comments[i].ID]
		if parentID := comments[i].ParentID; parentID != nil {
			if parent, ok := nodes[*parentID]; ok {
				parent.Replies = append(parent.Replies, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots
}
