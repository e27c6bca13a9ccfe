package node

// Walk visits n and its descendants depth-first in document order.
// Returning false from fn skips the children of the visited node.
// Root nodes are not visited.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		Walk(child, fn)
	}
}

// CollectRootNodes returns every root node attached to n or to any of its
// descendants, including root nodes attached inside other root nodes.
//
// The walk is post-order: a node's children are collected before its own
// root nodes, and a root node's nested overlays come before the root node
// itself. Nodes are deduplicated by ID, keeping the first discovery.
func CollectRootNodes(n *Node) []*Node {
	var out []*Node
	seen := make(map[string]struct{})
	collectRootNodes(n, seen, &out)
	return out
}

func collectRootNodes(n *Node, seen map[string]struct{}, out *[]*Node) {
	if n == nil {
		return
	}
	for _, child := range n.Children {
		collectRootNodes(child, seen, out)
	}
	for _, r := range n.rootNodes {
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		collectRootNodes(r, seen, out)
		*out = append(*out, r)
	}
}

// DedupByID removes nodes whose ID was already seen, keeping the first.
func DedupByID(nodes []*Node) []*Node {
	seen := make(map[string]struct{}, len(nodes))
	out := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if _, ok := seen[n.ID]; ok {
			continue
		}
		seen[n.ID] = struct{}{}
		out = append(out, n)
	}
	return out
}

// CollectAttr returns the distinct values of attribute key found in the
// subtrees of roots, in document order.
func CollectAttr(key string, roots ...*Node) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, root := range roots {
		Walk(root, func(n *Node) bool {
			if v, ok := n.attrs[key]; ok {
				if _, dup := seen[v]; !dup {
					seen[v] = struct{}{}
					out = append(out, v)
				}
			}
			return true
		})
	}
	return out
}
