package workspace

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// EmptyGraphMessage is returned instead of mermaid text for a bare workspace.
const EmptyGraphMessage = "No items in this workspace yet. Create the first one!"

var graphRelationships = []string{
	"-->|leads to|",
	"-.->|compares with|",
	"==>|results in|",
	"--o|is part of|",
}

var graphLinkColors = []string{"#87CEEB", "#FFD700", "#98FB98", "#FFB6C1", "#F0E68C"}

// DefaultRelationLabel is used for stored relations saved without a label.
const DefaultRelationLabel = "relates to"

// MermaidGraph renders the item hierarchy plus the stored relations as
// mermaid graph text. Parent links draw a random edge style; stored relations
// draw their own label. Colors come from the injected rand so renders stay
// varied.
func MermaidGraph(items []*WorkspaceItem, rels []*WorkspaceItemRelation, rnd *rand.Rand) string {
	if len(items) == 0 {
		return EmptyGraphMessage
	}

	var b strings.Builder
	b.WriteString("graph TD;\n")
	known := make(map[uuid.UUID]struct{}, len(items))
	for _, item := range items {
		known[item.ID] = struct{}{}
		fmt.Fprintf(&b, "    %s[\"%s\"];\n", nodeID(item.ID), escapeTitle(item.Title))
	}

	var links strings.Builder
	linkIndex := 0
	style := func() {
		color := graphLinkColors[rnd.Intn(len(graphLinkColors))]
		fmt.Fprintf(&links, "    linkStyle %d stroke:%s,stroke-width:2px;\n", linkIndex, color)
		linkIndex++
	}

	for _, item := range items {
		if item.ParentID == nil {
			continue
		}
		rel := graphRelationships[rnd.Intn(len(graphRelationships))]
		fmt.Fprintf(&b, "    %s %s %s;\n", nodeID(*item.ParentID), rel, nodeID(item.ID))
		style()
	}

	for _, rel := range rels {
		// A relation can outlive its endpoints; skip dangling edges.
		if _, ok := known[rel.SourceID]; !ok {
			continue
		}
		if _, ok := known[rel.TargetID]; !ok {
			continue
		}
		label := rel.Label
		if label == "" {
			label = DefaultRelationLabel
		}
		fmt.Fprintf(&b, "    %s -->|%s| %s;\n", nodeID(rel.SourceID), escapeTitle(label), nodeID(rel.TargetID))
		style()
	}

	b.WriteString("\n")
	b.WriteString(links.String())
	return b.String()
}

// nodeID strips the uuid dashes; mermaid identifiers must stay alphanumeric.
func nodeID(id uuid.UUID) string {
	return "node_" + strings.ReplaceAll(id.String(), "-", "")
}

func escapeTitle(title string) string {
	escaped := strings.ReplaceAll(title, `"`, "#quot;")
	return strings.ReplaceAll(escaped, "\n", "<br/>")
}
