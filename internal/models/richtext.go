package models

// RichNode is one node of the CMS rich-content tree used for blog post bodies
// and long product descriptions. Paragraph, heading and list nodes nest child
// nodes; leaf text nodes carry the actual text run.
type RichNode struct {
	Type  string     `json:"type"`
	Text  string     `json:"text,omitempty"`
	Nodes []RichNode `json:"nodes,omitempty"`
}

// Rich node types observed in upstream payloads. Unknown types are walked
// like containers so new upstream node kinds degrade to their text content.
const (
	RichNodeText      = "text"
	RichNodeParagraph = "paragraph"
	RichNodeHeading   = "heading"
	RichNodeList      = "list"
	RichNodeListItem  = "listItem"
)
