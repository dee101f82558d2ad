package content

import (
	"slices"
	"strings"
)

type renderFunc func(sb *strings.Builder, body string)

// renderers maps each known type to its HTML writer. Types missing here
// render nothing.
var renderers = map[Type]renderFunc{
	TypeParagraph:      wrap("p"),
	TypeHeading2:       wrap("h2"),
	TypeHeading3:       wrap("h3"),
	TypeBold:           wrap("strong"),
	TypeLink:           renderLink,
	TypeDefinitionList: renderDefinitionList,
}

// Compile renders the collection to HTML in ascending id order.
// Block content is inserted verbatim. Malformed link or list content and
// unknown types are skipped, never reported.
func Compile(c *Collection) string {
	if c == nil || len(c.Items) == 0 {
		return ""
	}

	blocks := slices.Clone(c.Items)
	slices.SortStableFunc(blocks, byID)

	var sb strings.Builder
	for _, b := range blocks {
		if render, ok := renderers[b.Type]; ok {
			render(&sb, b.Content)
		}
	}
	return sb.String()
}

func wrap(tag string) renderFunc {
	return func(sb *strings.Builder, body string) {
		sb.WriteString("<" + tag + ">")
		sb.WriteString(body)
		sb.WriteString("</" + tag + ">")
	}
}

// renderLink expects "prefix|url|text"; the prefix is ignored.
func renderLink(sb *strings.Builder, body string) {
	if strings.Count(body, "|") != 2 {
		return
	}
	parts := strings.Split(body, "|")
	sb.WriteString("<a class='in-content' href='")
	sb.WriteString(parts[1])
	sb.WriteString("'>")
	sb.WriteString(parts[2])
	sb.WriteString("</a>")
}

// renderDefinitionList expects "term|definition*term|definition...".
// Entries without exactly one "|" are dropped; the list is emitted even
// when nothing survives.
func renderDefinitionList(sb *strings.Builder, body string) {
	sb.WriteString(`<ul class="word-list">`)
	for _, pair := range strings.Split(body, "*") {
		if pair == "" {
			continue
		}
		parts := strings.Split(pair, "|")
		if len(parts) != 2 {
			continue
		}
		sb.WriteString("<li>")
		sb.WriteString(strings.TrimSpace(parts[0]))
		sb.WriteString(` - <span class="meaning">`)
		sb.WriteString(strings.TrimSpace(parts[1]))
		sb.WriteString("</span></li>\n")
	}
	sb.WriteString("</ul>")
}
