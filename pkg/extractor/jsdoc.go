package extractor

import (
	"bytes"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"tsurface/extractor-go/pkg/parser"
)

// docBlock is a parsed /** */ documentation comment.
type docBlock struct {
	description string
	params      []paramTag
}

// paramTag is one @param entry. text keeps the raw remainder after the
// keyword so parameters can be matched by name containment.
type paramTag struct {
	text    string
	comment string
}

// docFor finds the documentation block for a declaration: an attached
// comment on the node, then on its parent, then on its grandparent, then a
// backward scan of the raw source for a block ending just before the node.
// Lookup never fails; a missing block is nil.
func docFor(file *parser.File, node *sitter.Node) *docBlock {
	if node == nil {
		return nil
	}
	current := node
	for hop := 0; hop < 3 && current != nil; hop++ {
		if block := attachedDoc(file, current); block != nil {
			return block
		}
		current = current.Parent()
	}
	return scanBackwardDoc(file.Source, node.StartByte())
}

// describe returns the description attached to a declaration, or "".
func describe(file *parser.File, node *sitter.Node) string {
	if block := docFor(file, node); block != nil {
		return block.description
	}
	return ""
}

func (b *docBlock) descriptionText() string {
	if b == nil {
		return ""
	}
	return b.description
}

// paramDescription returns the comment of the first @param tag whose text
// contains the parameter name.
func (b *docBlock) paramDescription(name string) string {
	if b == nil || name == "" {
		return ""
	}
	for _, tag := range b.params {
		if strings.Contains(tag.text, name) {
			return tag.comment
		}
	}
	return ""
}

func attachedDoc(file *parser.File, node *sitter.Node) *docBlock {
	prev := node.PrevSibling()
	if prev == nil || prev.Kind() != "comment" {
		return nil
	}
	text := file.Text(prev)
	if !strings.HasPrefix(text, "/**") {
		return nil
	}
	return parseDocComment(text)
}

// scanBackwardDoc looks for a block comment ending immediately before
// offset, with only whitespace in between. The closer pairs with its own
// opener, and only a /** opener counts: a plain /* */ block yields nothing
// instead of borrowing an earlier doc block's opener.
func scanBackwardDoc(source []byte, offset uint) *docBlock {
	i := int(offset) - 1
	for i >= 0 {
		switch source[i] {
		case ' ', '\t', '\n', '\r':
			i--
			continue
		}
		break
	}
	if i < 2 || source[i] != '/' || source[i-1] != '*' {
		return nil
	}
	open := bytes.LastIndex(source[:i-1], []byte("/*"))
	if open < 0 || !bytes.HasPrefix(source[open:], []byte("/**")) {
		return nil
	}
	return parseDocComment(string(source[open : i+1]))
}

// parseDocComment splits a comment into the leading description and its
// @param tags. The first tag ends the description; unindented lines after
// an @param extend that tag's comment.
func parseDocComment(text string) *docBlock {
	text = strings.TrimPrefix(text, "/**")
	text = strings.TrimSuffix(text, "*/")
	block := &docBlock{}
	var description []string
	inTags := false
	lastWasParam := false
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if strings.HasPrefix(line, "*") {
			line = strings.TrimSpace(line[1:])
		}
		if strings.HasPrefix(line, "@param") {
			inTags, lastWasParam = true, true
			block.params = append(block.params, parseParamTag(strings.TrimSpace(line[len("@param"):])))
			continue
		}
		if strings.HasPrefix(line, "@") {
			inTags, lastWasParam = true, false
			continue
		}
		if inTags {
			if lastWasParam && line != "" && len(block.params) > 0 {
				last := &block.params[len(block.params)-1]
				last.text += " " + line
				if last.comment == "" {
					last.comment = line
				} else {
					last.comment += " " + line
				}
			}
			continue
		}
		description = append(description, line)
	}
	block.description = strings.TrimSpace(strings.Join(description, "\n"))
	return block
}

// parseParamTag splits the remainder after "@param" into the name part and
// the trailing comment. A leading {type} and a dash separator are
// tolerated.
func parseParamTag(rest string) paramTag {
	tag := paramTag{text: rest}
	body := rest
	if strings.HasPrefix(body, "{") {
		if end := strings.Index(body, "}"); end >= 0 {
			body = strings.TrimSpace(body[end+1:])
		}
	}
	space := strings.IndexAny(body, " \t")
	if space < 0 {
		return tag
	}
	comment := strings.TrimSpace(body[space+1:])
	comment = strings.TrimSpace(strings.TrimPrefix(comment, "-"))
	tag.comment = comment
	return tag
}
