package uc

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML renders the tree rooted at n as a YAML document. Every node
// becomes a mapping with its kind, its attributes, its coordinate and its
// children, in that order:
//
//	kind: BinaryOp
//	op: +
//	coord: "1:1"
//	children:
//	  - kind: Constant
//	    ...
func MarshalYAML(n Node) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{yamlNode(n)}}
	return yaml.Marshal(doc)
}

func yamlNode(n Node) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key, value string) {
		m.Content = append(m.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value})
	}

	add("kind", KindOf(n))
	for _, attr := range yamlAttributes(n) {
		add(attr[0], attr[1])
	}
	if c := n.Pos(); c.IsValid() {
		add("coord", fmt.Sprintf("%d:%d", c.Line, c.Column))
	}

	children := Children(n)
	if len(children) > 0 {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, c := range children {
			seq.Content = append(seq.Content, yamlNode(c))
		}
		m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: "children"}, seq)
	}
	return m
}

// yamlAttributes returns the named non-child fields of n.
func yamlAttributes(n Node) [][2]string {
	switch n := n.(type) {
	case *Decl:
		if n.Name != nil {
			return [][2]string{{"name", n.Name.Name}}
		}
	case *VarDecl:
		if n.DeclName != nil {
			return [][2]string{{"declname", n.DeclName.Name}}
		}
	case *Type:
		return [][2]string{{"name", n.Name}}
	case *Ident:
		return [][2]string{{"name", n.Name}}
	case *Constant:
		return [][2]string{{"type", n.Type}, {"value", n.Value}}
	case *BinaryOp:
		return [][2]string{{"op", n.Op}}
	case *UnaryOp:
		return [][2]string{{"op", n.Op}}
	case *Assignment:
		return [][2]string{{"op", n.Op}}
	}
	return nil
}
