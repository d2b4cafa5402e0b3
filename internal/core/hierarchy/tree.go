package hierarchy

import (
	"bytes"
	"encoding/json"
)

// FlatAssignment 员工 -> 直属上级
type FlatAssignment map[string]string

// Node 层级树中的一个员工节点
type Node struct {
	Name     string
	Children []*Node
}

// Tree 层级树，Root 为空时表示空树
//
// JSON 编码为嵌套对象: {"C": {"B": {"A": {}}}}
type Tree struct {
	Root *Node
}

// Size 返回树中节点总数
func (t *Tree) Size() int {
	if t == nil || t.Root == nil {
		return 0
	}
	return t.Root.size()
}

func (n *Node) size() int {
	total := 1
	for _, child := range n.Children {
		total += child.size()
	}
	return total
}

// MarshalJSON 以 名称 -> 下级 的嵌套对象输出
func (t *Tree) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	var nodes []*Node
	if t != nil && t.Root != nil {
		nodes = []*Node{t.Root}
	}
	if err := writeNodes(&buf, nodes); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeNodes(buf *bytes.Buffer, nodes []*Node) error {
	buf.WriteByte('{')
	for i, node := range nodes {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(node.Name)
		if err != nil {
			return err
		}
		buf.Write(name)
		buf.WriteByte(':')
		if err := writeNodes(buf, node.Children); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}
