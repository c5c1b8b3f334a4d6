package node

//go:generate go-union --pointer node.go

import (
	"github.com/sirkon/go-union/union"
)

type unionNode struct {
	Value       string
	OperatorSum struct {
		Left      *unionNode
		Right     *unionNode
		Appendix  map[string]*unionNode
		Payload   []*unionNode
		Activator func(node *unionNode)
	}
}

// Node an interface to limit available implementations to emulate discriminated union type
type Node interface {
	isNode()
}

// Value branch of Node
type Value string

func (Value) isNode() {}

// OperatorSum branch of Node
type OperatorSum struct {
	Left      Node
	Right     Node
	Appendix  map[string]Node
	Payload   []Node
	Activator func(node Node)
}

func (*OperatorSum) isNode() {}

// NodeConstructor constructs Node values, one method per branch
type NodeConstructor struct {
	*union.Constructor
}

// NodeUnion constructor of Node union
var NodeUnion = NodeConstructor{
	Constructor: union.Create("Node").
		Of("Value", func(args ...interface{}) (interface{}, error) {
			a := union.ArgsOf("Node", "Value", args)
			if err := a.Expect(1); err != nil {
				return nil, err
			}
			p0, err := union.Arg[string](a, 0)
			if err != nil {
				return nil, err
			}
			return Value(p0), nil
		}).
		Of("OperatorSum", func(args ...interface{}) (interface{}, error) {
			a := union.ArgsOf("Node", "OperatorSum", args)
			if err := a.Expect(5); err != nil {
				return nil, err
			}
			p0, err := union.Arg[Node](a, 0)
			if err != nil {
				return nil, err
			}
			p1, err := union.Arg[Node](a, 1)
			if err != nil {
				return nil, err
			}
			p2, err := union.Arg[map[string]Node](a, 2)
			if err != nil {
				return nil, err
			}
			p3, err := union.Arg[[]Node](a, 3)
			if err != nil {
				return nil, err
			}
			p4, err := union.Arg[func(node Node)](a, 4)
			if err != nil {
				return nil, err
			}
			return &OperatorSum{Left: p0, Right: p1, Appendix: p2, Payload: p3, Activator: p4}, nil
		}).
		Render(),
}

// Value constructs Value branch of Node
func (c NodeConstructor) Value(value string) union.Value {
	return union.Must(c.Constructor.Invoke("Value", value))
}

// OperatorSum constructs OperatorSum branch of Node
func (c NodeConstructor) OperatorSum(left Node, right Node, appendix map[string]Node, payload []Node, activator func(node Node)) union.Value {
	return union.Must(c.Constructor.Invoke("OperatorSum", left, right, appendix, payload, activator))
}

// AsNode extracts Node branch out of a value constructed by NodeUnion
func AsNode(v union.Value) (Node, bool) {
	if v.Union() != "Node" {
		return nil, false
	}
	b, ok := v.Payload().(Node)
	return b, ok
}
