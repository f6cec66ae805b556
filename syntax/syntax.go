package syntax

// NodeID addresses a node inside a Tree's arena.
type NodeID int32

// NoNode marks an absent node reference.
const NoNode NodeID = -1

// Kind tags the grammar construct a node represents. Only the kinds the
// engine's rules inspect get their own tag; everything else is KindOther
// and still carries its raw grammar type.
type Kind uint8

const (
	KindOther Kind = iota
	KindModule
	KindFunctionDef
	KindCall
	KindName
	KindAttribute
	KindArgumentList
	KindBlock
	KindPass
	KindEllipsis
	KindExpressionStatement
	KindComment
	KindString
	KindError
)

var grammarKinds = map[string]Kind{
	"module":               KindModule,
	"function_definition":  KindFunctionDef,
	"call":                 KindCall,
	"identifier":           KindName,
	"attribute":            KindAttribute,
	"argument_list":        KindArgumentList,
	"block":                KindBlock,
	"pass_statement":       KindPass,
	"ellipsis":             KindEllipsis,
	"expression_statement": KindExpressionStatement,
	"comment":              KindComment,
	"string":               KindString,
	"ERROR":                KindError,
}

func kindOf(grammarType string) Kind {
	return grammarKinds[grammarType]
}

// Point is a zero-based row/column position in the source text.
type Point struct {
	Row    uint32
	Column uint32
}

// Node is a single syntax-tree element. Nodes live in a Tree's arena and
// reference each other by index; Children holds the named grammar nodes
// in document order.
type Node struct {
	Kind  Kind
	Type  string // raw grammar node type
	Field string // grammar field name within the parent, if any

	StartByte uint32
	EndByte   uint32
	Start     Point

	Parent   NodeID
	Children []NodeID

	// synthetic nodes were built by a transform rather than the parser
	// and render from their own parts instead of the source bytes
	synthetic bool
	callee    string

	rewritten bool
}

// Synthetic reports whether the node was built by a transform rather
// than the parser.
func (n *Node) Synthetic() bool {
	return n.synthetic
}
