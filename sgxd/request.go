// SPDX-License-Identifier: EPL-2.0

package sgxd

import (
	"errors"
	"fmt"

	"github.com/ik5/sgxd2sf2/chunk"
)

// MaxRequestDepth bounds the nesting of REQUEST groups.
const MaxRequestDepth = 16

// RequestKind selects which fields of a RequestNode are meaningful.
type RequestKind uint8

const (
	RequestDelay   RequestKind = iota // Delay
	RequestMessage                    // Status, Args
	RequestOpaque                     // Status (the op code), Args (the payload)
	RequestGroup                      // Children
	RequestEnd
)

func (k RequestKind) String() string {
	switch k {
	case RequestDelay:
		return "delay"
	case RequestMessage:
		return "message"
	case RequestOpaque:
		return "opaque"
	case RequestGroup:
		return "group"
	case RequestEnd:
		return "end"
	default:
		return "unknown"
	}
}

// RequestNode is one element of REQUEST bytecode.
type RequestNode struct {
	Kind     RequestKind
	Offset   int
	Delay    int
	Status   byte
	Args     []byte
	Children []RequestNode
}

const (
	opOpaqueFirst = 0xF0
	opOpaqueLast  = 0xFD
	opGroup       = 0xFE
	opEnd         = 0xFF
)

// ParseRequest decodes REQUEST bytecode. Parsing stops at the end marker or at
// the end of data; an element cut short by the end of data is an error
// wrapping ErrTruncated. Only the structure is modeled: opaque ops keep their
// payload bytes uninterpreted.
func ParseRequest(data []byte) ([]RequestNode, error) {
	r := chunk.NewReader(data, nil)

	nodes, _, err := parseRequestNodes(r, 0, -1)

	return nodes, err
}

// parseRequestNodes reads count nodes, or until the end marker or end of data
// when count is negative. ended reports that the end marker was consumed.
func parseRequestNodes(r *chunk.Reader, depth, count int) (nodes []RequestNode, ended bool, err error) {
	if depth > MaxRequestDepth {
		return nil, false, fmt.Errorf("%w at 0x%x", ErrRequestDepth, r.Pos())
	}

	for count < 0 || len(nodes) < count {
		if r.Remaining() == 0 {
			if count < 0 {
				return nodes, false, nil
			}

			return nodes, false, fmt.Errorf("%w: request group wants %d elements, got %d", ErrTruncated, count, len(nodes))
		}

		node, err := parseRequestNode(r, depth)
		if err != nil {
			return nodes, false, err
		}

		nodes = append(nodes, node)
		if node.Kind == RequestEnd {
			return nodes, true, nil
		}

		if node.Kind == RequestGroup && groupEnded(node) {
			return nodes, true, nil
		}
	}

	return nodes, false, nil
}

func groupEnded(n RequestNode) bool {
	if len(n.Children) == 0 {
		return false
	}

	last := n.Children[len(n.Children)-1]

	return last.Kind == RequestEnd || (last.Kind == RequestGroup && groupEnded(last))
}

func parseRequestNode(r *chunk.Reader, depth int) (RequestNode, error) {
	off := r.Pos()

	op, err := r.Uint8()
	if err != nil {
		return RequestNode{}, truncatedRequest(err)
	}

	node := RequestNode{Offset: off, Status: op}

	switch {
	case op < 0x80:
		node.Kind = RequestDelay
		node.Delay = int(op)
	case op < opOpaqueFirst:
		node.Kind = RequestMessage

		n := 2
		if hi := op & 0xF0; hi == 0xC0 || hi == 0xD0 {
			n = 1
		}

		if node.Args, err = r.Bytes(n); err != nil {
			return RequestNode{}, truncatedRequest(err)
		}
	case op <= opOpaqueLast:
		node.Kind = RequestOpaque

		n, err := r.Uint8()
		if err != nil {
			return RequestNode{}, truncatedRequest(err)
		}

		if node.Args, err = r.Bytes(int(n)); err != nil {
			return RequestNode{}, truncatedRequest(err)
		}
	case op == opGroup:
		node.Kind = RequestGroup

		n, err := r.Uint8()
		if err != nil {
			return RequestNode{}, truncatedRequest(err)
		}

		node.Children, _, err = parseRequestNodes(r, depth+1, int(n))
		if err != nil {
			return node, err
		}
	default:
		node.Kind = RequestEnd
	}

	return node, nil
}

func truncatedRequest(err error) error {
	if errors.Is(err, ErrTruncated) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrTruncated, err)
}
