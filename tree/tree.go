// Package tree walks decoded JSON values (map[string]any, []any, float64, string) while tracking the
// path of every step, so structural errors name exactly where a response diverged.
package tree

import (
	"fmt"

	"github.com/bililink-cli/bililink/live"
)

// Node is a step along a decoded JSON tree. Lookups below a missing or mistyped parent carry the
// first failure, so only the final accessor has to check it.
type Node struct {
	value any
	path  string
	err   error
}

// Root wraps v. name is the path label of the root, e.g. "$" or "stream".
func Root(v any, name string) Node {
	return Node{value: v, path: name}
}

// Path returns the location of the node.
func (n Node) Path() string {
	return n.path
}

// Field looks up a required object member. A null member counts as missing.
func (n Node) Field(name string) Node {
	if n.err != nil {
		return n
	}

	path := n.path + "." + name

	object, ok := n.value.(map[string]any)
	if !ok {
		return Node{path: path, err: fmt.Errorf("%w: %s is not an object", live.ErrResponseFormat, n.path)}
	}

	value, ok := object[name]
	if !ok || value == nil {
		return Node{path: path, err: fmt.Errorf("%w: %s is missing", live.ErrResponseFormat, path)}
	}

	return Node{value: value, path: path}
}

// Optional looks up an object member that may be absent. ok is false when it is missing, null,
// or the node itself is not an object.
func (n Node) Optional(name string) (Node, bool) {
	next := n.Field(name)
	return next, next.err == nil
}

// Number returns the node as a JSON number.
func (n Node) Number() (float64, error) {
	if n.err != nil {
		return 0, n.err
	}

	f, ok := n.value.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: %s is not a number", live.ErrResponseFormat, n.path)
	}
	return f, nil
}

// Text returns the node as a JSON string.
func (n Node) Text() (string, error) {
	if n.err != nil {
		return "", n.err
	}

	s, ok := n.value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is not a string", live.ErrResponseFormat, n.path)
	}
	return s, nil
}

// Array returns the raw elements of a JSON array.
func (n Node) Array() ([]any, error) {
	if n.err != nil {
		return nil, n.err
	}

	a, ok := n.value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an array", live.ErrResponseFormat, n.path)
	}
	return a, nil
}

// Each calls fn with every element of the array in order, stopping at the first error.
func (n Node) Each(fn func(Node) error) error {
	items, err := n.Array()
	if err != nil {
		return err
	}

	for i, item := range items {
		if err := fn(Node{value: item, path: fmt.Sprintf("%s[%d]", n.path, i)}); err != nil {
			return err
		}
	}
	return nil
}
