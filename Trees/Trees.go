package Trees

import "fmt"

// Tree represents a set like structure implemented using nodes.
// Receivers that return a bool report whether the operation took effect
// or whether the value was found. Methods implemented recursively
// should be noted, otherwise functions are implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if successful, false if v is
	//already present.
	Insert(v T) bool
	//Remove v from the Tree. Returning true if successful, false if v
	//isn't present.
	Remove(v T) bool
	//Contains v. The error is non nil only when v itself is invalid.
	Contains(v T) (bool, error)
	//Size of the tree.
	Size() uint
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
	fmt.Stringer
}

var _ Tree[int] = (*Treap[int])(nil)
