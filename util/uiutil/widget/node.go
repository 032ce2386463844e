package widget

import (
	"container/list"
	"fmt"
	"image"
)

type Node interface {
	fullNode() // ensure that EmbedNode can't be directly assigned to a Node

	Embed() *EmbedNode

	InsertBefore(n Node, mark *EmbedNode)
	Append(n ...Node)
	Remove(child Node)
}

//----------

// Doesn't allow embed to be assigned to a Node directly, which prevents a range of programming mistakes. This is the node other widgets should inherit from.
type ENode struct {
	EmbedNode
}

func (ENode) fullNode() {}

//----------

// EmbedNode is the component part of every widget: tree links, bounds relative to the parent, the layout strategy and the cached sizes used while negotiating sizes with the parent layout.
type EmbedNode struct {
	Bounds  image.Rectangle // relative to the parent
	Wrapper Node
	Parent  *EmbedNode

	// Padding and border, included in the size.
	Pad Insets
	// Not included in the size, removed by the parent layouts.
	Margin Insets

	// Css-like min/max sizes, a zero max coordinate means unbounded.
	MinSize image.Point
	MaxSize image.Point

	// Constraints consumed by the parent layout (ex: logical grid data).
	LayoutData interface{}

	marks  Marks
	childs list.List
	elem   *list.Element

	layout        Layout
	style         string
	sizeCached    image.Point
	prefSizeCache map[prefSizeKey]image.Point
	animationEnd  []*EmbedNode

	// root only
	validator *LayoutValidator
	attached  bool
}

//----------

func (en *EmbedNode) Embed() *EmbedNode {
	return en
}

// Only the root node should need to set the wrapper explicitly.
func (en *EmbedNode) SetWrapperForRoot(n Node) {
	en.Wrapper = n
}

//----------

// If a node wants its InsertBefore implementation to be used, the wrapper must be set.
func (en *EmbedNode) Append(nodes ...Node) {
	for _, n := range nodes {
		if en.Wrapper != nil {
			en.Wrapper.InsertBefore(n, nil)
		} else {
			en.InsertBefore(n, nil)
		}
	}
}

func (en *EmbedNode) InsertBefore(child Node, next *EmbedNode) {
	childe := child.Embed()

	if childe == en {
		panic("inserting into itself")
	}
	if childe.Parent != nil {
		panic("element already has a parent")
	}

	// insert in list and get element
	var elem *list.Element
	if next == nil {
		elem = en.childs.PushBack(childe)
	} else {
		// ensure next element is a child of this node
		if next.Parent != en {
			panic("next is not a child of this node")
		}

		elem = en.childs.InsertBefore(childe, next.elem)
	}
	if elem == nil {
		panic("element not inserted")
	}

	childe.elem = elem
	childe.Parent = en
	childe.Wrapper = child // auto set the wrapper

	en.InvalidateLayoutTree(true)
}

//----------

func (en *EmbedNode) Remove(child Node) {
	childe := child.Embed()
	if childe.Parent != en {
		panic("not a child of this node")
	}
	if v := en.Validator(); v != nil {
		v.CleanupInvalidComponents(childe)
	}
	en.childs.Remove(childe.elem)
	childe.elem = nil
	childe.Parent = nil

	en.InvalidateLayoutTree(true)
}

//----------

func (en *EmbedNode) ChildsLen() int {
	return en.childs.Len()
}

//----------

func elemEmbed(e *list.Element) *EmbedNode {
	if e == nil {
		return nil
	}
	return e.Value.(*EmbedNode)
}
func elemWrapper(e *list.Element) Node {
	if e == nil {
		return nil
	}
	return e.Value.(*EmbedNode).Wrapper
}

//----------

func (en *EmbedNode) FirstChild() *EmbedNode {
	return elemEmbed(en.childs.Front())
}
func (en *EmbedNode) LastChild() *EmbedNode {
	return elemEmbed(en.childs.Back())
}
func (en *EmbedNode) NextSibling() *EmbedNode {
	return elemEmbed(en.elem.Next())
}
func (en *EmbedNode) PrevSibling() *EmbedNode {
	return elemEmbed(en.elem.Prev())
}

//----------

func (en *EmbedNode) FirstChildWrapper() Node {
	return elemWrapper(en.childs.Front())
}

//----------

func (en *EmbedNode) Iterate(f func(*EmbedNode) bool) {
	for e := en.childs.Front(); e != nil; e = e.Next() {
		if !f(elemEmbed(e)) {
			break
		}
	}
}
func (en *EmbedNode) IterateWrappers(f func(Node) bool) {
	for e := en.childs.Front(); e != nil; e = e.Next() {
		if !f(elemWrapper(e)) {
			break
		}
	}
}

//----------

// Iterate2 family functions: iterate all without break possibility.

func (en *EmbedNode) Iterate2(f func(*EmbedNode)) {
	for e := en.childs.Front(); e != nil; e = e.Next() {
		f(elemEmbed(e))
	}
}
func (en *EmbedNode) IterateWrappers2(f func(Node)) {
	for e := en.childs.Front(); e != nil; e = e.Next() {
		f(elemWrapper(e))
	}
}

//----------

func (en *EmbedNode) ChildsWrappers() []Node {
	w := []Node{}
	en.IterateWrappers2(func(c Node) {
		w = append(w, c)
	})
	return w
}

//----------

func (en *EmbedNode) Root() *EmbedNode {
	r := en
	for r.Parent != nil {
		r = r.Parent
	}
	return r
}

func (en *EmbedNode) IsDescendantOf(u *EmbedNode) bool {
	for p := en.Parent; p != nil; p = p.Parent {
		if p == u {
			return true
		}
	}
	return false
}

// Bounds in the coordinates of the root node.
func (en *EmbedNode) AbsoluteBounds() image.Rectangle {
	r := en.Bounds
	for p := en.Parent; p != nil; p = p.Parent {
		r = r.Add(p.Bounds.Min)
	}
	return r
}

//----------

func (en *EmbedNode) HasAnyMarks(m Marks) bool {
	return en.marks.HasAny(m)
}

func (en *EmbedNode) AddMarks(m Marks) {
	en.marks.Add(m)
}

func (en *EmbedNode) RemoveMarks(m Marks) {
	// direcly non-removable marks
	u := MarkValid | MarkLayouting | MarkAnimating
	if m.HasAny(u) {
		panic(fmt.Sprintf("mark not directly removable: %v", u))
	}
	en.marks.Remove(m)
}

//----------

type Marks uint16

func (m *Marks) Add(u Marks)        { *m |= u }
func (m *Marks) Remove(u Marks)     { *m &^= u }
func (m Marks) Mask(u Marks) Marks  { return m & u }
func (m Marks) HasAny(u Marks) bool { return m.Mask(u) > 0 }

func (m *Marks) Modify(u Marks, v bool) {
	if v {
		m.Add(u)
	} else {
		m.Remove(u)
	}
}

//----------

const (
	// Layout output is up to date. New nodes start invalid.
	MarkValid Marks = 1 << iota
	// Layouted at least once, invalidation does not reset it.
	MarkLayouted
	MarkLayouting

	MarkHidden
	MarkValidateRoot
	MarkScrollable
	MarkAnimating

	// Temporarily disable invalidation (ex: modified during the layouting process).
	MarkSuppressInvalidate
	// Still possible to invalidate but validation is skipped. The caller must revalidate when removing the mark.
	MarkSuppressValidate
)
