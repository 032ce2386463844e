package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmigpin/formlayout/util/uiutil/widget"
)

type ObjectType int

const (
	TypeForm ObjectType = iota + 1
	TypeGroupBox
	TypeFormField
	TypeLabel
	TypePopup
	TypeScrollArea
)

var objectTypeNames = map[ObjectType]string{
	TypeForm:       "form",
	TypeGroupBox:   "groupbox",
	TypeFormField:  "field",
	TypeLabel:      "label",
	TypePopup:      "popup",
	TypeScrollArea: "scrollarea",
}

func (t ObjectType) String() string {
	if s, ok := objectTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("objecttype(%d)", int(t))
}

func ParseObjectType(s string) (ObjectType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range objectTypeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownObjectType, s)
}

//----------

var ErrUnknownObjectType = errors.New("unknown object type")

// Widget is implemented by every node created through a registry.
type Widget interface {
	widget.Node
	ID() string
	ObjectType() ObjectType
}

type Factory func(s *Session) Widget

// Registry maps object types to factories. Each session owns one, factories can be overridden per session.
type Registry struct {
	factories map[ObjectType]Factory
}

// Registry with the default factories.
func NewRegistry() *Registry {
	r := &Registry{factories: map[ObjectType]Factory{}}
	r.Register(TypeForm, func(s *Session) Widget { return NewForm(s) })
	r.Register(TypeGroupBox, func(s *Session) Widget { return NewGroupBox(s) })
	r.Register(TypeFormField, func(s *Session) Widget { return NewFormField(s) })
	r.Register(TypeLabel, func(s *Session) Widget { return NewLabel(s, "") })
	r.Register(TypePopup, func(s *Session) Widget { return NewPopup(s) })
	r.Register(TypeScrollArea, func(s *Session) Widget { return NewScrollArea(s) })
	return r
}

func (r *Registry) Register(t ObjectType, f Factory) {
	r.factories[t] = f
}

func (r *Registry) Create(s *Session, t ObjectType) (Widget, error) {
	f, ok := r.factories[t]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownObjectType, t)
	}
	return f(s), nil
}

//----------

type widgetBase struct {
	id      string
	typ     ObjectType
	session *Session
}

func newWidgetBase(s *Session, t ObjectType) widgetBase {
	return widgetBase{id: uuid.NewString(), typ: t, session: s}
}

func (wb *widgetBase) ID() string             { return wb.id }
func (wb *widgetBase) ObjectType() ObjectType { return wb.typ }
func (wb *widgetBase) Session() *Session      { return wb.session }
