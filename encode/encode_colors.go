package encode

import (
	"github.com/fatih/color"
)

// ColorRole names a syntactic element of encoded output.
type ColorRole int

const (
	nameRole ColorRole = iota
	attrRole
	keyRole
	stringRole
	numberRole
	boolRole
	commentRole
)

// NameRole through CommentRole are the exported aliases used to
// customize a Colors palette.
const (
	NameRole    = nameRole
	AttrRole    = attrRole
	KeyRole     = keyRole
	StringRole  = stringRole
	NumberRole  = numberRole
	BoolRole    = boolRole
	CommentRole = commentRole
)

// ColorFunc wraps text in terminal escapes.
type ColorFunc func(a ...interface{}) string

// Colors maps output roles to color functions. Roles without an entry
// render unstyled.
type Colors struct {
	funcs map[ColorRole]ColorFunc
}

// NewColors returns the default palette.
func NewColors() *Colors {
	return &Colors{
		funcs: map[ColorRole]ColorFunc{
			nameRole:    color.RGB(0x87, 0xce, 0xfa).SprintFunc(),
			attrRole:    color.RGB(0xdd, 0xa0, 0xdd).SprintFunc(),
			keyRole:     color.RGB(0xff, 0xd7, 0x00).SprintFunc(),
			stringRole:  color.RGB(0x98, 0xfb, 0x98).SprintFunc(),
			numberRole:  color.RGB(0xff, 0xa0, 0x7a).SprintFunc(),
			boolRole:    color.RGB(0xff, 0xa0, 0x7a).SprintFunc(),
			commentRole: color.RGB(0x80, 0x80, 0x80).SprintFunc(),
		},
	}
}

// Set overrides the function for one role.
func (c *Colors) Set(role ColorRole, f ColorFunc) *Colors {
	c.funcs[role] = f
	return c
}

// Get returns the function for role, or the identity styling when the
// role has no entry.
func (c *Colors) Get(role ColorRole) ColorFunc {
	if f, ok := c.funcs[role]; ok {
		return f
	}
	return func(a ...interface{}) string {
		if len(a) == 1 {
			if s, ok := a[0].(string); ok {
				return s
			}
		}
		return color.New().Sprint(a...)
	}
}
