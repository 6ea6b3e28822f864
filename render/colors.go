package render

import (
	"fmt"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	TagColor ColorAttr = iota
	ShapeColor
	FieldColor
	ValueColor
	TypeColor
	SepColor
	CountColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			TagColor:   color.RGB(74, 92, 138).SprintfFunc(),
			ShapeColor: color.RGB(196, 96, 16).SprintfFunc(),
			FieldColor: color.RGB(196, 96, 16).SprintfFunc(),
			ValueColor: color.RGB(128, 216, 236).SprintfFunc(),
			TypeColor:  color.GreenString,
			SepColor:   color.RGB(255, 0, 196).SprintfFunc(),
			CountColor: color.BlueString,
		},
	}
}

func colorDefault(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

func (c *Colors) sprintf(attr ColorAttr) func(string, ...any) string {
	if c == nil {
		return colorDefault
	}
	if f, ok := c.Map[attr]; ok && f != nil {
		return f
	}
	if c.Default != nil {
		return c.Default
	}
	return colorDefault
}
