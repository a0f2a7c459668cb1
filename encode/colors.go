package encode

import (
	"strings"

	"github.com/signadot/eds/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Family ir.Family
	Attr   ColorAttr
}

type ColorAttr int

const (
	HeaderColor ColorAttr = iota
	SlotKeyColor
	NestIndexColor
	SeenColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, f := range []ir.Family{ir.PrimitiveFamily, ir.ContainerFamily, ir.ActiveFamily, ir.MetaFamily} {
		able := Colorable{Family: f}
		able.Attr = SlotKeyColor
		colors.Map[able] = color.BlueString
		able.Attr = NestIndexColor
		colors.Map[able] = color.RedString
		able.Attr = SeenColor
		colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
	}
	able := Colorable{Attr: HeaderColor}

	able.Family = ir.PrimitiveFamily
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	able.Family = ir.ContainerFamily
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Family = ir.ActiveFamily
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	able.Family = ir.MetaFamily
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(f ir.Family, a ColorAttr, s string) string {
	return c.Get(f, a)(s)
}

func (c *Colors) Get(f ir.Family, a ColorAttr) func(string, ...any) string {
	fn := c.Map[Colorable{Family: f, Attr: a}]
	if fn == nil {
		return c.Default
	}
	return fn
}
