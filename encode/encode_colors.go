package encode

import (
	"strings"

	"github.com/signadot/projtree/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind ir.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	CommentColor ColorAttr = iota
	TagColor
	FieldColor
	ValueColor
	SepColor
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
	for _, k := range ir.Kinds() {
		able := Colorable{Kind: k, Attr: TagColor}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = FieldColor
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
		able.Attr = ValueColor
		colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
		able.Attr = CommentColor
		colors.Map[able] = color.BlueString
	}
	able := Colorable{Attr: TagColor}

	able.Kind = ir.TargetKind
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()
	able.Kind = ir.TaskKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Kind = ir.PropertyKind
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Kind = ir.ItemKind
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()

	able.Attr = ValueColor
	able.Kind = ir.PropertyKind
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
	for _, k := range []ir.Kind{ir.ChooseKind, ir.WhenKind, ir.OtherwiseKind} {
		able := Colorable{Kind: k, Attr: TagColor}
		colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
	}
	colors.Map[Colorable{Kind: ir.CommentKind, Attr: ValueColor}] = color.BlueString
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k ir.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k ir.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
