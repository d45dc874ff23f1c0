package levels

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/isoengine/config"
	"github.com/milk9111/isoengine/tile"
	"github.com/milk9111/isoengine/world"
)

// Options configures the maps a script creates.
type Options struct {
	TileWidth  int
	TileHeight int
	MinZoom    float64
	MaxZoom    float64
}

// builder is the state a running script mutates through the engine module.
type builder struct {
	types *tile.Registry
	opts  Options
	level *world.Level
}

// Build runs the named level script and returns the level it describes.
func Build(name string, types *tile.Registry, opts Options) (*world.Level, error) {
	src, err := LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", name, err)
	}
	return BuildSource(strings.TrimSuffix(cleanLevelPath(name), ".tengo"), src, types, opts)
}

// BuildSource runs src as a level script. The level is named name unless
// the script calls engine.level_name.
func BuildSource(name string, src []byte, types *tile.Registry, opts Options) (*world.Level, error) {
	b := &builder{
		types: types,
		opts:  opts,
		level: world.NewLevel(name),
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if err := script.Add("engine", b.engine()); err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("levels: compile %s: %w", name, err)
	}
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("levels: run %s: %w", name, err)
	}
	if b.level.Len() == 0 {
		return nil, fmt.Errorf("levels: %s: %w", name, world.ErrEmptyLevel)
	}
	return b.level, nil
}

func (b *builder) engine() *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["level_name"] = &tengo.UserFunction{Name: "level_name", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		s, ok := tengo.ToString(args[0])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "name", Expected: "string", Found: args[0].TypeName()}
		}
		b.level.SetName(s)
		return tengo.UndefinedValue, nil
	}}

	values["new_map"] = &tengo.UserFunction{Name: "new_map", Value: func(args ...tengo.Object) (tengo.Object, error) {
		n, err := intArgs(args, "width", "height", "layers")
		if err != nil {
			return nil, err
		}
		m, err := world.NewMap(b.types, n[0], n[1], n[2], b.opts.TileWidth, b.opts.TileHeight)
		if err != nil {
			return nil, err
		}
		if b.opts.MinZoom > 0 && b.opts.MaxZoom >= b.opts.MinZoom {
			m.Camera().SetZoomLimits(b.opts.MinZoom, b.opts.MaxZoom)
		}
		b.level.AddMap(m)
		return &tengo.Int{Value: int64(b.level.Len() - 1)}, nil
	}}

	values["set_tile"] = &tengo.UserFunction{Name: "set_tile", Value: func(args ...tengo.Object) (tengo.Object, error) {
		n, err := intArgs(args, "map", "x", "y", "layer", "id")
		if err != nil {
			return nil, err
		}
		m, err := b.mapAt(n[0])
		if err != nil {
			return nil, err
		}
		m.SetTile(n[1], n[2], n[3], n[4])
		return tengo.UndefinedValue, nil
	}}

	values["remove_tile"] = &tengo.UserFunction{Name: "remove_tile", Value: func(args ...tengo.Object) (tengo.Object, error) {
		n, err := intArgs(args, "map", "x", "y", "layer")
		if err != nil {
			return nil, err
		}
		m, err := b.mapAt(n[0])
		if err != nil {
			return nil, err
		}
		m.RemoveTile(n[1], n[2], n[3])
		return tengo.UndefinedValue, nil
	}}

	values["fill"] = &tengo.UserFunction{Name: "fill", Value: func(args ...tengo.Object) (tengo.Object, error) {
		n, err := intArgs(args, "map", "layer", "id")
		if err != nil {
			return nil, err
		}
		m, err := b.mapAt(n[0])
		if err != nil {
			return nil, err
		}
		m.Fill(n[1], n[2])
		return tengo.UndefinedValue, nil
	}}

	values["clear"] = &tengo.UserFunction{Name: "clear", Value: func(args ...tengo.Object) (tengo.Object, error) {
		n, err := intArgs(args, "map")
		if err != nil {
			return nil, err
		}
		m, err := b.mapAt(n[0])
		if err != nil {
			return nil, err
		}
		m.Clear()
		return tengo.UndefinedValue, nil
	}}

	values["background"] = &tengo.UserFunction{Name: "background", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		idx, ok := tengo.ToInt(args[0])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "map", Expected: "int", Found: args[0].TypeName()}
		}
		s, ok := tengo.ToString(args[1])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "color", Expected: "string", Found: args[1].TypeName()}
		}
		m, err := b.mapAt(idx)
		if err != nil {
			return nil, err
		}
		clr, err := config.ParseColor(s)
		if err != nil {
			return nil, err
		}
		m.SetBackgroundColor(clr)
		return tengo.UndefinedValue, nil
	}}

	values["type_id"] = &tengo.UserFunction{Name: "type_id", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		s, ok := tengo.ToString(args[0])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "name", Expected: "string", Found: args[0].TypeName()}
		}
		for _, id := range b.types.IDs() {
			if tt, _ := b.types.Get(id); strings.EqualFold(tt.Name(), s) {
				return &tengo.Int{Value: int64(id)}, nil
			}
		}
		return nil, fmt.Errorf("unknown tile type %q", s)
	}}

	values["map_count"] = &tengo.UserFunction{Name: "map_count", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(b.level.Len())}, nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, objectAsString(a))
		}
		log.Printf("levels: %s: %s", b.level.Name(), strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func (b *builder) mapAt(i int) (*world.Map, error) {
	m := b.level.Map(i)
	if m == nil {
		return nil, fmt.Errorf("map %d does not exist (level has %d)", i, b.level.Len())
	}
	return m, nil
}

func intArgs(args []tengo.Object, names ...string) ([]int, error) {
	if len(args) != len(names) {
		return nil, tengo.ErrWrongNumArguments
	}
	out := make([]int, len(args))
	for i, a := range args {
		v, ok := tengo.ToInt(a)
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: names[i], Expected: "int", Found: a.TypeName()}
		}
		out[i] = v
	}
	return out, nil
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
