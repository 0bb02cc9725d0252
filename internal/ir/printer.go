package ir

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gracepriest/BasicLangvb-sub002/internal/types"
)

// Print renders a module as readable text. The format is for humans and
// golden tests; backends consume the structures, never this text.
func Print(m *Module) string {
	var b strings.Builder
	fmt.Fprintf(&b, "module %s\n", m.Name)

	if len(m.Globals) > 0 {
		names := make([]string, 0, len(m.Globals))
		for name := range m.Globals {
			names = append(names, name)
		}
		sort.Strings(names)
		b.WriteString("\n")
		for _, name := range names {
			g := m.Globals[name]
			fmt.Fprintf(&b, "global %s %s\n", g.Name, typeName(g.Type))
		}
	}

	for _, class := range m.Classes {
		b.WriteString("\n")
		fmt.Fprintf(&b, "class %s {\n", class.Name)
		for _, f := range class.Fields {
			fmt.Fprintf(&b, "    field %s %s\n", f.Name, typeName(f.Type))
		}
		b.WriteString("}\n")
		for _, method := range class.Methods {
			b.WriteString("\n")
			printFunction(&b, method)
		}
	}

	for _, fn := range m.Functions {
		b.WriteString("\n")
		printFunction(&b, fn)
	}
	return b.String()
}

// PrintFunction renders one function, for focused test assertions.
func PrintFunction(fn *Function) string {
	var b strings.Builder
	printFunction(&b, fn)
	return b.String()
}

func printFunction(b *strings.Builder, fn *Function) {
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = fmt.Sprintf("%s %s", p, typeName(p.Type))
	}
	fmt.Fprintf(b, "func %s(%s)", fn.Name, strings.Join(params, ", "))
	if fn.ReturnType != nil && fn.ReturnType.Kind != types.KindVoid {
		fmt.Fprintf(b, " %s", typeName(fn.ReturnType))
	}
	b.WriteString(" {\n")

	for _, blk := range fn.Blocks {
		fmt.Fprintf(b, "%s:\n", blk.Label)
		for _, inst := range blk.Instructions {
			fmt.Fprintf(b, "    %s\n", inst)
		}
		if blk.Terminator != nil {
			fmt.Fprintf(b, "    %s\n", blk.Terminator)
		}
	}
	b.WriteString("}\n")
}

func typeName(t *types.TypeInfo) string {
	if t == nil {
		return "?"
	}
	return t.String()
}
