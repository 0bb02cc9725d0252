package lsp

import (
	"sort"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/gracepriest/BasicLangvb-sub002/internal/ast"
	"github.com/gracepriest/BasicLangvb-sub002/internal/stdlib"
)

// Canonical keyword spellings offered by completion. The scanner accepts
// any casing; these are the ones the dialect's documentation uses.
var completionKeywords = []string{
	"And", "As", "Case", "Catch", "Class", "Const", "CType", "Delegate",
	"Dim", "Do", "Each", "Else", "ElseIf", "End", "Enum", "Exit", "False",
	"Finally", "For", "Function", "If", "Implements", "In", "Inherits",
	"Interface", "Loop", "Mod", "Module", "Namespace", "New", "Next", "Not",
	"Of", "Or", "Private", "Public", "Return", "Select", "Step", "Structure",
	"Sub", "Then", "To", "True", "Try", "Until", "While",
}

// completionItems builds the completion list for one document: keywords,
// runtime routines, and every named declaration in the file.
func completionItems(file *ast.File) []protocol.CompletionItem {
	var items []protocol.CompletionItem

	for _, kw := range completionKeywords {
		items = append(items, completionItem(kw, protocol.CompletionItemKindKeyword))
	}

	names := stdlib.Names()
	sort.Strings(names)
	for _, name := range names {
		items = append(items, completionItem(name, protocol.CompletionItemKindFunction))
	}

	if file != nil {
		for _, decl := range file.Decls {
			items = append(items, declItems(decl)...)
		}
	}
	return items
}

func declItems(decl ast.Decl) []protocol.CompletionItem {
	var items []protocol.CompletionItem
	switch d := decl.(type) {
	case *ast.NamespaceDecl:
		items = append(items, completionItem(d.Name.Value, protocol.CompletionItemKindModule))
		for _, inner := range d.Decls {
			items = append(items, declItems(inner)...)
		}
	case *ast.ModuleDecl:
		items = append(items, completionItem(d.Name.Value, protocol.CompletionItemKindModule))
		for _, inner := range d.Decls {
			items = append(items, declItems(inner)...)
		}
	case *ast.ClassDecl:
		items = append(items, completionItem(d.Name.Value, protocol.CompletionItemKindClass))
	case *ast.StructureDecl:
		items = append(items, completionItem(d.Name.Value, protocol.CompletionItemKindStruct))
	case *ast.InterfaceDecl:
		items = append(items, completionItem(d.Name.Value, protocol.CompletionItemKindInterface))
	case *ast.EnumDecl:
		items = append(items, completionItem(d.Name.Value, protocol.CompletionItemKindEnum))
	case *ast.DelegateDecl:
		items = append(items, completionItem(d.Name.Value, protocol.CompletionItemKindClass))
	case *ast.FunctionDecl:
		kind := protocol.CompletionItemKindFunction
		if d.IsSub {
			kind = protocol.CompletionItemKindMethod
		}
		items = append(items, completionItem(d.Name.Value, kind))
	case *ast.DimDecl:
		items = append(items, completionItem(d.Name.Value, protocol.CompletionItemKindVariable))
	case *ast.ConstDecl:
		items = append(items, completionItem(d.Name.Value, protocol.CompletionItemKindConstant))
	}
	return items
}

func completionItem(label string, kind protocol.CompletionItemKind) protocol.CompletionItem {
	return protocol.CompletionItem{
		Label: label,
		Kind:  &kind,
	}
}
