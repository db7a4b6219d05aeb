package printer

import (
	"strings"

	"github.com/g-plane/markupfmt-go/internal/ast"
	"github.com/g-plane/markupfmt-go/internal/doc"
)

func genSvelteIfBlock(b *ast.SvelteIfBlock, ctx *Ctx) doc.Doc {
	parts := []doc.Doc{
		doc.Text("{#if " + ctx.formatExternal("expr.ts", b.Expr) + "}"),
		genIndentedBlock(b.Children, ctx),
	}
	for _, ei := range b.ElseIfBlocks {
		parts = append(parts,
			doc.HardLine(),
			doc.Text("{:else if "+ctx.formatExternal("expr.ts", ei.Expr)+"}"),
			genIndentedBlock(ei.Children, ctx),
		)
	}
	if b.ElseChildren != nil {
		parts = append(parts,
			doc.HardLine(),
			doc.Text("{:else}"),
			genIndentedBlock(b.ElseChildren, ctx),
		)
	}
	parts = append(parts, doc.HardLine(), doc.Text("{/if}"))
	return doc.Concat(parts...)
}

func genSvelteEachBlock(b *ast.SvelteEachBlock, ctx *Ctx) doc.Doc {
	var header strings.Builder
	header.WriteString("{#each ")
	header.WriteString(ctx.formatExternal("expr.ts", b.Expr))
	header.WriteString(" as ")
	header.WriteString(b.Binding)
	if b.Index != nil {
		header.WriteString(", ")
		header.WriteString(*b.Index)
	}
	if b.Key != nil {
		header.WriteString(" (")
		header.WriteString(*b.Key)
		header.WriteString(")")
	}
	header.WriteString("}")

	parts := []doc.Doc{doc.Text(header.String()), genIndentedBlock(b.Children, ctx)}
	if b.ElseChildren != nil {
		parts = append(parts, doc.HardLine(), doc.Text("{:else}"), genIndentedBlock(b.ElseChildren, ctx))
	}
	parts = append(parts, doc.HardLine(), doc.Text("{/each}"))
	return doc.Concat(parts...)
}

func genSvelteAwaitBlock(b *ast.SvelteAwaitBlock, ctx *Ctx) doc.Doc {
	var header strings.Builder
	header.WriteString("{#await ")
	header.WriteString(ctx.formatExternal("expr.ts", b.Expr))
	if b.ThenBinding != nil {
		header.WriteString(" then ")
		header.WriteString(*b.ThenBinding)
	}
	if b.CatchBinding != nil {
		header.WriteString(" catch ")
		header.WriteString(*b.CatchBinding)
	}
	header.WriteString("}")

	parts := []doc.Doc{doc.Text(header.String()), genIndentedBlock(b.Children, ctx)}
	if b.ThenBlock != nil {
		marker := "{:then}"
		if b.ThenBlock.Binding != nil {
			marker = "{:then " + *b.ThenBlock.Binding + "}"
		}
		parts = append(parts, doc.HardLine(), doc.Text(marker), genIndentedBlock(b.ThenBlock.Children, ctx))
	}
	if b.CatchBlock != nil {
		marker := "{:catch}"
		if b.CatchBlock.Binding != nil {
			marker = "{:catch " + *b.CatchBlock.Binding + "}"
		}
		parts = append(parts, doc.HardLine(), doc.Text(marker), genIndentedBlock(b.CatchBlock.Children, ctx))
	}
	parts = append(parts, doc.HardLine(), doc.Text("{/await}"))
	return doc.Concat(parts...)
}

func genAngularIf(b *ast.AngularIf, ctx *Ctx) doc.Doc {
	sameLine := ctx.Options.Language.AngularNextControlFlowSameLine
	sep := doc.HardLine()
	if sameLine {
		sep = doc.Text(" ")
	}

	header := genAngularIfHeader("@if", b.Expr, b.Reference, ctx)
	parts := []doc.Doc{header, genIndentedBlock(b.Children, ctx)}
	for _, ei := range b.ElseIfBlocks {
		parts = append(parts, doc.HardLine(), doc.Text("}"), sep,
			genAngularIfHeader("@else if", ei.Expr, ei.Reference, ctx),
			genIndentedBlock(ei.Children, ctx))
	}
	if b.ElseChildren != nil {
		parts = append(parts, doc.HardLine(), doc.Text("}"), sep,
			doc.Text("@else {"),
			genIndentedBlock(b.ElseChildren, ctx))
	}
	parts = append(parts, doc.HardLine(), doc.Text("}"))
	return doc.Concat(parts...)
}

func genAngularIfHeader(keyword, expr string, ref *string, ctx *Ctx) doc.Doc {
	var b strings.Builder
	b.WriteString(keyword)
	b.WriteString(" (")
	b.WriteString(ctx.formatExternal("expr.ts", expr))
	if ref != nil {
		b.WriteString("; as ")
		b.WriteString(*ref)
	}
	b.WriteString(") {")
	return doc.Text(b.String())
}

func genAstroExpr(e *ast.AstroExpr, ctx *Ctx) doc.Doc {
	var parts []doc.Doc
	parts = append(parts, doc.Text("{"))
	for _, child := range e.Children {
		if child.Script != nil {
			formatted := ctx.formatExternal("expr.ts", *child.Script)
			parts = append(parts, doc.Reflow(formatted))
			continue
		}
		for _, n := range child.Template {
			parts = append(parts, genNode(n, ctx))
		}
	}
	parts = append(parts, doc.Text("}"))
	return doc.Concat(parts...)
}

func genJinjaBlock(b *ast.JinjaBlock, ctx *Ctx) doc.Doc {
	var parts []doc.Doc
	for i, part := range b.Body {
		if i > 0 {
			parts = append(parts, doc.HardLine())
		}
		if part.Tag != nil {
			parts = append(parts, doc.Text("{% "+part.Tag.Content+" %}"))
			continue
		}
		parts = append(parts, genIndentedBlock(part.Children, ctx))
	}
	return doc.Concat(parts...)
}

func genVentoBlock(b *ast.VentoBlock, ctx *Ctx) doc.Doc {
	var parts []doc.Doc
	for i, part := range b.Body {
		if i > 0 {
			parts = append(parts, doc.HardLine())
		}
		if part.Tag != nil {
			parts = append(parts, doc.Text("{{"+part.Tag.Tag+"}}"))
			continue
		}
		parts = append(parts, genIndentedBlock(part.Children, ctx))
	}
	return doc.Concat(parts...)
}
