package index

import (
	"fmt"
	"strconv"
	"strings"
)

// RenderOptions controls the document metadata written in the preamble.
type RenderOptions struct {
	Title  string
	Author string
}

// DefaultRenderOptions returns the stock title and author.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Title:  "Index table",
		Author: "Mutro",
	}
}

// Render formats idx as Typst markup. The output is a pure function of idx
// and opts. Empty option fields fall back to DefaultRenderOptions.
func Render(idx *Index, opts RenderOptions) string {
	defaults := DefaultRenderOptions()
	if opts.Title == "" {
		opts.Title = defaults.Title
	}
	if opts.Author == "" {
		opts.Author = defaults.Author
	}

	var sb strings.Builder
	writePreamble(&sb, opts)

	sb.WriteString("// 4. Main Content\n")
	sb.WriteString("#columns(2, gutter: 1.5em)[\n")

	for i, bucket := range idx.Buckets() {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "  // --- %s ---\n", bucket.Key)
		fmt.Fprintf(&sb, "  #text(size: 18pt, weight: \"bold\")[%s]\n", headingLabel(bucket.Key))
		sb.WriteString("  #line(length: 100%)\n")
		sb.WriteString("  #v(0.8em)\n")
		for _, term := range bucket.Terms {
			fmt.Fprintf(&sb, "  #text(weight: \"bold\")[%s]: %s\\\n", escapeTerm(term), joinPages(idx.entries[term]))
		}
	}

	sb.WriteString("]")
	return sb.String()
}

func writePreamble(sb *strings.Builder, opts RenderOptions) {
	sb.WriteString("// ===============================================\n")
	fmt.Fprintf(sb, "// Typst Index Layout by %s\n", opts.Author)
	sb.WriteString("// Based on previously approved format\n")
	sb.WriteString("// ===============================================\n\n")
	sb.WriteString("// 1. Document & Page Setup\n")
	fmt.Fprintf(sb, "#set document(title: %s, author: %s)\n", typstString(opts.Title), typstString(opts.Author))
	sb.WriteString("#set page(paper: \"a4\", margin: (x: 2cm, y: 2.5cm))\n\n")
	sb.WriteString("// 2. Font Setup\n")
	sb.WriteString("#set text(font: (\"New Computer Modern\", \"Noto Serif CJK SC\"), size: 10pt)\n\n")
	sb.WriteString("// 3. Title Section\n")
	sb.WriteString("#align(center)[\n")
	sb.WriteString("  #text(size: 24pt, weight: 600)[Index]\n")
	sb.WriteString("]\n#v(2em)\n\n")
}

// headingLabel escapes the "#" bucket so Typst does not read it as code.
func headingLabel(key string) string {
	if key == OtherBucket {
		return `\#`
	}
	return key
}

var typstEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`, "\t", `\t`)

// typstString quotes s as a Typst string literal. Only escapes Typst
// understands are emitted; other runes are written as is.
func typstString(s string) string {
	return `"` + typstEscaper.Replace(s) + `"`
}

func escapeTerm(term string) string {
	return strings.ReplaceAll(term, `"`, `\"`)
}

func joinPages(pages []int) string {
	parts := make([]string, len(pages))
	for i, p := range pages {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ", ")
}
