// Package testpdf generates minimal but well-formed PDF fixtures for tests.
package testpdf

import (
	"fmt"
	"os"
	"strings"
	"testing"
)

// Bytes returns a minimal PDF with the given number of empty pages, with
// xref offsets computed as the document is built.
func Bytes(pages int) []byte {
	var b strings.Builder
	var offsets []int

	obj := func(body string) {
		offsets = append(offsets, b.Len())
		b.WriteString(body)
	}

	b.WriteString("%PDF-1.4\n")

	kids := make([]string, pages)
	for i := 0; i < pages; i++ {
		kids[i] = fmt.Sprintf("%d 0 R", 3+i)
	}

	obj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	obj(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n",
		strings.Join(kids, " "), pages))
	for i := 0; i < pages; i++ {
		obj(fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>\nendobj\n", 3+i))
	}

	xrefOffset := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n", len(offsets)+1)
	b.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&b, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, xrefOffset)

	return []byte(b.String())
}

// Write writes a minimal PDF with the given number of empty pages to path.
func Write(t *testing.T, path string, pages int) {
	t.Helper()
	if err := os.WriteFile(path, Bytes(pages), 0644); err != nil {
		t.Fatalf("write test pdf: %v", err)
	}
}
