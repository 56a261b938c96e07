package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"hif/internal/diag"
	"hif/internal/source"
)

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	// Создаём FileSet
	fs := source.NewFileSet()

	// Добавляем входной XML как виртуальный файл
	content := []byte("<SYSTEM name=\"top\" formatVersion=\n")
	fileID := fs.AddVirtual("/home/user/project/designs/top.hif.xml", content)

	// Устанавливаем базовую директорию для relative paths
	fs.SetBaseDir("/home/user/project")

	// Создаём диагностику
	bag := diag.NewBag(10)
	d := diag.New(
		diag.SevError,
		diag.XMLMalformedDocument,
		source.Span{File: fileID, Start: 8, End: 28},
		"Unterminated SYSTEM element",
	)
	bag.Add(&d)

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{
			name:     "Absolute path",
			mode:     PathModeAbsolute,
			contains: "/home/user/project/designs/top.hif.xml",
		},
		{
			name:     "Relative path",
			mode:     PathModeRelative,
			contains: "designs/top.hif.xml",
		},
		{
			name:     "Basename only",
			mode:     PathModeBasename,
			contains: "top.hif.xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := PrettyOpts{
				Color:    false,
				Context:  1,
				PathMode: tt.mode,
			}

			Pretty(&buf, bag, fs, opts)
			output := buf.String()

			if !strings.Contains(output, tt.contains) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.contains, output)
			}

			// Проверяем что есть основные элементы
			if !strings.Contains(output, "ERROR") {
				t.Error("Expected ERROR in output")
			}
			if !strings.Contains(output, "XML2001") {
				t.Error("Expected XML2001 code in output")
			}
			if !strings.Contains(output, "Unterminated SYSTEM") {
				t.Error("Expected error message in output")
			}
		})
	}
}

// TestPathModeAuto проверяет авто-режим выбора пути
func TestPathModeAuto(t *testing.T) {
	fs := source.NewFileSet()

	tests := []struct {
		name     string
		path     string
		expected string // что должно быть в выводе
	}{
		{
			name:     "Short path - as is",
			path:     "top.hif.xml",
			expected: "top.hif.xml",
		},
		{
			name:     "Long absolute path - basename",
			path:     "/very/long/absolute/path/to/some/nested/directory/cpu.hif.xml",
			expected: "cpu.hif.xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := []byte("<INT value=\"42\"/>\n")
			fileID := fs.AddVirtual(tt.path, content)

			bag := diag.NewBag(10)
			d := diag.New(
				diag.SevWarning,
				diag.XMLBadScalar,
				source.Span{File: fileID, Start: 8, End: 10},
				"Test warning",
			)
			bag.Add(&d)

			var buf bytes.Buffer
			opts := PrettyOpts{
				Color:    false,
				Context:  0,
				PathMode: PathModeAuto,
			}

			Pretty(&buf, bag, fs, opts)
			output := buf.String()

			if !strings.Contains(output, tt.expected) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.expected, output)
			}
		})
	}
}

type staticFixThunk struct {
	fix *diag.Fix
}

func (t staticFixThunk) ID() string {
	if t.fix.ID != "" {
		return t.fix.ID
	}
	return "static-fix"
}

func (t staticFixThunk) Build(_ diag.FixBuildContext) (diag.Fix, error) {
	return *t.fix, nil
}

func TestPrettyNotesAndFixes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("<PORT name=\"clk\"/>\n")
	fileID := fs.AddVirtual("entity.hif.xml", content)

	bag := diag.NewBag(4)
	primary := source.Span{File: fileID, Start: 6, End: 10}
	d := diag.New(diag.SevWarning, diag.XMLMissingAttribute, primary, "port has no direction")

	noteSpan := source.Span{File: fileID, Start: 11, End: 15}
	d = d.WithNote(noteSpan, "direction defaults to none, which no pass accepts")

	insertSpan := source.Span{File: fileID, Start: primary.End, End: primary.End}
	d = d.WithFix("insert direction attribute", diag.FixEdit{Span: insertSpan, NewText: " direction=\"IN\""})

	wholeSpan := source.Span{File: fileID, Start: 0, End: uint32(len(content))}
	staticFix := &diag.Fix{
		ID:            "comment-out-port-001",
		Title:         "comment out the port element",
		Kind:          diag.FixKindRefactor,
		Applicability: diag.FixApplicabilitySafeWithHeuristics,
		Edits: []diag.TextEdit{
			{Span: source.Span{File: fileID, Start: wholeSpan.Start, End: wholeSpan.Start}, NewText: "<!-- "},
			{Span: source.Span{File: fileID, Start: wholeSpan.End, End: wholeSpan.End}, NewText: " -->"},
		},
	}

	lazyFix := diag.Fix{
		Title:         "comment out the port element",
		Kind:          diag.FixKindRefactor,
		Applicability: diag.FixApplicabilitySafeWithHeuristics,
		Thunk: staticFixThunk{
			fix: staticFix,
		},
	}
	d = d.WithFixSuggestion(lazyFix)

	bag.Add(&d)

	var buf bytes.Buffer
	opts := PrettyOpts{
		Color:     false,
		Context:   0,
		PathMode:  PathModeBasename,
		ShowNotes: true,
		ShowFixes: true,
	}
	Pretty(&buf, bag, fs, opts)

	output := buf.String()

	if !strings.Contains(output, "note: entity.hif.xml:1:12") {
		t.Fatalf("expected note with location, got:\n%s", output)
	}

	if !strings.Contains(output, "fix #1: insert direction attribute") {
		t.Fatalf("expected first fix entry, got:\n%s", output)
	}

	if !strings.Contains(output, "apply=\" direction=\\\"IN\\\"\"") {
		t.Fatalf("expected fix edit apply preview, got:\n%s", output)
	}

	if !strings.Contains(output, "id=comment-out-port-001") {
		t.Fatalf("expected lazy fix id in output, got:\n%s", output)
	}
}

func TestPrettyFixPreview(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("<SIGNAL name=\"q\"></SIGNAL>")
	fileID := fs.AddVirtual("example.hif.xml", content)

	bag := diag.NewBag(2)
	insertSpan := source.Span{File: fileID, Start: 16, End: 16}
	d := diag.New(diag.SevWarning, diag.XMLMissingChild, insertSpan, "signal has no type child")
	d = d.WithFix("insert bit type", diag.FixEdit{
		Span:    insertSpan,
		NewText: "><BIT/",
	})

	bag.Add(&d)

	var buf bytes.Buffer
	opts := PrettyOpts{
		Color:       false,
		Context:     0,
		PathMode:    PathModeBasename,
		ShowFixes:   true,
		ShowPreview: true,
	}
	Pretty(&buf, bag, fs, opts)

	output := buf.String()
	if !strings.Contains(output, "preview:") {
		t.Fatalf("expected preview header in output, got:\n%s", output)
	}
	if !strings.Contains(output, "- <SIGNAL name=\"q\"></SIGNAL>") {
		t.Fatalf("expected before line in preview, got:\n%s", output)
	}
	if !strings.Contains(output, "+ <SIGNAL name=\"q\"><BIT/></SIGNAL>") {
		t.Fatalf("expected after line in preview, got:\n%s", output)
	}
}
