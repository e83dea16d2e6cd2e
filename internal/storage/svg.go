package storage

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/attmoc/attmoc/internal/script"
	"github.com/attmoc/attmoc/internal/sequencer"
)

const (
	svgCharWidth  = 8.4
	svgLineHeight = 22.0
	svgPadding    = 24.0
	svgHeader     = 40.0
)

var svgCategoryColors = map[script.Category]string{
	script.Command:      "#4ade80",
	script.Status:       "#60a5fa",
	script.Announcement: "#22d3ee",
	script.Plain:        "#9ca3af",
}

const svgSparkleColor = "#c084fc"

func svgColor(line string) string {
	if script.Sparkle(line) {
		return svgSparkleColor
	}
	return svgCategoryColors[script.Classify(line)]
}

// TranscriptToSVG draws a transcript as a terminal window.
func TranscriptToSVG(title string, t sequencer.Transcript) string {
	var rows []string
	rows = append(rows, t.Lines...)
	rows = append(rows, strings.Split(t.Partial+sequencer.CursorMarker, "\n")...)

	cols := utf8.RuneCountInString(title) + 12
	for _, r := range rows {
		if n := utf8.RuneCountInString(r); n > cols {
			cols = n
		}
	}

	width := float64(cols)*svgCharWidth + 2*svgPadding
	height := svgHeader + float64(len(rows))*svgLineHeight + 2*svgPadding

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" rx="12" fill="#111827"/>
<rect width="100%%" height="%.0f" rx="12" fill="#1f2937"/>
<circle cx="20" cy="20" r="6" fill="#ef4444"/>
<circle cx="40" cy="20" r="6" fill="#eab308"/>
<circle cx="60" cy="20" r="6" fill="#22c55e"/>
<text x="84" y="25" fill="#9ca3af" font-family="monospace" font-size="13">%s</text>
<g font-family="monospace" font-size="14">
`, width, height, width, height, svgHeader, escape(title)))

	partialStart := len(t.Lines)
	color := ""
	for i, r := range rows {
		// Continuation rows of a multi-line partial keep the entry's colour.
		if i <= partialStart {
			color = svgColor(r)
		}
		y := svgHeader + svgPadding + float64(i+1)*svgLineHeight - 6
		sb.WriteString(fmt.Sprintf(`<text x="%.0f" y="%.0f" fill="%s" xml:space="preserve">%s</text>
`, svgPadding, y, color, escape(r)))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// ExportSVG renders the frame of recording id with the most characters
// on screen and writes it to path.
func (s *Store) ExportSVG(id, path string) error {
	meta, err := s.Load(id)
	if err != nil {
		return err
	}
	frames, err := s.LoadFrames(id)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("recording %s has no frames", id)
	}

	best := frames[0]
	for _, f := range frames[1:] {
		if f.Revealed > best.Revealed {
			best = f
		}
	}

	title := meta.Title
	if title == "" {
		title = meta.Preset
	}
	return os.WriteFile(path, []byte(TranscriptToSVG(title, Transcript(meta, best))), 0644)
}

func escape(s string) string {
	var sb strings.Builder
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
