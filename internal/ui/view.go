package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const footerHelp = "↑/↓ move  ←/→ adjust  enter select  ctrl+a all  / search  esc back  ctrl+c quit"

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text is pre-rendered; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	if header := m.menuHeader(); header != "" {
		lines = append(lines, styledLine{text: header, style: styles.Header})
	}
	current := m.currentLevel()
	if current != nil {
		m.syncViewport(current)
		start := current.ViewportOffset
		displayItems := current.Items
		if maxItems := m.maxVisibleItems(); maxItems > 0 && len(displayItems) > maxItems {
			if start+maxItems > len(displayItems) {
				start = len(displayItems) - maxItems
			}
			displayItems = displayItems[start : start+maxItems]
		} else {
			start = 0
		}
		if len(current.Items) == 0 {
			msg := "(no entries)"
			if current.Filter != "" {
				msg = fmt.Sprintf("No matches for %q", current.Filter)
			}
			lines = append(lines, styledLine{text: msg, style: styles.Info})
		}
		for i, item := range displayItems {
			lines = append(lines, m.buildItemLine(item.Text, item.Depth, start+i == current.Cursor))
		}
	}
	if tip := m.currentTooltip(); tip != "" {
		lines = append(lines, styledLine{text: tip, style: styles.Tooltip})
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: footerHelp, style: styles.Footer})
	}
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	bottomLines := applyWidth([]styledLine{statusLine, {text: m.promptLine(), raw: true}}, m.width)
	lines = append(lines, bottomLines...)
	return renderLines(lines)
}

// buildItemLine prefixes a pre-rendered row with the cursor indicator and
// its nesting indent.
func (m *Model) buildItemLine(text string, depth int, selected bool) styledLine {
	indicator := " "
	if selected {
		indicator = styles.Cursor.Render("▌")
	}
	return styledLine{
		text: indicator + " " + strings.Repeat("  ", depth) + text,
		raw:  true,
	}
}

func (m *Model) currentTooltip() string {
	current := m.currentLevel()
	if current == nil {
		return ""
	}
	item, ok := current.Current()
	if !ok {
		return ""
	}
	return item.Tooltip
}

func (m *Model) promptLine() string {
	if m.editing != nil {
		label := m.tr.T(m.editing.Label())
		return styles.FilterPrompt.Render(label+": ") + m.editor.View()
	}
	return m.filterPrompt()
}

func (m *Model) filterPrompt() string {
	current := m.currentLevel()
	prompt := styles.FilterPrompt.Render("» ")
	if current == nil {
		return prompt
	}
	m.filterCursor.Style = styles.Cursor.Copy()
	m.filterCursor.TextStyle = styles.Filter.Copy()
	text := current.Filter
	if text == "" {
		placeholder := "(type a shortcut or / to search)"
		if current != m.stack[0] || m.searching {
			placeholder = "(type to search)"
		}
		m.filterCursor.TextStyle = styles.InputPlaceholder.Copy()
		runes := []rune(placeholder)
		return prompt + m.renderFilterCursor(string(runes[0])) + styles.InputPlaceholder.Render(string(runes[1:]))
	}
	runes := []rune(text)
	pos := current.FilterCursorPos()
	before := styles.Filter.Render(string(runes[:pos]))
	caret := " "
	after := ""
	if pos < len(runes) {
		caret = string(runes[pos])
		after = styles.Filter.Render(string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caret) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)
	base := m.filterCursor.TextStyle.Copy().Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	return base.Inherit(styles.Cursor.Copy().Inline(true)).Blink(false).Render(char)
}

func (m *Model) menuHeader() string {
	segments := make([]string, 0, len(m.stack))
	for i, l := range m.stack {
		title := strings.TrimSpace(l.Title)
		if i == 0 {
			title = m.rootTitle
		}
		if title != "" {
			segments = append(segments, title)
		}
	}
	return strings.Join(segments, menuHeaderSeparator)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport(m.currentLevel())
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // bottom bar: error/status + prompt
	if m.menuHeader() != "" {
		used++
	}
	if m.currentTooltip() != "" {
		used++
	}
	if m.currentInfo() != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.forceClearInfo()
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line.raw || line.style == nil {
			out[i] = line.text
			continue
		}
		out[i] = line.style.Render(line.text)
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
