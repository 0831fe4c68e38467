package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/wordweaver-ai/wordweaver/internal/caption"
	"github.com/wordweaver-ai/wordweaver/internal/client"
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(styleTitle.Render("WordWeaver AI"))
	b.WriteString("\n")
	b.WriteString(styleSubtitle.Render("Create engaging social media captions with AI"))
	b.WriteString("\n\n")

	b.WriteString(m.label(fieldDescription, "Content Topic or Description:"))
	b.WriteString("\n")
	descBox := styleBox
	if m.focus == fieldDescription {
		descBox = descBox.BorderForeground(colorPrimary)
	}
	b.WriteString(descBox.Render(m.description.View()))
	b.WriteString("\n\n")

	b.WriteString(m.selector(fieldLanguage, "Output Language:", caption.Languages, m.language))
	b.WriteString("\n")
	b.WriteString(m.selector(fieldPlatform, "Platform:", caption.Platforms, m.platform))
	b.WriteString("\n")
	b.WriteString(m.selector(fieldStyle, "Writing Style:", caption.Styles, m.style))
	b.WriteString("\n\n")

	b.WriteString(m.submitButton())
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" The AI is weaving the best words for you...")
		b.WriteString("\n\n")
	} else if len(m.results) > 0 {
		b.WriteString(m.renderResults())
	}

	if m.status != "" {
		b.WriteString(styleError.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(styleStatusBar.Render("[Tab] Next field  [←/→] Change option  [Ctrl+S] Generate  [1-9/c] Copy  [Esc] Quit"))
	return b.String()
}

func (m *Model) label(f field, text string) string {
	if m.focus == f {
		return styleFocused.Render("> " + text)
	}
	return styleLabel.Render("  " + text)
}

func (m *Model) selector(f field, text string, options []string, current int) string {
	var parts []string
	for i, opt := range options {
		if i == current {
			parts = append(parts, styleFocused.Render("["+opt+"]"))
		} else {
			parts = append(parts, styleSubtitle.Render(" "+opt+" "))
		}
	}
	return m.label(f, text) + " " + strings.Join(parts, " ")
}

func (m *Model) submitButton() string {
	text := "Generate Content"
	if m.loading {
		text = "Generating..."
	}
	style := styleButton
	if !client.CanSubmit(m.description.Value(), m.loading) {
		style = styleButtonDisabled
	}
	prefix := "  "
	if m.focus == fieldSubmit {
		prefix = styleFocused.Render("> ")
	}
	return prefix + style.Render(text)
}

func (m *Model) renderResults() string {
	var b strings.Builder

	if m.failed {
		b.WriteString(styleError.Render(m.results[0]))
		b.WriteString("\n\n")
		return b.String()
	}

	b.WriteString(styleLabel.Render("Here are your alternatives:"))
	b.WriteString("\n")

	width := min(70, max(24, m.width-4))
	for i, text := range m.results {
		copyLabel := "Copy"
		if m.copied == i {
			copyLabel = styleCopied.Render("Copied! ✓")
		}
		footer := styleSubtitle.Render(fmt.Sprintf("%d. %d Characters", i+1, utf8.RuneCountInString(text))) + "  " + copyLabel

		card := styleBox.Width(width)
		if m.focus == fieldResults && m.selected == i {
			card = card.BorderForeground(colorPrimary)
		}
		b.WriteString(card.Render(text + "\n\n" + footer))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}
