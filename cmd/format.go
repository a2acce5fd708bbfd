package cmd

import (
	"os"
	"strings"
	"unicode/utf8"

	colorize "github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/cardpack/internal/card"
)

var redSuits = map[card.Identifier]bool{
	card.Hearts:   true,
	card.Diamonds: true,
	card.Herz:     true,
	card.Schellen: true,
}

// paint colors text the way the card's suit is printed.
func paint(c card.Card, text string) string {
	if redSuits[c.Suit.Name] {
		return colorize.RedString(text)
	}
	return colorize.HiWhiteString(text)
}

// terminalWidth returns the width of stdout, or 80.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// wrapText wraps text to a specified width, ignoring ANSI escapes
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	currentWidth := 0
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		wordWidth := visibleWidth(word)
		if currentLine == "" {
			currentLine, currentWidth = word, wordWidth
		} else if currentWidth+1+wordWidth <= width {
			currentLine += " " + word
			currentWidth += 1 + wordWidth
		} else {
			result = append(result, currentLine)
			currentLine, currentWidth = word, wordWidth
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

func visibleWidth(s string) int {
	return utf8.RuneCountInString(stripAnsi(s))
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
