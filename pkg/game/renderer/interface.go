package renderer

import (
	"github.com/Slava-Fly/Crystals-Dragons/pkg/game/state"
)

// Severity tells the presentation layer how to style a message
type Severity int

const (
	SeverityNormal Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityDanger
	SeveritySuccess
)

// String returns the severity name
func (s Severity) String() string {
	switch s {
	case SeverityNormal:
		return "normal"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityDanger:
		return "danger"
	case SeveritySuccess:
		return "success"
	default:
		return "unknown"
	}
}

// Output is one engine response: plain text plus how loud it should be
type Output struct {
	Text     string
	Severity Severity
}

// Normal creates an Output with normal severity
func Normal(text string) Output {
	return Output{Text: text, Severity: SeverityNormal}
}

// Info creates an Output with info severity
func Info(text string) Output {
	return Output{Text: text, Severity: SeverityInfo}
}

// Warning creates an Output with warning severity
func Warning(text string) Output {
	return Output{Text: text, Severity: SeverityWarning}
}

// Danger creates an Output with danger severity
func Danger(text string) Output {
	return Output{Text: text, Severity: SeverityDanger}
}

// Success creates an Output with success severity
func Success(text string) Output {
	return Output{Text: text, Severity: SeveritySuccess}
}

// Renderer defines the interface for game rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, terminal mode, etc.)
	Init()

	// Clear clears the display
	Clear()

	// Show displays a single engine response
	Show(out Output)

	// RenderFrame renders the status bar and message log for the game
	RenderFrame(g *state.Game)

	// GetInput gets a raw command line from the user
	GetInput() string
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display of the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// Show displays an Output using the current renderer
func Show(out Output) {
	if Current != nil {
		Current.Show(out)
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(g *state.Game) {
	if Current != nil {
		Current.RenderFrame(g)
	}
}

// GetInput gets user input from the current renderer
func GetInput() string {
	if Current != nil {
		return Current.GetInput()
	}
	return ""
}
