package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"github.com/Slava-Fly/Crystals-Dragons/pkg/engine/input"
	"github.com/Slava-Fly/Crystals-Dragons/pkg/engine/terminal"
	"github.com/Slava-Fly/Crystals-Dragons/pkg/engine/world"
	"github.com/Slava-Fly/Crystals-Dragons/pkg/game/renderer"
	"github.com/Slava-Fly/Crystals-Dragons/pkg/game/state"
)

// QuitCommand is returned by GetInput when the input stream ends
const QuitCommand = "quit"

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out      io.Writer
	noColor  bool
	severity map[renderer.Severity]color.Style

	colorAction      color.Style
	colorActionShort color.Style
	colorItem        color.Style
	colorSubtle      color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer writing to stdout
func New(noColor bool) *TUIRenderer {
	return &TUIRenderer{out: os.Stdout, noColor: noColor}
}

// NewWithWriter creates a TUI renderer writing to w
func NewWithWriter(w io.Writer, noColor bool) *TUIRenderer {
	return &TUIRenderer{out: w, noColor: noColor}
}

// Init sets up the colour styles. Colour is switched off when asked to or when stdout is not a terminal.
func (t *TUIRenderer) Init() {
	if t.noColor || !terminal.IsTerminal() {
		color.Disable()
	}

	t.severity = map[renderer.Severity]color.Style{
		renderer.SeverityNormal:  {color.FgWhite},
		renderer.SeverityInfo:    {color.FgBlue},
		renderer.SeverityWarning: {color.FgYellow},
		renderer.SeverityDanger:  {color.FgRed, color.OpBold},
		renderer.SeveritySuccess: {color.FgGreen, color.OpBold},
	}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorItem = color.Style{color.FgMagenta}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:?]+)}`)
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	if terminal.IsTerminal() {
		fmt.Fprint(t.out, "\033[H\033[2J")
	}
}

// Show prints one engine response in the colour of its severity
func (t *TUIRenderer) Show(out renderer.Output) {
	style, ok := t.severity[out.Severity]
	if !ok {
		fmt.Fprintln(t.out, out.Text)
		return
	}
	fmt.Fprintln(t.out, style.Sprint(out.Text))
}

// GetInput reads one command line. Arrow keys are accepted on an interactive terminal.
func (t *TUIRenderer) GetInput() string {
	var (
		line string
		err  error
	)
	if input.IsInteractive() {
		line, err = input.GetInputWithArrows()
	} else {
		line, err = input.GetInput()
	}

	if errors.Is(err, io.EOF) {
		return QuitCommand
	}
	if err != nil {
		return ""
	}
	return line
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	for _, match := range t.regexpStringFunctions.FindAllStringSubmatch(ret, -1) {
		function := match[1]
		operand := match[2]

		var val string
		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ITEM":
			val = t.colorItem.Sprint(operand)
		case "ACTION":
			val = t.colorActionShort.Sprint(operand[0:1]) + t.colorAction.Sprint(operand[1:])
		default:
			val = operand
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// RenderFrame renders the status bar and the input prompt
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	t.printStatusBar(g)
	fmt.Fprint(t.out, "\n> ")
}

// commandHelp describes the engine commands in the order ShowHelp lists them
var commandHelp = []struct {
	action input.Action
	arg    string
	desc   string
}{
	{input.ActionGet, "item", "pick an item up"},
	{input.ActionGet, "gold", "collect coins"},
	{input.ActionDrop, "item", "leave an item in the room"},
	{input.ActionEat, "food", "gain more steps"},
	{input.ActionOpen, "", "open the chest with the key"},
	{input.ActionFight, "", "attack a monster with the sword"},
}

var moveActions = []input.Action{
	input.ActionMoveNorth,
	input.ActionMoveSouth,
	input.ActionMoveEast,
	input.ActionMoveWest,
}

// ShowHelp lists the commands the game understands
func (t *TUIRenderer) ShowHelp() {
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(gotext.Get("Commands:")))
	verbs := input.GetBindingsByAction()

	var moves []string
	for _, action := range moveActions {
		for _, verb := range verbs[action] {
			moves = append(moves, "ACTION{"+verb+"}")
		}
	}
	t.printBullet(strings.Join(moves, ", ") + ": GT{walk through a door}")

	for _, h := range commandHelp {
		for _, verb := range verbs[h.action] {
			line := "ACTION{" + verb + "}"
			if h.arg != "" {
				line += " ITEM{" + h.arg + "}"
			}
			t.printBullet(line + ": GT{" + h.desc + "}")
		}
	}

	// Handled by the shell, never bound to an engine action
	t.printBullet("ACTION{log}: GT{show the recent messages}")
	t.printBullet("ACTION{quit}: GT{leave the game}")
}

// printBullet prints a bulleted item
func (t *TUIRenderer) printBullet(txt string) {
	fmt.Fprint(t.out, "- "+t.FormatText("%s", txt)+"\n")
}

// printStatusBar renders steps, coins and the inventory
func (t *TUIRenderer) printStatusBar(g *state.Game) {
	fmt.Fprintln(t.out)

	p := g.Player
	fmt.Fprint(t.out, t.colorSubtle.Sprint(gotext.Get("Steps: ")))
	stepsStyle := t.severity[renderer.SeverityNormal]
	if p.StepsLeft <= 5 {
		stepsStyle = t.severity[renderer.SeverityDanger]
	}
	fmt.Fprint(t.out, stepsStyle.Sprintf("%d", p.StepsLeft))
	fmt.Fprint(t.out, t.colorSubtle.Sprint(gotext.Get("  Coins: ")))
	fmt.Fprintln(t.out, t.severity[renderer.SeveritySuccess].Sprintf("%d", p.Coins))

	fmt.Fprint(t.out, t.colorSubtle.Sprint(gotext.Get("Inventory: ")))
	if len(p.Inventory) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint(gotext.Get("(empty)")))
		return
	}

	items := make([]string, 0, len(p.Inventory))
	for _, name := range world.Names(p.Inventory) {
		items = append(items, t.colorItem.Sprint(name))
	}
	fmt.Fprintln(t.out, strings.Join(items, t.colorSubtle.Sprint(", ")))
}

// ShowLog renders the recent message log
func (t *TUIRenderer) ShowLog(g *state.Game) {
	width := terminal.GetWidth()

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(terminal.Rule(width, gotext.Get("Messages"))))

	if len(g.Messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint(gotext.Get("  (no messages)")))
	} else {
		for _, msg := range g.Messages {
			// Multi-line descriptions are indented as a block
			fmt.Fprintf(t.out, "  %s\n", strings.ReplaceAll(msg, "\n", "\n  "))
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(terminal.Rule(width, "")))
}
