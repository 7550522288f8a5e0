// ABOUTME: Headless replay of scripted drags against a board file
// ABOUTME: Parses replay scripts, drives the drag controller and prints a step table

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"listdrag/board"
	"listdrag/config"
	"listdrag/drag"
	"listdrag/geometry"
	"listdrag/layout"
	"listdrag/pool"
	"listdrag/state"
)

const (
	defaultReplayWidth  = 120
	defaultReplayHeight = 40
	replayTitleWidth    = 24
)

var (
	replayWidth  int
	replayHeight int
	replayJump   bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <board> <script>",
	Short: "Run a drag script against a board without a terminal",
	Long: `Replays a script of drag commands against a board laid out on a virtual
terminal and prints the drag phase, destination and displaced items after each
step. The resulting board is written back unless --dry-run is given, in which
case it is printed instead.

Script commands, one per line:
  lift <item> [keyboard|pointer]   up | down | left | right
  move <dx> <dy>                   scroll <list> <offset>
  window <dx> <dy>                 disable <list> | enable <list>
  collect                          drop | cancel`,
	Args: cobra.ExactArgs(2),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().IntVar(&replayWidth, "width", defaultReplayWidth, "virtual terminal width")
	replayCmd.Flags().IntVar(&replayHeight, "height", defaultReplayHeight, "virtual terminal height")
	replayCmd.Flags().BoolVar(&replayJump, "jump-scroll", false, "use JUMP auto scrolling (overrides config)")
	rootCmd.AddCommand(replayCmd)
}

// ReplayOptions configures a replay run
type ReplayOptions struct {
	Width  int
	Height int
	Config config.Config
}

// Command is one parsed script line
type Command struct {
	Line int
	Verb string
	Args []string
}

// String renders the command as written
func (c Command) String() string {
	return strings.TrimSpace(c.Verb + " " + strings.Join(c.Args, " "))
}

// arity is the number of arguments each verb takes; -1 means one or more
var arity = map[string]int{
	"lift":    -1,
	"up":      0,
	"down":    0,
	"left":    0,
	"right":   0,
	"move":    2,
	"window":  2,
	"scroll":  -1,
	"disable": -1,
	"enable":  -1,
	"collect": 0,
	"drop":    0,
	"cancel":  0,
}

// ParseScript reads replay commands. Blank lines and lines starting with
// "#" or "//" are skipped.
func ParseScript(r io.Reader) ([]Command, error) {
	var cmds []Command

	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())

		if text == "" || strings.HasPrefix(text, "#") || strings.HasPrefix(text, "//") {
			continue
		}

		fields := strings.Fields(text)
		verb := strings.ToLower(fields[0])
		args := fields[1:]

		want, ok := arity[verb]
		if !ok {
			return nil, fmt.Errorf("line %d: unknown command %q", line, fields[0])
		}

		switch {
		case want < 0 && len(args) == 0:
			return nil, fmt.Errorf("line %d: %s needs an argument", line, verb)
		case want >= 0 && len(args) != want:
			return nil, fmt.Errorf("line %d: %s takes %d arguments, got %d", line, verb, want, len(args))
		}

		if verb == "scroll" && len(args) < 2 {
			return nil, fmt.Errorf("line %d: scroll needs a list and an offset", line)
		}

		cmds = append(cmds, Command{Line: line, Verb: verb, Args: args})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	return cmds, nil
}

// Replayer drives a drag controller from script commands
type Replayer struct {
	ctrl *drag.Controller
}

// NewReplayer lays b out on a virtual terminal
func NewReplayer(b *board.Board, opts ReplayOptions, p *pool.WorkerPool, log drag.Logger) *Replayer {
	measurer := layout.NewMeasurer(layout.Options{
		Width:       opts.Width,
		Height:      opts.Height,
		ColumnWidth: opts.Config.ColumnWidth,
		ColumnGap:   opts.Config.ColumnGap,
		ItemGap:     opts.Config.ItemGap,
	}, p)

	mode := state.AutoScrollFluid
	if opts.Config.JumpScroll {
		mode = state.AutoScrollJump
	}

	return &Replayer{ctrl: drag.New(b, measurer, log, drag.Options{AutoScrollMode: mode})}
}

// Board returns the board as the script left it
func (r *Replayer) Board() *board.Board {
	return r.ctrl.Board()
}

// Run executes cmds, writing one table row per command to w. A drag still
// running at the end is cancelled.
func (r *Replayer) Run(cmds []Command, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "#\tCommand\tPhase\tDestination\tDisplaced"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, cmd := range cmds {
		if err := r.apply(cmd); err != nil {
			_ = tw.Flush()
			return fmt.Errorf("line %d (%s): %w", cmd.Line, cmd, err)
		}

		if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			cmd.Line,
			ansi.Truncate(cmd.String(), replayTitleWidth, "…"),
			r.ctrl.State().Phase(),
			r.destination(),
			r.displaced(),
		); err != nil {
			return fmt.Errorf("failed to write step: %w", err)
		}
	}

	if !r.ctrl.Idle() {
		if err := r.finish(state.ReasonCancel); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(tw, "-\t(end of script)\t%s\t-\t-\n", r.ctrl.State().Phase()); err != nil {
			return fmt.Errorf("failed to write step: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

func (r *Replayer) apply(cmd Command) error {
	switch cmd.Verb {
	case "lift":
		return r.lift(cmd.Args)
	case "up":
		return r.ctrl.Step(drag.Up)
	case "down":
		return r.ctrl.Step(drag.Down)
	case "left":
		return r.ctrl.Step(drag.Left)
	case "right":
		return r.ctrl.Step(drag.Right)
	case "move":
		delta, err := parsePair(cmd.Args)
		if err != nil {
			return err
		}

		return r.ctrl.MoveBy(delta)
	case "window":
		delta, err := parsePair(cmd.Args)
		if err != nil {
			return err
		}

		return r.ctrl.ScrollWindow(delta)
	case "scroll":
		return r.scroll(cmd.Args)
	case "disable", "enable":
		list, err := r.findList(strings.Join(cmd.Args, " "))
		if err != nil {
			return err
		}

		return r.ctrl.SetEnabled(list.ID, cmd.Verb == "enable")
	case "collect":
		return r.ctrl.Recollect()
	case "drop":
		return r.finish(state.ReasonDrop)
	case "cancel":
		return r.finish(state.ReasonCancel)
	default:
		return fmt.Errorf("unknown command %q", cmd.Verb)
	}
}

// lift starts a drag. The last word may pick the sensor.
func (r *Replayer) lift(args []string) error {
	mode := state.ModeSnap

	switch strings.ToLower(args[len(args)-1]) {
	case "pointer":
		mode = state.ModeFluid
		args = args[:len(args)-1]
	case "keyboard":
		args = args[:len(args)-1]
	}

	title := strings.Join(args, " ")

	item, ok := r.ctrl.Board().FindItem(title)
	if !ok {
		return fmt.Errorf("item %q: %w", title, board.ErrNotFound)
	}

	if mode == state.ModeSnap {
		return r.ctrl.LiftWithKeyboard(item.ID)
	}

	center, _ := r.ctrl.ClientCenter(item.ID)

	return r.ctrl.Lift(item.ID, state.ModeFluid, center)
}

// scroll sets a list's scroll offset along its axis
func (r *Replayer) scroll(args []string) error {
	offset, err := strconv.ParseFloat(args[len(args)-1], 64)
	if err != nil {
		return fmt.Errorf("invalid offset %q: %w", args[len(args)-1], err)
	}

	list, err := r.findList(strings.Join(args[:len(args)-1], " "))
	if err != nil {
		return err
	}

	current := r.ctrl.Scroll().List(list.ID)
	target := geometry.Position{X: current.X, Y: offset}
	if list.Horizontal {
		target = geometry.Position{X: offset, Y: current.Y}
	}

	return r.ctrl.ScrollList(list.ID, target.Subtract(current))
}

// finish drops and runs any drop animation to the end
func (r *Replayer) finish(reason state.DropReason) error {
	if err := r.ctrl.Drop(reason); err != nil {
		return err
	}

	if r.ctrl.State().Phase() == state.PhaseDropAnimating {
		return r.ctrl.CompleteDrop()
	}

	return nil
}

func (r *Replayer) findList(title string) (board.List, error) {
	list, ok := r.ctrl.Board().FindList(title)
	if !ok {
		return board.List{}, fmt.Errorf("list %q: %w", title, board.ErrNotFound)
	}

	return list, nil
}

// destination describes where the item would land, or the last drop
func (r *Replayer) destination() string {
	dest := r.ctrl.Impact().Destination

	if r.ctrl.Idle() {
		result, ok := r.ctrl.LastResult()
		if !ok {
			return "-"
		}

		dest = result.Destination
	}

	if dest == nil {
		return "-"
	}

	list, ok := r.ctrl.Layout().List(string(dest.DroppableID))
	if !ok {
		return "-"
	}

	return fmt.Sprintf("%s[%d]", ansi.Truncate(list.Title, replayTitleWidth, "…"), dest.Index)
}

// displaced lists the titles of items moved out of the way
func (r *Replayer) displaced() string {
	displaced := r.ctrl.Impact().Movement.Displaced
	if len(displaced) == 0 {
		return "-"
	}

	titles := make([]string, 0, len(displaced))
	for _, d := range displaced {
		if item, ok := r.ctrl.Layout().Items[string(d.DraggableID)]; ok {
			titles = append(titles, ansi.Truncate(item.Title, replayTitleWidth, "…"))
		}
	}

	return strings.Join(titles, ",")
}

func parsePair(args []string) (geometry.Position, error) {
	x, errX := strconv.ParseFloat(args[0], 64)
	y, errY := strconv.ParseFloat(args[1], 64)

	if err := errors.Join(errX, errY); err != nil {
		return geometry.Position{}, fmt.Errorf("invalid offset: %w", err)
	}

	return geometry.Position{X: x, Y: y}, nil
}

// runReplay executes the replay command
func runReplay(cmd *cobra.Command, args []string) error {
	stop := startProfiling()
	defer stop()

	logr, err := setupLogger(debugMode)
	if err != nil {
		return err
	}

	defer func() {
		_ = logr.Close()
	}()

	boardPath, scriptPath := args[0], args[1]

	b, err := LoadBoard(boardPath)
	if err != nil {
		return err
	}

	f, err := os.Open(scriptPath)
	if err != nil {
		return fmt.Errorf("failed to open script: %w", err)
	}

	cmds, err := ParseScript(f)
	_ = f.Close()

	if err != nil {
		return err
	}

	cfg := loadSharedConfig(resolveConfigPath(configPath), logr).Get()
	if replayJump {
		cfg.JumpScroll = true
	}

	p := pool.NewWorkerPool(0)
	defer p.Close()

	r := NewReplayer(b, ReplayOptions{Width: replayWidth, Height: replayHeight, Config: cfg}, p, logr.With("replay"))

	out := cmd.OutOrStdout()
	if err := r.Run(cmds, out); err != nil {
		return err
	}

	if dryRun {
		fmt.Fprintln(out, "\n--dry-run mode: board not modified")
		fmt.Fprint(out, r.Board().Format())

		return nil
	}

	target := resolveOutput(boardPath, outputPath)
	if err := board.WriteBoard(target, r.Board()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	fmt.Fprintf(out, "\nWrote board to: %s\n", target)

	return nil
}
