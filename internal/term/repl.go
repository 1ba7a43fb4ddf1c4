package term

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/peterkuimelis/kaiju/internal/game"
	"github.com/peterkuimelis/kaiju/internal/session"
	"github.com/peterkuimelis/kaiju/internal/view"
)

const help = `Commands:
  p N            play hand card N
  b build N      buy card N from the build store
  b kaiju N      buy card N from the kaiju store
  t ZONE N       target card N in ZONE (kaiju, buildings, hand)
  t none         play the pending card without a target
  e              end turn
  l              show the full log
  s              show the board
  q              concede and quit`

// REPL renders a session to a terminal and reads commands.
type REPL struct {
	s   *session.Session
	in  *bufio.Reader
	out io.Writer
}

func NewREPL(s *session.Session, in io.Reader, out io.Writer) *REPL {
	return &REPL{s: s, in: bufio.NewReader(in), out: out}
}

// Run plays until the game is over or input runs out.
func (r *REPL) Run(ctx context.Context) error {
	r.printEvents()
	r.renderState(r.s.State())
	fmt.Fprintln(r.out, `Type "h" for help.`)

	for !r.s.Over() {
		fmt.Fprint(r.out, "> ")
		line, err := r.in.ReadString('\n')
		if err != nil && line == "" {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read command: %w", err)
		}

		cmd, err := ParseCommand(line)
		if err != nil {
			fmt.Fprintln(r.out, err)
			continue
		}
		if err := r.exec(ctx, cmd); err != nil {
			fmt.Fprintf(r.out, "! %v\n", err)
			continue
		}
		r.printEvents()
		if cmd.Kind != CmdHelp && cmd.Kind != CmdLog {
			r.renderState(r.s.State())
		}
	}

	if _, result, ok := r.s.Result(); ok {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, "═══════════════════════════════════")
		fmt.Fprintln(r.out, "          GAME OVER")
		fmt.Fprintln(r.out, "═══════════════════════════════════")
		fmt.Fprintln(r.out, result)
		fmt.Fprintln(r.out, "═══════════════════════════════════")
	}
	return nil
}

func (r *REPL) exec(ctx context.Context, cmd Command) error {
	switch cmd.Kind {
	case CmdPlay:
		return r.s.Click(ctx, game.ZoneHand, cmd.Index)
	case CmdBuy:
		return r.s.Click(ctx, cmd.Zone, cmd.Index)
	case CmdTarget:
		return r.s.Target(ctx, cmd.Zone, cmd.Index)
	case CmdEnd:
		return r.s.EndTurn(ctx)
	case CmdQuit:
		return r.s.Key(ctx, game.KeyEscape)
	case CmdLog:
		for _, e := range view.EventsToView(r.s.Events()) {
			r.renderEvent(e)
		}
	case CmdHelp:
		fmt.Fprintln(r.out, help)
	}
	return nil
}

func (r *REPL) printEvents() {
	for _, e := range view.EventsToView(r.s.Drain()) {
		if e.Type == "StateChange" {
			continue
		}
		r.renderEvent(e)
	}
}

func (r *REPL) renderEvent(ev view.EventView) {
	player := ev.Player
	for len(player) < 10 {
		player += " "
	}
	fmt.Fprintf(r.out, "T%-2d %s| %s\n", ev.Turn, player, ev.Details)
}

func (r *REPL) renderState(sv *view.StateView) {
	if sv == nil || len(sv.Players) == 0 {
		return
	}
	w := r.out
	fmt.Fprintln(w)
	fmt.Fprintln(w, "╔══════════════════════════════════════════════════════╗")
	for i, p := range sv.Players {
		if i > 0 {
			fmt.Fprintln(w, "║──────────────────────────────────────────────────────")
		}
		marker := " "
		if p.Active {
			marker = "*"
		}
		fmt.Fprintf(w, "║ %s%s (%s)  Turn %d  Deck: %d  Hand: %d  %s\n",
			marker, p.Name, p.Control, p.Turn, p.DeckCount, p.Hand.Count, formatLedger(p))
		fmt.Fprintf(w, "║  Buildings: %s\n", formatZone(p.Buildings))
		fmt.Fprintf(w, "║  Kaiju:     %s\n", formatZone(p.Kaiju))
		if p.Hand.Cards != nil {
			fmt.Fprintf(w, "║  Hand:      %s\n", formatZone(p.Hand))
		}
		if p.Active {
			for _, st := range p.Stores {
				fmt.Fprintf(w, "║  %-10s %s\n", st.Zone+":", formatZone(st))
			}
		}
	}
	fmt.Fprintln(w, "╚══════════════════════════════════════════════════════╝")

	switch sv.Mode {
	case "target":
		fmt.Fprintf(w, "Choose a target in %s for %s (t %s N, or t none)\n",
			sv.Targeting.Zone, sv.Targeting.Card, strings.ToLower(sv.Targeting.Zone))
	case "over":
		fmt.Fprintln(w, sv.Result)
	default:
		fmt.Fprintf(w, "Round %d | %s's turn\n", sv.Round+1, sv.Active)
	}
}

func formatLedger(p view.PlayerView) string {
	parts := make([]string, 0, len(p.Currencies))
	for _, c := range p.Currencies {
		parts = append(parts, fmt.Sprintf("%s:%d", c, p.Ledger[c]))
	}
	return strings.Join(parts, " ")
}

func formatZone(zv view.ZoneView) string {
	if len(zv.Cards) == 0 {
		return "[ ]"
	}
	var sb strings.Builder
	for _, c := range zv.Cards {
		sb.WriteString(formatCard(c))
		sb.WriteByte(' ')
	}
	return strings.TrimSpace(sb.String())
}

func formatCard(c view.CardView) string {
	label := c.Name
	if c.Cost != "" {
		label += " $" + c.Cost
	}
	if c.Stunned {
		label += " (stunned)"
	}
	if c.Clickable {
		return fmt.Sprintf("[%d:%s]", c.Index+1, label)
	}
	return fmt.Sprintf("[%s]", label)
}

// CommandKind identifies a REPL command.
type CommandKind int

const (
	CmdHelp CommandKind = iota
	CmdPlay
	CmdBuy
	CmdTarget
	CmdEnd
	CmdLog
	CmdShow
	CmdQuit
)

// Command is a parsed REPL line. Index is 0-based.
type Command struct {
	Kind  CommandKind
	Zone  game.BoardZone
	Index int
}

var zoneWords = map[string]game.BoardZone{
	"hand":      game.ZoneHand,
	"buildings": game.ZoneBuildings,
	"building":  game.ZoneBuildings,
	"kaiju":     game.ZoneKaiju,
	"none":      game.ZoneNone,
}

var storeWords = map[string]game.BoardZone{
	"build": game.ZoneBuildStore,
	"kaiju": game.ZoneKaijuStore,
}

// ParseCommand parses one line of input. Card numbers are 1-based.
func ParseCommand(line string) (Command, error) {
	f := strings.Fields(strings.ToLower(line))
	if len(f) == 0 {
		return Command{Kind: CmdShow}, nil
	}
	switch f[0] {
	case "h", "help", "?":
		return Command{Kind: CmdHelp}, nil
	case "e", "end":
		return Command{Kind: CmdEnd}, nil
	case "l", "log":
		return Command{Kind: CmdLog}, nil
	case "s", "show":
		return Command{Kind: CmdShow}, nil
	case "q", "quit":
		return Command{Kind: CmdQuit}, nil
	case "p", "play":
		if len(f) != 2 {
			return Command{}, errors.New("usage: p N")
		}
		idx, err := cardNumber(f[1])
		return Command{Kind: CmdPlay, Zone: game.ZoneHand, Index: idx}, err
	case "b", "buy":
		if len(f) != 3 {
			return Command{}, errors.New("usage: b build|kaiju N")
		}
		zone, ok := storeWords[f[1]]
		if !ok {
			return Command{}, fmt.Errorf("unknown store %q", f[1])
		}
		idx, err := cardNumber(f[2])
		return Command{Kind: CmdBuy, Zone: zone, Index: idx}, err
	case "t", "target":
		if len(f) == 2 && f[1] == "none" {
			return Command{Kind: CmdTarget, Zone: game.ZoneNone}, nil
		}
		if len(f) != 3 {
			return Command{}, errors.New("usage: t ZONE N")
		}
		zone, ok := zoneWords[f[1]]
		if !ok || zone == game.ZoneNone {
			return Command{}, fmt.Errorf("unknown zone %q", f[1])
		}
		idx, err := cardNumber(f[2])
		return Command{Kind: CmdTarget, Zone: zone, Index: idx}, err
	}
	return Command{}, fmt.Errorf("unknown command %q (h for help)", f[0])
}

func cardNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%q is not a card number", s)
	}
	return n - 1, nil
}
