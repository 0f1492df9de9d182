package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jigsaw/internal/config"
	"github.com/vovakirdan/tui-jigsaw/internal/platform/tui"
	"github.com/vovakirdan/tui-jigsaw/internal/storage"
)

var scoreFlags scoresOptions

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best times",
	Long: `Display the fastest solves for one grid size, or a summary of every
grid that has been solved when no size is given.

Examples:
  jigsaw scores
  jigsaw scores --rows 3 --cols 3
  jigsaw scores --rows 4 --cols 6 --json
  jigsaw scores --recent --limit 5
  jigsaw scores --id 0b6f...
  jigsaw scores --rows 2 --cols 2 --clear
  jigsaw scores --tui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	f := scoresCmd.Flags()
	f.IntVar(&scoreFlags.rows, "rows", 0, "Grid rows")
	f.IntVar(&scoreFlags.cols, "cols", 0, "Grid columns")
	f.IntVar(&scoreFlags.limit, "limit", 10, "Number of solves to show")
	f.BoolVar(&scoreFlags.json, "json", false, "Print JSON instead of a table")
	f.BoolVar(&scoreFlags.recent, "recent", false, "List the latest solves of every grid")
	f.StringVar(&scoreFlags.id, "id", "", "Show one solve by its id")
	f.BoolVar(&scoreFlags.clear, "clear", false, "Delete every solve of the --rows x --cols grid")
	f.BoolVar(&scoreFlags.tui, "tui", false, "Open the interactive best-times screen")
}

// scoresOptions selects what the scores command prints.
type scoresOptions struct {
	rows, cols int
	limit      int
	json       bool
	recent     bool
	id         string
	clear      bool
	tui        bool
}

func (o scoresOptions) validate() error {
	if (o.rows > 0) != (o.cols > 0) {
		return errors.New("--rows and --cols must be given together")
	}
	modes := 0
	for _, set := range []bool{o.recent, o.id != "", o.clear, o.tui} {
		if set {
			modes++
		}
	}
	if modes > 1 {
		return errors.New("--recent, --id, --clear and --tui are mutually exclusive")
	}
	if o.clear && o.rows == 0 {
		return errors.New("--clear needs --rows and --cols")
	}
	return nil
}

// solveJSON is the --json shape of one solve.
type solveJSON struct {
	ID         string    `json:"id"`
	Picture    string    `json:"picture"`
	Rows       int       `json:"rows"`
	Cols       int       `json:"cols"`
	Moves      int       `json:"moves"`
	DurationMS int64     `json:"duration_ms"`
	Player     string    `json:"player,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func toSolveJSON(s storage.Solve) solveJSON {
	return solveJSON{
		ID:         s.ID,
		Picture:    s.Picture,
		Rows:       s.Rows,
		Cols:       s.Cols,
		Moves:      s.Moves,
		DurationMS: s.Duration.Milliseconds(),
		Player:     s.Player,
		CreatedAt:  s.CreatedAt,
	}
}

// gridJSON is the --json shape of one grid summary.
type gridJSON struct {
	Rows        int       `json:"rows"`
	Cols        int       `json:"cols"`
	Solves      int       `json:"solves"`
	BestMS      int64     `json:"best_ms"`
	AvgMS       int64     `json:"avg_ms"`
	FewestMoves int       `json:"fewest_moves"`
	LastSolved  time.Time `json:"last_solved"`
}

func runScores(cmd *cobra.Command, _ []string) {
	opts := scoreFlags
	if err := opts.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open solve storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening solve database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if opts.tui {
		start := config.DefaultPuzzleConfig().Grid
		if opts.rows > 0 {
			start = config.GridConfig{Rows: opts.rows, Columns: opts.cols}
		}
		cfg := terminalConfig()
		if _, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, start); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	if err := writeScores(cmd.OutOrStdout(), store, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writeScores prints the report selected by o.
func writeScores(w io.Writer, store *storage.Store, o scoresOptions) error {
	switch {
	case o.clear:
		if err := store.ClearSolves(o.rows, o.cols); err != nil {
			return err
		}
		fmt.Fprintf(w, "Cleared all %dx%d solves.\n", o.rows, o.cols)
		return nil
	case o.id != "":
		return printSolve(w, store, o.id, o.json)
	case o.recent:
		return printRecentSolves(w, store, o.limit, o.json)
	case o.rows > 0:
		return printBestSolves(w, store, o.rows, o.cols, o.limit, o.json)
	default:
		return printGridSummary(w, store, o.json)
	}
}

func printSolve(w io.Writer, store *storage.Store, id string, asJSON bool) error {
	s, err := store.SolveByID(id)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no solve with id %q", id)
	}
	if err != nil {
		return err
	}

	if asJSON {
		return printJSON(w, toSolveJSON(*s))
	}

	fmt.Fprintf(w, "Solve %s\n\n", s.ID)
	fmt.Fprintf(w, "  Picture  %s\n", s.Picture)
	fmt.Fprintf(w, "  Grid     %dx%d\n", s.Rows, s.Cols)
	fmt.Fprintf(w, "  Time     %s\n", formatTime(s.Duration))
	fmt.Fprintf(w, "  Moves    %d\n", s.Moves)
	if s.Player != "" {
		fmt.Fprintf(w, "  Player   %s\n", s.Player)
	}
	fmt.Fprintf(w, "  Date     %s\n", s.CreatedAt.Local().Format("2006-01-02 15:04"))
	return nil
}

func printRecentSolves(w io.Writer, store *storage.Store, limit int, asJSON bool) error {
	solves, err := store.RecentSolves(limit)
	if err != nil {
		return err
	}

	if asJSON {
		out := make([]solveJSON, len(solves))
		for i, s := range solves {
			out[i] = toSolveJSON(s)
		}
		return printJSON(w, out)
	}

	if len(solves) == 0 {
		fmt.Fprintln(w, "No solves recorded yet.")
		return nil
	}

	fmt.Fprintln(w, "Recent Solves")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-16s  %-5s  %-8s  %-5s  %s\n", "Date", "Grid", "Time", "Moves", "Picture")
	fmt.Fprintf(w, "  %-16s  %-5s  %-8s  %-5s  %s\n", "----", "----", "----", "-----", "-------")
	for _, s := range solves {
		fmt.Fprintf(w, "  %-16s  %-5s  %-8s  %-5d  %s\n",
			s.CreatedAt.Local().Format("2006-01-02 15:04"), fmt.Sprintf("%dx%d", s.Rows, s.Cols),
			formatTime(s.Duration), s.Moves, s.Picture)
	}
	return nil
}

func printBestSolves(w io.Writer, store *storage.Store, rows, cols, limit int, asJSON bool) error {
	solves, err := store.BestSolves(rows, cols, limit)
	if err != nil {
		return err
	}

	if asJSON {
		out := make([]solveJSON, len(solves))
		for i, s := range solves {
			out[i] = toSolveJSON(s)
		}
		return printJSON(w, out)
	}

	fmt.Fprintf(w, "Best Times - %dx%d\n", rows, cols)
	fmt.Fprintln(w)

	if len(solves) == 0 {
		fmt.Fprintln(w, "No solves recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'jigsaw play --rows %d --cols %d' to set the first time!\n", rows, cols)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-12s  %s\n", "Rank", "Time", "Moves", "Picture", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-12s  %s\n", "----", "----", "-----", "-------", "----")
	for i, s := range solves {
		fmt.Fprintf(w, "  %-4d  %-8s  %-5d  %-12s  %s\n",
			i+1, formatTime(s.Duration), s.Moves, s.Picture, s.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func printGridSummary(w io.Writer, store *storage.Store, asJSON bool) error {
	stats, err := store.GetAllGridStats()
	if err != nil {
		return err
	}

	if asJSON {
		out := make([]gridJSON, len(stats))
		for i, st := range stats {
			out[i] = gridJSON{
				Rows:        st.Rows,
				Cols:        st.Cols,
				Solves:      st.Solves,
				BestMS:      st.BestTime.Milliseconds(),
				AvgMS:       st.AvgTime.Milliseconds(),
				FewestMoves: st.FewestMoves,
				LastSolved:  st.LastSolved,
			}
		}
		return printJSON(w, out)
	}

	if len(stats) == 0 {
		fmt.Fprintln(w, "No solves recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "  %-6s  %-6s  %-8s  %-8s  %s\n", "Grid", "Solves", "Best", "Average", "Fewest moves")
	fmt.Fprintf(w, "  %-6s  %-6s  %-8s  %-8s  %s\n", "----", "------", "----", "-------", "------------")
	for _, st := range stats {
		fmt.Fprintf(w, "  %-6s  %-6d  %-8s  %-8s  %d\n",
			fmt.Sprintf("%dx%d", st.Rows, st.Cols), st.Solves,
			formatTime(st.BestTime), formatTime(st.AvgTime), st.FewestMoves)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Use --rows and --cols to list the best times of one grid.")
	return nil
}

func printJSON(w io.Writer, v any) error {
	data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// formatTime renders a duration as m:ss.t for the tables.
func formatTime(d time.Duration) string {
	d = d.Round(100 * time.Millisecond)
	m := int(d / time.Minute)
	s := d % time.Minute
	return fmt.Sprintf("%d:%04.1f", m, s.Seconds())
}
