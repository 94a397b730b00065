package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yousseftechdev/postmaker/internal/history"
	"github.com/yousseftechdev/postmaker/internal/request"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect, replay or clear the request history",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("number")
		return listHistory("", n)
	},
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("number")
		return listHistory("", n)
	},
}

var historySearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "List recorded requests whose method or URL contains the term",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("number")
		return listHistory(args[0], n)
	},
}

var historyReplayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-send a recorded request through the regular pipeline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid history id %q", args[0])
		}
		store, err := a.openHistory()
		if err != nil {
			return err
		}
		recs, err := store.List()
		_ = store.Close()
		if err != nil {
			return err
		}
		rec, ok := findHistoryRecord(recs, id)
		if !ok {
			return fmt.Errorf("no history record with id %d", id)
		}
		exec, closeStore, err := a.executor()
		if err != nil {
			return err
		}
		defer closeStore()
		return replayRecord(context.Background(), exec, rec, a.debug)
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all history records",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		if !confirm("Are you sure you want to clear all history? (y/N): ") {
			fmt.Println("Cancelled.")
			return nil
		}
		store, err := a.openHistory()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	},
}

func listHistory(term string, n int) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	store, err := a.openHistory()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()
	recs, err := store.List()
	if err != nil {
		return err
	}
	shown := filterHistory(recs, term, n)
	for _, rec := range shown {
		fmt.Printf("[%d] %s  %s %s  ->  %d %s  (%.2f ms)\n",
			rec.ID, rec.Date, rec.Method, rec.URL, rec.Status, rec.Reason, rec.ElapsedMS)
	}
	if len(shown) == 0 {
		if term != "" {
			fmt.Println("No matching history records.")
		} else {
			fmt.Println("No history recorded.")
		}
	}
	return nil
}

// filterHistory applies the search term, then keeps the n most recent entries
// when n > 0. Records arrive oldest-first.
func filterHistory(recs []history.Record, term string, n int) []history.Record {
	term = strings.ToLower(term)
	var out []history.Record
	for _, rec := range recs {
		if term != "" && !matchesHistory(rec, term) {
			continue
		}
		out = append(out, rec)
	}
	if n > 0 && len(out) > n {
		out = out[len(out)-n:]
	}
	return out
}

func matchesHistory(rec history.Record, term string) bool {
	return strings.Contains(strings.ToLower(rec.URL), term) ||
		strings.Contains(strings.ToLower(rec.Method), term)
}

func findHistoryRecord(recs []history.Record, id int64) (history.Record, bool) {
	for _, rec := range recs {
		if rec.ID == id {
			return rec, true
		}
	}
	return history.Record{}, false
}

// replayRecord re-dispatches a recorded exchange: same request line, headers
// and body, carrying the saved output file and only-filter.
func replayRecord(ctx context.Context, exec *request.Executor, rec history.Record, debug bool) error {
	d := request.Descriptor{
		Method:  rec.Method,
		URL:     rec.URL,
		Headers: rec.Headers,
		Body:    rec.Body,
	}
	opts := request.Options{
		OutputFile: rec.OutputFile,
		Only:       rec.Only,
		DebugMode:  debug,
	}
	return exec.Execute(ctx, d, opts)
}

func init() {
	historyCmd.Flags().IntP("number", "n", 0, "show only the N most recent entries")
	historyListCmd.Flags().IntP("number", "n", 0, "show only the N most recent entries")
	historySearchCmd.Flags().IntP("number", "n", 0, "show only the N most recent entries")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historySearchCmd)
	historyCmd.AddCommand(historyReplayCmd)
	historyCmd.AddCommand(historyClearCmd)
}
