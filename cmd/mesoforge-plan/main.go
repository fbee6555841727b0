// mesoforge-plan generates a mesocycle offline and stores it in a local
// SQLite file, for planning on a machine without the server running.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/meltforce/mesoforge/internal/models"
	"github.com/meltforce/mesoforge/internal/plan"
	"github.com/meltforce/mesoforge/internal/storage"
	"github.com/meltforce/mesoforge/internal/templates"
)

func main() {
	storeDir := flag.String("store", defaultStoreDir(), "directory for the local store")
	listSplits := flag.Bool("list-splits", false, "list available split templates and exit")
	name := flag.String("name", "", "mesocycle name")
	split := flag.String("split", "Push/Pull/Legs", "split template name")
	start := flag.String("start", "", "start date (YYYY-MM-DD), defaults to next Monday")
	weeks := flag.Int("weeks", 4, "number of weeks (1-12)")
	deload := flag.Bool("deload", false, "reserve the final week as a deload")
	progression := flag.Float64("progression", 5, "weekly progression percentage (0-20)")
	asJSON := flag.Bool("json", false, "print the full document as JSON")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	if *listSplits {
		for _, n := range templates.SplitNames() {
			fmt.Println(n)
		}
		return
	}

	if *name == "" {
		fmt.Fprintln(os.Stderr, "-name is required")
		os.Exit(2)
	}

	startDate, err := parseStart(*start)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	tpl, err := templates.SplitByName(*split)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	m, err := plan.NewMesocycle(plan.GenerateParams{
		Name:           *name,
		Split:          tpl,
		StartDate:      startDate,
		WeekCount:      *weeks,
		IncludeDeload:  *deload,
		ProgressionPct: *progression,
	}, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	store, err := storage.OpenLocalStore(*storeDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.SaveMesocycle(context.Background(), m); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(m)
		return
	}
	printSummary(m)
}

func defaultStoreDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mesoforge"
	}
	return fmt.Sprintf("%s/.mesoforge", home)
}

func parseStart(s string) (time.Time, error) {
	if s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, fmt.Errorf("start date must be YYYY-MM-DD: %w", err)
		}
		return t, nil
	}
	// Next Monday
	now := time.Now().UTC()
	offset := (int(time.Monday) - int(now.Weekday()) + 7) % 7
	if offset == 0 {
		offset = 7
	}
	return now.AddDate(0, 0, offset), nil
}

func printSummary(m *models.Mesocycle) {
	fmt.Printf("%s  (%s)\n", m.Name, m.ID)
	fmt.Printf("%s to %s, %d weeks\n\n",
		m.StartDate.Format("2006-01-02"), m.EndDate.Format("2006-01-02"), m.WeekCount)

	keys := make([]string, 0, len(m.Workouts))
	for k := range m.Workouts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, _ := models.ParseWeekKey(keys[i])
		b, _ := models.ParseWeekKey(keys[j])
		return a < b
	})

	for _, k := range keys {
		sessions := m.Workouts[k]
		if len(sessions) == 0 {
			fmt.Printf("%s: deload (no generated workouts)\n", k)
			continue
		}
		fmt.Printf("%s: %s\n", k, sessions[0].IntensityBand.Label)
		for _, ws := range sessions {
			fmt.Printf("  %s  %s  (%d exercises)\n",
				ws.Date.Format("Mon 2006-01-02"), ws.Name, len(ws.Exercises))
		}
	}
}
