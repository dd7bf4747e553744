package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"slices"
	"strings"

	"github.com/hassan-31x/ds2-project/internal/config"
	"github.com/hassan-31x/ds2-project/internal/logging"
	"github.com/hassan-31x/ds2-project/internal/model"
	"github.com/hassan-31x/ds2-project/internal/scheduler"
)

func main() {
	filePathPtr := flag.String("file", "", "Path to the JSON scenario file")
	outFilePathPtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	seedPtr := flag.Int64("seed", 0, "Seed for the reordering pass; 0 uses the configured SCHEDULER_SEED")
	showOrderingsPtr := flag.Bool("orderings", false, "Also print the admitted section orderings")
	flag.Parse()

	filePath := *filePathPtr
	if filePath == "" {
		log.Fatal("an input file must be specified")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}
	if *seedPtr != 0 {
		cfg.Seed = *seedPtr
	}

	logger := logging.New(cfg.Environment)
	defer logger.Sync()

	input, err := model.InputFromJson(filePath)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	engine := scheduler.New(scheduler.Options{
		Logger:      logger,
		MaxSections: cfg.MaxSections,
	})
	if err := scheduler.RegisterScenario(engine, input); err != nil {
		log.Fatalf("cannot register scenario: %v", err)
	}

	satisfied := engine.GenerateSchedule()

	var out strings.Builder
	if satisfied {
		out.WriteString("Schedule satisfies all requirements\n")
	} else {
		out.WriteString("No fully satisfying schedule found\n")
	}

	if current, ok := engine.CurrentSchedule(); ok {
		writeSchedule(&out, current)
	} else {
		out.WriteString("No schedule could be generated\n")
	}

	out.WriteString(fmt.Sprintf("Candidates: %v\n", len(engine.AllPossibleSchedules())))

	if *showOrderingsPtr {
		tree := engine.BuildPQTree()
		out.WriteString("Admitted orderings:\n")
		for _, frontier := range tree.Frontiers() {
			out.WriteString("  " + strings.Join(frontier, " -> ") + "\n")
		}
		tree.Reorder(rand.New(rand.NewSource(cfg.Seed)))
		out.WriteString("Reordered arrangement:\n  " + strings.Join(tree.Frontier(), " -> ") + "\n")
	}

	if *outFilePathPtr == "" {
		fmt.Print(out.String())
		return
	}
	if err := os.WriteFile(*outFilePathPtr, []byte(out.String()), 0644); err != nil {
		log.Fatalf("cannot write output file: %v", err)
	}
}

func writeSchedule(out *strings.Builder, schedule model.Schedule) {
	sections := slices.Clone(schedule.Sections)
	slices.SortStableFunc(sections, func(a, b model.Section) int {
		if a.Slot.Day() != b.Slot.Day() {
			return int(a.Slot.Day()) - int(b.Slot.Day())
		}
		return a.Slot.StartMinutes() - b.Slot.StartMinutes()
	})

	for _, section := range sections {
		out.WriteString(fmt.Sprintf("%-12s %-10s teacher=%-4s %v\n",
			section.ID, section.CourseCode, section.TeacherID, section.Slot))
	}
}
