package cli

import (
	"context"
	"fmt"
	"strconv"
)

// Papers fetches and prints the user's papers. The list is cached so that
// Use can resolve numbers without a second round trip.
func (a *App) Papers(ctx context.Context) error {
	papers, err := a.api.ListPapers(ctx)
	if err != nil {
		printlnFn("Could not list papers:", err.Error())
		return err
	}
	a.papers = papers

	if len(papers) == 0 {
		printlnFn("No papers yet.")
		return nil
	}
	for i, p := range papers {
		printlnFn(fmt.Sprintf("%d. %s [%s] %d/%d words", i+1, p.Title, p.Status, p.CurrentWordCount, p.TargetWordCount))
	}
	return nil
}

// Use switches the active paper by its number in the papers listing and
// reloads the transcript for the new scope. The paper list is fetched first
// if the user never ran `papers`.
func (a *App) Use(ctx context.Context, arg string) error {
	if len(a.papers) == 0 {
		if err := a.Papers(ctx); err != nil {
			return err
		}
	}

	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(a.papers) {
		printlnFn(fmt.Sprintf("No paper %q; run 'papers' to see the list.", arg))
		return fmt.Errorf("no paper %q", arg)
	}

	paper := a.papers[n-1]
	a.activePaper = &paper
	printlnFn(fmt.Sprintf("Working on %q.", paper.Title))
	a.reloadTranscript(ctx)
	return nil
}
