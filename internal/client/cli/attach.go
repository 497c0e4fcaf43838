package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nsavkin/paperdesk/internal/client/models"
)

// Attach reads a local file and stages it for the next message. The stager
// validates type and size before anything touches the network; rejections
// are printed with their reason.
func (a *App) Attach(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		printlnFn("Could not read file:", err.Error())
		return err
	}

	res := a.stager.Stage([]models.StagedFile{{Name: filepath.Base(path), Data: data}})
	for _, r := range res.Rejected {
		printlnFn(fmt.Sprintf("Rejected %s: %s", r.Name, r.Reason))
	}
	for _, att := range res.Accepted {
		printlnFn(fmt.Sprintf("Staged %s (%s, %d bytes)", att.Name, att.Category, att.SizeBytes))
	}
	return nil
}

// Detach removes a staged file by its number in the files listing.
func (a *App) Detach(arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil || !a.stager.Unstage(n-1) {
		printlnFn(fmt.Sprintf("No staged file %q; run 'files' to see the list.", arg))
		return fmt.Errorf("no staged file %q", arg)
	}
	printlnFn("Removed.")
	return nil
}

// Files prints the files staged for the next message.
func (a *App) Files() error {
	atts := a.stager.Describe()
	if len(atts) == 0 {
		printlnFn("No files staged.")
		return nil
	}
	for i, att := range atts {
		printlnFn(fmt.Sprintf("%d. %s (%s, %d bytes)", i+1, att.Name, att.Category, att.SizeBytes))
	}
	return nil
}
