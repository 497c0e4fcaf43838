package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nsavkin/paperdesk/internal/filex"
)

// Save writes a message attachment to the downloads directory. Attachments
// with a download ref are fetched from the backend; the rest are
// materialized locally from the message content, which is all the server
// ever had for them.
func (a *App) Save(ctx context.Context, msgArg, fileArg string) error {
	msg, err := a.messageAt(msgArg)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	n, err := strconv.Atoi(fileArg)
	if err != nil || n < 1 || n > len(msg.Attachments) {
		printlnFn(fmt.Sprintf("Message %s has no attachment %q.", msgArg, fileArg))
		return fmt.Errorf("no attachment %q", fileArg)
	}
	att := msg.Attachments[n-1]

	var data []byte
	if att.DownloadRef != "" {
		data, err = a.api.Download(ctx, att.DownloadRef)
		if err != nil {
			printlnFn("Download failed:", err.Error())
			return err
		}
	} else {
		data = []byte(msg.Content)
	}

	dir, err := filex.EnsureSubDir(a.config.DownloadsDir)
	if err != nil {
		printlnFn("Could not prepare downloads directory:", err.Error())
		return err
	}

	path := filepath.Join(dir, filepath.Base(att.Name))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		printlnFn("Could not write file:", err.Error())
		return err
	}

	printlnFn("Saved to", path)
	return nil
}
