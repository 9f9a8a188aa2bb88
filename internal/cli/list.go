package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	spinerrors "github.com/spinapp/spin/internal/errors"
	"github.com/spinapp/spin/internal/library"
	"github.com/spinapp/spin/internal/probe"
)

var listCmd = &cobra.Command{
	Use:   "list [folder]",
	Short: "List library folders or the tracks in a folder",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	lib := library.New(cfg.Library.Root, cfg.Library.Extensions)

	if len(args) == 0 {
		return listFolders(lib)
	}
	return listTracks(lib, args[0])
}

func listFolders(lib *library.Library) error {
	folders, err := lib.Folders()
	if err != nil {
		return err
	}
	if len(folders) == 0 {
		return fmt.Errorf("%w in %s", spinerrors.ErrNoFolders, lib.Root())
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FOLDER\tTRACKS")
	for _, folder := range folders {
		tracks, err := lib.Tracks(folder)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\n", folder, len(tracks))
	}
	return w.Flush()
}

func listTracks(lib *library.Library, folder string) error {
	tracks, err := lib.Tracks(folder)
	if err != nil {
		return err
	}
	if len(tracks) == 0 {
		return fmt.Errorf("%w in folder %s", spinerrors.ErrNoTracks, folder)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TRACK\tSIZE")
	for _, track := range tracks {
		fmt.Fprintf(w, "%s\t%s\n", track.Name, probe.FileSize(track.Path))
	}
	return w.Flush()
}
