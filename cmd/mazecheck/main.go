package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sjiamnocna/fancysokoban/internal/gameplay"
)

var exampleUsage = strings.TrimSpace(`
  mazecheck maze_files/*.txt
  mazecheck --quiet maze_files/maze2.txt
`)

func main() {
	var quiet bool

	root := &cobra.Command{
		Use:     "mazecheck <maze-file>...",
		Short:   "Validate Sokoban maze files and print them",
		Example: exampleUsage,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				game, err := gameplay.LoadGame(path)
				if err != nil {
					fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
					failed++
					continue
				}
				if quiet {
					fmt.Printf("%s: ok\n", path)
					continue
				}
				title := path
				if game.Name != "" {
					title = fmt.Sprintf("%s (%s)", path, game.Name)
				}
				fmt.Printf("== %s\n", title)
				game.Render(os.Stdout)
				fmt.Println()
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d maze files invalid", failed, len(args))
			}
			return nil
		},
		SilenceUsage: true,
	}
	root.Flags().BoolVarP(&quiet, "quiet", "q", false, "only report whether each file is valid")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
