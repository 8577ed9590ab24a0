package main

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/scatters"
	"github.com/tsawler/scatters/scatter"
)

func generateCmd() *cobra.Command {
	var (
		width     int
		height    int
		density   float64
		seed      int64
		list      bool
		stopWords string
	)

	cmd := &cobra.Command{
		Use:   "generate [path]",
		Short: "Collect a corpus and print one word scatter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := collect(args[0], stopWords)
			if err != nil {
				return err
			}
			if _, err := c.Finalize(); err != nil {
				return err
			}

			gen := scatters.NewGeneratorFromBank(c.Bank())
			if seed != 0 {
				gen = scatter.NewGeneratorWithRand(scatters.PoolFromBank(c.Bank()), rand.New(rand.NewSource(seed)))
			}

			placements := gen.Generate(width, height, scatter.ClampDensity(density))

			if list {
				for i, p := range placements {
					if p.Source != "" {
						fmt.Printf("%3d  %-20s (%d,%d)  %s\n", i, p.Word, p.X, p.Y, p.Source)
					} else {
						fmt.Printf("%3d  %-20s (%d,%d)\n", i, p.Word, p.X, p.Y)
					}
				}
				return nil
			}

			fmt.Print(renderGrid(placements, width, height))
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 80, "canvas width in cells")
	cmd.Flags().IntVar(&height, "height", 24, "canvas height in cells")
	cmd.Flags().Float64Var(&density, "density", 1.0, "word density (0.1 to 6.0)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 means time-seeded)")
	cmd.Flags().BoolVar(&list, "list", false, "list placements instead of drawing the grid")
	cmd.Flags().StringVar(&stopWords, "stopwords", "", "YAML file with a custom stop-word list")

	return cmd
}

// renderGrid draws placements onto a width×height rune grid. Overlapping
// fallback placements simply overwrite; the grid is a preview, not the
// interactive display.
func renderGrid(placements []scatter.Placement, width, height int) string {
	grid := make([][]rune, height)
	for y := range grid {
		grid[y] = make([]rune, width)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	for _, p := range placements {
		x := p.X
		for _, r := range p.Word {
			if x >= width {
				break
			}
			grid[p.Y][x] = r
			x++
		}
	}

	var b strings.Builder
	for _, row := range grid {
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteByte('\n')
	}
	return b.String()
}
