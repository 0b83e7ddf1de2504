package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bridgewrangler/internal/rotation"
)

var (
	rotateInput       string
	rotateOutput      string
	rotatePattern     string
	rotateBasis       string
	rotateStandardVul bool
)

// rotateCmd rotates deals to set dealer/declarer according to a pattern
var rotateCmd = &cobra.Command{
	Use:   "rotate",
	Short: "Rotate deals to set the dealer according to a pattern",
	Long: `Rotates each board so its seats line up with a target direction taken
from a repeating pattern, rewriting dealer, vulnerability, hands,
auction and play seat markers, score attribution, and compass words in
commentary, while copying everything else from the source verbatim.

Multiple comma-separated patterns produce one output file per pattern,
each auto-named from the input file and the uppercased pattern.

Examples:
  wrangler rotate -i deals.pbn
  wrangler rotate -i deals.pbn -p NS -o south-seats.pbn
  wrangler rotate -i deals.pbn -p S,NS,NESW --basis declarer`,
	RunE: runRotate,
}

func init() {
	rotateCmd.Flags().StringVarP(&rotateInput, "input", "i", "", "Input PBN file (required)")
	rotateCmd.Flags().StringVarP(&rotateOutput, "output", "o", "", "Output PBN file (single pattern only; defaults to input with pattern appended)")
	rotateCmd.Flags().StringVarP(&rotatePattern, "pattern", "p", "", "Rotation pattern(s), comma-separated (default from config, else NESW)")
	rotateCmd.Flags().StringVarP(&rotateBasis, "basis", "b", "", "Basis for a board's current orientation: standard, basis-tag, student, declarer, dealer, deal, north, east, south, west")
	rotateCmd.Flags().BoolVar(&rotateStandardVul, "standard-vul", false, "Use standard vulnerability by board number instead of rotating")
	_ = rotateCmd.MarkFlagRequired("input")
}

func runRotate(cmd *cobra.Command, args []string) error {
	patternList := rotatePattern
	if patternList == "" {
		patternList = cfg.GetDefaultPattern()
	}
	var patterns []string
	for _, p := range strings.Split(patternList, ",") {
		patterns = append(patterns, strings.TrimSpace(p))
	}

	basisName := rotateBasis
	if basisName == "" {
		basisName = cfg.GetDefaultBasis()
	}
	basis, err := rotation.ParseBasis(basisName)
	if err != nil {
		return err
	}

	standardVul := rotateStandardVul || cfg.StandardVul

	logger.Debug("rotating deals",
		zap.String("input", rotateInput),
		zap.Strings("patterns", patterns),
		zap.String("basis", basis.String()),
		zap.Bool("standardVul", standardVul))

	opts := rotation.Options{
		Input:       rotateInput,
		Output:      rotateOutput,
		Patterns:    patterns,
		Basis:       basis,
		StandardVul: standardVul,
	}
	if err := rotation.Run(logger, opts); err != nil {
		return fmt.Errorf("rotate failed: %w", err)
	}
	return nil
}
