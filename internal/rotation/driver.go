package rotation

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"bridgewrangler/internal/pbn"
)

// Options configures one rotation run.
type Options struct {
	// Input is the source PBN file.
	Input string
	// Output is an explicit output path. Only valid with a single
	// pattern; with multiple patterns the outputs are auto-named.
	Output string
	// Patterns are the rotation patterns ("NESW", "NS", ...), one
	// output file per pattern.
	Patterns []string
	// Basis selects how a board's current orientation is determined.
	Basis Basis
	// StandardVul forces standard vulnerability by board number
	// instead of rotating the existing vulnerability.
	StandardVul bool
}

// ParsePattern parses a rotation pattern string such as "NESW" or
// "ns" into a direction sequence.
func ParsePattern(pattern string) ([]pbn.Direction, error) {
	if pattern == "" {
		return nil, fmt.Errorf("pattern cannot be empty")
	}
	dirs := make([]pbn.Direction, 0, len(pattern))
	for i := 0; i < len(pattern); i++ {
		d, ok := pbn.ParseDirection(pattern[i])
		if !ok {
			return nil, fmt.Errorf("invalid direction %q in pattern %q", string(pattern[i]), pattern)
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}

// Run executes the rotation: the input is read and parsed once, then
// each pattern independently rotates a clone of the boards and writes
// one output file.
func Run(logger *zap.Logger, opts Options) error {
	if len(opts.Patterns) > 1 && opts.Output != "" {
		return fmt.Errorf("cannot use an explicit output path with multiple patterns; output files are auto-named")
	}

	raw, err := os.ReadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("failed to read input file %s: %w", opts.Input, err)
	}
	content := string(raw)

	file, err := pbn.Parse(content)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", opts.Input, err)
	}

	extraTags := scanExtraTags(content)

	valid := 0
	for _, b := range file.Boards {
		if !b.Deal.Empty() {
			valid++
		}
	}
	if valid == 0 {
		return fmt.Errorf("no valid boards found in %s", opts.Input)
	}
	logger.Info("read boards",
		zap.Int("boards", valid),
		zap.String("input", opts.Input))

	for _, patternStr := range opts.Patterns {
		pattern, err := ParsePattern(patternStr)
		if err != nil {
			return err
		}

		// Boards with no cards anywhere are placeholders; they are
		// excluded from the retained set entirely.
		var retained []*pbn.Board
		for _, b := range file.Boards {
			if !b.Deal.Empty() {
				retained = append(retained, b.Clone())
			}
		}

		infos := make(map[int]*RotationInfo, len(retained))
		for i, board := range retained {
			if board.Number == 0 {
				board.Number = i + 1
			}

			target := pattern[i%len(pattern)]
			basisDir, basisKind := ResolveBasis(board, extraTags[board.Number], opts.Basis)
			r := Amount(basisDir, target)

			infos[board.Number] = &RotationInfo{
				Rotation:       r,
				Target:         target,
				Basis:          basisDir,
				BasisKind:      basisKind,
				UseStandardVul: opts.StandardVul,
			}
			if r != 0 || opts.StandardVul {
				RotateBoard(board, r, opts.StandardVul)
			}
		}

		outputPath := opts.Output
		if outputPath == "" {
			outputPath = OutputPath(opts.Input, patternStr)
		}

		rendered := Rewrite(content, file.EventTitle, retained, infos)
		if err := os.WriteFile(outputPath, []byte(rendered), 0644); err != nil {
			return fmt.Errorf("failed to write output file %s: %w", outputPath, err)
		}
		logger.Info("wrote rotated boards",
			zap.Int("boards", len(retained)),
			zap.String("pattern", strings.ToUpper(patternStr)),
			zap.String("output", outputPath))
	}

	return nil
}

// OutputPath derives an output file name from the input name with the
// uppercased pattern appended: "deals.pbn" + "ns" -> "deals - NS.pbn".
func OutputPath(input, pattern string) string {
	ext := filepath.Ext(input)
	if ext == "" {
		ext = ".pbn"
	}
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	name := fmt.Sprintf("%s - %s%s", stem, strings.ToUpper(pattern), ext)
	return filepath.Join(filepath.Dir(input), name)
}

// scanExtraTags collects, per board number, the tag values the
// structured parser does not model (RotationBasis, Student, and any
// other custom tag), keyed off the preceding Board tag.
func scanExtraTags(content string) map[int]map[string]string {
	result := make(map[int]map[string]string)
	current := 0

	for _, line := range strings.Split(content, "\n") {
		name, value, ok := pbn.ParseTag(strings.TrimSpace(line))
		if !ok {
			continue
		}
		if name == "Board" {
			if n, err := strconv.Atoi(value); err == nil {
				current = n
			}
			continue
		}
		if current == 0 {
			continue
		}
		if result[current] == nil {
			result[current] = make(map[string]string)
		}
		result[current][name] = value
	}
	return result
}
