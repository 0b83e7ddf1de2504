package rotation

import (
	"fmt"
	"strconv"
	"strings"

	"bridgewrangler/internal/pbn"
)

// RotationInfo records how one board was rotated during a single
// pattern run. It exists only between rotation and rewrite and is
// recomputed from scratch for every pattern.
type RotationInfo struct {
	Rotation       int
	Target         pbn.Direction
	Basis          pbn.Direction
	BasisKind      string
	UseStandardVul bool
}

// Note renders the RotationNote diagnostic tag line for a board.
func (ri *RotationInfo) Note(boardNum int) string {
	return fmt.Sprintf(
		"[RotationNote \"Board %d, chOption: %c, chBasis: %c, basisKind:%s, nOption:%d, nBasis: %d, nRot: %d, useStandardVul: %t\"]",
		boardNum,
		ri.Target.Char(),
		ri.Basis.Char(),
		ri.BasisKind,
		ri.Target.Index(),
		ri.Basis.Index(),
		ri.Rotation,
		ri.UseStandardVul,
	)
}

// rewriteState is the rewriter's position in the line stream.
type rewriteState int

const (
	// stateHeader is the pre-board region at the top of the file.
	stateHeader rewriteState = iota
	// stateSuppressed drops every line of a board that is not in the
	// retained set, until the next board marker.
	stateSuppressed
	// stateActive copies/rewrites lines of a retained board.
	stateActive
	// stateFreeText buffers a multi-line commentary block.
	stateFreeText
)

// rewriter streams the original source line by line, substituting
// seat-dependent tag values from the rotated boards while copying
// everything it does not understand verbatim. Re-serializing from the
// structured model would lose unknown content; rewriting the original
// text never can.
type rewriter struct {
	boards map[int]*pbn.Board
	infos  map[int]*RotationInfo
	title  string

	state     rewriteState
	prevState rewriteState // state to return to after a free-text block
	buffer    strings.Builder
	board     *pbn.Board
	rotation  int
	titleDone bool

	out strings.Builder
}

// Rewrite produces the output text for one pattern: the original
// content with retained boards rotated and suppressed boards removed.
// eventTitle is reused verbatim on the first retained board's
// synthesized header.
func Rewrite(content, eventTitle string, boards []*pbn.Board, infos map[int]*RotationInfo) string {
	rw := &rewriter{
		boards: make(map[int]*pbn.Board, len(boards)),
		infos:  infos,
		title:  eventTitle,
		state:  stateHeader,
	}
	for _, b := range boards {
		rw.boards[b.Number] = b
	}

	lines := strings.Split(content, "\n")
	trailingNewline := false
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
		trailingNewline = true
	}
	for _, line := range lines {
		rw.line(line)
	}

	out := rw.out.String()
	if !trailingNewline {
		out = strings.TrimSuffix(out, "\n")
	}
	return out
}

func (rw *rewriter) emit(line string) {
	rw.out.WriteString(line)
	rw.out.WriteByte('\n')
}

func (rw *rewriter) line(line string) {
	trimmed := strings.TrimSpace(line)

	if rw.state == stateFreeText {
		rw.buffer.WriteString(line)
		rw.buffer.WriteByte('\n')
		if strings.HasSuffix(trimmed, "}") {
			rw.state = rw.prevState
			rw.flushFreeText()
		}
		return
	}

	// Free-text block start. A line that both opens and closes is
	// handled inline; otherwise buffer until the closing brace.
	if strings.HasPrefix(trimmed, "{") {
		if strings.HasSuffix(trimmed, "}") {
			if rw.state == stateSuppressed {
				return
			}
			if rw.state == stateActive && rw.rotation != 0 {
				rw.emit(RotateCommentary(line, rw.rotation))
			} else {
				rw.emit(line)
			}
			return
		}
		rw.prevState = rw.state
		rw.state = stateFreeText
		rw.buffer.Reset()
		rw.buffer.WriteString(line)
		rw.buffer.WriteByte('\n')
		return
	}

	// Board markers are the only lines that can leave the suppressed
	// state.
	if name, value, ok := pbn.ParseTag(trimmed); ok && name == "Board" {
		rw.boardMarker(line, value)
		return
	}
	if rw.state == stateSuppressed {
		return
	}

	// Directives, comments and blank lines pass through untouched.
	if trimmed == "" || strings.HasPrefix(trimmed, "%") || strings.HasPrefix(trimmed, ";") {
		rw.emit(line)
		return
	}

	name, value, ok := pbn.ParseTag(trimmed)
	if !ok {
		// Raw auction/play continuation lines and anything else the
		// engine does not understand.
		rw.emit(line)
		return
	}

	switch name {
	case "Event", "Site", "Date":
		// Synthesized ahead of each retained board marker instead.
		return
	}

	if rw.state != stateActive {
		rw.emit(line)
		return
	}

	switch name {
	case "Dealer":
		dealer := byte('N')
		if rw.board.HasDealer {
			dealer = rw.board.Dealer.Char()
		}
		rw.emit(fmt.Sprintf("[Dealer \"%c\"]", dealer))
	case "Vulnerable":
		rw.emit(fmt.Sprintf("[Vulnerable \"%s\"]", rw.board.Vulnerable.Token()))
	case "Deal":
		first := pbn.North
		if rw.board.HasDealer {
			first = rw.board.Dealer
		}
		rw.emit(fmt.Sprintf("[Deal \"%s\"]", rw.board.Deal.Render(first)))
	case "Auction", "Play", "Declarer":
		rw.emit(fmt.Sprintf("[%s \"%s\"]", name, rotateDirectionValue(value, rw.rotation)))
	case "Score":
		rw.emit(fmt.Sprintf("[Score \"%s\"]", rotateSideValue(value, rw.rotation)))
	case "BCFlags":
		rw.emit(line)
		if info, ok := rw.infos[rw.board.Number]; ok {
			rw.emit(info.Note(rw.board.Number))
		}
	default:
		rw.emit(line)
	}
}

// boardMarker handles a [Board "n"] line: either activates the board
// with a synthesized title preamble, or suppresses everything until
// the next marker.
func (rw *rewriter) boardMarker(line, value string) {
	num, err := strconv.Atoi(value)
	if err != nil {
		rw.emit(line)
		return
	}
	board, ok := rw.boards[num]
	if !ok {
		rw.state = stateSuppressed
		rw.board = nil
		rw.rotation = 0
		return
	}

	rw.state = stateActive
	rw.board = board
	rw.rotation = 0
	if info, ok := rw.infos[num]; ok {
		rw.rotation = info.Rotation
	}

	if !rw.titleDone {
		rw.emit(fmt.Sprintf("[Event \"%s\"]", rw.title))
		rw.titleDone = true
	} else {
		rw.emit("[Event \"\"]")
	}
	rw.emit("[Site \"\"]")
	rw.emit("[Date \"\"]")
	rw.emit(line)
}

// flushFreeText emits a completed multi-line commentary block,
// rotated when it belongs to a retained board with nonzero rotation
// and dropped entirely for suppressed boards.
func (rw *rewriter) flushFreeText() {
	text := rw.buffer.String()
	rw.buffer.Reset()
	switch {
	case rw.state == stateSuppressed:
	case rw.state == stateActive && rw.rotation != 0:
		rw.out.WriteString(RotateCommentary(text, rw.rotation))
	default:
		rw.out.WriteString(text)
	}
}

// rotateDirectionValue rotates a single-character direction tag value
// case-preservingly; anything else is returned unchanged.
func rotateDirectionValue(value string, r int) string {
	if len(value) != 1 {
		return value
	}
	d, ok := pbn.ParseDirection(value[0])
	if !ok {
		return value
	}
	c := d.Rotate(r).Char()
	if value[0] >= 'a' && value[0] <= 'z' {
		c += 'a' - 'A'
	}
	return string(c)
}

// rotateSideValue flips a leading two-character side token ("NS" or
// "EW", as in a Score value like "NS 420") under odd rotation. Even
// rotations keep the side: the partnership axes are unchanged.
func rotateSideValue(value string, r int) string {
	if r%2 == 0 {
		return value
	}
	switch {
	case strings.HasPrefix(value, "NS"):
		return "EW" + value[2:]
	case strings.HasPrefix(value, "EW"):
		return "NS" + value[2:]
	}
	return value
}
