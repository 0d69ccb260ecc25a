package grid

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// MaximumSwaps is the largest number of swaps a save state may record
// as remaining.
const MaximumSwaps = 15

// MaximumStars is the star rating awarded for solving a puzzle with
// the minimum possible number of swaps.
const MaximumStars = 5

// StarScore returns the star rating for a puzzle solved using
// swapsUsed swaps, saturated at MaximumStars.
func StarScore(swapsUsed int) int {
	stars := MaximumSwaps - swapsUsed
	if stars > MaximumStars {
		return MaximumStars
	}
	if stars < 0 {
		return 0
	}
	return stars
}

// SaveState pairs a grid with the number of swaps a player has left.
type SaveState struct {
	Grid           *Grid
	SwapsRemaining int
}

// NewSaveState constructs a SaveState, clamping SwapsRemaining into
// [0, MaximumSwaps].
func NewSaveState(g *Grid, swapsRemaining int) SaveState {
	if swapsRemaining < 0 {
		swapsRemaining = 0
	}
	if swapsRemaining > MaximumSwaps {
		swapsRemaining = MaximumSwaps
	}
	return SaveState{Grid: g, SwapsRemaining: swapsRemaining}
}

// String renders the SaveState as "<grid>:<swaps_remaining>".
func (s SaveState) String() string {
	return fmt.Sprintf("%s:%d", s.Grid.Serialize(), s.SwapsRemaining)
}

// SaveStateParseErrorKind enumerates SaveState parse failures.
type SaveStateParseErrorKind int

const (
	MissingColon SaveStateParseErrorKind = iota
	InvalidSwapsRemaining
)

// SaveStateParseError wraps either a malformed "<grid>:<n>" shape or
// a grid-level ParseError.
type SaveStateParseError struct {
	Kind      SaveStateParseErrorKind
	GridError *ParseError
}

func (e *SaveStateParseError) Error() string {
	if e.GridError != nil {
		return e.GridError.Error()
	}
	switch e.Kind {
	case MissingColon:
		return "missing colon"
	case InvalidSwapsRemaining:
		return "the number of swaps remaining is invalid"
	default:
		return "invalid save state"
	}
}

func (e *SaveStateParseError) Unwrap() error {
	if e.GridError != nil {
		return e.GridError
	}
	return nil
}

// ParseSaveState decodes a "<grid>:<swaps_remaining>" string.
func ParseSaveState(s string) (SaveState, error) {
	gridPart, swapsPart, ok := strings.Cut(s, ":")
	if !ok {
		return SaveState{}, &SaveStateParseError{Kind: MissingColon}
	}

	g, err := Parse(gridPart)
	if err != nil {
		var parseErr *ParseError
		if asParseError(err, &parseErr) {
			return SaveState{}, &SaveStateParseError{GridError: parseErr}
		}
		return SaveState{}, &SaveStateParseError{GridError: &ParseError{Kind: TooShort}}
	}

	swapsRemaining, err := strconv.Atoi(swapsPart)
	if err != nil || swapsRemaining < 0 || swapsRemaining > MaximumSwaps {
		return SaveState{}, &SaveStateParseError{Kind: InvalidSwapsRemaining}
	}

	return SaveState{Grid: g, SwapsRemaining: swapsRemaining}, nil
}

func asParseError(err error, target **ParseError) bool {
	if pe, ok := err.(*ParseError); ok {
		*target = pe
		return true
	}
	return false
}

// SaveStatesToString encodes a puzzle-number-to-SaveState collection
// as comma-separated "<puzzle_num>:<save_state>" entries, in
// ascending puzzle-number order.
func SaveStatesToString(states map[int]SaveState) string {
	nums := make([]int, 0, len(states))
	for n := range states {
		nums = append(nums, n)
	}
	sort.Ints(nums)

	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("%d:%s", n, states[n])
	}

	return strings.Join(parts, ",")
}

// LoadSaveStatesErrorKind enumerates collection-level parse failures.
type LoadSaveStatesErrorKind int

const (
	EntryMissingColon LoadSaveStatesErrorKind = iota
	InvalidPuzzleNumber
	DuplicatePuzzle
	BadPuzzle
)

// LoadSaveStatesError reports a failure decoding one comma-separated
// entry of a save-state collection.
type LoadSaveStatesError struct {
	Kind       LoadSaveStatesErrorKind
	EntryIndex int
	PuzzleNum  int
	Err        error
}

func (e *LoadSaveStatesError) Error() string {
	switch e.Kind {
	case EntryMissingColon:
		return fmt.Sprintf("missing colon in state %d", e.EntryIndex)
	case InvalidPuzzleNumber:
		return fmt.Sprintf("invalid puzzle number in state %d", e.EntryIndex)
	case DuplicatePuzzle:
		return fmt.Sprintf("puzzle %d appears more than once", e.PuzzleNum)
	case BadPuzzle:
		return fmt.Sprintf("puzzle %d: %s", e.PuzzleNum, e.Err)
	default:
		return "invalid save states"
	}
}

func (e *LoadSaveStatesError) Unwrap() error {
	return e.Err
}

// LoadSaveStates decodes a comma-separated "<puzzle_num>:<save_state>"
// collection.
func LoadSaveStates(s string) (map[int]SaveState, error) {
	states := make(map[int]SaveState)

	for i, entry := range strings.Split(s, ",") {
		puzzleStr, stateStr, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, &LoadSaveStatesError{Kind: EntryMissingColon, EntryIndex: i}
		}

		puzzleNum, err := strconv.Atoi(puzzleStr)
		if err != nil {
			return nil, &LoadSaveStatesError{Kind: InvalidPuzzleNumber, EntryIndex: i}
		}

		if _, exists := states[puzzleNum]; exists {
			return nil, &LoadSaveStatesError{Kind: DuplicatePuzzle, PuzzleNum: puzzleNum}
		}

		state, err := ParseSaveState(stateStr)
		if err != nil {
			return nil, &LoadSaveStatesError{Kind: BadPuzzle, PuzzleNum: puzzleNum, Err: err}
		}

		states[puzzleNum] = state
	}

	return states, nil
}
