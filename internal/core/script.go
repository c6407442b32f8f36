package core

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ScriptEntry schedules a key event before the given frame is simulated.
type ScriptEntry struct {
	Frame int
	Event KeyEvent
}

// Script is an ordered list of scheduled key events used by the headless runner.
type Script []ScriptEntry

// ParseScript parses a comma-separated list of "frame:down|up:key" entries.
// Keys use the DOM names (ArrowRight, Right, ArrowLeft, Left, ArrowUp) and
// "space" stands for the space bar; any other key is rejected. Entries are sorted by frame;
// entries sharing a frame keep their written order.
//
// Example: "0:down:ArrowRight,30:down:space,60:up:ArrowRight"
func ParseScript(src string) (Script, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, nil
	}

	parts := strings.Split(src, ",")
	script := make(Script, 0, len(parts))
	for _, part := range parts {
		fields := strings.SplitN(strings.TrimSpace(part), ":", 3)
		if len(fields) != 3 {
			return nil, fmt.Errorf("script: entry %q: want frame:kind:key", part)
		}

		frame, err := strconv.Atoi(fields[0])
		if err != nil || frame < 0 {
			return nil, fmt.Errorf("script: entry %q: invalid frame %q", part, fields[0])
		}

		var kind KeyEventKind
		switch fields[1] {
		case "down":
			kind = KeyDown
		case "up":
			kind = KeyUp
		default:
			return nil, fmt.Errorf("script: entry %q: unknown event kind %q", part, fields[1])
		}

		key := Key(fields[2])
		if fields[2] == "space" {
			key = KeySpace
		}
		if !key.Recognized() {
			return nil, fmt.Errorf("script: entry %q: unknown key %q", part, fields[2])
		}

		script = append(script, ScriptEntry{Frame: frame, Event: KeyEvent{Kind: kind, Key: key}})
	}

	sort.SliceStable(script, func(i, j int) bool {
		return script[i].Frame < script[j].Frame
	})
	return script, nil
}

// At returns the events scheduled for the given frame.
func (s Script) At(frame int) []KeyEvent {
	var events []KeyEvent
	for _, e := range s {
		if e.Frame == frame {
			events = append(events, e.Event)
		}
	}
	return events
}
