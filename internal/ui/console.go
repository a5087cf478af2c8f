package ui

import "github.com/gdamore/tcell/v2"

// Console is the line-oriented command surface: an input buffer, a
// bounded scrollback, a queue of submitted commands, command history,
// and paged output for long listings.
type Console struct {
	buffer   string
	lines    []string
	pending  []string
	maxLines int

	// Paging
	pagedBuffer []string
	pageIndex   int
	awaiting    bool

	// History
	history      []string
	historyIndex int
}

// NewConsole creates a console keeping at most maxLines of scrollback.
func NewConsole(maxLines int) *Console {
	if maxLines < 1 {
		maxLines = 1
	}
	return &Console{maxLines: maxLines, historyIndex: -1}
}

// HandleKey feeds one key event into the input buffer. Printable runes
// append, backspace deletes, enter submits, up/down walk history. While
// a paged listing is waiting, any key advances the page instead.
func (c *Console) HandleKey(ev *tcell.EventKey) {
	if c.awaiting {
		// Any key advances the page; everything else waits.
		c.ShowNextPage()
		return
	}

	switch ev.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(c.buffer) > 0 {
			c.buffer = c.buffer[:len(c.buffer)-1]
		}
	case tcell.KeyEnter:
		if c.buffer != "" {
			c.pending = append(c.pending, c.buffer)
			c.history = append(c.history, c.buffer)
			c.historyIndex = -1
			c.buffer = ""
		}
	case tcell.KeyUp:
		c.historyBack()
	case tcell.KeyDown:
		c.historyForward()
	case tcell.KeyRune:
		r := ev.Rune()
		if r >= 32 && r < 127 {
			c.buffer += string(r)
		}
	}
}

// historyBack replaces the buffer with the previous history entry.
func (c *Console) historyBack() {
	if len(c.history) == 0 {
		return
	}
	if c.historyIndex == -1 {
		c.historyIndex = len(c.history) - 1
	} else if c.historyIndex > 0 {
		c.historyIndex--
	}
	c.buffer = c.history[c.historyIndex]
}

// historyForward walks toward the newest entry, ending on an empty buffer.
func (c *Console) historyForward() {
	if c.historyIndex == -1 {
		return
	}
	c.historyIndex++
	if c.historyIndex >= len(c.history) {
		c.historyIndex = -1
		c.buffer = ""
		return
	}
	c.buffer = c.history[c.historyIndex]
}

// Println appends one line to the scrollback, trimming the oldest line
// past the limit.
func (c *Console) Println(line string) {
	c.lines = append(c.lines, line)
	if len(c.lines) > c.maxLines {
		c.lines = c.lines[len(c.lines)-c.maxLines:]
	}
}

// PrintPaged prints a listing a screenful at a time. Short listings
// print immediately; longer ones show the first page and wait for a
// keypress before the next.
func (c *Console) PrintPaged(lines []string) {
	if len(lines) <= c.pageSize() {
		for _, l := range lines {
			c.Println(l)
		}
		return
	}
	c.pagedBuffer = append([]string(nil), lines...)
	c.pageIndex = 0
	c.awaiting = true
	c.showPage()
}

// ShowNextPage advances paged output by one page.
func (c *Console) ShowNextPage() {
	if !c.awaiting {
		return
	}
	c.showPage()
}

func (c *Console) pageSize() int {
	size := c.maxLines - 1
	if size < 1 {
		size = 1
	}
	return size
}

func (c *Console) showPage() {
	end := c.pageIndex + c.pageSize()
	if end > len(c.pagedBuffer) {
		end = len(c.pagedBuffer)
	}
	for _, l := range c.pagedBuffer[c.pageIndex:end] {
		c.Println(l)
	}
	c.pageIndex = end

	if c.pageIndex >= len(c.pagedBuffer) {
		c.pagedBuffer = nil
		c.pageIndex = 0
		c.awaiting = false
		return
	}
	c.Println("-- more: press any key --")
}

// AwaitingNextPage reports whether paged output is waiting on a key.
func (c *Console) AwaitingNextPage() bool {
	return c.awaiting
}

// HasCommand reports whether a submitted command is waiting.
func (c *Console) HasCommand() bool {
	return len(c.pending) > 0
}

// NextCommand pops the oldest submitted command. Call HasCommand first.
func (c *Console) NextCommand() string {
	cmd := c.pending[0]
	c.pending = c.pending[1:]
	return cmd
}

// Lines returns the current scrollback, oldest first.
func (c *Console) Lines() []string {
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}

// InputLine returns the current (unsubmitted) input buffer.
func (c *Console) InputLine() string {
	return c.buffer
}
