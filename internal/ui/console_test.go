package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func typeLine(c *Console, line string) {
	for _, r := range line {
		c.HandleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	c.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
}

func TestConsoleSubmitsCommands(t *testing.T) {
	c := NewConsole(5)

	typeLine(c, "end_turn")
	typeLine(c, "help")

	if !c.HasCommand() {
		t.Fatal("Expected pending commands")
	}
	if got := c.NextCommand(); got != "end_turn" {
		t.Errorf("First command = %q, want 'end_turn'", got)
	}
	if got := c.NextCommand(); got != "help" {
		t.Errorf("Second command = %q, want 'help'", got)
	}
	if c.HasCommand() {
		t.Error("Queue should be drained")
	}
}

func TestConsoleBackspaceAndEmptyEnter(t *testing.T) {
	c := NewConsole(5)

	c.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone))
	c.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'i', tcell.ModNone))
	c.HandleKey(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))

	if c.InputLine() != "h" {
		t.Errorf("Buffer = %q, want 'h'", c.InputLine())
	}

	// Enter on an empty buffer submits nothing.
	c.HandleKey(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	c.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if c.HasCommand() {
		t.Error("Empty buffer should not submit a command")
	}
}

func TestConsoleScrollbackBounded(t *testing.T) {
	c := NewConsole(3)
	for _, l := range []string{"one", "two", "three", "four"} {
		c.Println(l)
	}

	lines := c.Lines()
	if len(lines) != 3 {
		t.Fatalf("Scrollback = %d lines, want 3", len(lines))
	}
	if lines[0] != "two" {
		t.Errorf("Oldest retained line = %q, want 'two'", lines[0])
	}
}

func TestConsolePaging(t *testing.T) {
	c := NewConsole(4) // page size 3

	c.PrintPaged([]string{"a", "b", "c", "d", "e"})

	if !c.AwaitingNextPage() {
		t.Fatal("Long listing should wait for a keypress")
	}

	// While waiting, any key advances instead of typing.
	c.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	if c.AwaitingNextPage() {
		t.Error("Second page should finish the listing")
	}
	if c.InputLine() != "" {
		t.Error("Paging keypress should not reach the input buffer")
	}

	// Short listings print straight through.
	c2 := NewConsole(4)
	c2.PrintPaged([]string{"a", "b"})
	if c2.AwaitingNextPage() {
		t.Error("Short listing should not page")
	}
	if len(c2.Lines()) != 2 {
		t.Errorf("Short listing lines = %d, want 2", len(c2.Lines()))
	}
}

func TestConsoleHistory(t *testing.T) {
	c := NewConsole(5)
	typeLine(c, "first")
	typeLine(c, "second")

	c.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if c.InputLine() != "second" {
		t.Errorf("History up = %q, want 'second'", c.InputLine())
	}
	c.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if c.InputLine() != "first" {
		t.Errorf("History up twice = %q, want 'first'", c.InputLine())
	}
	c.HandleKey(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	if c.InputLine() != "second" {
		t.Errorf("History down = %q, want 'second'", c.InputLine())
	}
	c.HandleKey(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	if c.InputLine() != "" {
		t.Errorf("History past newest = %q, want empty", c.InputLine())
	}
}
