package main

import (
	"strings"
	"testing"
)

func TestParseCommand(t *testing.T) {
	intp := &Intp{}
	cmd, err := intp.parseCommand("use:1 props")
	if err != nil {
		t.Fatal(err)
	}
	if cmd.op[0].code != USE || cmd.op[0].arg != "1" {
		t.Errorf("expected use:1 to parse, got code %d arg %q", cmd.op[0].code, cmd.op[0].arg)
	}
	if cmd.op[1].code != PROPS {
		t.Errorf("expected props as second op, got code %d", cmd.op[1].code)
	}
}

func TestParseCommandTooLong(t *testing.T) {
	intp := &Intp{}
	line := strings.TrimSpace(strings.Repeat("props ", len(command.op)+1))
	if _, err := intp.parseCommand(line); err == nil {
		t.Error("expected an error for a command with too many steps")
	}
}

func TestParseCommandUnknownOp(t *testing.T) {
	intp := &Intp{}
	cmd, err := intp.parseCommand("frobnicate")
	if err != nil {
		t.Fatal(err)
	}
	if cmd.op[0].code != HELP { // unknown words fall back to help
		t.Errorf("expected unknown command to parse as help, got code %d", cmd.op[0].code)
	}
}
