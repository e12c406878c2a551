package protocol

import (
	"bytes"
	"strings"
	"testing"
)

func TestHandshake(t *testing.T) {
	var out bytes.Buffer
	d := NewDriver(&out)

	d.Run(strings.NewReader("uci\nisready\nquit\n"))

	got := out.String()
	if !strings.Contains(got, "id name") {
		t.Errorf("expected an id name line, got %q", got)
	}
	if !strings.Contains(got, "uciok") {
		t.Errorf("expected uciok, got %q", got)
	}
	if !strings.Contains(got, "readyok") {
		t.Errorf("expected readyok, got %q", got)
	}
}

func TestPositionAndGoDepthProducesBestMove(t *testing.T) {
	var out bytes.Buffer
	d := NewDriver(&out)

	d.Run(strings.NewReader("position fen 6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1\ngo depth 2\nquit\n"))

	got := out.String()
	if !strings.Contains(got, "bestmove a1a8") {
		t.Errorf("expected bestmove a1a8, got %q", got)
	}
	if !strings.Contains(got, "mate") {
		t.Errorf("expected a mate score in the info line, got %q", got)
	}
}

func TestPositionWithMovesHistory(t *testing.T) {
	var out bytes.Buffer
	d := NewDriver(&out)

	d.Run(strings.NewReader("position startpos moves e2e4 e7e5\ngo depth 1\nquit\n"))

	got := out.String()
	if !strings.Contains(got, "bestmove") {
		t.Errorf("expected a bestmove line, got %q", got)
	}
	if len(d.history) != 2 {
		t.Errorf("expected 2 history entries after 2 played moves, got %d", len(d.history))
	}
}

func TestUnknownCommandIsIgnored(t *testing.T) {
	var out bytes.Buffer
	d := NewDriver(&out)

	d.Run(strings.NewReader("frobnicate\nisready\nquit\n"))

	got := out.String()
	if !strings.Contains(got, "readyok") {
		t.Errorf("expected the driver to keep processing after an unknown command, got %q", got)
	}
}

func TestStalemateProducesNoBestMove(t *testing.T) {
	var out bytes.Buffer
	d := NewDriver(&out)

	d.Run(strings.NewReader("position fen 7k/5Q2/6K1/8/8/8/8/8 b - - 0 1\ngo depth 1\nquit\n"))

	got := out.String()
	if strings.Contains(got, "bestmove") {
		t.Errorf("expected no bestmove line in stalemate, got %q", got)
	}
	if !strings.Contains(got, "score cp 0") {
		t.Errorf("expected a score of 0, got %q", got)
	}
}
