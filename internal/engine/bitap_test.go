package engine

import "testing"

func TestBitapMatch_Exact(t *testing.T) {
	opts := matchOptions{threshold: 0.3, distance: 100}

	score, ok := bitapMatch([]rune("ant kalno"), []rune("ant kalno"), opts)
	if !ok {
		t.Fatal("expected match")
	}
	if score != 0 {
		t.Errorf("expected perfect score 0, got %f", score)
	}
}

func TestBitapMatch_SubstringWithLocationPenalty(t *testing.T) {
	opts := matchOptions{threshold: 0.3, distance: 100}

	score, ok := bitapMatch([]rune("kalno"), []rune("ant kalno"), opts)
	if !ok {
		t.Fatal("expected match")
	}
	// zero errors, match starts at position 4 -> 4/100.
	if score <= 0 || score > 0.05 {
		t.Errorf("expected small location penalty, got %f", score)
	}
}

func TestBitapMatch_IgnoreLocation(t *testing.T) {
	opts := matchOptions{threshold: 0.45, distance: 100, ignoreLocation: true}

	score, ok := bitapMatch([]rune("stovi"), []rune("ant kalno stovi berzelis"), opts)
	if !ok {
		t.Fatal("expected match deep in text")
	}
	if score != 0 {
		t.Errorf("expected exact substring score 0 with location ignored, got %f", score)
	}
}

func TestBitapMatch_OneEditError(t *testing.T) {
	opts := matchOptions{threshold: 0.3, distance: 100}

	// "kalnas" vs "kalnos": one substitution in a 6-rune pattern, 1/6 < 0.3.
	if _, ok := bitapMatch([]rune("kalnas"), []rune("kalnos"), opts); !ok {
		t.Error("expected one substitution to pass")
	}

	// transposed pair costs two edits: 2/6 > 0.3.
	if _, ok := bitapMatch([]rune("klanos"), []rune("kalnos"), opts); ok {
		t.Error("expected two edits to fail the title threshold")
	}
}

func TestBitapMatch_ErrorBudgetScalesWithLength(t *testing.T) {
	opts := matchOptions{threshold: 0.45, distance: 100, ignoreLocation: true}

	// 9-rune pattern at lyrics threshold tolerates up to 4 errors.
	if _, ok := bitapMatch([]rune("ant kolna "), []rune("zaliam berzyne ant kalno stovi"), opts); !ok {
		t.Error("expected lyrics threshold to absorb two errors")
	}
}

func TestBitapMatch_NoMatch(t *testing.T) {
	opts := matchOptions{threshold: 0.3, distance: 100}

	if _, ok := bitapMatch([]rune("visiskai kita"), []rune("ant kalno"), opts); ok {
		t.Error("expected no match for unrelated text")
	}
}

func TestBitapMatch_EmptyInputs(t *testing.T) {
	opts := matchOptions{threshold: 0.3, distance: 100}

	if _, ok := bitapMatch(nil, []rune("ant kalno"), opts); ok {
		t.Error("empty pattern must not match")
	}
	if _, ok := bitapMatch([]rune("ant"), nil, opts); ok {
		t.Error("empty text must not match")
	}
}

func TestBitapScore_LocationModes(t *testing.T) {
	if got := bitapScore(0, 5, 20, matchOptions{distance: 100}); got != 0.2 {
		t.Errorf("expected 0.2 location penalty, got %f", got)
	}
	if got := bitapScore(0, 5, 20, matchOptions{ignoreLocation: true}); got != 0 {
		t.Errorf("expected location ignored, got %f", got)
	}
	if got := bitapScore(1, 5, 0, matchOptions{distance: 100}); got != 0.2 {
		t.Errorf("expected accuracy 1/5, got %f", got)
	}
}
