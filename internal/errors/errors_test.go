package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestWrapKeepsCode(t *testing.T) {
	base := SheetNotFound("player.xlsx", "Player")
	wrapped := Wrapf(base, "job %s", "0:PlayerConfig")

	if got := GetCode(wrapped); got != CodeSheetNotFound {
		t.Errorf("Expected code %s, got %s", CodeSheetNotFound, got)
	}
	want := `job 0:PlayerConfig: worksheet "Player" not found in player.xlsx`
	if wrapped.Error() != want {
		t.Errorf("Expected %q, got %q", want, wrapped.Error())
	}
	if !stderrors.Is(wrapped, base) {
		t.Error("Expected wrapped error to match its cause")
	}
}

func TestWrapPlainError(t *testing.T) {
	err := Wrap(fmt.Errorf("disk full"), "write failed")
	if GetCode(err) != CodeInternalError {
		t.Errorf("Expected %s, got %s", CodeInternalError, GetCode(err))
	}
	if Wrap(nil, "nothing") != nil {
		t.Error("Expected Wrap(nil) to be nil")
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", OutputIO("out.cs", fmt.Errorf("denied")))

	if !stderrors.Is(err, New(CodeOutputIO, "")) {
		t.Error("Expected errors.Is to match by code")
	}
	if stderrors.Is(err, New(CodeRenderError, "")) {
		t.Error("Expected errors.Is not to match a different code")
	}
	if !HasCode(err, CodeOutputIO) {
		t.Error("Expected HasCode to see through fmt wrapping")
	}
}

func TestRowInvalidNamesJobAndRow(t *testing.T) {
	err := RowInvalid("2:ItemConfig", 7, "expected 3 values, got 2")
	want := "job 2:ItemConfig, row 7: expected 3 values, got 2"
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}
	if err.Code != CodeValidationError {
		t.Errorf("Expected %s, got %s", CodeValidationError, err.Code)
	}
}

func TestGetCodeUnknown(t *testing.T) {
	if GetCode(fmt.Errorf("plain")) != "UNKNOWN" {
		t.Error("Expected UNKNOWN for non-app errors")
	}
}
