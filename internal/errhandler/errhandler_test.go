package errhandler

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		msg  string
		code int
	}{
		{"survey interrupt", terminal.InterruptErr, "Session cancelled", 0},
		{"huh abort", fmt.Errorf("prompt: %w", huh.ErrUserAborted), "Session cancelled", 0},
		{"context", context.Canceled, "Session cancelled", 0},
		{"failure", errors.New("failed to initialize database: boom"), "Failed to initialize database: boom", 1},
		{"text mentioning interrupt", errors.New("disk I/O interrupted"), "Disk I/O interrupted", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, code := Message(tt.err)
			assert.Equal(t, tt.msg, msg)
			assert.Equal(t, tt.code, code)
		})
	}
}
