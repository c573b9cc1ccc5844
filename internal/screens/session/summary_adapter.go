package session

import (
	"github.com/abhisek/ratiolab/internal/screen"
	"github.com/abhisek/ratiolab/internal/screens/summary"
	sess "github.com/abhisek/ratiolab/internal/session"
)

// newSummaryScreenAdapter creates a summary screen from session data.
func newSummaryScreenAdapter(s *sess.SessionSummary) screen.Screen {
	return summary.New(s)
}
