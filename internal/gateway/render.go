package gateway

import (
	"fmt"
	"strings"

	"github.com/nidhogg/jobscout/internal/chat"
)

// resetCommand triggers a session reset on plain-text transports, which
// have no structured reset frame.
const resetCommand = "!reset"

// renderText flattens an outbound frame into chat text for transports
// that cannot carry the JSON protocol.
func renderText(frame chat.Frame) string {
	switch f := frame.(type) {
	case *chat.ErrorFrame:
		return f.Message
	case *chat.Response:
		var b strings.Builder
		b.WriteString(f.Message)
		for _, rec := range f.Recommendations {
			fmt.Fprintf(&b, "\n• %s (%d%% match): %s", rec.Title, rec.MatchScore, rec.Description)
		}
		if len(f.Skills) > 0 {
			fmt.Fprintf(&b, "\nSkills so far: %s", strings.Join(f.Skills, ", "))
		}
		return b.String()
	default:
		return ""
	}
}
