package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/TessVincent/prismhealth/internal/adapter"
	"github.com/TessVincent/prismhealth/internal/authz"
	"github.com/TessVincent/prismhealth/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true)
	passStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	errorStyle = lipgloss.NewStyle().Bold(true)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

type field struct {
	label string
	value string
}

func f(label string, value any) field {
	return field{label: label, value: fmt.Sprint(value)}
}

// renderFields renders a titled box of aligned label/value rows.
func renderFields(title string, fields ...field) string {
	width := 0
	for _, fl := range fields {
		width = max(width, lipgloss.Width(fl.label))
	}

	rows := make([]string, 0, len(fields)+1)
	rows = append(rows, titleStyle.Render(title))
	for _, fl := range fields {
		label := labelStyle.Render(fl.label + strings.Repeat(" ", width-lipgloss.Width(fl.label)))
		rows = append(rows, label+"  "+fl.value)
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func renderVerdict(passed bool) string {
	if passed {
		return passStyle.Render("PASSED")
	}
	return failStyle.Render("FAILED")
}

func renderTime(unix int64) string {
	if unix == 0 {
		return "-"
	}
	return time.Unix(unix, 0).UTC().Format(time.RFC3339)
}

// risk levels run from 1 (lowest) to 5
var riskLabels = [...]string{1: "low", 2: "moderate", 3: "elevated", 4: "high", 5: "critical"}

func renderRisk(level uint8) string {
	if level > 0 && int(level) < len(riskLabels) {
		return fmt.Sprintf("%d (%s)", level, riskLabels[level])
	}
	return fmt.Sprint(level)
}

// renderError turns a failure into one line a user can act on.
func renderError(err error) string {
	return errorStyle.Render("Error: ") + humanizeError(err)
}

func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, authz.ErrWrongPassword):
		return "wrong key file password"
	case errors.Is(err, models.ErrUnsupportedProtocol):
		return "the ledger speaks a different confidential protocol; upgrade prismctl or use --protocol: " + err.Error()
	case errors.Is(err, adapter.ErrUnauthorized):
		return "the ledger rejected the session; check the key file and the node clock"
	case errors.Is(err, adapter.ErrRateLimited):
		return "the decryption oracle is rate limiting this client; try again shortly"
	case errors.Is(err, adapter.ErrFinalityTimeout):
		return "the transaction was submitted but not sealed in time; check it later with its hash"
	case errors.Is(err, models.ErrHandleResolution):
		return "could not recover the verification result: " + err.Error()
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "the ledger node is unreachable"
	}
	return err.Error()
}
