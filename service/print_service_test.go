package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPrintService_RenderHTML(t *testing.T) {
	svc, err := NewPrintService("/nonexistent/chrome", time.Second, zap.NewNop())
	require.NoError(t, err)

	html, err := svc.RenderHTML(scenarioSheet())
	require.NoError(t, err)

	assert.Contains(t, html, `<td class="title" colspan="7">BROADBAND MATERIAL ISSUE SHEET</td>`)
	assert.Contains(t, html, "<title>2026-10-16 Truck 12 broadband order request</title>")
	assert.Contains(t, html, "FROM WAREHOUSE:")
	assert.Contains(t, html, ">Gizmo</td>")
	assert.Equal(t, 2, strings.Count(html, `class="spacer"`))
	assert.Equal(t, ".pdf", svc.Extension())
}

func TestPrintService_EscapesCellContent(t *testing.T) {
	svc, err := NewPrintService("/nonexistent/chrome", time.Second, zap.NewNop())
	require.NoError(t, err)

	sheet := scenarioSheet()
	sheet.Rows[3][1] = "<script>alert(1)</script>"

	html, err := svc.RenderHTML(sheet)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
}
