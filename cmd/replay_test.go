package cmd

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/hance08/accrue/internal/interest"
	"github.com/hance08/accrue/internal/model"
	"github.com/hance08/accrue/internal/service"
	"github.com/hance08/accrue/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *service.Service {
	t.Helper()
	name := "cmd_" + strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())

	repo, err := store.NewStore(name, os.DirFS(".."))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = repo.Close()
	})

	return service.NewService(repo, service.Config{
		Interest: interest.DefaultConfig(),
		Clock:    func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) },
	}, nil)
}

func TestParseReplayLine(t *testing.T) {
	tests := []struct {
		raw    string
		action string
		detail string
		ok     bool
	}{
		{"I 20230505|AC001|D|100.00", "I", "20230505|AC001|D|100.00", true},
		{"  d   20230101|RULE01|1.95 ", "D", "20230101|RULE01|1.95", true},
		{"P AC001|202306", "P", "AC001|202306", true},
		{"Q", "Q", "", true},
		{"", "", "", false},
		{"   ", "", "", false},
		{"# seed data", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			action, detail, ok := parseReplayLine(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.action, action)
			assert.Equal(t, tt.detail, detail)
		})
	}
}

const scenarioReplay = `# rules
D 20230101|RULE01|1.95
D 20230520|RULE02|1.90
D 20230615|RULE03|2.20

# AC001
I 20230505|AC001|D|100.00
I 20230601|AC001|D|150.00
I 20230626|AC001|W|20.00
I 20230626|AC001|W|100.00
P AC001|202306
`

func TestReplayScenario(t *testing.T) {
	svc := newTestService(t)
	runner := newReplayRunner(svc, &replayFlags{quiet: true})

	require.NoError(t, runner.Run(strings.NewReader(scenarioReplay)))

	assert.Len(t, svc.Rule.List(), 3)
	st, err := svc.Statement.Monthly("AC001", model.Month{Year: 2023, Month: time.June})
	require.NoError(t, err)
	assert.Equal(t, "0.39", st.Interest().StringFixed(2))
	assert.Equal(t, "130.39", st.ClosingBalance.StringFixed(2))
}

func TestReplayContinuesPastBadLines(t *testing.T) {
	svc := newTestService(t)
	runner := newReplayRunner(svc, &replayFlags{quiet: true})

	input := strings.Join([]string{
		"I 20230601|AC002|W|10.00",
		"X something",
		"I 20230601|AC002|D|10.00",
	}, "\n")

	err := runner.Run(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3 lines failed")
	assert.Len(t, svc.Transaction.History("AC002"), 1)
}

func TestReplayStrictStops(t *testing.T) {
	svc := newTestService(t)
	runner := newReplayRunner(svc, &replayFlags{quiet: true, strict: true})

	input := "I 2023-06-01|AC003|D|10.00\nI 20230601|AC003|D|10.00\n"

	err := runner.Run(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
	assert.Empty(t, svc.Transaction.History("AC003"))
}
