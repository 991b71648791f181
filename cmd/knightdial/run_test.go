package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knightdial/internal/config"
)

func TestRun_Text(t *testing.T) {
	var buf bytes.Buffer
	err := run(context.Background(), &buf, config.Config{Start: 1, MinLength: 1, MaxLength: 3, Print: true})
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Dial board:\n1 2 3 \n4 5 6 \n7 8 9 \n  0   \n"))
	assert.Contains(t, out, "Length: 1, found numbers: 1 (")
	assert.Contains(t, out, "Length: 2, found numbers: 2 (")
	assert.Contains(t, out, "Length: 3, found numbers: 5 (")
	assert.Contains(t, out, "1:\t16\n2:\t18\n")
	assert.Contains(t, out, "3:\t160\n")
	assert.Equal(t, 3, strings.Count(out, "All numbers are distinct: true"))
}

func TestRun_NoPrint(t *testing.T) {
	var buf bytes.Buffer
	err := run(context.Background(), &buf, config.Config{Start: 1, MinLength: 2, MaxLength: 2})
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "1:\t16")
	assert.NotContains(t, buf.String(), "Length: 1,")
}

func TestRun_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := run(context.Background(), &buf, config.Config{Start: 4, MinLength: 1, MaxLength: 4, JSON: true, Workers: 3})
	require.NoError(t, err)

	var rep Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rep))
	assert.Equal(t, 4, rep.Start)
	require.Len(t, rep.Lengths, 4)
	counts := make([]int, len(rep.Lengths))
	for i, lr := range rep.Lengths {
		counts[i] = lr.Count
		assert.True(t, lr.Distinct)
		assert.Nil(t, lr.Numbers)
	}
	assert.Equal(t, []int{1, 3, 6, 16}, counts)
}

func TestRun_UnknownStart(t *testing.T) {
	var buf bytes.Buffer
	err := run(context.Background(), &buf, config.Config{Start: 10, MinLength: 1, MaxLength: 2})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Length: 2, found numbers: 0 (")
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	err := run(ctx, &buf, config.Config{Start: 1, MinLength: 1, MaxLength: 2})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRootCmd(t *testing.T) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--start", "0", "--max-length", "2", "--print"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Length: 2, found numbers: 2 (")
	assert.Contains(t, out.String(), "1:\t06\n2:\t04\n")
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--min-length", "0"})

	err := cmd.Execute()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
