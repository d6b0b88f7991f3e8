package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scott-cotton/cli"
	"github.com/stretchr/testify/require"
)

const (
	messy = "<Project>\n<!-- note -->\n<PropertyGroup><Z>1</Z><A>2</A></PropertyGroup>\n</Project>\n"
	canon = "<Project>\n  <!-- note -->\n  <PropertyGroup>\n    <A>2</A>\n    <Z>1</Z>\n  </PropertyGroup>\n</Project>\n"
)

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func testContext(stdin string) (*cli.Context, *bytes.Buffer) {
	out := bytes.NewBuffer(nil)
	return &cli.Context{
		In:  io.NopCloser(strings.NewReader(stdin)),
		Out: nopWriteCloser{out},
		Err: nopWriteCloser{io.Discard},
		Go:  context.Background(),
	}, out
}

func run(stdin string, args ...string) (string, error) {
	cc, out := testContext(stdin)
	err := MainCommand().Run(cc, args)
	return out.String(), err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func requireExit1(t *testing.T, err error) {
	t.Helper()
	var xc cli.ExitCodeErr
	require.True(t, errors.As(err, &xc), "got %v", err)
	require.Equal(t, cli.ExitCodeErr(1), xc)
}

func TestFmtStdout(t *testing.T) {
	out, err := run(messy, "fmt")
	require.NoError(t, err)
	require.Equal(t, canon, out)
}

func TestFmtHeader(t *testing.T) {
	out, err := run(canon, "fmt", "-header")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<Project>"), out)
}

func TestFmtNoComments(t *testing.T) {
	out, err := run(messy, "-nc", "fmt")
	require.NoError(t, err)
	require.NotContains(t, out, "note")
	require.Contains(t, out, "<A>2</A>")
}

func TestFmtCheck(t *testing.T) {
	good := writeTemp(t, "good.proj", canon)
	bad := writeTemp(t, "bad.proj", messy)

	out, err := run("", "fmt", "-check", good, bad)
	requireExit1(t, err)
	require.Equal(t, bad+"\n", out)

	out, err = run("", "fmt", "-check", good)
	require.NoError(t, err)
	require.Empty(t, out)

	d, err := os.ReadFile(bad)
	require.NoError(t, err)
	require.Equal(t, messy, string(d))
}

func TestFmtWrite(t *testing.T) {
	bad := writeTemp(t, "bad.proj", messy)
	out, err := run("", "fmt", "-w", bad)
	require.NoError(t, err)
	require.Empty(t, out)
	d, err := os.ReadFile(bad)
	require.NoError(t, err)
	require.Equal(t, canon, string(d))
}

func TestFmtUsage(t *testing.T) {
	tests := map[string][]string{
		"write and check": {"-w", "-check", "a.proj"},
		"write stdin":     {"-w"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			cc, _ := testContext("")
			sub := MainCommand().FindSub(cc, "fmt")
			require.NotNil(t, sub)
			require.ErrorIs(t, sub.Run(cc, args), cli.ErrUsage)
		})
	}
}

func TestCheck(t *testing.T) {
	good := writeTemp(t, "good.proj", messy)
	broken := writeTemp(t, "broken.proj", "<Project><Bogus /></Project>")

	out, err := run("", "check", good)
	require.NoError(t, err)
	require.Empty(t, out)

	out, err = run("", "check", good, broken)
	requireExit1(t, err)
	require.Contains(t, out, broken+": ")
	require.Contains(t, out, "<Bogus>")
	require.NotContains(t, out, good)
}

func TestDiff(t *testing.T) {
	out, err := run(canon, "diff")
	require.NoError(t, err)
	require.Empty(t, out)

	out, err = run(messy, "diff", "-U", "0")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "--- -\n+++ - (canonical)\n"), out)
	require.Contains(t, out, "+    <A>2</A>\n")
}

func TestDump(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, out string)
	}{
		{
			name: "default yaml",
			args: []string{"dump"},
			check: func(t *testing.T, out string) {
				require.Contains(t, out, "kind: Project\n")
			},
		},
		{
			name: "json",
			args: []string{"dump", "-O", "json"},
			check: func(t *testing.T, out string) {
				var doc map[string]any
				require.NoError(t, json.Unmarshal([]byte(out), &doc))
				require.Equal(t, "Project", doc["kind"])
			},
		},
		{
			name: "xml",
			args: []string{"dump", "-O", "x"},
			check: func(t *testing.T, out string) {
				require.Equal(t, canon, out)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(messy, tc.args...)
			require.NoError(t, err)
			tc.check(t, out)
		})
	}
}
