package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/creativeyann17/go-gunzip/internal/testutil"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run("gogunzip", args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestUsageOnEmptySelection(t *testing.T) {
	dir := t.TempDir()
	txt := testutil.WriteFile(t, dir, "readme.txt", []byte("text"))

	tests := []struct {
		name string
		args []string
	}{
		{"NoArgs", nil},
		{"NoMatchingFiles", []string{txt, filepath.Join(dir, "missing.gz")}},
		{"Directory", []string{dir}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, _ := runCLI(t, tt.args...)
			require.Equal(t, 1, code)
			require.Equal(t, "Usage: gogunzip FILE1.gz [FILE2.gz ...]\n", stdout)
		})
	}
}

func TestExtractToWorkingDirectory(t *testing.T) {
	inDir := t.TempDir()
	workDir := t.TempDir()

	first := testutil.WriteGzip(t, inDir, "first.gz", testutil.Member{Name: "data.txt", Data: []byte("content")})
	second := testutil.WriteGzip(t, inDir, "second.gz", testutil.Member{Data: []byte("hello")})

	chdir(t, workDir)

	code, stdout, _ := runCLI(t, first, "ignored.txt", second)
	require.Equal(t, 0, code)

	want := "Reading file " + first + "\n" +
		"Member: data.txt\n" +
		"Reading file " + second + "\n" +
		"Member: no name\n" +
		"================\nhello================\n"
	require.Equal(t, want, stdout)

	got, err := os.ReadFile(filepath.Join(workDir, "data.txt"))
	require.NoError(t, err)
	require.Equal(t, "content", string(got))
}

func TestErrorLine(t *testing.T) {
	inDir := t.TempDir()
	workDir := t.TempDir()

	testutil.WriteFile(t, workDir, "out.txt", []byte("original"))
	in := testutil.WriteGzip(t, inDir, "out.gz", testutil.Member{Name: "out.txt", Data: []byte("new")})

	chdir(t, workDir)

	code, stdout, _ := runCLI(t, in)
	require.Equal(t, 1, code)
	require.Equal(t,
		"Reading file "+in+"\nMember: out.txt\nError: "+in+": extract out.txt: file already exists\n",
		stdout)

	got, err := os.ReadFile(filepath.Join(workDir, "out.txt"))
	require.NoError(t, err)
	require.Equal(t, "original", string(got))
}

func TestMalformedInput(t *testing.T) {
	dir := t.TempDir()
	bad := testutil.WriteFile(t, dir, "bad.gz", []byte("this is not gzip"))

	code, stdout, _ := runCLI(t, bad)
	require.Equal(t, 1, code)
	require.Contains(t, stdout, "Error: "+bad+": gzip: invalid header\n")
}

func TestVerboseSummary(t *testing.T) {
	dir := t.TempDir()
	in := testutil.WriteGzip(t, dir, "v.gz", testutil.Member{Data: []byte("hello")})

	code, stdout, _ := runCLI(t, "--verbose", in)
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "crc32=3610a686")
	require.Contains(t, stdout, "Summary:\n")
	require.Contains(t, stdout, "Members:           1")
}

func TestDebugLogging(t *testing.T) {
	dir := t.TempDir()
	in := testutil.WriteGzip(t, dir, "d.gz", testutil.Member{Data: []byte("hello")})

	code, _, stderr := runCLI(t, "--debug", in)
	require.Equal(t, 0, code)
	require.Contains(t, stderr, "member decoded")
}

func TestVerifyCommand(t *testing.T) {
	dir := t.TempDir()
	good := testutil.WriteGzip(t, dir, "good.gz", testutil.Member{Name: "g.txt", Data: []byte("good")})
	bad := testutil.WriteFile(t, dir, "bad.gz",
		testutil.CorruptChecksum(testutil.Gzip(t, testutil.Member{Data: []byte("bad")})))

	t.Run("Valid", func(t *testing.T) {
		code, stdout, _ := runCLI(t, "verify", good)
		require.Equal(t, 0, code)
		require.Contains(t, stdout, good+" [OK] GZIP, 1 members")

		// verify never extracts
		_, err := os.Stat(filepath.Join(dir, "g.txt"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Invalid", func(t *testing.T) {
		code, stdout, _ := runCLI(t, "verify", bad, good)
		require.Equal(t, 1, code)
		require.Contains(t, stdout, bad+" [INVALID]")
		require.Contains(t, stdout, good+" [OK]")
		require.Contains(t, stdout, "Error: verification failed for 1 of 2 files\n")
	})

	t.Run("Usage", func(t *testing.T) {
		code, stdout, _ := runCLI(t, "verify")
		require.Equal(t, 1, code)
		require.Equal(t, "Usage: gogunzip verify FILE1.gz [FILE2.gz ...]\n", stdout)
	})
}

func TestVersionCommand(t *testing.T) {
	code, stdout, _ := runCLI(t, "version")
	require.Equal(t, 0, code)
	require.Equal(t, "gogunzip dev\ncommit: none\nbuilt: unknown\n", stdout)
}

func TestDashPrefixedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"ShortFlagLookalike", "-v.gz"},
		{"LongFlagLookalike", "--verbose.gz"},
		{"BareDash", "-.gz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			testutil.WriteGzip(t, dir, tt.input, testutil.Member{Name: "out.txt", Data: []byte("dash")})

			chdir(t, dir)

			code, stdout, _ := runCLI(t, tt.input)
			require.Equal(t, 0, code)
			require.Equal(t, "Reading file "+tt.input+"\nMember: out.txt\n", stdout)

			got, err := os.ReadFile(filepath.Join(dir, "out.txt"))
			require.NoError(t, err)
			require.Equal(t, "dash", string(got))
		})
	}
}

func TestUnknownSwitchIsDropped(t *testing.T) {
	dir := t.TempDir()
	in := testutil.WriteGzip(t, dir, "u.gz", testutil.Member{Data: []byte("hi")})

	code, stdout, _ := runCLI(t, "--nope", "-x", in)
	require.Equal(t, 0, code)
	require.Equal(t, "Reading file "+in+"\nMember: no name\n================\nhi================\n", stdout)

	code, stdout, _ = runCLI(t, "--nope")
	require.Equal(t, 1, code)
	require.Equal(t, "Usage: gogunzip FILE1.gz [FILE2.gz ...]\n", stdout)
}

func TestVersionFlag(t *testing.T) {
	code, stdout, _ := runCLI(t, "--version")
	require.Equal(t, 0, code)
	require.Equal(t, "gogunzip dev\ncommit: none\nbuilt: unknown\n", stdout)
}

func TestSplitArgs(t *testing.T) {
	cmd := newRootCmd("gogunzip", io.Discard, io.Discard)

	rest := splitArgs(cmd.Flags(), []string{"--verbose", "a.gz", "--verbose.gz", "-v", "--debug=true", "--progress"})
	require.Equal(t, []string{"a.gz", "--verbose.gz", "-v", "--debug=true"}, rest)

	verbose, err := cmd.Flags().GetBool("verbose")
	require.NoError(t, err)
	require.True(t, verbose)

	progress, err := cmd.Flags().GetBool("progress")
	require.NoError(t, err)
	require.True(t, progress)

	debug, err := cmd.Flags().GetBool("debug")
	require.NoError(t, err)
	require.False(t, debug)
}

func TestSubcommandOnlyFirst(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteGzip(t, dir, "-v.gz", testutil.Member{Data: []byte("x")})

	chdir(t, dir)

	code, stdout, _ := runCLI(t, "-v.gz", "verify")
	require.Equal(t, 0, code)
	require.Equal(t, "Reading file -v.gz\nMember: no name\n================\nx================\n", stdout)

	code, stdout, _ = runCLI(t, "verify", "-v.gz")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "-v.gz [OK] GZIP, 1 members")
}
