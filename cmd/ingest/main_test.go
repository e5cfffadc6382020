package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mouryagna/ML-Project/pkg/ingest"
)

func seedProject(t *testing.T, n int) string {
	t.Helper()
	root := t.TempDir()
	var b strings.Builder
	b.WriteString("gender,lunch,math_score\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%s,standard,%d\n", []string{"female", "male"}[i%2], 40+i%60)
	}
	src := filepath.Join(root, "notebook", "data", "stud.csv")
	require.NoError(t, os.MkdirAll(filepath.Dir(src), 0o755))
	require.NoError(t, os.WriteFile(src, []byte(b.String()), 0o644))
	return root
}

func execute(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRun(t *testing.T) {
	root := seedProject(t, 50)
	metrics := filepath.Join(root, "artifacts", "ingestion.prom")

	stdout, stderr, err := execute("run", "--root", root, "--metrics-file", metrics)
	require.NoError(t, err, stderr)

	artifacts := filepath.Join(root, "artifacts")
	assert.Equal(t, filepath.Join(artifacts, "train.csv")+"\n"+filepath.Join(artifacts, "test.csv")+"\n", stdout)
	assert.FileExists(t, filepath.Join(artifacts, "raw.csv"))
	assert.FileExists(t, metrics)
	assert.Contains(t, stderr, "stage succeeded")
}

func TestRun_MissingSource(t *testing.T) {
	root := t.TempDir()
	_, stderr, err := execute("run", "--root", root, "--verbose")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ingest.ErrSourceUnavailable))
	assert.Contains(t, stderr, "stage failed")
	assert.NoDirExists(t, filepath.Join(root, "artifacts"))
}

func TestDescribe(t *testing.T) {
	root := seedProject(t, 10)
	stdout, _, err := execute("describe", filepath.Join(root, "notebook", "data", "stud.csv"))
	require.NoError(t, err)

	assert.Contains(t, stdout, "10 rows, 3 columns")
	assert.Contains(t, stdout, "math_score")
	assert.Contains(t, stdout, "category")
}

func TestPlot(t *testing.T) {
	root := seedProject(t, 40)
	_, _, err := execute("run", "--root", root)
	require.NoError(t, err)

	stdout, _, err := execute("plot", "--root", root, "--column", "math_score")
	require.NoError(t, err)

	out := filepath.Join(root, "artifacts", "split_math_score.png")
	assert.Equal(t, out+"\n", stdout)
	assert.FileExists(t, out)
}
