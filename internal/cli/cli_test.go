package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unwrapgen/internal/capture"
	"unwrapgen/internal/testutil"
)

const beansDoc = `package: beans
declarations:
  - name: HumanBeanSignal
    visibility: pub
    config: 'trim_end = "Signal"'
    fields:
      - name: taste
        visibility: pub
        type: ObservableCell<String>
`

const brokenDoc = `declarations:
  - name: Broken
    fields:
      - name: a
        type: u8
  - name: FineSignal
    config: 'trim_end = "Signal"'
`

func run(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)

	return stdout.String(), stderr.String(), err
}

func TestGen_Stdout(t *testing.T) {
	input := testutil.WriteFile(t, t.TempDir(), "beans.yaml", beansDoc)

	out, _, err := run(t, context.Background(), "gen", input, "--output-dir=-", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "pub struct HumanBean {\n    pub taste: String,\n}\n", out)
}

func TestGen_WritesFile(t *testing.T) {
	input := testutil.WriteFile(t, t.TempDir(), "beans.yaml", beansDoc)
	outDir := t.TempDir()

	_, _, err := run(t, context.Background(), "gen", input, "--output-dir", outDir, "--format", "go")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "beans.unwrapped.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "package beans")
	assert.Contains(t, string(data), "type HumanBean struct")
}

func TestGen_ReportsFailures(t *testing.T) {
	input := testutil.WriteFile(t, t.TempDir(), "broken.yaml", brokenDoc)

	out, stderr, err := run(t, context.Background(), "gen", input, "--output-dir=-", "--format", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 declaration(s) failed")
	assert.Contains(t, stderr, "cardinality error: [Broken]")
	assert.Contains(t, out, "struct Fine", "siblings are still generated")
}

func TestGen_AutoNameFlag(t *testing.T) {
	input := testutil.WriteFile(t, t.TempDir(), "broken.yaml", brokenDoc)

	out, _, err := run(t, context.Background(), "gen", input, "--output-dir=-", "--format", "text", "--auto-name")
	require.NoError(t, err)
	assert.Contains(t, out, "struct BrokenPlain")
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	good := testutil.WriteFile(t, dir, "beans.yaml", beansDoc)
	bad := testutil.WriteFile(t, dir, "broken.yaml", brokenDoc)

	out, _, err := run(t, context.Background(), "check", good)
	require.NoError(t, err)
	assert.Equal(t, "1 declaration(s) OK\n", out)

	out, _, err = run(t, context.Background(), "check", good, bad)
	require.Error(t, err)
	assert.Contains(t, out, "missing_renamer")
	assert.Contains(t, out, "Broken")
	assert.Contains(t, out, "broken.yaml:2:5")
}

func TestCheck_MissingInput(t *testing.T) {
	_, _, err := run(t, context.Background(), "check", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestCapture(t *testing.T) {
	input := testutil.WriteFile(t, t.TempDir(), "beans.yaml", beansDoc)
	capDir := filepath.Join(t.TempDir(), "capture")
	artifact := filepath.Join(capDir, capture.DefaultFile)

	_, _, err := run(t, context.Background(), "capture", "start", "--capture-dir", capDir)
	require.NoError(t, err)

	_, _, err = run(t, context.Background(), "gen", input, "--output-dir=-", "--capture", "--capture-dir", capDir)
	require.NoError(t, err)

	data, err := os.ReadFile(artifact)
	require.NoError(t, err)
	assert.Contains(t, string(data), capture.Sentinel+"pub struct HumanBean {")

	_, _, err = run(t, context.Background(), "capture", "stop", "--capture-dir", capDir)
	require.NoError(t, err)

	data, err = os.ReadFile(artifact)
	require.NoError(t, err)
	assert.NotContains(t, string(data), capture.Sentinel)
	assert.Contains(t, string(data), "pub struct HumanBean {")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, context.Background(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "unwrapgen v"+Version)
}

func TestInvalidConfig(t *testing.T) {
	_, _, err := run(t, context.Background(), "version", "--format", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestWatch(t *testing.T) {
	input := testutil.WriteFile(t, t.TempDir(), "beans.yaml", beansDoc)
	outDir := t.TempDir()
	output := filepath.Join(outDir, "beans.unwrapped.txt")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)

	go func() {
		_, _, err := run(t, ctx, "watch", input, "--output-dir", outDir, "--format", "text")
		done <- err
	}()

	require.Eventually(t, func() bool {
		_, err := os.Stat(output)
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(input, []byte(beansDoc+`  - name: GiantSignal
    config: 'rename = "Giant"'
`), 0o644))

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(output)
		return err == nil && bytes.Contains(data, []byte("struct Giant"))
	}, 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestTrimPattern(t *testing.T) {
	assert.Equal(t, "./models", trimPattern("./models/..."))
	assert.Equal(t, ".", trimPattern("..."))
	assert.Equal(t, "beans.yaml", trimPattern("beans.yaml"))
}
