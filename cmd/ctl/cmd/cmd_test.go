package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/jpfielding/arith.go/pkg/pnm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRoot(context.Background(), "test")
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writePPM(t *testing.T, path string, pm *pnm.Pixmap) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, pnm.Write(f, pm))
}

func gradient(width, height int) *pnm.Pixmap {
	pm := pnm.NewPixmap(width, height, 255)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pm.SetRGB(x, y, pnm.RGB{R: uint16(x * 255 / width), G: uint16(y * 255 / height), B: 128})
		}
	}
	return pm
}

func TestCompressDecompressDiff(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.ppm")
	packed := filepath.Join(dir, "src.arith")
	restored := filepath.Join(dir, "restored.ppm")
	writePPM(t, src, gradient(17, 12))

	_, err := run(t, "compress", "-i", src, "-o", packed, "-w", "3")
	require.NoError(t, err)

	data, err := os.ReadFile(packed)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "COMP40 Compressed image format 2\n16 12\n"))

	_, err = run(t, "decompress", packed, "-o", restored)
	require.NoError(t, err)

	out, err := run(t, "diff", src, restored)
	require.NoError(t, err)
	e, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	require.NoError(t, err)
	assert.Less(t, e, 0.1)
}

func TestDecompressPNG(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.ppm")
	packed := filepath.Join(dir, "src.arith")
	restored := filepath.Join(dir, "restored.png")
	writePPM(t, src, gradient(8, 8))

	_, err := run(t, "compress", src, "-o", packed)
	require.NoError(t, err)
	_, err = run(t, "decompress", packed, "-o", restored, "-f", "png")
	require.NoError(t, err)

	pm, err := loadImage(restored)
	require.NoError(t, err)
	assert.Equal(t, 8, pm.Width())
	assert.Equal(t, 255, pm.Denominator())

	_, err = run(t, "decompress", packed, "-o", restored, "-f", "gif")
	assert.Error(t, err)
}

func TestAnalyze(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.ppm")
	packed := filepath.Join(dir, "src.arith")
	writePPM(t, src, gradient(4, 2))

	_, err := run(t, "compress", src, "-o", packed)
	require.NoError(t, err)

	out, err := run(t, "analyze", packed, "--dump-block", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Width: 4")
	assert.Contains(t, out, "Height: 2")
	assert.Contains(t, out, "Blocks: 2")
	assert.Contains(t, out, "Fingerprint: ")
	assert.Contains(t, out, "=== Block 1 (column 1, row 0) ===")

	_, err = run(t, "analyze", packed, "--dump-block", "2")
	assert.Error(t, err)
}

func TestDecompress_Malformed(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.arith")
	require.NoError(t, os.WriteFile(bad, []byte("COMP40 Compressed image format 2\n2 2\n\x4c"), 0o644))

	_, err := run(t, "decompress", bad, "-o", filepath.Join(dir, "out.ppm"))
	assert.Error(t, err)
}

func TestLogFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.ppm")
	logFile := filepath.Join(dir, "ctl.log")
	writePPM(t, src, gradient(4, 4))

	_, err := run(t, "compress", src, "-o", filepath.Join(dir, "src.arith"), "--log-file", logFile)
	require.NoError(t, err)
	slog.Info("after run")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=compressed")
	assert.NotContains(t, string(data), "after run")
}

func TestDiff_BothStdin(t *testing.T) {
	_, err := run(t, "diff", "-", "-")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "test\n", out)
}
