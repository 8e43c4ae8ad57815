//go:build (windows || darwin || linux) && (amd64 || arm64)

package atshim

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// buildFixture compiles testdata/c/toolbox.c for the host into dir under
// name. zig is preferred; cc is used when zig is missing.
func buildFixture(t *testing.T, dir string, name string) string {
	t.Helper()

	outputPath := filepath.Join(dir, name)
	sourcePath := filepath.Join("testdata", "c", "toolbox.c")

	var args []string
	switch runtime.GOOS {
	case "darwin":
		args = append(args, "-dynamiclib", "-fPIC")
	case "linux":
		args = append(args, "-shared", "-fPIC")
	case "windows":
		args = append(args, "-shared")
	}
	args = append(args, "-O2", "-g0", "-o", outputPath, sourcePath)

	var cmd *exec.Cmd
	if _, err := exec.LookPath("zig"); err == nil {
		target, ok := zigTargetFor(runtime.GOOS, runtime.GOARCH)
		if !ok {
			t.Skipf("no zig target for %s/%s", runtime.GOOS, runtime.GOARCH)
		}
		cmd = exec.Command("zig", append([]string{"cc", "-target", target}, args...)...)
		cmd.Env = append(
			os.Environ(),
			"ZIG_GLOBAL_CACHE_DIR="+filepath.Join(os.TempDir(), "atshim-zig-global-cache"),
			"ZIG_LOCAL_CACHE_DIR="+filepath.Join(os.TempDir(), "atshim-zig-local-cache"),
		)
	} else {
		requireCommand(t, "cc")
		cmd = exec.Command("cc", args...)
	}

	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("build fixture %s: %v\n%s", outputPath, err, output)
	}

	// COFF sidecars from windows builds.
	if runtime.GOOS == "windows" {
		base := strings.TrimSuffix(outputPath, filepath.Ext(outputPath))
		_ = os.Remove(base + ".pdb")
		_ = os.Remove(base + ".lib")
	}
	return outputPath
}

func zigTargetFor(goos string, goarch string) (string, bool) {
	switch {
	case goos == "darwin" && goarch == "amd64":
		return "x86_64-macos", true
	case goos == "darwin" && goarch == "arm64":
		return "aarch64-macos", true
	case goos == "linux" && goarch == "amd64":
		return "x86_64-linux-gnu", true
	case goos == "linux" && goarch == "arm64":
		return "aarch64-linux-gnu", true
	case goos == "windows" && goarch == "amd64":
		return "x86_64-windows-gnu", true
	case goos == "windows" && goarch == "arm64":
		return "aarch64-windows-gnu", true
	default:
		return "", false
	}
}

func requireCommand(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not found in PATH", name)
	}
}
