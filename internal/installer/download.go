package installer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/jfheinrich-eu/vscode-template/internal/config"
	"github.com/jfheinrich-eu/vscode-template/internal/execute"
	"github.com/jfheinrich-eu/vscode-template/internal/logger"
	"github.com/jfheinrich-eu/vscode-template/internal/platform"
)

// download fetches a prebuilt release binary or archive for the
// resolved platform from the tool's versioned URL template and places
// the executable into the bin directory.
type download struct {
	client     *http.Client
	runner     execute.Runner
	binDir     string
	timeout    time.Duration // one full download
	cmdTimeout time.Duration // privileged placement via sudo
}

// NewDownload builds the direct-download strategy.
func NewDownload(runner execute.Runner, binDir string, timeouts config.Timeouts) Strategy {
	return &download{
		client:     http.DefaultClient,
		runner:     runner,
		binDir:     binDir,
		timeout:    timeouts.Download.Std(),
		cmdTimeout: timeouts.Command.Std(),
	}
}

func (s *download) Name() string { return "download" }

func (s *download) Available(tool config.Tool, _ platform.Platform) bool {
	if tool.DownloadURL == "" {
		return false
	}
	// A floating version cannot be substituted into a fixed, versioned
	// release URL.
	if tool.Version == "latest" && strings.Contains(tool.DownloadURL, "{version}") {
		return false
	}
	return true
}

func (s *download) Install(ctx context.Context, tool config.Tool, plat platform.Platform) error {
	url := RenderURL(tool.DownloadURL, tool.Version, plat)

	work, err := os.MkdirTemp("", "repo-setup-*")
	if err != nil {
		return fmt.Errorf("create work directory: %w", err)
	}
	// The work directory holds the download and any extracted archive
	// contents; removing it wholesale leaves no artifacts behind on any
	// failure path.
	defer os.RemoveAll(work)

	fetched := filepath.Join(work, path.Base(url))
	if err := fetchFile(ctx, s.client, s.timeout, url, fetched); err != nil {
		return err
	}

	binary := fetched
	if IsArchive(fetched) {
		extracted := filepath.Join(work, "extracted")
		if err := os.MkdirAll(extracted, 0o755); err != nil {
			return err
		}
		if err := ExtractArchive(fetched, extracted); err != nil {
			return fmt.Errorf("extract %s: %w", path.Base(url), err)
		}
		binary, err = FindBinary(extracted, tool.BinName())
		if err != nil {
			return err
		}
	}

	return s.place(ctx, binary, filepath.Join(s.binDir, tool.BinName()))
}

// RenderURL substitutes the version and platform placeholders of a
// release URL template.
func RenderURL(template, version string, plat platform.Platform) string {
	r := strings.NewReplacer(
		"{version}", version,
		"{os}", plat.OS,
		"{arch}", plat.Arch,
		"{unamearch}", plat.UnameArch(),
	)
	return r.Replace(template)
}

// fetchFile streams url into dest, bounded by timeout. A partial file
// never survives an error: whatever was written is removed before the
// error surfaces.
func fetchFile(ctx context.Context, client *http.Client, timeout time.Duration, url, dest string) error {
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", url, err)
	}

	logger.Debug("downloading %s", url)
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download %s: HTTP status %d", url, resp.StatusCode)
	}

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(dest)
		return fmt.Errorf("download %s: %w", url, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dest)
		return err
	}
	return nil
}

// place puts the binary at dst with the executable bit set. A writable
// target directory gets an atomic same-directory rename; anything else
// goes through `sudo install`, the only point in a run that escalates
// privileges.
func (s *download) place(ctx context.Context, src, dst string) error {
	if DirWritable(filepath.Dir(dst)) {
		return installFile(src, dst)
	}

	runCtx, cancel := context.WithTimeout(ctx, s.cmdTimeout)
	defer cancel()

	logger.Debug("%s is not writable, escalating via sudo install", filepath.Dir(dst))
	out, err := s.runner.Run(runCtx, "sudo", []string{"install", "-m", "0755", src, dst}, execute.Options{})
	if err != nil {
		return fmt.Errorf("sudo install %s: %w\noutput: %s", dst, err, out)
	}
	return nil
}

// installFile copies src to dst atomically: temp file in the target
// directory, executable mode, then rename. A crash mid-copy leaves at
// worst a hidden temp file, never a truncated binary at dst.
func installFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+"-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o755); err != nil {
		return err
	}
	return os.Rename(tmpName, dst)
}
