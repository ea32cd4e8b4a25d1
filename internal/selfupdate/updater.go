package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

// UpdateInput names the running version and, optionally, a release tag to
// install instead of the latest.
type UpdateInput struct {
	CurrentVersion string
	TargetVersion  string
}

type UpdateProgress struct {
	Stage   string
	Message string
}

// asset is the release archive for one platform.
type asset struct {
	name   string // file name on the release page
	binary string // executable inside the archive
	zip    bool
}

// assetFor follows the goreleaser naming used by releases: one universal
// macOS tarball, per-arch tarballs for Linux and zips for Windows.
func (c *Checker) assetFor(goos, goarch string) (asset, error) {
	arch := map[string]string{"amd64": "x86_64", "arm64": "arm64", "386": "i386"}[goarch]

	switch goos {
	case "darwin":
		return asset{name: c.binary + "_Darwin_all.tar.gz", binary: c.binary}, nil
	case "linux":
		if arch == "" {
			return asset{}, fmt.Errorf("unsupported architecture: %s", goarch)
		}
		return asset{name: fmt.Sprintf("%s_Linux_%s.tar.gz", c.binary, arch), binary: c.binary}, nil
	case "windows":
		if arch == "" {
			return asset{}, fmt.Errorf("unsupported architecture: %s", goarch)
		}
		return asset{name: fmt.Sprintf("%s_Windows_%s.zip", c.binary, arch), binary: c.binary + ".exe", zip: true}, nil
	}
	return asset{}, fmt.Errorf("unsupported operating system: %s", goos)
}

// Update installs a release over the running executable, reporting each
// stage through progress: check, download, verify, extract, apply, done.
func (c *Checker) Update(ctx context.Context, input *UpdateInput, progress func(UpdateProgress)) error {
	if input.CurrentVersion == "(devel)" {
		return ErrDevBuild
	}

	tag := input.TargetVersion
	if tag == "" {
		progress(UpdateProgress{Stage: "check", Message: "Checking for latest version..."})
		res, err := c.Check(ctx, &CheckInput{Version: input.CurrentVersion})
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}
		if !res.UpdateAvailable {
			return ErrAlreadyLatest
		}
		tag = res.LatestVersion
	}

	a, err := c.assetFor(c.goos, c.goarch)
	if err != nil {
		return err
	}

	progress(UpdateProgress{Stage: "download", Message: fmt.Sprintf("Downloading %s %s...", c.repo.Name, tag)})
	archive, err := c.get(ctx, c.releaseURL(tag, a.name), "")
	if err != nil {
		return fmt.Errorf("download archive: %w", err)
	}

	progress(UpdateProgress{Stage: "verify", Message: "Verifying checksum..."})
	sums, err := c.get(ctx, c.releaseURL(tag, "checksums.txt"), "")
	if err != nil {
		return fmt.Errorf("download checksums: %w", err)
	}
	want, ok := checksumFor(sums, a.name)
	if !ok {
		return fmt.Errorf("no checksum for %s in checksums.txt", a.name)
	}
	if err := verifyChecksum(archive, want); err != nil {
		return err
	}

	progress(UpdateProgress{Stage: "extract", Message: "Extracting binary..."})
	binary, err := unpack(archive, a)
	if err != nil {
		return fmt.Errorf("extract binary: %w", err)
	}

	progress(UpdateProgress{Stage: "apply", Message: "Applying update..."})
	target, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	if err := install(binary, target); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}

	progress(UpdateProgress{Stage: "done", Message: fmt.Sprintf("Updated to %s", tag)})
	return nil
}

func (c *Checker) releaseURL(tag, file string) string {
	return fmt.Sprintf("%s/%s/releases/download/%s/%s", c.downloadBaseURL, c.repo, tag, file)
}

// get fetches url and returns the body of a 200 response.
func (c *Checker) get(ctx context.Context, url, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

// checksumFor finds name in a "<sha256>  <file>" listing.
func checksumFor(listing []byte, name string) (string, bool) {
	sc := bufio.NewScanner(bytes.NewReader(listing))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 2 && fields[1] == name {
			return fields[0], true
		}
	}
	return "", false
}

func verifyChecksum(data []byte, wantHex string) error {
	sum := sha256.Sum256(data)
	if got := hex.EncodeToString(sum[:]); !strings.EqualFold(got, wantHex) {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksum, wantHex, got)
	}
	return nil
}

// unpack returns the contents of a.binary from the archive.
func unpack(archive []byte, a asset) ([]byte, error) {
	if a.zip {
		zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
		if err != nil {
			return nil, fmt.Errorf("open zip: %w", err)
		}
		for _, f := range zr.File {
			if filepath.Base(f.Name) != a.binary {
				continue
			}
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer func() { _ = rc.Close() }()
			return io.ReadAll(rc)
		}
		return nil, fmt.Errorf("binary %q not found in archive", a.binary)
	}

	gz, err := gzip.NewReader(bytes.NewReader(archive))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("binary %q not found in archive", a.binary)
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == a.binary {
			return io.ReadAll(tr)
		}
	}
}

// install writes binary next to target and renames it into place, keeping
// target's permissions. The staged file is re-hashed before the rename.
func install(binary []byte, target string) error {
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat target: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+"-update-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	staged := tmp.Name()
	defer func() { _ = os.Remove(staged) }()

	_, werr := tmp.Write(binary)
	if cerr := tmp.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("write temp file: %w", werr)
	}

	written, err := os.ReadFile(staged)
	if err != nil {
		return fmt.Errorf("re-read temp file: %w", err)
	}
	if sha256.Sum256(written) != sha256.Sum256(binary) {
		return fmt.Errorf("%w: staged file changed after write", ErrChecksum)
	}

	if err := os.Chmod(staged, info.Mode()); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(staged, target); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
