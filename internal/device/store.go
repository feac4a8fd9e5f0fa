package device

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// fileHeader is written at the top of every saved inventory file.
// Decoding ignores it like any other comment line.
const fileHeader = "# netinv inventory: kind|name|ip_address|status|extra|brand|model"

// ParseIssue records one malformed line encountered during a load.
// Malformed lines are skipped, never fatal; the issues are reported back so
// the caller can log or display them.
type ParseIssue struct {
	Line int   // 1-based line number in the file
	Err  error // the ErrParse-wrapped decode failure
}

func (p ParseIssue) String() string {
	return fmt.Sprintf("line %d: %v", p.Line, p.Err)
}

// SaveFile writes the devices to path, one line per device, overwriting any
// existing file. The write goes through a temp file in the same directory
// followed by a rename, so a failed save never truncates the previous
// inventory.
func SaveFile(path string, devices []Device) error {
	lines := make([]string, 0, len(devices)+1)
	lines = append(lines, fileHeader)
	for i := range devices {
		line, err := EncodeLine(&devices[i])
		if err != nil {
			return fmt.Errorf("encoding device %q: %w", devices[i].Name, err)
		}
		lines = append(lines, line)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating inventory directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp inventory file: %w", err)
	}
	tmpName := tmp.Name()

	// On any failure below, remove the temp file; the target is untouched.
	if _, err := tmp.WriteString(strings.Join(lines, "\n") + "\n"); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing inventory file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing inventory file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replacing inventory file: %w", err)
	}

	return nil
}

// LoadFile reads an inventory file and decodes every line.
//
// Blank lines and '#' comments are ignored. Malformed lines are skipped and
// reported as ParseIssues; they never abort the load. The returned error is
// non-nil only for I/O failures (including a missing file, which callers may
// choose to treat as an empty inventory).
func LoadFile(path string) ([]Device, []ParseIssue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening inventory file: %w", err)
	}
	defer f.Close()

	var (
		devices []Device
		issues  []ParseIssue
		lineNo  int
	)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		d, decodeErr := DecodeLine(line)
		if decodeErr != nil {
			issues = append(issues, ParseIssue{Line: lineNo, Err: decodeErr})
			continue
		}
		devices = append(devices, *d)
	}
	if err := scanner.Err(); err != nil {
		return nil, issues, fmt.Errorf("reading inventory file: %w", err)
	}

	return devices, issues, nil
}
