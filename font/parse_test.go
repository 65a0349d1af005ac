package font

import "io"
import "io/fs"
import "os"
import "errors"
import "testing"
import "testing/fstest"
import "path/filepath"

import "golang.org/x/image/font/gofont/goregular"

type fakeFS struct {}
func (fakeFS) Open(string) (fs.File, error) {
	return nil, errors.New("fakeFS")
}

type fakeReadCloser struct{ errOnRead bool }
func (self fakeReadCloser) Read(p []byte) (n int, err error) {
	if self.errOnRead { return 0, errors.New("fakeRead") }
	return 0, io.EOF
}
func (self fakeReadCloser) Close() error {
	return errors.New("fakeClose")
}

func TestParse(t *testing.T) {
	font, name, err := ParseFromBytes(goregular.TTF)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if font == nil || name != "Go Regular" { t.Fatalf("expected \"Go Regular\", got %q", name) }

	path := filepath.Join(t.TempDir(), "goregular.ttf")
	err = os.WriteFile(path, goregular.TTF, 0o644)
	if err != nil { t.Fatal(err) }
	_, name, err = ParseFromPath(path)
	if err != nil || name != "Go Regular" { t.Fatalf("ParseFromPath: got %q, %v", name, err) }

	filesys := fstest.MapFS{ "fonts/goregular.otf": &fstest.MapFile{ Data: goregular.TTF } }
	_, name, err = ParseFromFS(filesys, "fonts/goregular.otf")
	if err != nil || name != "Go Regular" { t.Fatalf("ParseFromFS: got %q, %v", name, err) }
}

func TestParseErrors(t *testing.T) {
	var err error

	_, _, err = ParseFromBytes([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	if err == nil { t.Fatal("expected error") }

	_, _, err = ParseFromPath("path/with/no/extension")
	if !errors.Is(err, ErrInvalidFontPath) { t.Fatalf("expected ErrInvalidFontPath, got %v", err) }

	_, _, err = ParseFromPath("fake/path/must/not/exist/yay.ttf")
	if !errors.Is(err, fs.ErrNotExist) { t.Fatalf("expected fs.ErrNotExist, got %v", err) }

	_, _, err = ParseFromFS(fakeFS{}, "path/with/no/extension")
	if !errors.Is(err, ErrInvalidFontPath) { t.Fatalf("expected ErrInvalidFontPath, got %v", err) }
	_, _, err = ParseFromFS(fakeFS{}, "cool.ttf")
	if err == nil || err.Error() != "fakeFS" {
		t.Fatalf("expected \"fakeFS\" error, but got '%s'", err)
	}

	_, _, err = parseAndClose(fakeReadCloser{ errOnRead: true })
	if err == nil || err.Error() != "fakeRead" {
		t.Fatalf("expected err == \"fakeRead\", but got '%s'", err)
	}
	_, _, err = parseAndClose(fakeReadCloser{ errOnRead: false })
	if err == nil || err.Error() != "fakeClose" {
		t.Fatalf("expected err == \"fakeClose\", but got '%s'", err)
	}
}

func TestValidFontExtension(t *testing.T) {
	invalid := []string{"", ".", ".t", ".tt", ".ttx", "ttf", "otf", ".tgf", ".gtf", ".mp4a", ".xttf", "font.ttf.zip"}
	for _, path := range invalid {
		if hasValidFontExtension(path) { t.Fatalf("%q is not a valid font path", path) }
	}
	for _, path := range []string{".ttf", ".otf", "dir/font.ttf"} {
		if !hasValidFontExtension(path) { t.Fatalf("%q must be a valid font path", path) }
	}
}
