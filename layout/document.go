package layout

import "io"
import "os"
import "fmt"
import "bytes"
import "errors"

import "gopkg.in/yaml.v3"
import "golang.org/x/image/font/sfnt"

var ErrInvalidBoxSize = errors.New("box width and height must be positive")
var ErrDuplicateBoxName = errors.New("duplicate box name")
var ErrInvalidSizeRange = errors.New("invalid size range")

// A layout description: a group of text boxes whose font sizes are
// meant to be synchronized, and optionally the size range to use.
//
//	min: 8
//	max: 72
//	wrap: true
//	boxes:
//	  - name: title
//	    text: Settings
//	    width: 320
//	    height: 48
//	  - name: option
//	    text: Enable vertical synchronization
//	    width: 320
//	    height: 48
//	    lower: 12
//	    wrap: false
//
// Zero Min or Max values mean "use the defaults".
type Document struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
	Wrap bool `yaml:"wrap"`
	Boxes []BoxSpec `yaml:"boxes"`
}

// Description of a single [Box] within a [Document].
type BoxSpec struct {
	Name string `yaml:"name"`
	Text string `yaml:"text"`
	Width int `yaml:"width"`
	Height int `yaml:"height"`
	Lower int `yaml:"lower"` // initial lower bound, zero for the default
	Wrap *bool `yaml:"wrap"`  // overrides the document's wrap setting
}

// Reads and parses a document from the given path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil { return nil, err }
	doc, err := ParseDocument(data)
	if err != nil { return nil, fmt.Errorf("%s: %w", path, err) }
	return doc, nil
}

// Parses and validates a YAML document. Unknown fields are rejected.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	err := decoder.Decode(&doc)
	if err != nil {
		if errors.Is(err, io.EOF) { return &doc, nil } // empty document
		return nil, err
	}
	err = doc.Validate()
	if err != nil { return nil, err }
	return &doc, nil
}

// Checks that all boxes have a positive size and unique names
// (empty names are allowed and get random names when built), and
// that the size range is valid when given.
func (self *Document) Validate() error {
	if self.Min < 0 || self.Max < 0 || (self.Max != 0 && self.Min > self.Max) {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidSizeRange, self.Min, self.Max)
	}

	names := make(map[string]struct{}, len(self.Boxes))
	for i, spec := range self.Boxes {
		if spec.Width <= 0 || spec.Height <= 0 {
			return fmt.Errorf("box #%d (%s): %w", i, spec.Name, ErrInvalidBoxSize)
		}
		if spec.Lower < 0 {
			return fmt.Errorf("box #%d (%s): %w: negative lower bound", i, spec.Name, ErrInvalidSizeRange)
		}
		if spec.Name == "" { continue }
		if _, found := names[spec.Name]; found {
			return fmt.Errorf("box #%d: %w %q", i, ErrDuplicateBoxName, spec.Name)
		}
		names[spec.Name] = struct{}{}
	}
	return nil
}

// Returns the document size range, replacing zero values with the
// given defaults.
func (self *Document) SizeRange(defaultMin, defaultMax int) (int, int) {
	minSize, maxSize := self.Min, self.Max
	if minSize == 0 { minSize = defaultMin }
	if maxSize == 0 { maxSize = defaultMax }
	return minSize, maxSize
}

// Creates the document boxes with the given font (nil for the
// default font) and attaches them to the host, in document order.
func (self *Document) Build(host *Host, face *sfnt.Font) []*Box {
	boxes := make([]*Box, 0, len(self.Boxes))
	for _, spec := range self.Boxes {
		box := NewBox(spec.Name, face, spec.Text, spec.Width, spec.Height)
		box.SetWrap(self.Wrap)
		if spec.Wrap != nil { box.SetWrap(*spec.Wrap) }
		if spec.Lower > 0 { box.SetLowerBound(spec.Lower) }
		host.Attach(box)
		boxes = append(boxes, box)
	}
	return boxes
}
