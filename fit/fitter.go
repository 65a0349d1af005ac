package fit

import "errors"

import "golang.org/x/image/font/sfnt"
import "github.com/hashicorp/golang-lru/v2"

import "github.com/tinne26/etxt/fract"

var ErrNegativeCacheSize = errors.New("fitter cache size can't be negative")

// A fitting request: find the largest size in [Lower, Upper] at which
// Text, drawn with Font, fits inside a Width x Height box.
type Request struct {
	Font *sfnt.Font
	Text string
	Width int
	Height int
	Lower int
	Upper int
	Wrap bool // wrap lines at spaces to fit Width
}

// Returns the request with its bounds normalized: Lower is at least 1,
// and Upper is at least Lower.
func (self Request) Normalized() Request {
	if self.Lower < 1 { self.Lower = 1 }
	if self.Upper < self.Lower { self.Upper = self.Lower }
	return self
}

type cacheKey struct {
	request Request
	sizer Sizer
	horzQuant fract.Unit
	vertQuant fract.Unit
}

// Statistics for the [Fitter] result cache.
type CacheStats struct {
	Hits uint64
	Misses uint64
	Entries int
}

// Computes natural font sizes for [Request]s. Results are memoized in
// an LRU cache, as the same requests tend to repeat on every layout pass.
//
// Fitters are not safe for concurrent use.
type Fitter struct {
	measurer *Measurer
	cache *lru.Cache[cacheKey, int] // nil if caching is disabled
	hits uint64
	misses uint64
}

// Creates a new fitter with an LRU result cache of the given
// capacity. A capacity of 0 disables caching.
func NewFitter(cacheEntries int) (*Fitter, error) {
	if cacheEntries < 0 { return nil, ErrNegativeCacheSize }

	fitter := &Fitter{ measurer: NewMeasurer() }
	if cacheEntries > 0 {
		cache, err := lru.New[cacheKey, int](cacheEntries)
		if err != nil { return nil, err }
		fitter.cache = cache
	}
	return fitter, nil
}

// Returns the underlying measurer.
func (self *Fitter) Measurer() *Measurer { return self.measurer }

// Sets the sizer used while measuring. See [Measurer.SetSizer]().
//
// Sizers may be configurable, so the cache is cleared. Reconfigure
// sizers only through this method, or call [Fitter.ClearCache]()
// yourself afterwards.
func (self *Fitter) SetSizer(sizer Sizer) {
	self.measurer.SetSizer(sizer)
	self.ClearCache()
}

// Sets the measuring quantization. See [Measurer.SetQuantization]().
func (self *Fitter) SetQuantization(horz, vert fract.Unit) {
	self.measurer.SetQuantization(horz, vert)
}

// Removes all cached results. Statistics are kept.
func (self *Fitter) ClearCache() {
	if self.cache != nil { self.cache.Purge() }
}

// Returns hit and miss counts for the result cache.
func (self *Fitter) CacheStats() CacheStats {
	stats := CacheStats{ Hits: self.hits, Misses: self.misses }
	if self.cache != nil { stats.Entries = self.cache.Len() }
	return stats
}

// Returns whether the request's text fits in its box at the given size.
// Bounds are ignored. A nil font panics.
func (self *Fitter) Fits(request Request, size int) bool {
	if request.Width <= 0 || request.Height <= 0 { return request.Text == "" }

	var rect fract.Rect
	if request.Wrap {
		rect = self.measurer.MeasureWithWrap(request.Font, request.Text, size, request.Width)
	} else {
		rect = self.measurer.Measure(request.Font, request.Text, size)
	}
	return rect.Width() <= fract.FromInt(request.Width) && rect.Height() <= fract.FromInt(request.Height)
}

// Returns the largest integer size in the request's bounds at which
// its text fits, or the lower bound if the text doesn't fit at any
// size. Empty texts always get the upper bound.
//
// Bounds are normalized first, see [Request.Normalized](). A nil
// font panics.
func (self *Fitter) NaturalSize(request Request) int {
	request = request.Normalized()
	if request.Text == "" { return request.Upper }
	if request.Font == nil { panic("can't fit text with a nil font") }

	key := cacheKey{
		request: request,
		sizer: self.measurer.sizer,
		horzQuant: self.measurer.horzQuant,
		vertQuant: self.measurer.vertQuant,
	}
	if self.cache != nil {
		size, found := self.cache.Get(key)
		if found {
			self.hits += 1
			return size
		}
	}
	self.misses += 1

	size := self.search(request)
	if self.cache != nil { self.cache.Add(key, size) }
	return size
}

// Binary search for the largest fitting size. Text extents grow
// with the size, so the fitting sizes form a prefix of the range.
func (self *Fitter) search(request Request) int {
	low, high := request.Lower, request.Upper
	if !self.Fits(request, low) { return low }
	for low < high {
		mid := low + (high - low + 1)/2
		if self.Fits(request, mid) {
			low = mid
		} else {
			high = mid - 1
		}
	}
	return low
}
