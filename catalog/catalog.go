// Package catalog publishes the closed, ordered list of extensions and
// MIME strings the detector is allowed to return. It has no dependency on
// detect or tokenizer: it is pure data, exported as read-only set views so
// callers get O(1) membership without being able to mutate the catalog.
package catalog

// Entry pairs one recognized extension with its canonical MIME type. Entries
// are listed in the same order the dispatcher's probes are most likely to
// emit them, oldest/most-common formats first; order is part of the public
// contract for Extensions().All()/MimeTypes().All() iteration.
type Entry struct {
	Ext  string
	Mime string
}

// entries is the single source of truth. Extensions and MIME types are not
// 1:1: several entries share a MIME type, and some MIME types below have no
// distinct paired extension beyond the one listed (e.g. ambiguous
// containers default to a generic MIME). Both sets are still exposed
// independently since the detector's result always carries both.
var entries = []Entry{
	{"jpg", "image/jpeg"},
	{"png", "image/png"},
	{"apng", "image/apng"},
	{"gif", "image/gif"},
	{"webp", "image/webp"},
	{"flif", "image/flif"},
	{"cr2", "image/x-canon-cr2"},
	{"cr3", "image/x-canon-cr3"},
	{"nef", "image/x-nikon-nef"},
	{"arw", "image/x-sony-arw"},
	{"dng", "image/x-adobe-dng"},
	{"orf", "image/x-olympus-orf"},
	{"tif", "image/tiff"},
	{"bmp", "image/bmp"},
	{"icns", "image/icns"},
	{"jxr", "image/vnd.ms-photo"},
	{"psd", "image/vnd.adobe.photoshop"},
	{"ico", "image/x-icon"},
	{"jp2", "image/jp2"},
	{"jpx", "image/jpx"},
	{"jpm", "image/jpm"},
	{"mj2", "image/mj2"},
	{"avif", "image/avif"},
	{"avis", "image/avif-sequence"},
	{"heic", "image/heic"},
	{"heix", "image/heic-sequence"},
	{"hevc", "image/heic"},
	{"hevx", "image/heic-sequence"},
	{"mif1", "image/heif"},
	{"msf1", "image/heif-sequence"},
	{"qt", "video/quicktime"},
	{"m4v", "video/x-m4v"},
	{"m4p", "video/mp4"},
	{"m4b", "audio/mp4"},
	{"m4a", "audio/x-m4a"},
	{"f4v", "video/mp4"},
	{"f4p", "video/mp4"},
	{"f4a", "audio/mp4"},
	{"f4b", "audio/mp4"},
	{"3g2", "video/3gpp2"},
	{"3gp", "video/3gpp"},
	{"mp4", "video/mp4"},
	{"webm", "video/webm"},
	{"matroska", "video/x-matroska"},
	{"avi", "video/vnd.avi"},
	{"wav", "audio/vnd.wave"},
	{"qcp", "audio/qcelp"},
	{"ogv", "video/ogg"},
	{"ogm", "video/ogg"},
	{"oga", "audio/ogg"},
	{"spx", "audio/ogg"},
	{"ogg", "audio/ogg"},
	{"ogx", "application/ogg"},
	{"opus", "audio/opus"},
	{"flac", "audio/x-flac"},
	{"mid", "audio/midi"},
	{"mp3", "audio/mpeg"},
	{"mp2", "audio/mpeg"},
	{"mp1", "audio/mpeg"},
	{"aac", "audio/aac"},
	{"amr", "audio/amr"},
	{"aiff", "audio/aiff"},
	{"mts", "video/mp2t"},
	{"asf", "application/vnd.ms-asf"},
	{"wma", "audio/x-ms-wma"},
	{"wmv", "video/x-ms-wmv"},
	{"zip", "application/zip"},
	{"docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	{"pptx", "application/vnd.openxmlformats-officedocument.presentationml.presentation"},
	{"xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
	{"epub", "application/epub+zip"},
	{"odt", "application/vnd.oasis.opendocument.text"},
	{"ods", "application/vnd.oasis.opendocument.spreadsheet"},
	{"odp", "application/vnd.oasis.opendocument.presentation"},
	{"xpi", "application/x-xpinstall"},
	{"3mf", "model/3mf"},
	{"asar", "application/x-asar"},
	{"pdf", "application/pdf"},
	{"ai", "application/postscript"},
	{"tar", "application/x-tar"},
	{"ar", "application/x-unix-archive"},
	{"deb", "application/x-deb"},
	{"rpm", "application/x-rpm"},
	{"rar", "application/x-rar-compressed"},
	{"7z", "application/x-7z-compressed"},
	{"gz", "application/gzip"},
	{"bz2", "application/x-bzip2"},
	{"xz", "application/x-xz"},
	{"zst", "application/zstd"},
	{"lz", "application/x-lzip"},
	{"Z", "application/x-compress"},
	{"cab", "application/vnd.ms-cab-compressed"},
	{"eot", "application/vnd.ms-fontobject"},
	{"woff", "font/woff"},
	{"woff2", "font/woff2"},
	{"ttf", "font/ttf"},
	{"otf", "font/otf"},
	{"wasm", "application/wasm"},
	{"exe", "application/x-msdownload"},
	{"dll", "application/x-msdownload"},
	{"elf", "application/x-elf"},
	{"class", "application/java-vm"},
	{"swf", "application/x-shockwave-flash"},
	{"rtf", "application/rtf"},
	{"sqlite", "application/x-sqlite3"},
	{"crx", "application/x-google-chrome-extension"},
	{"dmg", "application/x-apple-diskimage"},
	{"iso", "application/x-iso9660-image"},
	{"nes", "application/x-nintendo-nes-rom"},
	{"lnk", "application/x-ms-shortcut"},
	{"alias", "application/x-apple-alias"},
	{"indd", "application/x-indesign"},
	{"dcm", "application/dicom"},
	{"mobi", "application/x-mobipocket-ebook"},
	{"s3m", "audio/x-s3m"},
	{"shp", "application/x-esri-shape"},
	{"xml", "application/xml"},
	{"txt", "text/plain"},
}

// Set is a read-only, order-preserving view over one of the catalog's two
// columns (extensions or MIME strings). Membership is O(1); iteration
// order matches the order entries were declared in.
type Set interface {
	Has(value string) bool
	All() []string
	Len() int
}

type set struct {
	values []string
	index  map[string]struct{}
}

func newSet(values []string) *set {
	idx := make(map[string]struct{}, len(values))
	for _, v := range values {
		idx[v] = struct{}{}
	}
	return &set{values: values, index: idx}
}

func (s *set) Has(value string) bool {
	_, ok := s.index[value]
	return ok
}

// All returns the set's values in declaration order. The backing array is
// shared and must not be mutated by callers.
func (s *set) All() []string { return s.values }

func (s *set) Len() int { return len(s.values) }

var (
	extensionSet *set
	mimeSet      *set
)

func init() {
	exts := make([]string, 0, len(entries))
	mimes := make([]string, 0, len(entries))
	seenExt := make(map[string]struct{}, len(entries))
	seenMime := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, ok := seenExt[e.Ext]; !ok {
			exts = append(exts, e.Ext)
			seenExt[e.Ext] = struct{}{}
		}
		if _, ok := seenMime[e.Mime]; !ok {
			mimes = append(mimes, e.Mime)
			seenMime[e.Mime] = struct{}{}
		}
	}
	extensionSet = newSet(exts)
	mimeSet = newSet(mimes)
}

// Extensions returns the ordered, deduplicated set of recognized file
// extensions.
func Extensions() Set { return extensionSet }

// MimeTypes returns the ordered, deduplicated set of recognized MIME
// strings. It is independent of Extensions: several extensions share one
// MIME type, and the reverse never happens by construction here, but
// callers must not assume a 1:1 mapping.
func MimeTypes() Set { return mimeSet }

// Entries returns the full, ordered ext/MIME pair table.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
