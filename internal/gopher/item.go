// Package gopher implements the client side of the gopher protocol
// (RFC 1436): item types, menu entry parsing and document retrieval.
package gopher

// ItemType is the single-character type code carried by every menu entry.
type ItemType byte

const (
	TypeTextFile   ItemType = '0'
	TypeSubmenu    ItemType = '1'
	TypeNameserver ItemType = '2'
	TypeError      ItemType = '3'
	TypeBinHex     ItemType = '4'
	TypeDos        ItemType = '5'
	TypeUuencode   ItemType = '6'
	TypeSearch     ItemType = '7'
	TypeTelnet     ItemType = '8'
	TypeBinary     ItemType = '9'
	TypeMirror     ItemType = '+'
	TypeGif        ItemType = 'g'
	TypeImage      ItemType = 'I'
	TypeTelnet3270 ItemType = 'T'
	TypeBitmap     ItemType = ':'
	TypeMovie      ItemType = ';'
	TypeSound      ItemType = '<'
	TypeDoc        ItemType = 'd'
	TypeHTML       ItemType = 'h'
	TypeInfo       ItemType = 'i'
	TypePng        ItemType = 'p'
	TypeRtf        ItemType = 'r'
	TypeWav        ItemType = 's'
	TypePdf        ItemType = 'P'
	TypeXML        ItemType = 'X'
	TypeUnknown    ItemType = '?'
)

var knownTypes = map[byte]ItemType{
	'0': TypeTextFile,
	'1': TypeSubmenu,
	'2': TypeNameserver,
	'3': TypeError,
	'4': TypeBinHex,
	'5': TypeDos,
	'6': TypeUuencode,
	'7': TypeSearch,
	'8': TypeTelnet,
	'9': TypeBinary,
	'+': TypeMirror,
	'g': TypeGif,
	'I': TypeImage,
	'T': TypeTelnet3270,
	':': TypeBitmap,
	';': TypeMovie,
	'<': TypeSound,
	'd': TypeDoc,
	'h': TypeHTML,
	'i': TypeInfo,
	'p': TypePng,
	'r': TypeRtf,
	's': TypeWav,
	'P': TypePdf,
	'X': TypeXML,
}

// ParseItemType maps a type code to its ItemType.
// Unrecognized codes map to TypeUnknown.
func ParseItemType(b byte) ItemType {
	if t, ok := knownTypes[b]; ok {
		return t
	}
	return TypeUnknown
}

// Byte returns the wire code for the item type.
func (t ItemType) Byte() byte {
	return byte(t)
}

func (t ItemType) String() string {
	switch t {
	case TypeTextFile:
		return "text file"
	case TypeSubmenu:
		return "submenu"
	case TypeNameserver:
		return "nameserver"
	case TypeError:
		return "error"
	case TypeSearch:
		return "full text search"
	case TypeHTML:
		return "html file"
	case TypeInfo:
		return "info"
	case TypeUnknown:
		return "unknown"
	default:
		if t.IsImage() {
			return "image file"
		}
		if t.IsBinary() {
			return "binary file"
		}
		return "item " + string(t.Byte())
	}
}

// IsImage reports whether the item is an image of any flavor.
func (t ItemType) IsImage() bool {
	switch t {
	case TypeGif, TypeImage, TypeBitmap, TypePng:
		return true
	}
	return false
}

// IsBinary reports whether the item should be treated as an opaque
// download rather than rendered inline.
func (t ItemType) IsBinary() bool {
	switch t {
	case TypeBinary, TypeBinHex, TypeDos, TypeUuencode,
		TypeMovie, TypeSound, TypeDoc, TypePdf, TypeRtf:
		return true
	}
	return false
}
