package osc

// TypeTag is a single character of an OSC typetag string.
type TypeTag rune

const (
	TypeString  TypeTag = 's'
	TypeInt32   TypeTag = 'i'
	TypeFloat32 TypeTag = 'f'
	TypeBlob    TypeTag = 'b'
	TypeInvalid TypeTag = 0
)

// typeTagPrefix starts every typetag string.
const typeTagPrefix = ','

// String implements the fmt.Stringer interface.
func (t TypeTag) String() string {
	return string(rune(t))
}

// ToTypeTag returns the OSC TypeTag for the given argument.
// Returns TypeInvalid for a nil argument.
func ToTypeTag(arg Value) TypeTag {
	if arg == nil {
		return TypeInvalid
	}
	return arg.TypeTag()
}

// GetTypeTag returns the OSC TypeTag string for the given arguments: a ','
// followed by one tag per argument.
func GetTypeTag(args []Value) string {
	tags := make([]byte, 1, len(args)+1)
	tags[0] = typeTagPrefix
	for _, arg := range args {
		tags = append(tags, byte(ToTypeTag(arg)))
	}
	return string(tags)
}

// decodeFunc reads one argument from a source.
type decodeFunc func(r *reader, c Codec) (Value, error)

// decoders is the closed mapping from tag to argument decoder.
var decoders = map[TypeTag]decodeFunc{
	TypeString: func(r *reader, _ Codec) (Value, error) {
		s, _, err := readPaddedString(r)
		return String(s), err
	},
	TypeInt32: func(r *reader, _ Codec) (Value, error) {
		i, err := readInt32(r)
		return Int32(i), err
	},
	TypeFloat32: func(r *reader, _ Codec) (Value, error) {
		f, err := readFloat32(r)
		return Float32(f), err
	},
	TypeBlob: func(r *reader, c Codec) (Value, error) {
		b, _, err := readBlob(r, c.PadBlobs)
		return Blob(b), err
	},
}

// decoderFor returns the decoder registered for tag.
func decoderFor(tag TypeTag) (decodeFunc, error) {
	d, ok := decoders[tag]
	if !ok {
		return nil, &UnknownTypeTagError{Tag: tag}
	}
	return d, nil
}
