package keymap

// Table names one of the dispatch tables. Exactly one is active at a time.
type Table int

const (
	Default Table = iota
	Jump
	Align
	Escape

	NumTables = iota
)

func (t Table) String() string {
	switch t {
	case Default:
		return "default"
	case Jump:
		return "jump"
	case Align:
		return "align"
	case Escape:
		return "escape"
	default:
		return "unknown"
	}
}

// Prefix is the key sequence that leads into the table, for documentation.
func (t Table) Prefix() string {
	switch t {
	case Jump:
		return "g"
	case Align:
		return "z"
	default:
		return ""
	}
}

// Triggers are the keys that switch the active table when they are not
// bound in the current one.
var Triggers = map[KeyCode]Table{
	'g': Jump,
	'z': Align,
}
